// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MenuType distinguishes the site's navigation areas. The public site
// renders at most one active menu per type.
type MenuType string

const (
	MenuMain   MenuType = "main"
	MenuFooter MenuType = "footer"
)

// ValidMenuType reports whether t is a known menu type.
func ValidMenuType(t MenuType) bool {
	return t == MenuMain || t == MenuFooter
}

// MenuItem is a single navigation entry. Children nest exactly one level.
type MenuItem struct {
	Label     string     `json:"label"`
	Href      string     `json:"href"`
	SortOrder int        `json:"order"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	PDFURL    string     `json:"pdfUrl,omitempty"`
	Children  []MenuItem `json:"children,omitempty"`
}

// MenuItems is the ordered list stored in the menus.items JSONB column.
type MenuItems []MenuItem

// Validate checks labels are present and nesting stays at one level.
func (items MenuItems) Validate() error {
	for i, item := range items {
		if item.Label == "" {
			return fmt.Errorf("menu item %d: label is required", i)
		}
		for j, child := range item.Children {
			if child.Label == "" {
				return fmt.Errorf("menu item %d child %d: label is required", i, j)
			}
			if len(child.Children) > 0 {
				return fmt.Errorf("menu item %d child %d: nesting deeper than one level", i, j)
			}
		}
	}
	return nil
}

// ParseMenuItems decodes and validates a JSONB items payload.
func ParseMenuItems(raw []byte) (MenuItems, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items MenuItems
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode menu items: %w", err)
	}
	if err := items.Validate(); err != nil {
		return nil, err
	}
	return items, nil
}

// Menu is a named navigation tree.
type Menu struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      MenuType  `json:"type"`
	Items     MenuItems `json:"items"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
