// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ComponentType classifies reusable HTML/CSS/JS fragments.
type ComponentType string

const (
	ComponentHero    ComponentType = "hero"
	ComponentNews    ComponentType = "news"
	ComponentMap     ComponentType = "map"
	ComponentCustom  ComponentType = "custom"
	ComponentCard    ComponentType = "card"
	ComponentSection ComponentType = "section"
)

// ValidComponentType reports whether t is a known component type.
func ValidComponentType(t ComponentType) bool {
	switch t {
	case ComponentHero, ComponentNews, ComponentMap, ComponentCustom, ComponentCard, ComponentSection:
		return true
	}
	return false
}

// Component is an admin-authored reusable HTML/CSS/JS fragment. The three
// stored strings are fully trusted admin input and are rendered without
// sanitization — see render.ComponentFragment.
type Component struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Slug       string        `json:"slug"`
	Type       ComponentType `json:"type"`
	HTML       string        `json:"html"`
	CSS        string        `json:"css"`
	JS         string        `json:"js"`
	IsActive   bool          `json:"isActive"`
	SortOrder  int           `json:"order"`
	CategoryID *uuid.UUID    `json:"categoryId,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// Validate checks required fields and the type tag.
func (c *Component) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !ValidComponentType(c.Type) {
		return fmt.Errorf("unknown component type %q", c.Type)
	}
	return nil
}
