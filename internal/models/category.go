// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups contents and components. When AutoAddContent is set,
// the newest AutoAddLimit active contents of the category are pulled into
// homepage news-style listings automatically.
type Category struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	IsActive       bool      `json:"isActive"`
	SortOrder      int       `json:"order"`
	AutoAddContent bool      `json:"autoAddContent"`
	AutoAddLimit   int       `json:"autoAddLimit"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Virtual field populated by store list methods.
	ContentCount int `json:"contentCount"`
}
