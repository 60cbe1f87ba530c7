// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Content represents a dynamic page in the CMS. The body is either an
// ordered list of typed sections or, for older records, a single legacy
// HTML blob. The two are mutually exclusive: saving non-empty sections
// clears the legacy body.
type Content struct {
	ID            uuid.UUID  `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Body          string     `json:"content"` // Legacy HTML blob
	Sections      Sections   `json:"sections"`
	FeaturedImage string     `json:"featuredImage"`
	IsActive      bool       `json:"isActive"`
	SortOrder     int        `json:"order"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// HasSections returns true if the content uses the section model rather
// than the legacy body.
func (c *Content) HasSections() bool {
	return len(c.Sections) > 0
}

// Normalize enforces the section/legacy-body invariant before a save:
// a content document with sections never keeps a legacy body.
func (c *Content) Normalize() {
	if c.HasSections() {
		c.Body = ""
	}
}

// Summary is the reduced view of a content document used when a card
// section resolves its referenced ids.
type Summary struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	FeaturedImage string    `json:"featuredImage"`
}

// Summarize returns the card view of the content.
func (c *Content) Summarize() Summary {
	return Summary{
		ID:            c.ID,
		Slug:          c.Slug,
		Title:         c.Title,
		Description:   c.Description,
		FeaturedImage: c.FeaturedImage,
	}
}
