// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SectionType is the closed set of section kinds a content body is
// composed of. Each kind carries a different payload shape.
type SectionType string

const (
	SectionText      SectionType = "text"
	SectionCard      SectionType = "card"
	SectionComponent SectionType = "component"
)

// Section is one ordered block within a content document. Exactly one of
// the payload fields is meaningful, selected by Type:
//
//	text      → Content (raw trusted HTML)
//	card      → ContentIDs (references to other content, rendered as link cards)
//	component → ComponentID (reusable HTML/CSS/JS fragment)
//
// Sections render in array order.
type Section struct {
	Type        SectionType `json:"type"`
	SortOrder   int         `json:"order"`
	Content     string      `json:"content,omitempty"`
	ContentIDs  []uuid.UUID `json:"contentIds,omitempty"`
	ComponentID *uuid.UUID  `json:"componentId,omitempty"`
}

// Validate checks that the section's payload matches its type tag.
func (s *Section) Validate() error {
	switch s.Type {
	case SectionText:
		if s.Content == "" {
			return fmt.Errorf("text section requires content")
		}
	case SectionCard:
		// Zero referenced ids is allowed — the section renders empty.
	case SectionComponent:
		if s.ComponentID == nil {
			return fmt.Errorf("component section requires componentId")
		}
	default:
		return fmt.Errorf("unknown section type %q", s.Type)
	}
	return nil
}

// Sections is the ordered list stored in the contents.sections JSONB column.
type Sections []Section

// Validate checks every section in the list.
func (ss Sections) Validate() error {
	for i := range ss {
		if err := ss[i].Validate(); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
	}
	return nil
}

// CardContentIDs returns the union of all content ids referenced by card
// sections, preserving first-seen order and dropping duplicates. Used to
// batch-fetch card referents in a single query.
func (ss Sections) CardContentIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, s := range ss {
		if s.Type != SectionCard {
			continue
		}
		for _, id := range s.ContentIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// ParseSections decodes and validates a JSONB sections payload. A null or
// empty payload decodes to nil.
func ParseSections(raw []byte) (Sections, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ss Sections
	if err := json.Unmarshal(raw, &ss); err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}
	if err := ss.Validate(); err != nil {
		return nil, err
	}
	return ss, nil
}
