// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"html/template"
	"log/slog"

	"github.com/google/uuid"

	"lorasite/internal/models"
)

// CardSource fetches active contents by id for card sections.
type CardSource interface {
	FindActiveByIDs(ids []uuid.UUID) ([]models.Content, error)
}

// ComponentSource fetches stored components for component sections.
type ComponentSource interface {
	FindByID(id uuid.UUID) (*models.Component, error)
}

// ResolvedSection is a page section ready for template execution. Exactly
// one of the payload fields is set, matching Type.
type ResolvedSection struct {
	Type      models.SectionType
	HTML      template.HTML    // text: trusted admin HTML, verbatim
	Cards     []models.Summary // card: referenced contents, in reference order
	Component *models.Component
	Key       string // component: fragment key
}

// ResolveSections turns the stored section list into renderable data.
// Card ids are collected across all card sections and fetched in one
// batch; ids that are absent or inactive are skipped silently. A failed
// batch fetch degrades to empty card lists so the page still renders.
func ResolveSections(sections models.Sections, cards CardSource, comps ComponentSource) []ResolvedSection {
	lookup := cardLookup(sections, cards)

	resolved := make([]ResolvedSection, 0, len(sections))
	for _, sec := range sections {
		switch sec.Type {
		case models.SectionText:
			resolved = append(resolved, ResolvedSection{
				Type: models.SectionText,
				HTML: template.HTML(sec.Content),
			})

		case models.SectionCard:
			var items []models.Summary
			for _, id := range sec.ContentIDs {
				if s, ok := lookup[id]; ok {
					items = append(items, s)
				}
			}
			resolved = append(resolved, ResolvedSection{
				Type:  models.SectionCard,
				Cards: items,
			})

		case models.SectionComponent:
			comp := resolveComponent(sec.ComponentID, comps)
			if comp == nil {
				continue
			}
			resolved = append(resolved, ResolvedSection{
				Type:      models.SectionComponent,
				Component: comp,
				Key:       comp.Slug,
			})
		}
	}
	return resolved
}

// cardLookup batch-fetches every content referenced by a card section and
// indexes the summaries by id.
func cardLookup(sections models.Sections, cards CardSource) map[uuid.UUID]models.Summary {
	ids := sections.CardContentIDs()
	if len(ids) == 0 {
		return nil
	}

	found, err := cards.FindActiveByIDs(ids)
	if err != nil {
		slog.Warn("card section fetch failed, rendering without cards", "error", err)
		return nil
	}

	lookup := make(map[uuid.UUID]models.Summary, len(found))
	for _, c := range found {
		lookup[c.ID] = c.Summarize()
	}
	return lookup
}

func resolveComponent(id *uuid.UUID, comps ComponentSource) *models.Component {
	if id == nil {
		return nil
	}
	comp, err := comps.FindByID(*id)
	if err != nil {
		slog.Warn("component section fetch failed", "id", *id, "error", err)
		return nil
	}
	if comp == nil || !comp.IsActive {
		return nil
	}
	return comp
}
