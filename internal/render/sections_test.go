// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"lorasite/internal/models"
)

type fakeCardSource struct {
	contents []models.Content
	err      error
	calls    int
	gotIDs   []uuid.UUID
}

func (f *fakeCardSource) FindActiveByIDs(ids []uuid.UUID) ([]models.Content, error) {
	f.calls++
	f.gotIDs = ids
	return f.contents, f.err
}

type fakeComponentSource struct {
	components map[uuid.UUID]*models.Component
}

func (f *fakeComponentSource) FindByID(id uuid.UUID) (*models.Component, error) {
	return f.components[id], nil
}

func TestResolveSectionsBatchesCardIDs(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()
	id3 := uuid.New()

	cards := &fakeCardSource{contents: []models.Content{
		{ID: id1, Slug: "one", Title: "One", IsActive: true},
		{ID: id3, Slug: "three", Title: "Three", IsActive: true},
	}}
	comps := &fakeComponentSource{}

	sections := models.Sections{
		{Type: models.SectionCard, ContentIDs: []uuid.UUID{id1, id2}},
		{Type: models.SectionCard, ContentIDs: []uuid.UUID{id2, id3}},
	}

	resolved := ResolveSections(sections, cards, comps)

	if cards.calls != 1 {
		t.Errorf("expected one batch fetch, got %d", cards.calls)
	}
	if len(cards.gotIDs) != 3 {
		t.Errorf("expected 3 unioned ids, got %d", len(cards.gotIDs))
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved sections, got %d", len(resolved))
	}

	// id2 is absent from the store and must be skipped silently.
	if len(resolved[0].Cards) != 1 || resolved[0].Cards[0].Slug != "one" {
		t.Errorf("first section cards = %+v, want just 'one'", resolved[0].Cards)
	}
	if len(resolved[1].Cards) != 1 || resolved[1].Cards[0].Slug != "three" {
		t.Errorf("second section cards = %+v, want just 'three'", resolved[1].Cards)
	}
}

func TestResolveSectionsCardFetchErrorDegrades(t *testing.T) {
	cards := &fakeCardSource{err: errors.New("db down")}
	sections := models.Sections{
		{Type: models.SectionCard, ContentIDs: []uuid.UUID{uuid.New()}},
		{Type: models.SectionText, Content: "<p>still here</p>"},
	}

	resolved := ResolveSections(sections, cards, &fakeComponentSource{})

	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved sections, got %d", len(resolved))
	}
	if len(resolved[0].Cards) != 0 {
		t.Errorf("card section should render empty on fetch error, got %d cards", len(resolved[0].Cards))
	}
	if string(resolved[1].HTML) != "<p>still here</p>" {
		t.Errorf("text section HTML = %q", resolved[1].HTML)
	}
}

func TestResolveSectionsPreservesOrder(t *testing.T) {
	compID := uuid.New()
	comps := &fakeComponentSource{components: map[uuid.UUID]*models.Component{
		compID: {ID: compID, Slug: "promo", HTML: "<b>hi</b>", IsActive: true},
	}}

	sections := models.Sections{
		{Type: models.SectionText, Content: "first"},
		{Type: models.SectionComponent, ComponentID: &compID},
		{Type: models.SectionText, Content: "last"},
	}

	resolved := ResolveSections(sections, &fakeCardSource{}, comps)

	want := []models.SectionType{models.SectionText, models.SectionComponent, models.SectionText}
	if len(resolved) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(resolved))
	}
	for i, typ := range want {
		if resolved[i].Type != typ {
			t.Errorf("section %d type = %q, want %q", i, resolved[i].Type, typ)
		}
	}
	if resolved[1].Key != "promo" {
		t.Errorf("component key = %q, want promo", resolved[1].Key)
	}
}

func TestResolveSectionsSkipsInactiveComponent(t *testing.T) {
	compID := uuid.New()
	comps := &fakeComponentSource{components: map[uuid.UUID]*models.Component{
		compID: {ID: compID, Slug: "old", IsActive: false},
	}}

	resolved := ResolveSections(models.Sections{
		{Type: models.SectionComponent, ComponentID: &compID},
	}, &fakeCardSource{}, comps)

	if len(resolved) != 0 {
		t.Errorf("inactive component should be skipped, got %d sections", len(resolved))
	}
}

func TestResolveSectionsTextIsVerbatim(t *testing.T) {
	raw := `<div class="x" onclick="alert(1)"><script>let a = 1 < 2;</script></div>`
	resolved := ResolveSections(models.Sections{
		{Type: models.SectionText, Content: raw},
	}, &fakeCardSource{}, &fakeComponentSource{})

	if got := string(resolved[0].HTML); got != raw {
		t.Errorf("text content was altered:\n got %q\nwant %q", got, raw)
	}
	if strings.Contains(string(resolved[0].HTML), "&lt;") {
		t.Error("text content must not be HTML-escaped")
	}
}
