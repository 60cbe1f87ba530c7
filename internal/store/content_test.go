// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"lorasite/internal/models"
)

func TestContentCreateClearsBodyWithSections(t *testing.T) {
	db := testDB(t)
	contents := NewContentStore(db)
	t.Cleanup(func() { cleanContents(t, db, "sections-clear-body") })

	created, err := contents.Create(&models.Content{
		Slug:  "sections-clear-body",
		Title: "Sections clear body",
		Body:  "<p>legacy</p>",
		Sections: models.Sections{
			{Type: models.SectionText, Content: "<p>new world</p>"},
		},
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Body != "" {
		t.Errorf("body = %q, want cleared when sections are present", created.Body)
	}

	found, err := contents.FindActiveBySlug("sections-clear-body")
	if err != nil {
		t.Fatalf("FindActiveBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("content not found after create")
	}
	if found.Body != "" {
		t.Errorf("stored body = %q, want empty", found.Body)
	}
	if len(found.Sections) != 1 || found.Sections[0].Type != models.SectionText {
		t.Errorf("stored sections = %+v", found.Sections)
	}
}

func TestContentDuplicateSlug(t *testing.T) {
	db := testDB(t)
	contents := NewContentStore(db)
	t.Cleanup(func() { cleanContents(t, db, "dupe-slug") })

	if _, err := contents.Create(&models.Content{Slug: "dupe-slug", Title: "First"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := contents.Create(&models.Content{Slug: "dupe-slug", Title: "Second"})
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("duplicate slug error = %v, want ErrDuplicateSlug", err)
	}
}

func TestContentFindActiveBySlugSkipsInactive(t *testing.T) {
	db := testDB(t)
	contents := NewContentStore(db)
	t.Cleanup(func() { cleanContents(t, db, "inactive-page") })

	if _, err := contents.Create(&models.Content{Slug: "inactive-page", Title: "Hidden", IsActive: false}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := contents.FindActiveBySlug("inactive-page")
	if err != nil {
		t.Fatalf("FindActiveBySlug: %v", err)
	}
	if found != nil {
		t.Error("inactive content must not resolve publicly")
	}
}

func TestContentFindActiveByIDs(t *testing.T) {
	db := testDB(t)
	contents := NewContentStore(db)
	t.Cleanup(func() { cleanContents(t, db, "batch-a", "batch-b") })

	a, err := contents.Create(&models.Content{Slug: "batch-a", Title: "A", IsActive: true})
	if err != nil {
		t.Fatalf("Create a: %v", err)
	}
	b, err := contents.Create(&models.Content{Slug: "batch-b", Title: "B", IsActive: false})
	if err != nil {
		t.Fatalf("Create b: %v", err)
	}

	found, err := contents.FindActiveByIDs([]uuid.UUID{a.ID, b.ID, uuid.New()})
	if err != nil {
		t.Fatalf("FindActiveByIDs: %v", err)
	}
	if len(found) != 1 || found[0].ID != a.ID {
		t.Errorf("found = %+v, want only the active content", found)
	}
}
