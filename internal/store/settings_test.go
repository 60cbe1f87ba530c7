// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"lorasite/internal/models"
)

func TestSettingsLazyCreate(t *testing.T) {
	db := testDB(t)
	settings := NewSettingsStore(db)

	s, err := settings.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s == nil {
		t.Fatal("settings must be lazily created on first access")
	}
	if s.SiteName == "" {
		t.Error("default settings must carry a site name")
	}

	// A second read returns the same row, not another default.
	again, err := settings.Get()
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if again.SiteName != s.SiteName {
		t.Errorf("second read site name = %q, want %q", again.SiteName, s.SiteName)
	}
}

func TestHomepageLazyCreateWithDefaultHero(t *testing.T) {
	db := testDB(t)
	homepage := NewHomepageStore(db)

	hp, err := homepage.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(hp.Sections) == 0 {
		t.Fatal("default homepage must contain at least one section")
	}
	if hp.Sections[0].Type != models.HomeHero {
		t.Errorf("first default section type = %q, want hero", hp.Sections[0].Type)
	}
	if !hp.Sections[0].IsActive {
		t.Error("default hero section must be active")
	}
}
