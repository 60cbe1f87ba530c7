// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"testing"
)

func TestHomeSectionDecodeData(t *testing.T) {
	tests := []struct {
		name    string
		section HomeSection
		wantErr bool
	}{
		{"hero slides", HomeSection{Type: HomeHero, Data: json.RawMessage(`{"slides":[{"title":"Hi","image":"/uploads/a.webp"}]}`)}, false},
		{"about", HomeSection{Type: HomeAbout, Data: json.RawMessage(`{"title":"Us","body":"<p>x</p>"}`)}, false},
		{"services", HomeSection{Type: HomeServices, Data: json.RawMessage(`{"title":"S","items":[{"title":"One","description":"d"}]}`)}, false},
		{"news", HomeSection{Type: HomeNews, Data: json.RawMessage(`{"title":"N","categorySlug":"news","limit":3}`)}, false},
		{"empty payload", HomeSection{Type: HomeAbout}, false},
		{"unknown type", HomeSection{Type: "carousel"}, true},
		{"wrong shape for tag", HomeSection{Type: HomeHero, Data: json.RawMessage(`{"items":[]}`)}, true},
		{"unknown field", HomeSection{Type: HomeNews, Data: json.RawMessage(`{"categorySlug":"news","pageSize":3}`)}, true},
		{"malformed json", HomeSection{Type: HomeHero, Data: json.RawMessage(`{`)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.section.DecodeData()
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeData() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHomeSectionsValidateNamesOffendingIndex(t *testing.T) {
	hs := HomeSections{
		{Type: HomeHero, Data: json.RawMessage(`{"slides":[]}`)},
		{Type: HomeNews, Data: json.RawMessage(`{"bogus":true}`)},
	}
	err := hs.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := err.Error(); got[:9] != "section 1" {
		t.Errorf("error should name section 1, got %q", got)
	}
}

func TestDefaultHomepageSettings(t *testing.T) {
	hp := DefaultHomepageSettings()
	if len(hp.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(hp.Sections))
	}
	sec := hp.Sections[0]
	if sec.Type != HomeHero || !sec.IsActive {
		t.Errorf("default section = %+v, want active hero", sec)
	}

	data, err := sec.DecodeData()
	if err != nil {
		t.Fatalf("DecodeData: %v", err)
	}
	hero, ok := data.(*HeroData)
	if !ok || len(hero.Slides) != 1 {
		t.Errorf("default hero payload = %+v", data)
	}
}
