// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HomeSectionType is the closed set of homepage section kinds. The Data
// payload of a HomeSection is decoded against the shape matching its type
// tag — open-ended bags are rejected at the boundary.
type HomeSectionType string

const (
	HomeHero      HomeSectionType = "hero"
	HomeAbout     HomeSectionType = "about"
	HomeServices  HomeSectionType = "services"
	HomeNews      HomeSectionType = "news"
	HomeComponent HomeSectionType = "component"
)

// HeroSlide is a single banner in the homepage hero carousel.
type HeroSlide struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Image      string `json:"image"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonURL  string `json:"buttonUrl,omitempty"`
}

// HeroData is the payload of a hero section.
type HeroData struct {
	Slides []HeroSlide `json:"slides"`
}

// AboutData is the payload of an about section.
type AboutData struct {
	Title string `json:"title"`
	Body  string `json:"body"` // Trusted HTML
	Image string `json:"image,omitempty"`
}

// ServiceItem is one entry in a services section.
type ServiceItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Link        string `json:"link,omitempty"`
}

// ServicesData is the payload of a services section.
type ServicesData struct {
	Title string        `json:"title"`
	Items []ServiceItem `json:"items"`
}

// NewsData is the payload of a news section: the newest active contents
// of the named category are listed, capped at Limit.
type NewsData struct {
	Title        string `json:"title"`
	CategorySlug string `json:"categorySlug"`
	Limit        int    `json:"limit"`
}

// ComponentData is the payload of a component section.
type ComponentData struct {
	ComponentID uuid.UUID `json:"componentId"`
}

// HomeSection is one ordered block of the homepage. Data holds the raw
// JSON payload; DecodeData validates it against the type tag.
type HomeSection struct {
	Type      HomeSectionType `json:"type"`
	SortOrder int             `json:"order"`
	IsActive  bool            `json:"isActive"`
	Data      json.RawMessage `json:"data"`
}

// DecodeData decodes the section payload into the shape matching the type
// tag. The returned value is one of *HeroData, *AboutData, *ServicesData,
// *NewsData, *ComponentData.
func (hs *HomeSection) DecodeData() (any, error) {
	var target any
	switch hs.Type {
	case HomeHero:
		target = &HeroData{}
	case HomeAbout:
		target = &AboutData{}
	case HomeServices:
		target = &ServicesData{}
	case HomeNews:
		target = &NewsData{}
	case HomeComponent:
		target = &ComponentData{}
	default:
		return nil, fmt.Errorf("unknown homepage section type %q", hs.Type)
	}
	if len(hs.Data) == 0 {
		return target, nil
	}
	dec := json.NewDecoder(bytes.NewReader(hs.Data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, fmt.Errorf("decode %s section data: %w", hs.Type, err)
	}
	return target, nil
}

// HomeSections is the ordered list stored in the homepage_settings.sections
// JSONB column.
type HomeSections []HomeSection

// Validate decodes every section payload against its type tag.
func (hs HomeSections) Validate() error {
	for i := range hs {
		if _, err := hs[i].DecodeData(); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
	}
	return nil
}

// HomepageSettings is the singleton document describing the homepage
// composition. Created lazily on first read with a default hero section.
type HomepageSettings struct {
	Sections  HomeSections `json:"sections"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// DefaultHomepageSettings returns the lazily-created singleton value: a
// single active hero section with one placeholder slide.
func DefaultHomepageSettings() *HomepageSettings {
	slide, _ := json.Marshal(HeroData{Slides: []HeroSlide{{
		Title:    "Welcome",
		Subtitle: "Edit this slide in the admin panel.",
	}}})
	return &HomepageSettings{
		Sections: HomeSections{{
			Type:      HomeHero,
			SortOrder: 0,
			IsActive:  true,
			Data:      slide,
		}},
	}
}
