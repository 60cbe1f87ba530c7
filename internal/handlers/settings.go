// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"lorasite/internal/cache"
	"lorasite/internal/models"
	"lorasite/internal/store"
)

// Settings serves the global site settings singleton.
type Settings struct {
	*Responder
	settings  *store.SettingsStore
	pageCache *cache.PageCache
}

// NewSettings creates the Settings handler group.
func NewSettings(rs *Responder, settings *store.SettingsStore, pageCache *cache.PageCache) *Settings {
	return &Settings{Responder: rs, settings: settings, pageCache: pageCache}
}

// Get returns the settings, creating the default row on first access.
func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Get()
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"settings": s})
}

// settingsRequest is the update body. The SMTP password is write-only:
// it never appears in responses, so an empty incoming value means "keep
// the stored one", not "clear it".
type settingsRequest struct {
	models.Settings
	SMTPPassword string `json:"smtpPassword"`
}

// Update replaces the settings in full. Validation failures name the
// offending fields and nothing is applied.
func (h *Settings) Update(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	s := req.Settings

	if invalid := s.Validate(); len(invalid) > 0 {
		h.FailFields(w, "Validation failed", invalid)
		return
	}

	if req.SMTPPassword != "" {
		s.SMTPPassword = req.SMTPPassword
	} else {
		current, err := h.settings.Get()
		if err != nil {
			h.ServerError(w, r, err)
			return
		}
		s.SMTPPassword = current.SMTPPassword
	}

	if err := h.settings.Update(&s); err != nil {
		h.ServerError(w, r, err)
		return
	}

	// Settings feed the shared layout on every page.
	h.pageCache.InvalidateAll(r.Context())
	h.OK(w, envelope{"settings": &s})
}
