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

// Homepage serves the homepage composition singleton.
type Homepage struct {
	*Responder
	homepage  *store.HomepageStore
	pageCache *cache.PageCache
}

// NewHomepage creates the Homepage handler group.
func NewHomepage(rs *Responder, homepage *store.HomepageStore, pageCache *cache.PageCache) *Homepage {
	return &Homepage{Responder: rs, homepage: homepage, pageCache: pageCache}
}

// Get returns the homepage sections, creating the default hero on first
// access.
func (h *Homepage) Get(w http.ResponseWriter, r *http.Request) {
	hp, err := h.homepage.Get()
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"homepage": hp})
}

// Update replaces the homepage sections. Every section payload must match
// its type tag or nothing is applied.
func (h *Homepage) Update(w http.ResponseWriter, r *http.Request) {
	var hp models.HomepageSettings
	if !h.decodeJSON(w, r, &hp) {
		return
	}

	if err := hp.Sections.Validate(); err != nil {
		h.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.homepage.Update(&hp); err != nil {
		h.ServerError(w, r, err)
		return
	}

	h.pageCache.InvalidateHomepage(r.Context())
	h.OK(w, envelope{"homepage": &hp})
}
