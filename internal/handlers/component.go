// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lorasite/internal/cache"
	"lorasite/internal/middleware"
	"lorasite/internal/models"
	"lorasite/internal/slug"
	"lorasite/internal/store"
)

// Component groups the HTML/CSS/JS component endpoints. Components embed
// into pages via component sections; a public endpoint serves single
// active components by slug for external embedding.
type Component struct {
	*Responder
	components *store.ComponentStore
	pageCache  *cache.PageCache
}

// NewComponent creates the Component handler group.
func NewComponent(rs *Responder, components *store.ComponentStore, pageCache *cache.PageCache) *Component {
	return &Component{Responder: rs, components: components, pageCache: pageCache}
}

// List returns components, optionally filtered by type. Non-admin
// callers get active-only results.
func (h *Component) List(w http.ResponseWriter, r *http.Request) {
	componentType := models.ComponentType(r.URL.Query().Get("type"))
	if componentType != "" && !models.ValidComponentType(componentType) {
		h.Fail(w, http.StatusBadRequest, "Unknown component type")
		return
	}
	activeOnly := r.URL.Query().Get("active") == "true" || !middleware.IsAdmin(r.Context())

	components, err := h.components.List(componentType, activeOnly)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"components": components})
}

// Get returns a single component by id.
func (h *Component) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	comp, err := h.components.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if comp == nil {
		h.Fail(w, http.StatusNotFound, "Component not found")
		return
	}
	h.OK(w, envelope{"component": comp})
}

// GetBySlug returns an active component by slug. Public, used by pages
// that embed components client-side.
func (h *Component) GetBySlug(w http.ResponseWriter, r *http.Request) {
	comp, err := h.components.FindActiveBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if comp == nil {
		h.Fail(w, http.StatusNotFound, "Component not found")
		return
	}
	h.OK(w, envelope{"component": comp})
}

// Create stores a new component. The slug is derived from the name when
// absent.
func (h *Component) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Component
	if !h.decodeJSON(w, r, &c) {
		return
	}
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}
	if err := c.Validate(); err != nil {
		h.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.components.Create(&c)
	if errors.Is(err, store.ErrDuplicateSlug) {
		h.Fail(w, http.StatusBadRequest, "A component with this slug already exists")
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.Created(w, envelope{"component": created})
}

// Update replaces an existing component. Any page may embed it, so the
// whole page cache is flushed.
func (h *Component) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.components.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if existing == nil {
		h.Fail(w, http.StatusNotFound, "Component not found")
		return
	}

	var c models.Component
	if !h.decodeJSON(w, r, &c) {
		return
	}
	c.ID = id
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}
	if err := c.Validate(); err != nil {
		h.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.components.Update(&c); err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			h.Fail(w, http.StatusBadRequest, "A component with this slug already exists")
			return
		}
		h.ServerError(w, r, err)
		return
	}

	h.pageCache.InvalidateAll(r.Context())
	h.OK(w, envelope{"component": &c})
}

// Delete removes a component. Sections referencing it render nothing.
func (h *Component) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.components.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if existing == nil {
		h.Fail(w, http.StatusNotFound, "Component not found")
		return
	}

	if err := h.components.Delete(id); err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.pageCache.InvalidateAll(r.Context())
	h.OK(w, envelope{"message": "Component deleted"})
}
