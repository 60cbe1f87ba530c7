// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"lorasite/internal/cache"
	"lorasite/internal/middleware"
	"lorasite/internal/models"
	"lorasite/internal/slug"
	"lorasite/internal/store"
)

// Content groups the content CRUD endpoints. List and Get are public but
// forced to active-only documents unless the caller is an admin.
type Content struct {
	*Responder
	contents  *store.ContentStore
	pageCache *cache.PageCache
}

// NewContent creates the Content handler group.
func NewContent(rs *Responder, contents *store.ContentStore, pageCache *cache.PageCache) *Content {
	return &Content{Responder: rs, contents: contents, pageCache: pageCache}
}

// List returns contents. Query params: active, search, slug, category.
// Non-admin callers always get active-only results.
func (h *Content) List(w http.ResponseWriter, r *http.Request) {
	f := store.ListFilter{
		Search: r.URL.Query().Get("search"),
		Slug:   r.URL.Query().Get("slug"),
	}
	if r.URL.Query().Get("active") == "true" || !middleware.IsAdmin(r.Context()) {
		f.ActiveOnly = true
	}
	if cat := r.URL.Query().Get("category"); cat != "" {
		id, err := uuid.Parse(cat)
		if err != nil {
			h.Fail(w, http.StatusBadRequest, "Invalid category id")
			return
		}
		f.CategoryID = &id
	}

	contents, err := h.contents.List(f)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"contents": contents})
}

// Get returns a single content document by id.
func (h *Content) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	content, err := h.contents.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if content == nil || (!content.IsActive && !middleware.IsAdmin(r.Context())) {
		h.Fail(w, http.StatusNotFound, "Content not found")
		return
	}
	h.OK(w, envelope{"content": content})
}

// Create stores a new content document. The slug is derived from the
// title when absent; saving sections clears the legacy body.
func (h *Content) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Content
	if !h.decodeJSON(w, r, &c) {
		return
	}
	if !h.validateContent(w, &c) {
		return
	}

	created, err := h.contents.Create(&c)
	if errors.Is(err, store.ErrDuplicateSlug) {
		h.Fail(w, http.StatusBadRequest, "A page with this slug already exists")
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	h.invalidate(r, created.Slug)
	h.Created(w, envelope{"content": created})
}

// Update replaces an existing content document.
func (h *Content) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.contents.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if existing == nil {
		h.Fail(w, http.StatusNotFound, "Content not found")
		return
	}

	var c models.Content
	if !h.decodeJSON(w, r, &c) {
		return
	}
	c.ID = id
	if !h.validateContent(w, &c) {
		return
	}

	if err := h.contents.Update(&c); err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			h.Fail(w, http.StatusBadRequest, "A page with this slug already exists")
			return
		}
		h.ServerError(w, r, err)
		return
	}

	h.invalidate(r, existing.Slug)
	if c.Slug != existing.Slug {
		h.invalidate(r, c.Slug)
	}
	h.OK(w, envelope{"content": &c})
}

// Delete removes a content document.
func (h *Content) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.contents.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if existing == nil {
		h.Fail(w, http.StatusNotFound, "Content not found")
		return
	}

	if err := h.contents.Delete(id); err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.invalidate(r, existing.Slug)
	h.OK(w, envelope{"message": "Content deleted"})
}

// validateContent checks title, derives the slug, and validates the
// section payloads. Writes the failure response itself.
func (h *Content) validateContent(w http.ResponseWriter, c *models.Content) bool {
	if c.Title == "" {
		h.FailFields(w, "Validation failed", []string{"title"})
		return false
	}
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Title)
	}
	if err := c.Sections.Validate(); err != nil {
		h.Fail(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// invalidate drops the cached page for the slug plus the homepage, which
// may list the document through a card or news section.
func (h *Content) invalidate(r *http.Request, pageSlug string) {
	h.pageCache.InvalidatePage(r.Context(), cache.SlugKey(pageSlug))
	h.pageCache.InvalidateHomepage(r.Context())
	h.pageCache.InvalidatePage(r.Context(), cache.SitemapKey())
}
