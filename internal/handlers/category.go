// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"lorasite/internal/cache"
	"lorasite/internal/middleware"
	"lorasite/internal/models"
	"lorasite/internal/slug"
	"lorasite/internal/store"
)

// Category groups the category CRUD endpoints.
type Category struct {
	*Responder
	categories *store.CategoryStore
	pageCache  *cache.PageCache
}

// NewCategory creates the Category handler group.
func NewCategory(rs *Responder, categories *store.CategoryStore, pageCache *cache.PageCache) *Category {
	return &Category{Responder: rs, categories: categories, pageCache: pageCache}
}

// List returns categories with their content counts. Non-admin callers
// get active-only results.
func (h *Category) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true" || !middleware.IsAdmin(r.Context())

	categories, err := h.categories.List(activeOnly)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"categories": categories})
}

// Get returns a single category by id.
func (h *Category) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	cat, err := h.categories.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if cat == nil {
		h.Fail(w, http.StatusNotFound, "Category not found")
		return
	}
	h.OK(w, envelope{"category": cat})
}

// Create stores a new category. The slug is derived from the name when
// absent.
func (h *Category) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if !h.decodeJSON(w, r, &c) {
		return
	}
	if c.Name == "" {
		h.FailFields(w, "Validation failed", []string{"name"})
		return
	}
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}

	created, err := h.categories.Create(&c)
	if errors.Is(err, store.ErrDuplicateSlug) {
		h.Fail(w, http.StatusBadRequest, "A category with this slug already exists")
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.Created(w, envelope{"category": created})
}

// Update replaces an existing category.
func (h *Category) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.categories.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if existing == nil {
		h.Fail(w, http.StatusNotFound, "Category not found")
		return
	}

	var c models.Category
	if !h.decodeJSON(w, r, &c) {
		return
	}
	c.ID = id
	if c.Name == "" {
		h.FailFields(w, "Validation failed", []string{"name"})
		return
	}
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Name)
	}

	if err := h.categories.Update(&c); err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			h.Fail(w, http.StatusBadRequest, "A category with this slug already exists")
			return
		}
		h.ServerError(w, r, err)
		return
	}

	// News sections resolve categories by slug, so the homepage may change.
	h.pageCache.InvalidateHomepage(r.Context())
	h.OK(w, envelope{"category": &c})
}

// Delete removes a category. Contents referencing it keep existing with
// a null category.
func (h *Category) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.categories.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if existing == nil {
		h.Fail(w, http.StatusNotFound, "Category not found")
		return
	}

	if err := h.categories.Delete(id); err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.pageCache.InvalidateHomepage(r.Context())
	h.OK(w, envelope{"message": "Category deleted"})
}
