// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lorasite/internal/cache"
	"lorasite/internal/render"
	"lorasite/internal/store"
)

// Public serves the rendered site: homepage, dynamic pages by slug, and
// the sitemap. Rendered HTML is cached in Valkey; admin mutations
// invalidate the affected keys.
type Public struct {
	*Responder
	engine     *render.Engine
	contents   *store.ContentStore
	components *store.ComponentStore
	menus      *store.MenuStore
	pageCache  *cache.PageCache
	baseURL    string
}

// NewPublic creates the Public handler group.
func NewPublic(rs *Responder, engine *render.Engine, contents *store.ContentStore, components *store.ComponentStore, menus *store.MenuStore, pageCache *cache.PageCache, baseURL string) *Public {
	return &Public{Responder: rs, engine: engine, contents: contents, components: components, menus: menus, pageCache: pageCache, baseURL: baseURL}
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

// Homepage renders the composed homepage.
func (h *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.pageCache.Get(ctx, cache.HomepageKey()); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	body, err := h.engine.RenderHomepage()
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	h.pageCache.Set(ctx, cache.HomepageKey(), body)
	writeHTML(w, http.StatusOK, body)
}

// Page renders a dynamic page by slug. Unknown or inactive slugs get the
// dedicated not-found page, which is never cached.
func (h *Public) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pageSlug := chi.URLParam(r, "slug")

	if cached, ok := h.pageCache.Get(ctx, cache.SlugKey(pageSlug)); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	content, err := h.contents.FindActiveBySlug(pageSlug)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if content == nil {
		h.NotFoundPage(w, r)
		return
	}

	body, err := h.engine.RenderPage(content)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	h.pageCache.Set(ctx, cache.SlugKey(pageSlug), body)
	writeHTML(w, http.StatusOK, body)
}

// NotFoundPage renders the not-found page with a 404 status. Also
// mounted as the router's fallback handler.
func (h *Public) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	body, err := h.engine.RenderNotFound()
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	writeHTML(w, http.StatusNotFound, body)
}

// ComponentEmbed serves a single active component as a standalone HTML
// fragment, for embedding by external pages.
func (h *Public) ComponentEmbed(w http.ResponseWriter, r *http.Request) {
	comp, err := h.components.FindActiveBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if comp == nil {
		h.Fail(w, http.StatusNotFound, "Component not found")
		return
	}
	writeHTML(w, http.StatusOK, h.engine.RenderComponent(comp))
}

// Sitemap serves sitemap.xml: the homepage, every active content slug,
// and the hrefs of active menus.
func (h *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.pageCache.Get(ctx, cache.SitemapKey()); ok {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Write(cached)
		return
	}

	slugs, err := h.contents.ActiveSlugs()
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	menus, err := h.menus.List(true, "")
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	body, err := render.Sitemap(h.baseURL, slugs, menus)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	h.pageCache.Set(ctx, cache.SitemapKey(), body)
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}

// Health reports process liveness.
func (h *Public) Health(w http.ResponseWriter, r *http.Request) {
	h.OK(w, envelope{"status": "ok"})
}
