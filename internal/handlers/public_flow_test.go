// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"lorasite/internal/models"
	"lorasite/internal/render"
	"lorasite/internal/store"
)

func getWithSlug(t *testing.T, handler http.HandlerFunc, slug string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", slug)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestComponentEmbedServesFragment(t *testing.T) {
	db := testDB(t)
	components := store.NewComponentStore(db)

	engine, err := render.New(nil, nil, nil, nil, nil, nil, render.Fallbacks{})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	h := NewPublic(&Responder{Dev: true}, engine, nil, components, nil, nil, "")

	created, err := components.Create(&models.Component{
		Name:     "Embed Flow Widget",
		Slug:     "embed-flow-widget",
		Type:     models.ComponentCustom,
		HTML:     `<p>Widget body</p>`,
		CSS:      `.widget { display: block; }`,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create component: %v", err)
	}
	t.Cleanup(func() { components.Delete(created.ID) })

	rec := getWithSlug(t, h.ComponentEmbed, "embed-flow-widget")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, want text/html", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-component="embed-flow-widget"`) || !strings.Contains(body, "<p>Widget body</p>") {
		t.Errorf("fragment body = %s", body)
	}

	rec = getWithSlug(t, h.ComponentEmbed, "no-such-widget")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown slug status = %d, want 404", rec.Code)
	}
}
