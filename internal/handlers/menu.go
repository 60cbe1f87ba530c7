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
	"lorasite/internal/store"
)

// Menu groups the menu CRUD endpoints. At most one menu per type (main,
// footer) may be active; activating over an existing one requires the
// caller to confirm the override.
type Menu struct {
	*Responder
	menus     *store.MenuStore
	pageCache *cache.PageCache
}

// NewMenu creates the Menu handler group.
func NewMenu(rs *Responder, menus *store.MenuStore, pageCache *cache.PageCache) *Menu {
	return &Menu{Responder: rs, menus: menus, pageCache: pageCache}
}

// menuRequest is the create/update body: the menu plus the override
// confirmation flag.
type menuRequest struct {
	models.Menu
	ConfirmOverride bool `json:"confirmOverride"`
}

// List returns all menus. Non-admin callers get active-only results.
func (h *Menu) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true" || !middleware.IsAdmin(r.Context())

	menuType := models.MenuType(r.URL.Query().Get("type"))
	if menuType != "" && !models.ValidMenuType(menuType) {
		h.Fail(w, http.StatusBadRequest, "Invalid menu type")
		return
	}

	menus, err := h.menus.List(activeOnly, menuType)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"menus": menus})
}

// Get returns a single menu by id.
func (h *Menu) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	menu, err := h.menus.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if menu == nil {
		h.Fail(w, http.StatusNotFound, "Menu not found")
		return
	}
	h.OK(w, envelope{"menu": menu})
}

// Create stores a new menu, enforcing the single-active-per-type rule.
func (h *Menu) Create(w http.ResponseWriter, r *http.Request) {
	var req menuRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.validateMenu(w, &req.Menu) {
		return
	}

	if req.IsActive {
		conflict, stop := h.checkOverride(w, r, &req)
		if stop {
			return
		}
		if conflict {
			saved, err := h.menus.ActivateExclusive(&req.Menu)
			if err != nil {
				h.menuSaveError(w, r, err)
				return
			}
			h.pageCache.InvalidateAll(r.Context())
			h.Created(w, envelope{"menu": saved})
			return
		}
	}

	created, err := h.menus.Create(&req.Menu)
	if err != nil {
		h.menuSaveError(w, r, err)
		return
	}
	h.pageCache.InvalidateAll(r.Context())
	h.Created(w, envelope{"menu": created})
}

// Update replaces an existing menu, enforcing the single-active-per-type
// rule.
func (h *Menu) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.menus.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if existing == nil {
		h.Fail(w, http.StatusNotFound, "Menu not found")
		return
	}

	var req menuRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	req.Menu.ID = id
	if !h.validateMenu(w, &req.Menu) {
		return
	}

	if req.IsActive {
		conflict, stop := h.checkOverride(w, r, &req)
		if stop {
			return
		}
		if conflict {
			saved, err := h.menus.ActivateExclusive(&req.Menu)
			if err != nil {
				h.menuSaveError(w, r, err)
				return
			}
			h.pageCache.InvalidateAll(r.Context())
			h.OK(w, envelope{"menu": saved})
			return
		}
	}

	if err := h.menus.Update(&req.Menu); err != nil {
		h.menuSaveError(w, r, err)
		return
	}
	h.pageCache.InvalidateAll(r.Context())
	h.OK(w, envelope{"menu": &req.Menu})
}

// Delete removes a menu.
func (h *Menu) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.menus.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if existing == nil {
		h.Fail(w, http.StatusNotFound, "Menu not found")
		return
	}

	if err := h.menus.Delete(id); err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.pageCache.InvalidateAll(r.Context())
	h.OK(w, envelope{"message": "Menu deleted"})
}

// checkOverride looks for another active menu of the same type. When one
// exists and the caller has not confirmed, it writes the 409 response and
// reports stop. conflict is true when a confirmed override must go
// through the exclusive activation path.
func (h *Menu) checkOverride(w http.ResponseWriter, r *http.Request, req *menuRequest) (conflict, stop bool) {
	other, err := h.menus.OtherActiveOfType(req.Type, req.Menu.ID)
	if err != nil {
		h.ServerError(w, r, err)
		return false, true
	}
	if other == nil {
		return false, false
	}
	if !req.ConfirmOverride {
		h.writeJSON(w, http.StatusConflict, envelope{
			"success":              false,
			"requiresConfirmation": true,
			"message":              "Another " + string(req.Type) + " menu is active. Confirm to deactivate it.",
			"activeMenu":           other.Name,
		})
		return false, true
	}
	return true, false
}

func (h *Menu) validateMenu(w http.ResponseWriter, m *models.Menu) bool {
	if m.Name == "" {
		h.FailFields(w, "Validation failed", []string{"name"})
		return false
	}
	if !models.ValidMenuType(m.Type) {
		h.Fail(w, http.StatusBadRequest, "Unknown menu type")
		return false
	}
	if err := m.Items.Validate(); err != nil {
		h.Fail(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (h *Menu) menuSaveError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrDuplicateName) {
		h.Fail(w, http.StatusBadRequest, "A menu with this name already exists")
		return
	}
	h.ServerError(w, r, err)
}
