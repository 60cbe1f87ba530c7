// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"lorasite/internal/models"
	"lorasite/internal/store"
)

func TestMenuCreateWithConfirmedOverride(t *testing.T) {
	db := testDB(t)
	menus := store.NewMenuStore(db)
	h := NewMenu(&Responder{Dev: true}, menus, nil)
	t.Cleanup(func() {
		db.Exec(`DELETE FROM menus WHERE name IN ('flow-main-old', 'flow-main-new')`)
	})

	old, err := menus.Create(&models.Menu{
		Name:     "flow-main-old",
		Type:     models.MenuMain,
		Items:    models.MenuItems{{Label: "Home", Href: "/"}},
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create old: %v", err)
	}

	// Without confirmation the conflict aborts the create.
	rec := postJSON(t, h.Create, `{"name":"flow-main-new","type":"main","isActive":true}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("unconfirmed status = %d, want 409, body = %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env["requiresConfirmation"] != true {
		t.Errorf("unconfirmed envelope = %v", env)
	}

	// Confirmed: the new menu must actually be inserted and become the
	// single active main menu.
	rec = postJSON(t, h.Create, `{"name":"flow-main-new","type":"main","isActive":true,"confirmOverride":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("confirmed status = %d, body = %s", rec.Code, rec.Body.String())
	}
	env = decodeEnvelope(t, rec)
	menu, ok := env["menu"].(map[string]any)
	if !ok {
		t.Fatalf("envelope lacks menu: %v", env)
	}
	id, err := uuid.Parse(menu["id"].(string))
	if err != nil || id == uuid.Nil {
		t.Fatalf("created menu id = %v, want a real uuid", menu["id"])
	}

	active, err := menus.FindActiveByType(models.MenuMain)
	if err != nil {
		t.Fatalf("FindActiveByType: %v", err)
	}
	if active == nil || active.ID != id {
		t.Errorf("active menu = %+v, want the created one", active)
	}

	oldAfter, err := menus.FindByID(old.ID)
	if err != nil {
		t.Fatalf("FindByID old: %v", err)
	}
	if oldAfter.IsActive {
		t.Error("previous menu must be deactivated by the confirmed override")
	}
}
