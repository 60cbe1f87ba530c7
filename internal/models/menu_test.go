// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

func TestMenuItemsValidate(t *testing.T) {
	tests := []struct {
		name    string
		items   MenuItems
		wantErr bool
	}{
		{"empty list", MenuItems{}, false},
		{"flat items", MenuItems{{Label: "Home", Href: "/"}, {Label: "About", Href: "/about"}}, false},
		{"one level of children", MenuItems{
			{Label: "Company", Children: []MenuItem{{Label: "Team", Href: "/team"}}},
		}, false},
		{"missing label", MenuItems{{Href: "/x"}}, true},
		{"missing child label", MenuItems{
			{Label: "Company", Children: []MenuItem{{Href: "/team"}}},
		}, true},
		{"nesting too deep", MenuItems{
			{Label: "A", Children: []MenuItem{
				{Label: "B", Children: []MenuItem{{Label: "C"}}},
			}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.items.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseMenuItems(t *testing.T) {
	items, err := ParseMenuItems([]byte(`[{"label":"Docs","href":"/docs","order":1,"children":[{"label":"API","href":"/docs/api"}]}]`))
	if err != nil {
		t.Fatalf("ParseMenuItems: %v", err)
	}
	if len(items) != 1 || items[0].Children[0].Label != "API" {
		t.Errorf("items = %+v", items)
	}

	if _, err := ParseMenuItems([]byte(`[{"href":"/nolabel"}]`)); err == nil {
		t.Error("items without labels must be rejected")
	}

	items, err = ParseMenuItems(nil)
	if err != nil || items != nil {
		t.Errorf("nil payload: items=%v err=%v, want nil/nil", items, err)
	}
}

func TestValidMenuType(t *testing.T) {
	if !ValidMenuType(MenuMain) || !ValidMenuType(MenuFooter) {
		t.Error("main and footer are valid types")
	}
	if ValidMenuType("sidebar") {
		t.Error("unknown types must be rejected")
	}
}
