// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple   spaces", "multiple-spaces"},
		{"Already-a-slug", "already-a-slug"},
		{"UPPERCASE", "uppercase"},
		{"Çağrı Şöförü", "cagri-soforu"},
		{"İstanbul'da Yaşam", "istanbulda-yasam"},
		{"Straße & Café", "strasse-cafe"},
		{"100% Legal?!", "100-legal"},
		{"---trim---", "trim"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Generate(tt.in); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "Çağrı Şöförü", "a--b--c"}
	for _, in := range inputs {
		once := Generate(in)
		twice := Generate(once)
		if once != twice {
			t.Errorf("Generate not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
