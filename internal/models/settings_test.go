// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		invalid []string
	}{
		{"all good", Settings{SiteName: "Lorasoft", Email: "hi@lorasoft.com"}, nil},
		{"missing site name", Settings{Email: "hi@lorasoft.com"}, []string{"siteName"}},
		{"whitespace site name", Settings{SiteName: "   "}, []string{"siteName"}},
		{"bad email", Settings{SiteName: "Lorasoft", Email: "not-an-email"}, []string{"email"}},
		{"empty email ok", Settings{SiteName: "Lorasoft"}, nil},
		{"both invalid", Settings{Email: "x"}, []string{"siteName", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.s.Validate()
			if len(got) != len(tt.invalid) {
				t.Fatalf("invalid fields = %v, want %v", got, tt.invalid)
			}
			for i := range tt.invalid {
				if got[i] != tt.invalid[i] {
					t.Errorf("invalid[%d] = %q, want %q", i, got[i], tt.invalid[i])
				}
			}
		})
	}
}

func TestSettingsHidesSMTPPassword(t *testing.T) {
	s := Settings{SiteName: "Lorasoft", SMTPPassword: "hunter2"}
	out, err := json.Marshal(&s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "hunter2") {
		t.Error("smtp password must never serialize")
	}
}

func TestUserHidesSecrets(t *testing.T) {
	secret := "JBSWY3DPEHPK3PXP"
	u := User{Email: "a@b.c", PasswordHash: "bcrypt-hash", TOTPSecret: &secret}
	out, err := json.Marshal(&u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "bcrypt-hash") || strings.Contains(string(out), secret) {
		t.Error("password hash and totp secret must never serialize")
	}
}

func TestMediaTypeFor(t *testing.T) {
	tests := []struct {
		mime string
		want MediaType
	}{
		{"image/png", MediaImage},
		{"image/webp", MediaImage},
		{"application/pdf", MediaPDF},
		{"text/plain", MediaOther},
	}
	for _, tt := range tests {
		if got := MediaTypeFor(tt.mime); got != tt.want {
			t.Errorf("MediaTypeFor(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}
