// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mailer

import (
	"errors"
	"testing"

	"lorasite/internal/models"
)

type fakeSettings struct {
	settings *models.Settings
	err      error
}

func (f *fakeSettings) Get() (*models.Settings, error) {
	return f.settings, f.err
}

func TestConfigEnabled(t *testing.T) {
	if (Config{}).Enabled() {
		t.Error("empty config must be disabled")
	}
	if !(Config{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"}).Enabled() {
		t.Error("configured host must enable sending")
	}
}

func TestUnconfiguredMailerDropsSilently(t *testing.T) {
	m := New(Config{}, nil)

	// The forgot-password flow depends on this never failing when SMTP
	// is not configured.
	if err := m.SendResetCode("someone@example.com", "123456"); err != nil {
		t.Errorf("unconfigured send should be a no-op, got %v", err)
	}
}

func TestConfigPrefersSettingsRow(t *testing.T) {
	env := Config{Host: "env.example.com", Port: 25, Username: "env", Password: "env-pass", From: "env@example.com"}
	m := New(env, &fakeSettings{settings: &models.Settings{
		SMTPHost:     "settings.example.com",
		SMTPPort:     587,
		SMTPUser:     "admin",
		SMTPPassword: "stored-pass",
		SMTPFrom:     "noreply@example.com",
	}})

	cfg := m.config()
	if cfg.Host != "settings.example.com" {
		t.Errorf("host = %q, want the settings value", cfg.Host)
	}
	if cfg.Password != "stored-pass" {
		t.Errorf("password = %q, want the stored one", cfg.Password)
	}
	if cfg.From != "noreply@example.com" {
		t.Errorf("from = %q", cfg.From)
	}
}

func TestConfigFallsBackToEnvironment(t *testing.T) {
	env := Config{Host: "env.example.com", Port: 25}

	tests := []struct {
		name   string
		source SettingsSource
	}{
		{"no settings source", nil},
		{"blank smtp host in settings", &fakeSettings{settings: &models.Settings{SiteName: "Site"}}},
		{"settings lookup error", &fakeSettings{err: errors.New("db down")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(env, tt.source)
			if cfg := m.config(); cfg.Host != "env.example.com" {
				t.Errorf("host = %q, want the environment value", cfg.Host)
			}
		})
	}
}
