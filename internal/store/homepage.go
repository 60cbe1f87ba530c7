// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"lorasite/internal/models"
)

// HomepageStore manages the singleton homepage composition row.
type HomepageStore struct {
	db *sql.DB
}

// NewHomepageStore returns a new HomepageStore.
func NewHomepageStore(db *sql.DB) *HomepageStore {
	return &HomepageStore{db: db}
}

// Get returns the singleton homepage settings, creating the row with a
// default hero section on first read.
func (s *HomepageStore) Get() (*models.HomepageSettings, error) {
	var raw []byte
	var hp models.HomepageSettings
	err := s.db.QueryRow(`SELECT sections, updated_at FROM homepage_settings WHERE id = 1`).
		Scan(&raw, &hp.UpdatedAt)
	if err == sql.ErrNoRows {
		return s.createDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("get homepage settings: %w", err)
	}

	if err := json.Unmarshal(raw, &hp.Sections); err != nil {
		return nil, fmt.Errorf("decode homepage sections: %w", err)
	}
	return &hp, nil
}

// createDefault lazily inserts the singleton row with a default hero
// section. A concurrent insert is tolerated via ON CONFLICT.
func (s *HomepageStore) createDefault() (*models.HomepageSettings, error) {
	def := models.DefaultHomepageSettings()
	raw, err := json.Marshal(def.Sections)
	if err != nil {
		return nil, fmt.Errorf("encode default homepage sections: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO homepage_settings (id, sections) VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING
	`, raw)
	if err != nil {
		return nil, fmt.Errorf("create default homepage settings: %w", err)
	}

	return s.Get()
}

// Update replaces the homepage sections. Payloads must already be
// validated against their type tags by the caller.
func (s *HomepageStore) Update(hp *models.HomepageSettings) error {
	if _, err := s.Get(); err != nil {
		return err
	}

	sections := hp.Sections
	if sections == nil {
		sections = models.HomeSections{}
	}
	raw, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("encode homepage sections: %w", err)
	}

	_, err = s.db.Exec(`UPDATE homepage_settings SET sections = $1, updated_at = NOW() WHERE id = 1`, raw)
	if err != nil {
		return fmt.Errorf("update homepage settings: %w", err)
	}
	return nil
}
