// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"lorasite/internal/models"
)

// SettingsStore manages the singleton site settings row.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore returns a new SettingsStore backed by the given database.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

const settingsColumns = `site_name, site_description, company_name, address, phone, email,
	meta_title, meta_description, meta_keywords,
	smtp_host, smtp_port, smtp_user, smtp_password, smtp_from,
	facebook, instagram, twitter, linkedin, youtube,
	google_analytics_id, google_verification, bing_verification, updated_at`

// scanSettings scans the settings row.
func scanSettings(scanner interface{ Scan(...any) error }) (*models.Settings, error) {
	var s models.Settings
	err := scanner.Scan(
		&s.SiteName, &s.SiteDescription, &s.CompanyName, &s.Address, &s.Phone, &s.Email,
		&s.MetaTitle, &s.MetaDescription, &s.MetaKeywords,
		&s.SMTPHost, &s.SMTPPort, &s.SMTPUser, &s.SMTPPassword, &s.SMTPFrom,
		&s.Facebook, &s.Instagram, &s.Twitter, &s.LinkedIn, &s.YouTube,
		&s.GoogleAnalyticsID, &s.GoogleVerification, &s.BingVerification, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Get returns the singleton settings, creating the row with defaults on
// first read.
func (s *SettingsStore) Get() (*models.Settings, error) {
	row := s.db.QueryRow(`SELECT ` + settingsColumns + ` FROM settings WHERE id = 1`)
	settings, err := scanSettings(row)
	if err == sql.ErrNoRows {
		return s.createDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// createDefault lazily inserts the singleton row. A concurrent insert is
// tolerated: on conflict the existing row is returned.
func (s *SettingsStore) createDefault() (*models.Settings, error) {
	def := models.DefaultSettings()
	_, err := s.db.Exec(`
		INSERT INTO settings (id, site_name, company_name, smtp_port)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, def.SiteName, def.CompanyName, def.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("create default settings: %w", err)
	}

	row := s.db.QueryRow(`SELECT ` + settingsColumns + ` FROM settings WHERE id = 1`)
	settings, err := scanSettings(row)
	if err != nil {
		return nil, fmt.Errorf("read default settings: %w", err)
	}
	return settings, nil
}

// Update replaces the singleton settings in one statement; the update is
// all-or-nothing. The row is created first if it does not exist yet.
func (s *SettingsStore) Update(settings *models.Settings) error {
	if _, err := s.Get(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		UPDATE settings SET
			site_name = $1, site_description = $2, company_name = $3,
			address = $4, phone = $5, email = $6,
			meta_title = $7, meta_description = $8, meta_keywords = $9,
			smtp_host = $10, smtp_port = $11, smtp_user = $12,
			smtp_password = $13, smtp_from = $14,
			facebook = $15, instagram = $16, twitter = $17, linkedin = $18, youtube = $19,
			google_analytics_id = $20, google_verification = $21, bing_verification = $22,
			updated_at = NOW()
		WHERE id = 1
	`,
		settings.SiteName, settings.SiteDescription, settings.CompanyName,
		settings.Address, settings.Phone, settings.Email,
		settings.MetaTitle, settings.MetaDescription, settings.MetaKeywords,
		settings.SMTPHost, settings.SMTPPort, settings.SMTPUser,
		settings.SMTPPassword, settings.SMTPFrom,
		settings.Facebook, settings.Instagram, settings.Twitter, settings.LinkedIn, settings.YouTube,
		settings.GoogleAnalyticsID, settings.GoogleVerification, settings.BingVerification,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
