// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"lorasite/internal/models"
)

// ResetCodeStore manages single-use password reset codes. Expiry is
// enforced in every lookup; expired rows are additionally pruned on each
// insert so the table does not grow unbounded.
type ResetCodeStore struct {
	db *sql.DB
}

// NewResetCodeStore returns a new ResetCodeStore.
func NewResetCodeStore(db *sql.DB) *ResetCodeStore {
	return &ResetCodeStore{db: db}
}

// Create invalidates prior unused codes for the email, prunes expired
// rows, and inserts a fresh code valid for models.ResetCodeTTL.
func (s *ResetCodeStore) Create(email, code string) (*models.ResetCode, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create reset code begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM reset_codes WHERE expires_at < NOW()`); err != nil {
		return nil, fmt.Errorf("prune reset codes: %w", err)
	}

	// A new request supersedes any outstanding code for the same address.
	if _, err := tx.Exec(`UPDATE reset_codes SET used = TRUE WHERE email = $1 AND used = FALSE`, email); err != nil {
		return nil, fmt.Errorf("invalidate prior codes: %w", err)
	}

	rc := &models.ResetCode{}
	err = tx.QueryRow(`
		INSERT INTO reset_codes (email, code, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, email, code, expires_at, used, created_at
	`, email, code, time.Now().Add(models.ResetCodeTTL)).Scan(
		&rc.ID, &rc.Email, &rc.Code, &rc.ExpiresAt, &rc.Used, &rc.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create reset code: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create reset code commit: %w", err)
	}
	return rc, nil
}

// Redeem marks a valid, unused, unexpired code as used. It returns false
// when no such code exists — already used, expired, or never issued.
func (s *ResetCodeStore) Redeem(email, code string) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE reset_codes SET used = TRUE
		WHERE email = $1 AND code = $2 AND used = FALSE AND expires_at > NOW()
	`, email, code)
	if err != nil {
		return false, fmt.Errorf("redeem reset code: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("redeem reset code rows: %w", err)
	}
	return n == 1, nil
}
