// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lorasite/internal/models"
)

// MenuStore manages navigation menus in the database.
type MenuStore struct {
	db *sql.DB
}

// NewMenuStore returns a new MenuStore.
func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{db: db}
}

const menuColumns = `id, name, type, items, is_active, created_at, updated_at`

// scanMenu scans a menu row, decoding the items JSONB payload.
func scanMenu(scanner interface{ Scan(...any) error }) (*models.Menu, error) {
	var m models.Menu
	var rawItems []byte
	err := scanner.Scan(&m.ID, &m.Name, &m.Type, &rawItems, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Items, err = models.ParseMenuItems(rawItems)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all menus, optionally active only.
func (s *MenuStore) List(activeOnly bool, menuType models.MenuType) ([]models.Menu, error) {
	var conds []string
	var args []any
	if activeOnly {
		conds = append(conds, "is_active = TRUE")
	}
	if menuType != "" {
		args = append(args, menuType)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}

	query := `SELECT ` + menuColumns + ` FROM menus`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY type, name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()

	var items []models.Menu
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a menu by its UUID. Returns nil if not found.
func (s *MenuStore) FindByID(id uuid.UUID) (*models.Menu, error) {
	row := s.db.QueryRow(`SELECT `+menuColumns+` FROM menus WHERE id = $1`, id)
	m, err := scanMenu(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find menu by id: %w", err)
	}
	return m, nil
}

// FindActiveByType returns the active menu of the given type, or nil if
// none is active. If the invariant has been transiently violated and two
// are active, the oldest wins.
func (s *MenuStore) FindActiveByType(menuType models.MenuType) (*models.Menu, error) {
	row := s.db.QueryRow(`
		SELECT `+menuColumns+` FROM menus
		WHERE type = $1 AND is_active = TRUE
		ORDER BY created_at ASC
		LIMIT 1
	`, menuType)
	m, err := scanMenu(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active menu: %w", err)
	}
	return m, nil
}

// OtherActiveOfType returns an active menu of the given type other than
// excludeID, or nil. Used to detect activation conflicts before a save.
func (s *MenuStore) OtherActiveOfType(menuType models.MenuType, excludeID uuid.UUID) (*models.Menu, error) {
	row := s.db.QueryRow(`
		SELECT `+menuColumns+` FROM menus
		WHERE type = $1 AND is_active = TRUE AND id <> $2
		LIMIT 1
	`, menuType, excludeID)
	m, err := scanMenu(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find other active menu: %w", err)
	}
	return m, nil
}

// Create inserts a new menu. Returns ErrDuplicateName on a name collision.
func (s *MenuStore) Create(m *models.Menu) (*models.Menu, error) {
	rawItems, err := json.Marshal(itemsOrEmpty(m.Items))
	if err != nil {
		return nil, fmt.Errorf("encode menu items: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO menus (name, type, items, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING `+menuColumns,
		m.Name, m.Type, rawItems, m.IsActive,
	)
	result, err := scanMenu(row)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}
	return result, nil
}

// Update modifies an existing menu. Returns ErrDuplicateName on a name collision.
func (s *MenuStore) Update(m *models.Menu) error {
	rawItems, err := json.Marshal(itemsOrEmpty(m.Items))
	if err != nil {
		return fmt.Errorf("encode menu items: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE menus SET name = $1, type = $2, items = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
	`, m.Name, m.Type, rawItems, m.IsActive, m.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("update menu: %w", err)
	}
	return nil
}

// ActivateExclusive saves the menu with is_active = TRUE and deactivates
// every other menu of the same type, in a single transaction. A menu with
// a zero ID is inserted, anything else updated. This is the
// confirmed-override path: after commit exactly one menu of the type is
// active, and the saved row is returned.
func (s *MenuStore) ActivateExclusive(m *models.Menu) (*models.Menu, error) {
	rawItems, err := json.Marshal(itemsOrEmpty(m.Items))
	if err != nil {
		return nil, fmt.Errorf("encode menu items: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("activate menu begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE menus SET is_active = FALSE, updated_at = NOW()
		WHERE type = $1 AND is_active = TRUE AND id <> $2
	`, m.Type, m.ID); err != nil {
		return nil, fmt.Errorf("deactivate other menus: %w", err)
	}

	var row *sql.Row
	if m.ID == uuid.Nil {
		row = tx.QueryRow(`
			INSERT INTO menus (name, type, items, is_active)
			VALUES ($1, $2, $3, TRUE)
			RETURNING `+menuColumns,
			m.Name, m.Type, rawItems,
		)
	} else {
		row = tx.QueryRow(`
			UPDATE menus SET name = $1, type = $2, items = $3, is_active = TRUE, updated_at = NOW()
			WHERE id = $4
			RETURNING `+menuColumns,
			m.Name, m.Type, rawItems, m.ID,
		)
	}
	saved, err := scanMenu(row)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("activate menu: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("activate menu commit: %w", err)
	}
	return saved, nil
}

// Delete removes a menu by ID.
func (s *MenuStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	return nil
}

// itemsOrEmpty keeps the JSONB column a JSON array rather than null.
func itemsOrEmpty(items models.MenuItems) models.MenuItems {
	if items == nil {
		return models.MenuItems{}
	}
	return items
}
