// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lorasite/internal/models"
)

// ComponentStore manages reusable HTML/CSS/JS components in the database.
type ComponentStore struct {
	db *sql.DB
}

// NewComponentStore returns a new ComponentStore.
func NewComponentStore(db *sql.DB) *ComponentStore {
	return &ComponentStore{db: db}
}

const componentColumns = `id, name, slug, type, html, css, js, is_active, sort_order, category_id, created_at, updated_at`

// scanComponent scans a component row.
func scanComponent(scanner interface{ Scan(...any) error }) (*models.Component, error) {
	var c models.Component
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Type, &c.HTML, &c.CSS, &c.JS,
		&c.IsActive, &c.SortOrder, &c.CategoryID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns components, optionally restricted to a type and/or active only.
func (s *ComponentStore) List(componentType models.ComponentType, activeOnly bool) ([]models.Component, error) {
	var conds []string
	var args []any
	if componentType != "" {
		args = append(args, componentType)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if activeOnly {
		conds = append(conds, "is_active = TRUE")
	}

	query := `SELECT ` + componentColumns + ` FROM components`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY sort_order, name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()

	var items []models.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a component by its UUID. Returns nil if not found.
func (s *ComponentStore) FindByID(id uuid.UUID) (*models.Component, error) {
	row := s.db.QueryRow(`SELECT `+componentColumns+` FROM components WHERE id = $1`, id)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find component by id: %w", err)
	}
	return c, nil
}

// FindActiveBySlug retrieves an active component by slug. The public
// endpoint uses this so inactive components are never served.
func (s *ComponentStore) FindActiveBySlug(slug string) (*models.Component, error) {
	row := s.db.QueryRow(`SELECT `+componentColumns+` FROM components WHERE slug = $1 AND is_active = TRUE`, slug)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find component by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new component. Returns ErrDuplicateSlug on a slug collision.
func (s *ComponentStore) Create(c *models.Component) (*models.Component, error) {
	row := s.db.QueryRow(`
		INSERT INTO components (name, slug, type, html, css, js, is_active, sort_order, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+componentColumns,
		c.Name, c.Slug, c.Type, c.HTML, c.CSS, c.JS, c.IsActive, c.SortOrder, c.CategoryID,
	)
	result, err := scanComponent(row)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("create component: %w", err)
	}
	return result, nil
}

// Update modifies an existing component. Returns ErrDuplicateSlug on a slug collision.
func (s *ComponentStore) Update(c *models.Component) error {
	_, err := s.db.Exec(`
		UPDATE components SET
			name = $1, slug = $2, type = $3, html = $4, css = $5, js = $6,
			is_active = $7, sort_order = $8, category_id = $9, updated_at = NOW()
		WHERE id = $10
	`, c.Name, c.Slug, c.Type, c.HTML, c.CSS, c.JS, c.IsActive, c.SortOrder, c.CategoryID, c.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return fmt.Errorf("update component: %w", err)
	}
	return nil
}

// Delete removes a component by ID.
func (s *ComponentStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM components WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete component: %w", err)
	}
	return nil
}
