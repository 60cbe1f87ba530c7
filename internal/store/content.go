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

// ContentStore handles all content-related database operations.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

const contentColumns = `id, slug, title, description, body, sections, featured_image,
	is_active, sort_order, category_id, created_at, updated_at`

// scanContent scans a content row, decoding the sections JSONB payload.
func scanContent(scanner interface{ Scan(...any) error }) (*models.Content, error) {
	var c models.Content
	var rawSections []byte
	err := scanner.Scan(
		&c.ID, &c.Slug, &c.Title, &c.Description, &c.Body, &rawSections,
		&c.FeaturedImage, &c.IsActive, &c.SortOrder, &c.CategoryID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Sections, err = models.ParseSections(rawSections)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	ActiveOnly bool
	CategoryID *uuid.UUID
	Search     string // case-insensitive substring on title
	Slug       string
}

// List returns contents matching the filter, ordered by sort_order then
// creation date descending.
func (s *ContentStore) List(f ListFilter) ([]models.Content, error) {
	var conds []string
	var args []any
	if f.ActiveOnly {
		conds = append(conds, "is_active = TRUE")
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if f.Slug != "" {
		args = append(args, f.Slug)
		conds = append(conds, fmt.Sprintf("slug = $%d", len(args)))
	}

	query := `SELECT ` + contentColumns + ` FROM contents`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY sort_order ASC, created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a content item by its UUID. Returns nil if not found.
func (s *ContentStore) FindByID(id uuid.UUID) (*models.Content, error) {
	row := s.db.QueryRow(`SELECT `+contentColumns+` FROM contents WHERE id = $1`, id)
	c, err := scanContent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by id: %w", err)
	}
	return c, nil
}

// FindActiveBySlug retrieves an active content item by its slug. Used for
// public page rendering. Returns nil if not found or inactive.
func (s *ContentStore) FindActiveBySlug(slug string) (*models.Content, error) {
	row := s.db.QueryRow(`SELECT `+contentColumns+` FROM contents WHERE slug = $1 AND is_active = TRUE`, slug)
	c, err := scanContent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by slug: %w", err)
	}
	return c, nil
}

// FindActiveByIDs batch-fetches the active contents among the given ids.
// Used by the section resolver: ids that are missing or inactive are simply
// absent from the result.
func (s *ContentStore) FindActiveByIDs(ids []uuid.UUID) ([]models.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.Query(`
		SELECT `+contentColumns+` FROM contents
		WHERE id IN (`+strings.Join(placeholders, ", ")+`) AND is_active = TRUE
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("find contents by ids: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListNewestByCategory returns the newest active contents of a category,
// capped at limit. Used by homepage news sections.
func (s *ContentStore) ListNewestByCategory(categoryID uuid.UUID, limit int) ([]models.Content, error) {
	rows, err := s.db.Query(`
		SELECT `+contentColumns+` FROM contents
		WHERE category_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $2
	`, categoryID, limit)
	if err != nil {
		return nil, fmt.Errorf("list newest by category: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ActiveSlugs returns the slugs of all active contents, for the sitemap.
func (s *ContentStore) ActiveSlugs() ([]string, error) {
	rows, err := s.db.Query(`SELECT slug FROM contents WHERE is_active = TRUE ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("active slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// Create inserts a new content item and returns it with the generated ID.
// The section/legacy-body invariant is enforced before the write. Returns
// ErrDuplicateSlug on a slug collision.
func (s *ContentStore) Create(c *models.Content) (*models.Content, error) {
	c.Normalize()
	rawSections, err := json.Marshal(sectionsOrEmpty(c.Sections))
	if err != nil {
		return nil, fmt.Errorf("encode sections: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO contents (slug, title, description, body, sections, featured_image,
		                      is_active, sort_order, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+contentColumns,
		c.Slug, c.Title, c.Description, c.Body, rawSections, c.FeaturedImage,
		c.IsActive, c.SortOrder, c.CategoryID,
	)
	result, err := scanContent(row)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return result, nil
}

// Update modifies an existing content item. Returns ErrDuplicateSlug on a
// slug collision.
func (s *ContentStore) Update(c *models.Content) error {
	c.Normalize()
	rawSections, err := json.Marshal(sectionsOrEmpty(c.Sections))
	if err != nil {
		return fmt.Errorf("encode sections: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE contents SET
			slug = $1, title = $2, description = $3, body = $4, sections = $5,
			featured_image = $6, is_active = $7, sort_order = $8, category_id = $9,
			updated_at = NOW()
		WHERE id = $10
	`, c.Slug, c.Title, c.Description, c.Body, rawSections,
		c.FeaturedImage, c.IsActive, c.SortOrder, c.CategoryID, c.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	return nil
}

// Delete removes a content item by ID.
func (s *ContentStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM contents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}

// sectionsOrEmpty keeps the JSONB column a JSON array rather than null.
func sectionsOrEmpty(ss models.Sections) models.Sections {
	if ss == nil {
		return models.Sections{}
	}
	return ss
}
