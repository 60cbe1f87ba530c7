// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local stores files on disk under the public uploads directory. Files
// are served by the router's static file handler at /uploads/.
type Local struct {
	dir string
}

// NewLocal creates the uploads directory if needed and returns a local backend.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Save writes the file to the uploads directory.
func (l *Local) Save(_ context.Context, filename, _ string, body io.Reader, _ int64) (string, error) {
	path := filepath.Join(l.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "/uploads/" + filename, nil
}

// Delete removes the file from disk. A missing file is not an error.
func (l *Local) Delete(_ context.Context, filename string) error {
	err := os.Remove(filepath.Join(l.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// Dir returns the directory files are stored in, for the static file server.
func (l *Local) Dir() string {
	return l.dir
}
