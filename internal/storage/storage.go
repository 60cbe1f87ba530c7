// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage persists uploaded media files. The default backend is
// the local public uploads directory; an S3-compatible backend is used
// instead when object storage is configured.
package storage

import (
	"context"
	"io"
)

// Backend stores and removes uploaded files. URL returns the public URL
// a stored file is served from.
type Backend interface {
	// Save writes the file under the given name and returns its public URL.
	Save(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
	// Delete removes the file. Deleting a file that is already absent is
	// not an error — media deletion must stay idempotent.
	Delete(ctx context.Context, filename string) error
}
