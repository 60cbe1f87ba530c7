// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaType is the coarse classification of an uploaded file.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaPDF   MediaType = "pdf"
	MediaOther MediaType = "other"
)

// MediaTypeFor derives the media type from a MIME type.
func MediaTypeFor(mimeType string) MediaType {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return MediaImage
	case mimeType == "application/pdf":
		return MediaPDF
	default:
		return MediaOther
	}
}

// Media represents an uploaded file. The file itself lives on local disk
// under the public uploads directory (or in S3 when configured); the
// record holds its metadata and public URL. Other entities reference
// media by URL only — there is no foreign key.
type Media struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	URL          string    `json:"url"`
	Type         MediaType `json:"type"`
	MimeType     string    `json:"mimeType"`
	SizeBytes    int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HumanSize returns a human-readable file size string.
func (m *Media) HumanSize() string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case m.SizeBytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(m.SizeBytes)/float64(mb))
	case m.SizeBytes >= kb:
		return fmt.Sprintf("%.0f KB", float64(m.SizeBytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", m.SizeBytes)
	}
}
