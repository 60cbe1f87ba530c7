// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"lorasite/internal/models"
	"lorasite/internal/storage"
	"lorasite/internal/store"
)

// maxUploadSize caps media uploads at 32 MiB.
const maxUploadSize = 32 << 20

// Media groups the media library endpoints: listing, multipart upload,
// and deletion. Files go to the configured storage backend (local disk
// or S3).
type Media struct {
	*Responder
	media   *store.MediaStore
	backend storage.Backend
}

// NewMedia creates the Media handler group.
func NewMedia(rs *Responder, media *store.MediaStore, backend storage.Backend) *Media {
	return &Media{Responder: rs, media: media, backend: backend}
}

// List returns media records, optionally filtered by type.
func (h *Media) List(w http.ResponseWriter, r *http.Request) {
	mediaType := models.MediaType(r.URL.Query().Get("type"))

	items, err := h.media.List(mediaType)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"media": items})
}

// Upload accepts a multipart form with a "file" part. Only images and
// PDFs are allowed. Stored filenames are prefixed with the upload
// timestamp so names never collide.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.Fail(w, http.StatusBadRequest, "Invalid or too large upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Fail(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !allowedUpload(mimeType) {
		h.Fail(w, http.StatusBadRequest, "Only images and PDF files are allowed")
		return
	}

	filename := fmt.Sprintf("%d-%s", time.Now().Unix(), sanitizeFilename(header.Filename))

	url, err := h.backend.Save(r.Context(), filename, mimeType, file, header.Size)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}

	created, err := h.media.Create(&models.Media{
		Filename:     filename,
		OriginalName: header.Filename,
		URL:          url,
		Type:         models.MediaTypeFor(mimeType),
		MimeType:     mimeType,
		SizeBytes:    header.Size,
	})
	if err != nil {
		// Roll back the stored file so the backend does not accumulate
		// orphans.
		if derr := h.backend.Delete(r.Context(), filename); derr != nil {
			slog.Error("orphaned upload cleanup failed", "filename", filename, "error", derr)
		}
		h.ServerError(w, r, err)
		return
	}

	h.Created(w, envelope{"media": created})
}

// Delete removes the record and the stored file. A missing physical file
// is not an error.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	item, err := h.media.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if item == nil {
		h.Fail(w, http.StatusNotFound, "Media not found")
		return
	}

	if err := h.backend.Delete(r.Context(), item.Filename); err != nil {
		slog.Warn("stored file removal failed, deleting record anyway", "filename", item.Filename, "error", err)
	}
	if err := h.media.Delete(id); err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"message": "Media deleted"})
}

// allowedUpload permits image/* and application/pdf.
func allowedUpload(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/") || mimeType == "application/pdf"
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sanitizeFilename strips path components and replaces anything outside
// a conservative character set.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "file"
	}
	return name
}
