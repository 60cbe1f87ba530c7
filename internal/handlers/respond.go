// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API. Every response uses the
// `{"success": bool, ...}` envelope; handler groups are structs wired
// with their stores in the router.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// envelope is the response body shape shared by every endpoint.
type envelope map[string]any

// Responder centralizes JSON envelope writing. Dev controls whether 500
// responses carry the raw error detail.
type Responder struct {
	Dev bool
}

func (rs *Responder) writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// OK writes a 200 success envelope merged with extra fields.
func (rs *Responder) OK(w http.ResponseWriter, extra envelope) {
	rs.success(w, http.StatusOK, extra)
}

// Created writes a 201 success envelope merged with extra fields.
func (rs *Responder) Created(w http.ResponseWriter, extra envelope) {
	rs.success(w, http.StatusCreated, extra)
}

func (rs *Responder) success(w http.ResponseWriter, status int, extra envelope) {
	env := envelope{"success": true}
	for k, v := range extra {
		env[k] = v
	}
	rs.writeJSON(w, status, env)
}

// Fail writes a failure envelope with the given status and message.
func (rs *Responder) Fail(w http.ResponseWriter, status int, message string) {
	rs.writeJSON(w, status, envelope{"success": false, "message": message})
}

// FailFields writes a 400 validation failure naming the offending fields.
func (rs *Responder) FailFields(w http.ResponseWriter, message string, fields []string) {
	rs.writeJSON(w, http.StatusBadRequest, envelope{
		"success": false,
		"message": message,
		"fields":  fields,
	})
}

// ServerError logs the error and writes a generic 500. The raw detail is
// included only in development.
func (rs *Responder) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	env := envelope{"success": false, "message": "Internal server error"}
	if rs.Dev {
		env["error"] = err.Error()
	}
	rs.writeJSON(w, http.StatusInternalServerError, env)
}

// decodeJSON decodes the request body into dst. Returns false after
// writing a 400 when the body is not valid JSON.
func (rs *Responder) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rs.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// pathID parses the {id} route parameter. Returns false after writing a
// 400 when it is not a valid uuid.
func (rs *Responder) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		rs.Fail(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
