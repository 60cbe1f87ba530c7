// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponderEnvelope(t *testing.T) {
	rs := &Responder{}
	rec := httptest.NewRecorder()

	rs.OK(rec, envelope{"value": 42})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	env := decodeEnvelope(t, rec)
	if env["success"] != true {
		t.Error("success must be true")
	}
	if env["value"] != float64(42) {
		t.Errorf("value = %v", env["value"])
	}
}

func TestResponderFailFields(t *testing.T) {
	rs := &Responder{}
	rec := httptest.NewRecorder()

	rs.FailFields(rec, "Validation failed", []string{"siteName", "email"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env["success"] != false {
		t.Error("success must be false")
	}
	fields, ok := env["fields"].([]any)
	if !ok || len(fields) != 2 || fields[0] != "siteName" {
		t.Errorf("fields = %v", env["fields"])
	}
}

func TestServerErrorHidesDetailInProduction(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	boom := errors.New("pq: connection refused")

	rec := httptest.NewRecorder()
	(&Responder{Dev: false}).ServerError(rec, req, boom)
	env := decodeEnvelope(t, rec)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
	if _, leaked := env["error"]; leaked {
		t.Error("production responses must not carry the raw error")
	}
	if env["message"] != "Internal server error" {
		t.Errorf("message = %v", env["message"])
	}

	rec = httptest.NewRecorder()
	(&Responder{Dev: true}).ServerError(rec, req, boom)
	env = decodeEnvelope(t, rec)
	if env["error"] != boom.Error() {
		t.Errorf("development responses should carry the raw error, got %v", env["error"])
	}
}
