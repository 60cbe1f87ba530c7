// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"lorasite/internal/auth"
)

func gatedRequest(t *testing.T, tokens *auth.Tokens, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler = RequireAdmin(handler)
	handler = LoadClaims(tokens)(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/content", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokens("gate-test-secret")

	adminToken, err := tokens.Issue(uuid.New(), "admin@lorasoft.com", "admin")
	if err != nil {
		t.Fatalf("Issue admin: %v", err)
	}
	userToken, err := tokens.Issue(uuid.New(), "user@lorasoft.com", "user")
	if err != nil {
		t.Fatalf("Issue user: %v", err)
	}
	pendingToken, err := tokens.IssuePending(uuid.New(), "admin@lorasoft.com", "admin")
	if err != nil {
		t.Fatalf("IssuePending: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"admin token", "Bearer " + adminToken, http.StatusOK},
		{"user token", "Bearer " + userToken, http.StatusUnauthorized},
		{"pending admin token", "Bearer " + pendingToken, http.StatusUnauthorized},
		{"no header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := gatedRequest(t, tokens, tt.header)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if body := rec.Body.String(); body == "" || body[0] != '{' {
					t.Errorf("401 must carry the JSON envelope, got %q", body)
				}
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	tokens := auth.NewTokens("gate-test-secret")
	adminToken, err := tokens.Issue(uuid.New(), "admin@lorasoft.com", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var sawAdmin bool
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAdmin = IsAdmin(r.Context())
	})
	handler = LoadClaims(tokens)(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if !sawAdmin {
		t.Error("admin token should mark the context as admin")
	}

	// Anonymous requests pass through LoadClaims without claims.
	req = httptest.NewRequest(http.MethodGet, "/api/content", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if sawAdmin {
		t.Error("anonymous request must not be admin")
	}
}
