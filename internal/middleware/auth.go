// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"lorasite/internal/auth"
	"lorasite/internal/models"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// claimsKey is the context key for the verified token claims.
const claimsKey contextKey = "claims"

// LoadClaims parses the Authorization bearer token, if present, and stores
// the verified claims in the request context. It does NOT enforce
// authentication — invalid or absent tokens just leave the request
// anonymous. Public read endpoints use this to widen visibility for admins.
func LoadClaims(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims := parseBearer(tokens, r); claims != nil {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects requests that do not carry a valid, non-pending
// token for an admin user. Must be applied after LoadClaims.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromCtx(r.Context())
		if claims == nil || claims.Pending || claims.Role != string(models.RoleAdmin) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromCtx extracts the verified claims from the request context.
// Returns nil for anonymous requests.
func ClaimsFromCtx(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// IsAdmin reports whether the request carries a full (non-pending) admin token.
func IsAdmin(ctx context.Context) bool {
	claims := ClaimsFromCtx(ctx)
	return claims != nil && !claims.Pending && claims.Role == string(models.RoleAdmin)
}

// parseBearer extracts and verifies the bearer token from the request.
// Returns nil when the header is absent or the token does not verify.
func parseBearer(tokens *auth.Tokens, r *http.Request) *auth.Claims {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}
	claims, err := tokens.Parse(parts[1])
	if err != nil {
		return nil
	}
	return claims
}
