// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestTokenIssueAndParse(t *testing.T) {
	tokens := NewTokens("test-secret")
	userID := uuid.New()

	signed, err := tokens.Issue(userID, "admin@lorasoft.com", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("userId = %q, want %q", claims.UserID, userID)
	}
	if claims.Email != "admin@lorasoft.com" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Pending {
		t.Error("full tokens must not be pending")
	}
}

func TestTokenPendingFlag(t *testing.T) {
	tokens := NewTokens("test-secret")

	signed, err := tokens.IssuePending(uuid.New(), "2fa@lorasoft.com", "admin")
	if err != nil {
		t.Fatalf("IssuePending: %v", err)
	}

	claims, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !claims.Pending {
		t.Error("pending tokens must carry the pending flag")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	signed, err := NewTokens("secret-a").Issue(uuid.New(), "a@b.c", "user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = NewTokens("secret-b").Parse(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign-secret parse error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	tokens := NewTokens("test-secret")
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Parse(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidToken", raw, err)
		}
	}
}
