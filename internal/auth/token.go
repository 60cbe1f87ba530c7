// Package auth issues and verifies the signed bearer tokens that gate the
// admin API, and wraps TOTP enrolment for accounts that enable 2FA.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the lifetime of a full access token.
const TokenTTL = 24 * time.Hour

// PendingTTL is the lifetime of the short-lived token issued between a
// successful password check and TOTP verification.
const PendingTTL = 5 * time.Minute

// ErrInvalidToken is returned when a token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated identity inside a signed token.
// Pending is set on tokens issued before TOTP verification; the admin
// gate rejects them.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Pending bool   `json:"pending,omitempty"`
}

// Tokens signs and parses bearer tokens with an HMAC secret.
type Tokens struct {
	secret []byte
}

// NewTokens creates a token helper with the given signing secret.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// Issue creates a signed access token for the user.
func (t *Tokens) Issue(userID uuid.UUID, email, role string) (string, error) {
	return t.sign(userID, email, role, false, TokenTTL)
}

// IssuePending creates a short-lived token that only the TOTP verification
// endpoint accepts.
func (t *Tokens) IssuePending(userID uuid.UUID, email, role string) (string, error) {
	return t.sign(userID, email, role, true, PendingTTL)
}

func (t *Tokens) sign(userID uuid.UUID, email, role string, pending bool, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:  userID.String(),
		Email:   email,
		Role:    role,
		Pending: pending,
	})
	return token.SignedString(t.secret)
}

// Parse verifies a token string and returns its claims.
func (t *Tokens) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
