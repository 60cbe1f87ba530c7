// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"lorasite/internal/auth"
	"lorasite/internal/database"
	"lorasite/internal/mailer"
	"lorasite/internal/middleware"
	"lorasite/internal/models"
	"lorasite/internal/store"
)

// minPasswordLength applies to registration, user management and resets.
const minPasswordLength = 6

// Auth groups the authentication endpoints: login, registration, the
// password reset flow, and optional TOTP two-factor.
type Auth struct {
	*Responder
	db     *sql.DB
	users  *store.UserStore
	resets *store.ResetCodeStore
	tokens *auth.Tokens
	mail   *mailer.Mailer
}

// NewAuth creates the Auth handler group.
func NewAuth(rs *Responder, db *sql.DB, users *store.UserStore, resets *store.ResetCodeStore, tokens *auth.Tokens, mail *mailer.Mailer) *Auth {
	return &Auth{Responder: rs, db: db, users: users, resets: resets, tokens: tokens, mail: mail}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Login verifies credentials and issues a bearer token. When the users
// table is empty and the bootstrap credentials are presented, the default
// admin is recreated first so a wiped database stays reachable. Accounts
// with TOTP enabled get a short-lived pending token instead and must call
// the TOTP verify endpoint.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !a.decodeJSON(w, r, &req) {
		return
	}

	if req.Email == models.DefaultAdminEmail && req.Password == models.DefaultAdminPassword {
		n, err := a.users.Count()
		if err != nil {
			a.ServerError(w, r, err)
			return
		}
		if n == 0 {
			if err := database.CreateDefaultAdmin(a.db); err != nil {
				a.ServerError(w, r, err)
				return
			}
			slog.Info("default admin recreated on login")
		}
	}

	user, err := a.users.FindByEmail(req.Email)
	if err != nil {
		a.ServerError(w, r, err)
		return
	}
	if user == nil || !a.users.CheckPassword(user, req.Password) {
		a.Fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !user.IsActive {
		a.Fail(w, http.StatusUnauthorized, "Account is disabled")
		return
	}

	if user.TOTPEnabled {
		pending, err := a.tokens.IssuePending(user.ID, user.Email, string(user.Role))
		if err != nil {
			a.ServerError(w, r, err)
			return
		}
		a.OK(w, envelope{"requiresTotp": true, "token": pending})
		return
	}

	token, err := a.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		a.ServerError(w, r, err)
		return
	}
	a.OK(w, envelope{"token": token, "user": user})
}

// Register creates a regular account. The role is always user regardless
// of the request body.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !a.decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		a.Fail(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if len(req.Password) < minPasswordLength {
		a.Fail(w, http.StatusBadRequest, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
		return
	}

	user, err := a.users.Create(req.Email, req.Password, req.Name, models.RoleUser)
	if errors.Is(err, store.ErrDuplicateEmail) {
		a.Fail(w, http.StatusBadRequest, "Email already in use")
		return
	}
	if err != nil {
		a.ServerError(w, r, err)
		return
	}

	token, err := a.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		a.ServerError(w, r, err)
		return
	}
	a.Created(w, envelope{"token": token, "user": user})
}

// ForgotPassword starts a reset: prior unused codes are invalidated, a
// fresh 6-digit code is stored and emailed. The response is success
// whether or not the account exists, so the endpoint does not leak which
// emails are registered.
func (a *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !a.decodeJSON(w, r, &req) {
		return
	}

	user, err := a.users.FindByEmail(req.Email)
	if err != nil {
		a.ServerError(w, r, err)
		return
	}

	if user != nil {
		code, err := randomCode()
		if err != nil {
			a.ServerError(w, r, err)
			return
		}
		if _, err := a.resets.Create(user.Email, code); err != nil {
			a.ServerError(w, r, err)
			return
		}
		if err := a.mail.SendResetCode(user.Email, code); err != nil {
			slog.Error("reset code email failed", "email", user.Email, "error", err)
		}
	}

	a.OK(w, envelope{"message": "If the account exists, a reset code has been sent"})
}

// ResetPassword redeems a code and sets the new password. Codes are
// single use and expire after ten minutes.
func (a *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Code     string `json:"code"`
		Password string `json:"password"`
	}
	if !a.decodeJSON(w, r, &req) {
		return
	}

	if len(req.Password) < minPasswordLength {
		a.Fail(w, http.StatusBadRequest, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
		return
	}

	ok, err := a.resets.Redeem(req.Email, req.Code)
	if err != nil {
		a.ServerError(w, r, err)
		return
	}
	if !ok {
		a.Fail(w, http.StatusBadRequest, "Invalid or expired reset code")
		return
	}

	if err := a.users.SetPassword(req.Email, req.Password); err != nil {
		a.ServerError(w, r, err)
		return
	}
	a.OK(w, envelope{"message": "Password updated"})
}

// TOTPSetup generates a TOTP secret for the authenticated user and
// returns the QR code as base64 PNG. The secret stays inactive until the
// verify endpoint confirms a valid code.
func (a *Auth) TOTPSetup(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil || claims.Pending {
		a.Fail(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	enrollment, err := auth.GenerateEnrollment(claims.Email)
	if err != nil {
		a.ServerError(w, r, err)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		a.Fail(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if err := a.users.SetTOTPSecret(userID, enrollment.Secret); err != nil {
		a.ServerError(w, r, err)
		return
	}

	a.OK(w, envelope{"secret": enrollment.Secret, "qrCode": enrollment.QRBase64})
}

// TOTPVerify validates a TOTP code. It completes a pending login by
// exchanging the pending token for a full one, and on first use after
// setup it switches two-factor on for the account.
func (a *Auth) TOTPVerify(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		a.Fail(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if !a.decodeJSON(w, r, &req) {
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		a.Fail(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	user, err := a.users.FindByID(userID)
	if err != nil {
		a.ServerError(w, r, err)
		return
	}
	if user == nil || user.TOTPSecret == nil {
		a.Fail(w, http.StatusBadRequest, "Two-factor is not set up for this account")
		return
	}

	if !auth.ValidateTOTP(req.Code, *user.TOTPSecret) {
		a.Fail(w, http.StatusUnauthorized, "Invalid verification code")
		return
	}

	if !user.TOTPEnabled {
		if err := a.users.EnableTOTP(user.ID); err != nil {
			a.ServerError(w, r, err)
			return
		}
	}

	token, err := a.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		a.ServerError(w, r, err)
		return
	}
	a.OK(w, envelope{"token": token, "user": user})
}

// randomCode returns a 6-digit numeric reset code.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
