// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lorasite/internal/middleware"
	"lorasite/internal/models"
	"lorasite/internal/store"
)

// Users groups the user management endpoints. Admins cannot demote,
// deactivate, or delete their own account, so the system always keeps at
// least the acting admin.
type Users struct {
	*Responder
	users *store.UserStore
}

// NewUsers creates the Users handler group.
func NewUsers(rs *Responder, users *store.UserStore) *Users {
	return &Users{Responder: rs, users: users}
}

type userRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
	IsActive *bool       `json:"isActive"`
}

// List returns all users.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List()
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"users": users})
}

// Get returns a single user by id.
func (h *Users) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if user == nil {
		h.Fail(w, http.StatusNotFound, "User not found")
		return
	}
	h.OK(w, envelope{"user": user})
}

// Create adds a user with the given role.
func (h *Users) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		h.FailFields(w, "Validation failed", []string{"email"})
		return
	}
	if len(req.Password) < minPasswordLength {
		h.Fail(w, http.StatusBadRequest, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
		return
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
		h.Fail(w, http.StatusBadRequest, "Unknown role")
		return
	}

	user, err := h.users.Create(req.Email, req.Password, req.Name, req.Role)
	if errors.Is(err, store.ErrDuplicateEmail) {
		h.Fail(w, http.StatusBadRequest, "Email already in use")
		return
	}
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.Created(w, envelope{"user": user})
}

// Update changes a user's profile, role, or active flag. Password
// changes go through here too when a password is supplied.
func (h *Users) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if user == nil {
		h.Fail(w, http.StatusNotFound, "User not found")
		return
	}

	var req userRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if req.Password != "" && len(req.Password) < minPasswordLength {
		h.Fail(w, http.StatusBadRequest, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
		return
	}

	claims := middleware.ClaimsFromCtx(r.Context())
	self := claims != nil && claims.UserID == user.ID.String()

	if req.Role != "" {
		if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
			h.Fail(w, http.StatusBadRequest, "Unknown role")
			return
		}
		if self && user.Role == models.RoleAdmin && req.Role != models.RoleAdmin {
			h.Fail(w, http.StatusBadRequest, "You cannot remove your own admin role")
			return
		}
		user.Role = req.Role
	}
	if req.IsActive != nil {
		if self && !*req.IsActive {
			h.Fail(w, http.StatusBadRequest, "You cannot deactivate your own account")
			return
		}
		user.IsActive = *req.IsActive
	}
	if req.Email != "" {
		if !strings.Contains(req.Email, "@") {
			h.FailFields(w, "Validation failed", []string{"email"})
			return
		}
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}

	if err := h.users.Update(user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			h.Fail(w, http.StatusBadRequest, "Email already in use")
			return
		}
		h.ServerError(w, r, err)
		return
	}

	if req.Password != "" {
		if err := h.users.SetPassword(user.Email, req.Password); err != nil {
			h.ServerError(w, r, err)
			return
		}
	}

	h.OK(w, envelope{"user": user})
}

// Delete removes a user. Self-deletion is blocked.
func (h *Users) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	claims := middleware.ClaimsFromCtx(r.Context())
	if claims != nil && claims.UserID == id.String() {
		h.Fail(w, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		h.ServerError(w, r, err)
		return
	}
	if user == nil {
		h.Fail(w, http.StatusNotFound, "User not found")
		return
	}

	if err := h.users.Delete(id); err != nil {
		h.ServerError(w, r, err)
		return
	}
	h.OK(w, envelope{"message": "User deleted"})
}
