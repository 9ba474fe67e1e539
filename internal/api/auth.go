package api

import (
	"errors"
	"net/http"

	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/middleware"
	"github.com/google/uuid"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type meResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Superuser   bool       `json:"superuser"`
	Roles       []string   `json:"roles"`
	Permissions []string   `json:"permissions"`
	DeptID      *uuid.UUID `json:"dept_id,omitempty"`
	DistrictID  *uuid.UUID `json:"district_id,omitempty"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Request body is required", nil))
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, ValidationErr("Email and password are required", nil))
		return
	}

	access, refresh, err := s.tokens.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, Unauthorized("Invalid email or password"))
		case errors.Is(err, auth.ErrAccountDisabled):
			writeError(w, http.StatusForbidden, PermissionDenied("Account is disabled"))
		default:
			logger.Error("Login failed", "error", err)
			writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}

func (s *Server) RefreshToken(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	var req refreshRequest
	if err := decodeBody(r, &req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, ValidationErr("Refresh token is required", nil))
		return
	}

	access, refresh, err := s.tokens.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrRefreshInvalid) {
			writeError(w, http.StatusUnauthorized, Unauthorized("Invalid or expired refresh token"))
			return
		}
		logger.Error("Token refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	writeJSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	var req refreshRequest
	if err := decodeBody(r, &req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, ValidationErr("Refresh token is required", nil))
		return
	}

	if err := s.tokens.Logout(r.Context(), req.RefreshToken); err != nil {
		logger.Error("Logout failed", "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetAuthenticatedUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, Unauthorized("Authentication required"))
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		ID:          user.ID,
		Email:       user.Email,
		Superuser:   user.Superuser,
		Roles:       user.Roles,
		Permissions: user.Permissions,
		DeptID:      user.DeptID,
		DistrictID:  user.DistrictID,
	})
}
