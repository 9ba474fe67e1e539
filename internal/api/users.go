package api

import (
	"net/http"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/middleware"
	"github.com/fieldstock/inventory-backend/internal/rbac"
	"github.com/fieldstock/inventory-backend/internal/scope"
	"github.com/google/uuid"
)

type userResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Active     bool       `json:"active"`
	DeptID     *uuid.UUID `json:"dept_id,omitempty"`
	VillageID  *uuid.UUID `json:"village_id,omitempty"`
	DistrictID *uuid.UUID `json:"district_id,omitempty"`
}

type userListResponse struct {
	Data []userResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// ListUsers applies the same visibility boundary as item listings: the
// caller's scope decides which accounts appear.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	user, err := s.authorizer.Require(r.Context(), rbac.ViewUsers)
	if err != nil {
		status, builder := domainError("User", err)
		writeError(w, status, builder)
		return
	}
	sc := scope.Resolve(user)

	limit, offset := parsePagination(r)

	var (
		response []userResponse
		total    int64
	)

	switch {
	case sc.Unrestricted():
		rows, err := s.db.Queries().ListUsers(r.Context(), db.ListUsersParams{Limit: limit, Offset: offset})
		if err != nil {
			logger.Error("Failed to list users", "error", err)
			writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
			return
		}
		total, err = s.db.Queries().CountUsers(r.Context())
		if err != nil {
			logger.Error("Failed to count users", "error", err)
			writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
			return
		}
		for _, u := range rows {
			response = append(response, userResponse{
				ID: u.ID, Email: u.Email, Name: u.Name, Active: u.Active,
				DeptID: u.DeptID, VillageID: u.VillageID, DistrictID: u.DistrictID,
			})
		}

	case sc.Empty():
		response = []userResponse{}

	case sc.DistrictID != nil:
		rows, err := s.db.Queries().ListUsersByDistrict(r.Context(), db.ListUsersByDistrictParams{
			DistrictID: *sc.DistrictID, Limit: limit, Offset: offset,
		})
		if err != nil {
			logger.Error("Failed to list users by district", "error", err)
			writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
			return
		}
		total, err = s.db.Queries().CountUsersByDistrict(r.Context(), *sc.DistrictID)
		if err != nil {
			logger.Error("Failed to count users by district", "error", err)
			writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
			return
		}
		for _, u := range rows {
			response = append(response, userResponse{
				ID: u.ID, Email: u.Email, Name: u.Name, Active: u.Active,
				DeptID: u.DeptID, VillageID: u.VillageID, DistrictID: u.DistrictID,
			})
		}

	default:
		rows, err := s.db.Queries().ListUsersByDepartment(r.Context(), db.ListUsersByDepartmentParams{
			DeptID: sc.DeptID, Limit: limit, Offset: offset,
		})
		if err != nil {
			logger.Error("Failed to list users by department", "error", err)
			writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
			return
		}
		total, err = s.db.Queries().CountUsersByDepartment(r.Context(), sc.DeptID)
		if err != nil {
			logger.Error("Failed to count users by department", "error", err)
			writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
			return
		}
		for _, u := range rows {
			response = append(response, userResponse{
				ID: u.ID, Email: u.Email, Name: u.Name, Active: u.Active,
				DeptID: u.DeptID, VillageID: u.VillageID, DistrictID: u.DistrictID,
			})
		}
	}

	if response == nil {
		response = []userResponse{}
	}

	writeJSON(w, http.StatusOK, userListResponse{
		Data: response,
		Meta: PaginationMeta{
			Total:   int(total),
			Limit:   int(limit),
			Offset:  int(offset),
			HasMore: int(offset)+int(limit) < int(total),
		},
	})
}
