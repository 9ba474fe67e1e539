package api

import (
	"net/http"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/middleware"
	"github.com/fieldstock/inventory-backend/internal/rbac"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type districtResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Code   *string   `json:"code,omitempty"`
	Active bool      `json:"active"`
}

type departmentResponse struct {
	ID           uuid.UUID `json:"id"`
	OrgCode      string    `json:"org_code"`
	OrgShortname string    `json:"org_shortname"`
	OrgName      string    `json:"org_name"`
	OrgType      *string   `json:"org_type,omitempty"`
	Active       bool      `json:"active"`
}

type itemInfoResponse struct {
	ID           uuid.UUID `json:"id"`
	ItemCode     string    `json:"item_code"`
	ItemName     string    `json:"item_name"`
	Unit         *string   `json:"unit,omitempty"`
	Category     *string   `json:"category,omitempty"`
	ResourceType *string   `json:"resource_type,omitempty"`
	Tags         *string   `json:"tags,omitempty"`
	Active       bool      `json:"active"`
}

type createItemInfoRequest struct {
	ItemCode     string  `json:"item_code"`
	ItemName     string  `json:"item_name"`
	Unit         *string `json:"unit,omitempty"`
	Category     *string `json:"category,omitempty"`
	ResourceType *string `json:"resource_type,omitempty"`
	Tags         *string `json:"tags,omitempty"`
}

type itemAttributeResponse struct {
	ID       uuid.UUID `json:"id"`
	Key      string    `json:"key"`
	Datatype string    `json:"datatype"`
}

func (s *Server) ListDistricts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	if _, err := s.authorizer.RequireAuthenticated(r.Context()); err != nil {
		status, builder := domainError("District", err)
		writeError(w, status, builder)
		return
	}

	districts, err := s.db.Queries().ListDistricts(r.Context())
	if err != nil {
		logger.Error("Failed to list districts", "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	response := make([]districtResponse, 0, len(districts))
	for _, d := range districts {
		response = append(response, districtResponse{
			ID:     d.ID,
			Name:   d.Name,
			Code:   textToPtr(d.Code),
			Active: d.Active,
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) ListDepartments(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	if _, err := s.authorizer.Require(r.Context(), rbac.ViewDepartments); err != nil {
		status, builder := domainError("Department", err)
		writeError(w, status, builder)
		return
	}

	departments, err := s.db.Queries().ListDepartments(r.Context())
	if err != nil {
		logger.Error("Failed to list departments", "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	response := make([]departmentResponse, 0, len(departments))
	for _, d := range departments {
		response = append(response, departmentResponse{
			ID:           d.ID,
			OrgCode:      d.OrgCode,
			OrgShortname: d.OrgShortname,
			OrgName:      d.OrgName,
			OrgType:      textToPtr(d.OrgType),
			Active:       d.Active,
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) ListCatalogue(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	if _, err := s.authorizer.Require(r.Context(), rbac.ViewCatalogue); err != nil {
		status, builder := domainError("Catalogue entry", err)
		writeError(w, status, builder)
		return
	}

	limit, offset := parsePagination(r)

	entries, err := s.db.Queries().ListItemInfo(r.Context(), db.ListItemInfoParams{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error("Failed to list catalogue", "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	response := make([]itemInfoResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, itemInfoToResponse(e))
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) CreateCatalogueEntry(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	if _, err := s.authorizer.Require(r.Context(), rbac.CreateCatalogue); err != nil {
		status, builder := domainError("Catalogue entry", err)
		writeError(w, status, builder)
		return
	}

	var req createItemInfoRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Request body is required", nil))
		return
	}
	if req.ItemCode == "" || req.ItemName == "" {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid request", []ErrorDetail{
			{Field: "item_code", Message: "is required"},
			{Field: "item_name", Message: "is required"},
		}))
		return
	}

	entry, err := s.db.Queries().CreateItemInfo(r.Context(), db.CreateItemInfoParams{
		ItemCode:     req.ItemCode,
		ItemName:     req.ItemName,
		Unit:         textFromPtr(req.Unit),
		Category:     textFromPtr(req.Category),
		ResourceType: textFromPtr(req.ResourceType),
		Tags:         textFromPtr(req.Tags),
	})
	if err != nil {
		logger.Error("Failed to create catalogue entry", "error", err)
		writeError(w, http.StatusConflict, ConflictErr("Item code already exists"))
		return
	}

	writeJSON(w, http.StatusCreated, itemInfoToResponse(entry))
}

func (s *Server) ListCatalogueAttributes(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	if _, err := s.authorizer.Require(r.Context(), rbac.ViewCatalogue); err != nil {
		status, builder := domainError("Catalogue entry", err)
		writeError(w, status, builder)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid catalogue entry id", nil))
		return
	}

	if _, err := s.db.Queries().GetItemInfoByID(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, NotFound("Catalogue entry"))
		return
	}

	attributes, err := s.db.Queries().ListItemAttributesByItemInfo(r.Context(), id)
	if err != nil {
		logger.Error("Failed to list catalogue attributes", "item_info_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	response := make([]itemAttributeResponse, 0, len(attributes))
	for _, a := range attributes {
		response = append(response, itemAttributeResponse{
			ID:       a.ID,
			Key:      a.Key,
			Datatype: string(a.Datatype),
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func itemInfoToResponse(e db.ItemInfo) itemInfoResponse {
	return itemInfoResponse{
		ID:           e.ID,
		ItemCode:     e.ItemCode,
		ItemName:     e.ItemName,
		Unit:         textToPtr(e.Unit),
		Category:     textToPtr(e.Category),
		ResourceType: textToPtr(e.ResourceType),
		Tags:         textToPtr(e.Tags),
		Active:       e.Active,
	}
}

func textFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
