package api

import (
	"net/http"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/lifecycle"
	"github.com/fieldstock/inventory-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const dateLayout = "2006-01-02"

type attributeValuePayload struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type createItemRequest struct {
	ItemInfoID       uuid.UUID               `json:"item_info_id"`
	DeptID           uuid.UUID               `json:"dept_id"`
	VillageID        *uuid.UUID              `json:"village_id,omitempty"`
	EolDate          *string                 `json:"eol_date,omitempty"`
	OperationalNotes *string                 `json:"operational_notes,omitempty"`
	Latitude         *float64                `json:"latitude,omitempty"`
	Longitude        *float64                `json:"longitude,omitempty"`
	Attributes       []attributeValuePayload `json:"attributes,omitempty"`
}

type updateItemRequest struct {
	VillageID        *uuid.UUID `json:"village_id,omitempty"`
	EolDate          *string    `json:"eol_date,omitempty"`
	OperationalNotes *string    `json:"operational_notes,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
}

type attachAttributesRequest struct {
	Attributes []attributeValuePayload `json:"attributes"`
}

type verifyItemRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

type issueItemRequest struct {
	BorrowerID         uuid.UUID `json:"borrower_id"`
	ExpectedReturnDate *string   `json:"expected_return_date,omitempty"`
	Notes              *string   `json:"notes,omitempty"`
}

type itemResponse struct {
	ID               uuid.UUID           `json:"id"`
	ItemInfoID       uuid.UUID           `json:"item_info_id"`
	DeptID           uuid.UUID           `json:"dept_id"`
	VillageID        *uuid.UUID          `json:"village_id,omitempty"`
	DistrictID       *uuid.UUID          `json:"district_id,omitempty"`
	Status           string              `json:"status"`
	EolDate          *string             `json:"eol_date,omitempty"`
	OperationalNotes *string             `json:"operational_notes,omitempty"`
	CreatedAt        *time.Time          `json:"created_at,omitempty"`
	Attributes       []attributeResponse `json:"attributes,omitempty"`
}

type attributeResponse struct {
	Key      string `json:"key"`
	Datatype string `json:"datatype"`
	Value    string `json:"value"`
}

type itemListResponse struct {
	Data []itemResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	limit, offset := parsePagination(r)

	items, total, err := s.lifecycle.ListVisible(r.Context(), limit, offset)
	if err != nil {
		status, builder := domainError("Item", err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to list items", "error", err)
		}
		writeError(w, status, builder)
		return
	}

	response := make([]itemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, summaryToResponse(item))
	}

	writeJSON(w, http.StatusOK, itemListResponse{
		Data: response,
		Meta: PaginationMeta{
			Total:   int(total),
			Limit:   int(limit),
			Offset:  int(offset),
			HasMore: int(offset)+int(limit) < int(total),
		},
	})
}

func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid item id", nil))
		return
	}

	item, values, err := s.lifecycle.Get(r.Context(), id)
	if err != nil {
		status, builder := domainError("Item", err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to get item", "item_id", id, "error", err)
		}
		writeError(w, status, builder)
		return
	}

	resp := itemResponse{
		ID:               item.ID,
		ItemInfoID:       item.ItemInfoID,
		DeptID:           item.DeptID,
		VillageID:        item.VillageID,
		DistrictID:       item.DistrictID,
		Status:           string(item.Status),
		EolDate:          dateToString(item.EolDate),
		OperationalNotes: textToPtr(item.OperationalNotes),
	}
	if item.CreatedAt.Valid {
		t := item.CreatedAt.Time
		resp.CreatedAt = &t
	}
	for _, v := range values {
		resp.Attributes = append(resp.Attributes, attributeResponse{
			Key:      v.Key,
			Datatype: string(v.Datatype),
			Value:    v.Value,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	var req createItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Request body is required", nil))
		return
	}

	input := lifecycle.CreateItemInput{
		ItemInfoID:       req.ItemInfoID,
		DeptID:           req.DeptID,
		VillageID:        req.VillageID,
		OperationalNotes: req.OperationalNotes,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	}
	if req.EolDate != nil {
		t, err := time.Parse(dateLayout, *req.EolDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, ValidationErr("Invalid request", []ErrorDetail{{Field: "eol_date", Message: "must be YYYY-MM-DD"}}))
			return
		}
		input.EolDate = &t
	}
	for _, av := range req.Attributes {
		input.Attributes = append(input.Attributes, lifecycle.AttributeValue{Key: av.Key, Value: av.Value})
	}

	item, err := s.lifecycle.Create(r.Context(), input)
	if err != nil {
		status, builder := domainError("Item", err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to create item", "error", err)
		}
		writeError(w, status, builder)
		return
	}

	writeJSON(w, http.StatusCreated, itemToResponse(item))
}

func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid item id", nil))
		return
	}

	var req updateItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Request body is required", nil))
		return
	}

	input := lifecycle.UpdateItemInput{
		VillageID:        req.VillageID,
		OperationalNotes: req.OperationalNotes,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	}
	if req.EolDate != nil {
		t, err := time.Parse(dateLayout, *req.EolDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, ValidationErr("Invalid request", []ErrorDetail{{Field: "eol_date", Message: "must be YYYY-MM-DD"}}))
			return
		}
		input.EolDate = &t
	}

	item, err := s.lifecycle.Update(r.Context(), id, input)
	if err != nil {
		status, builder := domainError("Item", err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to update item", "item_id", id, "error", err)
		}
		writeError(w, status, builder)
		return
	}

	writeJSON(w, http.StatusOK, itemToResponse(item))
}

func (s *Server) AttachItemAttributes(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid item id", nil))
		return
	}

	var req attachAttributesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Request body is required", nil))
		return
	}
	if len(req.Attributes) == 0 {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid request", []ErrorDetail{{Field: "attributes", Message: "at least one value is required"}}))
		return
	}

	values := make([]lifecycle.AttributeValue, 0, len(req.Attributes))
	for _, av := range req.Attributes {
		values = append(values, lifecycle.AttributeValue{Key: av.Key, Value: av.Value})
	}

	attached, err := s.lifecycle.AttachAttributes(r.Context(), id, values)
	if err != nil {
		status, builder := domainError("Item", err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to attach item attributes", "item_id", id, "error", err)
		}
		writeError(w, status, builder)
		return
	}

	resp := make([]attributeResponse, 0, len(attached))
	for _, v := range attached {
		resp = append(resp, attributeResponse{Key: v.Key, Datatype: string(v.Datatype), Value: v.Value})
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid item id", nil))
		return
	}

	if err := s.lifecycle.Delete(r.Context(), id); err != nil {
		status, builder := domainError("Item", err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to delete item", "item_id", id, "error", err)
		}
		writeError(w, status, builder)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) VerifyItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid item id", nil))
		return
	}

	var req verifyItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Request body is required", nil))
		return
	}

	newStatus := db.ItemStatus(req.Status)
	switch newStatus {
	case db.ItemStatusVerified, db.ItemStatusAvailable:
	default:
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid request", []ErrorDetail{{Field: "status", Message: "must be verified or available"}}))
		return
	}

	item, err := s.lifecycle.Verify(r.Context(), id, newStatus, req.Notes)
	if err != nil {
		status, builder := domainError("Item", err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to verify item", "item_id", id, "error", err)
		}
		writeError(w, status, builder)
		return
	}

	writeJSON(w, http.StatusOK, itemToResponse(item))
}

func (s *Server) IssueItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid item id", nil))
		return
	}

	var req issueItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Request body is required", nil))
		return
	}
	if req.BorrowerID == uuid.Nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid request", []ErrorDetail{{Field: "borrower_id", Message: "is required"}}))
		return
	}

	var expectedReturn *time.Time
	if req.ExpectedReturnDate != nil {
		t, err := time.Parse(dateLayout, *req.ExpectedReturnDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, ValidationErr("Invalid request", []ErrorDetail{{Field: "expected_return_date", Message: "must be YYYY-MM-DD"}}))
			return
		}
		expectedReturn = &t
	}

	record, err := s.lifecycle.Issue(r.Context(), id, req.BorrowerID, expectedReturn, req.Notes)
	if err != nil {
		status, builder := domainError("Item", err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to issue item", "item_id", id, "error", err)
		}
		writeError(w, status, builder)
		return
	}

	writeJSON(w, http.StatusCreated, borrowRecordToResponse(record))
}

func summaryToResponse(item lifecycle.ItemSummary) itemResponse {
	resp := itemResponse{
		ID:               item.ID,
		ItemInfoID:       item.ItemInfoID,
		DeptID:           item.DeptID,
		VillageID:        item.VillageID,
		DistrictID:       item.DistrictID,
		Status:           string(item.Status),
		OperationalNotes: item.OperationalNotes,
	}
	if item.EolDate != nil {
		d := item.EolDate.Format(dateLayout)
		resp.EolDate = &d
	}
	if !item.CreatedAt.IsZero() {
		t := item.CreatedAt
		resp.CreatedAt = &t
	}
	return resp
}

func itemToResponse(item db.Item) itemResponse {
	resp := itemResponse{
		ID:               item.ID,
		ItemInfoID:       item.ItemInfoID,
		DeptID:           item.DeptID,
		VillageID:        item.VillageID,
		Status:           string(item.Status),
		EolDate:          dateToString(item.EolDate),
		OperationalNotes: textToPtr(item.OperationalNotes),
	}
	if item.CreatedAt.Valid {
		t := item.CreatedAt.Time
		resp.CreatedAt = &t
	}
	return resp
}

func dateToString(d pgtype.Date) *string {
	if !d.Valid {
		return nil
	}
	s := d.Time.Format(dateLayout)
	return &s
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
