package api

import (
	"net/http"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/middleware"
	"github.com/fieldstock/inventory-backend/internal/rbac"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type borrowRecordResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ItemID             uuid.UUID  `json:"item_id"`
	BorrowerID         *uuid.UUID `json:"borrower_id,omitempty"`
	Status             string     `json:"status"`
	BorrowDate         *time.Time `json:"borrow_date,omitempty"`
	ExpectedReturnDate *string    `json:"expected_return_date,omitempty"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty"`
	BorrowNotes        *string    `json:"borrow_notes,omitempty"`
	ReturnNotes        *string    `json:"return_notes,omitempty"`
	IssuedBy           *uuid.UUID `json:"issued_by,omitempty"`
	ReceivedBy         *uuid.UUID `json:"received_by,omitempty"`
}

type borrowRecordListResponse struct {
	Data []borrowRecordResponse `json:"data"`
	Meta PaginationMeta         `json:"meta"`
}

type returnItemRequest struct {
	Notes            *string `json:"notes,omitempty"`
	ActualReturnDate *string `json:"actual_return_date,omitempty"`
}

func (s *Server) ListBorrowRecords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	if _, err := s.authorizer.Require(r.Context(), rbac.ViewBorrowRecords); err != nil {
		status, builder := domainError("Borrow record", err)
		writeError(w, status, builder)
		return
	}

	limit, offset := parsePagination(r)

	records, err := s.db.Queries().ListBorrowRecords(r.Context(), db.ListBorrowRecordsParams{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error("Failed to list borrow records", "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	total, err := s.db.Queries().CountBorrowRecords(r.Context())
	if err != nil {
		logger.Error("Failed to count borrow records", "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	writeJSON(w, http.StatusOK, borrowRecordListResponse{
		Data: borrowRecordsToResponse(records),
		Meta: PaginationMeta{
			Total:   int(total),
			Limit:   int(limit),
			Offset:  int(offset),
			HasMore: int(offset)+int(limit) < int(total),
		},
	})
}

func (s *Server) GetBorrowRecord(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authorizer.Require(r.Context(), rbac.ViewBorrowRecords); err != nil {
		status, builder := domainError("Borrow record", err)
		writeError(w, status, builder)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid borrow record id", nil))
		return
	}

	record, err := s.db.Queries().GetBorrowRecordByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, NotFound("Borrow record"))
		return
	}

	writeJSON(w, http.StatusOK, borrowRecordToResponse(record))
}

func (s *Server) ReturnBorrowRecord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid borrow record id", nil))
		return
	}

	var req returnItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Request body is required", nil))
		return
	}

	var actualReturn *time.Time
	if req.ActualReturnDate != nil {
		t, err := time.Parse(time.RFC3339, *req.ActualReturnDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, ValidationErr("Invalid request", []ErrorDetail{{Field: "actual_return_date", Message: "must be RFC 3339"}}))
			return
		}
		actualReturn = &t
	}

	record, err := s.lifecycle.Return(r.Context(), id, req.Notes, actualReturn)
	if err != nil {
		status, builder := domainError("Borrow record", err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to return borrow record", "record_id", id, "error", err)
		}
		writeError(w, status, builder)
		return
	}

	writeJSON(w, http.StatusOK, borrowRecordToResponse(record))
}

func (s *Server) ListItemBorrowRecords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	if _, err := s.authorizer.Require(r.Context(), rbac.ViewBorrowRecords); err != nil {
		status, builder := domainError("Borrow record", err)
		writeError(w, status, builder)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid item id", nil))
		return
	}

	limit, offset := parsePagination(r)

	records, err := s.db.Queries().ListBorrowRecordsByItem(r.Context(), db.ListBorrowRecordsByItemParams{
		ItemID: itemID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("Failed to list borrow records by item", "item_id", itemID, "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	writeJSON(w, http.StatusOK, borrowRecordListResponse{
		Data: borrowRecordsToResponse(records),
		Meta: PaginationMeta{
			Total:   len(records),
			Limit:   int(limit),
			Offset:  int(offset),
			HasMore: len(records) == int(limit),
		},
	})
}

func (s *Server) ListUserBorrowRecords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLoggerFromContext(r.Context())

	if _, err := s.authorizer.Require(r.Context(), rbac.ViewBorrowRecords); err != nil {
		status, builder := domainError("Borrow record", err)
		writeError(w, status, builder)
		return
	}

	borrowerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, ValidationErr("Invalid user id", nil))
		return
	}

	limit, offset := parsePagination(r)

	records, err := s.db.Queries().ListBorrowRecordsByBorrower(r.Context(), db.ListBorrowRecordsByBorrowerParams{
		BorrowerID: &borrowerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		logger.Error("Failed to list borrow records by borrower", "borrower_id", borrowerID, "error", err)
		writeError(w, http.StatusInternalServerError, InternalError("An unexpected error occurred."))
		return
	}

	writeJSON(w, http.StatusOK, borrowRecordListResponse{
		Data: borrowRecordsToResponse(records),
		Meta: PaginationMeta{
			Total:   len(records),
			Limit:   int(limit),
			Offset:  int(offset),
			HasMore: len(records) == int(limit),
		},
	})
}

func borrowRecordsToResponse(records []db.BorrowRecord) []borrowRecordResponse {
	out := make([]borrowRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, borrowRecordToResponse(rec))
	}
	return out
}

func borrowRecordToResponse(rec db.BorrowRecord) borrowRecordResponse {
	resp := borrowRecordResponse{
		ID:                 rec.ID,
		ItemID:             rec.ItemID,
		BorrowerID:         rec.BorrowerID,
		Status:             string(rec.Status),
		ExpectedReturnDate: dateToString(rec.ExpectedReturnDate),
		BorrowNotes:        textToPtr(rec.BorrowNotes),
		ReturnNotes:        textToPtr(rec.ReturnNotes),
		IssuedBy:           rec.IssuedBy,
		ReceivedBy:         rec.ReceivedBy,
	}
	if rec.BorrowDate.Valid {
		t := rec.BorrowDate.Time
		resp.BorrowDate = &t
	}
	if rec.ActualReturnDate.Valid {
		t := rec.ActualReturnDate.Time
		resp.ActualReturnDate = &t
	}
	return resp
}
