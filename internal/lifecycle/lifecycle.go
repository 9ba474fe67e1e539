package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/google/uuid"
)

var (
	ErrAlreadyBorrowed  = errors.New("item is already borrowed")
	ErrNotBorrowable    = errors.New("item is not available for borrowing")
	ErrAlreadyReturned  = errors.New("borrow record is already returned")
	ErrVerifyRegression = errors.New("available item cannot be moved back to verified")
	ErrBorrowerInactive = errors.New("borrower account is inactive")
)

// TransitionError reports a status change the state machine does not allow.
type TransitionError struct {
	From db.ItemStatus
	To   db.ItemStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move item from %s to %s", e.From, e.To)
}

// FieldError reports a rejected request field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// AttributeValue pairs an attribute key with its raw value.
type AttributeValue struct {
	Key   string
	Value string
}

// CreateItemInput carries everything needed to register an item.
type CreateItemInput struct {
	ItemInfoID       uuid.UUID
	DeptID           uuid.UUID
	VillageID        *uuid.UUID
	EolDate          *time.Time
	OperationalNotes *string
	Latitude         *float64
	Longitude        *float64
	Attributes       []AttributeValue
}

// UpdateItemInput carries the mutable metadata of an item. Nil fields are
// left unchanged; status is never touched here, it only moves through the
// verify, issue and return operations.
type UpdateItemInput struct {
	VillageID        *uuid.UUID
	EolDate          *time.Time
	OperationalNotes *string
	Latitude         *float64
	Longitude        *float64
}

// ItemSummary is the scope-filtered listing row, independent of which listing
// query produced it.
type ItemSummary struct {
	ID               uuid.UUID
	ItemInfoID       uuid.UUID
	DeptID           uuid.UUID
	VillageID        *uuid.UUID
	DistrictID       *uuid.UUID
	Status           db.ItemStatus
	EolDate          *time.Time
	OperationalNotes *string
	CreatedAt        time.Time
}
