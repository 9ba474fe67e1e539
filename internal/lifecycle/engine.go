package lifecycle

import (
	"context"
	"strconv"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/audit"
	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/fieldstock/inventory-backend/internal/catalogue"
	"github.com/fieldstock/inventory-backend/internal/logging"
	"github.com/fieldstock/inventory-backend/internal/rbac"
	"github.com/fieldstock/inventory-backend/internal/scope"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Engine owns the asset lifecycle: registration, field verification, issue
// and return. Every state change runs inside one transaction with a row lock
// on the item, and produces an audit entry after the commit.
type Engine struct {
	db         DB
	authorizer *auth.Authorizer
	recorder   audit.Recorder
}

func NewEngine(database DB, authorizer *auth.Authorizer, recorder audit.Recorder) *Engine {
	return &Engine{
		db:         database,
		authorizer: authorizer,
		recorder:   recorder,
	}
}

// Verify applies a field-verification status change. Any forward move out
// of pending or verified is allowed; an available item can never regress to
// verified, and borrowed items are untouchable here.
func (e *Engine) Verify(ctx context.Context, itemID uuid.UUID, newStatus db.ItemStatus, notes *string) (db.Item, error) {
	actor, err := e.authorizer.Require(ctx, rbac.VerifyItems)
	if err != nil {
		return db.Item{}, err
	}
	sc := scope.Resolve(actor)

	var updated db.Item
	err = e.db.InTx(ctx, func(s Store) error {
		item, err := s.GetItemByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if !sc.AllowsItem(item.DeptID, item.DistrictID) {
			return &scope.OutOfScopeError{Resource: "item", ID: itemID}
		}

		if err := checkVerifyTransition(item.Status, newStatus); err != nil {
			return err
		}

		updated, err = s.VerifyItem(ctx, db.VerifyItemParams{
			ID:               itemID,
			Status:           newStatus,
			OperationalNotes: textFromPtr(notes),
			VerifiedBy:       &actor.ID,
		})
		return err
	})
	if err != nil {
		return db.Item{}, err
	}

	e.record(ctx, audit.Entry{
		ActorID:     &actor.ID,
		SubjectType: "item",
		SubjectID:   itemID.String(),
		Action:      "item.verify",
		Outcome:     "success",
		Metadata:    map[string]any{"status": string(newStatus)},
	})
	return updated, nil
}

func checkVerifyTransition(from, to db.ItemStatus) error {
	if from == db.ItemStatusAvailable && to == db.ItemStatusVerified {
		return ErrVerifyRegression
	}
	switch from {
	case db.ItemStatusPending, db.ItemStatusVerified:
		return nil
	}
	return &TransitionError{From: from, To: to}
}

// Issue opens a borrow record and marks the item borrowed, atomically. The
// item must be available or verified and the borrower must be an active
// account.
func (e *Engine) Issue(ctx context.Context, itemID, borrowerID uuid.UUID, expectedReturn *time.Time, notes *string) (db.BorrowRecord, error) {
	actor, err := e.authorizer.Require(ctx, rbac.CreateBorrowRecords)
	if err != nil {
		return db.BorrowRecord{}, err
	}
	sc := scope.Resolve(actor)

	var record db.BorrowRecord
	err = e.db.InTx(ctx, func(s Store) error {
		item, err := s.GetItemByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if !sc.AllowsItem(item.DeptID, item.DistrictID) {
			return &scope.OutOfScopeError{Resource: "item", ID: itemID}
		}

		switch item.Status {
		case db.ItemStatusBorrowed:
			return ErrAlreadyBorrowed
		case db.ItemStatusAvailable, db.ItemStatusVerified:
		default:
			return ErrNotBorrowable
		}

		borrower, err := s.GetUserByID(ctx, borrowerID)
		if err != nil {
			return err
		}
		if !borrower.Active {
			return ErrBorrowerInactive
		}

		record, err = s.CreateBorrowRecord(ctx, db.CreateBorrowRecordParams{
			ItemID:             itemID,
			BorrowerID:         &borrowerID,
			ExpectedReturnDate: dateFromPtr(expectedReturn),
			BorrowNotes:        textFromPtr(notes),
			IssuedBy:           &actor.ID,
		})
		if err != nil {
			return err
		}

		return s.MarkItemBorrowed(ctx, itemID)
	})
	if err != nil {
		return db.BorrowRecord{}, err
	}

	e.record(ctx, audit.Entry{
		ActorID:     &actor.ID,
		SubjectType: "item",
		SubjectID:   itemID.String(),
		Action:      "item.issue",
		Outcome:     "success",
		Metadata: map[string]any{
			"borrow_record_id": record.ID.String(),
			"borrower_id":      borrowerID.String(),
		},
	})
	return record, nil
}

// Return closes a borrow record and puts the item back to available,
// atomically. Returning an already-closed record is rejected.
func (e *Engine) Return(ctx context.Context, recordID uuid.UUID, notes *string, actualReturn *time.Time) (db.BorrowRecord, error) {
	actor, err := e.authorizer.Require(ctx, rbac.UpdateBorrowRecords)
	if err != nil {
		return db.BorrowRecord{}, err
	}
	sc := scope.Resolve(actor)

	var record db.BorrowRecord
	err = e.db.InTx(ctx, func(s Store) error {
		open, err := s.GetBorrowRecordByIDForUpdate(ctx, recordID)
		if err != nil {
			return err
		}
		item, err := s.GetItemByIDForUpdate(ctx, open.ItemID)
		if err != nil {
			return err
		}
		// Scope is decided before the record's state is inspected, so an
		// out-of-scope caller cannot tell a returned record from a missing one.
		if !sc.AllowsItem(item.DeptID, item.DistrictID) {
			return &scope.OutOfScopeError{Resource: "borrow record", ID: recordID}
		}
		if open.Status == db.BorrowStatusReturned {
			return ErrAlreadyReturned
		}

		returnedAt := time.Now()
		if actualReturn != nil {
			returnedAt = *actualReturn
		}

		record, err = s.ReturnBorrowRecord(ctx, db.ReturnBorrowRecordParams{
			ID:               recordID,
			ReturnNotes:      textFromPtr(notes),
			ActualReturnDate: pgtype.Timestamptz{Time: returnedAt, Valid: true},
			ReceivedBy:       &actor.ID,
		})
		if err != nil {
			return err
		}

		return s.MarkItemAvailable(ctx, open.ItemID)
	})
	if err != nil {
		return db.BorrowRecord{}, err
	}

	e.record(ctx, audit.Entry{
		ActorID:     &actor.ID,
		SubjectType: "borrow_record",
		SubjectID:   recordID.String(),
		Action:      "item.return",
		Outcome:     "success",
		Metadata:    map[string]any{"item_id": record.ItemID.String()},
	})
	return record, nil
}

// Create registers a new item in pending status, with its attribute values
// validated against the catalogue definitions as one unit.
func (e *Engine) Create(ctx context.Context, input CreateItemInput) (db.Item, error) {
	actor, err := e.authorizer.Require(ctx, rbac.CreateItems)
	if err != nil {
		return db.Item{}, err
	}
	sc := scope.Resolve(actor)

	if (input.Latitude == nil) != (input.Longitude == nil) {
		return db.Item{}, &FieldError{Field: "latitude/longitude", Reason: "must be supplied together"}
	}

	var created db.Item
	err = e.db.InTx(ctx, func(s Store) error {
		var districtID *uuid.UUID
		if input.VillageID != nil {
			village, err := s.GetVillageByID(ctx, *input.VillageID)
			if err != nil {
				return err
			}
			districtID = &village.DistrictID
		}
		if !sc.AllowsItem(input.DeptID, districtID) {
			return &scope.OutOfScopeError{Resource: "department", ID: input.DeptID}
		}

		if _, err := s.GetItemInfoByID(ctx, input.ItemInfoID); err != nil {
			return err
		}

		defs, err := s.ListItemAttributesByItemInfo(ctx, input.ItemInfoID)
		if err != nil {
			return err
		}
		byKey := make(map[string]db.ItemAttribute, len(defs))
		for _, d := range defs {
			byKey[d.Key] = d
		}
		// All values must validate before any row is written.
		for _, av := range input.Attributes {
			def, ok := byKey[av.Key]
			if !ok {
				return &FieldError{Field: av.Key, Reason: "unknown attribute"}
			}
			if err := catalogue.ValidateValue(av.Key, def.Datatype, av.Value); err != nil {
				return err
			}
		}

		created, err = s.CreateItem(ctx, db.CreateItemParams{
			ItemInfoID:       input.ItemInfoID,
			DeptID:           input.DeptID,
			VillageID:        input.VillageID,
			EolDate:          dateFromPtr(input.EolDate),
			OperationalNotes: textFromPtr(input.OperationalNotes),
			Latitude:         numericFromPtr(input.Latitude),
			Longitude:        numericFromPtr(input.Longitude),
			CreatedBy:        &actor.ID,
		})
		if err != nil {
			return err
		}

		for _, av := range input.Attributes {
			if _, err := s.CreateItemAttributeValue(ctx, db.CreateItemAttributeValueParams{
				ItemID:          created.ID,
				ItemAttributeID: byKey[av.Key].ID,
				Value:           av.Value,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return db.Item{}, err
	}

	e.record(ctx, audit.Entry{
		ActorID:     &actor.ID,
		SubjectType: "item",
		SubjectID:   created.ID.String(),
		Action:      "item.create",
		Outcome:     "success",
	})
	return created, nil
}

// Update edits an item's metadata. Status never moves through here. When
// both coordinates are supplied they replace the stored pair; supplying
// exactly one is rejected. Moving the item to another village re-checks the
// actor's scope against the destination district.
func (e *Engine) Update(ctx context.Context, itemID uuid.UUID, input UpdateItemInput) (db.Item, error) {
	actor, err := e.authorizer.Require(ctx, rbac.UpdateItems)
	if err != nil {
		return db.Item{}, err
	}
	sc := scope.Resolve(actor)

	if (input.Latitude == nil) != (input.Longitude == nil) {
		return db.Item{}, &FieldError{Field: "latitude/longitude", Reason: "must be supplied together"}
	}

	var updated db.Item
	err = e.db.InTx(ctx, func(s Store) error {
		item, err := s.GetItemByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if !sc.AllowsItem(item.DeptID, item.DistrictID) {
			return &scope.OutOfScopeError{Resource: "item", ID: itemID}
		}

		if input.VillageID != nil {
			village, err := s.GetVillageByID(ctx, *input.VillageID)
			if err != nil {
				return err
			}
			if !sc.AllowsItem(item.DeptID, &village.DistrictID) {
				return &scope.OutOfScopeError{Resource: "village", ID: *input.VillageID}
			}
		}

		updated, err = s.UpdateItem(ctx, db.UpdateItemParams{
			ID:               itemID,
			VillageID:        input.VillageID,
			EolDate:          dateFromPtr(input.EolDate),
			OperationalNotes: textFromPtr(input.OperationalNotes),
			Latitude:         numericFromPtr(input.Latitude),
			Longitude:        numericFromPtr(input.Longitude),
		})
		return err
	})
	if err != nil {
		return db.Item{}, err
	}

	e.record(ctx, audit.Entry{
		ActorID:     &actor.ID,
		SubjectType: "item",
		SubjectID:   itemID.String(),
		Action:      "item.update",
		Outcome:     "success",
	})
	return updated, nil
}

// AttachAttributes validates and writes attribute values onto an existing
// item as one unit. A value for a key the item already carries replaces the
// stored value.
func (e *Engine) AttachAttributes(ctx context.Context, itemID uuid.UUID, values []AttributeValue) ([]db.ListItemAttributeValuesByItemRow, error) {
	actor, err := e.authorizer.Require(ctx, rbac.UpdateItems)
	if err != nil {
		return nil, err
	}
	sc := scope.Resolve(actor)

	var out []db.ListItemAttributeValuesByItemRow
	err = e.db.InTx(ctx, func(s Store) error {
		item, err := s.GetItemByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if !sc.AllowsItem(item.DeptID, item.DistrictID) {
			return &scope.OutOfScopeError{Resource: "item", ID: itemID}
		}

		defs, err := s.ListItemAttributesByItemInfo(ctx, item.ItemInfoID)
		if err != nil {
			return err
		}
		byKey := make(map[string]db.ItemAttribute, len(defs))
		for _, d := range defs {
			byKey[d.Key] = d
		}
		// All values must validate before any row is written.
		for _, av := range values {
			def, ok := byKey[av.Key]
			if !ok {
				return &FieldError{Field: av.Key, Reason: "unknown attribute"}
			}
			if err := catalogue.ValidateValue(av.Key, def.Datatype, av.Value); err != nil {
				return err
			}
		}

		for _, av := range values {
			if _, err := s.UpsertItemAttributeValue(ctx, db.UpsertItemAttributeValueParams{
				ItemID:          itemID,
				ItemAttributeID: byKey[av.Key].ID,
				Value:           av.Value,
			}); err != nil {
				return err
			}
		}

		out, err = s.ListItemAttributeValuesByItem(ctx, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}

	e.record(ctx, audit.Entry{
		ActorID:     &actor.ID,
		SubjectType: "item",
		SubjectID:   itemID.String(),
		Action:      "item.attach_attributes",
		Outcome:     "success",
		Metadata:    map[string]any{"count": len(values)},
	})
	return out, nil
}

// Get fetches one item with its attribute values, applying the single-object
// scope check.
func (e *Engine) Get(ctx context.Context, itemID uuid.UUID) (db.GetItemByIDRow, []db.ListItemAttributeValuesByItemRow, error) {
	actor, err := e.authorizer.Require(ctx, rbac.ViewItems)
	if err != nil {
		return db.GetItemByIDRow{}, nil, err
	}
	sc := scope.Resolve(actor)

	s := e.db.Store()
	item, err := s.GetItemByID(ctx, itemID)
	if err != nil {
		return db.GetItemByIDRow{}, nil, err
	}
	if !sc.AllowsItem(item.DeptID, item.DistrictID) {
		return db.GetItemByIDRow{}, nil, &scope.OutOfScopeError{Resource: "item", ID: itemID}
	}

	values, err := s.ListItemAttributeValuesByItem(ctx, itemID)
	if err != nil {
		return db.GetItemByIDRow{}, nil, err
	}
	return item, values, nil
}

// Delete soft-deletes an item.
func (e *Engine) Delete(ctx context.Context, itemID uuid.UUID) error {
	actor, err := e.authorizer.Require(ctx, rbac.DeleteItems)
	if err != nil {
		return err
	}
	sc := scope.Resolve(actor)

	err = e.db.InTx(ctx, func(s Store) error {
		item, err := s.GetItemByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if !sc.AllowsItem(item.DeptID, item.DistrictID) {
			return &scope.OutOfScopeError{Resource: "item", ID: itemID}
		}
		return s.SoftDeleteItem(ctx, itemID)
	})
	if err != nil {
		return err
	}

	e.record(ctx, audit.Entry{
		ActorID:     &actor.ID,
		SubjectType: "item",
		SubjectID:   itemID.String(),
		Action:      "item.delete",
		Outcome:     "success",
	})
	return nil
}

// ListVisible returns the page of items the principal may see, plus the
// total for that visibility. Principals with no scope get an empty page.
func (e *Engine) ListVisible(ctx context.Context, limit, offset int32) ([]ItemSummary, int64, error) {
	actor, err := e.authorizer.Require(ctx, rbac.ViewItems)
	if err != nil {
		return nil, 0, err
	}
	sc := scope.Resolve(actor)
	s := e.db.Store()

	switch {
	case sc.Unrestricted():
		rows, err := s.ListItems(ctx, db.ListItemsParams{Limit: limit, Offset: offset})
		if err != nil {
			return nil, 0, err
		}
		total, err := s.CountItems(ctx)
		if err != nil {
			return nil, 0, err
		}
		out := make([]ItemSummary, 0, len(rows))
		for _, r := range rows {
			out = append(out, summaryFromRow(r.ID, r.ItemInfoID, r.DeptID, r.VillageID, r.DistrictID, r.Status, r.EolDate, r.OperationalNotes, r.CreatedAt))
		}
		return out, total, nil

	case sc.Empty():
		return []ItemSummary{}, 0, nil

	case sc.DistrictID != nil:
		rows, err := s.ListItemsByDistrict(ctx, db.ListItemsByDistrictParams{DistrictID: *sc.DistrictID, Limit: limit, Offset: offset})
		if err != nil {
			return nil, 0, err
		}
		total, err := s.CountItemsByDistrict(ctx, *sc.DistrictID)
		if err != nil {
			return nil, 0, err
		}
		out := make([]ItemSummary, 0, len(rows))
		for _, r := range rows {
			districtID := r.DistrictID
			out = append(out, summaryFromRow(r.ID, r.ItemInfoID, r.DeptID, r.VillageID, &districtID, r.Status, r.EolDate, r.OperationalNotes, r.CreatedAt))
		}
		return out, total, nil

	default:
		rows, err := s.ListItemsByDepartment(ctx, db.ListItemsByDepartmentParams{DeptID: *sc.DeptID, Limit: limit, Offset: offset})
		if err != nil {
			return nil, 0, err
		}
		total, err := s.CountItemsByDepartment(ctx, *sc.DeptID)
		if err != nil {
			return nil, 0, err
		}
		out := make([]ItemSummary, 0, len(rows))
		for _, r := range rows {
			out = append(out, summaryFromRow(r.ID, r.ItemInfoID, r.DeptID, r.VillageID, r.DistrictID, r.Status, r.EolDate, r.OperationalNotes, r.CreatedAt))
		}
		return out, total, nil
	}
}

// record enqueues an audit entry. Failures never fail the operation.
func (e *Engine) record(ctx context.Context, entry audit.Entry) {
	if e.recorder == nil {
		return
	}
	if err := e.recorder.Record(ctx, entry); err != nil {
		logging.Warn("failed to enqueue audit entry", "action", entry.Action, "subject_id", entry.SubjectID, "error", err)
	}
}

func summaryFromRow(id, infoID, deptID uuid.UUID, villageID, districtID *uuid.UUID, status db.ItemStatus, eol pgtype.Date, notes pgtype.Text, createdAt pgtype.Timestamptz) ItemSummary {
	s := ItemSummary{
		ID:         id,
		ItemInfoID: infoID,
		DeptID:     deptID,
		VillageID:  villageID,
		DistrictID: districtID,
		Status:     status,
	}
	if eol.Valid {
		t := eol.Time
		s.EolDate = &t
	}
	if notes.Valid {
		v := notes.String
		s.OperationalNotes = &v
	}
	if createdAt.Valid {
		s.CreatedAt = createdAt.Time
	}
	return s
}

func textFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func dateFromPtr(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func numericFromPtr(f *float64) pgtype.Numeric {
	if f == nil {
		return pgtype.Numeric{}
	}
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(*f, 'f', -1, 64)); err != nil {
		return pgtype.Numeric{}
	}
	return n
}
