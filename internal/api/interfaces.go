package api

import (
	"context"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/lifecycle"
	"github.com/google/uuid"
)

// DatabaseService defines the interface for database operations
type DatabaseService interface {
	Queries() *db.Queries
	Close()
}

// LifecycleService defines the interface for asset lifecycle operations
type LifecycleService interface {
	Create(ctx context.Context, input lifecycle.CreateItemInput) (db.Item, error)
	Get(ctx context.Context, itemID uuid.UUID) (db.GetItemByIDRow, []db.ListItemAttributeValuesByItemRow, error)
	Update(ctx context.Context, itemID uuid.UUID, input lifecycle.UpdateItemInput) (db.Item, error)
	AttachAttributes(ctx context.Context, itemID uuid.UUID, values []lifecycle.AttributeValue) ([]db.ListItemAttributeValuesByItemRow, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
	Verify(ctx context.Context, itemID uuid.UUID, newStatus db.ItemStatus, notes *string) (db.Item, error)
	Issue(ctx context.Context, itemID, borrowerID uuid.UUID, expectedReturn *time.Time, notes *string) (db.BorrowRecord, error)
	Return(ctx context.Context, recordID uuid.UUID, notes *string, actualReturn *time.Time) (db.BorrowRecord, error)
	ListVisible(ctx context.Context, limit, offset int32) ([]lifecycle.ItemSummary, int64, error)
}

// TokenService defines the interface for login and token rotation
type TokenService interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error)
	Refresh(ctx context.Context, refreshToken string) (newAccess, newRefresh string, err error)
	Logout(ctx context.Context, refreshToken string) error
}
