package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/lifecycle"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLifecycleService is a mock implementation of the lifecycle service
type MockLifecycleService struct {
	mock.Mock
}

// NewMockLifecycleService creates a new mock lifecycle service
func NewMockLifecycleService(t *testing.T) *MockLifecycleService {
	m := &MockLifecycleService{}
	m.Test(t)
	return m
}

func (m *MockLifecycleService) Create(ctx context.Context, input lifecycle.CreateItemInput) (db.Item, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(db.Item), args.Error(1)
}

func (m *MockLifecycleService) Get(ctx context.Context, itemID uuid.UUID) (db.GetItemByIDRow, []db.ListItemAttributeValuesByItemRow, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(db.GetItemByIDRow), args.Get(1).([]db.ListItemAttributeValuesByItemRow), args.Error(2)
}

func (m *MockLifecycleService) Update(ctx context.Context, itemID uuid.UUID, input lifecycle.UpdateItemInput) (db.Item, error) {
	args := m.Called(ctx, itemID, input)
	return args.Get(0).(db.Item), args.Error(1)
}

func (m *MockLifecycleService) AttachAttributes(ctx context.Context, itemID uuid.UUID, values []lifecycle.AttributeValue) ([]db.ListItemAttributeValuesByItemRow, error) {
	args := m.Called(ctx, itemID, values)
	return args.Get(0).([]db.ListItemAttributeValuesByItemRow), args.Error(1)
}

func (m *MockLifecycleService) Delete(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockLifecycleService) Verify(ctx context.Context, itemID uuid.UUID, newStatus db.ItemStatus, notes *string) (db.Item, error) {
	args := m.Called(ctx, itemID, newStatus, notes)
	return args.Get(0).(db.Item), args.Error(1)
}

func (m *MockLifecycleService) Issue(ctx context.Context, itemID, borrowerID uuid.UUID, expectedReturn *time.Time, notes *string) (db.BorrowRecord, error) {
	args := m.Called(ctx, itemID, borrowerID, expectedReturn, notes)
	return args.Get(0).(db.BorrowRecord), args.Error(1)
}

func (m *MockLifecycleService) Return(ctx context.Context, recordID uuid.UUID, notes *string, actualReturn *time.Time) (db.BorrowRecord, error) {
	args := m.Called(ctx, recordID, notes, actualReturn)
	return args.Get(0).(db.BorrowRecord), args.Error(1)
}

func (m *MockLifecycleService) ListVisible(ctx context.Context, limit, offset int32) ([]lifecycle.ItemSummary, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]lifecycle.ItemSummary), args.Get(1).(int64), args.Error(2)
}

// MockTokenService is a mock implementation of the token service
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new mock token service
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	return m
}

func (m *MockTokenService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}
