package lifecycle

import (
	"context"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/database"
	"github.com/google/uuid"
)

// Store is the slice of the query layer the engine touches. *db.Queries
// satisfies it; tests substitute function-backed fakes.
type Store interface {
	GetItemByID(ctx context.Context, id uuid.UUID) (db.GetItemByIDRow, error)
	GetItemByIDForUpdate(ctx context.Context, id uuid.UUID) (db.GetItemByIDForUpdateRow, error)
	VerifyItem(ctx context.Context, arg db.VerifyItemParams) (db.Item, error)
	UpdateItem(ctx context.Context, arg db.UpdateItemParams) (db.Item, error)
	MarkItemBorrowed(ctx context.Context, id uuid.UUID) error
	MarkItemAvailable(ctx context.Context, id uuid.UUID) error
	SoftDeleteItem(ctx context.Context, id uuid.UUID) error
	CreateItem(ctx context.Context, arg db.CreateItemParams) (db.Item, error)
	CreateItemAttributeValue(ctx context.Context, arg db.CreateItemAttributeValueParams) (db.ItemAttributeValue, error)
	UpsertItemAttributeValue(ctx context.Context, arg db.UpsertItemAttributeValueParams) (db.ItemAttributeValue, error)
	ListItemAttributesByItemInfo(ctx context.Context, itemInfoID uuid.UUID) ([]db.ItemAttribute, error)
	GetItemInfoByID(ctx context.Context, id uuid.UUID) (db.ItemInfo, error)
	GetVillageByID(ctx context.Context, id uuid.UUID) (db.Village, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (db.GetUserByIDRow, error)
	CreateBorrowRecord(ctx context.Context, arg db.CreateBorrowRecordParams) (db.BorrowRecord, error)
	GetBorrowRecordByIDForUpdate(ctx context.Context, id uuid.UUID) (db.BorrowRecord, error)
	ReturnBorrowRecord(ctx context.Context, arg db.ReturnBorrowRecordParams) (db.BorrowRecord, error)
	ListItems(ctx context.Context, arg db.ListItemsParams) ([]db.ListItemsRow, error)
	ListItemsByDistrict(ctx context.Context, arg db.ListItemsByDistrictParams) ([]db.ListItemsByDistrictRow, error)
	ListItemsByDepartment(ctx context.Context, arg db.ListItemsByDepartmentParams) ([]db.ListItemsByDepartmentRow, error)
	CountItems(ctx context.Context) (int64, error)
	CountItemsByDistrict(ctx context.Context, districtID uuid.UUID) (int64, error)
	CountItemsByDepartment(ctx context.Context, deptID uuid.UUID) (int64, error)
	ListItemAttributeValuesByItem(ctx context.Context, itemID uuid.UUID) ([]db.ListItemAttributeValuesByItemRow, error)
}

var _ Store = (*db.Queries)(nil)

// DB runs a function against a Store inside one transaction.
type DB interface {
	InTx(ctx context.Context, fn func(s Store) error) error
	Store() Store
}

type databaseDB struct {
	d *database.Database
}

// NewDB adapts the pgx-backed database to the engine's transaction boundary.
func NewDB(d *database.Database) DB {
	return databaseDB{d: d}
}

func (q databaseDB) InTx(ctx context.Context, fn func(s Store) error) error {
	return q.d.InTx(ctx, func(queries *db.Queries) error {
		return fn(queries)
	})
}

func (q databaseDB) Store() Store {
	return q.d.Queries()
}
