package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password assigned to built users.
const DefaultPassword = "password123"

// TestDistrict represents a seeded district with one mandal and one village,
// enough geography to place items and users in it.
type TestDistrict struct {
	ID        uuid.UUID
	Name      string
	MandalID  uuid.UUID
	VillageID uuid.UUID
}

// TestDepartment represents a seeded department
type TestDepartment struct {
	ID      uuid.UUID
	OrgCode string
}

// TestCatalogue represents a seeded catalogue entry with its attribute schema
type TestCatalogue struct {
	ID         uuid.UUID
	ItemCode   string
	Attributes map[string]uuid.UUID // key -> attribute id
}

// TestUser represents a seeded user
type TestUser struct {
	ID         uuid.UUID
	Email      string
	Superuser  bool
	DeptID     *uuid.UUID
	VillageID  *uuid.UUID
	DistrictID *uuid.UUID
	Roles      []string
}

// TestItem represents a seeded physical item
type TestItem struct {
	ID         uuid.UUID
	ItemInfoID uuid.UUID
	DeptID     uuid.UUID
	VillageID  *uuid.UUID
	Status     db.ItemStatus
}

// DistrictBuilder provides a fluent interface for creating test districts
type DistrictBuilder struct {
	name   string
	testDB *TestDatabase
	t      *testing.T
}

// NewDistrict creates a new district builder
func (tdb *TestDatabase) NewDistrict(t *testing.T) *DistrictBuilder {
	return &DistrictBuilder{
		name:   fmt.Sprintf("District %s", uuid.NewString()[:8]),
		testDB: tdb,
		t:      t,
	}
}

// WithName sets the district name
func (b *DistrictBuilder) WithName(name string) *DistrictBuilder {
	b.name = name
	return b
}

// Create creates the district with one mandal and one village
func (b *DistrictBuilder) Create() *TestDistrict {
	ctx := context.Background()

	district, err := b.testDB.Queries().CreateDistrict(ctx, db.CreateDistrictParams{
		Name: b.name,
	})
	require.NoError(b.t, err, "Failed to create district")

	mandal, err := b.testDB.Queries().CreateMandal(ctx, db.CreateMandalParams{
		Name:       b.name + " Mandal",
		DistrictID: district.ID,
	})
	require.NoError(b.t, err, "Failed to create mandal")

	village, err := b.testDB.Queries().CreateVillage(ctx, db.CreateVillageParams{
		Name:       b.name + " Village",
		MandalID:   mandal.ID,
		DistrictID: district.ID,
	})
	require.NoError(b.t, err, "Failed to create village")

	return &TestDistrict{
		ID:        district.ID,
		Name:      district.Name,
		MandalID:  mandal.ID,
		VillageID: village.ID,
	}
}

// DepartmentBuilder provides a fluent interface for creating test departments
type DepartmentBuilder struct {
	orgCode string
	orgName string
	testDB  *TestDatabase
	t       *testing.T
}

// NewDepartment creates a new department builder
func (tdb *TestDatabase) NewDepartment(t *testing.T) *DepartmentBuilder {
	code := "DEPT-" + uuid.NewString()[:8]
	return &DepartmentBuilder{
		orgCode: code,
		orgName: "Test Department " + code,
		testDB:  tdb,
		t:       t,
	}
}

// WithOrgCode sets the department code
func (b *DepartmentBuilder) WithOrgCode(code string) *DepartmentBuilder {
	b.orgCode = code
	return b
}

// Create creates the department in the database
func (b *DepartmentBuilder) Create() *TestDepartment {
	ctx := context.Background()

	dept, err := b.testDB.Queries().CreateDepartment(ctx, db.CreateDepartmentParams{
		OrgCode:      b.orgCode,
		OrgShortname: b.orgCode,
		OrgName:      b.orgName,
	})
	require.NoError(b.t, err, "Failed to create department")

	return &TestDepartment{ID: dept.ID, OrgCode: dept.OrgCode}
}

// CatalogueBuilder provides a fluent interface for creating catalogue entries
type CatalogueBuilder struct {
	itemCode   string
	itemName   string
	attributes []db.CreateItemAttributeParams
	testDB     *TestDatabase
	t          *testing.T
}

// NewCatalogue creates a new catalogue builder
func (tdb *TestDatabase) NewCatalogue(t *testing.T) *CatalogueBuilder {
	code := "CAT-" + uuid.NewString()[:8]
	return &CatalogueBuilder{
		itemCode: code,
		itemName: "Test Catalogue Entry " + code,
		testDB:   tdb,
		t:        t,
	}
}

// WithItemCode sets the catalogue item code
func (b *CatalogueBuilder) WithItemCode(code string) *CatalogueBuilder {
	b.itemCode = code
	return b
}

// WithAttribute declares an attribute on the entry's schema
func (b *CatalogueBuilder) WithAttribute(key string, datatype db.AttributeDatatype) *CatalogueBuilder {
	b.attributes = append(b.attributes, db.CreateItemAttributeParams{
		Key:      key,
		Datatype: datatype,
	})
	return b
}

// Create creates the catalogue entry and its attributes
func (b *CatalogueBuilder) Create() *TestCatalogue {
	ctx := context.Background()

	info, err := b.testDB.Queries().CreateItemInfo(ctx, db.CreateItemInfoParams{
		ItemCode: b.itemCode,
		ItemName: b.itemName,
	})
	require.NoError(b.t, err, "Failed to create catalogue entry")

	attrs := make(map[string]uuid.UUID, len(b.attributes))
	for _, params := range b.attributes {
		params.ItemInfoID = info.ID
		attr, err := b.testDB.Queries().CreateItemAttribute(ctx, params)
		require.NoError(b.t, err, "Failed to create attribute %s", params.Key)
		attrs[attr.Key] = attr.ID
	}

	return &TestCatalogue{ID: info.ID, ItemCode: info.ItemCode, Attributes: attrs}
}

// UserBuilder provides a fluent interface for creating test users
type UserBuilder struct {
	email      string
	name       string
	active     bool
	superuser  bool
	deptID     *uuid.UUID
	villageID  *uuid.UUID
	districtID *uuid.UUID
	roles      []string
	testDB     *TestDatabase
	t          *testing.T
}

// NewUser creates a new user builder
func (tdb *TestDatabase) NewUser(t *testing.T) *UserBuilder {
	return &UserBuilder{
		email:  fmt.Sprintf("user-%s@example.gov", uuid.NewString()[:8]),
		name:   "Test User",
		active: true,
		testDB: tdb,
		t:      t,
	}
}

// WithEmail sets the user's email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// Inactive marks the account disabled
func (b *UserBuilder) Inactive() *UserBuilder {
	b.active = false
	return b
}

// AsSuperuser sets the superuser flag
func (b *UserBuilder) AsSuperuser() *UserBuilder {
	b.superuser = true
	return b
}

// InDepartment anchors the user to a department
func (b *UserBuilder) InDepartment(dept *TestDepartment) *UserBuilder {
	b.deptID = &dept.ID
	return b
}

// InDistrict anchors the user to a district via its village
func (b *UserBuilder) InDistrict(district *TestDistrict) *UserBuilder {
	b.villageID = &district.VillageID
	b.districtID = &district.ID
	return b
}

// WithRole assigns a role by name
func (b *UserBuilder) WithRole(roleName string) *UserBuilder {
	b.roles = append(b.roles, roleName)
	return b
}

// Create creates the user and assigns its roles
func (b *UserBuilder) Create() *TestUser {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	require.NoError(b.t, err, "Failed to hash password")

	user, err := b.testDB.Queries().CreateUser(ctx, db.CreateUserParams{
		Email:        b.email,
		Name:         b.name,
		PasswordHash: string(hash),
		Active:       b.active,
		IsSuperuser:  b.superuser,
		DeptID:       b.deptID,
		VillageID:    b.villageID,
	})
	require.NoError(b.t, err, "Failed to create user")

	for _, roleName := range b.roles {
		role, err := b.testDB.Queries().GetRoleByName(ctx, roleName)
		require.NoError(b.t, err, "Failed to look up role %s", roleName)
		err = b.testDB.Queries().AssignUserRole(ctx, db.AssignUserRoleParams{
			UserID: user.ID,
			RoleID: role.ID,
		})
		require.NoError(b.t, err, "Failed to assign role %s", roleName)
	}

	return &TestUser{
		ID:         user.ID,
		Email:      user.Email,
		Superuser:  user.IsSuperuser,
		DeptID:     b.deptID,
		VillageID:  b.villageID,
		DistrictID: b.districtID,
		Roles:      b.roles,
	}
}

// ToAuthenticatedUser loads the user's effective permissions and returns the
// request principal the middleware would have produced.
func (u *TestUser) ToAuthenticatedUser(ctx context.Context, t *testing.T, queries *db.Queries) *auth.AuthenticatedUser {
	permissions, err := queries.GetUserPermissionNames(ctx, u.ID)
	require.NoError(t, err, "Failed to load user permissions")

	return &auth.AuthenticatedUser{
		ID:          u.ID,
		Email:       u.Email,
		Superuser:   u.Superuser,
		Active:      true,
		Roles:       u.Roles,
		Permissions: permissions,
		DeptID:      u.DeptID,
		DistrictID:  u.DistrictID,
	}
}

// ItemBuilder provides a fluent interface for creating physical items
type ItemBuilder struct {
	itemInfoID uuid.UUID
	deptID     uuid.UUID
	villageID  *uuid.UUID
	status     db.ItemStatus
	createdBy  *uuid.UUID
	testDB     *TestDatabase
	t          *testing.T
}

// NewItem creates a new item builder for a catalogue entry and department
func (tdb *TestDatabase) NewItem(t *testing.T, catalogue *TestCatalogue, dept *TestDepartment) *ItemBuilder {
	return &ItemBuilder{
		itemInfoID: catalogue.ID,
		deptID:     dept.ID,
		status:     db.ItemStatusPending,
		testDB:     tdb,
		t:          t,
	}
}

// InDistrict places the item in a district's village
func (b *ItemBuilder) InDistrict(district *TestDistrict) *ItemBuilder {
	b.villageID = &district.VillageID
	return b
}

// WithStatus sets the lifecycle status the item should end up in
func (b *ItemBuilder) WithStatus(status db.ItemStatus) *ItemBuilder {
	b.status = status
	return b
}

// CreatedBy records the creating user
func (b *ItemBuilder) CreatedBy(user *TestUser) *ItemBuilder {
	b.createdBy = &user.ID
	return b
}

// Create creates the item and walks it to the requested status
func (b *ItemBuilder) Create() *TestItem {
	ctx := context.Background()

	item, err := b.testDB.Queries().CreateItem(ctx, db.CreateItemParams{
		ItemInfoID: b.itemInfoID,
		DeptID:     b.deptID,
		VillageID:  b.villageID,
		CreatedBy:  b.createdBy,
	})
	require.NoError(b.t, err, "Failed to create item")

	status := item.Status
	if b.status == db.ItemStatusVerified || b.status == db.ItemStatusAvailable || b.status == db.ItemStatusBorrowed {
		target := b.status
		if target == db.ItemStatusBorrowed {
			target = db.ItemStatusAvailable
		}
		updated, err := b.testDB.Queries().VerifyItem(ctx, db.VerifyItemParams{
			ID:         item.ID,
			Status:     target,
			VerifiedBy: b.createdBy,
		})
		require.NoError(b.t, err, "Failed to set item status")
		status = updated.Status
	}
	if b.status == db.ItemStatusBorrowed {
		require.NoError(b.t, b.testDB.Queries().MarkItemBorrowed(ctx, item.ID), "Failed to mark item borrowed")
		status = db.ItemStatusBorrowed
	}

	return &TestItem{
		ID:         item.ID,
		ItemInfoID: item.ItemInfoID,
		DeptID:     item.DeptID,
		VillageID:  item.VillageID,
		Status:     status,
	}
}
