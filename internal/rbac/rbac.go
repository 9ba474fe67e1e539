package rbac

// Permission names for authorization checks.
// Defined in db/migrations/20250812091501_seed_roles_permissions.sql
const (
	ViewItems   = "view_items"   // View inventory items
	CreateItems = "create_items" // Register new items
	UpdateItems = "update_items" // Edit item details
	DeleteItems = "delete_items" // Retire items
	VerifyItems = "verify_items" // Field verification of items

	ViewUsers   = "view_users"
	CreateUsers = "create_users"
	UpdateUsers = "update_users"
	DeleteUsers = "delete_users"
	VerifyUsers = "verify_users"

	ViewDepartments   = "view_departments"
	CreateDepartments = "create_departments"
	UpdateDepartments = "update_departments"
	DeleteDepartments = "delete_departments"

	ViewBorrowRecords   = "view_borrow_records"
	CreateBorrowRecords = "create_borrow_records" // Issue items
	UpdateBorrowRecords = "update_borrow_records" // Record returns
	DeleteBorrowRecords = "delete_borrow_records"

	ViewCatalogue   = "view_catalogue"
	CreateCatalogue = "create_catalogue"
	UpdateCatalogue = "update_catalogue"
	DeleteCatalogue = "delete_catalogue"

	ViewLogs    = "view_logs"
	ManageRoles = "manage_roles"
)

// Role names
const (
	RoleSuperAdmin       = "Super Admin"       // Unrestricted access
	RoleDepartmentAdmin  = "Department Admin"  // Department-scoped administrator
	RoleDistrictVerifier = "District Verifier" // District-scoped field verifier
	RoleDataEntryUser    = "Data Entry User"   // Department-scoped data entry
	RoleReadOnly         = "Read-Only"         // Unscoped read access
	RoleRBACManager      = "RBAC Manager"      // Role and permission administration
)

// ScopeKind describes how a role's data visibility is bounded.
type ScopeKind int

const (
	ScopeNone     ScopeKind = iota // no data restriction
	ScopeDistrict                  // bounded by the user's district
	ScopeDept                      // bounded by the user's department
)

// RoleScope is one entry in the ordered role-to-scope precedence list.
type RoleScope struct {
	Role string
	Kind ScopeKind
}

// RoleScopes lists roles in precedence order: the first entry matching one
// of a user's roles decides that user's visibility. Roles absent from this
// list grant no item visibility at all.
var RoleScopes = []RoleScope{
	{Role: RoleSuperAdmin, Kind: ScopeNone},
	{Role: RoleReadOnly, Kind: ScopeNone},
	{Role: RoleDistrictVerifier, Kind: ScopeDistrict},
	{Role: RoleDepartmentAdmin, Kind: ScopeDept},
	{Role: RoleDataEntryUser, Kind: ScopeDept},
}
