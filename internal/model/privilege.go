package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "pos:sell"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create POS Sale"
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// POS
	{Code: "pos:sell", Name: "Create POS Sale"},
	{Code: "pos:view", Name: "View POS Catalog"},
	// Cashier
	{Code: "shift:open", Name: "Open Shift"},
	{Code: "shift:close", Name: "Close Shift"},
	{Code: "shift:view", Name: "View Shifts"},
	{Code: "payment:create", Name: "Process Payment"},
	{Code: "payment:view", Name: "View Payments"},
	{Code: "receipt:print", Name: "Print Receipt"},
	{Code: "receipt:view", Name: "View Receipts"},
	// Inventory
	{Code: "inventory:view", Name: "View Inventory"},
	{Code: "inventory:create", Name: "Create Product"},
	{Code: "inventory:update", Name: "Update Product"},
	{Code: "inventory:adjust", Name: "Adjust Stock"},
	// HRM
	{Code: "hrm:view", Name: "View HRM"},
	{Code: "hrm:manage", Name: "Manage Employees"},
	// Accounting
	{Code: "accounting:view", Name: "View Accounting"},
	{Code: "accounting:manage", Name: "Manage Ledgers"},
	// Audit
	{Code: "audit:view", Name: "View Audit Log"},
	// Dashboard
	{Code: "dashboard:view", Name: "View Dashboard"},
	// Settings
	{Code: "settings:view", Name: "View Settings"},
	{Code: "settings:update", Name: "Update Settings"},
	// User management
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "user:delete", Name: "Delete User"},
	{Code: "user:update_privilege", Name: "Update User Privileges"},
}
