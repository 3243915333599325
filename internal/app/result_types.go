package app

import (
	"time"

	"khata-ledger/internal/core"

	"github.com/shopspring/decimal"
)

// CustomerResult is returned by AddCustomer.
type CustomerResult struct {
	Customer core.Customer
}

// TransactionResult is returned by AddTransaction. Customer reflects the
// balance after the transaction was applied.
type TransactionResult struct {
	Transaction core.Transaction
	Customer    core.Customer
}

// CustomerListResult is returned by ListCustomers and TopCustomers.
type CustomerListResult struct {
	Customers []core.Customer
	Term      string
}

// CustomerDetailResult is returned by GetCustomerDetail.
type CustomerDetailResult struct {
	Customer     core.Customer
	Transactions []core.Transaction // newest first
	Totals       core.TransactionTotals
}

// TransactionListResult is returned by ListTransactions.
type TransactionListResult struct {
	Transactions []core.Transaction
}

// DashboardResult is returned by GetDashboard.
type DashboardResult struct {
	Summary         core.BalanceSummary
	TotalCustomers  int
	RecentCustomers []core.Customer // first five registered
	Daily           []core.DailyTotal
}

// SupplierResult is returned by AddSupplier.
type SupplierResult struct {
	Supplier core.Supplier
}

// SupplierListResult is returned by ListSuppliers.
type SupplierListResult struct {
	Suppliers []core.Supplier
}

// InventoryItemResult is returned by AddInventoryItem.
type InventoryItemResult struct {
	Item core.InventoryItem
}

// InventoryResult is returned by GetInventory.
type InventoryResult struct {
	Items      []core.InventoryItem
	LowStock   []core.InventoryItem
	TotalValue decimal.Decimal
}

// ReportSnapshot is the report formatter's input: aggregates plus the raw
// lists they were computed from, all taken at GeneratedAt.
type ReportSnapshot struct {
	GeneratedAt    time.Time
	Summary        core.BalanceSummary
	InventoryValue decimal.Decimal
	Customers      []core.Customer
	Transactions   []core.Transaction
	Items          []core.InventoryItem
	LowStock       []core.InventoryItem
}
