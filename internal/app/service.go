package app

import (
	"context"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// AddCustomer registers a customer with a zero balance.
	AddCustomer(ctx context.Context, req AddCustomerRequest) (*CustomerResult, error)

	// AddTransaction posts a credit or debit against an existing customer.
	// Returns an error wrapping core.ErrCustomerNotFound when the customer is unknown;
	// nothing is recorded in that case.
	AddTransaction(ctx context.Context, req AddTransactionRequest) (*TransactionResult, error)

	// ListCustomers returns customers whose name or phone matches term.
	// An empty term lists everyone in registration order.
	ListCustomers(ctx context.Context, term string) (*CustomerListResult, error)

	// GetCustomerDetail returns one customer with their history (newest first)
	// and per-kind transaction totals.
	GetCustomerDetail(ctx context.Context, customerID string) (*CustomerDetailResult, error)

	// ListTransactions returns every transaction in entry order.
	ListTransactions(ctx context.Context) (*TransactionListResult, error)

	// GetDashboard returns the balance summary cards, recent customers and daily chart data.
	GetDashboard(ctx context.Context) (*DashboardResult, error)

	// TopCustomers returns the n customers with the largest absolute balance.
	TopCustomers(ctx context.Context, n int) (*CustomerListResult, error)

	// AddSupplier registers a supplier.
	AddSupplier(ctx context.Context, req AddSupplierRequest) (*SupplierResult, error)

	// ListSuppliers returns all suppliers in registration order.
	ListSuppliers(ctx context.Context) (*SupplierListResult, error)

	// AddInventoryItem stocks an item from an existing supplier.
	// Returns an error wrapping core.ErrSupplierNotFound when the supplier is unknown.
	AddInventoryItem(ctx context.Context, req AddInventoryItemRequest) (*InventoryItemResult, error)

	// GetInventory returns all items, the low-stock subset and the total stock value.
	GetInventory(ctx context.Context) (*InventoryResult, error)

	// ReportSnapshot collects everything the report formatter needs in one pass.
	ReportSnapshot(ctx context.Context) (*ReportSnapshot, error)
}
