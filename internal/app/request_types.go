package app

import (
	"khata-ledger/internal/core"

	"github.com/shopspring/decimal"
)

// AddCustomerRequest is the input for registering a customer.
type AddCustomerRequest struct {
	Name  string `validate:"required"`
	Phone string `validate:"required"`
}

// AddTransactionRequest is the input for posting a credit or debit.
type AddTransactionRequest struct {
	CustomerID  string               `validate:"required"`
	Kind        core.TransactionKind `validate:"required,oneof=credit debit"`
	Amount      decimal.Decimal      // must be positive
	Description string               `validate:"required"`
	Date        string               `validate:"omitempty,datetime=2006-01-02"` // empty means today
}

// AddSupplierRequest is the input for registering a supplier.
type AddSupplierRequest struct {
	Name    string `validate:"required"`
	Phone   string `validate:"required"`
	Address string
	Email   string `validate:"omitempty,email"`
}

// AddInventoryItemRequest is the input for stocking a new item.
type AddInventoryItemRequest struct {
	Name          string          `validate:"required"`
	Category      core.Category   `validate:"required"`
	Unit          core.Unit       `validate:"required"`
	SupplierID    string          `validate:"required"`
	Quantity      decimal.Decimal // must not be negative
	PricePerUnit  decimal.Decimal // must not be negative
	MinStockLevel decimal.Decimal // zero when not given
}
