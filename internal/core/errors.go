package core

import "errors"

var (
	// ErrCustomerNotFound is returned when a transaction references an unknown customer.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrSupplierNotFound is returned when an inventory item references an unknown supplier.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrInvalidTransaction is returned for a transaction with an unknown kind
	// or a non-positive amount.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrInvalidItem is returned for an inventory item with a negative
	// quantity, price or minimum stock level.
	ErrInvalidItem = errors.New("invalid inventory item")
)
