package core

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryService owns suppliers and the items bought from them.
type InventoryService interface {
	AddSupplier(input SupplierInput) Supplier
	Supplier(id string) (Supplier, error)
	Suppliers() []Supplier

	// AddInventoryItem fails without mutation: with ErrInvalidItem when a
	// quantity, price or minimum level is negative, and with
	// ErrSupplierNotFound when input.SupplierID does not resolve.
	AddInventoryItem(input ItemInput) (InventoryItem, error)
	Items() []InventoryItem
	LowStockItems() []InventoryItem
	TotalInventoryValue() decimal.Decimal
}

// Inventory is the in-memory InventoryService.
type Inventory struct {
	mu        sync.Mutex
	suppliers []Supplier
	byID      map[string]int
	items     []InventoryItem
}

func NewInventory() *Inventory {
	return &Inventory{byID: make(map[string]int)}
}

func (s *Inventory) AddInventoryItem(input ItemInput) (InventoryItem, error) {
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"quantity", input.Quantity},
		{"price per unit", input.PricePerUnit},
		{"min stock level", input.MinStockLevel},
	} {
		if f.value.IsNegative() {
			return InventoryItem{}, fmt.Errorf("add item %q: %s %s is negative: %w", input.Name, f.name, f.value, ErrInvalidItem)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[input.SupplierID]
	if !ok {
		return InventoryItem{}, fmt.Errorf("add item %q for supplier %q: %w", input.Name, input.SupplierID, ErrSupplierNotFound)
	}

	item := InventoryItem{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Category:      input.Category,
		Quantity:      input.Quantity,
		Unit:          input.Unit,
		PricePerUnit:  input.PricePerUnit,
		SupplierID:    input.SupplierID,
		SupplierName:  s.suppliers[idx].Name,
		MinStockLevel: input.MinStockLevel,
		TotalValue:    input.Quantity.Mul(input.PricePerUnit),
	}
	s.items = append(s.items, item)
	return item, nil
}

// Items returns a copy of all items in entry order.
func (s *Inventory) Items() []InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// LowStockItems returns the items at or below their minimum stock level, in entry order.
func (s *Inventory) LowStockItems() []InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []InventoryItem
	for _, item := range s.items {
		if item.IsLowStock() {
			out = append(out, item)
		}
	}
	return out
}

func (s *Inventory) TotalInventoryValue() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.TotalValue)
	}
	return total
}
