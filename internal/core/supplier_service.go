package core

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// AddSupplier registers a supplier. It always succeeds.
func (s *Inventory) AddSupplier(input SupplierInput) Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	sup := Supplier{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Email:   input.Email,
	}
	s.byID[sup.ID] = len(s.suppliers)
	s.suppliers = append(s.suppliers, sup)
	return sup
}

// Supplier returns the supplier with the given id.
func (s *Inventory) Supplier(id string) (Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return Supplier{}, fmt.Errorf("supplier %q: %w", id, ErrSupplierNotFound)
	}
	return s.suppliers[idx], nil
}

// Suppliers returns a copy of all suppliers in registration order.
func (s *Inventory) Suppliers() []Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.suppliers)
}
