package core

// Supplier is a party that inventory items are bought from.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// SupplierInput holds the fields required to register a supplier.
type SupplierInput struct {
	Name    string
	Phone   string
	Address string
	Email   string
}
