// Package seed loads demo customers, transactions, suppliers and inventory
// into empty stores. Data goes through the regular store operations, so
// balances and stock values are derived exactly as they are for live entries.
package seed

import (
	_ "embed"
	"fmt"
	"io"

	"khata-ledger/internal/core"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demo []byte

// Data is the on-disk shape of a seed file. Transactions and items refer to
// customers and suppliers by ref, since ids are assigned at load time.
type Data struct {
	Customers    []CustomerSeed    `yaml:"customers"`
	Transactions []TransactionSeed `yaml:"transactions"`
	Suppliers    []SupplierSeed    `yaml:"suppliers"`
	Items        []ItemSeed        `yaml:"items"`
}

type CustomerSeed struct {
	Ref   string `yaml:"ref"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

type TransactionSeed struct {
	Customer    string `yaml:"customer"`
	Kind        string `yaml:"kind"`
	Amount      string `yaml:"amount"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
}

type SupplierSeed struct {
	Ref     string `yaml:"ref"`
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
}

type ItemSeed struct {
	Name          string `yaml:"name"`
	Category      string `yaml:"category"`
	Quantity      string `yaml:"quantity"`
	Unit          string `yaml:"unit"`
	PricePerUnit  string `yaml:"price_per_unit"`
	Supplier      string `yaml:"supplier"`
	MinStockLevel string `yaml:"min_stock_level"`
}

// Demo returns the embedded demo data set.
func Demo() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(demo, &d); err != nil {
		return nil, fmt.Errorf("parse embedded demo data: %w", err)
	}
	return &d, nil
}

// Parse decodes a seed file.
func Parse(r io.Reader) (*Data, error) {
	var d Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &d, nil
}

// Apply loads d into the stores. Customers and suppliers are added first so
// that references resolve; an unresolved reference surfaces the store's
// not-found error and stops the load.
func Apply(d *Data, ledger core.LedgerService, inventory core.InventoryService) error {
	customerIDs := make(map[string]string, len(d.Customers))
	for _, c := range d.Customers {
		customerIDs[c.Ref] = ledger.AddCustomer(c.Name, c.Phone).ID
	}

	for i, t := range d.Transactions {
		kind, ok := core.ParseTransactionKind(t.Kind)
		if !ok {
			return fmt.Errorf("transaction %d: unknown kind %q", i, t.Kind)
		}
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			return fmt.Errorf("transaction %d: amount %q: %w", i, t.Amount, err)
		}
		if _, err := ledger.AddTransaction(lookup(customerIDs, t.Customer), kind, amount, t.Description, t.Date); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}

	supplierIDs := make(map[string]string, len(d.Suppliers))
	for _, s := range d.Suppliers {
		supplierIDs[s.Ref] = inventory.AddSupplier(core.SupplierInput{
			Name:    s.Name,
			Phone:   s.Phone,
			Address: s.Address,
			Email:   s.Email,
		}).ID
	}

	for i, it := range d.Items {
		qty, err := parseDecimal(it.Quantity)
		if err != nil {
			return fmt.Errorf("item %q quantity: %w", it.Name, err)
		}
		price, err := parseDecimal(it.PricePerUnit)
		if err != nil {
			return fmt.Errorf("item %q price: %w", it.Name, err)
		}
		minLevel, err := parseDecimal(it.MinStockLevel)
		if err != nil {
			return fmt.Errorf("item %q min stock level: %w", it.Name, err)
		}
		if _, err := inventory.AddInventoryItem(core.ItemInput{
			Name:          it.Name,
			Category:      core.Category(it.Category),
			Quantity:      qty,
			Unit:          core.Unit(it.Unit),
			PricePerUnit:  price,
			SupplierID:    lookup(supplierIDs, it.Supplier),
			MinStockLevel: minLevel,
		}); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// lookup falls back to the ref itself so a missing ref reaches the store as
// an unknown id.
func lookup(ids map[string]string, ref string) string {
	if id, ok := ids[ref]; ok {
		return id
	}
	return ref
}

// parseDecimal treats an empty string as zero.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
