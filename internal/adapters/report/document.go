// Package report turns a ledger snapshot into a business report: a block
// structured Document, its paginated text rendering, an XLSX workbook and
// the JSON Schema external renderers validate against.
package report

import (
	"fmt"
	"strings"

	"khata-ledger/internal/app"
	"khata-ledger/internal/core"
	"khata-ledger/internal/currency"
)

const (
	topCustomerCount       = 5
	recentTransactionCount = 10
)

// Kind selects which blocks a report carries.
type Kind string

const (
	KindComplete  Kind = "complete"
	KindFinancial Kind = "financial"
	KindInventory Kind = "inventory"
)

// ParseKind resolves a user supplied kind. Blank means complete.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindComplete, nil
	case KindComplete, KindFinancial, KindInventory:
		return k, nil
	}
	return "", fmt.Errorf("unknown report kind %q (want complete, financial or inventory)", s)
}

// Label is the kind line printed under the title.
func (k Kind) Label() string {
	switch k {
	case KindFinancial:
		return "Financial Report"
	case KindInventory:
		return "Inventory Report"
	}
	return "Complete Report"
}

func (k Kind) hasCustomers() bool { return k == KindComplete || k == KindFinancial }
func (k Kind) hasInventory() bool { return k == KindComplete || k == KindInventory }

// Block is a headed group of lines. Pagination never splits a block.
type Block struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

// Document is the rendered content of a report, independent of layout.
type Document struct {
	Title       string  `json:"title"`
	Kind        Kind    `json:"kind" jsonschema:"enum=complete,enum=financial,enum=inventory"`
	GeneratedOn string  `json:"generated_on" jsonschema:"format=date"`
	Blocks      []Block `json:"blocks"`
}

// Header returns the title, kind label and generation date lines.
func (d Document) Header() []string {
	return []string{
		d.Title,
		"Report: " + d.Kind.Label(),
		"Generated on: " + d.GeneratedOn,
	}
}

// Build lays out snap as a Document of the given kind. The financial block
// is always present; customer, recent transaction and inventory blocks
// follow depending on kind.
func Build(title string, kind Kind, snap *app.ReportSnapshot, money *currency.Formatter) Document {
	doc := Document{
		Title:       title,
		Kind:        kind,
		GeneratedOn: snap.GeneratedAt.Format(core.DateLayout),
	}
	doc.Blocks = append(doc.Blocks, financialBlock(snap, money))
	if kind.hasCustomers() {
		doc.Blocks = append(doc.Blocks, customerBlock(snap, money), recentBlock(snap, money))
	}
	if kind.hasInventory() {
		doc.Blocks = append(doc.Blocks, inventoryBlock(snap, money))
	}
	return doc
}

func financialBlock(snap *app.ReportSnapshot, money *currency.Formatter) Block {
	s := snap.Summary
	return Block{
		Heading: "Financial Summary",
		Lines: []string{
			"Total Credit: " + money.Format(s.TotalCredit),
			"Total Debit: " + money.Format(s.TotalDebit),
			fmt.Sprintf("Net Balance: %s (%s)", money.Format(s.NetBalance), core.NetLabel(s.NetBalance)),
			"Total Inventory Value: " + money.Format(snap.InventoryValue),
		},
	}
}

func customerBlock(snap *app.ReportSnapshot, money *currency.Formatter) Block {
	lines := []string{fmt.Sprintf("Total Customers: %d", len(snap.Customers))}
	top := core.TopCustomersByAbsBalance(snap.Customers, topCustomerCount)
	if len(top) > 0 {
		lines = append(lines, "Top Customers:")
	}
	for i, c := range top {
		lines = append(lines, fmt.Sprintf("%d. %s: %s (%s)", i+1, c.Name, money.Format(c.Balance), c.Direction()))
	}
	return Block{Heading: "Customer Summary", Lines: lines}
}

func recentBlock(snap *app.ReportSnapshot, money *currency.Formatter) Block {
	recent := core.RecentTransactions(snap.Transactions, recentTransactionCount)
	if len(recent) == 0 {
		return Block{Heading: "Recent Transactions", Lines: []string{"No transactions recorded."}}
	}
	lines := make([]string, 0, len(recent))
	for _, t := range recent {
		lines = append(lines, fmt.Sprintf("%s — %s: %s (%s)", t.Date, t.CustomerName, money.Signed(t.SignedAmount()), t.Description))
	}
	return Block{Heading: "Recent Transactions", Lines: lines}
}

func inventoryBlock(snap *app.ReportSnapshot, money *currency.Formatter) Block {
	lines := []string{
		fmt.Sprintf("Total Items: %d", len(snap.Items)),
		fmt.Sprintf("Low Stock Items: %d", len(snap.LowStock)),
	}
	if len(snap.LowStock) > 0 {
		lines = append(lines, "Low Stock Alert:")
	}
	for _, it := range snap.LowStock {
		lines = append(lines, fmt.Sprintf("%s: %s %s (min %s)",
			it.Name, money.Number(it.Quantity), it.Unit, money.Number(it.MinStockLevel)))
	}
	return Block{Heading: "Inventory Summary", Lines: lines}
}
