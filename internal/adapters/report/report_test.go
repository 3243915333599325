package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"khata-ledger/internal/adapters/report"
	"khata-ledger/internal/app"
	"khata-ledger/internal/core"
	"khata-ledger/internal/currency"
	"khata-ledger/internal/seed"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const title = "KhataBook Business Report"

func demoSnapshot(t *testing.T) *app.ReportSnapshot {
	t.Helper()
	d, err := seed.Demo()
	require.NoError(t, err)
	ledger, inv := core.NewLedger(), core.NewInventory()
	require.NoError(t, seed.Apply(d, ledger, inv))

	at := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	svc := app.NewAppService(ledger, inv, zap.NewNop(), app.WithClock(func() time.Time { return at }))
	snap, err := svc.ReportSnapshot(context.Background())
	require.NoError(t, err)
	return snap
}

func money() *currency.Formatter { return currency.NewFormatter("₹", "en") }

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    report.Kind
		wantErr bool
	}{
		{"", report.KindComplete, false},
		{"complete", report.KindComplete, false},
		{" Financial ", report.KindFinancial, false},
		{"inventory", report.KindInventory, false},
		{"weekly", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := report.ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_Complete(t *testing.T) {
	doc := report.Build(title, report.KindComplete, demoSnapshot(t), money())

	assert.Equal(t, []string{title, "Report: Complete Report", "Generated on: 2024-06-03"}, doc.Header())
	require.Len(t, doc.Blocks, 4)

	assert.Equal(t, report.Block{
		Heading: "Financial Summary",
		Lines: []string{
			"Total Credit: ₹5,900.00",
			"Total Debit: ₹1,200.00",
			"Net Balance: ₹4,700.00 (in your favor)",
			"Total Inventory Value: ₹45,800.00",
		},
	}, doc.Blocks[0])

	assert.Equal(t, report.Block{
		Heading: "Customer Summary",
		Lines: []string{
			"Total Customers: 3",
			"Top Customers:",
			"1. Mohammed Ali: ₹3,400.00 (to give)",
			"2. Rajesh Kumar: ₹2,500.00 (to give)",
			"3. Priya Sharma: ₹1,200.00 (to get)",
		},
	}, doc.Blocks[1])

	assert.Equal(t, report.Block{
		Heading: "Recent Transactions",
		Lines: []string{
			"2024-06-02 — Priya Sharma: -₹1,200.00 (Goods sold)",
			"2024-06-01 — Rajesh Kumar: +₹2,500.00 (Payment received)",
			"2024-05-30 — Mohammed Ali: +₹3,400.00 (Opening balance)",
		},
	}, doc.Blocks[2])

	assert.Equal(t, report.Block{
		Heading: "Inventory Summary",
		Lines: []string{
			"Total Items: 4",
			"Low Stock Items: 2",
			"Low Stock Alert:",
			"Barbed Wire Roll: 12 rolls (min 15)",
			"Granite Pillar 6ft: 40 pieces (min 40)",
		},
	}, doc.Blocks[3])
}

func TestBuild_KindsSelectBlocks(t *testing.T) {
	snap := demoSnapshot(t)
	headings := func(doc report.Document) []string {
		var out []string
		for _, b := range doc.Blocks {
			out = append(out, b.Heading)
		}
		return out
	}

	assert.Equal(t,
		[]string{"Financial Summary", "Customer Summary", "Recent Transactions"},
		headings(report.Build(title, report.KindFinancial, snap, money())))
	assert.Equal(t,
		[]string{"Financial Summary", "Inventory Summary"},
		headings(report.Build(title, report.KindInventory, snap, money())))
}

func TestBuild_EmptySnapshot(t *testing.T) {
	snap := &app.ReportSnapshot{GeneratedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	doc := report.Build(title, report.KindComplete, snap, money())

	require.Len(t, doc.Blocks, 4)
	assert.Equal(t, []string{"Total Customers: 0"}, doc.Blocks[1].Lines)
	assert.Equal(t, []string{"No transactions recorded."}, doc.Blocks[2].Lines)
	assert.Equal(t, []string{"Total Items: 0", "Low Stock Items: 0"}, doc.Blocks[3].Lines)
}

func TestRecentBlock_CapsAtTen(t *testing.T) {
	snap := &app.ReportSnapshot{GeneratedAt: time.Now()}
	for i := 1; i <= 12; i++ {
		snap.Transactions = append(snap.Transactions, core.Transaction{
			CustomerName: "A",
			Kind:         core.Credit,
			Amount:       decimal.NewFromInt(1),
			Date:         time.Date(2024, 6, i, 0, 0, 0, 0, time.UTC).Format(core.DateLayout),
		})
	}
	doc := report.Build(title, report.KindFinancial, snap, money())

	recent := doc.Blocks[2].Lines
	require.Len(t, recent, 10)
	assert.True(t, strings.HasPrefix(recent[0], "2024-06-12"))
	assert.True(t, strings.HasPrefix(recent[9], "2024-06-03"))
}

func TestPaginate(t *testing.T) {
	doc := report.Build(title, report.KindComplete, demoSnapshot(t), money())

	// Header 4, financial 6, customers 7, recent 5, inventory 7.
	pages := report.Paginate(doc, 8)
	require.Len(t, pages, 3)
	assert.Equal(t, title, pages[0].Lines[0])
	assert.Len(t, pages[0].Lines, 10)
	assert.Equal(t, "Customer Summary", pages[1].Lines[0])
	assert.Len(t, pages[1].Lines, 12)
	assert.Equal(t, "Inventory Summary", pages[2].Lines[0])
	assert.Equal(t, 3, pages[2].Number)

	assert.Len(t, report.Paginate(doc, 40), 1)
	assert.Len(t, report.Paginate(doc, 0), 1)
}

func TestPaginate_OversizedBlockStaysWhole(t *testing.T) {
	doc := report.Document{
		Title: "T", Kind: report.KindComplete, GeneratedOn: "2024-06-01",
		Blocks: []report.Block{
			{Heading: "Big", Lines: []string{"1", "2", "3", "4", "5", "6"}},
			{Heading: "Small", Lines: []string{"x"}},
		},
	}
	pages := report.Paginate(doc, 4)

	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Lines, 4+8)
	assert.Equal(t, []string{"Small", "  x", ""}, pages[1].Lines)
}

func TestWriteText(t *testing.T) {
	doc := report.Build(title, report.KindComplete, demoSnapshot(t), money())
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, report.Paginate(doc, 8)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, title+"\n"))
	assert.Contains(t, out, "Page 1 of 3")
	assert.Contains(t, out, "Page 3 of 3")
	assert.Contains(t, out, "  Net Balance: ₹4,700.00 (in your favor)")
}

func TestWriteXLSX(t *testing.T) {
	snap := demoSnapshot(t)
	doc := report.Build(title, report.KindComplete, snap, money())

	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, doc, snap))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Transactions", "Inventory"}, f.GetSheetList())

	cell := func(sheet, axis string) string {
		v, err := f.GetCellValue(sheet, axis)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, title, cell("Summary", "A1"))
	assert.Equal(t, "Financial Summary", cell("Summary", "A5"))
	assert.Equal(t, "Total Credit: ₹5,900.00", cell("Summary", "B6"))

	assert.Equal(t, "Customer", cell("Transactions", "B1"))
	assert.Equal(t, "Rajesh Kumar", cell("Transactions", "B2"))
	assert.Equal(t, "You Received", cell("Transactions", "C2"))
	assert.Equal(t, "2500", cell("Transactions", "D2"))

	assert.Equal(t, "Barbed Wire Roll", cell("Inventory", "A3"))
	assert.Equal(t, "yes", cell("Inventory", "I3"))
	assert.Equal(t, "", cell("Inventory", "I2"))
	assert.Equal(t, "Steel Works Ltd", cell("Inventory", "F2"))
}

func TestWriteXLSX_FinancialOmitsInventory(t *testing.T) {
	snap := demoSnapshot(t)
	doc := report.Build(title, report.KindFinancial, snap, money())

	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, doc, snap))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "Transactions"}, f.GetSheetList())
}

func TestWriteXLSX_AmountsKeepEveryDigit(t *testing.T) {
	big := decimal.RequireFromString("12345678901234567.89")
	snap := &app.ReportSnapshot{
		GeneratedAt: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		Summary:     core.BalanceSummary{TotalCredit: big, TotalDebit: decimal.Zero, NetBalance: big},
		Customers:   []core.Customer{{ID: "c1", Name: "Tata Infra", Balance: big, LastTransaction: "2024-06-01"}},
		Transactions: []core.Transaction{{
			ID: "t1", CustomerID: "c1", CustomerName: "Tata Infra", Kind: core.Credit,
			Amount: big, Description: "Contract", Date: "2024-06-01",
		}},
		Items: []core.InventoryItem{{
			ID: "i1", Name: "Steel Coil", Category: core.CategoryHardware,
			Quantity: decimal.NewFromInt(1), Unit: core.UnitPieces, PricePerUnit: big,
			SupplierName: "Steel Works Ltd", MinStockLevel: decimal.Zero, TotalValue: big,
		}},
		InventoryValue: big,
	}
	doc := report.Build(title, report.KindComplete, snap, money())

	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, doc, snap))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	raw := func(sheet, axis string) string {
		v, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "12345678901234567.89", raw("Transactions", "D2"))
	assert.Equal(t, "12345678901234567.89", raw("Inventory", "E2"))
	assert.Equal(t, "12345678901234567.89", raw("Inventory", "H2"))
	assert.Equal(t, "1", raw("Inventory", "C2"))
	assert.Equal(t, "Total Credit: ₹12,345,678,901,234,567.89", raw("Summary", "B6"))
}

func TestSchema(t *testing.T) {
	raw, err := report.SchemaJSON()
	require.NoError(t, err)

	var schema struct {
		Type                 string                     `json:"type"`
		AdditionalProperties bool                       `json:"additionalProperties"`
		Required             []string                   `json:"required"`
		Properties           map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema.Type)
	assert.False(t, schema.AdditionalProperties)
	assert.ElementsMatch(t, []string{"title", "kind", "generated_on", "blocks"}, schema.Required)
	assert.Contains(t, schema.Properties, "blocks")

	var kind struct {
		Enum []string `json:"enum"`
	}
	require.NoError(t, json.Unmarshal(schema.Properties["kind"], &kind))
	assert.Equal(t, []string{"complete", "financial", "inventory"}, kind.Enum)
}
