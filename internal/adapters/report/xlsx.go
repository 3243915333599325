package report

import (
	"fmt"
	"io"

	"khata-ledger/internal/app"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	transactionsSheet = "Transactions"
	inventorySheet    = "Inventory"
)

// WriteXLSX writes doc and the raw lists behind it as a workbook. The
// Summary sheet mirrors the text report; Transactions and Inventory sheets
// are added when the report kind covers them.
func WriteXLSX(w io.Writer, doc Document, snap *app.ReportSnapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if err := writeSummary(f, doc); err != nil {
		return err
	}
	if doc.Kind.hasCustomers() {
		if err := writeTransactions(f, snap); err != nil {
			return err
		}
	}
	if doc.Kind.hasInventory() {
		if err := writeInventory(f, snap); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, doc Document) error {
	var rows [][]any
	for _, l := range doc.Header() {
		rows = append(rows, []any{l})
	}
	for _, b := range doc.Blocks {
		rows = append(rows, []any{}, []any{b.Heading})
		for _, l := range b.Lines {
			rows = append(rows, []any{"", l})
		}
	}
	if err := setRows(f, summarySheet, rows); err != nil {
		return err
	}
	return setWidths(f, summarySheet, []colWidth{{"A", "A", 24}, {"B", "B", 60}})
}

func writeTransactions(f *excelize.File, snap *app.ReportSnapshot) error {
	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return fmt.Errorf("create %s sheet: %w", transactionsSheet, err)
	}
	rows := [][]any{{"Date", "Customer", "Type", "Amount", "Description"}}
	for _, t := range snap.Transactions {
		rows = append(rows, []any{t.Date, t.CustomerName, t.Kind.Label(), t.Amount, t.Description})
	}
	if err := setRows(f, transactionsSheet, rows); err != nil {
		return err
	}
	return setWidths(f, transactionsSheet, []colWidth{
		{"A", "A", 12}, {"B", "B", 24}, {"C", "C", 14}, {"D", "D", 12}, {"E", "E", 30},
	})
}

func writeInventory(f *excelize.File, snap *app.ReportSnapshot) error {
	if _, err := f.NewSheet(inventorySheet); err != nil {
		return fmt.Errorf("create %s sheet: %w", inventorySheet, err)
	}
	rows := [][]any{{"Item", "Category", "Quantity", "Unit", "Price/Unit", "Supplier", "Min Stock", "Total Value", "Low Stock"}}
	for _, it := range snap.Items {
		low := ""
		if it.IsLowStock() {
			low = "yes"
		}
		rows = append(rows, []any{
			it.Name,
			string(it.Category),
			it.Quantity,
			string(it.Unit),
			it.PricePerUnit,
			it.SupplierName,
			it.MinStockLevel,
			it.TotalValue,
			low,
		})
	}
	if err := setRows(f, inventorySheet, rows); err != nil {
		return err
	}
	return setWidths(f, inventorySheet, []colWidth{{"A", "A", 26}, {"B", "B", 16}, {"C", "I", 12}})
}

// setRows writes rows from A1. Decimals are written from their exact string
// form as numeric cells, so no digits are lost to float conversion.
func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if d, ok := v.(decimal.Decimal); ok {
				err = f.SetCellDefault(sheet, cell, d.String())
			} else {
				err = f.SetCellValue(sheet, cell, v)
			}
			if err != nil {
				return fmt.Errorf("%s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

type colWidth struct {
	from, to string
	width    float64
}

func setWidths(f *excelize.File, sheet string, widths []colWidth) error {
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.from, w.to, w.width); err != nil {
			return fmt.Errorf("%s!%s:%s width: %w", sheet, w.from, w.to, err)
		}
	}
	return nil
}
