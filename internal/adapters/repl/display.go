package repl

import (
	"fmt"
	"io"
	"strings"

	"khata-ledger/internal/app"
	"khata-ledger/internal/core"
	"khata-ledger/internal/currency"
)

func printDashboard(w io.Writer, result *app.DashboardResult, money *currency.Formatter) {
	s := result.Summary
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintf(w, "  %-58s\n", "DASHBOARD")
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintf(w, "  %-22s %18s\n", "Total Credit", money.Format(s.TotalCredit))
	fmt.Fprintf(w, "  %-22s %18s\n", "Total Debit", money.Format(s.TotalDebit))
	fmt.Fprintf(w, "  %-22s %18s  %s\n", "Net Balance", money.Format(s.NetBalance), core.NetLabel(s.NetBalance))
	fmt.Fprintf(w, "  %-22s %18d\n", "Customers", result.TotalCustomers)

	if len(result.RecentCustomers) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 62))
		fmt.Fprintln(w, "  RECENT CUSTOMERS")
		for _, c := range result.RecentCustomers {
			fmt.Fprintf(w, "  %-30s %15s  %s\n", c.Name, money.Format(c.Balance), c.Direction())
		}
	}

	if len(result.Daily) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 62))
		fmt.Fprintf(w, "  %-12s %20s %20s\n", "DATE", "CREDIT", "DEBIT")
		for _, d := range result.Daily {
			fmt.Fprintf(w, "  %-12s %20s %20s\n", d.Date, money.Format(d.Credit), money.Format(d.Debit))
		}
	}
	fmt.Fprintln(w, strings.Repeat("=", 62))
}

func printCustomers(w io.Writer, result *app.CustomerListResult, money *currency.Formatter) {
	title := "CUSTOMERS"
	if result.Term != "" {
		title = fmt.Sprintf("CUSTOMERS matching %q", result.Term)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	if len(result.Customers) == 0 {
		fmt.Fprintln(w, "  No customers found.")
		fmt.Fprintln(w, strings.Repeat("=", 80))
		return
	}
	fmt.Fprintf(w, "  %-3s %-24s %-18s %14s  %-8s %s\n", "#", "NAME", "PHONE", "BALANCE", "", "LAST TXN")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for i, c := range result.Customers {
		last := c.LastTransaction
		if last == "" {
			last = "-"
		}
		fmt.Fprintf(w, "  %-3d %-24s %-18s %14s  %-8s %s\n",
			i+1, c.Name, c.Phone, money.Format(c.Balance), c.Direction(), last)
	}
	fmt.Fprintln(w, strings.Repeat("=", 80))
}

func printTopCustomers(w io.Writer, result *app.CustomerListResult, money *currency.Formatter) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintf(w, "  TOP %d CUSTOMERS BY BALANCE\n", len(result.Customers))
	fmt.Fprintln(w, strings.Repeat("=", 62))
	if len(result.Customers) == 0 {
		fmt.Fprintln(w, "  No customers found.")
		fmt.Fprintln(w, strings.Repeat("=", 62))
		return
	}
	for i, c := range result.Customers {
		fmt.Fprintf(w, "  %2d. %-30s %15s  %s\n", i+1, c.Name, money.Format(c.Balance), c.Direction())
	}
	fmt.Fprintln(w, strings.Repeat("=", 62))
}

func printCustomerDetail(w io.Writer, result *app.CustomerDetailResult, money *currency.Formatter) {
	c := result.Customer
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "  Customer:  %s\n", c.Name)
	fmt.Fprintf(w, "  Phone:     %s\n", c.Phone)
	fmt.Fprintf(w, "  ID:        %s\n", c.ID)
	fmt.Fprintf(w, "  Balance:   %s (%s)\n", money.Format(c.Balance), c.Direction())
	fmt.Fprintf(w, "  Received:  %s\n", money.Format(result.Totals.TotalCredit))
	fmt.Fprintf(w, "  Given:     %s\n", money.Format(result.Totals.TotalDebit))
	fmt.Fprintln(w, strings.Repeat("-", 72))
	if len(result.Transactions) == 0 {
		fmt.Fprintln(w, "  No transactions yet.")
		fmt.Fprintln(w, strings.Repeat("-", 72))
		return
	}
	fmt.Fprintf(w, "  %-12s %-14s %14s  %s\n", "DATE", "TYPE", "AMOUNT", "DESCRIPTION")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, t := range result.Transactions {
		fmt.Fprintf(w, "  %-12s %-14s %14s  %s\n", t.Date, t.Kind.Label(), money.Signed(t.SignedAmount()), t.Description)
	}
	fmt.Fprintln(w, strings.Repeat("-", 72))
}

func printTransactions(w io.Writer, result *app.TransactionListResult, money *currency.Formatter) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 90))
	fmt.Fprintln(w, "  TRANSACTIONS")
	fmt.Fprintln(w, strings.Repeat("=", 90))
	if len(result.Transactions) == 0 {
		fmt.Fprintln(w, "  No transactions recorded.")
		fmt.Fprintln(w, strings.Repeat("=", 90))
		return
	}
	fmt.Fprintf(w, "  %-12s %-22s %-14s %14s  %s\n", "DATE", "CUSTOMER", "TYPE", "AMOUNT", "DESCRIPTION")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, t := range result.Transactions {
		description := t.Description
		if len(description) > 30 {
			description = description[:27] + "..."
		}
		fmt.Fprintf(w, "  %-12s %-22s %-14s %14s  %s\n",
			t.Date, t.CustomerName, t.Kind.Label(), money.Signed(t.SignedAmount()), description)
	}
	fmt.Fprintln(w, strings.Repeat("=", 90))
}

func printSuppliers(w io.Writer, result *app.SupplierListResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "  SUPPLIERS")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	if len(result.Suppliers) == 0 {
		fmt.Fprintln(w, "  No suppliers found.")
		fmt.Fprintln(w, strings.Repeat("=", 80))
		return
	}
	fmt.Fprintf(w, "  %-3s %-24s %-18s %s\n", "#", "NAME", "PHONE", "EMAIL")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for i, s := range result.Suppliers {
		fmt.Fprintf(w, "  %-3d %-24s %-18s %s\n", i+1, s.Name, s.Phone, s.Email)
	}
	fmt.Fprintln(w, strings.Repeat("=", 80))
}

func printInventory(w io.Writer, result *app.InventoryResult, money *currency.Formatter) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 90))
	fmt.Fprintln(w, "  INVENTORY")
	fmt.Fprintln(w, strings.Repeat("=", 90))
	if len(result.Items) == 0 {
		fmt.Fprintln(w, "  No items in stock.")
		fmt.Fprintln(w, strings.Repeat("=", 90))
		return
	}
	fmt.Fprintf(w, "  %-24s %-14s %14s %12s %14s  %s\n", "ITEM", "CATEGORY", "QTY", "PRICE", "VALUE", "SUPPLIER")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, it := range result.Items {
		name := it.Name
		if it.IsLowStock() {
			name = "! " + name
		}
		fmt.Fprintf(w, "  %-24s %-14s %14s %12s %14s  %s\n",
			name, it.Category,
			money.Number(it.Quantity)+" "+string(it.Unit),
			money.Format(it.PricePerUnit),
			money.Format(it.TotalValue),
			it.SupplierName,
		)
	}
	fmt.Fprintln(w, strings.Repeat("-", 90))
	fmt.Fprintf(w, "  %-24s %-14s %14s %12s %14s\n", "TOTAL", "", "", "", money.Format(result.TotalValue))
	fmt.Fprintf(w, "  %d items, %d low on stock (marked !)\n", len(result.Items), len(result.LowStock))
	fmt.Fprintln(w, strings.Repeat("=", 90))
}

func printLowStock(w io.Writer, items []core.InventoryItem, money *currency.Formatter) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintln(w, "  LOW STOCK")
	fmt.Fprintln(w, strings.Repeat("=", 62))
	if len(items) == 0 {
		fmt.Fprintln(w, "  All items are above their minimum stock level.")
		fmt.Fprintln(w, strings.Repeat("=", 62))
		return
	}
	fmt.Fprintf(w, "  %-28s %14s %14s\n", "ITEM", "ON HAND", "MINIMUM")
	fmt.Fprintln(w, strings.Repeat("-", 62))
	for _, it := range items {
		fmt.Fprintf(w, "  %-28s %14s %14s\n",
			it.Name,
			money.Number(it.Quantity)+" "+string(it.Unit),
			money.Number(it.MinStockLevel)+" "+string(it.Unit),
		)
	}
	fmt.Fprintln(w, strings.Repeat("=", 62))
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "KHATA LEDGER — COMMANDS")
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  LEDGER")
	fmt.Fprintln(w, "  /dashboard                       Balance summary and daily totals")
	fmt.Fprintln(w, "  /customers [search]              List customers, optionally by name/phone")
	fmt.Fprintln(w, "  /customer <id | #>               Customer history and totals")
	fmt.Fprintln(w, "  /add-customer                    Register a customer (interactive)")
	fmt.Fprintln(w, "  /add-txn [customer]              Record a credit or debit (interactive)")
	fmt.Fprintln(w, "  /transactions                    All transactions in entry order")
	fmt.Fprintln(w, "  /top [n]                         Largest balances (default 5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  INVENTORY")
	fmt.Fprintln(w, "  /suppliers                       List suppliers")
	fmt.Fprintln(w, "  /add-supplier                    Register a supplier (interactive)")
	fmt.Fprintln(w, "  /inventory                       Stock list with values")
	fmt.Fprintln(w, "  /low-stock                       Items at or below minimum level")
	fmt.Fprintln(w, "  /add-item                        Stock a new item (interactive)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  REPORTS")
	fmt.Fprintln(w, "  /report [kind]                   Print report: complete, financial, inventory")
	fmt.Fprintln(w, "  /export <file.xlsx> [kind]       Save report as a spreadsheet")
	fmt.Fprintln(w, "  /schema                          JSON Schema of the report document")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  SESSION")
	fmt.Fprintln(w, "  /help                            Show this help")
	fmt.Fprintln(w, "  /exit                            Exit")
	fmt.Fprintln(w, strings.Repeat("=", 62))
}
