package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"khata-ledger/internal/adapters/report"
	"khata-ledger/internal/app"
	"khata-ledger/internal/core"
)

// ErrUsage is returned for a missing or unknown subcommand.
var ErrUsage = errors.New("usage")

// Run executes a one-shot CLI command.
// args is os.Args[1:]; the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string, out io.Writer, set report.Settings) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: app <summary|report|export|schema>", ErrUsage)
	}

	switch args[0] {
	case "summary", "sum", "s":
		dash, err := svc.GetDashboard(ctx)
		if err != nil {
			return fmt.Errorf("load dashboard: %w", err)
		}
		inv, err := svc.GetInventory(ctx)
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		printSummary(out, dash, inv, set)

	case "report", "rep", "r":
		kind, err := report.ParseKind(argAt(args, 1))
		if err != nil {
			return err
		}
		return report.Print(ctx, svc, out, kind, set)

	case "export", "exp", "x":
		if len(args) < 2 {
			return fmt.Errorf("%w: app export <file.xlsx> [complete|financial|inventory]", ErrUsage)
		}
		kind, err := report.ParseKind(argAt(args, 2))
		if err != nil {
			return err
		}
		if err := report.Export(ctx, svc, args[1], kind, set); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Fprintf(out, "%s written to %s.\n", kind.Label(), args[1])

	case "schema":
		raw, err := report.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(raw))

	default:
		return fmt.Errorf("%w: unknown command %s\nAvailable: summary, report, export, schema", ErrUsage, args[0])
	}
	return nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func printSummary(w io.Writer, dash *app.DashboardResult, inv *app.InventoryResult, set report.Settings) {
	money := set.Money
	s := dash.Summary
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintf(w, "  %-58s\n", strings.ToUpper(set.Title))
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintf(w, "  %-26s %20s\n", "Total Credit", money.Format(s.TotalCredit))
	fmt.Fprintf(w, "  %-26s %20s\n", "Total Debit", money.Format(s.TotalDebit))
	fmt.Fprintf(w, "  %-26s %20s  %s\n", "Net Balance", money.Format(s.NetBalance), core.NetLabel(s.NetBalance))
	fmt.Fprintln(w, strings.Repeat("-", 62))
	fmt.Fprintf(w, "  %-26s %20d\n", "Customers", dash.TotalCustomers)
	fmt.Fprintf(w, "  %-26s %20d\n", "Inventory Items", len(inv.Items))
	fmt.Fprintf(w, "  %-26s %20d\n", "Low Stock Items", len(inv.LowStock))
	fmt.Fprintf(w, "  %-26s %20s\n", "Inventory Value", money.Format(inv.TotalValue))
	fmt.Fprintln(w, strings.Repeat("=", 62))
}
