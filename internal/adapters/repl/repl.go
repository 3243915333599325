package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"khata-ledger/internal/adapters/report"
	"khata-ledger/internal/app"
	"khata-ledger/internal/core"
)

const defaultTopCount = 5

var errExit = errors.New("exit")

// Run starts the interactive REPL loop. It reads slash commands from reader
// and writes everything it prints to out. It returns when the user exits or
// reader is exhausted.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, out io.Writer, opts report.Settings) {
	s := &session{ctx: ctx, svc: svc, reader: reader, out: out, opts: opts}

	fmt.Fprintln(out, "Khata Ledger")
	fmt.Fprintln(out, "Track customer balances, suppliers and stock. Type /help for commands.")
	fmt.Fprintln(out, strings.Repeat("-", 70))

	for {
		fmt.Fprint(out, "\n> ")
		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			if err != nil {
				fmt.Fprintln(out)
				return
			}
			continue
		}

		if !strings.HasPrefix(input, "/") {
			fmt.Fprintln(out, "Commands start with '/'. Type /help for the list.")
			continue
		}
		if dispErr := s.dispatch(input); dispErr != nil {
			if errors.Is(dispErr, errExit) {
				fmt.Fprintln(out, "Goodbye!")
				return
			}
			fmt.Fprintf(out, "Error: %v\n", dispErr)
		}
	}
}

type session struct {
	ctx    context.Context
	svc    app.ApplicationService
	reader *bufio.Reader
	out    io.Writer
	opts   report.Settings

	// Positions typed after a listing refer to the rows it printed.
	lastCustomers   []core.Customer
	lastSuppliers   []core.Supplier
	customersListed bool
	suppliersListed bool
}

func (s *session) dispatch(input string) error {
	tokens := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(tokens) == 0 {
		return nil
	}
	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]
	ctx, svc, out := s.ctx, s.svc, s.out

	switch cmd {
	case "dashboard", "dash", "d":
		result, err := svc.GetDashboard(ctx)
		if err != nil {
			return err
		}
		printDashboard(out, result, s.opts.Money)

	case "customers", "cust":
		result, err := svc.ListCustomers(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		s.lastCustomers, s.customersListed = result.Customers, true
		printCustomers(out, result, s.opts.Money)

	case "customer":
		if len(args) < 1 {
			fmt.Fprintln(out, "Usage: /customer <id | list-number>")
			return nil
		}
		id, err := s.resolveCustomer(args[0])
		if err != nil {
			return err
		}
		result, err := svc.GetCustomerDetail(ctx, id)
		if err != nil {
			return err
		}
		printCustomerDetail(out, result, s.opts.Money)

	case "add-customer":
		return s.addCustomer()

	case "add-txn", "txn":
		var preset string
		if len(args) > 0 {
			preset = args[0]
		}
		return s.addTransaction(preset)

	case "transactions", "txns":
		result, err := svc.ListTransactions(ctx)
		if err != nil {
			return err
		}
		printTransactions(out, result, s.opts.Money)

	case "top":
		n := defaultTopCount
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(out, "Invalid count: %s\n", args[0])
				return nil
			}
			n = v
		}
		result, err := svc.TopCustomers(ctx, n)
		if err != nil {
			return err
		}
		s.lastCustomers, s.customersListed = result.Customers, true
		printTopCustomers(out, result, s.opts.Money)

	case "suppliers":
		result, err := svc.ListSuppliers(ctx)
		if err != nil {
			return err
		}
		s.lastSuppliers, s.suppliersListed = result.Suppliers, true
		printSuppliers(out, result)

	case "add-supplier":
		return s.addSupplier()

	case "inventory", "inv":
		result, err := svc.GetInventory(ctx)
		if err != nil {
			return err
		}
		printInventory(out, result, s.opts.Money)

	case "low-stock", "low":
		result, err := svc.GetInventory(ctx)
		if err != nil {
			return err
		}
		printLowStock(out, result.LowStock, s.opts.Money)

	case "add-item":
		return s.addItem()

	case "report":
		kind, err := report.ParseKind(strings.Join(args, ""))
		if err != nil {
			return err
		}
		return report.Print(ctx, svc, out, kind, s.opts)

	case "export":
		if len(args) < 1 {
			fmt.Fprintln(out, "Usage: /export <file.xlsx> [complete|financial|inventory]")
			return nil
		}
		var kindArg string
		if len(args) > 1 {
			kindArg = args[1]
		}
		kind, err := report.ParseKind(kindArg)
		if err != nil {
			return err
		}
		if err := report.Export(ctx, svc, args[0], kind, s.opts); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s written to %s.\n", kind.Label(), args[0])

	case "schema":
		raw, err := report.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(raw))

	case "help", "h":
		printHelp(out)

	case "exit", "quit", "e", "q":
		return errExit

	default:
		fmt.Fprintf(out, "Unknown command: /%s  (type /help for all commands)\n", cmd)
	}
	return nil
}

// resolveCustomer accepts either a customer id or a 1-based position in the
// last /customers or /top listing. Before any listing, positions index the
// full customer list.
func (s *session) resolveCustomer(ref string) (string, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}
	shown := s.lastCustomers
	if !s.customersListed {
		result, err := s.svc.ListCustomers(s.ctx, "")
		if err != nil {
			return "", err
		}
		shown = result.Customers
	}
	if n < 1 || n > len(shown) {
		return "", fmt.Errorf("no customer #%d (have %d)", n, len(shown))
	}
	return shown[n-1].ID, nil
}

// resolveSupplier is resolveCustomer for /suppliers positions.
func (s *session) resolveSupplier(ref string) (string, error) {
	n, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}
	shown := s.lastSuppliers
	if !s.suppliersListed {
		result, err := s.svc.ListSuppliers(s.ctx)
		if err != nil {
			return "", err
		}
		shown = result.Suppliers
	}
	if n < 1 || n > len(shown) {
		return "", fmt.Errorf("no supplier #%d (have %d)", n, len(shown))
	}
	return shown[n-1].ID, nil
}
