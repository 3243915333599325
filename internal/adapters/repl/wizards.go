package repl

import (
	"fmt"
	"strconv"
	"strings"

	"khata-ledger/internal/app"
	"khata-ledger/internal/core"

	"github.com/shopspring/decimal"
)

// ask prints label and reads one trimmed line. ok is false when the user
// typed "cancel" or input ended.
func (s *session) ask(label string) (answer string, ok bool) {
	fmt.Fprint(s.out, label)
	raw, err := s.reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "cancel") || (err != nil && raw == "") {
		fmt.Fprintln(s.out, "Cancelled.")
		return "", false
	}
	return raw, true
}

// askDecimal re-prompts until the answer parses. Blank yields def when def is
// non-nil.
func (s *session) askDecimal(label string, def *decimal.Decimal) (decimal.Decimal, bool) {
	for {
		raw, ok := s.ask(label)
		if !ok {
			return decimal.Zero, false
		}
		if raw == "" && def != nil {
			return *def, true
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintf(s.out, "  Not a number: %s\n", raw)
			continue
		}
		return v, true
	}
}

// askChoice offers a numbered list. The answer may be the number or any
// free text, which is returned as typed.
func (s *session) askChoice(label string, choices []string) (string, bool) {
	for i, c := range choices {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, c)
	}
	raw, ok := s.ask(label)
	if !ok {
		return "", false
	}
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1], true
	}
	return raw, true
}

func (s *session) addCustomer() error {
	fmt.Fprintln(s.out, "New customer. Type 'cancel' at any prompt to abort.")
	name, ok := s.ask("Name: ")
	if !ok {
		return nil
	}
	phone, ok := s.ask("Phone: ")
	if !ok {
		return nil
	}

	result, err := s.svc.AddCustomer(s.ctx, app.AddCustomerRequest{Name: name, Phone: phone})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Customer added: %s (%s)\n", result.Customer.Name, result.Customer.ID)
	return nil
}

func (s *session) addTransaction(customerRef string) error {
	fmt.Fprintln(s.out, "New transaction. Type 'cancel' at any prompt to abort.")
	if customerRef == "" {
		var ok bool
		if customerRef, ok = s.ask("Customer (id or # from /customers): "); !ok {
			return nil
		}
	}
	customerID, err := s.resolveCustomer(customerRef)
	if err != nil {
		return err
	}

	var kind core.TransactionKind
	for {
		raw, ok := s.ask("Type (credit = you received, debit = you gave): ")
		if !ok {
			return nil
		}
		if k, valid := core.ParseTransactionKind(raw); valid {
			kind = k
			break
		}
		fmt.Fprintln(s.out, "  Enter credit (c) or debit (d).")
	}

	amount, ok := s.askDecimal("Amount: ", nil)
	if !ok {
		return nil
	}
	description, ok := s.ask("Description: ")
	if !ok {
		return nil
	}
	date, ok := s.ask("Date (YYYY-MM-DD, leave blank for today): ")
	if !ok {
		return nil
	}

	result, err := s.svc.AddTransaction(s.ctx, app.AddTransactionRequest{
		CustomerID:  customerID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Date:        date,
	})
	if err != nil {
		return err
	}
	c := result.Customer
	fmt.Fprintf(s.out, "Recorded %s %s for %s. Balance: %s (%s)\n",
		kind.Label(), s.opts.Money.Format(result.Transaction.Amount), c.Name,
		s.opts.Money.Format(c.Balance), c.Direction())
	return nil
}

func (s *session) addSupplier() error {
	fmt.Fprintln(s.out, "New supplier. Type 'cancel' at any prompt to abort.")
	name, ok := s.ask("Name: ")
	if !ok {
		return nil
	}
	phone, ok := s.ask("Phone: ")
	if !ok {
		return nil
	}
	address, ok := s.ask("Address (optional): ")
	if !ok {
		return nil
	}
	email, ok := s.ask("Email (optional): ")
	if !ok {
		return nil
	}

	result, err := s.svc.AddSupplier(s.ctx, app.AddSupplierRequest{
		Name:    name,
		Phone:   phone,
		Address: address,
		Email:   email,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Supplier added: %s (%s)\n", result.Supplier.Name, result.Supplier.ID)
	return nil
}

func (s *session) addItem() error {
	fmt.Fprintln(s.out, "New inventory item. Type 'cancel' at any prompt to abort.")
	name, ok := s.ask("Item name: ")
	if !ok {
		return nil
	}

	categories := make([]string, len(core.KnownCategories))
	for i, c := range core.KnownCategories {
		categories[i] = string(c)
	}
	category, ok := s.askChoice("Category: ", categories)
	if !ok {
		return nil
	}

	qty, ok := s.askDecimal("Quantity: ", nil)
	if !ok {
		return nil
	}

	units := make([]string, len(core.KnownUnits))
	for i, u := range core.KnownUnits {
		units[i] = string(u)
	}
	unit, ok := s.askChoice("Unit: ", units)
	if !ok {
		return nil
	}

	price, ok := s.askDecimal("Price per unit: ", nil)
	if !ok {
		return nil
	}
	supplierRef, ok := s.ask("Supplier (id or # from /suppliers): ")
	if !ok {
		return nil
	}
	supplierID, err := s.resolveSupplier(supplierRef)
	if err != nil {
		return err
	}
	zero := decimal.Zero
	minLevel, ok := s.askDecimal("Minimum stock level [0]: ", &zero)
	if !ok {
		return nil
	}

	result, err := s.svc.AddInventoryItem(s.ctx, app.AddInventoryItemRequest{
		Name:          name,
		Category:      core.Category(category),
		Unit:          core.Unit(unit),
		SupplierID:    supplierID,
		Quantity:      qty,
		PricePerUnit:  price,
		MinStockLevel: minLevel,
	})
	if err != nil {
		return err
	}
	item := result.Item
	fmt.Fprintf(s.out, "Item added: %s, %s %s from %s, value %s\n",
		item.Name, s.opts.Money.Number(item.Quantity), item.Unit, item.SupplierName,
		s.opts.Money.Format(item.TotalValue))
	if item.IsLowStock() {
		fmt.Fprintln(s.out, "WARNING: item is already at or below its minimum stock level.")
	}
	return nil
}
