package core

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService owns customers and their transactions.
type LedgerService interface {
	AddCustomer(name, phone string) Customer
	AddTransaction(customerID string, kind TransactionKind, amount decimal.Decimal, description, date string) (Transaction, error)
	TransactionsFor(customerID string) []Transaction
	BalanceSummary() BalanceSummary
	Customer(id string) (Customer, error)
	Customers() []Customer
	Transactions() []Transaction
	SearchCustomers(term string) []Customer
}

// Ledger is the in-memory LedgerService. All methods are safe for
// concurrent use; every mutation applies fully or not at all.
type Ledger struct {
	mu           sync.Mutex
	customers    []Customer
	byID         map[string]int
	transactions []Transaction
	now          func() time.Time
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithClock overrides the clock used to stamp new customers.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) { l.now = now }
}

func NewLedger(opts ...LedgerOption) *Ledger {
	l := &Ledger{
		byID: make(map[string]int),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddCustomer registers a customer with a zero balance. Name and phone are
// expected to have been checked by the caller.
func (l *Ledger) AddCustomer(name, phone string) Customer {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := Customer{
		ID:              uuid.NewString(),
		Name:            name,
		Phone:           phone,
		Balance:         decimal.Zero,
		LastTransaction: l.now().Format(DateLayout),
	}
	l.byID[c.ID] = len(l.customers)
	l.customers = append(l.customers, c)
	return c
}

// AddTransaction records a movement and applies it to the customer's balance.
// An unknown customerID yields ErrCustomerNotFound, and an unknown kind or a
// non-positive amount yields ErrInvalidTransaction. Either way the ledger is
// left untouched.
//
// The customer's LastTransaction is overwritten with date even when date is
// older than the current value.
func (l *Ledger) AddTransaction(customerID string, kind TransactionKind, amount decimal.Decimal, description, date string) (Transaction, error) {
	switch {
	case !kind.IsValid():
		return Transaction{}, fmt.Errorf("kind %q: %w", kind, ErrInvalidTransaction)
	case !amount.IsPositive():
		return Transaction{}, fmt.Errorf("amount %s must be positive: %w", amount, ErrInvalidTransaction)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.byID[customerID]
	if !ok {
		return Transaction{}, fmt.Errorf("add transaction for %q: %w", customerID, ErrCustomerNotFound)
	}
	c := &l.customers[idx]

	t := Transaction{
		ID:           uuid.NewString(),
		CustomerID:   c.ID,
		CustomerName: c.Name,
		Kind:         kind,
		Amount:       amount,
		Description:  description,
		Date:         date,
	}
	l.transactions = append(l.transactions, t)

	c.Balance = c.Balance.Add(t.SignedAmount())
	c.LastTransaction = date
	return t, nil
}

// TransactionsFor returns the customer's transactions in entry order.
func (l *Ledger) TransactionsFor(customerID string) []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Transaction
	for _, t := range l.transactions {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out
}

// BalanceSummary sums positive balances into TotalCredit and the magnitude
// of negative balances into TotalDebit.
func (l *Ledger) BalanceSummary() BalanceSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := BalanceSummary{TotalCredit: decimal.Zero, TotalDebit: decimal.Zero}
	for _, c := range l.customers {
		switch {
		case c.Balance.IsPositive():
			s.TotalCredit = s.TotalCredit.Add(c.Balance)
		case c.Balance.IsNegative():
			s.TotalDebit = s.TotalDebit.Add(c.Balance.Abs())
		}
	}
	s.NetBalance = s.TotalCredit.Sub(s.TotalDebit)
	return s
}

func (l *Ledger) Customer(id string) (Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.byID[id]
	if !ok {
		return Customer{}, fmt.Errorf("customer %q: %w", id, ErrCustomerNotFound)
	}
	return l.customers[idx], nil
}

// Customers returns a copy of all customers in registration order.
func (l *Ledger) Customers() []Customer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.customers)
}

// Transactions returns a copy of all transactions in entry order.
func (l *Ledger) Transactions() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.transactions)
}

// SearchCustomers matches term case-insensitively against the name, or
// verbatim against the phone number. An empty term matches everyone.
func (l *Ledger) SearchCustomers(term string) []Customer {
	l.mu.Lock()
	defer l.mu.Unlock()

	if term == "" {
		return slices.Clone(l.customers)
	}
	needle := strings.ToLower(term)
	var out []Customer
	for _, c := range l.customers {
		if strings.Contains(strings.ToLower(c.Name), needle) || strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out
}
