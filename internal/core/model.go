package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for transaction and
// last-activity dates throughout the ledger.
const DateLayout = "2006-01-02"

// TransactionKind is the direction of a ledger transaction.
type TransactionKind string

const (
	// Credit increases the customer's balance (money the business is owed).
	Credit TransactionKind = "credit"
	// Debit decreases the customer's balance (money the business owes the customer).
	Debit TransactionKind = "debit"
)

// ParseTransactionKind accepts "credit"/"debit" in any case, plus the
// single-letter shorthands "c"/"d".
func ParseTransactionKind(s string) (TransactionKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "credit", "c":
		return Credit, true
	case "debit", "d":
		return Debit, true
	}
	return "", false
}

// IsValid reports whether k is one of the two known kinds.
func (k TransactionKind) IsValid() bool {
	return k == Credit || k == Debit
}

// Label is the human-facing description shown next to the kind.
func (k TransactionKind) Label() string {
	if k == Credit {
		return "You Received"
	}
	return "You Gave"
}

// Customer is a ledger party. Balance is positive when the customer owes the
// business and negative when the business owes the customer.
type Customer struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Balance         decimal.Decimal `json:"balance"`
	LastTransaction string          `json:"last_transaction"`
}

// Direction returns "to give" for a non-negative balance and "to get" otherwise.
func (c Customer) Direction() string {
	return BalanceDirection(c.Balance)
}

// BalanceDirection labels a signed customer balance.
func BalanceDirection(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return "to get"
	}
	return "to give"
}

// NetLabel labels a signed net balance for summary output.
func NetLabel(net decimal.Decimal) string {
	if net.IsNegative() {
		return "outstanding"
	}
	return "in your favor"
}

// Transaction is an immutable ledger movement against one customer.
// CustomerName is a copy of the customer's name at the time of entry.
type Transaction struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Kind         TransactionKind `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Date         string          `json:"date"`
}

// SignedAmount is +Amount for credits and -Amount for debits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// BalanceSummary aggregates customer balances, not transaction kinds:
// each customer's own credits and debits are netted before summing.
type BalanceSummary struct {
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	NetBalance  decimal.Decimal `json:"net_balance"`
}

// TransactionTotals sums transaction amounts per kind.
type TransactionTotals struct {
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
}

// DailyTotal is one bar of the daily credit/debit chart.
type DailyTotal struct {
	Date   string          `json:"date"`
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
}
