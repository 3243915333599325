package core

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// ── Aggregation ───────────────────────────────────────────────────────────────
//
// These functions are pure: they work on snapshots taken from the stores and
// never touch store state. Nothing here is cached; callers recompute after
// every mutation.

// TopCustomersByAbsBalance returns the n customers with the largest balance
// magnitude, largest first. Customers with equal magnitude keep their input order.
func TopCustomersByAbsBalance(customers []Customer, n int) []Customer {
	if n <= 0 {
		return nil
	}
	sorted := slices.Clone(customers)
	slices.SortStableFunc(sorted, func(a, b Customer) int {
		return b.Balance.Abs().Cmp(a.Balance.Abs())
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// DailyCreditDebitTotals groups transactions by their exact date string and
// sums each kind per day. Days come out in ascending calendar order; dates
// that do not parse as YYYY-MM-DD follow in the order they were first seen.
func DailyCreditDebitTotals(transactions []Transaction) []DailyTotal {
	var days []DailyTotal
	index := make(map[string]int)
	for _, t := range transactions {
		i, ok := index[t.Date]
		if !ok {
			i = len(days)
			index[t.Date] = i
			days = append(days, DailyTotal{Date: t.Date, Credit: decimal.Zero, Debit: decimal.Zero})
		}
		switch t.Kind {
		case Credit:
			days[i].Credit = days[i].Credit.Add(t.Amount)
		case Debit:
			days[i].Debit = days[i].Debit.Add(t.Amount)
		}
	}
	slices.SortStableFunc(days, func(a, b DailyTotal) int {
		return compareDates(a.Date, b.Date)
	})
	return days
}

// CustomerTransactionTotals sums one customer's transaction amounts per kind.
// Unlike Ledger.BalanceSummary, credits and debits are not netted.
func CustomerTransactionTotals(customerID string, transactions []Transaction) TransactionTotals {
	totals := TransactionTotals{TotalCredit: decimal.Zero, TotalDebit: decimal.Zero}
	for _, t := range transactions {
		if t.CustomerID != customerID {
			continue
		}
		switch t.Kind {
		case Credit:
			totals.TotalCredit = totals.TotalCredit.Add(t.Amount)
		case Debit:
			totals.TotalDebit = totals.TotalDebit.Add(t.Amount)
		}
	}
	return totals
}

// RecentTransactions returns up to n transactions, newest date first.
// Transactions on the same date keep their entry order.
func RecentTransactions(transactions []Transaction, n int) []Transaction {
	if n <= 0 {
		return nil
	}
	sorted := SortTransactionsByDateDesc(transactions)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// SortTransactionsByDateDesc returns a copy of transactions ordered newest first.
func SortTransactionsByDateDesc(transactions []Transaction) []Transaction {
	sorted := slices.Clone(transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return compareDatesDesc(a.Date, b.Date)
	})
	return sorted
}

// compareDates orders parseable dates ascending and places unparseable ones last.
func compareDates(a, b string) int {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	return ta.Compare(tb)
}

// compareDatesDesc orders parseable dates descending, unparseable ones still last.
func compareDatesDesc(a, b string) int {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	return tb.Compare(ta)
}
