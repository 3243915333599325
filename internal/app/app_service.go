package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"khata-ledger/internal/core"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrInvalidRequest wraps every request validation failure.
var ErrInvalidRequest = errors.New("invalid request")

const recentCustomerCount = 5

type appService struct {
	ledger    core.LedgerService
	inventory core.InventoryService
	log       *zap.Logger
	validate  *validator.Validate
	now       func() time.Time
}

// Option configures the application service.
type Option func(*appService)

// WithClock overrides the clock used for default dates and report timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *appService) { s.now = now }
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(ledger core.LedgerService, inventory core.InventoryService, log *zap.Logger, opts ...Option) ApplicationService {
	s := &appService{
		ledger:    ledger,
		inventory: inventory,
		log:       log,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ── Ledger ────────────────────────────────────────────────────────────────────

func (s *appService) AddCustomer(ctx context.Context, req AddCustomerRequest) (*CustomerResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := s.check(req); err != nil {
		return nil, err
	}

	c := s.ledger.AddCustomer(req.Name, req.Phone)
	s.log.Info("customer added", zap.String("customer_id", c.ID), zap.String("name", c.Name))
	return &CustomerResult{Customer: c}, nil
}

func (s *appService) AddTransaction(ctx context.Context, req AddTransactionRequest) (*TransactionResult, error) {
	req.Description = strings.TrimSpace(req.Description)
	if req.Date == "" {
		req.Date = s.now().Format(core.DateLayout)
	}
	if err := s.check(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidRequest, req.Amount)
	}

	tx, err := s.ledger.AddTransaction(req.CustomerID, req.Kind, req.Amount, req.Description, req.Date)
	if err != nil {
		s.log.Warn("transaction rejected",
			zap.String("customer_id", req.CustomerID),
			zap.String("kind", string(req.Kind)),
			zap.String("amount", req.Amount.String()),
			zap.Error(err),
		)
		return nil, err
	}

	c, err := s.ledger.Customer(tx.CustomerID)
	if err != nil {
		return nil, err
	}
	s.log.Info("transaction recorded",
		zap.String("transaction_id", tx.ID),
		zap.String("customer_id", tx.CustomerID),
		zap.String("kind", string(tx.Kind)),
		zap.String("amount", tx.Amount.String()),
		zap.String("balance", c.Balance.String()),
	)
	return &TransactionResult{Transaction: tx, Customer: c}, nil
}

func (s *appService) ListCustomers(ctx context.Context, term string) (*CustomerListResult, error) {
	term = strings.TrimSpace(term)
	return &CustomerListResult{Customers: s.ledger.SearchCustomers(term), Term: term}, nil
}

func (s *appService) GetCustomerDetail(ctx context.Context, customerID string) (*CustomerDetailResult, error) {
	c, err := s.ledger.Customer(customerID)
	if err != nil {
		return nil, err
	}
	txs := s.ledger.TransactionsFor(customerID)
	return &CustomerDetailResult{
		Customer:     c,
		Transactions: core.SortTransactionsByDateDesc(txs),
		Totals:       core.CustomerTransactionTotals(customerID, txs),
	}, nil
}

func (s *appService) ListTransactions(ctx context.Context) (*TransactionListResult, error) {
	return &TransactionListResult{Transactions: s.ledger.Transactions()}, nil
}

func (s *appService) GetDashboard(ctx context.Context) (*DashboardResult, error) {
	customers := s.ledger.Customers()
	recent := customers
	if len(recent) > recentCustomerCount {
		recent = recent[:recentCustomerCount]
	}
	return &DashboardResult{
		Summary:         s.ledger.BalanceSummary(),
		TotalCustomers:  len(customers),
		RecentCustomers: recent,
		Daily:           core.DailyCreditDebitTotals(s.ledger.Transactions()),
	}, nil
}

func (s *appService) TopCustomers(ctx context.Context, n int) (*CustomerListResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidRequest, n)
	}
	return &CustomerListResult{Customers: core.TopCustomersByAbsBalance(s.ledger.Customers(), n)}, nil
}

// ── Inventory ─────────────────────────────────────────────────────────────────

func (s *appService) AddSupplier(ctx context.Context, req AddSupplierRequest) (*SupplierResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.check(req); err != nil {
		return nil, err
	}

	sup := s.inventory.AddSupplier(core.SupplierInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: strings.TrimSpace(req.Address),
		Email:   req.Email,
	})
	s.log.Info("supplier added", zap.String("supplier_id", sup.ID), zap.String("name", sup.Name))
	return &SupplierResult{Supplier: sup}, nil
}

func (s *appService) ListSuppliers(ctx context.Context) (*SupplierListResult, error) {
	return &SupplierListResult{Suppliers: s.inventory.Suppliers()}, nil
}

func (s *appService) AddInventoryItem(ctx context.Context, req AddInventoryItemRequest) (*InventoryItemResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.check(req); err != nil {
		return nil, err
	}
	switch {
	case req.Quantity.IsNegative():
		return nil, fmt.Errorf("%w: quantity cannot be negative, got %s", ErrInvalidRequest, req.Quantity)
	case req.PricePerUnit.IsNegative():
		return nil, fmt.Errorf("%w: price per unit cannot be negative, got %s", ErrInvalidRequest, req.PricePerUnit)
	case req.MinStockLevel.IsNegative():
		return nil, fmt.Errorf("%w: minimum stock level cannot be negative, got %s", ErrInvalidRequest, req.MinStockLevel)
	}

	item, err := s.inventory.AddInventoryItem(core.ItemInput{
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		PricePerUnit:  req.PricePerUnit,
		SupplierID:    req.SupplierID,
		MinStockLevel: req.MinStockLevel,
	})
	if err != nil {
		s.log.Warn("inventory item rejected",
			zap.String("supplier_id", req.SupplierID),
			zap.String("name", req.Name),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Info("inventory item added",
		zap.String("item_id", item.ID),
		zap.String("name", item.Name),
		zap.String("total_value", item.TotalValue.String()),
		zap.Bool("low_stock", item.IsLowStock()),
	)
	return &InventoryItemResult{Item: item}, nil
}

func (s *appService) GetInventory(ctx context.Context) (*InventoryResult, error) {
	return &InventoryResult{
		Items:      s.inventory.Items(),
		LowStock:   s.inventory.LowStockItems(),
		TotalValue: s.inventory.TotalInventoryValue(),
	}, nil
}

// ── Reports ───────────────────────────────────────────────────────────────────

func (s *appService) ReportSnapshot(ctx context.Context) (*ReportSnapshot, error) {
	return &ReportSnapshot{
		GeneratedAt:    s.now(),
		Summary:        s.ledger.BalanceSummary(),
		InventoryValue: s.inventory.TotalInventoryValue(),
		Customers:      s.ledger.Customers(),
		Transactions:   s.ledger.Transactions(),
		Items:          s.inventory.Items(),
		LowStock:       s.inventory.LowStockItems(),
	}, nil
}

// check runs struct-tag validation and flattens the failures into one error.
func (s *appService) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
