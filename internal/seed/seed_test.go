package seed_test

import (
	"strings"
	"testing"

	"khata-ledger/internal/core"
	"khata-ledger/internal/seed"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Demo(t *testing.T) {
	d, err := seed.Demo()
	require.NoError(t, err)

	ledger := core.NewLedger()
	inv := core.NewInventory()
	require.NoError(t, seed.Apply(d, ledger, inv))

	customers := ledger.Customers()
	require.Len(t, customers, 3)
	balances := map[string]string{}
	for _, c := range customers {
		balances[c.Name] = c.Balance.String()
	}
	assert.Equal(t, map[string]string{
		"Rajesh Kumar": "2500",
		"Priya Sharma": "-1200",
		"Mohammed Ali": "3400",
	}, balances)
	assert.Len(t, ledger.Transactions(), 3)

	assert.Len(t, inv.Suppliers(), 2)
	assert.Len(t, inv.Items(), 4)
	assert.True(t, inv.TotalInventoryValue().Equal(decimal.NewFromInt(45800)))

	var low []string
	for _, item := range inv.LowStockItems() {
		low = append(low, item.Name)
	}
	assert.Equal(t, []string{"Barbed Wire Roll", "Granite Pillar 6ft"}, low)
}

func TestApply_UnknownCustomerRef(t *testing.T) {
	d, err := seed.Parse(strings.NewReader(`
customers:
  - {ref: a, name: A, phone: "1"}
transactions:
  - {customer: b, kind: credit, amount: "10", description: x, date: "2024-06-01"}
`))
	require.NoError(t, err)

	ledger := core.NewLedger()
	err = seed.Apply(d, ledger, core.NewInventory())

	require.ErrorIs(t, err, core.ErrCustomerNotFound)
	assert.Empty(t, ledger.Transactions())
}

func TestApply_UnknownSupplierRef(t *testing.T) {
	d, err := seed.Parse(strings.NewReader(`
items:
  - {name: Bolt, category: Hardware, quantity: "1", unit: boxes, price_per_unit: "2", supplier: nobody}
`))
	require.NoError(t, err)

	err = seed.Apply(d, core.NewLedger(), core.NewInventory())
	assert.ErrorIs(t, err, core.ErrSupplierNotFound)
}

func TestApply_BadKind(t *testing.T) {
	d := &seed.Data{
		Customers:    []seed.CustomerSeed{{Ref: "a", Name: "A", Phone: "1"}},
		Transactions: []seed.TransactionSeed{{Customer: "a", Kind: "gift", Amount: "1"}},
	}
	err := seed.Apply(d, core.NewLedger(), core.NewInventory())
	assert.ErrorContains(t, err, `unknown kind "gift"`)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("customers:\n  - {ref: a, nickname: x}\n"))
	assert.Error(t, err)
}

func TestApply_NonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"-500", "0"} {
		t.Run(amount, func(t *testing.T) {
			d, err := seed.Parse(strings.NewReader(`
customers:
  - {ref: a, name: A, phone: "1"}
transactions:
  - {customer: a, kind: credit, amount: "` + amount + `", description: x, date: "2024-06-01"}
`))
			require.NoError(t, err)

			ledger := core.NewLedger()
			err = seed.Apply(d, ledger, core.NewInventory())

			require.ErrorIs(t, err, core.ErrInvalidTransaction)
			assert.ErrorContains(t, err, "transaction 0")
			assert.Empty(t, ledger.Transactions())
			require.Len(t, ledger.Customers(), 1)
			assert.True(t, ledger.Customers()[0].Balance.IsZero())
		})
	}
}

func TestApply_NegativeItemQuantity(t *testing.T) {
	d, err := seed.Parse(strings.NewReader(`
suppliers:
  - {ref: s, name: Steel Works Ltd}
items:
  - {name: Bolt, category: Hardware, quantity: "-5", unit: boxes, price_per_unit: "2", supplier: s}
`))
	require.NoError(t, err)

	inv := core.NewInventory()
	err = seed.Apply(d, core.NewLedger(), inv)

	require.ErrorIs(t, err, core.ErrInvalidItem)
	assert.Empty(t, inv.Items())
}
