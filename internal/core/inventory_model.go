package core

import (
	"github.com/shopspring/decimal"
)

// Category groups inventory items. The store accepts any non-empty value;
// KnownCategories lists the ones offered for entry.
type Category string

const (
	CategoryFenceWires   Category = "Fence Wires"
	CategoryStonePillars Category = "Stone Pillars"
	CategoryHardware     Category = "Hardware"
	CategoryTools        Category = "Tools"
	CategoryOther        Category = "Other"
)

// KnownCategories in display order.
var KnownCategories = []Category{
	CategoryFenceWires,
	CategoryStonePillars,
	CategoryHardware,
	CategoryTools,
	CategoryOther,
}

// Unit is the measure an item's quantity is counted in.
type Unit string

const (
	UnitPieces Unit = "pieces"
	UnitMeters Unit = "meters"
	UnitKg     Unit = "kg"
	UnitTons   Unit = "tons"
	UnitBoxes  Unit = "boxes"
	UnitRolls  Unit = "rolls"
)

// KnownUnits in display order.
var KnownUnits = []Unit{UnitPieces, UnitMeters, UnitKg, UnitTons, UnitBoxes, UnitRolls}

// InventoryItem is a stocked product. TotalValue is Quantity × PricePerUnit
// as computed at creation; SupplierName is a copy taken at the same time.
type InventoryItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      Category        `json:"category"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          Unit            `json:"unit"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// IsLowStock reports whether the quantity has fallen to or below the threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinStockLevel)
}

// ItemInput holds the fields required to create an inventory item.
type ItemInput struct {
	Name          string
	Category      Category
	Quantity      decimal.Decimal
	Unit          Unit
	PricePerUnit  decimal.Decimal
	SupplierID    string
	MinStockLevel decimal.Decimal
}
