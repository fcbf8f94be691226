package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "consumables"
	EntityName = "consumable"

	FieldID       = "id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldStock    = "stock"
	FieldMinStock = "min_stock"

	DefaultMinStock = 10
	DefaultUnit     = "un"
)

type Consumable struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	MinStock    int             `db:"min_stock"`
	Unit        string          `db:"unit"`
	Description *string         `db:"description"`
	model.Metadata
}

func (c Consumable) IsLowStock() bool {
	return c.Stock <= c.MinStock
}
