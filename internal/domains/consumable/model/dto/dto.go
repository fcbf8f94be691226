package dto

import (
	"hotel/internal/domains/consumable/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateConsumableRequest struct {
	Name        string          `json:"name"        validate:"required,max=255"`
	Category    string          `json:"category"    validate:"required,max=100"`
	Price       decimal.Decimal `json:"price"       validate:"gte=0"`
	Stock       int             `json:"stock"       validate:"gte=0"`
	MinStock    *int            `json:"minStock"    validate:"omitempty,gte=0"`
	Unit        string          `json:"unit"        validate:"omitempty,max=20"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
}

func (c *CreateConsumableRequest) ToModel(user string) model.Consumable {
	minStock := model.DefaultMinStock
	if c.MinStock != nil {
		minStock = *c.MinStock
	}

	unit := c.Unit
	if unit == "" {
		unit = model.DefaultUnit
	}

	return model.Consumable{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Category:    c.Category,
		Price:       c.Price,
		Stock:       c.Stock,
		MinStock:    minStock,
		Unit:        unit,
		Description: c.Description,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateConsumableRequest struct {
	Name        *string          `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Category    *string          `db:"category"    json:"category"    validate:"omitempty,max=100"`
	Price       *decimal.Decimal `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Stock       *int             `db:"stock"       json:"stock"       validate:"omitempty,gte=0"`
	MinStock    *int             `db:"min_stock"   json:"minStock"    validate:"omitempty,gte=0"`
	Unit        *string          `db:"unit"        json:"unit"        validate:"omitempty,max=20"`
	Description *string          `db:"description" json:"description" validate:"omitempty,max=500"`
}

func (u UpdateConsumableRequest) IsEmpty() bool {
	return u == UpdateConsumableRequest{}
}

type ConsumableResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Unit        string          `json:"unit"`
	Description *string         `json:"description,omitempty"`
	LowStock    bool            `json:"lowStock"`
	gDto.Metadata
}

func (c *ConsumableResponse) FromModel(m model.Consumable) {
	c.ID = m.ID
	c.Name = m.Name
	c.Category = m.Category
	c.Price = m.Price
	c.Stock = m.Stock
	c.MinStock = m.MinStock
	c.Unit = m.Unit
	c.Description = m.Description
	c.LowStock = m.IsLowStock()
	c.Metadata.FromModel(m.Metadata)
}

type GetConsumablesResponse struct {
	Consumables []ConsumableResponse `json:"consumables"`
	TotalPage   int                  `json:"totalPage"`
	TotalData   int                  `json:"totalData"`
}

func (c *GetConsumablesResponse) FromModels(models []model.Consumable, totalData, limit int) {
	c.TotalData = totalData
	c.TotalPage = shared.CalculateTotalPage(totalData, limit)

	c.Consumables = make([]ConsumableResponse, len(models))
	for i, m := range models {
		c.Consumables[i].FromModel(m)
	}
}
