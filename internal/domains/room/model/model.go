package model

import (
	"hotel/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldType        = "type"
	FieldStatus      = "status"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldImage       = "image"
	FieldModifiedAt  = "modified_at"
	FieldModifiedBy  = "modified_by"
	FieldDescription = "description"
)

type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
	TypeSuite  Type = "suite"
	TypeDeluxe Type = "deluxe"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite, TypeDeluxe:
		return true
	}

	return false
}

type Status string

const (
	StatusAvailable          Status = "available"
	StatusOccupied           Status = "occupied"
	StatusMaintenance        Status = "maintenance"
	StatusCleaning           Status = "cleaning"
	StatusCleaningInProgress Status = "cleaning-in-progress"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusCleaning, StatusCleaningInProgress:
		return true
	}

	return false
}

type Room struct {
	ID          string          `db:"id"`
	Number      string          `db:"number"`
	Type        Type            `db:"type"`
	Status      Status          `db:"status"`
	Price       decimal.Decimal `db:"price"`
	Capacity    int             `db:"capacity"`
	Amenities   pq.StringArray  `db:"amenities"`
	Consumables pq.StringArray  `db:"consumables"`
	Description *string         `db:"description"`
	Image       *string         `db:"image"`
	model.Metadata
}
