package model

import (
	"hotel/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID     = "id"
	FieldName   = "name"
	FieldStatus = "status"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on-leave"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}

	return false
}

type Employee struct {
	ID          string              `db:"id"`
	Name        string              `db:"name"`
	Email       string              `db:"email"`
	Phone       *string             `db:"phone"`
	Document    string              `db:"document"`
	Nationality *string             `db:"nationality"`
	Address     *string             `db:"address"`
	Position    string              `db:"position"`
	Department  *string             `db:"department"`
	Salary      decimal.NullDecimal `db:"salary"`
	HireDate    time.Time           `db:"hire_date"`
	Status      Status              `db:"status"`
	model.Metadata
}
