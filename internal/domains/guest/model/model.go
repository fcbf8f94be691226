package model

import (
	"hotel/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldDocument = "document"
)

type Guest struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Email       string  `db:"email"`
	Phone       string  `db:"phone"`
	Document    string  `db:"document"`
	Nationality string  `db:"nationality"`
	Address     *string `db:"address"`
	model.Metadata
}
