package model

import (
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldName      = "name"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleColaborador Role = "colaborador"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleColaborador:
		return true
	}

	return false
}

// User is a staff account that can sign in to the admin API.
type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Name      string     `db:"name"`
	Role      Role       `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
