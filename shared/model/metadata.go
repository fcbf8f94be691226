package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metadata is the audit block every table carries.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// NewMetadata stamps a fresh row.
func NewMetadata(now time.Time, actor string) Metadata {
	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}

func init() {
	// Money fields travel as JSON numbers, matching what the admin UI sends.
	decimal.MarshalJSONWithoutQuotes = true
}
