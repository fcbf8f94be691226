package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/config"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations_hotel"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "hotel"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "hotel"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	got := connectionString(cfg)

	assert.Equal(t, "postgres://hotel:p%40ss%2Fword@db:5432/test_hotel?sslmode=disable&x-migrations-table=schema_migrations_hotel", got)
}

func TestGetDBName(t *testing.T) {
	cfg := &config.Config{}

	assert.Equal(t, "hotel", getDBName(cfg, "hotel"))

	cfg.DB.Postgres.Prefix = "ci_"

	assert.Equal(t, "ci_hotel", getDBName(cfg, "hotel"))
}
