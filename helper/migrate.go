package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hotel/config"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionStepUp Action = "step-up"
	ActionDrop   Action = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// connectionString targets the write pool; credentials are escaped so
// passwords with reserved characters survive the URL form.
func connectionString(config *config.Config) string {
	write := config.DB.Postgres.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)

	if config.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     getDBName(config, write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationsSource, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action Action) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		log.Warn().Err(verr).Msg("could not read schema version")
	}

	log.Info().Str("action", string(action)).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}
