package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits traffic between a read replica and the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type dsn struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
	timezone string
}

func (d dsn) String() string {
	query := url.Values{}
	query.Set("sslmode", d.sslMode)

	if d.timezone != "" {
		query.Set("timezone", d.timezone)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.username, d.password),
		Host:     net.JoinHostPort(d.host, d.port),
		Path:     d.dbName,
		RawQuery: query.Encode(),
	}

	return u.String()
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := connect(dsn{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   dbName(cfg, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
		timezone: pg.Write.Timezone,
	}, pg.MaxRetry, pg.RetryWaitTime)

	read := connect(dsn{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   dbName(cfg, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
		timezone: pg.Read.Timezone,
	}, pg.MaxRetry, pg.RetryWaitTime)

	if write == nil || read == nil {
		log.Fatal().Msg("Could not connect to postgres after retries")
	}

	return &Connection{
		Read:  read,
		Write: write,
	}
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Write.Close(), c.Read.Close())
}

func dbName(cfg *config.Config, base string) string {
	return cfg.DB.Postgres.Prefix + base
}

func connect(d dsn, maxRetry, waitTime int) *sqlx.DB {
	for attempt := range max(maxRetry, 1) {
		db, err := sqlx.Connect("postgres", d.String())
		if err == nil {
			log.Info().
				Str("name", d.name).
				Str("host", d.host).
				Str("dbName", d.dbName).
				Msg("Connected to database")

			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxLifetime(postgresConnMaxLifetime)

			return db
		}

		log.Error().
			Err(err).
			Str("name", d.name).
			Str("host", d.host).
			Int("attempt", attempt+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
