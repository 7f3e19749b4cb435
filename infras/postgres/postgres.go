package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"salon/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection holds the read pool used by slot lookups and catalog reads and the
// write pool used by the booking ledger.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	role     string
	host     string
	port     string
	username string
	password string
	name     string
	sslMode  string
	timezone string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	read := endpoint{
		role: "read", host: pg.Read.Host, port: pg.Read.Port, username: pg.Read.Username, password: pg.Read.Password,
		name: pg.Prefix + pg.Read.Name, sslMode: pg.Read.SSLMode, timezone: pg.Read.Timezone,
	}
	write := endpoint{
		role: "write", host: pg.Write.Host, port: pg.Write.Port, username: pg.Write.Username, password: pg.Write.Password,
		name: pg.Prefix + pg.Write.Name, sslMode: pg.Write.SSLMode, timezone: pg.Write.Timezone,
	}

	return &Connection{
		Read:  connect(read, pg.MaxRetry, time.Duration(pg.RetryWaitTime)*time.Second),
		Write: connect(write, pg.MaxRetry, time.Duration(pg.RetryWaitTime)*time.Second),
	}
}

// Ping checks both pools; a pool that never connected counts as down.
func (c *Connection) Ping(ctx context.Context) error {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			return fmt.Errorf("%s database is not connected", name)
		}

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to ping %s database: %w", name, err)
		}
	}

	return nil
}

func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}
}

// dsn renders the lib/pq URL. lib/pq forwards unknown keys such as timezone as
// session parameters, so booking timestamps come back in the configured zone.
func (e endpoint) dsn() string {
	query := url.Values{}
	if e.sslMode != "" {
		query.Set("sslmode", e.sslMode)
	}

	if e.timezone != "" {
		query.Set("timezone", e.timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     "/" + e.name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect opens the pool, trying up to maxRetry times. It returns nil when every attempt failed.
func connect(e endpoint, maxRetry int, wait time.Duration) *sqlx.DB {
	logger := log.With().Str("name", e.role).Str("host", e.host).Str("port", e.port).Str("dbName", e.name).Logger()

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", e.dsn())
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(wait)
	}

	return nil
}
