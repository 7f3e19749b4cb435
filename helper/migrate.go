package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"salon/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

// Direction names one way of moving the schema.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStepUp Direction = "step-up"
	DirectionDrop   Direction = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

// DSN builds the golang-migrate url of the write database, including the custom version table.
func DSN(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)
	query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     cfg.DB.Postgres.Prefix + write.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationsSource, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func apply(mig *migrate.Migrate, direction Direction) error {
	switch direction {
	case DirectionUp:
		return mig.Up() //nolint:wrapcheck
	case DirectionDown:
		return mig.Steps(-1) //nolint:wrapcheck
	case DirectionStepUp:
		return mig.Steps(1) //nolint:wrapcheck
	case DirectionDrop:
		return mig.Down() //nolint:wrapcheck
	}

	return fmt.Errorf("%w: %s", ErrUnknownDirection, direction)
}

// Run moves the schema in the given direction. Having nothing to do is not an error.
func Run(cfg *config.Config, direction Direction) error {
	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err = apply(mig, direction); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", direction, err)
	}

	version, dirty, err := mig.Version()

	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Info().Str("direction", string(direction)).Msg("Database schema is empty")
	case err != nil:
		return fmt.Errorf("error reading schema version: %w", err)
	default:
		log.Info().Str("direction", string(direction)).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed")
	}

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, DirectionUp)
}

func StepUp(cfg *config.Config) error {
	return Run(cfg, DirectionStepUp)
}

func Down(cfg *config.Config) error {
	return Run(cfg, DirectionDown)
}

func Drop(cfg *config.Config) error {
	return Run(cfg, DirectionDrop)
}

// Version reports the applied schema version. An empty schema is version 0.
func Version(cfg *config.Config) (uint, bool, error) {
	mig, err := open(cfg)
	if err != nil {
		return 0, false, err
	}

	defer mig.Close()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("error reading schema version: %w", err)
	}

	return version, dirty, nil
}
