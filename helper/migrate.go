package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"hotel/config"
	"hotel/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStepUp Direction = "step-up"
	DirectionDrop   Direction = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

func connectionString(config *config.Config) string {
	extra := url.Values{}
	if config.DB.Postgres.MigrationTable != "" {
		extra.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	return postgres.DSN(config.DB.Postgres.Write, config.DB.Postgres.Prefix, extra)
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

// Run migrates the write database. Having nothing to apply is not an error.
func Run(config *config.Config, direction Direction) error {
	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := apply(mig, direction); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", direction, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("direction", string(direction)).Uint("version", version).Bool("dirty", dirty).
		Msg("Database migrations completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Run(config, DirectionUp)
}

func StepUp(config *config.Config) error {
	return Run(config, DirectionStepUp)
}

func Down(config *config.Config) error {
	return Run(config, DirectionDown)
}

func Drop(config *config.Config) error {
	return Run(config, DirectionDrop)
}
