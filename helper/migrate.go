package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hostly/config"
	"hostly/infras/postgres"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
	ActionForce  = "force"
)

var ErrUnknownAction = errors.New("unknown migration action")

// DSN builds the migrate connection string for the primary database.
func DSN(cfg *config.Config) string {
	pg := cfg.DB.Postgres

	return postgres.DSN(pg.Write, pg.Prefix, url.Values{"x-migrations-table": {pg.MigrationTable}})
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationsSource, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies a migration action. version is only read by ActionForce.
func Run(cfg *config.Config, action string, version int) error {
	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionForce:
		err = mig.Force(version)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run %s migration: %w", action, err)
	}

	current, dirty, verErr := mig.Version()
	if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
		log.Warn().Err(verErr).Msg("failed to read migration version")
	}

	log.Info().Str("action", action).Uint("version", current).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}
