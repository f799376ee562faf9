package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"hostly/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// Connection holds the read replica and primary pools. Writes and row locks go to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools, retrying until both answer.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres
	retry := retryPolicy{attempts: max(pg.MaxRetry, 1), wait: time.Duration(pg.RetryWaitTime) * time.Second}

	conn := &Connection{
		Read:  connect("read", DSN(pg.Read, pg.Prefix, nil), retry),
		Write: connect("write", DSN(pg.Write, pg.Prefix, nil), retry),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Msg("Database connections could not be established")
	}

	return conn
}

// DSN renders an endpoint as a postgres URL. Credentials are escaped and extra is merged into the query.
func DSN(endpoint config.PostgresEndpoint, prefix string, extra url.Values) string {
	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Ping checks both pools, used by the health endpoint.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}

	return nil
}

func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed closing database connection")
		}
	}
}

type retryPolicy struct {
	attempts int
	wait     time.Duration
}

func connect(name, dsn string, retry retryPolicy) *sqlx.DB {
	target, _ := url.Parse(dsn)
	logCtx := log.With().Str("name", name).Str("host", target.Host).Str("dbName", target.Path).Logger()

	for attempt := 1; attempt <= retry.attempts; attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxLifetime(connMaxLifetime)

			logCtx.Info().Msg("Connected to database")

			return db
		}

		logCtx.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database")

		if attempt < retry.attempts {
			time.Sleep(retry.wait)
		}
	}

	return nil
}
