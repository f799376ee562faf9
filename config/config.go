package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// PostgresEndpoint is one side of the read/write split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret string `envconfig:"ACCESS_SECRET"`
		Issuer       string `envconfig:"ISSUER"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			BookingIndex string `envconfig:"BOOKING_INDEX"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	RabbitMQ struct {
		URL      string `envconfig:"URL"`
		Exchange string `envconfig:"EXCHANGE"`
	} `envconfig:"RABBITMQ"`

	Payment struct {
		Currency string `envconfig:"CURRENCY"`
	} `envconfig:"PAYMENT"`

	Billing struct {
		CloseInvoicesCron string `envconfig:"CLOSE_INVOICES_CRON"`
		InvoiceRetries    int    `envconfig:"INVOICE_RETRIES"`
	} `envconfig:"BILLING"`

	Events struct {
		ObserverTimeoutSeconds int `envconfig:"OBSERVER_TIMEOUT_SECONDS"`
	} `envconfig:"EVENTS"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
		Twilio struct {
			AccountSID string `envconfig:"ACCOUNT_SID"`
			AuthToken  string `envconfig:"AUTH_TOKEN"`
			FromNumber string `envconfig:"FROM_NUMBER"`
		} `envconfig:"TWILIO"`
	} `envconfig:"EXTERNAL"`
}

const (
	defaultCurrency          = "PEN"
	defaultInvoiceRetries    = 3
	defaultObserverTimeout   = 10
	defaultCloseInvoicesCron = "@daily"
)

const envFile = ".env"

var load = sync.OnceValue(func() *Config {
	if err := godotenv.Load(envFile); err != nil {
		log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
	} else {
		log.Info().Msg("Loaded variables from .env file")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to process environment variables")
	}

	cfg.applyDefaults()

	log.Info().Msg("Service configuration initialized")

	return cfg
})

// Get returns the process configuration, loading it from the environment on first use.
func Get() *Config {
	return load()
}

func (c *Config) applyDefaults() {
	if c.Payment.Currency == "" {
		c.Payment.Currency = defaultCurrency
	}

	if c.Billing.InvoiceRetries <= 0 {
		c.Billing.InvoiceRetries = defaultInvoiceRetries
	}

	if c.Billing.CloseInvoicesCron == "" {
		c.Billing.CloseInvoicesCron = defaultCloseInvoicesCron
	}

	if c.Events.ObserverTimeoutSeconds <= 0 {
		c.Events.ObserverTimeoutSeconds = defaultObserverTimeout
	}
}
