package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Version  string `envconfig:"VERSION"   default:"1.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"salon"`
		Timezone string `envconfig:"TIMEZONE" default:"Europe/Zurich"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable             bool `envconfig:"ENABLE"`
			MaxRequests        int  `envconfig:"MAX_REQUESTS"         default:"120"`
			BookingMaxRequests int  `envconfig:"BOOKING_MAX_REQUESTS" default:"10"`
			WindowSeconds      int  `envconfig:"WINDOW_SECONDS"       default:"60"`
		} `envconfig:"RATE_LIMITER"`
		SecurityHeaders bool `envconfig:"SECURITY_HEADERS" default:"true"`
		Session         struct {
			HashKey  string `envconfig:"HASH_KEY"`
			BlockKey string `envconfig:"BLOCK_KEY"`
			Secure   bool   `envconfig:"SECURE"`
		} `envconfig:"SESSION"`
		Draft struct {
			Storage    string `envconfig:"STORAGE"     default:"redis"`
			TTLSeconds int    `envconfig:"TTL_SECONDS" default:"604800"`
		} `envconfig:"DRAFT"`
	} `envconfig:"APP"`

	Schedule struct {
		OpeningHour     int `envconfig:"OPENING_HOUR"     default:"9"`
		ClosingHour     int `envconfig:"CLOSING_HOUR"     default:"20"`
		SlotMinutes     int `envconfig:"SLOT_MINUTES"     default:"15"`
		LeadTimeMinutes int `envconfig:"LEAD_TIME_MINUTES" default:"120"`
		PaddingMinutes  int `envconfig:"PADDING_MINUTES"  default:"10"`
	} `envconfig:"SCHEDULE"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable  bool     `envconfig:"ENABLE"`
		Brokers []string `envconfig:"BROKERS"`
		Topic   string   `envconfig:"TOPIC" default:"booking.events"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		// Automation is the workflow service that owns the salon calendar.
		// An empty URL switches the matching component to local behaviour.
		Automation struct {
			BookingURL      string `envconfig:"BOOKING_URL"`
			AvailabilityURL string `envconfig:"AVAILABILITY_URL"`
			WebhookSecret   string `envconfig:"WEBHOOK_SECRET"`
			TimeoutSeconds  int    `envconfig:"TIMEOUT_SECONDS" default:"30"`
			CalendarID      string `envconfig:"CALENDAR_ID"     default:"primary"`
		} `envconfig:"AUTOMATION"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
		Upload struct {
			Secret    string  `envconfig:"SECRET"`
			MaxSizeMB float64 `envconfig:"MAX_SIZE_MB" default:"5"`
		} `envconfig:"UPLOAD"`
	} `envconfig:"EXTERNAL"`
}

// HasAutomationBooking reports whether booking confirmation is delegated.
func (c *Config) HasAutomationBooking() bool {
	return c.External.Automation.BookingURL != ""
}

// HasAutomationAvailability reports whether slot lookup is delegated.
func (c *Config) HasAutomationAvailability() bool {
	return c.External.Automation.AvailabilityURL != ""
}

// HasUpload reports whether design images can be stored.
func (c *Config) HasUpload() bool {
	return c.External.S3.BucketName != ""
}

var (
	conf     Config
	loadOnce sync.Once
	errLoad  error
)

// Load reads an optional .env file into the process environment and then fills Config
// from it. Only the first call does any work.
func Load() error {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg("No .env file loaded, using the process environment only")
		}

		if err := envconfig.Process("", &conf); err != nil {
			errLoad = fmt.Errorf("processing environment: %w", err)

			return
		}

		log.Info().Str("env", conf.Server.Env).Str("version", conf.Server.Version).Msg("Salon configuration loaded")
	})

	return errLoad
}

// Get returns the process wide configuration and exits when the environment is invalid.
func Get() *Config {
	if err := Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	return &conf
}
