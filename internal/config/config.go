package config // package config loads application configuration from environment variables

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable; required ones make Load fail when unset.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"dev"`   // application environment (e.g. "dev", "prod")
	Port string `env:"APP_PORT" envDefault:"8080"` // HTTP port to listen on

	DBUser         string `env:"DB_USER,required"`               // database username
	DBPass         string `env:"DB_PASS"`                        // database password (optional)
	DBHost         string `env:"DB_HOST,required"`               // database host address
	DBPort         string `env:"DB_PORT" envDefault:"3306"`      // database port number
	DBName         string `env:"DB_NAME,required"`               // database name
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMigrate      bool   `env:"DB_MIGRATE" envDefault:"true"` // apply embedded migrations on start

	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`      // bcrypt cost for password hashing
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"` // per-request store deadline

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json | text

	RabbitMQURL    string `env:"RABBITMQ_URL"` // empty disables event publishing
	EventsExchange string `env:"EVENTS_EXCHANGE" envDefault:"contacts.events"`
}

// Load reads an optional .env file and then parses the environment into a
// Config.  Missing required variables are reported as an error.
func Load() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, fmt.Errorf("invalid BCRYPT_COST: %d", cfg.BcryptCost)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 5 * time.Second
	}
	return cfg, nil
}
