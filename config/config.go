package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDev    = "dev"
	EnvDeploy = "deploy"
)

type Config struct {
	AppName     string        `env:"APP_NAME" envDefault:"ECAMP"`
	AppEnv      string        `env:"APP_ENV" envDefault:"dev"`
	HTTPHost    string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort    string        `env:"HTTP_PORT" envDefault:"8000"`
	CORSOrigins string        `env:"CORS_ORIGINS" envDefault:"*"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	Timeout     time.Duration `env:"USECASE_TIMEOUT" envDefault:"10s"`
	BcryptCost  int           `env:"BCRYPT_COST" envDefault:"10"`

	DB  DatabaseConfig
	JWT JWTConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_DATABASE" envDefault:"ecamp"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	// Driver picks the database/sql driver underneath gorm: "pgx" or "postgres" (lib/pq).
	Driver string `env:"DB_DRIVER" envDefault:"pgx"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// LoadEnvFile loads .env into the process environment. A missing file is not an error.
func LoadEnvFile(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) IsDeploy() bool {
	return c.AppEnv == EnvDeploy
}

func (c *Config) Validate() error {
	var errs []error

	if c.AppEnv != EnvDev && c.AppEnv != EnvDeploy {
		errs = append(errs, fmt.Errorf("APP_ENV must be '%s' or '%s', got '%s'", EnvDev, EnvDeploy, c.AppEnv))
	}
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("USECASE_TIMEOUT must be positive"))
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost))
	}
	if c.DB.Driver != "pgx" && c.DB.Driver != "postgres" {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be 'pgx' or 'postgres', got '%s'", c.DB.Driver))
	}
	if c.IsDeploy() && c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required when APP_ENV is deploy"))
	}

	return errors.Join(errs...)
}

func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%s", c.HTTPHost, c.HTTPPort)
}

func (c *Config) AllowedOrigins() string {
	return strings.ReplaceAll(c.CORSOrigins, " ", "")
}
