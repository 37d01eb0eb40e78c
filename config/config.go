package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Stub holds the configuration of the local market data stub server, loaded
// from environment variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	STUB_STORE=memory
//	STUB_ACCESS_KEYS=local-dev-key,another-key
//	STUB_RATE_LIMIT=600
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=marketprobe
//	POSTGRES_SSLMODE=disable
type Stub struct {
	Server     ServerConfig
	Postgres   PostgresConfig
	Store      string   // "memory" or "postgres"
	AccessKeys []string // keys accepted by the stub
	RateLimit  int      // requests per minute per client IP
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// PostgresConfig defines connection details for PostgreSQL.
//
// URL is the computed DSN used by database/sql.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	// DefaultStubAccessKey is accepted by a stub started without STUB_ACCESS_KEYS.
	DefaultStubAccessKey = "local-dev-key"
)

// LoadStub reads the stub configuration.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func LoadStub() (Stub, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("STUB_STORE", StoreMemory)
	v.SetDefault("STUB_ACCESS_KEYS", DefaultStubAccessKey)
	v.SetDefault("STUB_RATE_LIMIT", 600)

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "marketprobe")
	v.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	cfg := Stub{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("POSTGRES_HOST"),
			Port:     v.GetInt("POSTGRES_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			DBName:   v.GetString("POSTGRES_DB"),
			SSLMode:  v.GetString("POSTGRES_SSLMODE"),
		},
		Store:      strings.ToLower(strings.TrimSpace(v.GetString("STUB_STORE"))),
		AccessKeys: splitList(v.GetString("STUB_ACCESS_KEYS")),
		RateLimit:  v.GetInt("STUB_RATE_LIMIT"),
	}
	cfg.Postgres.URL = cfg.Postgres.DSN()

	if err := validateStub(cfg); err != nil {
		return Stub{}, err
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateStub collects every missing or invalid variable into one error.
func validateStub(cfg Stub) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if len(cfg.AccessKeys) == 0 {
		missing = append(missing, "STUB_ACCESS_KEYS")
	}
	if cfg.Store == StorePostgres {
		if cfg.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if cfg.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if cfg.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	}
	if len(missing) > 0 {
		return &Error{Reason: fmt.Sprintf("missing required environment variables: %v", missing)}
	}

	if cfg.Store != StoreMemory && cfg.Store != StorePostgres {
		return &Error{Reason: fmt.Sprintf("invalid STUB_STORE %q: must be one of [%s %s]", cfg.Store, StoreMemory, StorePostgres)}
	}
	if cfg.RateLimit < 0 {
		return &Error{Reason: fmt.Sprintf("invalid STUB_RATE_LIMIT %d: must be >= 0", cfg.RateLimit)}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
