// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, applies defaults and
// validates that required values are present so they can be reused across
// the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Accept the legacy unprefixed names the site was deployed with.
//   - Validate required values so the app fails fast on bad/missing config.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every first-class environment variable carries.
//
// Example:
//
//	LUXURY_DATABASE_USER -> database.user -> Config.Database.User
const EnvPrefix = "LUXURY_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Payment       PaymentConfig        `koanf:"payment"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// PublicDir is served at the site root for any path no route claims.
	PublicDir string `koanf:"public_dir"`

	// RateLimit is the allowed requests per second per client IP.
	// Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig contains MongoDB connection parameters.
//
// Either URI is set (used verbatim) or the URI is assembled from
// Scheme/User/Password/Host/Name/Options.
type DatabaseConfig struct {
	URI            string `koanf:"uri"`
	Scheme         string `koanf:"scheme"`
	Host           string `koanf:"host" validate:"required_without=URI"`
	User           string `koanf:"user"`
	Password       string `koanf:"password"`
	Name           string `koanf:"name" validate:"required"`
	Options        string `koanf:"options"`
	ConnectTimeout int    `koanf:"connect_timeout" validate:"min=1"`
}

// PaymentConfig holds the payment processor (Stripe) settings.
//
// SecretKey may be empty: the server still starts, and payment-intent
// requests answer 503 until it is configured.
type PaymentConfig struct {
	SecretKey         string `koanf:"secret_key"`
	APIURL            string `koanf:"api_url"`
	MaxNetworkRetries int64  `koanf:"max_network_retries" validate:"min=0"`
}

// legacyEnvKeys maps the unprefixed variable names of the original
// deployment onto koanf keys. Prefixed variables override these.
var legacyEnvKeys = map[string]string{
	"DB_USER":            "database.user",
	"DB_PASS":            "database.password",
	"DB_HOST":            "database.host",
	"DB_NAME":            "database.name",
	"DB_URI":             "database.uri",
	"PAYMENT_SECRET_KEY": "payment.secret_key",
	"PORT":               "server.port",
}

// sectionPrefixes converts the flat env spelling of a section into its
// dotted koanf path. Longest prefixes come first so nested sections win.
var sectionPrefixes = []struct {
	env   string
	koanf string
}{
	{"observability_health_checks_", "observability.health_checks."},
	{"observability_new_relic_", "observability.new_relic."},
	{"observability_logging_", "observability.logging."},
	{"observability_", "observability."},
	{"primary_", "primary."},
	{"server_", "server."},
	{"database_", "database."},
	{"payment_", "payment."},
}

// envKey turns LUXURY_SERVER_READ_TIMEOUT into server.read_timeout.
// Unknown sections are dropped so stray variables never reach the config.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	for _, section := range sectionPrefixes {
		if strings.HasPrefix(key, section.env) {
			return section.koanf + strings.TrimPrefix(key, section.env)
		}
	}
	return ""
}

// envValue splits comma separated lists so slice fields can be set from a
// single variable (LUXURY_SERVER_CORS_ALLOWED_ORIGINS=a.com,b.com).
func envValue(key, value string) interface{} {
	switch key {
	case "server.cors_allowed_origins", "observability.health_checks.checks":
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return value
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, applies defaults, validates it and returns the result.
//
// Load order (later wins):
//  1. legacy unprefixed names (DB_USER, DB_PASS, PAYMENT_SECRET_KEY, PORT, ...)
//  2. LUXURY_ prefixed names
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	legacy := env.ProviderWithValue("", ".", func(name, value string) (string, interface{}) {
		key, ok := legacyEnvKeys[name]
		if !ok {
			return "", nil
		}
		return key, value
	})
	if err := k.Load(legacy, nil); err != nil {
		return nil, fmt.Errorf("could not load legacy env variables: %w", err)
	}

	prefixed := env.ProviderWithValue(EnvPrefix, ".", func(name, value string) (string, interface{}) {
		key := envKey(name)
		if key == "" {
			return "", nil
		}
		return key, envValue(key, value)
	})
	if err := k.Load(prefixed, nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	applyDefaults(mainConfig)

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labelled consistently.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// applyDefaults fills every optional value that was left empty.
func applyDefaults(cfg *Config) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "local"
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "5000"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.Server.PublicDir == "" {
		cfg.Server.PublicDir = "public"
	}

	if cfg.Database.Scheme == "" {
		cfg.Database.Scheme = "mongodb+srv"
	}
	if cfg.Database.URI == "" && cfg.Database.Host == "" {
		cfg.Database.Host = "cluster0.pbvyd.mongodb.net"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "luxuryLiving"
	}
	if cfg.Database.Options == "" {
		cfg.Database.Options = "retryWrites=true&w=majority"
	}
	if cfg.Database.ConnectTimeout == 0 {
		cfg.Database.ConnectTimeout = 10
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	} else {
		cfg.Observability.fillDefaults(DefaultObservabilityConfig())
	}
}
