package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevSessionSecret is used when SESSION_SECRET is unset. Fine for local runs,
// never for a shared deployment.
const DevSessionSecret = "dev-session-secret-change-me"

type Config struct {
	Env      string `mapstructure:"app_env"`
	HTTPAddr string `mapstructure:"http_addr"`

	SessionSecret string        `mapstructure:"session_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`

	DBDriver string `mapstructure:"db_driver"` // sqlite|postgres|memory
	DBDSN    string `mapstructure:"db_dsn"`

	CORSOrigins []string `mapstructure:"-"`

	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`

	EventsEnabled bool `mapstructure:"events_enabled"`
}

// UsingDevSecret reports whether the built-in session secret is in effect.
func (c Config) UsingDevSecret() bool { return c.SessionSecret == DevSessionSecret }

// Load reads config/config.yaml when present. Environment variables, including
// ones supplied by a local .env file, take precedence over it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("app_env", "local")
	v.SetDefault("http_addr", ":5000")
	v.SetDefault("session_secret", DevSessionSecret)
	v.SetDefault("session_ttl", "2h")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "")
	v.SetDefault("cors_origins", "http://localhost:3000")
	v.SetDefault("rate_limit_rps", 5)
	v.SetDefault("rate_limit_burst", 20)
	v.SetDefault("events_enabled", true)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.CORSOrigins = csv(v.GetString("cors_origins"))

	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return Config{}, errors.New("session_secret must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("session_ttl must be positive, got %s", cfg.SessionTTL)
	}
	switch cfg.DBDriver {
	case "sqlite", "postgres", "memory":
	default:
		return Config{}, fmt.Errorf("unsupported db_driver %q", cfg.DBDriver)
	}
	return cfg, nil
}

func csv(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
