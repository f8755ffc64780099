package server

import (
	"flag"
	"strings"
	"time"

	platformconfig "github.com/healing-together/recoveryhub/internal/platform/config"
)

const (
	defaultHTTPAddr  = "localhost:8080"
	defaultAuthDelay = 1500 * time.Millisecond
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr    string
	StoragePath string
	AuthDelay   time.Duration
	CookieKey   string
	TokenKey    string
}

// envConfig mirrors Config fields that may come from the environment.
type envConfig struct {
	HTTPAddr    string `env:"RECOVERYHUB_HTTP_ADDR"`
	StoragePath string `env:"RECOVERYHUB_STORAGE_PATH"`
	CookieKey   string `env:"RECOVERYHUB_COOKIE_KEY"`
	TokenKey    string `env:"RECOVERYHUB_TOKEN_KEY"`
}

// ParseConfig parses environment variables and flags into a Config.
// Flags take precedence over the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var fromEnv envConfig
	if err := platformconfig.ParseEnv(&fromEnv); err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPAddr:    stringOrDefault(fromEnv.HTTPAddr, defaultHTTPAddr),
		StoragePath: strings.TrimSpace(fromEnv.StoragePath),
		AuthDelay:   defaultAuthDelay,
		CookieKey:   fromEnv.CookieKey,
		TokenKey:    fromEnv.TokenKey,
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "content store path (empty for in-memory)")
	fs.DurationVar(&cfg.AuthDelay, "auth-delay", cfg.AuthDelay, "simulated sign-in latency")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func stringOrDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
