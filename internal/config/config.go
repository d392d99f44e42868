package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Auth protocol selection. Challenge-response is kept only for the old web
// client and must not be enabled for new deployments.
const (
	ProtocolDirect    = "direct"
	ProtocolChallenge = "challenge" // Deprecated: weak handshake, see README
)

const (
	defaultPort        = "8080"
	defaultDBPath      = "expenses.db"
	defaultSessionTTL  = 25 * time.Hour
	defaultRebuildTick = 15 * time.Minute
)

// Config is the explicit configuration passed to component constructors.
// It is loaded once in main; nothing reads viper after startup.
type Config struct {
	Port     string
	LogLevel string

	DBPath string

	AuthProtocol string
	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool

	RebuildTick time.Duration
}

// Load reads configs/config.yml (plus FE_* environment overrides) into a
// Config and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")
	v.SetEnvPrefix("fe")
	v.AutomaticEnv()

	v.SetDefault("port", defaultPort)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("auth.protocol", ProtocolDirect)
	v.SetDefault("session.ttl", defaultSessionTTL)
	v.SetDefault("session.cookie", "fesession")
	v.SetDefault("session.secure", false)
	v.SetDefault("categories.rebuild_tick", defaultRebuildTick)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus env cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:         v.GetString("port"),
		LogLevel:     v.GetString("log.level"),
		DBPath:       v.GetString("db.path"),
		AuthProtocol: v.GetString("auth.protocol"),
		SessionTTL:   v.GetDuration("session.ttl"),
		CookieName:   v.GetString("session.cookie"),
		CookieSecure: v.GetBool("session.secure"),
		RebuildTick:  v.GetDuration("categories.rebuild_tick"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.AuthProtocol {
	case ProtocolDirect, ProtocolChallenge:
	default:
		return fmt.Errorf("unknown auth.protocol %q (want %q or %q)",
			c.AuthProtocol, ProtocolDirect, ProtocolChallenge)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", c.SessionTTL)
	}
	if c.CookieName == "" {
		return fmt.Errorf("session.cookie must not be empty")
	}
	if c.RebuildTick <= 0 {
		return fmt.Errorf("categories.rebuild_tick must be positive, got %s", c.RebuildTick)
	}
	return nil
}
