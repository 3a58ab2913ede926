// Package config loads service configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// LoggerConfig controls the global zerolog setup.
type LoggerConfig struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

// CacheConfig configures the optional Redis-backed persisted cache.
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
	Enabled  bool
}

// WalletConfig configures derivation defaults.
type WalletConfig struct {
	// BIP39Passphrase is the optional 25th-word passphrase. Empty for
	// standard wallets.
	BIP39Passphrase string

	// VisibleWalletLimit caps how many derived accounts the UI pages
	// through. Derivation beyond it still resolves deterministically.
	VisibleWalletLimit int
}

// Service is the full environment-driven configuration.
type Service struct {
	Logger LoggerConfig
	Cache  CacheConfig
	Wallet WalletConfig
}

// DefaultServiceConfigFromEnv returns the server config parsed from the
// environment, with sane defaults for anything unset.
func DefaultServiceConfigFromEnv() Service {
	v := viper.New()
	v.SetEnvPrefix("VELVET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY_PRINT_CONSOLE", false)
	v.SetDefault("CACHE_REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("CACHE_TTL", "15m")
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("WALLET_BIP39_PASSPHRASE", "")
	v.SetDefault("WALLET_VISIBLE_LIMIT", 100)

	level, err := zerolog.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	return Service{
		Logger: LoggerConfig{
			Level:              level,
			PrettyPrintConsole: v.GetBool("LOG_PRETTY_PRINT_CONSOLE"),
		},
		Cache: CacheConfig{
			RedisURL: v.GetString("CACHE_REDIS_URL"),
			TTL:      v.GetDuration("CACHE_TTL"),
			Enabled:  v.GetBool("CACHE_ENABLED"),
		},
		Wallet: WalletConfig{
			BIP39Passphrase:    v.GetString("WALLET_BIP39_PASSPHRASE"),
			VisibleWalletLimit: v.GetInt("WALLET_VISIBLE_LIMIT"),
		},
	}
}
