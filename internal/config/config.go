// Package config loads gocube-perm settings from defaults, an optional TOML
// file and GOCUBE_PERM_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GOCUBE_PERM_LOG_LEVEL.
const EnvPrefix = "GOCUBE_PERM"

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig
	Log        LogConfig
	Player     PlayerConfig
	Cycles     CyclesConfig
	BLE        BLEConfig
	Controller ControllerConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// PlayerConfig holds defaults for the interactive player.
type PlayerConfig struct {
	Interval      time.Duration
	ExpandDoubles bool `mapstructure:"expand_doubles"`
}

// CyclesConfig holds defaults for cycle listings.
type CyclesConfig struct {
	IncludeFixed bool `mapstructure:"include_fixed"`
}

// BLEConfig holds smart cube settings.
type BLEConfig struct {
	ScanTimeout time.Duration `mapstructure:"scan_timeout"`
}

// ControllerConfig holds move queue settings.
type ControllerConfig struct {
	QueueSize int `mapstructure:"queue_size"`
}

// DefaultDBPath returns the default catalog location.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gocube_perm.db"
	}
	return filepath.Join(home, ".local", "share", "gocube_perm", "gocube_perm.db")
}

// DefaultConfigPath returns where Load looks for a config file when
// GOCUBE_PERM_CONFIG is unset.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gocube_perm", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDBPath())
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("player.interval", 500*time.Millisecond)
	v.SetDefault("player.expand_doubles", false)
	v.SetDefault("cycles.include_fixed", false)
	v.SetDefault("ble.scan_timeout", 10*time.Second)
	v.SetDefault("controller.queue_size", 64)
}

// Load reads configuration. path names a TOML file; when empty,
// GOCUBE_PERM_CONFIG and then DefaultConfigPath are tried. A missing file
// is not an error unless path was given explicitly.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultConfigPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail later and far away.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q", c.Log.Format)
	}
	if c.Player.Interval <= 0 {
		return fmt.Errorf("player.interval must be positive, got %s", c.Player.Interval)
	}
	if c.Controller.QueueSize < 1 {
		return fmt.Errorf("controller.queue_size must be at least 1, got %d", c.Controller.QueueSize)
	}
	return nil
}
