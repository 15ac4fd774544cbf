package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Archive ArchiveConfig `mapstructure:"archive"`
	Content ContentConfig `mapstructure:"content"`
	Timing  TimingConfig  `mapstructure:"timing"`
	Log     LogConfig     `mapstructure:"log"`
	SSH     SSHConfig     `mapstructure:"ssh"`
}

// ArchiveConfig holds sqlite settings for the finished-run history.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ContentConfig points at an alternative room script. Empty uses the embedded one.
type ContentConfig struct {
	Path string `mapstructure:"path"`
}

// TimingConfig holds the cosmetic delays of the screens.
type TimingConfig struct {
	Tick        time.Duration `mapstructure:"tick"`
	SubmitDelay time.Duration `mapstructure:"submit_delay"`
	Flash       time.Duration `mapstructure:"flash"`
	Blank       time.Duration `mapstructure:"blank"`
	Patience    time.Duration `mapstructure:"patience"`
}

// LogConfig holds log file rotation settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Console    bool   `mapstructure:"console"`
}

// SSHConfig holds settings for `greyarchive serve`.
type SSHConfig struct {
	Addr        string        `mapstructure:"addr"`
	HostKey     string        `mapstructure:"host_key"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

// Load reads configuration from file and env. Env var overrides use prefix GREYARCHIVE_.
// path, when non-empty, takes precedence over GREYARCHIVE_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("GREYARCHIVE_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "greyarchive"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GREYARCHIVE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist is an error; a missing default is not
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
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

// Validate rejects values the screens cannot work with.
func (c Config) Validate() error {
	if c.Timing.Tick <= 0 {
		return fmt.Errorf("config: timing.tick must be positive, got %s", c.Timing.Tick)
	}
	for name, d := range map[string]time.Duration{
		"timing.submit_delay": c.Timing.SubmitDelay,
		"timing.flash":        c.Timing.Flash,
		"timing.blank":        c.Timing.Blank,
		"timing.patience":     c.Timing.Patience,
	} {
		if d < 0 {
			return fmt.Errorf("config: %s must not be negative, got %s", name, d)
		}
	}
	if c.Archive.Enabled && strings.TrimSpace(c.Archive.Path) == "" {
		return fmt.Errorf("config: archive.path is required when the archive is enabled")
	}
	return nil
}

// Default returns the built-in configuration without reading files or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	data := filepath.Join(homeDir(), ".local", "share", "greyarchive")

	v.SetDefault("archive.enabled", true)
	v.SetDefault("archive.path", filepath.Join(data, "archive.db"))
	v.SetDefault("content.path", "")
	v.SetDefault("timing.tick", 100*time.Millisecond)
	v.SetDefault("timing.submit_delay", time.Second)
	v.SetDefault("timing.flash", 3*time.Second)
	v.SetDefault("timing.blank", 500*time.Millisecond)
	v.SetDefault("timing.patience", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(data, "greyarchive.log"))
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.console", false)
	v.SetDefault("ssh.addr", ":2222")
	v.SetDefault("ssh.host_key", filepath.Join(data, "host_key"))
	v.SetDefault("ssh.idle_timeout", 30*time.Minute)
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}
