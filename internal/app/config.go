package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"anarchyauth/internal/util/fsutil"
)

const (
	configName = "anarchyauth"
	envPrefix  = "anarchyauth"
)

// Config holds runtime options for building the app.
type Config struct {
	ListenAddr string          `mapstructure:"listen_addr"`
	Log        LogConfig       `mapstructure:"log"`
	Sessions   SessionsConfig  `mapstructure:"sessions"`
	Upload     UploadConfig    `mapstructure:"upload"`
	Extractor  ExtractorConfig `mapstructure:"extractor"`
	RateLimit  RateLimitConfig `mapstructure:"ratelimit"`
	Metrics    MetricsConfig   `mapstructure:"metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SessionsConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	Max           int           `mapstructure:"max"`
}

type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

// ExtractorConfig points at the external iris pipeline. An empty URL selects
// image hash fallback mode.
type ExtractorConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig tunes the per-client limiter. TrustedProxies holds the
// addresses or CIDR prefixes allowed to set X-Forwarded-For.
type RateLimitConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	RPS            float64  `mapstructure:"rps"`
	Burst          int      `mapstructure:"burst"`
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Defaults returns the built-in value of every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"listen_addr":               ":5000",
		"log.level":                 "info",
		"log.format":                "text",
		"sessions.ttl":              "30m",
		"sessions.sweep_interval":   "1m",
		"sessions.max":              10000,
		"upload.max_bytes":          10 << 20,
		"extractor.url":             "",
		"extractor.timeout":         "30s",
		"ratelimit.enabled":         true,
		"ratelimit.rps":             5.0,
		"ratelimit.burst":           10,
		"ratelimit.trusted_proxies": []string{},
		"metrics.enabled":           true,
	}
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"listen":        "listen_addr",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"session-ttl":   "sessions.ttl",
	"max-sessions":  "sessions.max",
	"extractor-url": "extractor.url",
}

// LoadConfig layers defaults, the config file, ANARCHYAUTH_* environment
// variables and any flags of cmd, in increasing precedence. An explicit path
// must exist; otherwise a missing file is not an error.
func LoadConfig(cmd *cobra.Command, path string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if p, err := ConfigPath(); err == nil {
			v.AddConfigPath(filepath.Dir(p))
		}
		v.AddConfigPath("/etc/" + configName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	if f := fs.Lookup("no-ratelimit"); f != nil && f.Changed {
		if off, _ := fs.GetBool("no-ratelimit"); off {
			v.Set("ratelimit.enabled", false)
		}
	}
	return nil
}

// Validate rejects settings the services cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Sessions.TTL <= 0:
		return errors.New("sessions.ttl must be positive")
	case c.Sessions.SweepInterval <= 0:
		return errors.New("sessions.sweep_interval must be positive")
	case c.Sessions.Max < 0:
		return errors.New("sessions.max must not be negative")
	case c.Upload.MaxBytes <= 0:
		return errors.New("upload.max_bytes must be positive")
	case c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0):
		return errors.New("ratelimit.rps and ratelimit.burst must be positive")
	case c.Extractor.URL != "" && c.Extractor.Timeout <= 0:
		return errors.New("extractor.timeout must be positive")
	}
	return nil
}

// ConfigPath returns the per-user config file location.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, configName, configName+".yaml"), nil
}

// MarshalYAML renders durations in their short string form so the file
// reads back through LoadConfig unchanged.
func (c Config) MarshalYAML() (any, error) {
	proxies := c.RateLimit.TrustedProxies
	if proxies == nil {
		proxies = []string{}
	}
	return yaml.MapSlice{
		{Key: "listen_addr", Value: c.ListenAddr},
		{Key: "log", Value: yaml.MapSlice{
			{Key: "level", Value: c.Log.Level},
			{Key: "format", Value: c.Log.Format},
		}},
		{Key: "sessions", Value: yaml.MapSlice{
			{Key: "ttl", Value: c.Sessions.TTL.String()},
			{Key: "sweep_interval", Value: c.Sessions.SweepInterval.String()},
			{Key: "max", Value: c.Sessions.Max},
		}},
		{Key: "upload", Value: yaml.MapSlice{
			{Key: "max_bytes", Value: c.Upload.MaxBytes},
		}},
		{Key: "extractor", Value: yaml.MapSlice{
			{Key: "url", Value: c.Extractor.URL},
			{Key: "timeout", Value: c.Extractor.Timeout.String()},
		}},
		{Key: "ratelimit", Value: yaml.MapSlice{
			{Key: "enabled", Value: c.RateLimit.Enabled},
			{Key: "rps", Value: c.RateLimit.RPS},
			{Key: "burst", Value: c.RateLimit.Burst},
			{Key: "trusted_proxies", Value: proxies},
		}},
		{Key: "metrics", Value: yaml.MapSlice{
			{Key: "enabled", Value: c.Metrics.Enabled},
		}},
	}, nil
}

// WriteConfigFile writes c as YAML to path, or to ConfigPath when path is
// empty. An existing file is only replaced when force is set.
func WriteConfigFile(c Config, path string, force bool) (string, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists", path)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	if err := fsutil.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write config %s: %w", path, err)
	}
	return path, nil
}
