package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"crm-dashboard/internal/crm"
	"crm-dashboard/internal/infra/logx"
	"crm-dashboard/internal/table"
)

const envPrefix = "CRMDASH"

// Config is the dashboard configuration.
type Config struct {
	// StartPage is the collection shown first: vendors, assets, campaigns, deals or leads.
	StartPage string `mapstructure:"start_page"`
	// MockLatency delays every call to the sample data store.
	MockLatency time.Duration `mapstructure:"mock_latency"`
	// Sort holds the initial "key:dir" descriptor per page.
	Sort map[string]string `mapstructure:"sort"`
	Log  LogConfig         `mapstructure:"log"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Verbose bool   `mapstructure:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StartPage:   string(crm.KindLeads),
		MockLatency: 250 * time.Millisecond,
		Sort: map[string]string{
			string(crm.KindLeads):   "created:desc",
			string(crm.KindVendors): "name:asc",
		},
		Log: LogConfig{Level: "info", File: "debug.log"},
	}
}

// DefaultPath is ~/.crmdash.yaml, falling back to the working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".crmdash.yaml"
	}
	return filepath.Join(home, ".crmdash.yaml")
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("start_page", d.StartPage)
	v.SetDefault("mock_latency", d.MockLatency)
	v.SetDefault("sort", d.Sort)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.verbose", d.Log.Verbose)

	v.SetEnvPrefix(envPrefix)
	// CRMDASH_LOG_LEVEL for log.level
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the file at path on top of the defaults. A missing file is
// not an error; environment variables override both.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("read config %s: %w", path, err)
		}
		logx.Debugf("config: %s not found, using defaults", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	v := viper.New()
	v.Set("start_page", cfg.StartPage)
	v.Set("mock_latency", cfg.MockLatency.String())
	v.Set("sort", cfg.Sort)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.verbose", cfg.Log.Verbose)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks the page names, sort descriptors and log level.
func (c Config) Validate() error {
	if _, err := crm.ParseKind(c.StartPage); err != nil {
		return fmt.Errorf("start_page: %w", err)
	}
	for page, s := range c.Sort {
		if _, err := crm.ParseKind(page); err != nil {
			return fmt.Errorf("sort: %w", err)
		}
		if _, err := table.ParseDescriptor(s); err != nil {
			return fmt.Errorf("sort.%s: %w", page, err)
		}
	}
	if _, err := logx.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.MockLatency < 0 {
		return errors.New("mock_latency must not be negative")
	}
	return nil
}

// SortFor returns the initial descriptor of page, unset when none is
// configured.
func (c Config) SortFor(kind crm.Kind) table.Descriptor {
	d, _ := table.ParseDescriptor(c.Sort[string(kind)])
	return d
}
