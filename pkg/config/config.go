package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "ball-in-court"
	configFile = "config.yaml"
	envPrefix  = "BIC"
)

// Config is the application configuration.
type Config struct {
	// DataFile is the sqlite file holding tasks and contacts.
	DataFile string `yaml:"data_file" mapstructure:"data_file"`
	LogFile  string `yaml:"log_file" mapstructure:"log_file"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	Views ViewsConfig `yaml:"views" mapstructure:"views"`
	Mail  MailConfig  `yaml:"mail" mapstructure:"mail"`
}

// ViewsConfig sizes the top-priority views.
type ViewsConfig struct {
	TopShort int `yaml:"top_short" mapstructure:"top_short"`
	TopLong  int `yaml:"top_long" mapstructure:"top_long"`
}

// MailConfig configures how reminders reach the mail composer.
type MailConfig struct {
	// Opener overrides the platform URL opener, e.g. ["thunderbird", "-compose"].
	Opener []string `yaml:"opener,omitempty" mapstructure:"opener"`
}

// Dir returns the directory holding the config, data and log files.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, appName)
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".config", appName)
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), configFile)
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	dir := Dir()

	return &Config{
		DataFile: filepath.Join(dir, "ball-in-court.sqlite"),
		LogFile:  filepath.Join(dir, "debug.log"),
		LogLevel: "info",
		Views: ViewsConfig{
			TopShort: 1,
			TopLong:  5,
		},
	}
}

// Load reads the config file at path over the defaults. A missing file is not an error.
// Environment variables such as BIC_DATA_FILE override both.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range map[string]interface{}{
		"data_file":       cfg.DataFile,
		"log_file":        cfg.LogFile,
		"log_level":       cfg.LogLevel,
		"views.top_short": cfg.Views.TopShort,
		"views.top_long":  cfg.Views.TopLong,
	} {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config %s: %w", path, err)
	}

	if cfg.Views.TopShort < 1 || cfg.Views.TopLong < 1 {
		return nil, fmt.Errorf("error in config %s: top view sizes must be at least 1", path)
	}

	return cfg, nil
}

// WriteDefault writes the default configuration to path, creating parent directories.
func WriteDefault(path string) error {
	return Save(path, DefaultConfig())
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}

	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
