package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/signup/internal/form"
)

// Config holds application configuration.
type Config struct {
	Form FormConfig
	Log  LogConfig
	UI   UIConfig
}

// FormConfig selects validation behavior.
type FormConfig struct {
	Policy          string
	KnownDomains    []string `mapstructure:"known_domains"`
	SuggestDistance int      `mapstructure:"suggest_distance"`
}

// LogConfig holds the zap sink settings.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ShowHints bool `mapstructure:"show_hints"`
}

// Policy parses Form.Policy.
func (c Config) Policy() (form.Policy, error) {
	return form.ParsePolicy(c.Form.Policy)
}

// Load reads configuration from file and env. Env var overrides use prefix SIGNUP_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("form.policy", form.DefaultPolicy.String())
	v.SetDefault("form.known_domains", form.DefaultKnownDomains)
	v.SetDefault("form.suggest_distance", 2)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "signup", "signup.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.show_hints", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SIGNUP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "signup"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIGNUP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine; an explicit SIGNUP_CONFIG must load
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("SIGNUP_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "signup", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("form.policy", cfg.Form.Policy)
	v.Set("form.known_domains", cfg.Form.KnownDomains)
	v.Set("form.suggest_distance", cfg.Form.SuggestDistance)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.show_hints", cfg.UI.ShowHints)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
