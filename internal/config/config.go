package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
	Keys     map[string][]string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds picker presentation settings.
type UIConfig struct {
	DebounceMS int    `mapstructure:"debounce_ms"`
	IDPrefix   string `mapstructure:"id_prefix"`
	MenuHeight int    `mapstructure:"menu_height"`
	Title      string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from file and env. Env var overrides use prefix COMBOKIT_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COMBOKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "combokit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COMBOKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
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
	return c.normalized(), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "combokit", "history.db"))
	v.SetDefault("ui.debounce_ms", 200)
	v.SetDefault("ui.id_prefix", "combokit")
	v.SetDefault("ui.menu_height", 8)
	v.SetDefault("ui.title", "Pick an item")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

func (c Config) normalized() Config {
	if c.UI.DebounceMS < 0 {
		c.UI.DebounceMS = 0
	}
	if c.UI.MenuHeight <= 0 {
		c.UI.MenuHeight = 8
	}
	c.UI.IDPrefix = strings.TrimSpace(c.UI.IDPrefix)
	return c
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("COMBOKIT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "combokit", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.debounce_ms", cfg.UI.DebounceMS)
	v.Set("ui.id_prefix", cfg.UI.IDPrefix)
	v.Set("ui.menu_height", cfg.UI.MenuHeight)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
