package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ThemeConfig selects a colour preset and optional per-colour overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Success       string `mapstructure:"success"`
	Title         string `mapstructure:"title"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// HeatMapConfig controls heat-map colouring. Empty colours fall back to the
// theme.
type HeatMapConfig struct {
	LowColor  string `mapstructure:"low_color"`
	HighColor string `mapstructure:"high_color"`
	Gradient  bool   `mapstructure:"gradient"`
}

// ShellConfig controls the prompt integration printed by `status --env`.
type ShellConfig struct {
	CacheTTL    string `mapstructure:"cache_ttl"`
	DoneIcon    string `mapstructure:"done_icon"`
	PendingIcon string `mapstructure:"pending_icon"`
	StreakIcon  string `mapstructure:"streak_icon"`
}

// Config holds the application configuration.
type Config struct {
	Storage string        `mapstructure:"storage"`
	DataDir string        `mapstructure:"data_dir"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	HeatMap HeatMapConfig `mapstructure:"heatmap"`
	Shell   ShellConfig   `mapstructure:"shell"`
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "json")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.primary", "")
	v.SetDefault("theme.secondary", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.muted", "")
	v.SetDefault("theme.danger", "")
	v.SetDefault("theme.success", "")
	v.SetDefault("theme.title", "")
	v.SetDefault("theme.background", "")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("heatmap.low_color", "")
	v.SetDefault("heatmap.high_color", "")
	v.SetDefault("heatmap.gradient", false)
	v.SetDefault("shell.cache_ttl", "5m")
	v.SetDefault("shell.done_icon", "✅")
	v.SetDefault("shell.pending_icon", "○")
	v.SetDefault("shell.streak_icon", "🔥")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "daila"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: DAILA_STORAGE, DAILA_DATA_DIR, DAILA_THEME_PRESET, ...
	v.SetEnvPrefix("DAILA")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
