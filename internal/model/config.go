package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// Locale selects label tables ("en" or "ru").
	Locale string `mapstructure:"locale" yaml:"locale"`

	// WeekStart is the first calendar column ("monday" or "sunday").
	WeekStart string `mapstructure:"week_start" yaml:"week_start"`

	DefaultSort     string `mapstructure:"default_sort" yaml:"default_sort"`
	DefaultSortDesc bool   `mapstructure:"default_sort_desc" yaml:"default_sort_desc"`
	DefaultFolder   string `mapstructure:"default_folder" yaml:"default_folder"`
}

// LoggingConfig controls the log file. An empty Path disables logging.
type LoggingConfig struct {
	Path        string `mapstructure:"path" yaml:"path"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// SnapshotConfig points at the SQLite file used by export and import.
type SnapshotConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" yaml:"snapshot"`
}

// ConfigDir returns ~/.config/inspion, or the working directory when the
// home directory cannot be resolved.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "inspion")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/inspion/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dir := ConfigDir()
	return &AppConfig{
		Display: DisplayConfig{
			Locale:          string(LocaleEN),
			WeekStart:       "monday",
			DefaultSort:     "total_priority",
			DefaultSortDesc: true,
			DefaultFolder:   "all",
		},
		Logging: LoggingConfig{
			Path: filepath.Join(dir, "inspion.log"),
		},
		Snapshot: SnapshotConfig{
			Path: filepath.Join(dir, "tasks.db"),
		},
	}
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	return defaultAppConfig()
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	def := defaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("display.locale", def.Display.Locale)
	v.SetDefault("display.week_start", def.Display.WeekStart)
	v.SetDefault("display.default_sort", def.Display.DefaultSort)
	v.SetDefault("display.default_sort_desc", def.Display.DefaultSortDesc)
	v.SetDefault("display.default_folder", def.Display.DefaultFolder)
	v.SetDefault("logging.path", def.Logging.Path)
	v.SetDefault("logging.development", def.Logging.Development)
	v.SetDefault("snapshot.path", def.Snapshot.Path)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return def, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return def, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("display", cfg.Display)
	v.Set("logging", cfg.Logging)
	v.Set("snapshot", cfg.Snapshot)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
