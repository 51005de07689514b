// Package config provides configuration management for Rolldo.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rolldo-dev/rolldo/internal/animation"
)

// Config holds all configuration for the Rolldo application.
type Config struct {
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Animation     AnimationConfig    `mapstructure:"animation"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds snapshot storage settings.
type StorageConfig struct {
	StateFile string `mapstructure:"state_file"`
}

// AnimationConfig tunes the roll sweep.
type AnimationConfig struct {
	NumCycles      int     `mapstructure:"num_cycles"`
	InitialDelayMS float64 `mapstructure:"initial_delay_ms"`
	FinalDelayMS   float64 `mapstructure:"final_delay_ms"`
	Exponent       float64 `mapstructure:"exponent"`
}

// ToSweepConfig converts the animation settings to the sweep tuning.
func (c AnimationConfig) ToSweepConfig() animation.SweepConfig {
	return animation.SweepConfig{
		NumCycles:      c.NumCycles,
		InitialDelayMS: c.InitialDelayMS,
		FinalDelayMS:   c.FinalDelayMS,
		Exponent:       c.Exponent,
	}
}

// ThemeConfig holds color customization settings (lipgloss hex colors).
type ThemeConfig struct {
	ColorTitle  string `mapstructure:"color_title"`
	ColorTask   string `mapstructure:"color_task"`
	ColorDone   string `mapstructure:"color_done"`
	ColorActive string `mapstructure:"color_active"`
	ColorTimer  string `mapstructure:"color_timer"`
	ColorBreak  string `mapstructure:"color_break"`
	ColorPaused string `mapstructure:"color_paused"`
	ColorHelp   string `mapstructure:"color_help"`
	ColorWarn   string `mapstructure:"color_warn"`
}

// DefaultThemeConfig returns the default theme.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:  "#8aadf4",
		ColorTask:   "#cad3f5",
		ColorDone:   "#5b6078",
		ColorActive: "#a6da95",
		ColorTimer:  "#eed49f",
		ColorBreak:  "#4ECDC4",
		ColorPaused: "#6B7280",
		ColorHelp:   "#95A5A6",
		ColorWarn:   "#ed8796",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Notifications: NotificationConfig{Enabled: true},
		Storage:       StorageConfig{StateFile: ""},
		Animation: AnimationConfig{
			NumCycles:      animation.DefaultNumCycles,
			InitialDelayMS: animation.DefaultInitialDelayMS,
			FinalDelayMS:   animation.DefaultFinalDelayMS,
			Exponent:       animation.DefaultExponent,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := v.SafeWriteConfigAs(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".rolldo", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("notifications.enabled", true)
	v.SetDefault("storage.state_file", "")
	v.SetDefault("animation.num_cycles", animation.DefaultNumCycles)
	v.SetDefault("animation.initial_delay_ms", float64(animation.DefaultInitialDelayMS))
	v.SetDefault("animation.final_delay_ms", float64(animation.DefaultFinalDelayMS))
	v.SetDefault("animation.exponent", animation.DefaultExponent)

	theme := DefaultThemeConfig()
	v.SetDefault("theme.color_title", theme.ColorTitle)
	v.SetDefault("theme.color_task", theme.ColorTask)
	v.SetDefault("theme.color_done", theme.ColorDone)
	v.SetDefault("theme.color_active", theme.ColorActive)
	v.SetDefault("theme.color_timer", theme.ColorTimer)
	v.SetDefault("theme.color_break", theme.ColorBreak)
	v.SetDefault("theme.color_paused", theme.ColorPaused)
	v.SetDefault("theme.color_help", theme.ColorHelp)
	v.SetDefault("theme.color_warn", theme.ColorWarn)
}
