// Package config provides Viper-based configuration loading for the adventure engine.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Outputs lists zap sink paths. Narration owns stdout, so the default is a file.
	Outputs []string `mapstructure:"outputs"`
}

// GameConfig holds the rules and pacing of a play session.
type GameConfig struct {
	// ContentDir is the directory holding rooms.yaml, items.yaml, enemies.yaml,
	// characters.yaml and an optional scripts/ directory.
	ContentDir string `mapstructure:"content_dir"`
	// MaxWeight is the inventory weight limit.
	MaxWeight float64 `mapstructure:"max_weight"`
	// PlayerHealth is the player's starting health.
	PlayerHealth int `mapstructure:"player_health"`
	// BareHandsMin and BareHandsMax bound unarmed damage.
	BareHandsMin int `mapstructure:"bare_hands_min"`
	BareHandsMax int `mapstructure:"bare_hands_max"`
	// LineDelay is the pause between consecutive narrated lines of one event.
	LineDelay time.Duration `mapstructure:"line_delay"`
	// FarewellDelay is the pause after the farewell before the process exits.
	FarewellDelay time.Duration `mapstructure:"farewell_delay"`
	// InitialVolume is the music volume in dB at session start.
	InitialVolume float64 `mapstructure:"initial_volume"`
}

// SavesConfig holds save-slot storage settings.
type SavesConfig struct {
	// Path is the bbolt database file holding save slots.
	Path string `mapstructure:"path"`
	// DefaultSlot is used by save/load when no slot name is given.
	DefaultSlot string `mapstructure:"default_slot"`
}

// ConsoleConfig holds terminal presentation settings.
type ConsoleConfig struct {
	// Width is the column at which narration is word-wrapped. 0 disables wrapping.
	Width int `mapstructure:"width"`
	// Color enables styled narration.
	Color bool `mapstructure:"color"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Saves   SavesConfig   `mapstructure:"saves"`
	Console ConsoleConfig `mapstructure:"console"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSaves(c.Saves); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Console.Width < 0 {
		errs = append(errs, fmt.Sprintf("console.width must be >= 0, got %d", c.Console.Width))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.ContentDir == "" {
		errs = append(errs, "game.content_dir must not be empty")
	}
	if g.MaxWeight <= 0 {
		errs = append(errs, fmt.Sprintf("game.max_weight must be > 0, got %v", g.MaxWeight))
	}
	if g.PlayerHealth < 1 || g.PlayerHealth > 100 {
		errs = append(errs, fmt.Sprintf("game.player_health must be 1-100, got %d", g.PlayerHealth))
	}
	if g.BareHandsMin < 0 || g.BareHandsMax < g.BareHandsMin {
		errs = append(errs, fmt.Sprintf("game.bare_hands range [%d, %d] is invalid", g.BareHandsMin, g.BareHandsMax))
	}
	if g.LineDelay < 0 {
		errs = append(errs, "game.line_delay must not be negative")
	}
	if g.FarewellDelay < 0 {
		errs = append(errs, "game.farewell_delay must not be negative")
	}
	if g.InitialVolume < -80 || g.InitialVolume > 0 {
		errs = append(errs, fmt.Sprintf("game.initial_volume must be within [-80, 0] dB, got %v", g.InitialVolume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSaves(s SavesConfig) error {
	var errs []string
	if s.Path == "" {
		errs = append(errs, "saves.path must not be empty")
	}
	if s.DefaultSlot == "" {
		errs = append(errs, "saves.default_slot must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with TEXTQUEST_ prefix
	v.SetEnvPrefix("TEXTQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetDefaults installs the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	setDefaults(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputs", []string{"textquest.log"})

	v.SetDefault("game.content_dir", "content")
	v.SetDefault("game.max_weight", 25.0)
	v.SetDefault("game.player_health", 100)
	v.SetDefault("game.bare_hands_min", 1)
	v.SetDefault("game.bare_hands_max", 3)
	v.SetDefault("game.line_delay", "400ms")
	v.SetDefault("game.farewell_delay", "2s")
	v.SetDefault("game.initial_volume", -20.0)

	v.SetDefault("saves.path", "textquest.db")
	v.SetDefault("saves.default_slot", "quicksave")

	v.SetDefault("console.width", 80)
	v.SetDefault("console.color", true)
}
