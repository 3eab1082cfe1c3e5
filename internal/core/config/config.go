// Package config handles configuration loading and validation for campus.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/campus/internal/core/modal"
)

// Config holds the application configuration.
type Config struct {
	Theme         string        `yaml:"theme"`
	Currency      string        `yaml:"currency"`
	CancelKey     string        `yaml:"cancel_key"`
	FileRoot      string        `yaml:"file_root"` // directory browsed by upload and import pickers
	SeedFile      string        `yaml:"seed_file"` // optional YAML records replacing the built-in seed
	Notifications Notifications `yaml:"notifications"`
	Texts         Texts         `yaml:"texts"`
	DataDir       string        `yaml:"-"` // set by caller, not from config file
}

// Notifications configures toast notices and their history.
type Notifications struct {
	// Duration is the auto-dismiss delay of notices. Zero keeps notices
	// open until dismissed.
	Duration     time.Duration `yaml:"duration"`
	HistoryLimit int           `yaml:"history_limit"`
}

// Texts overrides the default wording of the confirm and error dialogs.
type Texts struct {
	ConfirmTitle      string `yaml:"confirm_title"`
	ConfirmText       string `yaml:"confirm_text"`
	CancelText        string `yaml:"cancel_text"`
	DeleteTitle       string `yaml:"delete_title"`
	DeleteConfirmText string `yaml:"delete_confirm_text"`
	ErrorTitle        string `yaml:"error_title"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	d := modal.DefaultDefaults()
	return Config{
		Theme:     "tokyo-night",
		Currency:  "KES",
		CancelKey: "esc",
		FileRoot:  ".",
		Notifications: Notifications{
			Duration:     d.NoticeDuration,
			HistoryLimit: 100,
		},
		Texts: Texts{
			ConfirmTitle:      d.ConfirmTitle,
			ConfirmText:       d.ConfirmText,
			CancelText:        d.CancelText,
			DeleteTitle:       d.DeleteTitle,
			DeleteConfirmText: d.DeleteConfirmText,
			ErrorTitle:        d.ErrorTitle,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir

			if cfg.SeedFile != "" && !filepath.IsAbs(cfg.SeedFile) {
				cfg.SeedFile = filepath.Join(filepath.Dir(configPath), cfg.SeedFile)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// A zero notification duration is kept, it means sticky notices.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Currency == "" {
		c.Currency = defaults.Currency
	}
	if c.CancelKey == "" {
		c.CancelKey = defaults.CancelKey
	}
	if c.FileRoot == "" {
		c.FileRoot = defaults.FileRoot
	}
	if c.Notifications.HistoryLimit == 0 {
		c.Notifications.HistoryLimit = defaults.Notifications.HistoryLimit
	}

	t, dt := &c.Texts, defaults.Texts
	setDefault(&t.ConfirmTitle, dt.ConfirmTitle)
	setDefault(&t.ConfirmText, dt.ConfirmText)
	setDefault(&t.CancelText, dt.CancelText)
	setDefault(&t.DeleteTitle, dt.DeleteTitle)
	setDefault(&t.DeleteConfirmText, dt.DeleteConfirmText)
	setDefault(&t.ErrorTitle, dt.ErrorTitle)
}

func setDefault(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// ModalDefaults converts the configured texts and timings into the
// defaults used by the modal workflows.
func (c *Config) ModalDefaults() modal.Defaults {
	return modal.Defaults{
		NoticeDuration:    c.Notifications.Duration,
		ConfirmTitle:      c.Texts.ConfirmTitle,
		ConfirmText:       c.Texts.ConfirmText,
		CancelText:        c.Texts.CancelText,
		DeleteTitle:       c.Texts.DeleteTitle,
		DeleteConfirmText: c.Texts.DeleteConfirmText,
		ErrorTitle:        c.Texts.ErrorTitle,
	}
}

// LogFile returns the default path of the log file.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "campus.log")
}

// Write saves the configuration as YAML to path, creating parent
// directories as needed.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
