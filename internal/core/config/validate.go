package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/campus/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("currency", c.Currency, currencyCode),
		criterio.Run("cancel_key", c.CancelKey, cancelKey),
		criterio.Run("notifications.duration", c.Notifications.Duration.Seconds(), nonNegative),
		criterio.Run("notifications.history_limit", c.Notifications.HistoryLimit, atLeastOne),
		c.validateTexts(),
	)
}

// ValidateDeep performs Validate plus checks that touch the filesystem:
// the config file, the seed file and the file picker root. The configPath
// argument specifies the config file location to validate (empty string
// skips the config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("seed_file", c.SeedFile, isFileOrEmpty),
		criterio.Run("file_root", c.FileRoot, isDirectory),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Notifications.Duration == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Notifications",
			Item:     "duration",
			Message:  "notices stay open until dismissed",
		})
	}
	if c.CancelKey == "enter" {
		warnings = append(warnings, ValidationWarning{
			Category: "Keys",
			Item:     "cancel_key",
			Message:  "enter also confirms dialogs; confirmations will close instead",
		})
	}

	return warnings
}

func (c *Config) validateTexts() error {
	var errs criterio.FieldErrorsBuilder
	for name, v := range map[string]string{
		"texts.confirm_title":       c.Texts.ConfirmTitle,
		"texts.confirm_text":        c.Texts.ConfirmText,
		"texts.cancel_text":         c.Texts.CancelText,
		"texts.delete_title":        c.Texts.DeleteTitle,
		"texts.delete_confirm_text": c.Texts.DeleteConfirmText,
		"texts.error_title":         c.Texts.ErrorTitle,
	} {
		if strings.TrimSpace(v) == "" {
			errs = errs.Append(name, errors.New("cannot be empty"))
		}
	}
	return errs.ToError()
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func currencyCode(code string) error {
	if len(code) != 3 || strings.ToUpper(code) != code {
		return fmt.Errorf("must be a three letter upper case code, got %q", code)
	}
	return nil
}

// reservedKeys are bound by the dialogs themselves.
var reservedKeys = []string{"tab", "shift+tab", "ctrl+s", "up", "down", " ", "space"}

func cancelKey(key string) error {
	if key == "" {
		return errors.New("cannot be empty")
	}
	if slices.Contains(reservedKeys, key) {
		return fmt.Errorf("%q is used by dialogs", key)
	}
	return nil
}

func nonNegative(v float64) error {
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func atLeastOne(n int) error {
	if n < 1 {
		return errors.New("must be at least 1")
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func isFileOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return errors.New("is a directory, not a file")
	}
	return nil
}

func isDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return errors.New("exists but is not a directory")
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return errors.New("exists but is not a directory")
	}
	return nil
}
