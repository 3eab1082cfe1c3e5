// Package initcmd implements the interactive first-run setup.
package initcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/campus/internal/core/config"
	"github.com/hay-kot/campus/internal/core/styles"
	"github.com/hay-kot/campus/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	DataDir    string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Answers are the values collected by the prompts.
type Answers struct {
	Theme     string
	Currency  string
	CancelKey string
	Duration  string
	FileRoot  string
}

// DefaultAnswers are offered as the starting values of every prompt.
func DefaultAnswers() Answers {
	def := config.DefaultConfig()
	return Answers{
		Theme:     def.Theme,
		Currency:  def.Currency,
		CancelKey: def.CancelKey,
		Duration:  def.Notifications.Duration.String(),
		FileRoot:  "~/Documents",
	}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if !w.opts.Yes {
		if err := promptUser(&answers); err != nil {
			return err
		}
	}

	cfg, err := BuildConfig(answers, w.opts.DataDir)
	if err != nil {
		return err
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := cfg.Write(w.opts.ConfigPath); err != nil {
		return err
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	if err := cfg.ValidateDeep(w.opts.ConfigPath); err != nil {
		p.Warnf("Config written but needs attention: %v", err)
		p.Printf("  Run 'campus config validate' after fixing it")
		return nil
	}

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'campus' to open the console")
	return nil
}

// BuildConfig turns the answers into a validated configuration.
func BuildConfig(a Answers, dataDir string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.DataDir = dataDir
	cfg.Theme = a.Theme
	cfg.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))
	cfg.CancelKey = strings.TrimSpace(a.CancelKey)
	cfg.FileRoot = expandHome(strings.TrimSpace(a.FileRoot))

	d, err := time.ParseDuration(strings.TrimSpace(a.Duration))
	if err != nil {
		return nil, fmt.Errorf("notice duration: %w", err)
	}
	cfg.Notifications.Duration = d

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid answers: %w", err)
	}
	return &cfg, nil
}

func promptUser(a *Answers) error {
	themes := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themes = append(themes, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&a.Theme),
			huh.NewInput().
				Title("Currency").
				Description("Three letter code used for fees").
				Value(&a.Currency),
			huh.NewInput().
				Title("Cancel key").
				Description("Closes the active dialog").
				Value(&a.CancelKey),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Notice duration").
				Description("How long notices stay on screen, 0s keeps them open").
				Value(&a.Duration).
				Validate(func(s string) error {
					_, err := time.ParseDuration(strings.TrimSpace(s))
					return err
				}),
			huh.NewInput().
				Title("Document folder").
				Description("Where file uploads and imports are picked from").
				Value(&a.FileRoot),
		),
	)
	return form.Run()
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
