package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/campus/internal/core/notify"
	"github.com/hay-kot/campus/internal/core/school"
	"github.com/hay-kot/campus/internal/tui"
	tuinotify "github.com/hay-kot/campus/internal/tui/notify"
)

// ErrNoTerminal is returned when the console is started without a
// terminal attached to stdout.
var ErrNoTerminal = errors.New("campus needs an interactive terminal")

type TuiCmd struct {
	flags    *Flags
	build    tui.BuildInfo
	seedFile string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		build: build,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "YAML file with the records to load (overrides seed_file)",
			Sources:     cli.EnvVars("CAMPUS_SEED"),
			Destination: &cmd.seedFile,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	cfg := cmd.flags.Config

	seedFile := cfg.SeedFile
	if cmd.seedFile != "" {
		seedFile = cmd.seedFile
	}
	seed, err := school.LoadSeed(seedFile)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	var warnings []string
	for _, w := range cfg.Warnings() {
		warnings = append(warnings, fmt.Sprintf("%s: %s", w.Item, w.Message))
	}

	bus := tuinotify.NewBus(notify.NewMemoryStore(cfg.Notifications.HistoryLimit))

	// Cancelling on exit releases actions still waiting on a confirmation.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := tui.New(ctx, tui.Deps{
		Config:    cfg,
		Directory: school.NewDirectory(seed),
		Bus:       bus,
		Warnings:  warnings,
		Build:     cmd.build,
	})

	log.Info().
		Str("seed", seedFile).
		Str("theme", cfg.Theme).
		Msg("starting console")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
