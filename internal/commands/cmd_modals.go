package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/styles"
	"github.com/hay-kot/campus/internal/tui"
)

type ModalsCmd struct {
	flags *Flags
	json  bool
}

// NewModalsCmd creates the command listing modal kinds.
func NewModalsCmd(flags *Flags) *ModalsCmd {
	return &ModalsCmd{flags: flags}
}

func (cmd *ModalsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "modals",
		Usage:     "List every modal kind and whether it has a renderer",
		UsageText: "campus modals [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})
	return app
}

// KindInfo describes one modal kind.
type KindInfo struct {
	Name     string `json:"name"`
	Notice   bool   `json:"notice"`
	Rendered bool   `json:"rendered"`
}

// ListKinds reports every kind against the default renderer set.
func ListKinds() []KindInfo {
	registry := tui.DefaultRegistry(tui.RendererEnv{})

	kinds := modal.Kinds()
	out := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, KindInfo{
			Name:     k.String(),
			Notice:   k.IsNotice(),
			Rendered: registry.Has(k),
		})
	}
	return out
}

func (cmd *ModalsCmd) run(_ context.Context, c *cli.Command) error {
	kinds := ListKinds()
	w := c.Root().Writer

	if cmd.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(kinds)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TextMutedStyle).
		Headers("KIND", "NOTICE", "RENDERER")
	for _, k := range kinds {
		t.Row(k.Name, yesNo(k.Notice), yesNo(k.Rendered))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
