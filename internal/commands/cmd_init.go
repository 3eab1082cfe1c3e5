package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	initcmd "github.com/hay-kot/campus/internal/commands/init"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a configuration file with an interactive wizard",
		UsageText: "campus init [options]",
		Description: `Asks for the theme, currency, cancel key, notice duration and the
folder documents are picked from, then writes ~/.config/campus/config.yaml.

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, _ *cli.Command) error {
	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		DataDir:    cmd.flags.DataDir,
		Yes:        cmd.yes,
		Force:      cmd.force,
	})
	return wizard.Run(ctx)
}
