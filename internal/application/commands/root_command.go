package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

// CommandRegistry builds the CLI command tree
type CommandRegistry struct {
}

// NewCommandRegistry creates a new CommandRegistry instance
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{}
}

// RegisterCLI returns the root command with all subcommands attached
func (*CommandRegistry) RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:                  "adstudio",
		Usage:                 "AI-assisted marketing content platform",
		Suggest:               true,
		EnableShellCompletion: true,
		Action:                RootCommand(),
		Commands: []*cli.Command{
			ServeCommand(),
			MigrateCommand(),
		},
	}
}

// RootCommand prints usage hints when no subcommand is given
func RootCommand() cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cmd.Writer.Write([]byte("adstudio backend\n"))
		cmd.Writer.Write([]byte("Use 'adstudio --help' to see available commands.\n"))
		return nil
	}
}
