package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/pokedex/cmd/application"
	"github.com/agentstation/pokedex/cmd/pokedex/cmd/list"
	"github.com/agentstation/pokedex/cmd/pokedex/cmd/serve"
	"github.com/agentstation/pokedex/cmd/pokedex/cmd/summary"
	"github.com/agentstation/pokedex/cmd/pokedex/cmd/validate"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(summary.NewCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a, func() string { return a.config.APIKey }))

	// Management commands
	rootCmd.AddCommand(validate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Annotations: map[string]string{application.AnnotationSkipCatalog: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("pokedex %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
