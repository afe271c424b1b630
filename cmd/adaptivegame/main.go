package main

import (
	"os"

	"github.com/spf13/cobra"

	"adaptivegame/internal/interfaces/cli/migrate"
	"adaptivegame/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "adaptivegame",
		Short: "Adaptive Game - supply chain game administration",
		Long:  `Adaptive Game is the administration dashboard for configuring supply chain simulation games, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
