package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "inkwell",
		Short:         "inkwell is a static blog generator with a live dev server",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to inkwell.yml (default ./inkwell.yml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newDevCmd())
	root.AddCommand(newDeployCmd())
	root.AddCommand(newNewCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the inkwell version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("inkwell %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		logger := newLogger()
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
