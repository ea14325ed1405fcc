package main

import (
	"github.com/spf13/cobra"

	"github.com/inkwell-press/inkwell"
)

func newDeployCmd() *cobra.Command {
	var skipBuild bool
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build the site and run the configured sync command",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := inkwell.LoadConfig(configPath)
			if err != nil {
				return err
			}
			logger := newLogger()
			if !skipBuild {
				builder := inkwell.NewBuilder(cfg, logger)
				if _, err := builder.Build(cmd.Context(), inkwell.BuildOptions{}); err != nil {
					return err
				}
			}
			return inkwell.NewDeployer(cfg, logger).Deploy(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "deploy the existing output directory without rebuilding")
	return cmd
}
