package main

import (
	"github.com/spf13/cobra"

	"github.com/inkwell-press/inkwell"
)

func newBuildCmd() *cobra.Command {
	var (
		drafts bool
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := inkwell.LoadConfig(configPath)
			if err != nil {
				return err
			}
			builder := inkwell.NewBuilder(cfg, newLogger())
			_, err = builder.Build(cmd.Context(), inkwell.BuildOptions{
				IncludeDrafts: drafts,
				Force:         force,
			})
			return err
		},
	}
	cmd.Flags().BoolVar(&drafts, "drafts", false, "include draft posts")
	cmd.Flags().BoolVar(&force, "force", false, "rebuild everything, ignoring the build cache")
	return cmd
}
