package main

import (
	"github.com/spf13/cobra"

	"github.com/inkwell-press/inkwell"
)

func newDevCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Serve the site with live reload and the authoring dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := inkwell.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			app := inkwell.New(cfg, newLogger())
			defer app.Close()
			return app.Serve()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :3000)")
	return cmd
}
