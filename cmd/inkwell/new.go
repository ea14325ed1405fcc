package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-press/inkwell/scaffold"
)

func newNewCmd() *cobra.Command {
	var (
		siteName string
		author   string
	)
	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Scaffold a new site in the given directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := scaffold.Generate(dir, scaffold.Data{
				SiteName: siteName,
				Author:   author,
			}); err != nil {
				return err
			}
			fmt.Printf("Created %s. Next steps:\n\n  cd %s\n  inkwell dev\n", dir, dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&siteName, "name", "", "site name (default derived from the directory)")
	cmd.Flags().StringVar(&author, "author", "", "author name for the footer")
	return cmd
}
