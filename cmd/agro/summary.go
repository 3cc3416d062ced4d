package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"agro/app"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the farm summary as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(func(c *app.Container) error {
				sum, err := c.Dashboard.Summary()
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			})
		},
	}
}
