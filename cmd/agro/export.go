package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agro/app"
	"agro/pkg/dashboard"
	"agro/pkg/report"
)

func newExportCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every collection to an XLSX workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(func(c *app.Container) error {
				snap, err := c.Dashboard.Snapshot()
				if err != nil {
					return err
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				sum := dashboard.Compute(c.Clock(), snap, c.Dashboard.Options())
				if err := report.Write(f, snap, sum); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "agro.xlsx", "output file")
	return cmd
}
