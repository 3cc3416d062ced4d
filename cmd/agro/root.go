package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agro/app"
	"agro/config"
	"agro/pkg/logging"
)

// withContainer loads the configuration, builds the container, runs fn and
// releases everything afterwards.
func withContainer(fn func(c *app.Container) error) error {
	cfg := config.Load()
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	cfg.Log(log)

	c, err := app.New(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn("close", zap.Error(err))
		}
	}()
	return fn(c)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "agro",
		Short:         "Farm operations dashboard service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSummaryCommand(), newExportCommand())
	return root
}
