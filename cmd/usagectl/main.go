package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"ai-usage-tracker/internal/bootstrap"
	"ai-usage-tracker/internal/config"
	"ai-usage-tracker/internal/platform/logger"
)

// app carries what PersistentPreRunE opens for the subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *logger.Logger
	store   *bootstrap.Store
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "usagectl",
		Short:        "usagectl - log AI usage and read back the dashboard numbers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.cfg, err = config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			a.log, err = logger.New(a.cfg.App.LogMode)
			if err != nil {
				return err
			}
			// the CLI prints its own results; keep the store quiet
			a.store, err = bootstrap.OpenStore(cmd.Context(), a.cfg.Storage, nil, logger.NewNop())
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				a.log.Sync()
			}
			if a.store != nil {
				return a.store.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(logCmd(a))
	rootCmd.AddCommand(summaryCmd(a))
	rootCmd.AddCommand(goalCmd(a))
	rootCmd.AddCommand(chartCmd(a))

	return rootCmd
}
