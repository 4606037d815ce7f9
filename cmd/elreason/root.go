package main

import (
	"github.com/spf13/cobra"

	"github.com/nodeadmin/el-reasoner/internal/config"
	"github.com/nodeadmin/el-reasoner/internal/obslog"
)

var (
	cfg    config.Config
	logger *obslog.Logger

	logModeFlag     string
	concurrencyFlag int
)

var rootCmd = &cobra.Command{
	Use:           "elreason",
	Short:         "EL description-logic subsumption reasoner",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("log-mode") {
			cfg.LogMode = logModeFlag
		}
		if cmd.Flags().Changed("concurrency") {
			cfg.Concurrency = concurrencyFlag
		}

		logger, err = obslog.New(cfg.LogMode)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logModeFlag, "log-mode", "", "log mode: dev or prod (default from config)")
	rootCmd.PersistentFlags().IntVar(&concurrencyFlag, "concurrency", 0, "batch query concurrency (default from config)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(batchCmd)
}
