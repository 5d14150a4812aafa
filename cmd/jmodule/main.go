package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/jmodule/line/internal/appconfig"
)

func main() {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.With("err", err).Error("jmodule failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath       string
		history          bool
		completion       bool
		alert            bool
		showHistoryIndex bool
	)

	root := &cobra.Command{
		Use:           "jmodule",
		Short:         "Multi-module console built on the line editor",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := appconfig.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("history") {
				cfg.History = history
			}
			if flags.Changed("completion") {
				cfg.Completion = completion
			}
			if flags.Changed("alert") {
				cfg.Alert = alert
			}
			if flags.Changed("show-history-index") {
				cfg.ShowHistoryIndex = showHistoryIndex
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runConsole(cmd.Context(), cfg, os.Stdin, cmd.OutOrStdout())
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	root.Flags().BoolVar(&history, "history", true, "record submitted lines for recall")
	root.Flags().BoolVar(&completion, "completion", true, "complete commands with tab")
	root.Flags().BoolVar(&alert, "alert", true, "ring the bell on invalid movement")
	root.Flags().BoolVar(&showHistoryIndex, "show-history-index", false, "show the history size in the prompt")

	return root
}
