package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nik9play/wlanscan/pkg/wlanscan"
	"github.com/nik9play/wlanscan/pkg/wlanscan/util"
)

var (
	gitCommit  string
	versionTag string
)

func main() {
	var (
		verbose    bool
		configPath string
		exitCode   int
	)

	rootCmd := &cobra.Command{
		Use:          "wlanscan",
		Short:        "Scan every wireless interface and list the networks it can see",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := wlanscan.NewLogger(verbose)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			defer func() {
				// stderr can't always be synced, which is fine
				_ = logger.Sync()
			}()

			named := logger.Named("main")
			named.Debug("Created logger")
			named.Infow("Version info", "gitCommit", gitCommit, "versionTag", versionTag)

			if err := util.PrepareConsole(); err != nil {
				named.Warnw("Failed to prepare console", "error", err)
			}

			config, err := wlanscan.NewConfig(logger)
			if err != nil {
				named.Errorw("Failed to create config", "error", err)
				return fmt.Errorf("create config: %w", err)
			}

			if configPath != "" {
				config.SetConfigFile(configPath)
			}

			if err := config.BindFlags(cmd.Flags()); err != nil {
				named.Errorw("Failed to bind flags", "error", err)
				return fmt.Errorf("bind flags: %w", err)
			}

			if err := config.Load(); err != nil {
				named.Errorw("Failed to load config", "error", err)
				return fmt.Errorf("load config: %w", err)
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			interruptChannel := util.SetupCloseHandler()

			go func() {
				signal := <-interruptChannel
				named.Debugw("Interrupted", "signal", signal)
				cancel()
			}()

			scanner, err := wlanscan.NewScanner(logger, config, wlanscan.NewService(logger), os.Stdout, os.Stdin)
			if err != nil {
				named.Errorw("Failed to create scanner", "error", err)
				return fmt.Errorf("create scanner: %w", err)
			}

			exitCode = scanner.Run(ctx)
			named.Debugw("Scanner finished", "exitCode", exitCode)

			return nil
		},
	}

	if versionTag != "" {
		rootCmd.Version = versionTag
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show verbose logs (useful for debugging)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file")
	wlanscan.RegisterFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	os.Exit(exitCode)
}
