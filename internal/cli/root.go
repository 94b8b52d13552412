// Package cli defines Cobra command definitions for the carbon CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carbon-dev/carbon/internal/archive"
	"github.com/carbon-dev/carbon/internal/config"
	"github.com/carbon-dev/carbon/internal/log"
	"github.com/carbon-dev/carbon/internal/press"
	"github.com/carbon-dev/carbon/internal/session"
	"github.com/carbon-dev/carbon/internal/timer"
	"github.com/carbon-dev/carbon/internal/tui"
	"github.com/carbon-dev/carbon/internal/tui/app"
	"github.com/carbon-dev/carbon/internal/voice"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "carbon",
	Short: "Pressure makes diamonds: a journal that turns feelings into craft",
	Long: `Carbon takes whatever you are carrying and presses it into creative
work. Describe the feeling, pick a vessel (song, script, novel, poem),
and write against a generated prompt. Finished sessions land in a local
or remote archive.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch TUI if TTY, show help otherwise
		if !tui.IsTTY() {
			return cmd.Help()
		}

		deps, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		return tui.Run(app.New(deps))
	},
}

// buildDeps assembles the full application model: config, logger, stores,
// generation client, timer, and voice capture.
func buildDeps(ctx context.Context) (*tui.Model, error) {
	preEnv, err := config.ParseEnv()
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	dataDir := preEnv.DataDir
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}

	cfg, env := config.Load(dataDir)

	logger, err := log.NewLogger(dataDir)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	device, err := archive.NewDeviceStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening device storage: %w", err)
	}
	local := archive.NewLocalStore(device)
	remote := archive.NewRemoteStore(cfg.Remote.BaseURL, cfg.Remote.Timeout())
	vault := archive.NewVault(device, local, remote, logger)

	gen, err := press.NewClient(ctx, env.GeminiAPIKey, cfg.Model, logger)
	if err != nil {
		return nil, fmt.Errorf("creating generation client: %w", err)
	}

	ctl := session.NewController()
	sprint := timer.New()
	voc := voice.NewCapture(cfg.Voice.Command, logger)

	return tui.NewModel(cfg, ctl, vault, gen, sprint, voc, logger), nil
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
