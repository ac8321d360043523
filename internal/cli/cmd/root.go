// Package cmd provides the Cobra CLI command tree for focusctl.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/korreman/sway-overfocus/internal/cli/build"
	"github.com/korreman/sway-overfocus/internal/command"
	"github.com/korreman/sway-overfocus/internal/config"
	"github.com/korreman/sway-overfocus/internal/focus"
	"github.com/korreman/sway-overfocus/internal/ipc"
	"github.com/korreman/sway-overfocus/internal/logging"
	"github.com/korreman/sway-overfocus/internal/target"
	"github.com/korreman/sway-overfocus/internal/tree"
)

var (
	buildInfo build.Info

	flagI3        bool
	flagLogLevel  string
	flagLogFormat string
	flagTimeout   time.Duration

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "focusctl TARGET [TARGET ...]",
	Short:         "Precise directional focus movement for sway and i3",
	Long: `focusctl computes a directional focus move over the current sway/i3
layout tree and issues exactly one focus command.

Targets have the shape <kind>-<dir><edge>, e.g. split-rs, group-lw,
output-dt. See 'focusctl doctor' to validate targets without
contacting the window manager.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: persistentPreRun,
	RunE:              runFocus,
}

func persistentPreRun(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return wrapExit(1, fmt.Errorf("load config: %w", err))
	}
	cfg = loaded

	if cmd.Flags().Changed("i3") {
		cfg.I3Mode = flagI3
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = flagLogFormat
	}
	if cmd.Flags().Changed("timeout") {
		cfg.IPCTimeout = flagTimeout
	}

	logger := logging.NewDefault(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	cmd.SetContext(logging.WithContext(context.Background(), logger))
	return nil
}

func runFocus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	targets, err := target.Parse(args, cfg.DefaultEdge)
	if err != nil {
		return wrapExit(1, err)
	}

	client := ipc.New(cfg.I3Mode, cfg.IPCTimeout)
	tr, err := client.GetTree(ctx)
	if err != nil {
		return wrapExit(2, err)
	}
	if err := tr.Validate(); err != nil {
		return wrapExit(2, err)
	}

	idx, moved := focus.New().Run(ctx, tr, targets)
	if !moved {
		log.Info().Msg("no target produced a move")
		return nil
	}

	cmdStr := command.Focus(tr.Node(idx), cfg.I3Mode)
	fmt.Println(cmdStr)

	if err := client.Dispatch(ctx, cmdStr); err != nil {
		return wrapExit(2, err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagI3, "i3", false, "use i3-msg instead of swaymsg")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: text, json")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "IPC round-trip timeout")
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// Execute runs the root command, translating an exitError into the
// corresponding process exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintln(os.Stderr, ee.err)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e == nil || e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

func wrapExit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}
