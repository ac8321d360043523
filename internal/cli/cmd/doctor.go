package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/korreman/sway-overfocus/internal/ipc"
	"github.com/korreman/sway-overfocus/internal/target"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [TARGET ...]",
	Short: "Check environment and validate targets without contacting the window manager",
	Long: `Doctor checks that swaymsg (or i3-msg with --i3) is on $PATH, then
parses the given targets and prints the result. It never issues a
focus command.`,
	Args: cobra.ArbitraryArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, args []string) error {
	client := ipc.New(cfg.I3Mode, cfg.IPCTimeout)
	if err := client.LookPath(); err != nil {
		fmt.Printf("environment: FAIL (%s)\n", err)
	} else {
		fmt.Printf("environment: OK\n")
	}

	if len(args) == 0 {
		return nil
	}

	targets, err := target.Parse(args, cfg.DefaultEdge)
	if err != nil {
		fmt.Printf("targets: FAIL (%s)\n", err)
		return nil
	}

	fmt.Println("targets:")
	for i, tg := range targets {
		fmt.Printf("  %d: %+v\n", i, tg)
	}
	return nil
}
