package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goorbit/internal/config"
	"github.com/spf13/cobra"
)

var tuningCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning the viewer would run with: the compiled-in defaults, overridden by
the file given with --config. The output is a valid tuning file.`,
	Args: cobra.NoArgs,
	Run:  runTuning,
}

func init() {
	rootCmd.AddCommand(tuningCmd)
}

func runTuning(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := config.Write(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
}
