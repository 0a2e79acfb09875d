package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goorbit/version"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "goorbit",
	Short: "A damped orbit viewer for STL models",
	Long: `goorbit displays an STL model and eases the camera, model rotation, zoom and a
panned texture toward their targets every frame. The pointer orbits the camera;
the tuning of every channel can be changed with a YAML file.`,
	Version: version.GetVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML tuning file (defaults are used when empty)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
