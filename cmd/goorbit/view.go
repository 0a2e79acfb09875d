package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goorbit/internal/app"
	"github.com/spf13/cobra"
)

var viewOptions = app.DefaultOptions()

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open an STL model in the raylib viewer",
	Long: `Open an STL model in a window. The model orbits with the mouse, the wheel zooms,
keys 1-6 rotate the model to a preset and the arrow keys pan the screen texture.`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().Int32Var(&viewOptions.Width, "width", viewOptions.Width, "Window width")
	viewCmd.Flags().Int32Var(&viewOptions.Height, "height", viewOptions.Height, "Window height")
	viewCmd.Flags().Int32Var(&viewOptions.FPS, "fps", viewOptions.FPS, "Target frames per second")
	viewCmd.Flags().Float64Var(&viewOptions.Distance, "distance", 0, "Default camera distance (0 frames the model)")
	viewCmd.Flags().BoolVar(&viewOptions.Watch, "watch", viewOptions.Watch, "Reload the model and tuning file when they change")
}

func runView(cmd *cobra.Command, args []string) {
	viewOptions.File = args[0]
	viewOptions.ConfigFile = configFile

	if err := app.Run(viewOptions); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
