package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goorbit/internal/config"
	"github.com/philipparndt/goorbit/pkg/control"
	"github.com/philipparndt/goorbit/pkg/damp"
	"github.com/philipparndt/goorbit/pkg/geometry"
	"github.com/philipparndt/goorbit/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display how a model will be framed",
	Long:  "Show the model bounds, the camera distance that frames it and how long each zoom step takes to settle.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File: %s\n\n", filename)
	printInfo(os.Stdout, model, cfg)
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

func printInfo(w io.Writer, model *stl.Model, cfg control.Config) {
	bbox := model.BoundingBox()
	size := bbox.Size()
	distance := model.ViewDistance()

	fmt.Fprintln(w, "Model Information")
	fmt.Fprintln(w, "=================")
	if model.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(w, "Triangles: %d\n\n", model.TriangleCount())

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", formatVector(bbox.Min))
	fmt.Fprintf(w, "  Max: %s\n", formatVector(bbox.Max))
	fmt.Fprintf(w, "  Center: %s\n", formatVector(bbox.Center()))
	fmt.Fprintf(w, "  Size: %.6f x %.6f x %.6f\n\n", size.X, size.Y, size.Z)

	fmt.Fprintln(w, "Framing:")
	fmt.Fprintf(w, "  View distance: %.6f units\n", distance)
	for _, percentage := range []float64{0.5, 1, 2} {
		target := control.ZoomDestination(distance, percentage)
		ticks := damp.MaxTicks(target-distance, cfg.Zoom.Friction, cfg.Zoom.Tolerance)
		fmt.Fprintf(w, "  Zoom %3.0f%%: %.6f units, settles within %d ticks\n", percentage*100, target, ticks)
	}
}
