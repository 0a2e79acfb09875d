package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/philipparndt/goorbit/internal/config"
	"github.com/philipparndt/goorbit/pkg/control"
	"github.com/philipparndt/goorbit/pkg/geometry"
	"github.com/philipparndt/goorbit/pkg/input"
	"github.com/philipparndt/goorbit/pkg/scene"
	"github.com/spf13/cobra"
)

// simulation describes one headless controller run
type simulation struct {
	cfg          control.Config
	viewport     control.Viewport
	ticks        int
	every        int
	untilSettled bool
	duration     time.Duration
	fps          int

	// nil leaves the channel without a destination
	orbit    *geometry.Vector2
	rotation *geometry.Vector3 // degrees
	zoom     *float64
	pan      *geometry.Vector2
}

var (
	simTicks, simEvery, simFPS  int
	simWidth, simHeight         float64
	simDistance                 float64
	simUntilSettled             bool
	simDuration                 time.Duration
	simOrbitX, simOrbitY        float64
	simAlpha, simBeta, simGamma float64
	simRotX, simRotY, simRotZ   float64
	simZoom                     float64
	simPanX, simPanY            float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the controller without a window and trace every channel",
	Long: `Run the damped controller against an in-memory scene and print the camera,
rotation and texture offset as they approach the requested destinations.
Only the channels whose flags are given receive a destination.`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	flags := simulateCmd.Flags()
	flags.IntVar(&simTicks, "ticks", 300, "Maximum number of ticks")
	flags.IntVar(&simEvery, "every", 10, "Print a trace line every N ticks (0 prints only the result)")
	flags.BoolVar(&simUntilSettled, "until-settled", true, "Stop as soon as every channel has settled")
	flags.DurationVar(&simDuration, "duration", 0, "Run in real time for this long instead of a fixed tick count")
	flags.IntVar(&simFPS, "fps", 60, "Tick rate for --duration")
	flags.Float64Var(&simWidth, "width", 800, "Viewport width")
	flags.Float64Var(&simHeight, "height", 600, "Viewport height")
	flags.Float64Var(&simDistance, "distance", 0, "Default camera distance (0 keeps the configured one)")

	flags.Float64Var(&simOrbitX, "orbit-x", 0, "Pointer X in viewport pixels")
	flags.Float64Var(&simOrbitY, "orbit-y", 0, "Pointer Y in viewport pixels")
	flags.Float64Var(&simAlpha, "alpha", 0, "Device orientation alpha in degrees")
	flags.Float64Var(&simBeta, "beta", 0, "Device orientation beta in degrees")
	flags.Float64Var(&simGamma, "gamma", 0, "Device orientation gamma in degrees")
	flags.Float64Var(&simRotX, "rot-x", 0, "Base rotation around X in degrees")
	flags.Float64Var(&simRotY, "rot-y", 0, "Base rotation around Y in degrees")
	flags.Float64Var(&simRotZ, "rot-z", 0, "Base rotation around Z in degrees")
	flags.Float64Var(&simZoom, "zoom", 0, "Zoom percentage (1 halves the distance)")
	flags.Float64Var(&simPanX, "pan-x", 0, "Texture pan X")
	flags.Float64Var(&simPanY, "pan-y", 0, "Texture pan Y")

	simulateCmd.MarkFlagsRequiredTogether("orbit-x", "orbit-y")
	simulateCmd.MarkFlagsRequiredTogether("alpha", "beta", "gamma")
	simulateCmd.MarkFlagsMutuallyExclusive("orbit-x", "alpha")
	simulateCmd.MarkFlagsMutuallyExclusive("ticks", "duration")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if simDistance > 0 {
		cfg.DefaultDistance = simDistance
	}

	sim := simulation{
		cfg:          cfg,
		viewport:     control.Viewport{Width: simWidth, Height: simHeight},
		ticks:        simTicks,
		every:        simEvery,
		untilSettled: simUntilSettled,
		duration:     simDuration,
		fps:          simFPS,
	}

	flags := cmd.Flags()
	switch {
	case flags.Changed("orbit-x"):
		v := input.Pointer(simOrbitX, simOrbitY)
		sim.orbit = &v
	case flags.Changed("alpha"):
		v := input.DeviceOrientation(simAlpha, simBeta, simGamma)
		sim.orbit = &v
	}
	if flags.Changed("rot-x") || flags.Changed("rot-y") || flags.Changed("rot-z") {
		sim.rotation = &geometry.Vector3{X: simRotX, Y: simRotY, Z: simRotZ}
	}
	if flags.Changed("zoom") {
		sim.zoom = &simZoom
	}
	if flags.Changed("pan-x") || flags.Changed("pan-y") {
		sim.pan = &geometry.Vector2{X: simPanX, Y: simPanY}
	}

	if err := simulate(os.Stdout, sim); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulate runs the controller against a headless scene and writes a trace to w
func simulate(w io.Writer, sim simulation) error {
	if err := config.Validate(sim.cfg); err != nil {
		return err
	}

	view := scene.NewHeadless(sim.cfg.DefaultDistance)
	view.Camera = sim.cfg.Target.Add(view.Camera)

	controller := control.New(sim.cfg, control.WithLog(w))
	controller.Attach(view)
	defer controller.Detach()

	if sim.orbit != nil {
		input.Feed(controller, *sim.orbit)
	}
	if sim.rotation != nil {
		controller.SetBaseRotation(sim.rotation.X, sim.rotation.Y, sim.rotation.Z)
	}
	if sim.zoom != nil {
		controller.SetZoomPercentage(*sim.zoom)
	}
	if sim.pan != nil {
		controller.SetTexturePan(sim.pan.X, sim.pan.Y)
	}

	frame := control.Frame{Viewport: sim.viewport}

	if sim.duration > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), sim.duration)
		defer cancel()

		err := control.Run(ctx, controller, sim.fps, func() control.Frame { return frame })
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("simulation interrupted: %w", err)
		}
		printTrace(w, controller.Ticks(), view)
		return nil
	}

	controller.Start()
	defer controller.Stop()

	fmt.Fprintf(w, "%6s  %-30s  %-24s  %s\n", "tick", "camera", "rotation", "texture")
	printTrace(w, 0, view)
	for i := 1; i <= sim.ticks; i++ {
		controller.Tick(frame)
		if sim.every > 0 && i%sim.every == 0 {
			printTrace(w, uint64(i), view)
		}
		if sim.untilSettled && controller.Settled(frame) {
			printTrace(w, uint64(i), view)
			fmt.Fprintf(w, "settled after %d ticks\n", i)
			return nil
		}
	}

	printTrace(w, controller.Ticks(), view)
	if !controller.Settled(frame) {
		fmt.Fprintf(w, "not settled after %d ticks\n", controller.Ticks())
	}
	return nil
}

func printTrace(w io.Writer, tick uint64, view *scene.Headless) {
	camera := fmt.Sprintf("(%.3f, %.3f, %.3f)", view.Camera.X, view.Camera.Y, view.Camera.Z)
	rotation := fmt.Sprintf("(%.4f, %.4f, %.4f)", view.Rotation.X, view.Rotation.Y, view.Rotation.Z)
	texture := fmt.Sprintf("(%.4f, %.4f)", view.Texture.X, view.Texture.Y)
	fmt.Fprintf(w, "%6d  %-30s  %-24s  %s\n", tick, camera, rotation, texture)
}
