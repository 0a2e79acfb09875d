package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/philipparndt/goorbit/pkg/control"
	"github.com/philipparndt/goorbit/pkg/damp"
	"github.com/philipparndt/goorbit/pkg/geometry"
)

func testSimulation() simulation {
	cfg := control.DefaultConfig()
	cfg.DefaultDistance = 100
	return simulation{
		cfg:          cfg,
		viewport:     control.Viewport{Width: 800, Height: 600},
		ticks:        1000,
		untilSettled: true,
	}
}

func TestSimulateZoomSettles(t *testing.T) {
	sim := testSimulation()
	percentage := 1.0
	sim.zoom = &percentage

	var out bytes.Buffer
	if err := simulate(&out, sim); err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	// Settled as soon as the camera is within the zoom tolerance of distance 50
	zoom := sim.cfg.Zoom
	expected := fmt.Sprintf("settled after %d ticks", damp.MaxTicks(50-100, zoom.Friction, zoom.Tolerance))
	if !strings.Contains(out.String(), expected) {
		t.Errorf("simulate failed: expected %q, got:\n%s", expected, out.String())
	}
}

func TestSimulateWithoutDestinationsHoldsStill(t *testing.T) {
	var out bytes.Buffer
	if err := simulate(&out, testSimulation()); err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if !strings.Contains(out.String(), "settled after 1 ticks") {
		t.Errorf("simulate failed: expected to settle on the first tick, got:\n%s", out.String())
	}
}

func TestSimulateRejectsBadTuning(t *testing.T) {
	sim := testSimulation()
	sim.cfg.Orbit.Friction = 1

	var out bytes.Buffer
	if err := simulate(&out, sim); err == nil {
		t.Errorf("simulate failed: expected an error for friction 1")
	}
}

func TestSimulateTracesEveryInterval(t *testing.T) {
	sim := testSimulation()
	sim.ticks = 20
	sim.every = 5
	sim.untilSettled = false
	sim.pan = &geometry.Vector2{X: 1, Y: 0}

	var out bytes.Buffer
	if err := simulate(&out, sim); err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	// header, tick 0, ticks 5, 10, 15, 20 and the final line
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 8 {
		t.Errorf("simulate failed: expected 8 lines, got %d:\n%s", len(lines), out.String())
	}
}
