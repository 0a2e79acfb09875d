package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goorbit/pkg/input"
)

const (
	zoomStep = 0.1
	panStep  = 0.25

	// Gamepad sticks are mapped onto the device-orientation angles, in degrees
	stickAngle = 45.0
)

// handleInput turns raw window input into controller destinations
func (app *App) handleInput() {
	if rl.IsWindowResized() {
		app.controller.Resize(viewport())
	}

	// Orbit follows the pointer while it moves; a still pointer keeps the last destination
	mouse := rl.GetMousePosition()
	if mouse != app.Triggers.lastMouse {
		app.Triggers.lastMouse = mouse
		input.Feed(app.controller, input.Pointer(float64(mouse.X), float64(mouse.Y)))
	}

	// A connected gamepad stands in for device orientation
	if rl.IsGamepadAvailable(0) {
		x := float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX))
		y := float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftY))
		if x != 0 || y != 0 {
			v := input.DeviceOrientation(0, input.RestingBeta+y*stickAngle, x*stickAngle)
			input.Feed(app.controller, v)
		}
	}

	// Zoom
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Triggers.zoomPercentage += float64(wheel) * zoomStep
		if app.Triggers.zoomPercentage < 0 {
			app.Triggers.zoomPercentage = 0
		}
		app.controller.SetZoomPercentage(app.Triggers.zoomPercentage)
	}

	// Base rotation presets
	presetKeys := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix}
	for i, key := range presetKeys {
		if rl.IsKeyPressed(key) {
			app.setRotationPreset(i)
		}
	}

	// Texture pan
	panned := false
	if rl.IsKeyPressed(rl.KeyRight) {
		app.Triggers.pan.X += panStep
		panned = true
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		app.Triggers.pan.X -= panStep
		panned = true
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		app.Triggers.pan.Y -= panStep
		panned = true
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		app.Triggers.pan.Y += panStep
		panned = true
	}
	if panned {
		app.controller.SetTexturePan(app.Triggers.pan.X, app.Triggers.pan.Y)
	}

	if rl.IsKeyPressed(rl.KeyN) {
		enabled := !app.controller.NaturalRotation()
		app.controller.SetNaturalRotation(enabled)
		fmt.Printf("Natural rotation: %v\n", enabled)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.toggleRoll()
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetView()
	}

	// View toggles
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyS) {
		app.View.showScreen = !app.View.showScreen
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
}
