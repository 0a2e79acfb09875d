package app

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goorbit/version"
)

const (
	screenSize    = 256
	screenChecker = 32
)

// newScreenTexture creates the checker texture whose UV offset the texture-pan channel animates
func newScreenTexture() rl.Texture2D {
	image := rl.GenImageChecked(screenSize, screenSize, screenChecker, screenChecker,
		rl.NewColor(40, 70, 110, 255), rl.NewColor(200, 210, 225, 255))
	defer rl.UnloadImage(image)

	texture := rl.LoadTextureFromImage(image)
	rl.SetTextureWrap(texture, rl.WrapRepeat)
	return texture
}

// drawScreen draws the texture panel with the current UV offset
func (app *App) drawScreen() {
	if !app.View.showScreen {
		return
	}

	size := float32(160)
	x := float32(rl.GetScreenWidth()) - size - 20
	y := float32(rl.GetScreenHeight()) - size - 20

	// The offset wraps, so only its fractional part moves the source rectangle
	u := float32(app.Screen.offset.X - math.Floor(app.Screen.offset.X))
	v := float32(app.Screen.offset.Y - math.Floor(app.Screen.offset.Y))
	source := rl.Rectangle{X: u * screenSize, Y: v * screenSize, Width: size, Height: size}

	rl.DrawTextureRec(app.Screen.texture, source, rl.Vector2{X: x, Y: y}, rl.White)
	rl.DrawRectangleLines(int32(x), int32(y), int32(size), int32(size), rl.Yellow)
}

// drawUI draws the user interface
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(20)

	label := func(text string, size int32, color rl.Color) {
		rl.DrawText(text, 10, y, size, color)
		y += lineHeight
	}

	// Loading indicator
	if app.FileWatch.isLoading.Load() {
		elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
		loadingText := fmt.Sprintf("Loading... (%.1fs)", elapsed)
		boxX := int32(rl.GetScreenWidth()) - 270
		rl.DrawRectangle(boxX, 20, 250, 40, rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(boxX, 20, 250, 40, rl.Yellow)
		rl.DrawText(loadingText, boxX+15, 32, 18, rl.Yellow)
	}

	// === MODEL ===
	label("Model:", 16, rl.Yellow)
	label(fmt.Sprintf("  Name: %s", app.Model.model.Name), 14, rl.White)
	label(fmt.Sprintf("  Triangles: %d", app.Model.model.TriangleCount()), 14, rl.White)
	size := app.Model.model.BoundingBox().Size()
	label(fmt.Sprintf("  Size: %.2f x %.2f x %.2f", size.X, size.Y, size.Z), 14, rl.White)
	y += lineHeight

	// === CONTROL ===
	camera := app.CameraPosition()
	rotation := app.Model.rotation
	label("Control:", 16, rl.Yellow)
	label(fmt.Sprintf("  State: %s", app.controller.State()), 14, rl.White)
	label(fmt.Sprintf("  Camera: (%.1f, %.1f, %.1f)", camera.X, camera.Y, camera.Z), 14, rl.White)
	label(fmt.Sprintf("  Rotation: (%.2f, %.2f, %.2f)", rotation.X, rotation.Y, rotation.Z), 14, rl.White)
	label(fmt.Sprintf("  Zoom: %.0f%%", app.Triggers.zoomPercentage*100), 14, rl.White)
	label(fmt.Sprintf("  Texture: (%.3f, %.3f)", app.Screen.offset.X, app.Screen.offset.Y), 14, rl.White)
	if app.controller.NaturalRotation() {
		label("  Natural rotation: on", 14, rl.Green)
	} else {
		label("  Natural rotation: off", 14, rl.NewColor(255, 100, 100, 255))
	}
	if app.FileWatch.watchFailed.Load() {
		label("  Auto-reload error, see log", 14, rl.NewColor(255, 100, 100, 255))
	}
	if app.controller.Settled(app.frame()) {
		label("  Settled", 14, rl.Lime)
	} else {
		label("  Easing", 14, rl.Orange)
	}
	y += lineHeight

	// === HELP ===
	if app.View.showHelp {
		label("Keys:", 16, rl.Yellow)
		label("  Mouse: Orbit | Wheel: Zoom", 14, rl.LightGray)
		label("  1-6: Front/Back/Left/Right/Top/Bottom", 14, rl.LightGray)
		label("  Arrows: Pan texture | N: Natural rotation | R: Roll", 14, rl.LightGray)
		label("  Home: Reset | W: Wireframe | F: Fill | S: Screen", 14, rl.LightGray)
		label("  H: Hide help", 14, rl.LightGray)
	}

	// Version and FPS in bottom-left corner
	bottomY := int32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawText(versionText, 10, bottomY, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10+rl.MeasureText(versionText, 12)+15, bottomY, 12, rl.Lime)
}
