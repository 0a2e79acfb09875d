package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goorbit/pkg/control"
	"github.com/philipparndt/goorbit/pkg/geometry"
)

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromRaylib(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

// CameraPosition implements control.Scene
func (app *App) CameraPosition() geometry.Vector3 {
	return fromRaylib(app.Camera.camera.Position)
}

// SetCameraPosition implements control.Scene
func (app *App) SetCameraPosition(position geometry.Vector3) {
	app.Camera.camera.Position = toRaylib(position)
}

// LookAt implements control.Scene
func (app *App) LookAt(target geometry.Vector3) {
	app.Camera.camera.Target = toRaylib(target)
}

// ObjectRotation implements control.Scene
func (app *App) ObjectRotation() geometry.Vector3 {
	return app.Model.rotation
}

// SetObjectRotation implements control.Scene
func (app *App) SetObjectRotation(rotation geometry.Vector3) {
	app.Model.rotation = rotation
}

// TextureOffset implements control.Scene
func (app *App) TextureOffset() geometry.Vector2 {
	return app.Screen.offset
}

// SetTextureOffset implements control.Scene
func (app *App) SetTextureOffset(offset geometry.Vector2) {
	app.Screen.offset = offset
}

// newCamera places the camera on +Z at distance, looking at the orbit target
func newCamera(target, up geometry.Vector3, distance float64) rl.Camera3D {
	return rl.Camera3D{
		Position:   toRaylib(target.Add(geometry.NewVector3(0, 0, distance))),
		Target:     toRaylib(target),
		Up:         toRaylib(up.Normalize()),
		Fovy:       60.0,
		Projection: rl.CameraPerspective,
	}
}

// viewport returns the current window size
func viewport() control.Viewport {
	return control.Viewport{Width: float64(rl.GetScreenWidth()), Height: float64(rl.GetScreenHeight())}
}

// Rotation presets for the number keys, in degrees
var rotationPresets = []struct {
	name    string
	x, y, z float64
}{
	{"front", 0, 0, 0},
	{"back", 0, 180, 0},
	{"left", 0, -90, 0},
	{"right", 0, 90, 0},
	{"top", 90, 0, 0},
	{"bottom", -90, 0, 0},
}

// setRotationPreset eases the model to one of the preset orientations
func (app *App) setRotationPreset(index int) {
	preset := rotationPresets[index]
	app.controller.SetBaseRotation(preset.x, preset.y, preset.z)
}

// resetView eases every channel back to the neutral pose
func (app *App) resetView() {
	app.Triggers.zoomPercentage = 0
	app.Triggers.pan = geometry.Vector2{}
	app.controller.SetBaseRotation(0, 0, 0)
	app.controller.SetZoomPercentage(0)
	app.controller.SetTexturePan(0, 0)
	center := viewport().Center()
	app.controller.SetOrbitDestination(center.X, center.Y)
}

// toggleRoll turns the camera a quarter around its view axis, like a device held in landscape,
// and makes the orbit turn around the new up vector
func (app *App) toggleRoll() {
	up := geometry.NewVector3(1, 0, 0)
	if fromRaylib(app.Camera.camera.Up) == up {
		up = app.controller.Config().Up
	}
	app.Camera.camera.Up = toRaylib(up)
	app.controller.SetUp(up)
}
