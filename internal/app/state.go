package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goorbit/pkg/control"
	"github.com/philipparndt/goorbit/pkg/geometry"
	"github.com/philipparndt/goorbit/pkg/stl"
	"github.com/philipparndt/goorbit/pkg/watcher"
)

// Options configures the viewer window
type Options struct {
	File       string  // STL model to display
	ConfigFile string  // Optional YAML tuning file
	Distance   float64 // Default camera distance; 0 frames the model
	Width      int32
	Height     int32
	FPS        int32
	Watch      bool // Reload the model and tuning file when they change
}

// CameraState holds the raylib camera the controller moves
type CameraState struct {
	camera rl.Camera3D
}

// ModelData holds all model-related data
type ModelData struct {
	model    *stl.Model
	mesh     rl.Mesh
	material rl.Material
	rotation geometry.Vector3 // Euler rotation in radians, animated by the controller
}

// ScreenState holds the panned texture drawn as the device screen
type ScreenState struct {
	texture rl.Texture2D
	offset  geometry.Vector2 // UV offset, animated by the controller
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showScreen    bool
	showHelp      bool
}

// TriggerState holds the discrete targets set from the keyboard
type TriggerState struct {
	zoomPercentage float64
	pan            geometry.Vector2
	lastMouse      rl.Vector2
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher      *watcher.FileWatcher
	modelChanged     atomic.Bool
	configChanged    atomic.Bool
	isLoading        atomic.Bool
	watchFailed      atomic.Bool // Set when the watcher reports an error; reloads may be missed
	loadingStartTime time.Time
	loadedModel      atomic.Pointer[stl.Model] // Set by the background loader, applied on the frame thread
}

// App is the raylib viewer. It is the control.Scene the controller animates.
type App struct {
	options    Options
	controller *control.Controller

	Camera    CameraState
	Model     ModelData
	Screen    ScreenState
	View      ViewSettings
	Triggers  TriggerState
	FileWatch FileWatchState
}

var _ control.Scene = (*App)(nil)
