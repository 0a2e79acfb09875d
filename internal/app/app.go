package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goorbit/internal/config"
	"github.com/philipparndt/goorbit/pkg/control"
)

// DefaultOptions returns the window defaults
func DefaultOptions() Options {
	return Options{
		Width:  1400,
		Height: 900,
		FPS:    60,
		Watch:  true,
	}
}

// Run opens the viewer window and blocks until it is closed
func Run(options Options) error {
	cfg, err := config.Load(options.ConfigFile)
	if err != nil {
		return err
	}

	model, err := loadModel(options.File)
	if err != nil {
		return fmt.Errorf("error loading file: %w", err)
	}

	distance := options.Distance
	if distance <= 0 {
		distance = model.ViewDistance()
	}
	cfg.DefaultDistance = distance
	if err := config.Validate(cfg); err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(options.Width, options.Height, "goorbit")
	defer rl.CloseWindow()
	rl.SetTargetFPS(options.FPS)

	app := &App{
		options:    options,
		controller: control.New(cfg),
		Model: ModelData{
			model:    model,
			mesh:     stlToRaylibMesh(model),
			material: rl.LoadMaterialDefault(),
		},
		Screen: ScreenState{
			texture: newScreenTexture(),
		},
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
			showScreen:    true,
			showHelp:      true,
		},
		Camera: CameraState{
			camera: newCamera(cfg.Target, cfg.Up, distance),
		},
	}
	defer rl.UnloadMesh(&app.Model.mesh)
	defer rl.UnloadTexture(app.Screen.texture)

	if options.Watch {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	app.controller.Attach(app)
	app.controller.Resize(viewport())
	app.controller.Start()
	defer app.controller.Detach()
	defer app.controller.Stop()

	for !rl.WindowShouldClose() {
		if app.FileWatch.modelChanged.Swap(false) {
			app.reloadModel()
		}
		if app.FileWatch.configChanged.Swap(false) {
			app.reloadConfig()
		}

		// Apply loaded model if ready (must be on main thread)
		app.applyLoadedModel()

		// Update
		app.handleInput()
		app.controller.Tick(app.frame())

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawModel()
		rl.EndMode3D()

		app.drawScreen()
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

// frame is the per-tick input for the controller
func (app *App) frame() control.Frame {
	return control.Frame{Viewport: viewport()}
}
