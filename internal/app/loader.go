package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goorbit/internal/config"
	"github.com/philipparndt/goorbit/pkg/stl"
	"github.com/philipparndt/goorbit/pkg/watcher"
)

// loadModel parses an STL file and centres it on the orbit target
func loadModel(filePath string) (*stl.Model, error) {
	model, err := stl.Parse(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse STL file: %w", err)
	}
	if model.TriangleCount() == 0 {
		return nil, fmt.Errorf("model %s has no triangles", filePath)
	}
	return model.Centered(), nil
}

// setupFileWatcher watches the model and the tuning file
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	fw.OnError(func(err error) {
		fmt.Printf("Watcher error: %v\n", err)
		app.FileWatch.watchFailed.Store(true)
	})

	onModelChange := func(changedFile string) {
		fmt.Printf("\nFile changed: %s\n", changedFile)
		app.FileWatch.modelChanged.Store(true)
	}
	if err := fw.Watch([]string{app.options.File}, onModelChange); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}
	fmt.Printf("Watching file for changes: %s\n", app.options.File)

	if app.options.ConfigFile != "" {
		onConfigChange := func(changedFile string) {
			fmt.Printf("\nFile changed: %s\n", changedFile)
			app.FileWatch.configChanged.Store(true)
		}
		if err := fw.Watch([]string{app.options.ConfigFile}, onConfigChange); err != nil {
			fw.Close()
			return fmt.Errorf("failed to watch files: %w", err)
		}
		fmt.Printf("Watching file for changes: %s\n", app.options.ConfigFile)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw

	return nil
}

// reloadModel reparses the model in the background
func (app *App) reloadModel() {
	if !app.FileWatch.isLoading.CompareAndSwap(false, true) {
		return
	}

	app.FileWatch.loadingStartTime = time.Now()
	fmt.Println("Reloading model...")

	// The mesh is created on the main thread in applyLoadedModel
	go func() {
		model, err := loadModel(app.options.File)
		if err != nil {
			fmt.Printf("Error reloading model: %v\n", err)
			app.FileWatch.isLoading.Store(false)
			return
		}
		app.FileWatch.loadedModel.Store(model)
	}()
}

// applyLoadedModel swaps in a reloaded model (must be called on main thread).
// The controller keeps its state, so the camera and rotation carry over.
func (app *App) applyLoadedModel() {
	model := app.FileWatch.loadedModel.Swap(nil)
	if model == nil {
		return
	}

	oldMesh := app.Model.mesh
	app.Model.mesh = stlToRaylibMesh(model)
	app.Model.model = model
	rl.UnloadMesh(&oldMesh)

	// An explicit --distance keeps framing; otherwise zoom is relative to the new model
	if app.options.Distance <= 0 {
		app.controller.SetDefaultDistance(model.ViewDistance())
		app.controller.SetZoomPercentage(app.Triggers.zoomPercentage)
	}

	elapsed := time.Since(app.FileWatch.loadingStartTime)
	fmt.Printf("Model reloaded successfully in %.2fs!\n", elapsed.Seconds())
	app.FileWatch.isLoading.Store(false)
}

// reloadConfig applies a changed tuning file; an invalid file keeps the current tuning
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.options.ConfigFile)
	if err != nil {
		fmt.Printf("Error reloading config: %v\n", err)
		return
	}
	cfg.DefaultDistance = app.controller.DefaultDistance()
	app.controller.Configure(cfg)
	// Keep the current roll; the file only sets the up vector at startup
	app.controller.SetUp(fromRaylib(app.Camera.camera.Up))
	fmt.Println("Config reloaded")
}
