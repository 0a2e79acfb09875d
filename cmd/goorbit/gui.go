package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goorbit/internal/config"
	"github.com/philipparndt/goorbit/pkg/control"
	"github.com/philipparndt/goorbit/pkg/stl"
	"github.com/philipparndt/goorbit/pkg/viewer"
	"github.com/philipparndt/goorbit/pkg/watcher"
	"github.com/spf13/cobra"
)

var guiWatch bool

var guiCmd = &cobra.Command{
	Use:   "gui [file]",
	Short: "Open an STL model in the fyne viewer",
	Long: `Open an STL model in a desktop window with sliders for the base rotation, zoom and
texture pan. Hovering the view orbits the camera.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
	guiCmd.Flags().BoolVar(&guiWatch, "watch", true, "Reload the model when the file changes")
}

type guiApp struct {
	window      fyne.Window
	cfg         control.Config
	file        string
	model       *stl.Model
	controller  *control.Controller
	renderer    *viewer.ModelRenderer
	fileWatcher *watcher.FileWatcher

	modelInfoLabel *widget.Label
	statusLabel    *widget.Label
	zoomSlider     *widget.Slider
}

func runGUI(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		cfg = control.DefaultConfig()
	}

	a := fyneapp.New()
	w := a.NewWindow("goorbit")

	g := &guiApp{
		window: w,
		cfg:    cfg,
	}
	defer g.closeWatcher()

	if len(args) > 0 {
		g.loadFile(args[0])
	} else {
		g.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (g *guiApp) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to goorbit")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open STL File' to load a 3D model")

	openButton := widget.NewButton("Open STL File", func() {
		g.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	g.window.SetContent(content)
}

func (g *guiApp) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		g.loadFile(reader.URI().Path())
	}, g.window)
}

func (g *guiApp) loadFile(filename string) {
	model, err := stl.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load STL file: %w", err), g.window)
		return
	}

	if g.renderer != nil {
		g.renderer.Stop()
		g.controller.Detach()
	}

	g.file = filename
	g.model = model.Centered()

	cfg := g.cfg
	cfg.DefaultDistance = g.model.ViewDistance()
	g.controller = control.New(cfg)
	g.renderer = viewer.NewModelRenderer(g.model, g.controller)
	g.renderer.SetOnTick(g.updateStatus)

	g.setupMainUI()
	g.renderer.Start()

	if guiWatch {
		g.watchFile()
	}
}

// watchFile reloads the model in place when it changes on disk
func (g *guiApp) watchFile() {
	g.closeWatcher()

	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		return
	}
	fw.OnError(func(err error) {
		fmt.Printf("Watcher error: %v\n", err)
		fyne.Do(func() {
			dialog.ShowError(fmt.Errorf("auto-reload may miss changes: %w", err), g.window)
		})
	})

	callback := func(changedFile string) {
		fmt.Printf("\nFile changed: %s\n", changedFile)
		model, err := stl.Parse(changedFile)
		if err != nil {
			fmt.Printf("Error reloading model: %v\n", err)
			return
		}
		fyne.Do(func() {
			g.model = model.Centered()
			g.renderer.SetModel(g.model)
			g.modelInfoLabel.SetText(modelInfo(g.model))
		})
	}

	if err := fw.Watch([]string{g.file}, callback); err != nil {
		fw.Close()
		fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		return
	}
	fw.Start()
	g.fileWatcher = fw
	fmt.Printf("Watching file for changes: %s\n", g.file)
}

func (g *guiApp) closeWatcher() {
	if g.fileWatcher != nil {
		g.fileWatcher.Close()
		g.fileWatcher = nil
	}
}

func modelInfo(model *stl.Model) string {
	size := model.BoundingBox().Size()
	return fmt.Sprintf(
		"Model: %s\nTriangles: %d\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f\nView distance: %.2f",
		model.Name,
		model.TriangleCount(),
		size.X,
		size.Y,
		size.Z,
		model.ViewDistance(),
	)
}

// newSlider creates a slider that calls onChanged with its value
func newSlider(lo, hi, step float64, onChanged func(float64)) *widget.Slider {
	slider := widget.NewSlider(lo, hi)
	slider.Step = step
	slider.OnChanged = onChanged
	return slider
}

func (g *guiApp) setupMainUI() {
	g.modelInfoLabel = widget.NewLabel(modelInfo(g.model))
	g.statusLabel = widget.NewLabel("")

	// Base rotation in degrees
	var rotation [3]float64
	rotationSliders := make([]*widget.Slider, 3)
	for i := range rotationSliders {
		axis := i
		rotationSliders[i] = newSlider(-180, 180, 1, func(value float64) {
			rotation[axis] = value
			g.controller.SetBaseRotation(rotation[0], rotation[1], rotation[2])
		})
	}

	g.zoomSlider = newSlider(0, 3, 0.05, func(value float64) {
		g.renderer.SetZoom(value)
	})

	var pan [2]float64
	panSliders := make([]*widget.Slider, 2)
	for i := range panSliders {
		axis := i
		panSliders[i] = newSlider(0, 2, 0.05, func(value float64) {
			pan[axis] = value
			g.controller.SetTexturePan(pan[0], pan[1])
		})
	}

	naturalCheck := widget.NewCheck("Natural rotation", func(checked bool) {
		g.controller.SetNaturalRotation(checked)
	})
	naturalCheck.SetChecked(true)

	openButton := widget.NewButton("Open File", func() {
		g.showFileDialog()
	})

	resetButton := widget.NewButton("Reset View", func() {
		for _, slider := range rotationSliders {
			slider.SetValue(0)
		}
		for _, slider := range panSliders {
			slider.SetValue(0)
		}
		g.zoomSlider.SetValue(0)
		center := g.renderer.Size()
		g.controller.SetOrbitDestination(float64(center.Width)/2, float64(center.Height)/2)
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Move the pointer over the view to orbit\n" +
			"• Scroll to zoom in/out\n" +
			"• Use the sliders to rotate the model and pan the screen",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		g.modelInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Rotation X / Y / Z:"),
		rotationSliders[0],
		rotationSliders[1],
		rotationSliders[2],
		widget.NewLabel("Zoom:"),
		g.zoomSlider,
		widget.NewLabel("Texture Pan X / Y:"),
		panSliders[0],
		panSliders[1],
		naturalCheck,
		widget.NewSeparator(),
		g.statusLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		resetButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		g.renderer, // center
	)

	g.window.SetContent(content)
}

// updateStatus refreshes the status panel every tenth frame
func (g *guiApp) updateStatus() {
	if g.controller.Ticks()%10 != 0 {
		return
	}

	camera := g.renderer.CameraPosition()
	rotation := g.renderer.ObjectRotation()
	offset := g.renderer.TextureOffset()
	state := "easing"
	if g.renderer.Settled() {
		state = "settled"
	}
	g.statusLabel.SetText(fmt.Sprintf(
		"State: %s (%s)\nCamera: (%.1f, %.1f, %.1f)\nZoom: %.0f%%\nRotation: (%.2f, %.2f, %.2f)\nTexture: (%.3f, %.3f)",
		g.controller.State(), state,
		camera.X, camera.Y, camera.Z,
		g.renderer.Zoom()*100,
		rotation.X, rotation.Y, rotation.Z,
		offset.X, offset.Y,
	))
}
