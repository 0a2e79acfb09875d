package viewer

import (
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goorbit/pkg/control"
	"github.com/philipparndt/goorbit/pkg/geometry"
	"github.com/philipparndt/goorbit/pkg/stl"
)

const (
	screenSize     = 120
	screenCheckers = 8
	zoomStep       = 0.001
)

// ModelRenderer is a wireframe view of a model animated by a control.Controller.
// It is the controller's scene: the controller moves its camera, rotates its model and pans the
// texture shown in the corner panel.
type ModelRenderer struct {
	widget.BaseWidget
	model      *stl.Model
	controller *control.Controller
	camera     *Camera
	rotation   geometry.Vector3
	offset     geometry.Vector2
	zoom       float64
	lines      []*canvas.Line
	screen     *canvas.Raster
	animation  *fyne.Animation
	width      float64
	height     float64
	onTick     func()
}

var (
	_ control.Scene       = (*ModelRenderer)(nil)
	_ desktop.Hoverable   = (*ModelRenderer)(nil)
	_ fyne.Scrollable     = (*ModelRenderer)(nil)
	_ fyne.WidgetRenderer = (*modelWidgetRenderer)(nil)
)

// NewModelRenderer creates a view of model and attaches it to controller
func NewModelRenderer(model *stl.Model, controller *control.Controller) *ModelRenderer {
	cfg := controller.Config()
	r := &ModelRenderer{
		model:      model,
		controller: controller,
		camera:     NewCamera(cfg.Target, controller.DefaultDistance()),
		lines:      make([]*canvas.Line, 0),
	}
	r.camera.Up = cfg.Up.Normalize()
	r.screen = canvas.NewRasterWithPixels(r.screenPixel)
	r.screen.SetMinSize(fyne.NewSize(screenSize, screenSize))
	r.ExtendBaseWidget(r)
	controller.Attach(r)
	return r
}

// SetModel swaps the displayed model and reframes the zoom around its view distance.
// The rest of the controller state is kept.
func (r *ModelRenderer) SetModel(model *stl.Model) {
	r.model = model
	r.controller.SetDefaultDistance(model.ViewDistance())
	r.controller.SetZoomPercentage(r.zoom)
	r.Render(r.width, r.height)
}

// SetOnTick sets a callback run after every animation frame
func (r *ModelRenderer) SetOnTick(callback func()) {
	r.onTick = callback
}

// Start runs the controller on a fyne animation, one tick per frame
func (r *ModelRenderer) Start() {
	if r.animation != nil {
		return
	}
	r.animation = fyne.NewAnimation(time.Second, func(float32) {
		r.tick()
	})
	r.animation.Curve = fyne.AnimationLinear
	r.animation.RepeatCount = fyne.AnimationRepeatForever
	r.controller.Start()
	r.animation.Start()
}

// Stop halts the animation
func (r *ModelRenderer) Stop() {
	if r.animation == nil {
		return
	}
	r.animation.Stop()
	r.animation = nil
	r.controller.Stop()
}

func (r *ModelRenderer) tick() {
	if r.width <= 0 || r.height <= 0 {
		return
	}
	r.controller.Tick(r.frame())
	r.Render(r.width, r.height)
	if r.onTick != nil {
		r.onTick()
	}
}

func (r *ModelRenderer) frame() control.Frame {
	return control.Frame{Viewport: control.Viewport{Width: r.width, Height: r.height}}
}

// Settled reports whether every channel has reached its destination
func (r *ModelRenderer) Settled() bool {
	return r.controller.Settled(r.frame())
}

// CameraPosition implements control.Scene
func (r *ModelRenderer) CameraPosition() geometry.Vector3 {
	return r.camera.Position
}

// SetCameraPosition implements control.Scene
func (r *ModelRenderer) SetCameraPosition(position geometry.Vector3) {
	r.camera.Position = position
}

// LookAt implements control.Scene
func (r *ModelRenderer) LookAt(target geometry.Vector3) {
	r.camera.Target = target
}

// ObjectRotation implements control.Scene
func (r *ModelRenderer) ObjectRotation() geometry.Vector3 {
	return r.rotation
}

// SetObjectRotation implements control.Scene
func (r *ModelRenderer) SetObjectRotation(rotation geometry.Vector3) {
	r.rotation = rotation
}

// TextureOffset implements control.Scene
func (r *ModelRenderer) TextureOffset() geometry.Vector2 {
	return r.offset
}

// SetTextureOffset implements control.Scene
func (r *ModelRenderer) SetTextureOffset(offset geometry.Vector2) {
	r.offset = offset
}

// CreateRenderer creates the renderer for the widget
func (r *ModelRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &modelWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render projects every rotated triangle edge for a view of the given size
func (r *ModelRenderer) Render(width, height float64) {
	r.width = width
	r.height = height
	if width <= 0 || height <= 0 {
		return
	}

	rotation := geometry.QuaternionFromEuler(r.rotation)
	r.lines = make([]*canvas.Line, 0, len(r.model.Triangles)*3)

	for _, triangle := range r.model.Triangles {
		vertices := []geometry.Vector3{
			triangle.V1.ApplyQuaternion(rotation),
			triangle.V2.ApplyQuaternion(rotation),
			triangle.V3.ApplyQuaternion(rotation),
		}

		for i := 0; i < 3; i++ {
			x1, y1, z1 := r.camera.Project(vertices[i], width, height)
			x2, y2, z2 := r.camera.Project(vertices[(i+1)%3], width, height)

			// Simple depth-based color
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(50, math.Min(255, 255-avgZ*0.5)))

			line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))

			r.lines = append(r.lines, line)
		}
	}

	r.Refresh()
}

// screenPixel draws a checker pattern shifted by the texture offset
func (r *ModelRenderer) screenPixel(x, y, w, h int) color.Color {
	u := float64(x)/float64(w) + r.offset.X
	v := float64(y)/float64(h) + r.offset.Y
	cell := int(math.Floor(u*screenCheckers)) + int(math.Floor(v*screenCheckers))
	if cell%2 == 0 {
		return color.RGBA{40, 70, 110, 255}
	}
	return color.RGBA{200, 210, 225, 255}
}

// MouseIn implements desktop.Hoverable
func (r *ModelRenderer) MouseIn(event *desktop.MouseEvent) {
	r.MouseMoved(event)
}

// MouseMoved feeds the pointer position to the orbit channel
func (r *ModelRenderer) MouseMoved(event *desktop.MouseEvent) {
	r.controller.SetOrbitDestination(float64(event.Position.X), float64(event.Position.Y))
}

// MouseOut implements desktop.Hoverable; the orbit keeps its last destination
func (r *ModelRenderer) MouseOut() {}

// Scrolled zooms in or out
func (r *ModelRenderer) Scrolled(event *fyne.ScrollEvent) {
	r.SetZoom(r.zoom + float64(event.Scrolled.DY)*zoomStep)
}

// SetZoom sets the zoom percentage, never below zero
func (r *ModelRenderer) SetZoom(percentage float64) {
	r.zoom = math.Max(0, percentage)
	r.controller.SetZoomPercentage(r.zoom)
}

// Zoom returns the current zoom percentage
func (r *ModelRenderer) Zoom() float64 {
	return r.zoom
}

// modelWidgetRenderer implements fyne.WidgetRenderer
type modelWidgetRenderer struct {
	renderer *ModelRenderer
	objects  []fyne.CanvasObject
	size     fyne.Size
}

func (m *modelWidgetRenderer) Layout(size fyne.Size) {
	if size != m.size {
		m.size = size
		m.renderer.controller.Resize(control.Viewport{Width: float64(size.Width), Height: float64(size.Height)})
	}
	m.renderer.screen.Resize(fyne.NewSize(screenSize, screenSize))
	m.renderer.screen.Move(fyne.NewPos(size.Width-screenSize-10, size.Height-screenSize-10))
	m.renderer.Render(float64(size.Width), float64(size.Height))
}

func (m *modelWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *modelWidgetRenderer) Refresh() {
	m.objects = make([]fyne.CanvasObject, 0, len(m.renderer.lines)+1)

	for _, line := range m.renderer.lines {
		m.objects = append(m.objects, line)
	}
	m.objects = append(m.objects, m.renderer.screen)

	m.renderer.screen.Refresh()
	canvas.Refresh(m.renderer)
}

func (m *modelWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *modelWidgetRenderer) Destroy() {
	m.renderer.Stop()
}
