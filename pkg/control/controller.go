package control

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipparndt/goorbit/pkg/damp"
	"github.com/philipparndt/goorbit/pkg/geometry"
	"github.com/philipparndt/goorbit/pkg/orbit"
)

// Viewport is the size in pixels of the area input is measured in
type Viewport = orbit.Viewport

// Frame carries the per-tick inputs that are not channel destinations
type Frame struct {
	Viewport Viewport
}

// Controller eases a scene toward the destinations set by its setters, one Tick per frame.
//
// Tick, Attach, Start, Stop, Detach, Resize, Configure and SetUp must be called from the
// frame thread.
// The Set* destination setters may be called from any goroutine: each one replaces its
// destination with an atomic store and never touches tick state. SetOrbitDestination and
// SetNaturalRotation also share a small lock so a pointer event cannot overwrite the centered
// destination a concurrent disable has just set.
type Controller struct {
	cfg   Config
	orbit *orbit.Orbit
	scene Scene
	state State
	ticks uint64
	log   io.Writer

	// nil means no destination: the channel holds still
	orbitMu      sync.Mutex // orders orbit input against the natural-rotation toggle
	orbitDest    atomic.Pointer[geometry.Vector2]
	rotationDest atomic.Pointer[geometry.Vector3]
	zoomDest     atomic.Pointer[float64]
	textureDest  atomic.Pointer[geometry.Vector2]

	defaultDistance atomic.Pointer[float64]
	viewport        atomic.Pointer[Viewport]
	naturalDisabled atomic.Bool
}

// Option configures a Controller
type Option func(*Controller)

// WithLog sets where debug diagnostics are written (stderr by default)
func WithLog(w io.Writer) Option {
	return func(c *Controller) {
		c.log = w
	}
}

// New creates a controller in the Uninitialized state.
// The zoom destination starts at the default distance and the texture pan at (0, 0), so both
// channels settle the scene into its neutral pose as soon as animation starts.
func New(cfg Config, options ...Option) *Controller {
	c := &Controller{
		cfg:   cfg,
		orbit: orbit.New(cfg.Target, cfg.Orbit.Friction, cfg.Orbit.Tolerance, cfg.RotateSpeed),
		log:   os.Stderr,
	}
	if cfg.Up != (geometry.Vector3{}) {
		c.orbit.Up = cfg.Up
	}

	for _, option := range options {
		option(c)
	}

	distance := cfg.DefaultDistance
	c.defaultDistance.Store(&distance)
	zoom := distance
	c.zoomDest.Store(&zoom)
	c.textureDest.Store(&geometry.Vector2{})

	return c
}

// Configure replaces the tuning while keeping every channel's progress
func (c *Controller) Configure(cfg Config) {
	c.cfg = cfg
	c.orbit.Target = cfg.Target
	c.orbit.Friction = cfg.Orbit.Friction
	c.orbit.Tolerance = cfg.Orbit.Tolerance
	c.orbit.RotateSpeed = cfg.RotateSpeed
	if cfg.Up != (geometry.Vector3{}) {
		c.orbit.Up = cfg.Up
	}
}

// Config returns the current tuning
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.state
}

// Ticks returns how many ticks have advanced the channels
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Orbit exposes the orbit model, e.g. to read the input tracker
func (c *Controller) Orbit() *orbit.Orbit {
	return c.orbit
}

// Attach binds the scene to animate and moves to Ready
func (c *Controller) Attach(scene Scene) {
	c.scene = scene
	if c.state == Uninitialized {
		c.state = Ready
	}
}

// Detach releases the scene and returns to Uninitialized
func (c *Controller) Detach() {
	c.scene = nil
	c.state = Uninitialized
}

// Start begins animating. It has no effect unless the controller is Ready.
func (c *Controller) Start() {
	if c.state != Ready {
		c.debugf("start ignored in state %s", c.state)
		return
	}
	c.state = Animating
}

// Stop ends animating and returns to Ready
func (c *Controller) Stop() {
	if c.state == Animating {
		c.state = Ready
	}
}

// SetOrbitDestination sets the raw input position, in viewport pixels, the orbit eases toward.
// It is ignored while natural rotation is disabled.
func (c *Controller) SetOrbitDestination(x, y float64) {
	c.orbitMu.Lock()
	defer c.orbitMu.Unlock()
	if c.naturalDisabled.Load() {
		return
	}
	c.orbitDest.Store(&geometry.Vector2{X: x, Y: y})
}

// SetBaseRotation sets the object rotation to ease toward, in degrees
func (c *Controller) SetBaseRotation(x, y, z float64) {
	rotation := geometry.NewVector3(x, y, z).DegToRad()
	c.rotationDest.Store(&rotation)
}

// SetZoomPercentage sets the camera distance to ease toward as a percentage of zoom.
// See ZoomDestination for the mapping.
func (c *Controller) SetZoomPercentage(percentage float64) {
	distance := ZoomDestination(*c.defaultDistance.Load(), percentage)
	c.zoomDest.Store(&distance)
}

// SetTexturePan sets the texture offset to ease toward
func (c *Controller) SetTexturePan(x, y float64) {
	c.textureDest.Store(&geometry.Vector2{X: x, Y: y})
}

// SetDefaultDistance changes the neutral camera distance, e.g. after a new model is loaded.
// Zoom destinations set afterwards, and by Resize, are relative to the new distance.
func (c *Controller) SetDefaultDistance(distance float64) {
	c.defaultDistance.Store(&distance)
}

// DefaultDistance returns the neutral camera distance
func (c *Controller) DefaultDistance() float64 {
	return *c.defaultDistance.Load()
}

// SetNaturalRotation enables or disables input-driven orbiting. Disabling eases the camera
// back to the neutral orbit by aiming at the viewport center.
func (c *Controller) SetNaturalRotation(enabled bool) {
	c.orbitMu.Lock()
	defer c.orbitMu.Unlock()
	c.naturalDisabled.Store(!enabled)
	if enabled {
		return
	}
	if viewport := c.viewport.Load(); viewport != nil {
		center := viewport.Center()
		c.orbitDest.Store(&center)
	}
}

// NaturalRotation reports whether input-driven orbiting is enabled
func (c *Controller) NaturalRotation() bool {
	return !c.naturalDisabled.Load()
}

// SetUp changes the camera up vector the orbit rotates around
func (c *Controller) SetUp(up geometry.Vector3) {
	c.orbit.Up = up
}

// Resize records a new viewport and holds every channel where it currently is: the orbit
// keeps its rotation, the object keeps its current rotation and zoom returns to the default
// distance.
func (c *Controller) Resize(viewport Viewport) {
	c.viewport.Store(&viewport)

	c.orbitMu.Lock()
	if !c.naturalDisabled.Load() {
		hold := c.orbit.Hold(viewport)
		c.orbitDest.Store(&hold)
	}
	c.orbitMu.Unlock()
	if c.scene != nil && c.rotationDest.Load() != nil {
		rotation := c.scene.ObjectRotation()
		c.rotationDest.Store(&rotation)
	}
	distance := *c.defaultDistance.Load()
	c.zoomDest.Store(&distance)
}

// Tick advances every channel with a pending destination by one step and writes the results
// to the scene. It does nothing unless the controller is Animating.
func (c *Controller) Tick(frame Frame) {
	if c.state != Animating {
		return
	}
	c.viewport.Store(&frame.Viewport)

	if c.cfg.Debug {
		c.checkPreconditions(frame)
	}

	// Orbit runs first: zoom edits the depth of the freshly orbited position
	if dest := c.orbitDest.Load(); dest != nil {
		delta := c.orbit.Delta(*dest, frame.Viewport)
		c.scene.SetCameraPosition(c.orbit.Apply(c.scene.CameraPosition(), delta))
		c.scene.LookAt(c.orbit.Target)
	}

	if dest := c.rotationDest.Load(); dest != nil {
		ch := c.cfg.BaseRotation
		c.scene.SetObjectRotation(damp.ApproachVector3(c.scene.ObjectRotation(), *dest, ch.Friction, ch.Tolerance))
	}

	if dest := c.zoomDest.Load(); dest != nil {
		ch := c.cfg.Zoom
		position := c.scene.CameraPosition()
		position.Z = damp.Approach(position.Z, *dest, ch.Friction, ch.Tolerance)
		c.scene.SetCameraPosition(position)
	}

	if dest := c.textureDest.Load(); dest != nil {
		c.scene.SetTextureOffset(AdvanceTexturePan(c.scene.TextureOffset(), *dest, c.cfg.TexturePan, c.cfg.PanThreshold))
	}

	c.ticks++
}

// AdvanceTexturePan steps a texture offset toward dest. X always advances. Y only advances
// while the advanced X is at or below threshold, or while dest.Y is at or above the current Y,
// so a pan back up waits for the horizontal scroll to return to the start first.
func AdvanceTexturePan(current, dest geometry.Vector2, ch Channel, threshold float64) geometry.Vector2 {
	next := current
	next.X = damp.Approach(current.X, dest.X, ch.Friction, ch.Tolerance)
	if next.X <= threshold || dest.Y >= current.Y {
		next.Y = damp.Approach(current.Y, dest.Y, ch.Friction, ch.Tolerance)
	}
	return next
}

// Settled reports whether every channel with a destination is within its tolerance of it, so
// the next tick at most snaps the remaining distance. Comparing within tolerance keeps scenes
// that store the camera at a lower precision from easing forever.
func (c *Controller) Settled(frame Frame) bool {
	if c.scene == nil {
		return true
	}
	if dest := c.orbitDest.Load(); dest != nil {
		tracker := c.orbit.RotateStart()
		centered := dest.Sub(frame.Viewport.Center())
		if !damp.Settled(tracker.X, centered.X, c.orbit.Tolerance) || !damp.Settled(tracker.Y, centered.Y, c.orbit.Tolerance) {
			return false
		}
	}
	if dest := c.rotationDest.Load(); dest != nil {
		rotation, tol := c.scene.ObjectRotation(), c.cfg.BaseRotation.Tolerance
		if !damp.Settled(rotation.X, dest.X, tol) || !damp.Settled(rotation.Y, dest.Y, tol) || !damp.Settled(rotation.Z, dest.Z, tol) {
			return false
		}
	}
	if dest := c.zoomDest.Load(); dest != nil && !damp.Settled(c.scene.CameraPosition().Z, *dest, c.cfg.Zoom.Tolerance) {
		return false
	}
	if dest := c.textureDest.Load(); dest != nil {
		offset, tol := c.scene.TextureOffset(), c.cfg.TexturePan.Tolerance
		if !damp.Settled(offset.X, dest.X, tol) || !damp.Settled(offset.Y, dest.Y, tol) {
			return false
		}
	}
	return true
}

func (c *Controller) checkPreconditions(frame Frame) {
	for _, ch := range c.cfg.Channels() {
		if ch.Friction <= 0 || ch.Friction >= 1 {
			c.debugf("%s friction %v outside (0, 1)", ch.Name, ch.Friction)
		}
	}

	if radius := c.scene.CameraPosition().Distance(c.orbit.Target); radius <= 0 || math.IsNaN(radius) {
		c.debugf("camera radius %v is not positive", radius)
	}
	if frame.Viewport.Height <= 0 {
		c.debugf("viewport height %v is not positive", frame.Viewport.Height)
	}
}

func (c *Controller) debugf(format string, args ...any) {
	if !c.cfg.Debug || c.log == nil {
		return
	}
	fmt.Fprintf(c.log, "control: "+format+"\n", args...)
}
