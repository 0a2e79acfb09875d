package orbit

import (
	"math"

	"github.com/philipparndt/goorbit/pkg/damp"
	"github.com/philipparndt/goorbit/pkg/geometry"
)

// Viewport is the size in pixels of the area input coordinates are measured in
type Viewport struct {
	Width  float64
	Height float64
}

// Center returns the pixel coordinate of the middle of the viewport
func (v Viewport) Center() geometry.Vector2 {
	return geometry.Vector2{X: v.Width / 2.0, Y: v.Height / 2.0}
}

// Delta is the spherical rotation produced by one tick of orbit input.
// It is consumed by Apply and never stored.
type Delta struct {
	Theta float64
	Phi   float64
}

// IsZero reports whether applying the delta leaves the camera in place
func (d Delta) IsZero() bool {
	return d.Theta == 0 && d.Phi == 0
}

// Orbit rotates a camera around a fixed target from smoothed 2D input
type Orbit struct {
	Target      geometry.Vector3 // Point the camera rotates around and looks at
	Up          geometry.Vector3 // Camera up vector; world up unless the camera rolls
	Friction    float64          // Damping applied to the input tracker
	Tolerance   float64          // Snap distance of the input tracker, in pixels
	RotateSpeed float64          // Scale from tracker motion to rotation

	rotateStart geometry.Vector2
}

// New creates an orbit around target with world up
func New(target geometry.Vector3, friction, tolerance, rotateSpeed float64) *Orbit {
	return &Orbit{
		Target:      target,
		Up:          geometry.WorldUp,
		Friction:    friction,
		Tolerance:   tolerance,
		RotateSpeed: rotateSpeed,
	}
}

// RotateStart returns the tracker position reached so far, relative to the viewport center
func (o *Orbit) RotateStart() geometry.Vector2 {
	return o.rotateStart
}

// Delta advances the input tracker toward destination (raw viewport pixels) and returns the
// resulting spherical rotation. Rotation is normalized by the viewport height so the angular
// sensitivity does not depend on the aspect ratio.
func (o *Orbit) Delta(destination geometry.Vector2, viewport Viewport) Delta {
	centered := destination.Sub(viewport.Center())

	rotateEnd := damp.ApproachVector2(o.rotateStart, centered, o.Friction, o.Tolerance)
	rotateDelta := rotateEnd.Sub(o.rotateStart).Mul(o.RotateSpeed)
	o.rotateStart = rotateEnd

	var delta Delta
	delta.Theta -= 2 * math.Pi * rotateDelta.X / viewport.Height
	delta.Phi -= 2 * math.Pi * rotateDelta.Y / viewport.Height
	return delta
}

// Apply rotates position around the target by delta and returns the new camera position.
// The polar angle is kept away from the poles and the distance to the target is unchanged.
func (o *Orbit) Apply(position geometry.Vector3, delta Delta) geometry.Vector3 {
	toWorldUp := geometry.QuaternionFromUnitVectors(o.Up.Normalize(), geometry.WorldUp)

	offset := position.Sub(o.Target).ApplyQuaternion(toWorldUp)

	s := geometry.SphericalFromVector3(offset)
	s.Theta += delta.Theta
	s.Phi += delta.Phi
	s = s.MakeSafe()

	offset = s.Vector3().ApplyQuaternion(toWorldUp.Inverse())
	return o.Target.Add(offset)
}

// Spherical returns the camera offset of position in the up-aligned frame
func (o *Orbit) Spherical(position geometry.Vector3) geometry.Spherical {
	toWorldUp := geometry.QuaternionFromUnitVectors(o.Up.Normalize(), geometry.WorldUp)
	return geometry.SphericalFromVector3(position.Sub(o.Target).ApplyQuaternion(toWorldUp))
}

// Hold returns the raw destination that keeps the tracker where it is
func (o *Orbit) Hold(viewport Viewport) geometry.Vector2 {
	return o.rotateStart.Add(viewport.Center())
}
