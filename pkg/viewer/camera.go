package viewer

import (
	"math"

	"github.com/philipparndt/goorbit/pkg/geometry"
)

// Camera is a perspective camera whose position is driven by the orbit controller
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians
}

// NewCamera places a camera on +Z at distance from target
func NewCamera(target geometry.Vector3, distance float64) *Camera {
	return &Camera{
		Position: target.Add(geometry.NewVector3(0, 0, distance)),
		Target:   target,
		Up:       geometry.WorldUp,
		FOV:      math.Pi / 3, // 60 degrees
	}
}

// Project projects a 3D point to 2D screen coordinates and its depth along the view direction
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	// View transformation
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}
