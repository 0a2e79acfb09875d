// Package scene provides an in-memory scene for running the controller without a window
package scene

import (
	"github.com/philipparndt/goorbit/pkg/control"
	"github.com/philipparndt/goorbit/pkg/geometry"
)

// Headless is a control.Scene that only stores values
type Headless struct {
	Camera   geometry.Vector3
	Forward  geometry.Vector3 // Unit view direction set by LookAt
	Rotation geometry.Vector3
	Texture  geometry.Vector2
}

var _ control.Scene = (*Headless)(nil)

// NewHeadless creates a scene with the camera at distance on +Z looking at the origin
func NewHeadless(distance float64) *Headless {
	return &Headless{
		Camera:  geometry.NewVector3(0, 0, distance),
		Forward: geometry.NewVector3(0, 0, -1),
	}
}

func (h *Headless) CameraPosition() geometry.Vector3 { return h.Camera }

func (h *Headless) SetCameraPosition(position geometry.Vector3) { h.Camera = position }

func (h *Headless) LookAt(target geometry.Vector3) {
	h.Forward = target.Sub(h.Camera).Normalize()
}

func (h *Headless) ObjectRotation() geometry.Vector3 { return h.Rotation }

func (h *Headless) SetObjectRotation(rotation geometry.Vector3) { h.Rotation = rotation }

func (h *Headless) TextureOffset() geometry.Vector2 { return h.Texture }

func (h *Headless) SetTextureOffset(offset geometry.Vector2) { h.Texture = offset }
