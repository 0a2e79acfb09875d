package control

import "github.com/philipparndt/goorbit/pkg/geometry"

// Scene is the renderable the controller animates. Implementations own the camera, the
// displayed object and its material; the controller only reads and writes these values.
type Scene interface {
	CameraPosition() geometry.Vector3
	SetCameraPosition(position geometry.Vector3)
	// LookAt points the camera at target
	LookAt(target geometry.Vector3)

	// ObjectRotation is the Euler rotation of the displayed object in radians
	ObjectRotation() geometry.Vector3
	SetObjectRotation(rotation geometry.Vector3)

	TextureOffset() geometry.Vector2
	SetTextureOffset(offset geometry.Vector2)
}
