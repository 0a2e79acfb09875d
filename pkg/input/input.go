// Package input reduces raw pointer and device-orientation readings to the 2D coordinates the
// orbit controller consumes.
package input

import "github.com/philipparndt/goorbit/pkg/geometry"

const (
	// OrientationGain scales device angles so a tilt covers a pointer-sized range
	OrientationGain = 5.0
	// RestingBeta is the front-back tilt in degrees at which the device counts as centered
	RestingBeta = 45.0
)

// Pointer returns a pointer position in viewport pixels unchanged
func Pointer(x, y float64) geometry.Vector2 {
	return geometry.Vector2{X: x, Y: y}
}

// DeviceOrientation maps device orientation angles in degrees (alpha around the z axis, beta
// front-back tilt, gamma left-right tilt) into pointer space.
func DeviceOrientation(alpha, beta, gamma float64) geometry.Vector2 {
	return geometry.Vector2{
		X: alpha + gamma*OrientationGain,
		Y: (beta - RestingBeta) * OrientationGain,
	}
}

// Sink receives orbit destinations
type Sink interface {
	SetOrbitDestination(x, y float64)
}

// Feed forwards v to sink
func Feed(sink Sink, v geometry.Vector2) {
	sink.SetOrbitDestination(v.X, v.Y)
}
