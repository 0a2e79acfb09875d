package geometry

import "math"

// SafeEpsilon keeps the polar angle away from the poles
const SafeEpsilon = 1e-6

// Spherical is a point in spherical coordinates around the origin, Y up.
// Phi is the polar angle from +Y, Theta the azimuth around Y measured from +Z.
type Spherical struct {
	Radius float64
	Phi    float64
	Theta  float64
}

// SphericalFromVector3 converts a Cartesian offset to spherical coordinates
func SphericalFromVector3(v Vector3) Spherical {
	radius := v.Length()
	if radius == 0 {
		return Spherical{}
	}

	return Spherical{
		Radius: radius,
		Theta:  math.Atan2(v.X, v.Z),
		Phi:    math.Acos(clamp(v.Y/radius, -1, 1)),
	}
}

// Vector3 converts back to a Cartesian offset
func (s Spherical) Vector3() Vector3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return Vector3{
		X: sinPhiRadius * math.Sin(s.Theta),
		Y: math.Cos(s.Phi) * s.Radius,
		Z: sinPhiRadius * math.Cos(s.Theta),
	}
}

// MakeSafe clamps Phi to [SafeEpsilon, Pi-SafeEpsilon]
func (s Spherical) MakeSafe() Spherical {
	s.Phi = clamp(s.Phi, SafeEpsilon, math.Pi-SafeEpsilon)
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
