package geometry

import (
	"math"
	"testing"
)

func TestSphericalRoundTrip(t *testing.T) {
	vectors := []Vector3{
		NewVector3(0, 0, 252),
		NewVector3(10, -20, 30),
		NewVector3(-5, 7, -1),
	}

	for _, v := range vectors {
		s := SphericalFromVector3(v)
		back := s.Vector3()
		if !back.ApproxEqual(v, 1e-9) {
			t.Errorf("round trip failed: expected %v, got %v", v, back)
		}
	}
}

func TestSphericalFromVector3Axes(t *testing.T) {
	s := SphericalFromVector3(NewVector3(0, 0, 10))

	if s.Radius != 10 || s.Theta != 0 || math.Abs(s.Phi-math.Pi/2) > 1e-15 {
		t.Errorf("expected (10, pi/2, 0), got %+v", s)
	}
	if SphericalFromVector3(Vector3{}) != (Spherical{}) {
		t.Error("zero vector should map to zero spherical")
	}
}

func TestSphericalMakeSafeStaysInsideOpenInterval(t *testing.T) {
	for _, phi := range []float64{-1e9, -math.Pi, 0, 1e-12, math.Pi / 3, math.Pi, 4, 1e9} {
		s := Spherical{Radius: 1, Phi: phi}.MakeSafe()
		if s.Phi <= 0 || s.Phi >= math.Pi {
			t.Errorf("MakeSafe(%v) = %v, expected inside (0, pi)", phi, s.Phi)
		}
	}
}

func TestSphericalMakeSafeKeepsInteriorAngle(t *testing.T) {
	s := Spherical{Radius: 2, Phi: 1.2, Theta: 0.4}

	if s.MakeSafe() != s {
		t.Errorf("MakeSafe changed an interior angle: %+v", s.MakeSafe())
	}
}
