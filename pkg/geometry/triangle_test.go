package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	normal := tri.CalculateNormal()
	expected := NewVector3(0, 0, 1)
	if normal != expected {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, normal)
	}
}

func TestTriangleTranslate(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	moved := tri.Translate(NewVector3(1, 2, 3))
	if moved.V2 != NewVector3(4, 2, 3) {
		t.Errorf("Translate failed: expected %v, got %v", NewVector3(4, 2, 3), moved.V2)
	}
	if moved.Normal != tri.Normal {
		t.Errorf("Translate changed the normal: %v", moved.Normal)
	}
}

func TestBoundingBox(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Fatal("new bounding box should be empty")
	}
	if bbox.Diagonal() != 0 {
		t.Errorf("empty diagonal: expected 0, got %v", bbox.Diagonal())
	}

	bbox.Extend(NewVector3(-1, -2, -2))
	bbox.Extend(NewVector3(1, 2, 2))

	if bbox.Center() != (Vector3{}) {
		t.Errorf("Center failed: expected origin, got %v", bbox.Center())
	}
	if math.Abs(bbox.Diagonal()-6) > 1e-10 {
		t.Errorf("Diagonal failed: expected 6, got %v", bbox.Diagonal())
	}
}
