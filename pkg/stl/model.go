package stl

import (
	"github.com/philipparndt/goorbit/pkg/geometry"
)

// Model is a triangle mesh loaded from an STL file
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// Centered returns a copy of the model moved so its bounding box is centered on the origin
func (m *Model) Centered() *Model {
	offset := m.BoundingBox().Center().Mul(-1)

	centered := &Model{Name: m.Name, Triangles: make([]geometry.Triangle, len(m.Triangles))}
	for i, triangle := range m.Triangles {
		centered.Triangles[i] = triangle.Translate(offset)
	}
	return centered
}

// ViewDistance is the camera distance that frames the whole model: the bounding box diagonal
func (m *Model) ViewDistance() float64 {
	return m.BoundingBox().Diagonal()
}
