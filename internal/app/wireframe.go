package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goorbit/pkg/geometry"
)

type edgeKey [2]geometry.Vector3

func makeEdgeKey(a, b geometry.Vector3) edgeKey {
	if a.X > b.X || (a.X == b.X && (a.Y > b.Y || (a.Y == b.Y && a.Z > b.Z))) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// drawWireframe draws every model edge once, rotated like the filled mesh
func (app *App) drawWireframe() {
	wireframeColor := rl.NewColor(100, 100, 100, 200)
	rotation := geometry.QuaternionFromEuler(app.Model.rotation)
	drawn := make(map[edgeKey]bool)

	for _, triangle := range app.Model.model.Triangles {
		vertices := [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for i := range vertices {
			a, b := vertices[i], vertices[(i+1)%3]
			key := makeEdgeKey(a, b)
			if drawn[key] {
				continue
			}
			drawn[key] = true

			rl.DrawLine3D(toRaylib(a.ApplyQuaternion(rotation)), toRaylib(b.ApplyQuaternion(rotation)), wireframeColor)
		}
	}
}
