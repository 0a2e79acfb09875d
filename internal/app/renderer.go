package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goorbit/pkg/geometry"
	"github.com/philipparndt/goorbit/pkg/stl"
)

// stlToRaylibMesh converts an STL model to a Raylib mesh with baked lighting
func stlToRaylibMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	texcoords := make([]float32, 0, vertexCount*2)
	colors := make([]uint8, 0, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()
	corners := [3][2]float32{{0, 0}, {1, 0}, {0, 1}}

	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Min 30% ambient, max 100% diffuse
		intensity := math.Max(0.3, -normal.Dot(lightDir))
		r := uint8(200 * intensity * 0.55)
		g := uint8(200 * intensity * 0.6)
		b := uint8(200 * intensity * 0.7)

		for i, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
			texcoords = append(texcoords, corners[i][0], corners[i][1])
			colors = append(colors, r, g, b, 255)
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// modelTransform is the object rotation as a raylib matrix
func (app *App) modelTransform() rl.Matrix {
	return rl.MatrixRotateXYZ(toRaylib(app.Model.rotation))
}

// drawModel draws the filled mesh and the wireframe with the current rotation
func (app *App) drawModel() {
	if app.View.showFilled {
		rl.DrawMesh(app.Model.mesh, app.Model.material, app.modelTransform())
	}
	if app.View.showWireframe {
		app.drawWireframe()
	}
}
