package meshing

import (
	"github.com/go-gl/mathgl/mgl64"

	"terramesh/internal/profiling"
	"terramesh/internal/terrain"
)

// Mesh is a triangulated height-field surface. Vertices are stored row-major
// (index = row*cols + col); faces index into that flat vertex array. The edge
// list is reserved for future use and stays empty. A mesh is read-only after
// Build returns it.
type Mesh struct {
	Resolution terrain.Resolution
	Vertices   []mgl64.Vec3
	Edges      [][2]uint32
	Faces      [][3]uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// Build triangulates a height grid. Each cell (row, col) becomes the vertex
// (row, col, elevation); every 2x2 cell block emits two triangles,
// (topLeft, topRight, bottomLeft) and (topRight, bottomRight, bottomLeft),
// for 2*(rows-1)*(cols-1) faces in total. Grids narrower than 2 in either
// dimension yield a mesh with vertices but no faces.
func Build(grid *terrain.Grid) *Mesh {
	defer profiling.Track("meshing.Build")()
	res := grid.Resolution()
	m := &Mesh{
		Resolution: res,
		Vertices:   make([]mgl64.Vec3, 0, res.CellCount()),
	}
	for row := 0; row < res.Rows; row++ {
		for col := 0; col < res.Cols; col++ {
			m.Vertices = append(m.Vertices, mgl64.Vec3{float64(row), float64(col), grid.At(row, col)})
		}
	}
	if res.Rows < 2 || res.Cols < 2 {
		return m
	}
	m.Faces = make([][3]uint32, 0, 2*(res.Rows-1)*(res.Cols-1))
	for row := 0; row < res.Rows-1; row++ {
		for col := 0; col < res.Cols-1; col++ {
			topLeft := uint32(row*res.Cols + col)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(res.Cols)
			bottomRight := bottomLeft + 1
			m.Faces = append(m.Faces,
				[3]uint32{topLeft, topRight, bottomLeft},
				[3]uint32{topRight, bottomRight, bottomLeft},
			)
		}
	}
	return m
}
