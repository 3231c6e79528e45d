package object

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/g3n/fbxkit/geometry"
)

// GeomMesh is a polygon mesh: control-point positions, the decoded face
// counts/indices, and zero or more normal/UV/color layers.
type GeomMesh struct {
	Base

	Points  []mgl32.Vec3
	Counts  []int32
	Indices []int32
	Layers  []geometry.Layer
}

// Wireframe returns the edge-index pairs for face i.
func (g *GeomMesh) Wireframe(face int) []int32 {
	idx := g.faceIndices(face)
	return geometry.Wireframe(idx)
}

// Triangulate fan-expands face i into triangle index triples.
func (g *GeomMesh) Triangulate(face int) []int32 {
	idx := g.faceIndices(face)
	return geometry.Triangulate(idx)
}

func (g *GeomMesh) faceIndices(face int) []int32 {
	pos := 0
	for i := 0; i < face; i++ {
		pos += int(g.Counts[i])
	}
	c := int(g.Counts[face])
	return g.Indices[pos : pos+c]
}

// Shape is a sparse blend target: indices into the base mesh's points,
// parallel delta_points, and parallel delta_normals.
type Shape struct {
	Base

	Indices      []int32
	DeltaPoints  []mgl32.Vec3
	DeltaNormals []mgl32.Vec3
}
