// Package geometry implements the polygon mesh lowering described by the
// distilled spec's GeomMesh component: decoding/encoding the
// PolygonVertexIndex run into per-face counts and positive indices, wireframe
// and triangle-fan expansion, and layer mapping/reference-mode selection.
package geometry

// MappingMode is a per-layer attribute mapping mode.
type MappingMode int

const (
	ByPolygonVertex MappingMode = iota
	ByControlPoint
)

// ReferenceMode is a per-layer attribute reference mode.
type ReferenceMode int

const (
	Direct ReferenceMode = iota
	IndexToDirect
)

// Layer is one normal/UV/color attribute stream.
type Layer struct {
	Name      string
	Data      []float32 // flattened per-element tuples (3 for normal, 2 for UV, 4 for color)
	TupleSize int
	Indices   []int32 // empty when Reference is Direct
	Mapping   MappingMode
	Reference ReferenceMode
}

// DecodePolygonVertexIndex reconstructs face counts and positive control
// point indices from the on-disk PolygonVertexIndex run, where the last
// index of each face is bit-inverted (^i, i.e. -i-1 in two's complement).
func DecodePolygonVertexIndex(raw []int32) (counts []int32, indices []int32) {
	indices = make([]int32, len(raw))
	faceStart := 0
	for i, v := range raw {
		if v < 0 {
			real := ^v
			indices[i] = real
			counts = append(counts, int32(i-faceStart+1))
			faceStart = i + 1
		} else {
			indices[i] = v
		}
	}
	return counts, indices
}

// EncodePolygonVertexIndex is the inverse of DecodePolygonVertexIndex: it
// re-inverts the last index of each face given the reconstructed counts.
func EncodePolygonVertexIndex(counts []int32, indices []int32) []int32 {
	raw := make([]int32, len(indices))
	copy(raw, indices)
	pos := 0
	for _, c := range counts {
		last := pos + int(c) - 1
		raw[last] = ^raw[last]
		pos += int(c)
	}
	return raw
}

// Wireframe expands one face's indices into its wireframe edge index pairs:
// a 2-index face is a line segment (one edge, two indices); an n>=3-index
// face closes into n edges.
func Wireframe(face []int32) []int32 {
	n := len(face)
	if n < 2 {
		return nil
	}
	if n == 2 {
		return []int32{face[0], face[1]}
	}
	out := make([]int32, 0, n*2)
	for i := 0; i < n; i++ {
		out = append(out, face[i], face[(i+1)%n])
	}
	return out
}

// Triangulate fan-expands one face's indices into triangle index triples. A
// face with fewer than 3 indices contributes no triangles.
func Triangulate(face []int32) []int32 {
	n := len(face)
	if n < 3 {
		return nil
	}
	out := make([]int32, 0, (n-2)*3)
	for fi := 0; fi < n-2; fi++ {
		out = append(out, face[0], face[1+fi], face[2+fi])
	}
	return out
}

// TriangulateAll triangulates every face described by counts/indices and
// returns the concatenated triangle index stream, mirroring the reference
// implementation's flat Triangulate(counts, indices) helper.
func TriangulateAll(counts []int32, indices []int32) []int32 {
	var out []int32
	pos := 0
	for _, c := range counts {
		out = append(out, Triangulate(indices[pos:pos+int(c)])...)
		pos += int(c)
	}
	return out
}

// ChooseMapping selects a layer's MappingInformationType per the write-path
// rule: ByPolygonVertex if the data or index stream matches the
// polygon-vertex count; ByControlPoint if the (un-indexed) data matches the
// control-point count.
func ChooseMapping(dataTupleCount, indexCount, polygonVertexCount, controlPointCount int) MappingMode {
	if dataTupleCount == polygonVertexCount || indexCount == polygonVertexCount {
		return ByPolygonVertex
	}
	if dataTupleCount == controlPointCount && indexCount == 0 {
		return ByControlPoint
	}
	return ByPolygonVertex
}

// ChooseReference selects Direct vs IndexToDirect based on whether the layer
// carries an indirection array.
func ChooseReference(indexCount int) ReferenceMode {
	if indexCount > 0 {
		return IndexToDirect
	}
	return Direct
}
