package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// S6: PolygonVertexIndex=[0,1,~2, 2,3,~0] yields counts [3,3], indices [0,1,2, 2,3,0].
func TestScenarioS6(t *testing.T) {
	raw := []int32{0, 1, ^int32(2), 2, 3, ^int32(0)}
	counts, indices := DecodePolygonVertexIndex(raw)
	assert.Equal(t, []int32{3, 3}, counts)
	assert.Equal(t, []int32{0, 1, 2, 2, 3, 0}, indices)
}

// Invariant 3: decode then re-encode reproduces the identical i32 stream.
func TestPolygonVertexIndexSymmetry(t *testing.T) {
	raw := []int32{0, 1, ^int32(2), 2, 3, ^int32(0)}
	counts, indices := DecodePolygonVertexIndex(raw)
	got := EncodePolygonVertexIndex(counts, indices)
	assert.Equal(t, raw, got)
}

// S2: triangle (3 positions, count=3, indices [0,1,2]) wireframe expands to
// [0,1,1,2,2,0].
func TestScenarioS2Wireframe(t *testing.T) {
	assert.Equal(t, []int32{0, 1, 1, 2, 2, 0}, Wireframe([]int32{0, 1, 2}))
}

func TestTriangulateFan(t *testing.T) {
	assert.Equal(t, []int32{0, 1, 2, 0, 2, 3}, Triangulate([]int32{0, 1, 2, 3}))
	assert.Nil(t, Triangulate([]int32{0, 1}))
}

func TestWireframeLine(t *testing.T) {
	assert.Equal(t, []int32{0, 1}, Wireframe([]int32{0, 1}))
}
