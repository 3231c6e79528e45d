package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLocalMatrixTranslation(t *testing.T) {
	m := LocalMatrix(OrderXYZ, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	p := TransformPoint(m, mgl32.Vec3{0, 0, 0})
	assert.InDelta(t, 1, p.X(), 1e-5)
	assert.InDelta(t, 2, p.Y(), 1e-5)
	assert.InDelta(t, 3, p.Z(), 1e-5)
}

// S5: position=(1,2,3), rotation=(0,90,0) XYZ order, scale=(1,1,1):
// local*(1,0,0,1) maps to approximately (1,2,2).
func TestScenarioS5(t *testing.T) {
	m := LocalMatrix(OrderXYZ, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 90, 0}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	p := TransformPoint(m, mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 1, p.X(), 1e-3)
	assert.InDelta(t, 2, p.Y(), 1e-3)
	assert.InDelta(t, 2, p.Z(), 1e-3)
}

// Invariant 6: B.global == B.local * A.global.
func TestGlobalComposition(t *testing.T) {
	parentLocal := LocalMatrix(OrderXYZ, mgl32.Vec3{5, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	parentGlobal := parentLocal
	childLocal := LocalMatrix(OrderXYZ, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	childGlobal := GlobalMatrix(childLocal, parentGlobal)

	p := TransformPoint(childGlobal, mgl32.Vec3{0, 0, 0})
	assert.InDelta(t, 5, p.X(), 1e-5)
	assert.InDelta(t, 1, p.Y(), 1e-5)
	assert.InDelta(t, 0, p.Z(), 1e-5)
}
