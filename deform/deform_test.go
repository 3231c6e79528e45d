package deform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g3n/fbxkit/diagnostic"
	"github.com/g3n/fbxkit/object"
)

func buildScenarioS3(t *testing.T) *object.Skin {
	t.Helper()
	mesh := object.Create("Geometry", "Mesh").(*object.GeomMesh)
	mesh.Points = make([]mgl32.Vec3, 3)

	skin := object.Create("Deformer", "Skin").(*object.Skin)
	object.Connect(mesh, skin)

	c0 := object.Create("Deformer", "Cluster").(*object.Cluster)
	c0.Indices = []int32{0}
	c0.WeightsArr = []float32{1.0}
	c0.TransformMat = mgl32.Ident4()
	c0.TransformLink = mgl32.Ident4()

	c1 := object.Create("Deformer", "Cluster").(*object.Cluster)
	c1.Indices = []int32{1, 2}
	c1.WeightsArr = []float32{0.7, 0.3}
	c1.TransformMat = mgl32.Ident4()
	c1.TransformLink = mgl32.Ident4()

	object.Connect(skin, c0)
	object.Connect(skin, c1)

	joint0 := object.Create("Model", "LimbNode").(*object.Model)
	joint0.SetName("joint0")
	joint1 := object.Create("Model", "LimbNode").(*object.Model)
	joint1.SetName("joint1")
	object.Connect(c0, joint0)
	object.Connect(c1, joint1)

	require.Same(t, joint0, c0.Joint())
	require.Same(t, joint1, c1.Joint())
	return skin
}

// Scenario S3.
func TestVariableJointWeightCounts(t *testing.T) {
	skin := buildScenarioS3(t)
	variable := VariableJointWeights(skin, 3)
	require.Len(t, variable, 3)
	assert.Len(t, variable[0], 1)
	assert.Len(t, variable[1], 1)
	assert.Len(t, variable[2], 1)
}

func TestFixedJointWeightsS3(t *testing.T) {
	skin := buildScenarioS3(t)
	fixed := FixedJointWeights(skin, 3, 4, true)
	require.Len(t, fixed, 3)
	for _, infl := range fixed {
		require.Len(t, infl, 4)
		var sum float32
		for _, in := range infl {
			sum += in.Weight
		}
		assert.InDelta(t, 1.0, sum, 1e-5)
	}
}

// Invariant 7, with a vertex genuinely sharing influences across clusters.
func TestFixedJointWeightsNormalizesSharedVertex(t *testing.T) {
	mesh := object.Create("Geometry", "Mesh").(*object.GeomMesh)
	mesh.Points = make([]mgl32.Vec3, 1)
	skin := object.Create("Deformer", "Skin").(*object.Skin)
	object.Connect(mesh, skin)

	c0 := object.Create("Deformer", "Cluster").(*object.Cluster)
	c0.Indices = []int32{0}
	c0.WeightsArr = []float32{0.5}
	c1 := object.Create("Deformer", "Cluster").(*object.Cluster)
	c1.Indices = []int32{0}
	c1.WeightsArr = []float32{0.2}
	object.Connect(skin, c0)
	object.Connect(skin, c1)

	fixed := FixedJointWeights(skin, 1, 4, true)
	var sum float32
	for _, in := range fixed[0] {
		sum += in.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-5)
}

func TestJointMatricesIdentityForBindAtOrigin(t *testing.T) {
	skin := buildScenarioS3(t)
	diag := diagnostic.NewSink()
	mats := JointMatrices(skin, diag)
	require.Len(t, mats, 2)
	assert.True(t, diag.Empty())
	assert.Equal(t, mgl32.Ident4(), mats[0])
}

func TestJointMatricesWarnsOnMissingJoint(t *testing.T) {
	skin := object.Create("Deformer", "Skin").(*object.Skin)
	cluster := object.Create("Deformer", "Cluster").(*object.Cluster)
	object.Connect(skin, cluster)

	diag := diagnostic.NewSink()
	mats := JointMatrices(skin, diag)
	require.Len(t, mats, 1)
	assert.Equal(t, mgl32.Ident4(), mats[0])
	assert.False(t, diag.Empty())
}

// With identity joint matrices each point is scaled by the raw weight of its
// single influence in scenario S3: 1.0, 0.7 and 0.3.
func TestDeformPointsIdentityJointsScaleByWeight(t *testing.T) {
	skin := buildScenarioS3(t)
	src := []mgl32.Vec3{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}
	weights := []float32{1.0, 0.7, 0.3}
	diag := diagnostic.NewSink()
	dst, err := DeformPoints(skin, src, diag)
	require.NoError(t, err)
	for i := range src {
		want := src[i].Mul(weights[i])
		assert.InDelta(t, want.X(), dst[i].X(), 1e-5)
		assert.InDelta(t, want.Y(), dst[i].Y(), 1e-5)
		assert.InDelta(t, want.Z(), dst[i].Z(), 1e-5)
	}
}

func TestDeformPointsCountMismatch(t *testing.T) {
	skin := buildScenarioS3(t)
	diag := diagnostic.NewSink()
	_, err := DeformPoints(skin, []mgl32.Vec3{{}}, diag)
	assert.Error(t, err)
}

func TestChannelDeformPointsScalesByWeight(t *testing.T) {
	s := object.Create("Geometry", "Shape").(*object.Shape)
	s.Indices = []int32{1}
	s.DeltaPoints = []mgl32.Vec3{{0, 1, 0}}

	ch := object.Create("Deformer", "BlendShapeChannel").(*object.BlendShapeChannel)
	ch.Weight = 50
	ch.AddShape(s, 100)

	src := []mgl32.Vec3{{0, 0, 0}, {0, 0, 0}}
	dst := make([]mgl32.Vec3, 2)
	require.NoError(t, ChannelDeformPoints(ch, dst, src))
	assert.InDelta(t, 0.5, dst[1].Y(), 1e-5)
	assert.InDelta(t, 0, dst[0].Y(), 1e-5)
}
