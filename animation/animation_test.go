package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g3n/fbxkit/diagnostic"
	"github.com/g3n/fbxkit/document"
	"github.com/g3n/fbxkit/object"
)

func curveNode(t *testing.T, kind object.AnimationKind, target object.Object, prop string, times, values []float32) *object.AnimationCurveNode {
	t.Helper()
	cn := object.Create("AnimationCurveNode", "").(*object.AnimationCurveNode)
	cn.Kind = kind
	c := object.Create("AnimationCurve", "").(*object.AnimationCurve)
	c.Times = times
	c.Values = values
	object.Connect(cn, c)
	cn.SetTarget(target, prop)
	return cn
}

// Scenario S4: times=[0,1], values=[10,20] — before-first clamps, interior
// interpolates, after-last clamps.
func TestScalarCurveBoundaries(t *testing.T) {
	c := object.Create("AnimationCurve", "").(*object.AnimationCurve)
	c.Times = []float32{0, 1}
	c.Values = []float32{10, 20}

	assert.Equal(t, float32(10), c.Evaluate(-1))
	assert.Equal(t, float32(15), c.Evaluate(0.5))
	assert.Equal(t, float32(20), c.Evaluate(2))
}

func TestApplyCurveNodePosition(t *testing.T) {
	m := object.Create("Model", "Null").(*object.Model)
	cn := curveNode(t, object.KindPosition, m, "Lcl Translation", nil, nil)
	cn.Curves()[0].Times = []float32{0, 1}
	cn.Curves()[0].Values = []float32{0, 2}

	cx := object.Create("AnimationCurve", "").(*object.AnimationCurve)
	cx.Times, cx.Values = []float32{0, 1}, []float32{0, 4}
	object.Connect(cn, cx)
	cy := object.Create("AnimationCurve", "").(*object.AnimationCurve)
	cy.Times, cy.Values = []float32{0, 1}, []float32{0, 6}
	object.Connect(cn, cy)

	diag := diagnostic.NewSink()
	ApplyCurveNode(cn, 0.5, diag)
	assert.True(t, diag.Empty())
	assert.InDelta(t, 1, m.Position.X(), 1e-5)
	assert.InDelta(t, 2, m.Position.Y(), 1e-5)
	assert.InDelta(t, 3, m.Position.Z(), 1e-5)
}

func TestApplyCurveNodeDeformWeight(t *testing.T) {
	ch := object.Create("Deformer", "BlendShapeChannel").(*object.BlendShapeChannel)
	cn := curveNode(t, object.KindDeformWeight, ch, "DeformPercent", []float32{0, 1}, []float32{0, 100})

	diag := diagnostic.NewSink()
	ApplyCurveNode(cn, 1, diag)
	assert.True(t, diag.Empty())
	assert.Equal(t, float32(100), ch.Weight)
}

func TestApplyCurveNodeFocalLengthOnAttribute(t *testing.T) {
	attr := object.Create("NodeAttribute", "Camera").(*object.NodeAttribute)
	cn := curveNode(t, object.KindFocalLength, attr, "FocalLength", []float32{0, 1}, []float32{35, 50})

	diag := diagnostic.NewSink()
	ApplyCurveNode(cn, 1, diag)
	assert.True(t, diag.Empty())
	assert.Equal(t, float32(50), attr.FocalLength)
}

func TestApplyCurveNodeFocalLengthOnCameraModel(t *testing.T) {
	m := object.Create("Model", "Camera").(*object.Model)
	attr := object.Create("NodeAttribute", "Camera").(*object.NodeAttribute)
	object.Connect(m, attr)
	cn := curveNode(t, object.KindFocalLength, m, "FocalLength", []float32{0, 1}, []float32{35, 50})

	diag := diagnostic.NewSink()
	ApplyCurveNode(cn, 0, diag)
	assert.True(t, diag.Empty())
	assert.Equal(t, float32(35), attr.FocalLength)
}

func TestApplyCurveNodeMissingTargetWarns(t *testing.T) {
	cn := object.Create("AnimationCurveNode", "").(*object.AnimationCurveNode)
	cn.Kind = object.KindPosition

	diag := diagnostic.NewSink()
	ApplyCurveNode(cn, 0, diag)
	assert.False(t, diag.Empty())
}

func TestApplyCurveNodeTypeMismatchWarns(t *testing.T) {
	wrongTarget := object.Create("Geometry", "Mesh").(*object.GeomMesh)
	cn := curveNode(t, object.KindPosition, wrongTarget, "Lcl Translation", []float32{0}, []float32{1})

	diag := diagnostic.NewSink()
	ApplyCurveNode(cn, 0, diag)
	assert.False(t, diag.Empty())
}

func TestApplyStackAppliesEveryCurveNode(t *testing.T) {
	stack := object.Create("AnimationStack", "").(*object.AnimationStack)
	layer := object.Create("AnimationLayer", "").(*object.AnimationLayer)
	object.Connect(stack, layer)

	m := object.Create("Model", "Null").(*object.Model)
	cn := curveNode(t, object.KindDeformWeight, m, "", []float32{0}, []float32{0})
	ch := object.Create("Deformer", "BlendShapeChannel").(*object.BlendShapeChannel)
	cn.SetTarget(ch, "DeformPercent")
	cn.Curves()[0].Times, cn.Curves()[0].Values = []float32{0, 1}, []float32{0, 80}
	object.Connect(layer, cn)

	diag := diagnostic.NewSink()
	ApplyStack(stack, 1, diag)
	assert.True(t, diag.Empty())
	assert.Equal(t, float32(80), ch.Weight)
}

func buildSrcDocWithStack(t *testing.T) (*document.Document, *object.Model) {
	t.Helper()
	src := document.New()
	joint := object.Create("Model", "LimbNode").(*object.Model)
	joint.SetName("joint0")
	src.AddObject(joint)
	object.Connect(src.Root, joint)

	stack := object.Create("AnimationStack", "").(*object.AnimationStack)
	src.AddObject(stack)
	layer := object.Create("AnimationLayer", "").(*object.AnimationLayer)
	src.AddObject(layer)
	object.Connect(stack, layer)

	cn := curveNode(t, object.KindPosition, joint, "Lcl Translation", []float32{0, 1}, []float32{0, 1})
	src.AddObject(cn)
	for _, axisVals := range [][]float32{{0, 2}, {0, 3}} {
		c := object.Create("AnimationCurve", "").(*object.AnimationCurve)
		c.Times, c.Values = []float32{0, 1}, axisVals
		src.AddObject(c)
		object.Connect(cn, c)
	}
	object.Connect(layer, cn)
	src.Stacks = append(src.Stacks, stack)
	return src, joint
}

func TestRemapRetargetsByDisplayName(t *testing.T) {
	src, joint := buildSrcDocWithStack(t)

	dst := document.New()
	dstJoint := object.Create("Model", "LimbNode").(*object.Model)
	dstJoint.SetName(joint.Name())
	dst.AddObject(dstJoint)
	object.Connect(dst.Root, dstJoint)

	require.NoError(t, Remap(dst, src))
	require.Len(t, dst.Stacks, 1)
	assert.Same(t, dst.Stacks[0], dst.CurrentTake)

	diag := diagnostic.NewSink()
	ApplyStack(dst.Stacks[0], 1, diag)
	assert.True(t, diag.Empty())
	assert.InDelta(t, 1, dstJoint.Position.X(), 1e-5)
	assert.InDelta(t, 2, dstJoint.Position.Y(), 1e-5)
	assert.InDelta(t, 3, dstJoint.Position.Z(), 1e-5)
}

func TestRemapFailsAtomicallyOnUnresolvedTarget(t *testing.T) {
	src, _ := buildSrcDocWithStack(t)
	dst := document.New() // no matching joint

	origTarget := src.Stacks[0].Layers()[0].CurveNodes()[0].Target()
	err := Remap(dst, src)
	assert.Error(t, err)
	assert.Empty(t, dst.Stacks)
	assert.Same(t, origTarget, src.Stacks[0].Layers()[0].CurveNodes()[0].Target())
}

func TestRemapRejectsMultiStackSource(t *testing.T) {
	src, _ := buildSrcDocWithStack(t)
	extra := object.Create("AnimationStack", "").(*object.AnimationStack)
	src.AddObject(extra)
	src.Stacks = append(src.Stacks, extra)

	dst := document.New()
	assert.Error(t, Remap(dst, src))
}
