package object

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/g3n/fbxkit/geometry"
	"github.com/g3n/fbxkit/node"
	"github.com/g3n/fbxkit/property"
	"github.com/g3n/fbxkit/tokens"
)

// ClassName returns the on-disk class token for o, the first half of the
// (class, subclass) dispatch pair.
func ClassName(o Object) string {
	switch o.Class() {
	case ClassNodeAttribute:
		return tokens.ClassNodeAttribute
	case ClassModel:
		return tokens.ClassModel
	case ClassGeometry:
		return tokens.ClassGeometry
	case ClassDeformer:
		return tokens.ClassDeformer
	case ClassPose:
		return tokens.ClassPose
	case ClassMaterial:
		return tokens.ClassMaterial
	case ClassAnimationStack:
		return tokens.ClassAnimationStack
	case ClassAnimationLayer:
		return tokens.ClassAnimationLayer
	case ClassAnimationCurveNode:
		return tokens.ClassAnimationCurveNode
	case ClassAnimationCurve:
		return tokens.ClassAnimationCurve
	default:
		return ""
	}
}

// SubClassName returns the on-disk subclass token for o, or "" when the
// object has no meaningful subclass tag.
func SubClassName(o Object) string {
	switch o.SubClass() {
	case SubClassNull:
		return tokens.SubClassNull
	case SubClassRoot:
		return tokens.SubClassRoot
	case SubClassLimbNode:
		return tokens.SubClassLimbNode
	case SubClassMesh:
		return tokens.SubClassMesh
	case SubClassLight:
		return tokens.SubClassLight
	case SubClassCamera:
		return tokens.SubClassCamera
	case SubClassShape:
		return tokens.SubClassShape
	case SubClassSkin:
		return tokens.SubClassSkin
	case SubClassCluster:
		return tokens.SubClassCluster
	case SubClassBlendShape:
		return tokens.SubClassBlendShape
	case SubClassBlendShapeChannel:
		return tokens.SubClassBlendShapeChannel
	case SubClassBindPose:
		return tokens.SubClassBindPose
	default:
		return ""
	}
}

// DisplayName packs name and class per §6: "<name>\x00\x01<class>".
func DisplayName(o Object) string {
	return o.Name() + tokens.DisplayNameSeparator + ClassName(o)
}

// AnimationStopBugCompat mirrors the source's stop = min(start, stopTime)
// typo in AnimationStack.constructNodes instead of the evidently-intended
// max, when set. Off by default; see §9 — a source bug like this gets
// mirrored only behind an explicit compatibility switch, never silently.
var AnimationStopBugCompat = false

// addP70 appends one Properties70/P entry with the four-field header
// (name, type, flags, flags) followed by the value properties.
func addP70(p70 *node.Node, name, typ string, values ...property.Value) {
	props := append([]property.Value{property.NewString(name), property.NewString(typ), property.NewString(""), property.NewString("")}, values...)
	p70.CreateChild(tokens.P, props...)
}

// ConstructNodes projects o's typed fields back onto its (freshly created or
// reused) source Node, the inverse of ConstructObject.
func ConstructNodes(o Object) {
	n := o.Node()
	if n == nil {
		return
	}
	switch v := o.(type) {
	case *Model:
		nodesModel(v, n)
	case *NodeAttribute:
		nodesNodeAttribute(v, n)
	case *GeomMesh:
		nodesGeomMesh(v, n)
	case *Shape:
		nodesShape(v, n)
	case *Cluster:
		nodesCluster(v, n)
	case *BlendShapeChannel:
		nodesBlendShapeChannel(v, n)
	case *BindPose:
		nodesBindPose(v, n)
	case *AnimationCurve:
		nodesAnimationCurve(v, n)
	case *AnimationStack:
		nodesAnimationStack(v, n)
	}
}

func nodesModel(m *Model, n *node.Node) {
	p70 := n.CreateChild(tokens.Properties70)
	addP70(p70, tokens.PropVisibility, "Visibility", property.NewFloat64(boolToFloat(m.Visibility)))
	addP70(p70, tokens.PropRotationOrder, "enum", property.NewInt32(int32(m.RotationOrder)))
	addP70(p70, tokens.PropLclTranslation, "Lcl Translation", vec3Props(m.Position)...)
	addP70(p70, tokens.PropPreRotation, "Vector3D", vec3Props(m.PreRotation)...)
	addP70(p70, tokens.PropLclRotation, "Lcl Rotation", vec3Props(m.Rotation)...)
	addP70(p70, tokens.PropPostRotation, "Vector3D", vec3Props(m.PostRotation)...)
	addP70(p70, tokens.PropLclScaling, "Lcl Scaling", vec3Props(m.Scale)...)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func vec3Props(v mgl32.Vec3) []property.Value {
	return []property.Value{
		property.NewFloat64(float64(v.X())),
		property.NewFloat64(float64(v.Y())),
		property.NewFloat64(float64(v.Z())),
	}
}

func nodesNodeAttribute(a *NodeAttribute, n *node.Node) {
	if a.FocalLength == 0 {
		return
	}
	p70 := n.CreateChild(tokens.Properties70)
	addP70(p70, tokens.FocalLength, "Number", property.NewFloat64(float64(a.FocalLength)))
}

func vec3ToF64Array(vs []mgl32.Vec3) []float64 {
	out := make([]float64, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, float64(v.X()), float64(v.Y()), float64(v.Z()))
	}
	return out
}

func nodesGeomMesh(g *GeomMesh, n *node.Node) {
	n.CreateChild(tokens.Vertices, property.NewFloat64Array(vec3ToF64Array(g.Points)))
	raw := geometry.EncodePolygonVertexIndex(g.Counts, g.Indices)
	n.CreateChild(tokens.PolygonVertexIndex, property.NewInt32Array(raw))

	polyVertexCount := len(g.Indices)
	for _, layer := range g.Layers {
		writeLayer(n, layer, polyVertexCount, len(g.Points))
	}
}

func writeLayer(n *node.Node, layer geometry.Layer, polyVertexCount, controlPointCount int) {
	var parentName, dataName, indexName string
	switch layer.TupleSize {
	case 3:
		parentName, dataName, indexName = tokens.LayerElementNormal, tokens.Normals, tokens.NormalsIndex
	case 2:
		parentName, dataName, indexName = tokens.LayerElementUV, tokens.UV, tokens.UVIndex
	case 4:
		parentName, dataName, indexName = tokens.LayerElementColor, tokens.Colors, tokens.ColorIndex
	default:
		return
	}
	ln := n.CreateChild(parentName, property.NewString(layer.Name))
	f64 := make([]float64, len(layer.Data))
	for i, x := range layer.Data {
		f64[i] = float64(x)
	}
	ln.CreateChild(dataName, property.NewFloat64Array(f64))

	mapping := geometry.ChooseMapping(len(layer.Data)/maxInt(layer.TupleSize, 1), len(layer.Indices), polyVertexCount, controlPointCount)
	mappingName := tokens.MappingByPolygonVertex
	if mapping == geometry.ByControlPoint {
		mappingName = tokens.MappingByControlPoint
	}
	ln.CreateChild(tokens.MappingInformationType, property.NewString(mappingName))

	if len(layer.Indices) > 0 {
		ln.CreateChild(indexName, property.NewInt32Array(layer.Indices))
		ln.CreateChild(tokens.ReferenceInformationType, property.NewString(tokens.ReferenceIndexToDirect))
	} else {
		ln.CreateChild(tokens.ReferenceInformationType, property.NewString(tokens.ReferenceDirect))
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func nodesShape(s *Shape, n *node.Node) {
	n.CreateChild(tokens.Indexes, property.NewInt32Array(s.Indices))
	n.CreateChild(tokens.Vertices, property.NewFloat64Array(vec3ToF64Array(s.DeltaPoints)))
	n.CreateChild(tokens.Normals, property.NewFloat64Array(vec3ToF64Array(s.DeltaNormals)))
}

func mat4ToF64(m mgl32.Mat4) []float64 {
	out := make([]float64, 16)
	for i := 0; i < 16; i++ {
		out[i] = float64(m[i])
	}
	return out
}

func nodesCluster(c *Cluster, n *node.Node) {
	if len(c.Indices) > 0 {
		n.CreateChild(tokens.Indexes, property.NewInt32Array(c.Indices))
	}
	if len(c.WeightsArr) > 0 {
		f64 := make([]float64, len(c.WeightsArr))
		for i, w := range c.WeightsArr {
			f64[i] = float64(w)
		}
		n.CreateChild(tokens.Weights, property.NewFloat64Array(f64))
	}
	if c.TransformMat != mgl32.Ident4() {
		n.CreateChild(tokens.Transform, property.NewFloat64Array(mat4ToF64(c.TransformMat)))
	}
	if c.TransformLink != mgl32.Ident4() {
		n.CreateChild(tokens.TransformLink, property.NewFloat64Array(mat4ToF64(c.TransformLink)))
	}
}

func nodesBlendShapeChannel(c *BlendShapeChannel, n *node.Node) {
	n.CreateChild(tokens.DeformPercent, property.NewFloat64(float64(c.Weight)))
	if len(c.ShapeData) == 0 {
		return
	}
	weights := make([]float64, len(c.ShapeData))
	for i, sd := range c.ShapeData {
		weights[i] = float64(sd.FullWeight)
	}
	n.CreateChild(tokens.FullWeights, property.NewFloat64Array(weights))
}

func nodesBindPose(p *BindPose, n *node.Node) {
	for _, pd := range p.PoseData {
		pn := n.CreateChild(tokens.PoseNode)
		pn.CreateChild(tokens.Node, property.NewInt64(pd.Joint.ID()))
		pn.CreateChild(tokens.Matrix, property.NewFloat64Array(mat4ToF64(pd.Matrix)))
	}
}

func nodesAnimationCurve(c *AnimationCurve, n *node.Node) {
	ticks := make([]int64, len(c.Times))
	for i, t := range c.Times {
		ticks[i] = int64(t * float32(tokens.TicksPerSecond))
	}
	n.CreateChild(tokens.KeyTime, property.NewInt64Array(ticks))
	n.CreateChild(tokens.KeyValueFloat, property.NewFloat32Array(c.Values))
	n.CreateChild(tokens.Default, property.NewFloat64(float64(c.Default)))
}

// nodesAnimationStack writes the four Properties70 time-span entries as
// KTime ticks. When s's span fields are both zero (never populated by a
// read or by the caller), it derives them from the stack's own curve nodes:
// start as the earliest first-key time, stop as the latest last-key time —
// or, with AnimationStopBugCompat set, by the source's buggy running
// recomputation (stop = min(start, nodeStop) using the just-updated start,
// rather than the evidently-intended max(stop, nodeStop)).
func nodesAnimationStack(s *AnimationStack, n *node.Node) {
	start, stop := s.LocalStart, s.LocalStop
	if start == 0 && stop == 0 {
		start, stop = computeSpan(s)
	}
	p70 := n.CreateChild(tokens.Properties70)
	addP70(p70, "LocalStart", "KTime", property.NewInt64(secondsToTicks(start)))
	addP70(p70, "LocalStop", "KTime", property.NewInt64(secondsToTicks(stop)))
	refStart, refStop := s.ReferenceStart, s.ReferenceStop
	if refStart == 0 && refStop == 0 {
		refStart, refStop = start, stop
	}
	addP70(p70, "ReferenceStart", "KTime", property.NewInt64(secondsToTicks(refStart)))
	addP70(p70, "ReferenceStop", "KTime", property.NewInt64(secondsToTicks(refStop)))
}

func secondsToTicks(t float32) int64 {
	return int64(t * float32(tokens.TicksPerSecond))
}

func computeSpan(s *AnimationStack) (start, stop float32) {
	first := true
	for _, layer := range s.Layers() {
		for _, cn := range layer.CurveNodes() {
			for _, c := range cn.Curves() {
				if len(c.Times) == 0 {
					continue
				}
				nodeStart, nodeStop := c.Times[0], c.Times[len(c.Times)-1]
				if first {
					start, stop = nodeStart, nodeStop
					first = false
					continue
				}
				start = minFloat32(start, nodeStart)
				if AnimationStopBugCompat {
					stop = minFloat32(start, nodeStop)
				} else {
					stop = maxFloat32(stop, nodeStop)
				}
			}
		}
	}
	return start, stop
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// ConstructLinks appends this object's outgoing connections (o as parent) to
// the Connections node: one OO entry per child, plus one OP entry for an
// AnimationCurveNode's recorded target property.
func ConstructLinks(o Object, connections *node.Node) {
	for _, child := range o.Children() {
		connections.CreateChild(tokens.C,
			property.NewString(tokens.ConnOO), property.NewInt64(child.ID()), property.NewInt64(o.ID()))
	}
	if cn, ok := o.(*AnimationCurveNode); ok && cn.target != nil {
		connections.CreateChild(tokens.C,
			property.NewString(tokens.ConnOP), property.NewInt64(cn.ID()), property.NewInt64(cn.target.ID()), property.NewString(cn.TargetProperty))
	}
}
