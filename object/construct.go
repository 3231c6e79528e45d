package object

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/g3n/fbxkit/diagnostic"
	"github.com/g3n/fbxkit/fbxerr"
	"github.com/g3n/fbxkit/geometry"
	"github.com/g3n/fbxkit/node"
	"github.com/g3n/fbxkit/tokens"
	"github.com/g3n/fbxkit/transform"
)

// Resolver looks up an already-allocated Object by id, for components (like
// BindPose) whose node data references another object by id rather than
// through a Connections entry.
type Resolver func(id int64) Object

// p70Values returns the value properties (index 4 onward) of the
// Properties70/P entry named propName, or nil if absent.
func p70Values(n *node.Node, propName string) []float64 {
	p70 := n.FindChild(tokens.Properties70)
	if p70 == nil {
		return nil
	}
	for _, p := range p70.FindChildren(tokens.P) {
		if len(p.Properties) == 0 {
			continue
		}
		name, ok := p.Properties[0].String_()
		if !ok || name != propName {
			continue
		}
		var out []float64
		for i := 4; i < len(p.Properties); i++ {
			if v, ok := p.Properties[i].AsFloat64(); ok {
				out = append(out, v)
			}
		}
		return out
	}
	return nil
}

func p70Vec3(n *node.Node, propName string, def mgl32.Vec3) mgl32.Vec3 {
	vs := p70Values(n, propName)
	if len(vs) < 3 {
		return def
	}
	return mgl32.Vec3{float32(vs[0]), float32(vs[1]), float32(vs[2])}
}

func p70Float(n *node.Node, propName string, def float64) float64 {
	vs := p70Values(n, propName)
	if len(vs) < 1 {
		return def
	}
	return vs[0]
}

// ConstructObject pulls o's typed fields from its source Node, per the
// (class, subclass) table in the container protocol. diag records
// recoverable anomalies (bad ids, type mismatches); resolve looks up other
// objects already allocated in the same Document, by id.
func ConstructObject(o Object, resolve Resolver, diag *diagnostic.Sink) {
	n := o.Node()
	if n == nil {
		return
	}
	switch v := o.(type) {
	case *Model:
		constructModel(v, n)
	case *NodeAttribute:
		constructNodeAttribute(v, n)
	case *GeomMesh:
		constructGeomMesh(v, n, diag)
	case *Shape:
		constructShape(v, n)
	case *Cluster:
		constructCluster(v, n)
	case *BlendShapeChannel:
		constructBlendShapeChannel(v, n)
	case *BindPose:
		constructBindPose(v, n, resolve, diag)
	case *AnimationCurve:
		constructAnimationCurve(v, n)
	case *AnimationCurveNode:
		constructAnimationCurveNode(v)
	case *AnimationStack:
		constructAnimationStack(v, n)
	}
}

func constructModel(m *Model, n *node.Node) {
	m.Visibility = p70Float(n, tokens.PropVisibility, 1) != 0
	m.RotationOrder = transform.RotationOrderFromFBX(int(p70Float(n, tokens.PropRotationOrder, 0)))
	m.Position = p70Vec3(n, tokens.PropLclTranslation, mgl32.Vec3{})
	m.PreRotation = p70Vec3(n, tokens.PropPreRotation, mgl32.Vec3{})
	m.Rotation = p70Vec3(n, tokens.PropLclRotation, mgl32.Vec3{})
	m.PostRotation = p70Vec3(n, tokens.PropPostRotation, mgl32.Vec3{})
	m.Scale = p70Vec3(n, tokens.PropLclScaling, mgl32.Vec3{1, 1, 1})
	m.invalidate()
}

func constructNodeAttribute(a *NodeAttribute, n *node.Node) {
	a.FocalLength = float32(p70Float(n, tokens.FocalLength, 0))
}

func constructGeomMesh(g *GeomMesh, n *node.Node, diag *diagnostic.Sink) {
	if vtx := n.FindChild(tokens.Vertices); vtx != nil && len(vtx.Properties) > 0 {
		if arr, ok := vtx.Properties[0].Float64Slice(); ok {
			g.Points = make([]mgl32.Vec3, len(arr)/3)
			for i := range g.Points {
				g.Points[i] = mgl32.Vec3{float32(arr[3*i]), float32(arr[3*i+1]), float32(arr[3*i+2])}
			}
		}
	}
	if pvi := n.FindChild(tokens.PolygonVertexIndex); pvi != nil && len(pvi.Properties) > 0 {
		if arr, ok := pvi.Properties[0].Int32Slice(); ok {
			g.Counts, g.Indices = geometry.DecodePolygonVertexIndex(arr)
		}
	}
	polyVertexCount := len(g.Indices)

	for _, ln := range n.FindChildren(tokens.LayerElementNormal) {
		g.Layers = append(g.Layers, parseLayer(ln, tokens.Normals, tokens.NormalsIndex, 3, polyVertexCount, len(g.Points), diag))
	}
	for _, ln := range n.FindChildren(tokens.LayerElementUV) {
		g.Layers = append(g.Layers, parseLayer(ln, tokens.UV, tokens.UVIndex, 2, polyVertexCount, len(g.Points), diag))
	}
	for _, ln := range n.FindChildren(tokens.LayerElementColor) {
		g.Layers = append(g.Layers, parseLayer(ln, tokens.Colors, tokens.ColorIndex, 4, polyVertexCount, len(g.Points), diag))
	}
}

func parseLayer(ln *node.Node, dataName, indexName string, tupleSize, polyVertexCount, controlPointCount int, diag *diagnostic.Sink) geometry.Layer {
	layer := geometry.Layer{Name: ln.Name, TupleSize: tupleSize}
	if d := ln.FindChild(dataName); d != nil && len(d.Properties) > 0 {
		if arr, ok := d.Properties[0].Float64Slice(); ok {
			layer.Data = make([]float32, len(arr))
			for i, x := range arr {
				layer.Data[i] = float32(x)
			}
		}
	}
	if idx := ln.FindChild(indexName); idx != nil && len(idx.Properties) > 0 {
		if arr, ok := idx.Properties[0].Int32Slice(); ok {
			layer.Indices = arr
		}
	}
	dataTuples := len(layer.Data) / tupleSize
	layer.Mapping = geometry.ChooseMapping(dataTuples, len(layer.Indices), polyVertexCount, controlPointCount)
	layer.Reference = geometry.ChooseReference(len(layer.Indices))
	_ = diag
	return layer
}

func constructShape(s *Shape, n *node.Node) {
	if idx := n.FindChild(tokens.Indexes); idx != nil && len(idx.Properties) > 0 {
		if arr, ok := idx.Properties[0].Int32Slice(); ok {
			s.Indices = arr
		}
	}
	if vtx := n.FindChild(tokens.Vertices); vtx != nil && len(vtx.Properties) > 0 {
		if arr, ok := vtx.Properties[0].Float64Slice(); ok {
			s.DeltaPoints = make([]mgl32.Vec3, len(arr)/3)
			for i := range s.DeltaPoints {
				s.DeltaPoints[i] = mgl32.Vec3{float32(arr[3*i]), float32(arr[3*i+1]), float32(arr[3*i+2])}
			}
		}
	}
	if nrm := n.FindChild(tokens.Normals); nrm != nil && len(nrm.Properties) > 0 {
		if arr, ok := nrm.Properties[0].Float64Slice(); ok {
			s.DeltaNormals = make([]mgl32.Vec3, len(arr)/3)
			for i := range s.DeltaNormals {
				s.DeltaNormals[i] = mgl32.Vec3{float32(arr[3*i]), float32(arr[3*i+1]), float32(arr[3*i+2])}
			}
		}
	}
}

func mat4From(values []float64) mgl32.Mat4 {
	var m mgl32.Mat4
	if len(values) < 16 {
		return mgl32.Ident4()
	}
	for i := 0; i < 16; i++ {
		m[i] = float32(values[i])
	}
	return m
}

func constructCluster(c *Cluster, n *node.Node) {
	if idx := n.FindChild(tokens.Indexes); idx != nil && len(idx.Properties) > 0 {
		if arr, ok := idx.Properties[0].Int32Slice(); ok {
			c.Indices = arr
		}
	}
	if w := n.FindChild(tokens.Weights); w != nil && len(w.Properties) > 0 {
		if arr, ok := w.Properties[0].Float64Slice(); ok {
			c.WeightsArr = make([]float32, len(arr))
			for i, x := range arr {
				c.WeightsArr[i] = float32(x)
			}
		}
	}
	c.TransformMat = mgl32.Ident4()
	c.TransformLink = mgl32.Ident4()
	if t := n.FindChild(tokens.Transform); t != nil && len(t.Properties) > 0 {
		if arr, ok := t.Properties[0].Float64Slice(); ok {
			c.TransformMat = mat4From(arr)
		}
	}
	if t := n.FindChild(tokens.TransformLink); t != nil && len(t.Properties) > 0 {
		if arr, ok := t.Properties[0].Float64Slice(); ok {
			c.TransformLink = mat4From(arr)
		}
	}
}

func constructBlendShapeChannel(c *BlendShapeChannel, n *node.Node) {
	if fw := n.FindChild(tokens.FullWeights); fw != nil && len(fw.Properties) > 0 {
		if arr, ok := fw.Properties[0].Float64Slice(); ok && len(arr) == len(c.ShapeData) {
			for i := range c.ShapeData {
				c.ShapeData[i].FullWeight = float32(arr[i])
			}
		}
	}
}

func constructBindPose(p *BindPose, n *node.Node, resolve Resolver, diag *diagnostic.Sink) {
	for _, pn := range n.FindChildren(tokens.PoseNode) {
		var id int64
		if idNode := pn.FindChild(tokens.Node); idNode != nil && len(idNode.Properties) > 0 {
			id, _ = idNode.Properties[0].Int64()
		}
		var mat mgl32.Mat4 = mgl32.Ident4()
		if matNode := pn.FindChild(tokens.Matrix); matNode != nil && len(matNode.Properties) > 0 {
			if arr, ok := matNode.Properties[0].Float64Slice(); ok {
				mat = mat4From(arr)
			}
		}
		obj := resolve(id)
		joint, ok := obj.(*Model)
		if !ok {
			log.Warnf("BindPose %q: non-Model joint object id %d", p.Name(), id)
			diag.Warn(fbxerr.BadConnection, "BindPose: non-Model joint object")
			continue
		}
		p.PoseData = append(p.PoseData, PoseEntry{Joint: joint, Matrix: mat})
	}
}

func constructAnimationCurve(c *AnimationCurve, n *node.Node) {
	if kt := n.FindChild(tokens.KeyTime); kt != nil && len(kt.Properties) > 0 {
		if arr, ok := kt.Properties[0].Int64Slice(); ok {
			c.Times = make([]float32, len(arr))
			for i, t := range arr {
				c.Times[i] = float32(t) / float32(tokens.TicksPerSecond)
			}
		}
	}
	if kv := n.FindChild(tokens.KeyValueFloat); kv != nil && len(kv.Properties) > 0 {
		if arr, ok := kv.Properties[0].Float32Slice(); ok {
			c.Values = arr
		}
	}
	if d := n.FindChild(tokens.Default); d != nil && len(d.Properties) > 0 {
		if v, ok := d.Properties[0].AsFloat64(); ok {
			c.Default = float32(v)
		}
	}
}

// animationKindByObjectName mirrors the reference implementation's
// AnimationKindData table, keyed by the curve node's own display name ("T",
// "R", "S", "DeformPercent", "FocalLength").
func animationKindByObjectName(name string) AnimationKind {
	switch name {
	case "T":
		return KindPosition
	case "R":
		return KindRotation
	case "S":
		return KindScale
	case "DeformPercent":
		return KindDeformWeight
	case "FocalLength":
		return KindFocalLength
	default:
		return KindUnknown
	}
}

func constructAnimationCurveNode(cn *AnimationCurveNode) {
	cn.Kind = animationKindByObjectName(cn.Name())
}

func constructAnimationStack(s *AnimationStack, n *node.Node) {
	s.LocalStart = float32(p70Float(n, "LocalStart", 0)) / float32(tokens.TicksPerSecond)
	s.LocalStop = float32(p70Float(n, "LocalStop", 0)) / float32(tokens.TicksPerSecond)
	s.ReferenceStart = float32(p70Float(n, "ReferenceStart", 0)) / float32(tokens.TicksPerSecond)
	s.ReferenceStop = float32(p70Float(n, "ReferenceStop", 0)) / float32(tokens.TicksPerSecond)
}
