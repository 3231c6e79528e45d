package object

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// AnimationKind tags what an AnimationCurveNode drives.
type AnimationKind int

const (
	KindUnknown AnimationKind = iota
	KindPosition
	KindRotation
	KindScale
	KindDeformWeight
	KindFocalLength
)

// AnimationCurve holds two parallel arrays: sample times in seconds and
// their values. Times are assumed sorted and finite, as produced by
// constructObject from the on-disk KeyTime/KeyValueFloat children.
type AnimationCurve struct {
	Base

	Times   []float32
	Values  []float32
	Default float32
}

// Evaluate samples the curve at t: clamped at the boundaries, linearly
// interpolated between keys, and returning Default for an empty curve.
func (c *AnimationCurve) Evaluate(t float32) float32 {
	n := len(c.Times)
	if n == 0 {
		return c.Default
	}
	if t <= c.Times[0] {
		return c.Values[0]
	}
	if t >= c.Times[n-1] {
		return c.Values[n-1]
	}
	i := sort.Search(n, func(i int) bool { return c.Times[i] >= t })
	t0, t1 := c.Times[i-1], c.Times[i]
	v0, v1 := c.Values[i-1], c.Values[i]
	if t1 == t0 {
		return v0
	}
	return v0 + (v1-v0)*(t-t0)/(t1-t0)
}

// AnimationCurveNode owns one curve (scalar kinds) or three curves (vector
// kinds X, Y, Z) and references a target Object plus the FBX property name
// it drives on that target (set via SetTarget once the OP connection that
// names it has been resolved).
type AnimationCurveNode struct {
	Base

	Kind           AnimationKind
	curves         []*AnimationCurve
	target         Object
	TargetProperty string
}

// Curves returns this node's curves in construction order (X, Y, Z for
// vector kinds; a single entry for scalar kinds).
func (n *AnimationCurveNode) Curves() []*AnimationCurve { return n.curves }

// Target returns the Object this curve node drives, or nil before the
// owning OP connection has been resolved.
func (n *AnimationCurveNode) Target() Object { return n.target }

// SetTarget records the OP connection's target and driven property name.
func (n *AnimationCurveNode) SetTarget(target Object, property string) {
	n.target = target
	n.TargetProperty = property
}

func (n *AnimationCurveNode) addChild(v Object) {
	n.Base.addChild(v)
	if c, ok := v.(*AnimationCurve); ok {
		n.curves = append(n.curves, c)
	}
}

// EvaluateScalar samples the sole curve of a scalar-kind node.
func (n *AnimationCurveNode) EvaluateScalar(t float32) float32 {
	if len(n.curves) == 0 {
		return 0
	}
	return n.curves[0].Evaluate(t)
}

// EvaluateVector3 samples the X/Y/Z curves of a vector-kind node, returning
// the zero vector if the curve count is not exactly three.
func (n *AnimationCurveNode) EvaluateVector3(t float32) mgl32.Vec3 {
	if len(n.curves) != 3 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{n.curves[0].Evaluate(t), n.curves[1].Evaluate(t), n.curves[2].Evaluate(t)}
}

// AnimationLayer owns an ordered list of curve nodes.
type AnimationLayer struct {
	Base

	curveNodes []*AnimationCurveNode
}

// CurveNodes returns this layer's curve nodes in construction order.
func (l *AnimationLayer) CurveNodes() []*AnimationCurveNode { return l.curveNodes }

func (l *AnimationLayer) addChild(v Object) {
	l.Base.addChild(v)
	if cn, ok := v.(*AnimationCurveNode); ok {
		l.curveNodes = append(l.curveNodes, cn)
	}
}

// AnimationStack ("take") owns an ordered list of layers and carries the
// local/reference time bounds, in seconds, read from or written to disk as
// ticks (tokens.TicksPerSecond).
type AnimationStack struct {
	Base

	layers []*AnimationLayer

	LocalStart, LocalStop       float32
	ReferenceStart, ReferenceStop float32
}

// Layers returns this stack's layers in construction order.
func (s *AnimationStack) Layers() []*AnimationLayer { return s.layers }

func (s *AnimationStack) addChild(v Object) {
	s.Base.addChild(v)
	if l, ok := v.(*AnimationLayer); ok {
		s.layers = append(s.layers, l)
	}
}
