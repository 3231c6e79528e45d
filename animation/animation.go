// Package animation applies sampled curve-node values onto the typed object
// graph (Model transforms, blend-shape channel weights, camera focal
// length) and retargets a single take's curve nodes onto a different
// document's objects by display name.
package animation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/g3n/fbxkit/diagnostic"
	"github.com/g3n/fbxkit/document"
	"github.com/g3n/fbxkit/fbxerr"
	"github.com/g3n/fbxkit/internal/flog"
	"github.com/g3n/fbxkit/object"
)

var log = flog.New("animation", flog.Default)

// ApplyCurveNode samples cn at time t and writes the result onto cn's
// target, dispatching on cn.Kind. A node with no resolved target, or one
// whose target's concrete type does not match its kind, is skipped and
// recorded as a diagnostic rather than treated as fatal.
func ApplyCurveNode(cn *object.AnimationCurveNode, t float32, diag *diagnostic.Sink) {
	target := cn.Target()
	if target == nil {
		log.Warnf("curve node %q: no target", cn.Name())
		diag.Warn(fbxerr.BadConnection, fmt.Sprintf("curve node %q: no target", cn.Name()))
		return
	}

	switch cn.Kind {
	case object.KindPosition:
		applyModelVec3(cn, target, t, diag, func(m *object.Model, v mgl32.Vec3) { m.Position = v })
	case object.KindRotation:
		applyModelVec3(cn, target, t, diag, func(m *object.Model, v mgl32.Vec3) { m.Rotation = v })
	case object.KindScale:
		applyModelVec3(cn, target, t, diag, func(m *object.Model, v mgl32.Vec3) { m.Scale = v })
	case object.KindDeformWeight:
		ch, ok := target.(*object.BlendShapeChannel)
		if !ok {
			diag.Warn(fbxerr.TypeMismatch, fmt.Sprintf("curve node %q: DeformWeight target is %T", cn.Name(), target))
			return
		}
		ch.Weight = cn.EvaluateScalar(t)
	case object.KindFocalLength:
		applyFocalLength(cn, target, t, diag)
	default:
		diag.Warn(fbxerr.TypeMismatch, fmt.Sprintf("curve node %q: unknown animation kind", cn.Name()))
	}
}

// applyModelVec3 evaluates cn's three curves and writes them through set.
// Only a direct Model target is accepted; any other target type is recorded
// as a TypeMismatch diagnostic.
func applyModelVec3(cn *object.AnimationCurveNode, target object.Object, t float32, diag *diagnostic.Sink, set func(*object.Model, mgl32.Vec3)) {
	m, ok := target.(*object.Model)
	if !ok {
		diag.Warn(fbxerr.TypeMismatch, fmt.Sprintf("curve node %q: transform target is %T", cn.Name(), target))
		return
	}
	set(m, cn.EvaluateVector3(t))
	m.Invalidate()
}

// applyFocalLength sets the scalar focal length on a Camera's NodeAttribute,
// accepting either the NodeAttribute directly or the Model that owns it.
// The reference implementation leaves this dispatch as an unfinished todo;
// this completes it.
func applyFocalLength(cn *object.AnimationCurveNode, target object.Object, t float32, diag *diagnostic.Sink) {
	var attr *object.NodeAttribute
	switch v := target.(type) {
	case *object.NodeAttribute:
		attr = v
	case *object.Model:
		attr = v.Attribute()
	}
	if attr == nil {
		diag.Warn(fbxerr.TypeMismatch, fmt.Sprintf("curve node %q: FocalLength target is %T", cn.Name(), target))
		return
	}
	attr.FocalLength = cn.EvaluateScalar(t)
}

// ApplyStack walks every layer and curve node of stack and applies each at
// time t, in construction order.
func ApplyStack(stack *object.AnimationStack, t float32, diag *diagnostic.Sink) {
	for _, layer := range stack.Layers() {
		for _, cn := range layer.CurveNodes() {
			ApplyCurveNode(cn, t, diag)
		}
	}
}

// Remap retargets src's single AnimationStack onto dst's objects, matching
// each curve node's current target by display name (object.DisplayName) and
// re-pointing it at dst's object of the same name, then appends the
// retargeted stack to dst. It fails atomically: every target is resolved
// before any curve node is mutated, so a single unresolved or ambiguous
// target leaves both documents unchanged.
func Remap(dst *document.Document, src *document.Document) error {
	if len(src.Stacks) != 1 {
		return fmt.Errorf("remap: source document has %d animation stacks, want 1: %w", len(src.Stacks), fbxerr.BadConnection)
	}
	stack := src.Stacks[0]

	type retarget struct {
		cn     *object.AnimationCurveNode
		target object.Object
	}
	var plan []retarget
	for _, layer := range stack.Layers() {
		for _, cn := range layer.CurveNodes() {
			old := cn.Target()
			if old == nil {
				return fmt.Errorf("remap: curve node %q has no target: %w", cn.Name(), fbxerr.BadConnection)
			}
			resolved := dst.FindObject(object.DisplayName(old))
			if resolved == nil {
				return fmt.Errorf("remap: no unambiguous match for %q in destination document: %w", object.DisplayName(old), fbxerr.BadConnection)
			}
			plan = append(plan, retarget{cn: cn, target: resolved})
		}
	}

	for _, r := range plan {
		r.cn.SetTarget(r.target, r.cn.TargetProperty)
	}
	dst.Stacks = append(dst.Stacks, stack)
	dst.CurrentTake = stack
	return nil
}
