package object

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/g3n/fbxkit/transform"
)

// NodeAttribute carries the auxiliary data for a Null/Root/LimbNode/Light/
// Camera Model. For Camera it additionally owns the focal length, which is
// the only attribute field the animation layer targets directly.
type NodeAttribute struct {
	Base

	FocalLength float32
}

// Model is a node in the scene-graph hierarchy: its SubClass distinguishes
// Null/Root/LimbNode/Mesh/Light/Camera/Other, sharing one Go type per the
// tagged-dispatch design note rather than one type per subclass.
type Model struct {
	Base

	Visibility    bool
	RotationOrder transform.RotationOrder
	Position      mgl32.Vec3
	PreRotation   mgl32.Vec3
	Rotation      mgl32.Vec3
	PostRotation  mgl32.Vec3
	Scale         mgl32.Vec3

	attribute *NodeAttribute
	materials []*Material
	dirty     bool
	cachedLoc mgl32.Mat4
}

func newModel() *Model {
	return &Model{Visibility: true, Scale: mgl32.Vec3{1, 1, 1}, dirty: true}
}

// Attribute returns this Model's auto-created NodeAttribute child, if any.
func (m *Model) Attribute() *NodeAttribute { return m.attribute }

// Materials returns the Materials attached to a Mesh Model.
func (m *Model) Materials() []*Material { return m.materials }

// Mesh returns this Model's GeomMesh child, if any.
func (m *Model) Mesh() *GeomMesh {
	for _, c := range m.children {
		if gm, ok := c.(*GeomMesh); ok {
			return gm
		}
	}
	return nil
}

// Parent returns this Model's parent Model in the scene hierarchy, if any.
func (m *Model) Parent() *Model {
	for _, p := range m.parents {
		if pm, ok := p.(*Model); ok {
			return pm
		}
	}
	return nil
}

// invalidate marks this Model's cached local matrix dirty. Callers that
// mutate a transform field directly (rather than through a setter) should
// call this explicitly; the constructObject pass always calls it once after
// populating fields.
func (m *Model) invalidate() { m.dirty = true }

// Invalidate marks this Model's cached local matrix dirty. Exported for
// callers outside the package (the animation layer) that mutate Position,
// Rotation, or Scale directly while applying sampled curve values.
func (m *Model) Invalidate() { m.invalidate() }

// LocalMatrix returns Scale * PostRotation * Rotation * PreRotation with
// translation in the fourth row, caching until the next invalidate.
func (m *Model) LocalMatrix() mgl32.Mat4 {
	if m.dirty {
		m.cachedLoc = transform.LocalMatrix(m.RotationOrder, m.Position, m.PreRotation, m.Rotation, m.PostRotation, m.Scale)
		m.dirty = false
	}
	return m.cachedLoc
}

// GlobalMatrix is local*parent.global, or just local for a root Model. The
// cache is not propagated across ancestors: a dirty ancestor still produces
// a correct (if recomputed) result because GlobalMatrix always re-reads its
// parent's current GlobalMatrix rather than a stale cached composite.
func (m *Model) GlobalMatrix() mgl32.Mat4 {
	if parent := m.Parent(); parent != nil {
		return transform.GlobalMatrix(m.LocalMatrix(), parent.GlobalMatrix())
	}
	return m.LocalMatrix()
}

func (m *Model) addChild(v Object) {
	m.Base.addChild(v)
	switch c := v.(type) {
	case *NodeAttribute:
		m.attribute = c
	case *Material:
		m.materials = append(m.materials, c)
	}
}

// Material is a surface-shading object; its textured/shaded properties are
// out of scope for the core and are not parsed beyond identity.
type Material struct{ Base }
