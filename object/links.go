package object

// Connect establishes a reciprocal parent/child edge: parent.addChild(child)
// and child.addParent(parent). Both calls dispatch dynamically through the
// Object interface, so a concrete type's own addChild/addParent override
// (e.g. Skin collecting Clusters) runs instead of the generic Base behavior.
func Connect(parent, child Object) {
	if parent == nil || child == nil {
		return
	}
	parent.addChild(child)
	child.addParent(parent)
}
