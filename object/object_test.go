package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCreateDispatch(t *testing.T) {
	o := Create("Model", "Mesh")
	m, ok := o.(*Model)
	assert.True(t, ok)
	assert.Equal(t, ClassModel, m.Class())
	assert.Equal(t, SubClassMesh, m.SubClass())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.Scale)
}

func TestCreateUnknownSubclassFallsBackGeneric(t *testing.T) {
	o := Create("Geometry", "SomethingNew")
	_, ok := o.(*Generic)
	assert.True(t, ok)
}

// Invariant 8: connection reciprocity.
func TestConnectionReciprocity(t *testing.T) {
	parent := Create("Model", "Null")
	child := Create("Model", "Null")
	Connect(parent, child)

	found := false
	for _, c := range parent.Children() {
		if c == child {
			found = true
		}
	}
	assert.True(t, found)

	foundParent := false
	for _, p := range child.Parents() {
		if p == parent {
			foundParent = true
		}
	}
	assert.True(t, foundParent)
}

func TestSkinCollectsClusters(t *testing.T) {
	skin := Create("Deformer", "Skin").(*Skin)
	mesh := Create("Geometry", "Mesh").(*GeomMesh)
	cluster := Create("Deformer", "Cluster").(*Cluster)

	Connect(mesh, skin)
	Connect(skin, cluster)

	assert.Same(t, mesh, skin.Mesh())
	assert.Len(t, skin.Clusters(), 1)
	assert.Same(t, cluster, skin.Clusters()[0])
}

func TestClusterAdoptsJointName(t *testing.T) {
	cluster := Create("Deformer", "Cluster").(*Cluster)
	joint := Create("Model", "LimbNode").(*Model)
	joint.SetName("Hip")
	Connect(cluster, joint)
	assert.Equal(t, "Hip", cluster.Name())
	assert.Same(t, joint, cluster.Joint())
}
