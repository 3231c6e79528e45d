package node

import (
	"bytes"
	"testing"

	"github.com/g3n/fbxkit/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeIdentity(t *testing.T) {
	leaf := NewWithProps("Leaf", property.NewInt32(1))
	parent := New("Parent")
	parent.AddChild(leaf)

	var buf bytes.Buffer
	written, err := parent.WriteTo(&buf, 0)
	require.NoError(t, err)
	assert.EqualValues(t, parent.Size(), written)
	assert.EqualValues(t, parent.Size(), buf.Len())
}

func TestRoundTrip(t *testing.T) {
	root := New("Root")
	root.AddProperty(property.NewString("hi"))
	child := root.CreateChild("Child", property.NewInt32(42), property.NewFloat64(1.5))
	child.CreateChild("Grandchild")

	var buf bytes.Buffer
	_, err := root.WriteTo(&buf, 0)
	require.NoError(t, err)

	got, consumed, err := ReadFrom(&buf, 0)
	require.NoError(t, err)
	assert.EqualValues(t, root.Size(), consumed)
	assert.Equal(t, "Root", got.Name)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "Child", got.Children[0].Name)
	require.Len(t, got.Children[0].Children, 1)
	assert.Equal(t, "Grandchild", got.Children[0].Children[0].Name)

	s, ok := got.Properties[0].String_()
	require.True(t, ok)
	assert.Equal(t, "hi", s)
}

func TestNullNodeOmittedWhenNoChildren(t *testing.T) {
	leaf := New("Leaf")
	var buf bytes.Buffer
	n, err := leaf.WriteTo(&buf, 0)
	require.NoError(t, err)
	// 13-byte header plus the 4-byte name, with no trailing null node.
	assert.EqualValues(t, 17, n)
	assert.EqualValues(t, 17, leaf.Size())
}

func TestFindChild(t *testing.T) {
	root := New("Root")
	root.CreateChild("A")
	b := root.CreateChild("B")
	assert.Same(t, b, root.FindChild("B"))
	assert.Nil(t, root.FindChild("Missing"))
}
