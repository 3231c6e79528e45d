// Package node implements the FBX binary node record: a named, ordered
// sequence of properties and an ordered sequence of child nodes, with the
// 13-byte fixed header and size-prefixed tree layout.
//
//	offset 0  end_offset            u32
//	offset 4  property_count        u32
//	offset 8  property_list_bytes   u32
//	offset 12 name_length           u8
//	offset 13 name bytes            raw
//	...       properties            per package property
//	...       children, recursive, sibling list terminated by a null node
//
// A null node is a 13-byte record of all zeros. It is emitted when a node
// has children and may be omitted when it has none; readers treat an inner
// 13-zero run as the sibling-list terminator, never as a logical child.
package node

import (
	"fmt"
	"io"
	"strings"

	"github.com/g3n/fbxkit/fbxerr"
	"github.com/g3n/fbxkit/fbxio"
	"github.com/g3n/fbxkit/property"
)

// Node is one record of the binary tree.
type Node struct {
	Name       string
	Properties []property.Value
	Children   []*Node
}

// New creates a named node with no properties or children.
func New(name string) *Node {
	return &Node{Name: name}
}

// NewWithProps creates a named node with the given inline properties.
func NewWithProps(name string, props ...property.Value) *Node {
	return &Node{Name: name, Properties: props}
}

// CreateChild appends and returns a new child node.
func (n *Node) CreateChild(name string, props ...property.Value) *Node {
	c := NewWithProps(name, props...)
	n.Children = append(n.Children, c)
	return c
}

// AddChild appends an already-constructed child.
func (n *Node) AddChild(c *Node) {
	n.Children = append(n.Children, c)
}

// AddProperty appends a property.
func (n *Node) AddProperty(v property.Value) {
	n.Properties = append(n.Properties, v)
}

// FindChild returns the first child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindChildren returns all children with the given name, in order.
func (n *Node) FindChildren(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// IsNull reports whether this is the null-node sentinel: no name, no
// properties, no children.
func (n *Node) IsNull() bool {
	return n.Name == "" && len(n.Properties) == 0 && len(n.Children) == 0
}

func (n *Node) propertyListBytes() uint32 {
	var sum uint32
	for _, p := range n.Properties {
		sum += p.GetBytes()
	}
	return sum
}

// Size returns the serialized byte length of this node's subtree, including
// the trailing null-node terminator when this node has children.
func (n *Node) Size() uint32 {
	size := uint32(13) + uint32(len(n.Name)) + n.propertyListBytes()
	for _, c := range n.Children {
		size += c.Size()
	}
	if len(n.Children) > 0 {
		size += 13 // terminating null node
	}
	return size
}

// ReadFrom parses one node record starting at startOffset, returning the
// node and the number of bytes consumed by its subtree.
func ReadFrom(r io.Reader, startOffset uint32) (*Node, uint32, error) {
	endOffset, err := fbxio.ReadU32(r)
	if err != nil {
		return nil, 0, err
	}
	numProps, err := fbxio.ReadU32(r)
	if err != nil {
		return nil, 0, err
	}
	propListBytes, err := fbxio.ReadU32(r)
	if err != nil {
		return nil, 0, err
	}
	nameLen, err := fbxio.ReadU8(r)
	if err != nil {
		return nil, 0, err
	}

	if endOffset == 0 && numProps == 0 && propListBytes == 0 && nameLen == 0 {
		// Null node: the 13 zero bytes already consumed are its entirety.
		return &Node{}, 13, nil
	}

	nameBytes, err := fbxio.ReadBytes(r, int(nameLen))
	if err != nil {
		return nil, 0, err
	}
	n := &Node{Name: string(nameBytes)}
	consumed := uint32(13) + uint32(nameLen)

	for i := uint32(0); i < numProps; i++ {
		p, err := property.ReadFrom(r)
		if err != nil {
			return nil, 0, err
		}
		n.Properties = append(n.Properties, p)
	}
	consumed += propListBytes

	for startOffset+consumed < endOffset {
		child, childSize, err := ReadFrom(r, startOffset+consumed)
		if err != nil {
			return nil, 0, err
		}
		consumed += childSize
		if child.IsNull() {
			break
		}
		n.Children = append(n.Children, child)
	}

	if startOffset+consumed != endOffset {
		return nil, 0, fmt.Errorf("node %q: computed end %d, declared %d: %w",
			n.Name, startOffset+consumed, endOffset, fbxerr.SizeInvariantViolated)
	}
	return n, consumed, nil
}

// WriteTo serializes this node's subtree starting at startOffset, returning
// the number of bytes written. A null receiver (or IsNull()) writes the
// 13-zero sentinel.
func (n *Node) WriteTo(w io.Writer, startOffset uint32) (uint32, error) {
	if n == nil || n.IsNull() {
		zero := make([]byte, 13)
		_, err := w.Write(zero)
		return 13, err
	}

	propListBytes := n.propertyListBytes()
	size := n.Size()

	if err := fbxio.WriteU32(w, startOffset+size); err != nil {
		return 0, err
	}
	if err := fbxio.WriteU32(w, uint32(len(n.Properties))); err != nil {
		return 0, err
	}
	if err := fbxio.WriteU32(w, propListBytes); err != nil {
		return 0, err
	}
	if err := fbxio.WriteU8(w, uint8(len(n.Name))); err != nil {
		return 0, err
	}
	if _, err := io.WriteString(w, n.Name); err != nil {
		return 0, err
	}

	written := uint32(13) + uint32(len(n.Name))
	for _, p := range n.Properties {
		m, err := p.WriteTo(w)
		if err != nil {
			return 0, err
		}
		written += uint32(m)
	}
	for _, c := range n.Children {
		m, err := c.WriteTo(w, startOffset+written)
		if err != nil {
			return 0, err
		}
		written += m
	}
	if len(n.Children) > 0 {
		m, err := (*Node)(nil).WriteTo(w, startOffset+written)
		if err != nil {
			return 0, err
		}
		written += m
	}

	if written != size {
		return 0, fmt.Errorf("node %q: wrote %d bytes, computed size %d: %w",
			n.Name, written, size, fbxerr.SizeInvariantViolated)
	}
	return written, nil
}

// Dump writes the textual-dump form of this node and its subtree: tab
// indentation per depth, properties comma-separated on the node's line.
func (n *Node) Dump(w io.Writer, depth int) {
	indent := strings.Repeat("\t", depth)
	parts := make([]string, len(n.Properties))
	for i, p := range n.Properties {
		parts[i] = p.Render()
	}
	line := n.Name + ": " + strings.Join(parts, ",")
	fmt.Fprintln(w, indent+line+" {")
	for _, c := range n.Children {
		c.Dump(w, depth+1)
	}
	fmt.Fprintln(w, indent+"}")
}
