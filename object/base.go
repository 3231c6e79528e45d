package object

import "github.com/g3n/fbxkit/node"

// Object is the common surface every typed object satisfies. Parent/child
// links are reciprocal and maintained by addParent/addChild, which concrete
// types override to additionally route typed children into their own
// bookkeeping (e.g. Skin collecting its Clusters).
type Object interface {
	ID() int64
	SetID(int64)
	Name() string
	SetName(string)
	Class() Class
	SubClass() SubClass
	Node() *node.Node
	SetNode(*node.Node)
	Parents() []Object
	Children() []Object

	addParent(Object)
	addChild(Object)
}

// Base is embedded by every concrete object type and supplies the common
// bookkeeping fields and the default (non-overridden) addParent/addChild
// behavior.
type Base struct {
	id       int64
	name     string
	class    Class
	subclass SubClass
	srcNode  *node.Node
	parents  []Object
	children []Object
}

func newBase(class Class, sub SubClass) Base {
	return Base{class: class, subclass: sub}
}

func (b *Base) ID() int64            { return b.id }
func (b *Base) SetID(id int64)       { b.id = id }
func (b *Base) Name() string         { return b.name }
func (b *Base) SetName(name string)  { b.name = name }
func (b *Base) Class() Class         { return b.class }
func (b *Base) SubClass() SubClass   { return b.subclass }
func (b *Base) Node() *node.Node     { return b.srcNode }
func (b *Base) SetNode(n *node.Node) { b.srcNode = n }
func (b *Base) Parents() []Object    { return b.parents }
func (b *Base) Children() []Object   { return b.children }

func (b *Base) addParent(p Object) { b.parents = append(b.parents, p) }
func (b *Base) addChild(c Object)  { b.children = append(b.children, c) }

// Generic is the fallback concrete type for a (class, subclass) pair with no
// dedicated behavior.
type Generic struct{ Base }
