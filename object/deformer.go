package object

import "github.com/go-gl/mathgl/mgl32"

// Skin belongs to a GeomMesh and owns an ordered list of Clusters.
type Skin struct {
	Base

	mesh     *GeomMesh
	clusters []*Cluster
}

// Mesh returns the GeomMesh this Skin deforms.
func (s *Skin) Mesh() *GeomMesh { return s.mesh }

// Clusters returns this Skin's Clusters in construction order.
func (s *Skin) Clusters() []*Cluster { return s.clusters }

func (s *Skin) addParent(v Object) {
	s.Base.addParent(v)
	if mesh, ok := v.(*GeomMesh); ok {
		s.mesh = mesh
	}
}

func (s *Skin) addChild(v Object) {
	s.Base.addChild(v)
	if c, ok := v.(*Cluster); ok {
		s.clusters = append(s.clusters, c)
	}
}

// Cluster references one joint Model and holds the parallel indices/weights
// for the vertices it influences, plus the pre-bind and bind-pose matrices.
type Cluster struct {
	Base

	Indices       []int32
	WeightsArr    []float32
	TransformMat  mgl32.Mat4
	TransformLink mgl32.Mat4
}

// Joint returns this Cluster's Model child, or nil if it has none (an
// anomaly the deform layer records as BadConnection).
func (c *Cluster) Joint() *Model {
	for _, ch := range c.children {
		if m, ok := ch.(*Model); ok {
			return m
		}
	}
	return nil
}

func (c *Cluster) addChild(v Object) {
	c.Base.addChild(v)
	if m, ok := v.(*Model); ok {
		c.SetName(m.Name())
	}
}

// BlendShape owns an ordered list of BlendShapeChannels.
type BlendShape struct {
	Base

	channels []*BlendShapeChannel
}

// Channels returns this BlendShape's channels in construction order.
func (b *BlendShape) Channels() []*BlendShapeChannel { return b.channels }

func (b *BlendShape) addChild(v Object) {
	b.Base.addChild(v)
	if ch, ok := v.(*BlendShapeChannel); ok {
		b.channels = append(b.channels, ch)
	}
}

// ShapeWeight pairs a Shape target with the weight at which it reaches full
// effect (100.0 by default, overridden by FullWeights on disk).
type ShapeWeight struct {
	Shape      *Shape
	FullWeight float32
}

// BlendShapeChannel owns a list of (Shape, fullWeight) pairs and a current
// weight in [0, 100].
type BlendShapeChannel struct {
	Base

	ShapeData []ShapeWeight
	Weight    float32
}

func (c *BlendShapeChannel) addChild(v Object) {
	c.Base.addChild(v)
	if s, ok := v.(*Shape); ok {
		c.ShapeData = append(c.ShapeData, ShapeWeight{Shape: s, FullWeight: 100.0})
	}
}

// AddShape attaches a shape target with an explicit full weight, for
// programmatic graph construction ahead of a write.
func (c *BlendShapeChannel) AddShape(s *Shape, fullWeight float32) {
	Connect(c, s)
	for i := range c.ShapeData {
		if c.ShapeData[i].Shape == s {
			c.ShapeData[i].FullWeight = fullWeight
			return
		}
	}
}
