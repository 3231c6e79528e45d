// Package object implements the connection-resolved typed object graph:
// Model, GeomMesh, Skin, Cluster, BlendShape/BlendShapeChannel, Shape,
// BindPose, Material, NodeAttribute, and the AnimationStack/Layer/CurveNode/
// Curve family, together with their (class, subclass) dispatch table.
//
// Per the source design note, inheritance is replaced by a tagged enum and a
// small dispatch table: ConstructObject and ConstructNodes are free
// functions that switch on the concrete Go type rather than virtual methods;
// the addParent/addChild hooks are methods that concrete types override.
package object

import "github.com/g3n/fbxkit/tokens"

// Class is the outer object-type tag (first component of a (class,
// subclass) pair read from an Objects/* child's node name and last
// property).
type Class int

const (
	ClassUnknown Class = iota
	ClassNodeAttribute
	ClassModel
	ClassGeometry
	ClassDeformer
	ClassPose
	ClassMaterial
	ClassAnimationStack
	ClassAnimationLayer
	ClassAnimationCurveNode
	ClassAnimationCurve
)

// SubClass is the inner dispatch tag.
type SubClass int

const (
	SubClassNone SubClass = iota
	SubClassNull
	SubClassRoot
	SubClassLimbNode
	SubClassMesh
	SubClassLight
	SubClassCamera
	SubClassShape
	SubClassSkin
	SubClassCluster
	SubClassBlendShape
	SubClassBlendShapeChannel
	SubClassBindPose
	SubClassOther
)

func classFromString(s string) Class {
	switch s {
	case tokens.ClassNodeAttribute:
		return ClassNodeAttribute
	case tokens.ClassModel:
		return ClassModel
	case tokens.ClassGeometry:
		return ClassGeometry
	case tokens.ClassDeformer:
		return ClassDeformer
	case tokens.ClassPose:
		return ClassPose
	case tokens.ClassMaterial:
		return ClassMaterial
	case tokens.ClassAnimationStack:
		return ClassAnimationStack
	case tokens.ClassAnimationLayer:
		return ClassAnimationLayer
	case tokens.ClassAnimationCurveNode:
		return ClassAnimationCurveNode
	case tokens.ClassAnimationCurve:
		return ClassAnimationCurve
	default:
		return ClassUnknown
	}
}

func subClassFromString(s string) SubClass {
	switch s {
	case tokens.SubClassNull:
		return SubClassNull
	case tokens.SubClassRoot:
		return SubClassRoot
	case tokens.SubClassLimbNode:
		return SubClassLimbNode
	case tokens.SubClassMesh:
		return SubClassMesh
	case tokens.SubClassLight:
		return SubClassLight
	case tokens.SubClassCamera:
		return SubClassCamera
	case tokens.SubClassShape:
		return SubClassShape
	case tokens.SubClassSkin:
		return SubClassSkin
	case tokens.SubClassCluster:
		return SubClassCluster
	case tokens.SubClassBlendShape:
		return SubClassBlendShape
	case tokens.SubClassBlendShapeChannel:
		return SubClassBlendShapeChannel
	case tokens.SubClassBindPose:
		return SubClassBindPose
	case "":
		return SubClassNone
	default:
		return SubClassOther
	}
}

// Create allocates the concrete Object for a (class, subclass) pair per the
// dispatch table in the container protocol: unrecognized subclasses fall
// back to a generic implementation of the class rather than failing.
func Create(className, subClassName string) Object {
	class := classFromString(className)
	sub := subClassFromString(subClassName)

	switch class {
	case ClassNodeAttribute:
		return &NodeAttribute{Base: newBase(class, sub)}
	case ClassModel:
		m := newModel()
		switch sub {
		case SubClassNull, SubClassRoot, SubClassLimbNode, SubClassLight, SubClassCamera, SubClassMesh:
			m.Base = newBase(class, sub)
		default:
			m.Base = newBase(class, SubClassOther)
		}
		return m
	case ClassGeometry:
		switch sub {
		case SubClassMesh:
			return &GeomMesh{Base: newBase(class, sub)}
		case SubClassShape:
			return &Shape{Base: newBase(class, sub)}
		default:
			return &Generic{Base: newBase(class, sub)}
		}
	case ClassDeformer:
		switch sub {
		case SubClassSkin:
			return &Skin{Base: newBase(class, sub)}
		case SubClassCluster:
			return &Cluster{Base: newBase(class, sub)}
		case SubClassBlendShape:
			return &BlendShape{Base: newBase(class, sub)}
		case SubClassBlendShapeChannel:
			return &BlendShapeChannel{Base: newBase(class, sub)}
		default:
			return &Generic{Base: newBase(class, sub)}
		}
	case ClassPose:
		switch sub {
		case SubClassBindPose:
			return &BindPose{Base: newBase(class, sub)}
		default:
			return &Generic{Base: newBase(class, sub)}
		}
	case ClassMaterial:
		return &Material{Base: newBase(class, sub)}
	case ClassAnimationStack:
		return &AnimationStack{Base: newBase(class, sub)}
	case ClassAnimationLayer:
		return &AnimationLayer{Base: newBase(class, sub)}
	case ClassAnimationCurveNode:
		return &AnimationCurveNode{Base: newBase(class, sub)}
	case ClassAnimationCurve:
		return &AnimationCurve{Base: newBase(class, sub)}
	default:
		return &Generic{Base: newBase(class, sub)}
	}
}
