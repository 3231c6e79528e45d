// Package tokens holds the well-known node names, property tags, and
// numeric constants used throughout the binary container and object model.
// Treat the node-name strings as opaque tokens: their spelling is pinned by
// the on-disk format, not by Go naming conventions.
package tokens

// TicksPerSecond is the FBX canonical time rate: 1 second equals this many
// ticks. It must be used exactly; rounding errors break DCC interop.
const TicksPerSecond int64 = 46186158000

// Root/scaffolding node names.
const (
	FBXHeaderExtension = "FBXHeaderExtension"
	GlobalSettings     = "GlobalSettings"
	Documents          = "Documents"
	References         = "References"
	Definitions        = "Definitions"
	Objects            = "Objects"
	Connections        = "Connections"
	Takes              = "Takes"
	FileId             = "FileId"
	CreationTime       = "CreationTime"
	Creator            = "Creator"
)

// Property declaration nodes.
const (
	Properties70 = "Properties70"
	P            = "P"
)

// Connection kinds, first property of a Connections child.
const (
	C      = "C"
	ConnOO = "OO"
	ConnOP = "OP"
)

// Object class names.
const (
	ClassModel             = "Model"
	ClassGeometry          = "Geometry"
	ClassNodeAttribute     = "NodeAttribute"
	ClassDeformer          = "Deformer"
	ClassPose              = "Pose"
	ClassMaterial          = "Material"
	ClassAnimationStack    = "AnimationStack"
	ClassAnimationLayer    = "AnimationLayer"
	ClassAnimationCurveNode = "AnimationCurveNode"
	ClassAnimationCurve    = "AnimationCurve"
)

// Object subclass names.
const (
	SubClassNull               = "Null"
	SubClassRoot               = "Root"
	SubClassLimbNode           = "LimbNode"
	SubClassMesh               = "Mesh"
	SubClassLight              = "Light"
	SubClassCamera             = "Camera"
	SubClassShape              = "Shape"
	SubClassSkin               = "Skin"
	SubClassCluster            = "Cluster"
	SubClassBlendShape         = "BlendShape"
	SubClassBlendShapeChannel  = "BlendShapeChannel"
	SubClassBindPose           = "BindPose"
)

// Geometry node names.
const (
	Vertices           = "Vertices"
	PolygonVertexIndex = "PolygonVertexIndex"
	LayerElementNormal = "LayerElementNormal"
	LayerElementUV     = "LayerElementUV"
	LayerElementColor  = "LayerElementColor"
	Normals            = "Normals"
	UV                 = "UV"
	UVIndex            = "UVIndex"
	Colors             = "Colors"
	ColorIndex         = "ColorIndex"
	NormalsIndex       = "NormalsIndex"

	MappingInformationType   = "MappingInformationType"
	ReferenceInformationType = "ReferenceInformationType"

	MappingByPolygonVertex = "ByPolygonVertex"
	MappingByControlPoint  = "ByControlPoint"
	ReferenceDirect        = "Direct"
	ReferenceIndexToDirect = "IndexToDirect"
)

// Deformer node names.
const (
	Indexes       = "Indexes"
	Weights       = "Weights"
	Transform     = "Transform"
	TransformLink = "TransformLink"
	FullWeights   = "FullWeights"
	DeformPercent = "DeformPercent"
)

// Pose node names.
const (
	BindPose = "BindPose"
	PoseNode = "PoseNode"
	PoseType = "Type"
	Node     = "Node"
	Matrix   = "Matrix"
)

// Animation-curve node names.
const (
	Default         = "Default"
	KeyTime         = "KeyTime"
	KeyValueFloat   = "KeyValueFloat"
	KeyAttrFlags    = "KeyAttrFlags"
	KeyAttrDataFloat = "KeyAttrDataFloat"
	KeyAttrRefCount = "KeyAttrRefCount"
	FocalLength     = "FocalLength"
)

// Model transform property names, as they appear inside Properties70/P entries.
const (
	PropLclTranslation = "Lcl Translation"
	PropLclRotation    = "Lcl Rotation"
	PropLclScaling     = "Lcl Scaling"
	PropPreRotation    = "PreRotation"
	PropPostRotation   = "PostRotation"
	PropRotationOrder  = "RotationOrder"
	PropVisibility     = "Visibility"
)

// Display-name separator: object display names pack as "<name>\x00\x01<class>".
const DisplayNameSeparator = "\x00\x01"

// LegacySceneRootName is the magic display name a legacy writer emits for
// the root Model so pre-id-based readers can resolve it by name.
const LegacySceneRootName = "Scene" + DisplayNameSeparator + "Model"
