// Package deform implements skin (linear blend) and blend-shape deformation
// over the typed object graph: variable and fixed joints-per-vertex weight
// streams, joint matrix computation, and delta application to a mesh's
// points or normals.
package deform

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/g3n/fbxkit/diagnostic"
	"github.com/g3n/fbxkit/fbxerr"
	"github.com/g3n/fbxkit/internal/flog"
	"github.com/g3n/fbxkit/object"
	"github.com/g3n/fbxkit/transform"
)

var log = flog.New("deform", flog.Default)

// Influence pairs a Cluster (by its index within the Skin's cluster list)
// with the weight it contributes to one vertex.
type Influence struct {
	ClusterIndex int32
	Weight       float32
}

// VariableJointWeights scatter-accumulates every Cluster's (index, weight)
// pairs into a per-vertex influence list, the variable-length stream of
// §4.6's getJointWeightsVariable.
func VariableJointWeights(skin *object.Skin, vertexCount int) [][]Influence {
	out := make([][]Influence, vertexCount)
	for ci, cluster := range skin.Clusters() {
		for i, vi := range cluster.Indices {
			if int(vi) < 0 || int(vi) >= vertexCount {
				continue
			}
			w := float32(0)
			if i < len(cluster.WeightsArr) {
				w = cluster.WeightsArr[i]
			}
			out[vi] = append(out[vi], Influence{ClusterIndex: int32(ci), Weight: w})
		}
	}
	return out
}

// FixedJointWeights truncates every vertex's variable influence list to at
// most k entries, chosen by largest weight with ties broken toward the
// smaller cluster index when preferSmallerClusterIndex is set (§9 pins this
// tie-break so tests are deterministic), then renormalizes so each
// vertex's weights sum to 1.0 when the sum is non-zero. Short lists are
// padded with zero-weight (cluster 0, weight 0) entries up to k.
func FixedJointWeights(skin *object.Skin, vertexCount, k int, preferSmallerClusterIndex bool) [][]Influence {
	variable := VariableJointWeights(skin, vertexCount)
	out := make([][]Influence, vertexCount)
	for v, infl := range variable {
		kept := append([]Influence(nil), infl...)
		sort.Slice(kept, func(i, j int) bool {
			if kept[i].Weight != kept[j].Weight {
				return kept[i].Weight > kept[j].Weight
			}
			if preferSmallerClusterIndex {
				return kept[i].ClusterIndex < kept[j].ClusterIndex
			}
			return kept[i].ClusterIndex > kept[j].ClusterIndex
		})
		if len(kept) > k {
			kept = kept[:k]
		}

		var sum float32
		for _, in := range kept {
			sum += in.Weight
		}
		if sum != 0 {
			for i := range kept {
				kept[i].Weight /= sum
			}
		}

		for len(kept) < k {
			kept = append(kept, Influence{})
		}
		out[v] = kept
	}
	return out
}

// JointMatrices computes, for each Cluster in skin's cluster list, the
// skinning matrix bindpose * globalJointMatrix (§4.6), in the row-vector
// convention of package transform (globalJointMatrix.Mul4(bindpose) in
// mgl32's column-major product). A cluster whose joint connection did not
// resolve to a Model yields identity and a diagnostic.
func JointMatrices(skin *object.Skin, diag *diagnostic.Sink) []mgl32.Mat4 {
	clusters := skin.Clusters()
	out := make([]mgl32.Mat4, len(clusters))
	for i, cluster := range clusters {
		joint := cluster.Joint()
		if joint == nil {
			out[i] = mgl32.Ident4()
			log.Warnf("cluster %q: no Model joint", cluster.Name())
			diag.Warn(fbxerr.BadConnection, fmt.Sprintf("cluster %q: no Model joint", cluster.Name()))
			continue
		}
		out[i] = joint.GlobalMatrix().Mul4(cluster.TransformMat)
	}
	return out
}

func deformWith(skin *object.Skin, src []mgl32.Vec3, apply func(mgl32.Mat4, mgl32.Vec3) mgl32.Vec3, diag *diagnostic.Sink) ([]mgl32.Vec3, error) {
	mesh := skin.Mesh()
	if mesh == nil || len(src) != len(mesh.Points) {
		return nil, fmt.Errorf("skin deform: %w", fbxerr.CountMismatch)
	}
	influences := VariableJointWeights(skin, len(src))
	joints := JointMatrices(skin, diag)

	dst := make([]mgl32.Vec3, len(src))
	for v, infl := range influences {
		var acc mgl32.Vec3
		for _, in := range infl {
			if int(in.ClusterIndex) >= len(joints) {
				continue
			}
			acc = acc.Add(apply(joints[in.ClusterIndex], src[v]).Mul(in.Weight))
		}
		dst[v] = acc
	}
	return dst, nil
}

// DeformPoints applies skin's current weights to src (mesh-space points),
// using affine point transforms. len(src) must equal the Skin's mesh point
// count.
func DeformPoints(skin *object.Skin, src []mgl32.Vec3, diag *diagnostic.Sink) ([]mgl32.Vec3, error) {
	return deformWith(skin, src, transform.TransformPoint, diag)
}

// DeformVectors applies skin's current weights to src (mesh-space normals
// or tangents), using linear vector transforms that ignore translation.
func DeformVectors(skin *object.Skin, src []mgl32.Vec3, diag *diagnostic.Sink) ([]mgl32.Vec3, error) {
	return deformWith(skin, src, transform.TransformVector, diag)
}

// ChannelDeformPoints copies src into dst, then adds each active Shape's
// sparse delta_points scaled by the channel's current weight (Weight in
// [0, 100]). The source implementation ignores the weight entirely; this
// applies the conventional scaling instead, per the documented resolution
// of that ambiguity.
func ChannelDeformPoints(ch *object.BlendShapeChannel, dst, src []mgl32.Vec3) error {
	if len(dst) != len(src) {
		return fmt.Errorf("blend shape channel deform: %w", fbxerr.CountMismatch)
	}
	copy(dst, src)
	w := ch.Weight / 100
	for _, sd := range ch.ShapeData {
		shape := sd.Shape
		for i, idx := range shape.Indices {
			if int(idx) < 0 || int(idx) >= len(dst) || i >= len(shape.DeltaPoints) {
				continue
			}
			dst[idx] = dst[idx].Add(shape.DeltaPoints[i].Mul(w))
		}
	}
	return nil
}

// ChannelDeformNormals is ChannelDeformPoints' normal-stream counterpart,
// adding each active Shape's delta_normals instead of delta_points.
func ChannelDeformNormals(ch *object.BlendShapeChannel, dst, src []mgl32.Vec3) error {
	if len(dst) != len(src) {
		return fmt.Errorf("blend shape channel deform: %w", fbxerr.CountMismatch)
	}
	copy(dst, src)
	w := ch.Weight / 100
	for _, sd := range ch.ShapeData {
		shape := sd.Shape
		for i, idx := range shape.Indices {
			if int(idx) < 0 || int(idx) >= len(dst) || i >= len(shape.DeltaNormals) {
				continue
			}
			dst[idx] = dst[idx].Add(shape.DeltaNormals[i].Mul(w))
		}
	}
	return nil
}
