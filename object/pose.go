package object

import "github.com/go-gl/mathgl/mgl32"

// PoseEntry pairs a joint Model with its bind-time 4x4 matrix.
type PoseEntry struct {
	Joint  *Model
	Matrix mgl32.Mat4
}

// BindPose is the pose of a skeleton at which skinning weights were
// authored: a list of (joint-Model, bind matrix) pairs.
type BindPose struct {
	Base

	PoseData []PoseEntry
}

// AddPoseData appends a joint/bind-matrix pair, for programmatic graph
// construction ahead of a write.
func (p *BindPose) AddPoseData(joint *Model, bindMatrix mgl32.Mat4) {
	p.PoseData = append(p.PoseData, PoseEntry{Joint: joint, Matrix: bindMatrix})
}
