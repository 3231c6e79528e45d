// Package transform implements Euler-order-aware rotation composition and
// the Model local/global matrix computation.
//
// Six proper Euler orders (XYZ, XZY, YXZ, YZX, ZXY, ZYX) are supported, plus
// a SphericXYZ alias treated as XYZ. Matrix composition multiplies
// axis-angle quaternions in the order opposite to the axis name — e.g. XYZ
// composes as Rz * Ry * Rx — which is the FBX convention and must be
// preserved exactly; it is easy to "fix" this into the more common Rx*Ry*Rz
// reading and silently break every rotated asset.
//
// Local matrix: M_local = Scale * PostRotation * Rotation * PreRotation,
// with translation placed in the fourth row. These products use the
// row-vector convention (p' = p * M), reading mgl32's column-major backing
// array row by row; in that reading mgl32's A.Mul4(B) is the product B * A,
// so the code calls Mul4 in the reverse of the written order. Global matrix:
// parent-chain product, parent on the right: B.global = B.local * A.global.
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RotationOrder selects the axis composition order for a Model's Euler
// rotation triples.
type RotationOrder int

const (
	OrderXYZ RotationOrder = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
	// OrderSphericXYZ is treated as OrderXYZ, per the source design note.
	OrderSphericXYZ
)

// RotationOrderFromFBX maps the integer RotationOrder enumerant stored in a
// Model's Properties70/P "RotationOrder" entry to a RotationOrder.
func RotationOrderFromFBX(v int) RotationOrder {
	switch v {
	case 0:
		return OrderXYZ
	case 1:
		return OrderXZY
	case 2:
		return OrderYXZ
	case 3:
		return OrderYZX
	case 4:
		return OrderZXY
	case 5:
		return OrderZYX
	case 6:
		return OrderSphericXYZ
	default:
		return OrderXYZ
	}
}

func degToRad(d float32) float32 { return d * float32(math.Pi) / 180 }

func axisQuat(axis mgl32.Vec3, degrees float32) mgl32.Quat {
	return mgl32.QuatRotate(degToRad(degrees), axis)
}

// EulerToQuat builds the rotation quaternion for a (x, y, z) degree triple
// under the given order, composing axis quaternions in the order opposite to
// the axis name (e.g. XYZ multiplies as Rz * Ry * Rx).
func EulerToQuat(order RotationOrder, degrees mgl32.Vec3) mgl32.Quat {
	rx := axisQuat(mgl32.Vec3{1, 0, 0}, degrees.X())
	ry := axisQuat(mgl32.Vec3{0, 1, 0}, degrees.Y())
	rz := axisQuat(mgl32.Vec3{0, 0, 1}, degrees.Z())

	switch order {
	case OrderXYZ, OrderSphericXYZ:
		return rz.Mul(ry).Mul(rx)
	case OrderXZY:
		return ry.Mul(rz).Mul(rx)
	case OrderYXZ:
		return rz.Mul(rx).Mul(ry)
	case OrderYZX:
		return rx.Mul(rz).Mul(ry)
	case OrderZXY:
		return ry.Mul(rx).Mul(rz)
	case OrderZYX:
		return rx.Mul(ry).Mul(rz)
	default:
		return rz.Mul(ry).Mul(rx)
	}
}

// eulerMat4 returns the 4x4 rotation matrix for a degree triple in this
// package's row-vector reading. mgl32's column-major Quat.Mat4, read row by
// row, is already the transpose of the column-vector rotation matrix, which
// is what the reference implementation's
// transpose(to_mat4x4(rotate_euler(order, degrees))) step produces.
func eulerMat4(order RotationOrder, degrees mgl32.Vec3) mgl32.Mat4 {
	if degrees == (mgl32.Vec3{}) {
		return mgl32.Ident4()
	}
	q := EulerToQuat(order, degrees)
	return q.Mat4()
}

// LocalMatrix computes M_local = Scale * PostRotation * Rotation *
// PreRotation with translation placed in the fourth row (in mgl32's own
// column-major product: PreRotation * Rotation * PostRotation * Scale). Each
// rotation factor is skipped (treated as identity) when its triple is
// exactly zero, matching the reference implementation's early-out.
func LocalMatrix(order RotationOrder, position, preRotation, rotation, postRotation, scale mgl32.Vec3) mgl32.Mat4 {
	ret := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	if postRotation != (mgl32.Vec3{}) {
		ret = eulerMat4(order, postRotation).Mul4(ret)
	}
	if rotation != (mgl32.Vec3{}) {
		ret = eulerMat4(order, rotation).Mul4(ret)
	}
	if preRotation != (mgl32.Vec3{}) {
		ret = eulerMat4(order, preRotation).Mul4(ret)
	}
	// Row-major convention: translation occupies row 3 (elements [12..14]
	// in mgl32's column-major backing array correspond to that row when the
	// matrix is read with row-vector-on-the-left semantics used throughout
	// this package).
	ret[12] = position.X()
	ret[13] = position.Y()
	ret[14] = position.Z()
	return ret
}

// GlobalMatrix composes a local matrix with its parent's global matrix,
// parent on the right: local * parentGlobal (parentGlobal.Mul4(local) in
// mgl32's column-major product).
func GlobalMatrix(local, parentGlobal mgl32.Mat4) mgl32.Mat4 {
	return parentGlobal.Mul4(local)
}

// TransformPoint applies an affine point transform (position semantics): the
// translation row contributes.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	x := p.X()*m[0] + p.Y()*m[4] + p.Z()*m[8] + m[12]
	y := p.X()*m[1] + p.Y()*m[5] + p.Z()*m[9] + m[13]
	z := p.X()*m[2] + p.Y()*m[6] + p.Z()*m[10] + m[14]
	return mgl32.Vec3{x, y, z}
}

// TransformVector applies a linear vector transform (direction/normal
// semantics): the translation row is ignored.
func TransformVector(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	x := v.X()*m[0] + v.Y()*m[4] + v.Z()*m[8]
	y := v.X()*m[1] + v.Y()*m[5] + v.Z()*m[9]
	z := v.X()*m[2] + v.Y()*m[6] + v.Z()*m[10]
	return mgl32.Vec3{x, y, z}
}
