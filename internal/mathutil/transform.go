package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Order selects how three Euler angles are composed into one rotation.
// The name lists the axes in the order they are applied to a vector.
type Order int

const (
	// OrderXYZ applies X, then Y, then Z: R = Rz·Ry·Rx.
	OrderXYZ Order = iota

	// OrderZYX applies Z, then Y, then X: R = Rx·Ry·Rz.
	OrderZYX

	// OrderYXZ applies Y, then X, then Z: R = Rz·Rx·Ry.
	OrderYXZ
)

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	return o >= OrderXYZ && o <= OrderYXZ
}

// String returns the order name.
func (o Order) String() string {
	switch o {
	case OrderXYZ:
		return "xyz"
	case OrderZYX:
		return "zyx"
	case OrderYXZ:
		return "yxz"
	default:
		return "unknown"
	}
}

// ParseOrder converts a name produced by Order.String back to an Order.
func ParseOrder(s string) (Order, bool) {
	switch s {
	case "xyz", "XYZ", "":
		return OrderXYZ, true
	case "zyx", "ZYX":
		return OrderZYX, true
	case "yxz", "YXZ":
		return OrderYXZ, true
	default:
		return OrderXYZ, false
	}
}

// Rotation builds a homogeneous rotation from Euler angles in radians.
// rot[0], rot[1] and rot[2] are the angles about X, Y and Z.
func Rotation(rot mgl64.Vec3, order Order) mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(rot[0])
	ry := mgl64.HomogRotate3DY(rot[1])
	rz := mgl64.HomogRotate3DZ(rot[2])

	switch order {
	case OrderZYX:
		return rx.Mul4(ry).Mul4(rz)
	case OrderYXZ:
		return rz.Mul4(rx).Mul4(ry)
	default:
		return rz.Mul4(ry).Mul4(rx)
	}
}

// Compose returns Translate(pos) · Rotate(rot): the rotation is applied
// first, then the translation.
func Compose(pos, rot mgl64.Vec3, order Order) mgl64.Mat4 {
	return mgl64.Translate3D(pos[0], pos[1], pos[2]).Mul4(Rotation(rot, order))
}

// RigidInverse inverts a rotation+translation matrix as Rᵀ · T(−p).
// It does not handle scale or shear.
func RigidInverse(m mgl64.Mat4) mgl64.Mat4 {
	r := m.Mat3().Transpose()
	p := mgl64.Vec3{
		m.At(0, translationColumn),
		m.At(1, translationColumn),
		m.At(2, translationColumn),
	}
	t := r.Mul3x1(p).Mul(-1)

	inv := r.Mat4()
	for row := 0; row < spatialDims; row++ {
		inv.Set(row, translationColumn, t[row])
	}
	return inv
}

// IsRigid reports whether the upper 3x3 block of m is orthonormal
// and the bottom row is (0, 0, 0, 1).
func IsRigid(m mgl64.Mat4) bool {
	r := m.Mat3()
	rtr := r.Transpose().Mul3(r)
	ident := mgl64.Ident3()
	for i := range rtr {
		if math.Abs(rtr[i]-ident[i]) > orthonormalTolerance {
			return false
		}
	}
	for col := 0; col < spatialDims; col++ {
		if math.Abs(m.At(spatialDims, col)) > orthonormalTolerance {
			return false
		}
	}
	return math.Abs(m.At(spatialDims, translationColumn)-1) <= orthonormalTolerance
}
