package poseinterp

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tphakala/go-pose-interpolator/internal/mathutil"
)

// Pose describes where a camera sits and which way it faces.
//
// Position is in world units. Rotation holds Euler angles in radians about
// the X (pitch), Y (yaw) and Z (roll) axes, composed according to the
// interpolator's RotationOrder. Both fields are arrays, so a Pose is always
// copied by value.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

// Equal reports whether p and o match component-wise within tolerance.
// Any NaN component makes the poses unequal.
func (p Pose) Equal(o Pose, tolerance float64) bool {
	for i := range p.Position {
		if !(math.Abs(p.Position[i]-o.Position[i]) <= tolerance) ||
			!(math.Abs(p.Rotation[i]-o.Rotation[i]) <= tolerance) {
			return false
		}
	}
	return true
}

// Matrix returns the camera-to-world transform for p.
func (p Pose) Matrix(order RotationOrder) mgl64.Mat4 {
	return mathutil.Compose(p.Position, p.Rotation, order)
}

// Pair brackets one animated transition.
type Pair struct {
	Start Pose
	End   Pose

	// Interactive marks a transition driven by live user input.
	// Interactive pairs blend linearly regardless of the configured easing.
	Interactive bool
}

// Distance returns the straight-line distance between the start and end positions.
func (p Pair) Distance() float64 {
	return mathutil.Distance(p.Start.Position, p.End.Position)
}

// Swapped returns the pair with start and end exchanged.
func (p Pair) Swapped() Pair {
	return Pair{Start: p.End, End: p.Start, Interactive: p.Interactive}
}

// At returns the linear blend of the pair at factor t without touching
// any interpolator state. t is not clamped.
func (p Pair) At(t float64) Pose {
	return Pose{
		Position: mathutil.LerpVec3(p.Start.Position, p.End.Position, t),
		Rotation: mathutil.LerpVec3(p.Start.Rotation, p.End.Rotation, t),
	}
}
