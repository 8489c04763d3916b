// Package mathutil provides the vector and matrix helpers used by the pose interpolator.
package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp linearly interpolates between a and b.
// t is not clamped; callers clamp progress before blending.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVec3 interpolates each component of a and b independently.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// Clamp01 restricts v to [0, 1]. NaN maps to 0 so a bad seek
// cannot poison the timer.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return progressMin
	}
	return mgl64.Clamp(v, progressMin, progressMax)
}

// NonNegative floors v at zero. NaN is treated as zero.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b mgl64.Vec3) float64 {
	return b.Sub(a).Len()
}
