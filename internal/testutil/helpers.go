// Package testutil provides reusable test helper functions for pose interpolator tests.
package testutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	MatrixTolerance  = 1e-9
	TimerTolerance   = 1e-12
)

// mat4Size is the side length of a homogeneous transform.
const mat4Size = 4

// AssertVec3InDelta verifies that every component of actual is within tolerance of expected.
func AssertVec3InDelta(t *testing.T, expected, actual mgl64.Vec3, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"component %d: expected %v, got %v", i, expected, actual) {
			return false
		}
	}
	return true
}

// AssertMat4InDelta verifies that two matrices match element-wise within tolerance.
func AssertMat4InDelta(t *testing.T, expected, actual mgl64.Mat4, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 0; i < mat4Size*mat4Size; i++ {
		if math.Abs(expected[i]-actual[i]) > tolerance {
			return assert.Fail(t, "matrix mismatch",
				"element %d: expected\n%v\ngot\n%v", i, expected, actual)
		}
	}
	return true
}

// AssertProperRotation verifies that the upper 3x3 block of m is a rotation:
// orthonormal with determinant +1. The determinant is taken with gonum so the
// check does not share code with the matrix under test.
func AssertProperRotation(t *testing.T, m mgl64.Mat4, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	r := mat.NewDense(3, 3, nil)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r.Set(row, col, m.At(row, col))
		}
	}

	var rtr mat.Dense
	rtr.Mul(r.T(), r)
	if !mat.EqualApprox(&rtr, identity3(), tolerance) {
		return assert.Fail(t, "rotation not orthonormal", "RᵀR =\n%v", mat.Formatted(&rtr))
	}
	return assert.InDelta(t, 1.0, mat.Det(r), tolerance, msgAndArgs...)
}

func identity3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// AssertMat4Finite verifies that no element of m is NaN or Inf.
func AssertMat4Finite(t *testing.T, m mgl64.Mat4, msgAndArgs ...any) bool {
	t.Helper()
	for i := 0; i < mat4Size*mat4Size; i++ {
		if math.IsNaN(m[i]) || math.IsInf(m[i], 0) {
			return assert.Fail(t, "non-finite matrix element", "m[%d] = %v", i, m[i])
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertMonotonicDecreasing verifies that a slice is monotonically non-increasing.
func AssertMonotonicDecreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return assert.Fail(t, "not monotonic decreasing",
				"s[%d]=%f > s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}
