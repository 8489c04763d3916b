package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-pose-interpolator/internal/testutil"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"Start", 2, 10, 0, 2},
		{"End", 2, 10, 1, 10},
		{"Midpoint", 2, 10, 0.5, 6},
		{"Negative range", 5, -5, 0.25, 2.5},
		{"Equal endpoints", 3, 3, 0.7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Lerp(tt.a, tt.b, tt.t), testutil.DefaultTolerance)
		})
	}
}

func TestLerpVec3_ComponentWise(t *testing.T) {
	a := mgl64.Vec3{0, 10, -4}
	b := mgl64.Vec3{10, 0, 4}

	testutil.AssertVec3InDelta(t, mgl64.Vec3{2.5, 7.5, -2}, LerpVec3(a, b, 0.25), testutil.DefaultTolerance)
	testutil.AssertVec3InDelta(t, a, LerpVec3(a, b, 0), testutil.DefaultTolerance)
	testutil.AssertVec3InDelta(t, b, LerpVec3(a, b, 1), testutil.DefaultTolerance)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 1.0, Clamp01(1.5))
	assert.Equal(t, 0.3, Clamp01(0.3))
	assert.Equal(t, 0.0, Clamp01(math.NaN()), "NaN should clamp to the start bound")
	assert.Equal(t, 1.0, Clamp01(math.Inf(1)))
	assert.Equal(t, 0.0, Clamp01(math.Inf(-1)))
}

func TestNonNegative(t *testing.T) {
	assert.Equal(t, 0.0, NonNegative(-3))
	assert.Equal(t, 0.0, NonNegative(math.NaN()))
	assert.Equal(t, 4.5, NonNegative(4.5))
	assert.True(t, math.IsInf(NonNegative(math.Inf(1)), 1))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 10.0, Distance(mgl64.Vec3{}, mgl64.Vec3{10, 0, 0}), testutil.DefaultTolerance)
	assert.InDelta(t, 5.0, Distance(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{4, 5, 1}), testutil.DefaultTolerance)
	assert.Equal(t, 0.0, Distance(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{2, 2, 2}))
}

func BenchmarkLerpVec3(b *testing.B) {
	a := mgl64.Vec3{1, 2, 3}
	c := mgl64.Vec3{4, 5, 6}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = LerpVec3(a, c, 0.5)
	}
}
