package poseinterp

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-pose-interpolator/internal/testutil"
)

func TestPair_Distance(t *testing.T) {
	pair := Pair{
		Start: Pose{Position: mgl64.Vec3{1, 2, 3}},
		End:   Pose{Position: mgl64.Vec3{4, 6, 3}, Rotation: mgl64.Vec3{1, 1, 1}},
	}
	assert.InDelta(t, 5.0, pair.Distance(), testutil.DefaultTolerance,
		"rotation must not contribute to travel distance")
}

func TestPair_Swapped(t *testing.T) {
	pair := Pair{
		Start:       Pose{Position: mgl64.Vec3{1, 0, 0}},
		End:         Pose{Position: mgl64.Vec3{2, 0, 0}},
		Interactive: true,
	}
	swapped := pair.Swapped()

	assert.Equal(t, pair.End, swapped.Start)
	assert.Equal(t, pair.Start, swapped.End)
	assert.True(t, swapped.Interactive)
}

func TestPair_At(t *testing.T) {
	pair := Pair{
		Start: Pose{Position: mgl64.Vec3{0, 0, 0}, Rotation: mgl64.Vec3{0, 0, 0}},
		End:   Pose{Position: mgl64.Vec3{4, -8, 2}, Rotation: mgl64.Vec3{math.Pi, 0, -1}},
	}

	mid := pair.At(0.5)
	testutil.AssertVec3InDelta(t, mgl64.Vec3{2, -4, 1}, mid.Position, testutil.DefaultTolerance)
	testutil.AssertVec3InDelta(t, mgl64.Vec3{math.Pi / 2, 0, -0.5}, mid.Rotation, testutil.DefaultTolerance)

	assert.True(t, pair.At(0).Equal(pair.Start, 0))
	assert.True(t, pair.At(1).Equal(pair.End, 0))
}

func TestPose_Equal(t *testing.T) {
	a := Pose{Position: mgl64.Vec3{1, 2, 3}, Rotation: mgl64.Vec3{0.1, 0.2, 0.3}}
	b := a
	b.Rotation[2] += 1e-6

	assert.True(t, a.Equal(b, 1e-5))
	assert.False(t, a.Equal(b, 1e-7))

	nan := a
	nan.Position[0] = math.NaN()
	assert.False(t, a.Equal(nan, 1))
}

func TestPose_IsCopiedByValue(t *testing.T) {
	start := Pose{Position: mgl64.Vec3{0, 0, 0}}
	end := Pose{Position: mgl64.Vec3{10, 0, 0}}

	ip := NewDefault()
	ip.SetPair(Pair{Start: start, End: end})

	// Mutating the caller's copies after SetPair must not leak in.
	end.Position[0] = 1000
	start.Position[1] = 50

	got, ok := ip.Pair()
	assert.True(t, ok)
	assert.Equal(t, 10.0, got.End.Position[0])
	assert.Equal(t, 0.0, got.Start.Position[1])
}

func TestPose_Matrix(t *testing.T) {
	pose := Pose{Position: mgl64.Vec3{1, 2, 3}, Rotation: mgl64.Vec3{0.2, 0.4, 0.6}}
	m := pose.Matrix(OrderXYZ)

	testutil.AssertProperRotation(t, m, testutil.MatrixTolerance)
	testutil.AssertVec3InDelta(t, pose.Position, m.Col(3).Vec3(), testutil.DefaultTolerance)
}
