package trajectory

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	poseinterp "github.com/tphakala/go-pose-interpolator"
	"github.com/tphakala/go-pose-interpolator/internal/testutil"
)

var straightLine = poseinterp.Pair{
	Start: poseinterp.Pose{Position: mgl64.Vec3{0, 0, 0}},
	End:   poseinterp.Pose{Position: mgl64.Vec3{0, 0, 10}},
}

func newDriver(t *testing.T, speed float64) *poseinterp.Interpolator {
	t.Helper()
	ip, err := poseinterp.NewWithSpeed(speed, 0)
	require.NoError(t, err)
	ip.SetPair(straightLine)
	return ip
}

func TestSample_StopsWhenFinished(t *testing.T) {
	ip := newDriver(t, 10) // 1 second

	// Power-of-two frame steps keep the accumulated timer exact.
	opts := Options{FrameRate: 8, MaxFrames: 100, StopWhenFinished: true}
	table, err := Sample(ip, opts)
	require.NoError(t, err)

	rows, cols := table.Dims()
	assert.Equal(t, NumColumns, cols)
	assert.Equal(t, 9, rows, "frames at t=0 .. 1 in 1/8 s steps")

	timers := Column(table, ColTimer)
	testutil.AssertMonotonic(t, timers)
	assert.Equal(t, 0.0, timers[0])
	assert.Equal(t, 1.0, timers[rows-1])

	assert.InDelta(t, 10.0, table.At(rows-1, ColPosZ), testutil.DefaultTolerance)
	assert.InDelta(t, 10.0, PathLength(table), 1e-9)
}

func TestSample_RespectsMaxFrames(t *testing.T) {
	ip := newDriver(t, 1) // 10 seconds

	table, err := Sample(ip, Options{FrameRate: 30, MaxFrames: 5})
	require.NoError(t, err)

	rows, _ := table.Dims()
	assert.Equal(t, 5, rows)
	assert.InDelta(t, 4.0/30, table.At(4, ColTime), testutil.DefaultTolerance)
}

func TestSample_StartTime(t *testing.T) {
	ip := newDriver(t, 10)

	table, err := Sample(ip, Options{FrameRate: 2, MaxFrames: 3, StartTime: 1000})
	require.NoError(t, err)

	times := Column(table, ColTime)
	assert.Equal(t, []float64{1000, 1000.5, 1001}, times)
	assert.Equal(t, 0.0, table.At(0, ColTimer), "first frame contributes no time")
}

func TestSample_OnFrameCanReverse(t *testing.T) {
	ip := newDriver(t, 10) // 1 second

	opts := Options{
		FrameRate:        8,
		MaxFrames:        100,
		StopWhenFinished: true,
		OnFrame: func(frame int, now float64) {
			if frame == 5 {
				ip.SetReverse(true)
			}
		},
	}
	table, err := Sample(ip, opts)
	require.NoError(t, err)

	timers := Column(table, ColTimer)
	testutil.AssertMonotonic(t, timers[:5])
	testutil.AssertMonotonicDecreasing(t, timers[4:])
	assert.Equal(t, 0.0, timers[len(timers)-1])
	assert.Equal(t, 0.5, timers[4])
	assert.Equal(t, 0.375, timers[5])
}

func TestSample_InvalidOptions(t *testing.T) {
	ip := newDriver(t, 1)

	tests := []struct {
		name string
		opts Options
	}{
		{"Zero frame rate", Options{FrameRate: 0, MaxFrames: 10}},
		{"Negative frame rate", Options{FrameRate: -30, MaxFrames: 10}},
		{"Zero frames", Options{FrameRate: 30, MaxFrames: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sample(ip, tt.opts)
			require.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())
	assert.True(t, opts.StopWhenFinished)
	assert.Equal(t, DefaultFrameRate, opts.FrameRate)
}

func TestWriteTable(t *testing.T) {
	ip := newDriver(t, 10)
	table, err := Sample(ip, Options{FrameRate: 2, MaxFrames: 10, StopWhenFinished: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, table, 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4, "header plus frames at 0, 0.5 and 1.0")
	assert.Equal(t, Header(), strings.Fields(lines[0]))

	last := strings.Fields(lines[3])
	require.Len(t, last, NumColumns)
	assert.Equal(t, "1.00", last[ColTime])
	assert.Equal(t, "1.00", last[ColTimer])
	assert.Equal(t, "10.00", last[ColPosZ])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteTable_PropagatesWriteErrors(t *testing.T) {
	ip := newDriver(t, 10)
	table, err := Sample(ip, DefaultOptions())
	require.NoError(t, err)

	assert.Error(t, WriteTable(failingWriter{}, table, -1))
}

func BenchmarkSample(b *testing.B) {
	ip, err := poseinterp.NewWithSpeed(1, 0)
	require.NoError(b, err)
	opts := DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ip.SetPair(straightLine)
		_, _ = Sample(ip, opts)
	}
}
