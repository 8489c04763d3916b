// Package trajectory drives a pose interpolator at a fixed frame rate and
// records every frame into a gonum matrix for inspection and export.
package trajectory

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Driver is the subset of the interpolator that sampling needs.
type Driver interface {
	Iterate(now float64)
	Timer() float64
	Position() mgl64.Vec3
	Rotation() mgl64.Vec3
	Finished() bool
}

// Options configures a sampling run.
type Options struct {
	// FrameRate is the number of Iterate calls per simulated second.
	FrameRate float64

	// MaxFrames caps the number of recorded rows.
	MaxFrames int

	// StartTime is the timestamp of the first frame, in seconds.
	StartTime float64

	// StopWhenFinished ends the run on the first frame at which the
	// driver reports a finished transition. That frame is recorded.
	StopWhenFinished bool

	// OnFrame, when set, runs before each Iterate call. It may reconfigure
	// the driver, e.g. to flip play direction at a given time.
	OnFrame func(frame int, now float64)
}

// ErrInvalidOptions indicates unusable sampling options.
var ErrInvalidOptions = errors.New("invalid trajectory options")

// DefaultOptions returns 60 fps sampling that stops once the transition ends.
func DefaultOptions() Options {
	return Options{
		FrameRate:        DefaultFrameRate,
		MaxFrames:        DefaultMaxFrames,
		StopWhenFinished: true,
	}
}

// Validate checks if the options are usable.
func (o *Options) Validate() error {
	if !(o.FrameRate > 0) {
		return fmt.Errorf("%w: frame rate must be positive", ErrInvalidOptions)
	}
	if o.MaxFrames < 1 {
		return fmt.Errorf("%w: max frames must be at least 1", ErrInvalidOptions)
	}
	return nil
}

// Sample runs d frame by frame and returns one row per frame with
// NumColumns columns (see ColTime and friends).
func Sample(d Driver, opts Options) (*mat.Dense, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	step := 1 / opts.FrameRate
	data := make([]float64, 0, NumColumns*min(opts.MaxFrames, DefaultMaxFrames))
	rows := 0

	for frame := 0; frame < opts.MaxFrames; frame++ {
		now := opts.StartTime + float64(frame)*step
		if opts.OnFrame != nil {
			opts.OnFrame(frame, now)
		}
		d.Iterate(now)

		pos := d.Position()
		rot := d.Rotation()
		data = append(data, now, d.Timer(), pos[0], pos[1], pos[2], rot[0], rot[1], rot[2])
		rows++

		if opts.StopWhenFinished && d.Finished() {
			break
		}
	}

	return mat.NewDense(rows, NumColumns, data), nil
}

// Column returns a copy of column col of a sampled table.
func Column(m *mat.Dense, col int) []float64 {
	return mat.Col(nil, col, m)
}

// PathLength sums the straight-line distance between consecutive sampled positions.
func PathLength(m *mat.Dense) float64 {
	rows, _ := m.Dims()
	var length float64
	for i := 1; i < rows; i++ {
		prev := m.RawRowView(i - 1)[ColPosX : ColPosZ+1]
		curr := m.RawRowView(i)[ColPosX : ColPosZ+1]
		length += floats.Distance(prev, curr, euclideanNorm)
	}
	return length
}

// Header returns the column names in table order.
func Header() []string {
	return []string{"time", "timer", "px", "py", "pz", "rx", "ry", "rz"}
}

// WriteTable writes m as aligned, tab-separated text with a header row.
// precision < 0 selects the default of 4 decimal places.
func WriteTable(w io.Writer, m *mat.Dense, precision int) error {
	if precision < 0 {
		precision = defaultPrecision
	}

	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)
	if _, err := fmt.Fprintln(tw, strings.Join(Header(), "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	rows, _ := m.Dims()
	fields := make([]string, NumColumns)
	for i := 0; i < rows; i++ {
		for j, v := range m.RawRowView(i) {
			fields[j] = strconv.FormatFloat(v, floatFormat, precision, 64)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(fields, "\t")); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	return tw.Flush()
}
