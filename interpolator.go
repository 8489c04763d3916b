package poseinterp

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tphakala/go-pose-interpolator/internal/easing"
	"github.com/tphakala/go-pose-interpolator/internal/mathutil"
)

// Interpolator animates a camera between the two poses of a Pair.
//
// The caller feeds timestamps through Iterate, typically once per rendered
// frame, and reads the resulting Matrix. All outputs are recomputed inside
// Iterate, so reads are cheap and always reflect the last processed frame.
//
// An Interpolator is not safe for concurrent use.
type Interpolator struct {
	easing easing.Func
	order  RotationOrder

	pair   Pair
	active bool

	timer       float64
	speed       float64
	minDuration float64
	duration    float64
	reverse     bool

	lastTime float64
	hasLast  bool

	blend    float64
	position mgl64.Vec3
	rotation mgl64.Vec3
	matrix   mgl64.Mat4
	view     mgl64.Mat4
}

// Frame is a snapshot of the interpolator outputs after one Iterate call.
type Frame struct {
	// Timer is the transition progress in [0, 1].
	Timer float64

	// Blend is the eased blend factor derived from Timer.
	Blend float64

	Position mgl64.Vec3
	Rotation mgl64.Vec3

	// Matrix is the camera-to-world transform, Translate(Position) · Rotate(Rotation).
	Matrix mgl64.Mat4
}

// New creates an interpolator with the specified configuration.
// The interpolator starts idle with identity matrices.
func New(config *Config) (*Interpolator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newInterpolator(*config), nil
}

func newInterpolator(config Config) *Interpolator {
	fn := config.Easing
	if fn == nil {
		fn = easing.Linear
	}

	ip := &Interpolator{
		easing:      fn,
		order:       config.Order,
		speed:       config.Speed,
		minDuration: config.MinDuration,
		reverse:     config.Reverse,
		matrix:      mgl64.Ident4(),
		view:        mgl64.Ident4(),
	}
	ip.timer = ip.startBound()
	return ip
}

// SetPair starts a new transition, discarding any previous one.
//
// The duration is fixed here: distance between positions divided by the
// current speed, floored at the current minimum duration. The timer moves to
// the start bound of the current play direction and the elapsed-time
// reference is cleared, so the next Iterate call contributes no time.
func (ip *Interpolator) SetPair(pair Pair) {
	ip.pair = pair
	ip.active = true
	ip.duration = ip.durationFor(pair)
	ip.timer = ip.startBound()
	ip.hasLast = false
}

// Clear cancels the active transition. Outputs keep their last values.
func (ip *Interpolator) Clear() {
	ip.pair = Pair{}
	ip.active = false
	ip.duration = 0
	ip.hasLast = false
}

// Iterate advances the active transition to time now, in seconds, and
// recomputes position, rotation and matrices. It does nothing when idle.
//
// The first call after SetPair or Reset only records now. Later calls advance
// the timer by the elapsed time since the previous call; a timestamp earlier
// than the previous one counts as no elapsed time.
func (ip *Interpolator) Iterate(now float64) {
	if !ip.active {
		return
	}

	var delta float64
	if ip.hasLast {
		delta = mathutil.NonNegative(now - ip.lastTime)
	}
	if !math.IsNaN(now) {
		ip.lastTime = now
		ip.hasLast = true
	}

	ip.advance(delta)
	ip.update()
}

// Reset replays the active transition from its start bound. The pair, speed,
// duration and minimum duration are left untouched.
func (ip *Interpolator) Reset() {
	ip.timer = ip.startBound()
	ip.hasLast = false
}

// advance moves the timer by delta seconds in the current play direction.
func (ip *Interpolator) advance(delta float64) {
	if !(ip.duration > 0) {
		ip.timer = ip.endBound()
		return
	}

	step := delta / ip.duration
	if ip.reverse {
		step = -step
	}
	ip.timer = mathutil.Clamp01(ip.timer + step)
}

// update rebuilds every output from the current timer.
func (ip *Interpolator) update() {
	ip.blend = ip.timer
	if !ip.pair.Interactive {
		ip.blend = ip.easing(ip.timer)
	}

	pose := ip.pair.At(ip.blend)
	ip.position = pose.Position
	ip.rotation = pose.Rotation
	ip.matrix = mathutil.Compose(ip.position, ip.rotation, ip.order)
	ip.view = mathutil.RigidInverse(ip.matrix)
}

func (ip *Interpolator) durationFor(pair Pair) float64 {
	duration := ip.minDuration
	distance := pair.Distance()
	if ip.speed > 0 && distance > 0 {
		duration = max(distance/ip.speed, duration)
	}
	return duration
}

func (ip *Interpolator) startBound() float64 {
	if ip.reverse {
		return timerEnd
	}
	return timerStart
}

func (ip *Interpolator) endBound() float64 {
	if ip.reverse {
		return timerStart
	}
	return timerEnd
}

// Speed returns the travel speed in distance units per second.
func (ip *Interpolator) Speed() float64 {
	return ip.speed
}

// SetSpeed changes the speed used for the next SetPair call. The duration
// of an in-flight transition is not recomputed. Negative or NaN values are
// stored as zero.
func (ip *Interpolator) SetSpeed(speed float64) {
	ip.speed = mathutil.NonNegative(speed)
}

// MinDuration returns the duration floor in seconds.
func (ip *Interpolator) MinDuration() float64 {
	return ip.minDuration
}

// SetMinDuration changes the floor used for the next SetPair call. The
// duration of an in-flight transition is not recomputed. Negative or NaN
// values are stored as zero.
func (ip *Interpolator) SetMinDuration(seconds float64) {
	ip.minDuration = mathutil.NonNegative(seconds)
}

// Reverse reports whether the timer runs from 1 toward 0.
func (ip *Interpolator) Reverse() bool {
	return ip.reverse
}

// SetReverse flips the play direction for later Iterate calls.
// The timer stays where it is, so a transition can turn around mid-flight.
func (ip *Interpolator) SetReverse(reverse bool) {
	ip.reverse = reverse
}

// Timer returns the transition progress in [0, 1].
func (ip *Interpolator) Timer() float64 {
	return ip.timer
}

// SetTimer seeks to progress, clamped to [0, 1]. Outputs are refreshed by
// the next Iterate call.
func (ip *Interpolator) SetTimer(progress float64) {
	ip.timer = mathutil.Clamp01(progress)
}

// Duration returns the length in seconds of the active transition,
// or zero when idle.
func (ip *Interpolator) Duration() float64 {
	return ip.duration
}

// Pair returns the active pair and whether one is set.
func (ip *Interpolator) Pair() (Pair, bool) {
	return ip.pair, ip.active
}

// Order returns the rotation order used to build matrices.
func (ip *Interpolator) Order() RotationOrder {
	return ip.order
}

// State returns StateAnimating while a pair is active, StateIdle otherwise.
func (ip *Interpolator) State() State {
	if ip.active {
		return StateAnimating
	}
	return StateIdle
}

// Active reports whether a pair is set.
func (ip *Interpolator) Active() bool {
	return ip.active
}

// Finished reports whether the active transition has reached the terminal
// bound of the current play direction.
func (ip *Interpolator) Finished() bool {
	return ip.active && ip.timer == ip.endBound()
}

// Position returns the interpolated camera position.
func (ip *Interpolator) Position() mgl64.Vec3 {
	return ip.position
}

// Rotation returns the interpolated camera rotation angles.
func (ip *Interpolator) Rotation() mgl64.Vec3 {
	return ip.rotation
}

// Matrix returns the camera-to-world transform, column-major.
func (ip *Interpolator) Matrix() mgl64.Mat4 {
	return ip.matrix
}

// ViewMatrix returns the world-to-camera transform, the inverse of Matrix.
func (ip *Interpolator) ViewMatrix() mgl64.Mat4 {
	return ip.view
}

// Frame returns a snapshot of the current outputs.
func (ip *Interpolator) Frame() Frame {
	return Frame{
		Timer:    ip.timer,
		Blend:    ip.blend,
		Position: ip.position,
		Rotation: ip.rotation,
		Matrix:   ip.matrix,
	}
}
