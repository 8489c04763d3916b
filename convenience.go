package poseinterp

// Common speeds for convenience constructors, in distance units per second.
const (
	// SpeedSlow suits cinematic fly-throughs.
	SpeedSlow = 0.5

	// SpeedNormal matches DefaultConfig.
	SpeedNormal = defaultSpeed

	// SpeedFast suits snapping between nearby viewpoints.
	SpeedFast = 5.0
)

// NewDefault creates an interpolator with DefaultConfig.
func NewDefault() *Interpolator {
	return newInterpolator(DefaultConfig())
}

// NewWithSpeed creates an interpolator with the given speed and duration
// floor and linear blending.
func NewWithSpeed(speed, minDuration float64) (*Interpolator, error) {
	return New(&Config{
		Speed:       speed,
		MinDuration: minDuration,
		Order:       OrderXYZ,
	})
}

// NewEased creates an interpolator that shapes scripted transitions with
// the named easing curve (see EasingNames).
func NewEased(speed, minDuration float64, curve string) (*Interpolator, error) {
	fn, err := EasingByName(curve)
	if err != nil {
		return nil, err
	}
	return New(&Config{
		Speed:       speed,
		MinDuration: minDuration,
		Easing:      fn,
		Order:       OrderXYZ,
	})
}

// Evaluate returns the pose a fresh interpolator with config would produce
// for pair at progress, without running a clock. Progress is clamped to [0, 1].
func Evaluate(config *Config, pair Pair, progress float64) (Frame, error) {
	ip, err := New(config)
	if err != nil {
		return Frame{}, err
	}
	ip.SetPair(pair)
	ip.SetTimer(progress)
	ip.update()
	return ip.Frame(), nil
}
