package poseinterp

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-pose-interpolator/internal/easing"
	"github.com/tphakala/go-pose-interpolator/internal/mathutil"
)

// RotationOrder selects how the three rotation angles of a pose are composed.
type RotationOrder = mathutil.Order

// Supported rotation orders. The name lists the axes in the order they
// are applied to a vector.
const (
	// OrderXYZ applies pitch (X), then yaw (Y), then roll (Z): R = Rz·Ry·Rx.
	OrderXYZ = mathutil.OrderXYZ

	// OrderZYX applies roll (Z), then yaw (Y), then pitch (X): R = Rx·Ry·Rz.
	OrderZYX = mathutil.OrderZYX

	// OrderYXZ applies yaw (Y), then pitch (X), then roll (Z): R = Rz·Rx·Ry.
	OrderYXZ = mathutil.OrderYXZ
)

// EasingFunc maps transition progress in [0, 1] to a blend factor in [0, 1].
// It must satisfy f(0) = 0 and f(1) = 1 and be non-decreasing.
type EasingFunc = easing.Func

// Config holds interpolator configuration.
type Config struct {
	// Speed is the travel speed in distance units per second. It determines
	// the duration of each transition from the distance between positions.
	// Zero means every transition lasts exactly MinDuration.
	Speed float64

	// MinDuration is the lower bound, in seconds, for any transition.
	MinDuration float64

	// Reverse starts the interpolator in reverse play (end toward start).
	Reverse bool

	// Easing shapes the blend factor for scripted transitions.
	// Nil selects linear blending. Interactive pairs always blend linearly.
	Easing EasingFunc

	// Order is the Euler composition order for pose rotations.
	Order RotationOrder
}

// Common errors returned by the interpolator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid interpolator configuration")
)

// DefaultConfig returns the configuration used by NewDefault.
func DefaultConfig() Config {
	return Config{
		Speed:       defaultSpeed,
		MinDuration: defaultMinDuration,
		Order:       OrderXYZ,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		return fmt.Errorf("%w: speed must be finite", ErrInvalidConfig)
	}

	if c.Speed < 0 {
		return fmt.Errorf("%w: speed must not be negative", ErrInvalidConfig)
	}

	if math.IsNaN(c.MinDuration) || math.IsInf(c.MinDuration, 0) {
		return fmt.Errorf("%w: min duration must be finite", ErrInvalidConfig)
	}

	if c.MinDuration < 0 {
		return fmt.Errorf("%w: min duration must not be negative", ErrInvalidConfig)
	}

	if !c.Order.Valid() {
		return fmt.Errorf("%w: unknown rotation order %d", ErrInvalidConfig, int(c.Order))
	}

	return nil
}

// ParseRotationOrder converts "xyz", "zyx" or "yxz" (either case) to a RotationOrder.
// An empty string selects OrderXYZ.
func ParseRotationOrder(s string) (RotationOrder, error) {
	order, ok := mathutil.ParseOrder(s)
	if !ok {
		return OrderXYZ, fmt.Errorf("%w: unknown rotation order %q", ErrInvalidConfig, s)
	}
	return order, nil
}

// EasingByName returns a named easing curve, for configuration files.
// Known names are listed by EasingNames; an empty name selects linear.
func EasingByName(name string) (EasingFunc, error) {
	fn, err := easing.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return fn, nil
}

// EasingNames lists the curves accepted by EasingByName.
func EasingNames() []string {
	return easing.Names()
}
