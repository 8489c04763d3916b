// Package easing maps transition progress onto blend factors.
//
// Curves come from github.com/tanema/gween/ease, which works in the
// (t, begin, change, duration) float32 form. Here every curve is normalised
// to func(float64) float64 over [0, 1] with f(0) = 0 and f(1) = 1.
package easing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"

	"github.com/tphakala/go-pose-interpolator/internal/mathutil"
)

// Func maps progress in [0, 1] to a blend factor.
type Func func(progress float64) float64

// ErrUnknownCurve is returned by Lookup for names not in the registry.
var ErrUnknownCurve = errors.New("unknown easing curve")

// Linear returns progress unchanged.
func Linear(progress float64) float64 {
	return progress
}

// FromTween adapts a gween tween function. The endpoints are pinned so
// float32 rounding never leaves a finished transition short of its target.
func FromTween(fn ease.TweenFunc) Func {
	return func(progress float64) float64 {
		p := mathutil.Clamp01(progress)
		switch p {
		case 0:
			return 0
		case 1:
			return 1
		}
		return float64(fn(float32(p), tweenBegin, tweenChange, tweenDuration))
	}
}

var registry = map[string]Func{
	NameLinear:     Linear,
	NameInQuad:     FromTween(ease.InQuad),
	NameOutQuad:    FromTween(ease.OutQuad),
	NameInOutQuad:  FromTween(ease.InOutQuad),
	NameInCubic:    FromTween(ease.InCubic),
	NameOutCubic:   FromTween(ease.OutCubic),
	NameInOutCubic: FromTween(ease.InOutCubic),
	NameInSine:     FromTween(ease.InSine),
	NameOutSine:    FromTween(ease.OutSine),
	NameInOutSine:  FromTween(ease.InOutSine),
}

// Lookup returns the curve registered under name. An empty name selects Linear.
func Lookup(name string) (Func, error) {
	if name == "" {
		return Linear, nil
	}
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return fn, nil
}

// Names lists the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
