package easing

// Normalised tween parameters passed to gween curves: start value 0,
// change 1, over a duration of 1.
const (
	tweenBegin    = 0
	tweenChange   = 1
	tweenDuration = 1
)

// Curve names accepted by Lookup.
const (
	NameLinear     = "linear"
	NameInQuad     = "in-quad"
	NameOutQuad    = "out-quad"
	NameInOutQuad  = "in-out-quad"
	NameInCubic    = "in-cubic"
	NameOutCubic   = "out-cubic"
	NameInOutCubic = "in-out-cubic"
	NameInSine     = "in-sine"
	NameOutSine    = "out-sine"
	NameInOutSine  = "in-out-sine"
)
