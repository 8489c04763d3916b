// Package poseinterp animates a virtual camera between two poses in pure Go.
//
// A pose is a position plus three rotation angles. Given a start and end pose
// and a stream of timestamps, an [Interpolator] advances a normalised progress
// timer, blends the two poses and rebuilds a 4×4 transform for the renderer.
//
// # Features
//
//   - Duration derived from travel distance and speed, with a minimum floor
//   - Reverse play for undo and ping-pong transitions, switchable mid-flight
//   - Seek and replay without discarding the active pair
//   - Optional easing curves for scripted transitions via github.com/tanema/gween
//   - Camera-to-world and view matrices built with github.com/go-gl/mathgl
//   - Deterministic: timestamps are injected, no clock is ever read
//
// # Quick Start
//
//	ip := poseinterp.NewDefault()
//	ip.SetPair(poseinterp.Pair{
//	    Start: poseinterp.Pose{Position: mgl64.Vec3{0, 0, 0}},
//	    End:   poseinterp.Pose{Position: mgl64.Vec3{10, 0, 0}},
//	})
//
//	for !ip.Finished() {
//	    ip.Iterate(now())
//	    render(ip.ViewMatrix())
//	}
//
// For full control, build a [Config]:
//
//	config := &poseinterp.Config{
//	    Speed:       5,   // units per second
//	    MinDuration: 0.5, // seconds
//	    Order:       poseinterp.OrderYXZ,
//	}
//	ip, err := poseinterp.New(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Timing
//
// Timestamps are seconds as float64 and must come from one monotonic source.
// The first [Interpolator.Iterate] call after [Interpolator.SetPair] or
// [Interpolator.Reset] only records the timestamp. Each later call advances the
// timer by elapsed/duration, clamped to [0, 1]. A timestamp earlier than the
// previous one counts as zero elapsed time.
//
// The duration of a transition is fixed when the pair is set:
//
//	duration = max(distance(start, end) / speed, minDuration)
//
// Changing speed or the minimum duration later only affects the next pair, so
// an in-flight transition never jumps.
//
// # Conventions
//
// Rotation angles are radians about X (pitch), Y (yaw) and Z (roll), composed
// in the configured [RotationOrder]. [Interpolator.Matrix] is
// Translate(position) · Rotate(rotation): the camera-to-world transform in
// mgl64's column-major layout, ready for OpenGL-style renderers.
// [Interpolator.ViewMatrix] is its inverse.
//
// # Error Handling
//
// Only construction can fail, with errors wrapping [ErrInvalidConfig].
// Runtime operations never return errors: zero speed, zero distance and
// regressed timestamps are absorbed by clamping. Non-finite pose components are
// not validated and propagate into the outputs.
//
// # Thread Safety
//
// An [Interpolator] is meant to be owned by one render loop and is not safe
// for concurrent use.
package poseinterp
