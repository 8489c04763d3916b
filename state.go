package poseinterp

// State is the interpolator's animation state.
type State int

const (
	// StateIdle means no pair is active; Iterate does nothing.
	StateIdle State = iota

	// StateAnimating means a pair is active. The timer may already sit at
	// its terminal bound; see Interpolator.Finished.
	StateAnimating
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}
