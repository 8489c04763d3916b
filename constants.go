package poseinterp

// Default configuration values
const (
	defaultSpeed       = 1.0  // Distance units per second
	defaultMinDuration = 0.25 // Seconds; keeps tiny moves from snapping
)

// Timer bounds
const (
	timerStart = 0.0 // Forward play starts here, reverse play ends here
	timerEnd   = 1.0 // Forward play ends here, reverse play starts here
)
