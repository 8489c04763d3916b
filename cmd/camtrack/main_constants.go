package main

// Default command-line flag values
const (
	defaultPrecision = 4 // Decimal places in the frame table
)

// Built-in demo scenario: a 10-unit dolly with a quarter yaw turn,
// reversed halfway through.
const (
	demoSpeed       = 5.0   // Units per second
	demoMinDuration = 0.5   // Seconds
	demoDistance    = 10.0  // Units along X
	demoYaw         = 1.571 // Radians, roughly a quarter turn
	demoFrameRate   = 10.0  // Frames per second
	demoReverseAt   = 1.0   // Seconds after the first frame
)

// Pose vectors in scenario files have exactly three components.
const vectorComponents = 3
