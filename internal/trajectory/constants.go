package trajectory

// Table columns, one row per sampled frame.
const (
	ColTime  = iota // Timestamp passed to Iterate, seconds
	ColTimer        // Progress after Iterate
	ColPosX
	ColPosY
	ColPosZ
	ColRotX
	ColRotY
	ColRotZ

	NumColumns
)

// Sampling defaults
const (
	DefaultFrameRate = 60.0 // Frames per second
	DefaultMaxFrames = 3600 // One minute at the default rate
)

// Output formatting
const (
	floatFormat      = 'f'
	defaultPrecision = 4
	tabMinWidth      = 8
	tabWidth         = 8
	tabPadding       = 2
	tabPadChar       = ' '
	euclideanNorm    = 2
)
