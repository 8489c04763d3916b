package mathutil

// Blend factor bounds
const (
	progressMin = 0.0 // Start of a transition
	progressMax = 1.0 // End of a transition
)

// Rotation matrix sanity thresholds
const (
	// orthonormalTolerance bounds the deviation of RᵀR from identity that
	// IsRigid accepts. Euler-built rotations sit around 1e-15.
	orthonormalTolerance = 1e-9
)

// Homogeneous matrix layout (column-major, mgl64 convention)
const (
	translationColumn = 3 // Column holding the translation vector
	spatialDims       = 3 // x, y, z
)
