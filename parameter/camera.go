package parameter

// Perspective Camera
// Projection is relative to the core: scale = CameraFocal / max(CameraEpsilon, CameraDistance - z)
const (
	CameraDistance = 700.0
	CameraFocal    = 600.0
	CameraEpsilon  = 1e-3
)
