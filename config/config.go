package config

// Viewer layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 1280
	WindowHeight = 800

	// Initial pixels per world unit in the viewer
	DefaultZoom = 8.0
	MinZoom     = 2.0
	MaxZoom     = 48.0

	// Camera pan speed in world units per tick
	PanSpeed = 0.5

	// Step applied per zoom key press or wheel notch
	ZoomStep = 1.1
)

// Generation defaults used when no preset is selected
const (
	DefaultPresetDir  = "data/presets"
	DefaultWallHeight = 4.0
)

// GetWindowSize returns the recommended window size in pixels
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
