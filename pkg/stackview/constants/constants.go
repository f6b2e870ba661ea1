// Package constants defines environment variables and default tuning values
// shared across the stackview packages.
package constants

import (
	"os"
	"time"
)

// Development is the ENVIRONMENT value that enables windowed dev mode.
const Development = "DEV"

const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	DebugEnvVar        = "STACKVIEW_DEBUG" // Enables debug output of the library logger
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Gesture defaults.
const (
	// DefaultGestureVelocityThreshold is the release speed (px/s) above which
	// a drag is decided by its direction instead of its distance.
	DefaultGestureVelocityThreshold = 500.0

	// Distance from the entering edge within which a drag may start.
	DefaultGestureResponseDistanceHorizontal = 25.0
	DefaultGestureResponseDistanceVertical   = 135.0

	// GestureVelocityWindow is how far back release velocity looks.
	GestureVelocityWindow = 100 * time.Millisecond
)

// Rendering defaults.
const (
	FrameInterval             = 16 * time.Millisecond
	DefaultHeaderHeight int32 = 56
	DefaultWindowWidth  int32 = 1024
	DefaultWindowHeight int32 = 768
	DefaultFontSize           = 22
	DefaultBackTitle          = "Back"
)
