// Package constants defines shared constants and configuration values
// used throughout the swiper packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the demo host and the logging setup.
const (
	DebugEnvVar        = "SWIPER_DEBUG"
	LayoutPathEnvVar   = "SWIPER_LAYOUT"
	TouchDeviceEnvVar  = "SWIPER_TOUCH_DEVICE"
	LocaleEnvVar       = "SWIPER_LOCALE"
	FontPathEnvVar     = "SWIPER_FONT"
	LogPathEnvVar      = "SWIPER_LOG"
	LogLevelEnvVar     = "SWIPER_LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Drag and fling tuning defaults.
const (
	// DefaultThreshold is the fraction of the distance to the next step a
	// drag has to cover before it commits.
	DefaultThreshold = 0.5

	// SlowFactor converts between a distance and the fling velocity that
	// covers it. Layouts using the decay curve must keep it above the
	// friction.
	SlowFactor = 4.5

	// DefaultFriction is the exponential decay rate of a fling, per second.
	DefaultFriction = 4.2

	// DefaultStopVelocity is the speed (units per second) below which a
	// settle is considered at rest.
	DefaultStopVelocity = 62.5

	DefaultSpringFrequency = 6.0
	DefaultSpringDamping   = 1.0
)

// Velocity tracking windows.
const (
	VelocityHorizon      = 100 * time.Millisecond // Oldest sample age considered
	PointerStoppedGap    = 40 * time.Millisecond  // Gap after which older samples are dropped
	MaxVelocitySamples   = 20
	DefaultFrameInterval = 16 * time.Millisecond
)

// Default timing constants for the demo host.
const (
	DefaultInputDelay  = 20 * time.Millisecond  // Debounce delay between input events
	DefaultRepeatDelay = 300 * time.Millisecond // Hold time before d-pad repeat starts
	DefaultRepeatRate  = 120 * time.Millisecond // Interval between d-pad repeats
)
