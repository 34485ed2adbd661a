package constants

import "time"

// Gesture classification
const (
	// FingerCount is fixed: thumb through pinky, indices 0-4
	FingerCount = 5

	// FistRadius is the max palm-to-fingertip distance (pixels) for the
	// closed-fist hold gesture
	FistRadius = 55.0

	// OpenSpreadMin is the finger-spread floor for the open-palm gesture
	OpenSpreadMin = 0.65
)

// Mode switching
const (
	// ModeHoldThreshold is how long the switch gesture must be held
	// continuously; releasing earlier resets accumulated hold time
	ModeHoldThreshold = 1200 * time.Millisecond

	// ModeSwitchCooldown is the minimum gap between two mode switches
	ModeSwitchCooldown = 2 * time.Second
)

// Audio triggering
const (
	// TriggerVelocity is the fingertip speed (pixels/frame) that fires a
	// percussive hit
	TriggerVelocity = 5.0

	// TriggerCooldown limits per-finger retrigger rate
	TriggerCooldown = 140 * time.Millisecond
)
