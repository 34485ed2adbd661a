// Package modes holds the performance-mode state machine. The active mode
// selects both the renderer and the gesture-to-audio mapping; a sustained
// switch gesture cycles through the set for the whole session.
package modes

import (
	"time"

	"github.com/lixenwraith/maestro/constants"
)

// Mode identifies one performance mode
type Mode int

const (
	Ribbons Mode = iota
	Theremin
	Pads
	Fountain
	Orbits
	Echoes
	modeCount
)

func (m Mode) String() string {
	switch m {
	case Ribbons:
		return "ribbons"
	case Theremin:
		return "theremin"
	case Pads:
		return "pads"
	case Fountain:
		return "fountain"
	case Orbits:
		return "orbits"
	case Echoes:
		return "echoes"
	default:
		return "unknown"
	}
}

// All returns the cycle order of the mode set
func All() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// Controller advances the mode when the switch gesture has been held
// continuously for the hold threshold and the cooldown since the last
// switch has elapsed. Releasing before the threshold resets accumulated
// hold time: there is no partial credit.
type Controller struct {
	current    Mode
	holdStart  time.Time
	holding    bool
	lastSwitch time.Time

	// OnChange, when set, is invoked with the new mode after a switch
	OnChange func(Mode)
}

// NewController starts in the first mode with both timers expired so the
// first qualifying hold can switch immediately after the hold threshold
func NewController(now time.Time) *Controller {
	return &Controller{
		current:    Ribbons,
		lastSwitch: now.Add(-constants.ModeSwitchCooldown),
	}
}

// Current returns the active mode
func (c *Controller) Current() Mode {
	return c.current
}

// Update feeds one frame of switch-gesture detection into the machine and
// reports whether a switch happened this frame
func (c *Controller) Update(now time.Time, switchHeld bool) (Mode, bool) {
	if !switchHeld {
		c.holding = false
		return c.current, false
	}

	if !c.holding {
		c.holding = true
		c.holdStart = now
	}

	if now.Sub(c.holdStart) < constants.ModeHoldThreshold {
		return c.current, false
	}
	if now.Sub(c.lastSwitch) < constants.ModeSwitchCooldown {
		return c.current, false
	}

	c.current = (c.current + 1) % modeCount
	c.lastSwitch = now
	c.holdStart = now // a continued hold must re-earn the full threshold
	if c.OnChange != nil {
		c.OnChange(c.current)
	}
	return c.current, true
}
