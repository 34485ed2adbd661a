// Package gesture derives velocity and hold signals from successive hand
// frames. Classification is positional and tolerant: a hand disappearing
// between frames degrades to zero signal, never a fault.
package gesture

import (
	"time"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/hand"
	"github.com/lixenwraith/maestro/vmath"
)

// Hold identifies a sustained static gesture
type Hold int

const (
	HoldNone Hold = iota
	HoldFist      // every fingertip within FistRadius of the palm
	HoldOpen      // finger spread above OpenSpreadMin
)

func (h Hold) String() string {
	switch h {
	case HoldFist:
		return "fist"
	case HoldOpen:
		return "open"
	default:
		return "none"
	}
}

// State is the per-hand classification result, recomputed every frame
type State struct {
	Velocities [constants.FingerCount]float64    // pixels per frame
	Motion     [constants.FingerCount]vmath.Vec2 // per-frame displacement
	Held       Hold
	HoldStart  time.Time
}

// HoldDuration returns how long the current hold gesture has been
// continuously maintained
func (s *State) HoldDuration(now time.Time) time.Duration {
	if s.Held == HoldNone {
		return 0
	}
	return now.Sub(s.HoldStart)
}

// Classifier tracks hold continuity per hand across frames
type Classifier struct {
	holds  [2]Hold
	starts [2]time.Time
}

// NewClassifier creates a classifier with no gesture history
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify diffs cur against prev and returns the hand's gesture state.
// prev may be nil on the first frame or after hand re-acquisition; that
// yields zero velocities, not an error. cur may be nil when the hand is
// lost, which resets hold tracking and returns a zero state.
func (c *Classifier) Classify(cur, prev *hand.Frame, now time.Time) State {
	if cur == nil {
		if prev != nil {
			c.reset(prev.Handedness)
		}
		return State{}
	}

	var st State
	if prev != nil {
		for i := range cur.Fingertips {
			tip := &cur.Fingertips[i]
			prevTip := prev.Tip(tip.Index)
			if prevTip == nil {
				continue
			}
			d := tip.Pos.Sub(prevTip.Pos)
			if tip.Index >= 0 && tip.Index < constants.FingerCount {
				st.Motion[tip.Index] = d
				st.Velocities[tip.Index] = d.Mag()
			}
		}
	}

	st.Held = detectHold(cur)
	slot := int(cur.Handedness)
	if st.Held != c.holds[slot] {
		c.holds[slot] = st.Held
		c.starts[slot] = now
	}
	st.HoldStart = c.starts[slot]
	return st
}

func (c *Classifier) reset(h hand.Handedness) {
	c.holds[int(h)] = HoldNone
}

// detectHold classifies the static pose of a single frame
func detectHold(f *hand.Frame) Hold {
	fist := true
	for i := range f.Fingertips {
		if f.Fingertips[i].Pos.Dist(f.Palm) > constants.FistRadius {
			fist = false
			break
		}
	}
	if fist {
		return HoldFist
	}
	if f.Spread >= constants.OpenSpreadMin {
		return HoldOpen
	}
	return HoldNone
}
