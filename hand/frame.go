// Package hand defines the hand-landmark data model and the sources that
// produce it. A source delivers zero to two frames per visual frame; a
// missing hand is an absent entry, never an error.
package hand

import (
	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// Handedness labels which physical hand a frame belongs to
type Handedness int

const (
	Left Handedness = iota
	Right
)

func (h Handedness) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Fingertip is one tracked fingertip landmark
type Fingertip struct {
	Pos   vmath.Vec2
	Index int // 0 = thumb .. 4 = pinky
}

// Frame is an immutable snapshot of one hand for one input frame.
// Consumers hold it by pointer and never mutate it; the render loop keeps
// the previous frame only for velocity computation.
type Frame struct {
	Handedness Handedness
	Palm       vmath.Vec2
	Fingertips [constants.FingerCount]Fingertip
	Spread     float64 // normalized finger spread 0..1
}

// Tip returns the fingertip with the given finger index, or nil if the
// frame carries no landmark for it
func (f *Frame) Tip(index int) *Fingertip {
	if f == nil || index < 0 || index >= constants.FingerCount {
		return nil
	}
	for i := range f.Fingertips {
		if f.Fingertips[i].Index == index {
			return &f.Fingertips[i]
		}
	}
	return nil
}

// Source supplies hand frames once per visual frame. Poll never blocks and
// never errors: a lost tracker degrades to an empty slice.
type Source interface {
	Poll() []*Frame
}
