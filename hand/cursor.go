package hand

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// CursorSource synthesizes a single right hand from the mouse cursor so
// the instrument is playable without an external tracker. Fingertips fan
// out around the cursor; the scroll wheel opens and closes the spread,
// and holding the left button closes the hand into a fist.
type CursorSource struct {
	spread float64
}

// NewCursorSource creates a cursor-driven hand source with a half-open hand
func NewCursorSource() *CursorSource {
	return &CursorSource{spread: 0.5}
}

// Poll synthesizes the current frame from cursor position and wheel state
func (c *CursorSource) Poll() []*Frame {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return nil
	}

	_, wheel := ebiten.Wheel()
	c.spread = vmath.Clamp01(c.spread + wheel*0.05)

	spread := c.spread
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		spread = 0
	}

	palm := vmath.Vec2{X: float64(mx), Y: float64(my)}
	f := &Frame{
		Handedness: Right,
		Palm:       palm,
		Spread:     spread,
	}

	// Fan the five fingertips across an arc above the palm; a closed
	// fist collapses them onto the palm
	reach := 20 + spread*70
	for i := 0; i < constants.FingerCount; i++ {
		angle := -math.Pi/2 + (float64(i)-2)*(0.25+spread*0.2)
		f.Fingertips[i] = Fingertip{
			Pos:   palm.Add(vmath.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(reach)),
			Index: i,
		}
	}
	return []*Frame{f}
}
