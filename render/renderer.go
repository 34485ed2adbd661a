package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/gesture"
	"github.com/lixenwraith/maestro/hand"
	"github.com/lixenwraith/maestro/vmath"
)

// FrameInput is everything a renderer consumes for one frame. Hand slots
// are indexed by handedness; absent hands are nil, never an error.
type FrameInput struct {
	Hands    [2]*hand.Frame
	Prev     [2]*hand.Frame
	Gestures [2]gesture.State
	Colors   *Context
	Elapsed  float64 // seconds since session start
}

// Settings are the runtime-adjustable renderer knobs
type Settings struct {
	// Persistence is the alpha of the per-frame fade overlay; higher
	// erases trails faster
	Persistence float64
}

// DefaultSettings returns the stock trail behavior
func DefaultSettings() Settings {
	return Settings{Persistence: constants.TrailPersistence}
}

// Renderer is the common contract of the visualization family. Update
// spawns and prunes primitives; Render fades the canvas and then draws
// the survivors. Pruning always happens before primitives are iterated
// for drawing, bounding memory for any session length.
type Renderer interface {
	Name() string
	Update(in FrameInput)
	Render(dst *ebiten.Image)
	UpdateSettings(s Settings)
}

// fade paints the low-alpha full-canvas overlay that produces trailing
// motion without retained per-pixel history
func fade(dst *ebiten.Image, persistence float64) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	a := uint8(vmath.Clamp01(persistence)*255 + 0.5)
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), color.NRGBA{A: a}, false)
}

// glow draws a soft disc as stacked translucent circles
func glow(dst *ebiten.Image, pos vmath.Vec2, radius float64, clr color.NRGBA) {
	layers := 3
	for l := layers; l >= 1; l-- {
		frac := float64(l) / float64(layers)
		layerClr := clr
		layerClr.A = uint8(float64(clr.A) * (1 - frac*0.6))
		vector.DrawFilledCircle(dst, float32(pos.X), float32(pos.Y), float32(radius*frac), layerClr, false)
	}
}

// eachTip invokes fn for every fingertip of every present hand
func eachTip(in FrameInput, fn func(h *hand.Frame, st gesture.State, tip *hand.Fingertip)) {
	for slot, f := range in.Hands {
		if f == nil {
			continue
		}
		for i := range f.Fingertips {
			fn(f, in.Gestures[slot], &f.Fingertips[i])
		}
	}
}
