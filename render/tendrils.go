package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/gesture"
	"github.com/lixenwraith/maestro/hand"
	"github.com/lixenwraith/maestro/vmath"
)

// TendrilRenderer draws a rotating, pulsing ring of soft blobs around
// each fingertip, dragged by the fingertip's instantaneous velocity for a
// smoke-like look. It keeps no primitive collection; the trail overlay
// supplies all persistence.
type TendrilRenderer struct {
	settings Settings
	input    FrameInput
}

// NewTendrilRenderer creates the fluid-tendril renderer
func NewTendrilRenderer() *TendrilRenderer {
	return &TendrilRenderer{settings: DefaultSettings()}
}

func (r *TendrilRenderer) Name() string { return "tendrils" }

func (r *TendrilRenderer) UpdateSettings(s Settings) { r.settings = s }

func (r *TendrilRenderer) Update(in FrameInput) {
	r.input = in
}

func (r *TendrilRenderer) Render(dst *ebiten.Image) {
	fade(dst, r.settings.Persistence)

	in := r.input
	if in.Colors == nil {
		return
	}
	eachTip(in, func(f *hand.Frame, st gesture.State, tip *hand.Fingertip) {
		r.drawTendril(dst, in, st, tip)
	})
}

func (r *TendrilRenderer) drawTendril(dst *ebiten.Image, in FrameInput, st gesture.State, tip *hand.Fingertip) {
	idx := tip.Index
	if idx < 0 || idx >= constants.FingerCount {
		return
	}
	vel := st.Velocities[idx]
	drag := st.Motion[idx].Scale(constants.TendrilDragScale)

	var ring [constants.TendrilBlobs]vmath.Vec2
	for b := 0; b < constants.TendrilBlobs; b++ {
		angle := float64(b)*2*math.Pi/constants.TendrilBlobs + in.Elapsed*constants.TendrilSpinSpeed
		radial := constants.TendrilBaseRadius + constants.TendrilPulseDepth*math.Sin(in.Elapsed*2+float64(b))
		offset := vmath.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(radial)
		ring[b] = tip.Pos.Add(offset).Add(drag)
	}

	blobClr := in.Colors.FingerColor(idx, vel, 0.6)
	linkClr := in.Colors.FingerColor(idx, vel, constants.TendrilLinkAlpha)
	for b := 0; b < constants.TendrilBlobs; b++ {
		glow(dst, ring[b], constants.TendrilBlobRadius, blobClr)
		next := ring[(b+1)%constants.TendrilBlobs]
		vector.StrokeLine(dst, float32(ring[b].X), float32(ring[b].Y), float32(next.X), float32(next.Y), 1, linkClr, false)
	}
}
