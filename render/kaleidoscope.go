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

// KaleidoscopeRenderer reflects each fingertip about the canvas center
// at N-fold rotational symmetry with a slow auto-rotation, plus a pulsing
// center marker drawn last
type KaleidoscopeRenderer struct {
	settings Settings
	input    FrameInput
}

// NewKaleidoscopeRenderer creates the kaleidoscope renderer
func NewKaleidoscopeRenderer() *KaleidoscopeRenderer {
	return &KaleidoscopeRenderer{settings: DefaultSettings()}
}

func (r *KaleidoscopeRenderer) Name() string { return "kaleidoscope" }

func (r *KaleidoscopeRenderer) UpdateSettings(s Settings) { r.settings = s }

func (r *KaleidoscopeRenderer) Update(in FrameInput) {
	r.input = in
}

func (r *KaleidoscopeRenderer) Render(dst *ebiten.Image) {
	fade(dst, r.settings.Persistence)

	in := r.input
	if in.Colors == nil {
		return
	}

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	center := vmath.Vec2{X: float64(w) / 2, Y: float64(h) / 2}
	step := 2 * math.Pi / constants.KaleidoSegments
	autoRot := in.Elapsed * constants.KaleidoAutoRotation

	eachTip(in, func(f *hand.Frame, st gesture.State, tip *hand.Fingertip) {
		idx := tip.Index
		if idx < 0 || idx >= constants.FingerCount {
			return
		}
		clr := in.Colors.FingerColor(idx, st.Velocities[idx], 0.8)
		lineClr := clr
		lineClr.A = clr.A / 4

		arm := tip.Pos.Sub(center)
		for seg := 0; seg < constants.KaleidoSegments; seg++ {
			p := center.Add(arm.Rotate(autoRot + float64(seg)*step))
			glow(dst, p, constants.KaleidoGlowRadius, clr)
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), constants.KaleidoMarkerRadius, clr, false)
			vector.StrokeLine(dst, float32(center.X), float32(center.Y), float32(p.X), float32(p.Y), 1, lineClr, false)
		}
	})

	// Pulsing center marker goes on top of everything
	pulse := 6 + 3*math.Sin(2*math.Pi*constants.KaleidoCenterPulse*in.Elapsed)
	centerClr := in.Colors.ParticleColor(ByPhase, 0, 0.9)
	glow(dst, center, pulse*2, centerClr)
	vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), float32(pulse), centerClr, false)
}
