package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// bloom is one expanding multi-ring burst
type bloom struct {
	pos      vmath.Vec2
	birth    float64
	lifetime float64
	hue      float64
}

// BloomRenderer spawns a bloom when a fingertip crosses the velocity
// threshold, gated per finger by a minimum spawn interval
type BloomRenderer struct {
	settings Settings
	blooms   []bloom

	lastSpawn [2][constants.FingerCount]float64
	now       float64
}

// NewBloomRenderer creates the audio-reactive bloom renderer
func NewBloomRenderer() *BloomRenderer {
	return &BloomRenderer{
		settings: DefaultSettings(),
		blooms:   make([]bloom, 0, 32),
	}
}

func (r *BloomRenderer) Name() string { return "bloom" }

func (r *BloomRenderer) UpdateSettings(s Settings) { r.settings = s }

func (r *BloomRenderer) Update(in FrameInput) {
	r.now = in.Elapsed
	r.prune()

	minInterval := constants.BloomMinInterval.Seconds()
	for slot, f := range in.Hands {
		if f == nil {
			continue
		}
		st := in.Gestures[slot]
		for i := range f.Fingertips {
			tip := &f.Fingertips[i]
			idx := tip.Index
			if idx < 0 || idx >= constants.FingerCount {
				continue
			}
			if st.Velocities[idx] < constants.BloomVelocityThreshold {
				continue
			}
			if r.now-r.lastSpawn[slot][idx] < minInterval {
				continue
			}
			r.lastSpawn[slot][idx] = r.now
			r.blooms = append(r.blooms, bloom{
				pos:      tip.Pos,
				birth:    r.now,
				lifetime: constants.BloomLifetime.Seconds(),
				hue:      in.Colors.FingerHue(idx),
			})
		}
	}
}

// prune drops expired blooms before they are ever iterated for drawing
func (r *BloomRenderer) prune() {
	alive := r.blooms[:0]
	for _, b := range r.blooms {
		if r.now-b.birth < b.lifetime {
			alive = append(alive, b)
		}
	}
	r.blooms = alive
}

func (r *BloomRenderer) Render(dst *ebiten.Image) {
	fade(dst, r.settings.Persistence)

	for _, b := range r.blooms {
		age := (r.now - b.birth) / b.lifetime
		if age < 0 || age >= 1 {
			continue
		}
		radius := math.Pow(age, constants.BloomPulseExponent) * constants.BloomMaxRadius
		alpha := 1 - age
		hue := b.hue + constants.BloomHueDrift*age

		clr := hsl(hue, 0.85, 0.6, alpha)
		for ring := 0; ring < constants.BloomRings; ring++ {
			rr := radius - float64(ring)*constants.BloomRingSpacing
			if rr <= 0 {
				break
			}
			vector.StrokeCircle(dst, float32(b.pos.X), float32(b.pos.Y), float32(rr), 2, clr, false)
		}
	}
}

// Count reports the live bloom population
func (r *BloomRenderer) Count() int { return len(r.blooms) }
