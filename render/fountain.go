package render

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// particle is a single ballistic spark
type particle struct {
	pos      vmath.Vec2
	vel      vmath.Vec2
	birth    float64
	lifetime float64
}

// FountainRenderer jets particles upward from fast fingertips and lets
// gravity pull them down
type FountainRenderer struct {
	settings Settings
	parts    []particle
	rng      *rand.Rand
	colors   *Context
	now      float64
	last     float64
}

// NewFountainRenderer creates the particle-fountain renderer
func NewFountainRenderer() *FountainRenderer {
	return &FountainRenderer{
		settings: DefaultSettings(),
		parts:    make([]particle, 0, 128),
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (r *FountainRenderer) Name() string { return "fountain" }

func (r *FountainRenderer) UpdateSettings(s Settings) { r.settings = s }

func (r *FountainRenderer) Update(in FrameInput) {
	dt := in.Elapsed - r.last
	if dt <= 0 || dt > 0.25 {
		dt = 1.0 / 60.0
	}
	r.last = in.Elapsed
	r.now = in.Elapsed
	r.colors = in.Colors

	r.integrate(dt)
	r.prune()
	r.spawn(in)
}

func (r *FountainRenderer) integrate(dt float64) {
	for i := range r.parts {
		r.parts[i].vel.Y += constants.FountainGravity * dt
		r.parts[i].pos = r.parts[i].pos.Add(r.parts[i].vel.Scale(dt))
	}
}

func (r *FountainRenderer) prune() {
	alive := r.parts[:0]
	for _, p := range r.parts {
		if r.now-p.birth < p.lifetime {
			alive = append(alive, p)
		}
	}
	r.parts = alive
}

func (r *FountainRenderer) spawn(in FrameInput) {
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
			if st.Velocities[idx] < constants.FountainSpawnVelocity {
				continue
			}
			for n := 0; n < constants.FountainSpawnPerFrame; n++ {
				if len(r.parts) >= constants.FountainMaxParticles {
					return
				}
				angle := -math.Pi/2 + (r.rng.Float64()-0.5)*0.9
				speed := constants.FountainJetSpeed * (0.6 + 0.4*r.rng.Float64())
				r.parts = append(r.parts, particle{
					pos:      tip.Pos,
					vel:      vmath.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed),
					birth:    r.now,
					lifetime: constants.FountainLifetime.Seconds(),
				})
			}
		}
	}
}

func (r *FountainRenderer) Render(dst *ebiten.Image) {
	fade(dst, r.settings.Persistence)

	if r.colors == nil {
		return
	}
	for _, p := range r.parts {
		age := (r.now - p.birth) / p.lifetime
		alpha := 1 - age
		clr := r.colors.ParticleColor(ByVelocity, p.vel.Mag(), alpha)
		size := 2 + 3*(1-age)
		vector.DrawFilledCircle(dst, float32(p.pos.X), float32(p.pos.Y), float32(size), clr, false)
	}
}

// Count reports the live particle population
func (r *FountainRenderer) Count() int { return len(r.parts) }
