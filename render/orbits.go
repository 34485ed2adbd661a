package render

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// body is one orbiting spark attracted toward an anchor
type body struct {
	pos   vmath.Vec2
	vel   vmath.Vec2
	birth float64
	hue   float64
}

// OrbitRenderer spawns bodies from fast fingertips and pulls them toward
// the palm (or the canvas center when no hand is tracked), producing
// gravitational swirls
type OrbitRenderer struct {
	settings Settings
	bodies   []body
	rng      *rand.Rand
	colors   *Context
	anchor   vmath.Vec2
	now      float64
	last     float64
}

// NewOrbitRenderer creates the gravitational-orbit renderer
func NewOrbitRenderer() *OrbitRenderer {
	return &OrbitRenderer{
		settings: DefaultSettings(),
		bodies:   make([]body, 0, 64),
		rng:      rand.New(rand.NewSource(2)),
	}
}

func (r *OrbitRenderer) Name() string { return "orbits" }

func (r *OrbitRenderer) UpdateSettings(s Settings) { r.settings = s }

func (r *OrbitRenderer) Update(in FrameInput) {
	dt := in.Elapsed - r.last
	if dt <= 0 || dt > 0.25 {
		dt = 1.0 / 60.0
	}
	r.last = in.Elapsed
	r.now = in.Elapsed
	r.colors = in.Colors

	r.anchor = vmath.Vec2{X: constants.CanvasWidth / 2, Y: constants.CanvasHeight / 2}
	for _, f := range in.Hands {
		if f != nil {
			r.anchor = f.Palm
			break
		}
	}

	r.integrate(dt)
	r.prune()
	r.spawn(in)
}

func (r *OrbitRenderer) integrate(dt float64) {
	for i := range r.bodies {
		toAnchor := r.anchor.Sub(r.bodies[i].pos)
		dist := toAnchor.Mag()
		if dist > 1 {
			pull := toAnchor.Norm().Scale(constants.OrbitPull * dt)
			r.bodies[i].vel = r.bodies[i].vel.Add(pull)
		}
		r.bodies[i].vel = r.bodies[i].vel.Scale(constants.OrbitDamping)
		r.bodies[i].pos = r.bodies[i].pos.Add(r.bodies[i].vel.Scale(dt))
	}
}

func (r *OrbitRenderer) prune() {
	lifetime := constants.OrbitLifetime.Seconds()
	alive := r.bodies[:0]
	for _, b := range r.bodies {
		if r.now-b.birth < lifetime {
			alive = append(alive, b)
		}
	}
	r.bodies = alive
}

func (r *OrbitRenderer) spawn(in FrameInput) {
	if in.Colors == nil {
		return
	}
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
			if st.Velocities[idx] < constants.OrbitSpawnVelocity {
				continue
			}
			if len(r.bodies) >= constants.OrbitMaxBodies {
				return
			}
			// Launch sideways relative to the anchor so bodies swing
			// into orbit instead of falling straight in
			tangent := tip.Pos.Sub(r.anchor).Norm().Rotate(1.5708)
			speed := 120 + 80*r.rng.Float64()
			r.bodies = append(r.bodies, body{
				pos:   tip.Pos,
				vel:   tangent.Scale(speed),
				birth: r.now,
				hue:   in.Colors.FingerHue(idx),
			})
		}
	}
}

func (r *OrbitRenderer) Render(dst *ebiten.Image) {
	fade(dst, r.settings.Persistence)
	if r.colors == nil {
		return
	}

	lifetime := constants.OrbitLifetime.Seconds()
	for _, b := range r.bodies {
		age := (r.now - b.birth) / lifetime
		clr := r.colors.ParticleColor(FixedHue, b.hue, 1-age*0.7)
		vector.DrawFilledCircle(dst, float32(b.pos.X), float32(b.pos.Y), 3, clr, false)
	}

	anchorClr := r.colors.ParticleColor(ByPhase, 0, 0.5)
	glow(dst, r.anchor, 10, anchorClr)
}

// Count reports the live body population
func (r *OrbitRenderer) Count() int { return len(r.bodies) }
