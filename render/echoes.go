package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// echoSet is one sampled snapshot of fingertip positions
type echoSet struct {
	points []echoPoint
	birth  float64
}

type echoPoint struct {
	pos    vmath.Vec2
	finger int
	vel    float64
}

// EchoRenderer samples fingertip constellations at a fixed interval and
// replays them with fading alpha, leaving ghosts of past motion
type EchoRenderer struct {
	settings Settings
	sets     []echoSet
	colors   *Context
	now      float64
	lastSnap float64
}

// NewEchoRenderer creates the temporal-echo renderer
func NewEchoRenderer() *EchoRenderer {
	return &EchoRenderer{
		settings: DefaultSettings(),
		sets:     make([]echoSet, 0, constants.EchoMaxSets),
	}
}

func (r *EchoRenderer) Name() string { return "echoes" }

func (r *EchoRenderer) UpdateSettings(s Settings) { r.settings = s }

func (r *EchoRenderer) Update(in FrameInput) {
	r.now = in.Elapsed
	r.colors = in.Colors

	r.prune()

	if r.now-r.lastSnap < constants.EchoInterval.Seconds() {
		return
	}

	var points []echoPoint
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
			points = append(points, echoPoint{
				pos:    tip.Pos,
				finger: idx,
				vel:    st.Velocities[idx],
			})
		}
	}
	if len(points) == 0 {
		return
	}

	r.lastSnap = r.now
	r.sets = append(r.sets, echoSet{points: points, birth: r.now})
	if len(r.sets) > constants.EchoMaxSets {
		r.sets = r.sets[len(r.sets)-constants.EchoMaxSets:]
	}
}

func (r *EchoRenderer) prune() {
	lifetime := constants.EchoLifetime.Seconds()
	alive := r.sets[:0]
	for _, s := range r.sets {
		if r.now-s.birth < lifetime {
			alive = append(alive, s)
		}
	}
	r.sets = alive
}

func (r *EchoRenderer) Render(dst *ebiten.Image) {
	fade(dst, r.settings.Persistence)
	if r.colors == nil {
		return
	}

	lifetime := constants.EchoLifetime.Seconds()
	for _, s := range r.sets {
		age := (r.now - s.birth) / lifetime
		alpha := (1 - age) * 0.8
		size := 6 * (1 - age*0.5)
		for _, p := range s.points {
			clr := r.colors.FingerColor(p.finger, p.vel, alpha)
			vector.DrawFilledCircle(dst, float32(p.pos.X), float32(p.pos.Y), float32(size), clr, false)
		}
	}
}

// Count reports the live echo-set population
func (r *EchoRenderer) Count() int { return len(r.sets) }
