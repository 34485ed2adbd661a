// Package engine runs the render loop: it pulls hand data, updates the
// gesture classifier, feeds the mode controller, issues audio triggers on
// threshold crossings, advances the color phase exactly once per frame,
// and invokes the active renderer.
package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/maestro/audio"
	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/gesture"
	"github.com/lixenwraith/maestro/hand"
	"github.com/lixenwraith/maestro/modes"
	"github.com/lixenwraith/maestro/render"
	"github.com/lixenwraith/maestro/vmath"
)

// fingerKits maps each percussive mode to one instrument per finger
var fingerKits = map[modes.Mode][constants.FingerCount]audio.Instrument{
	modes.Ribbons:  {audio.Kick, audio.Snare, audio.Hat, audio.Tom, audio.Clap},
	modes.Pads:     {audio.Bass, audio.Pad, audio.Pad, audio.Lead, audio.Pad},
	modes.Fountain: {audio.Snap, audio.Hat, audio.Snap, audio.Hat, audio.Rim},
	modes.Orbits:   {audio.Tom, audio.Ride, audio.Tom, audio.Ride, audio.Crash},
	modes.Echoes:   {audio.Rim, audio.Clap, audio.Rim, audio.Snap, audio.FX},
}

// Game is the orchestrator; it implements ebiten.Game
type Game struct {
	cfg *Config

	source     hand.Source
	classifier *gesture.Classifier
	controller *modes.Controller
	eng        *audio.Engine
	colors     *render.Context
	renderers  map[modes.Mode]render.Renderer

	canvas  *ebiten.Image
	cur     [2]*hand.Frame
	prev    [2]*hand.Frame
	states  [2]gesture.State
	elapsed float64

	lastTrigger [2][constants.FingerCount]float64
	prevMode    modes.Mode
}

// NewGame wires the full pipeline
func NewGame(cfg *Config, source hand.Source, eng *audio.Engine) *Game {
	colors := render.NewContext()
	colors.SetScheme(cfg.Scheme)

	settings := render.Settings{Persistence: cfg.Persistence}
	renderers := map[modes.Mode]render.Renderer{
		modes.Ribbons:  render.NewTendrilRenderer(),
		modes.Theremin: render.NewBloomRenderer(),
		modes.Pads:     render.NewKaleidoscopeRenderer(),
		modes.Fountain: render.NewFountainRenderer(),
		modes.Orbits:   render.NewOrbitRenderer(),
		modes.Echoes:   render.NewEchoRenderer(),
	}
	for _, r := range renderers {
		r.UpdateSettings(settings)
	}

	controller := modes.NewController(time.Now())
	controller.OnChange = func(m modes.Mode) {
		log.Printf("mode: %s", m)
	}

	return &Game{
		cfg:        cfg,
		source:     source,
		classifier: gesture.NewClassifier(),
		controller: controller,
		eng:        eng,
		colors:     colors,
		renderers:  renderers,
	}
}

// Update advances the whole pipeline one frame
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.elapsed += dt

	if quit := g.handleCommands(); quit {
		return ebiten.Termination
	}

	g.pollHands()
	now := time.Now()
	for slot := 0; slot < 2; slot++ {
		g.states[slot] = g.classifier.Classify(g.cur[slot], g.prev[slot], now)
	}

	switchHeld := g.states[0].Held == gesture.HoldFist || g.states[1].Held == gesture.HoldFist
	mode, _ := g.controller.Update(now, switchHeld)
	if mode != g.prevMode {
		if g.prevMode == modes.Theremin {
			g.eng.StopTheremin()
		}
		g.prevMode = mode
	}

	g.driveAudio(mode)

	// The shared color phase advances exactly once per frame, before any
	// renderer reads it
	g.colors.UpdatePhase(dt)

	g.renderers[mode].Update(render.FrameInput{
		Hands:    g.cur,
		Prev:     g.prev,
		Gestures: g.states,
		Colors:   g.colors,
		Elapsed:  g.elapsed,
	})
	return nil
}

// handleCommands processes discrete user commands and the first
// interaction that unlocks audio output
func (g *Game) handleCommands() (quit bool) {
	interacted := len(inpututil.AppendJustPressedKeys(nil)) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if interacted && !g.eng.Unlocked() {
		if err := g.eng.Unlock(); err != nil {
			log.Printf("audio: %v (continuing without sound)", err)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.eng.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		log.Printf("scheme: %s", g.colors.CycleScheme())
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		log.Printf("scale: %s", g.eng.CycleScale())
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return true
	}
	return false
}

// pollHands samples the source and rotates current frames into previous
func (g *Game) pollHands() {
	g.prev = g.cur
	g.cur = [2]*hand.Frame{}
	for _, f := range g.source.Poll() {
		g.cur[int(f.Handedness)] = f
	}
}

// driveAudio maps this frame's gesture state onto the audio engine
func (g *Game) driveAudio(mode modes.Mode) {
	// One hand shapes the shared filter, the other the delay line
	if left := g.cur[int(hand.Left)]; left != nil {
		g.eng.SetFilterSpread(left.Spread)
	}
	if right := g.cur[int(hand.Right)]; right != nil {
		g.eng.SetDelaySpread(right.Spread)
	}

	if mode == modes.Theremin {
		g.driveTheremin()
		return
	}

	kit, ok := fingerKits[mode]
	if !ok {
		return
	}
	cooldown := constants.TriggerCooldown.Seconds()
	for slot := 0; slot < 2; slot++ {
		if g.cur[slot] == nil {
			continue
		}
		for finger := 0; finger < constants.FingerCount; finger++ {
			vel := g.states[slot].Velocities[finger]
			if vel < constants.TriggerVelocity {
				continue
			}
			if g.elapsed-g.lastTrigger[slot][finger] < cooldown {
				continue
			}
			g.lastTrigger[slot][finger] = g.elapsed
			g.eng.Trigger(kit[finger], vmath.Clamp(vel/30, 0.3, 1))
		}
	}
}

// driveTheremin runs the continuous voice from the right hand; the voice
// starts when the hand appears and releases when it is lost
func (g *Game) driveTheremin() {
	f := g.cur[int(hand.Right)]
	if f == nil {
		f = g.cur[int(hand.Left)]
	}
	if f == nil {
		g.eng.StopTheremin()
		return
	}

	g.eng.StartTheremin()
	x := f.Palm.X / float64(g.cfg.Width)
	y := f.Palm.Y / float64(g.cfg.Height)
	g.eng.UpdateTheremin(x, y, f.Spread)
}

// Draw paints the persistent canvas through the active renderer and
// blits it with a small status line
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.cfg.Width, g.cfg.Height)
	}

	g.renderers[g.controller.Current()].Render(g.canvas)
	screen.DrawImage(g.canvas, nil)

	status := fmt.Sprintf("mode:%s  scale:%s  scheme:%s", g.controller.Current(), g.eng.ScaleName(), g.colors.SchemeName())
	if !g.eng.Unlocked() {
		status += "  [press any key to start audio]"
	} else if g.eng.IsMuted() {
		status += "  [muted]"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout reports the fixed canvas size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
