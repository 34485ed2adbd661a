// Package audio owns the persistent synthesis graph and the trigger
// operations that spin transient voices up and down inside it. All
// control-side operations schedule work (ramp targets, voice insertion)
// and return immediately; the platform audio goroutine does the rendering.
package audio

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// Engine is the audio engine. The persistent chain is built once at
// construction and lives for the process:
//
//	mix bus -> shared lowpass -> delay/feedback -> reverb -> master gain
//
// Percussive triggers and the theremin voice add transient streamers to
// the mix bus; each one terminates itself, so the graph never grows
// without bound.
type Engine struct {
	cfg *Config

	mixer  *beep.Mixer
	filter *lowpass
	delay  *delayLine
	verb   *reverb
	master *masterGain
	chain  beep.Streamer

	// unlocked flips on the first qualifying user interaction; until
	// then triggers are accepted and dropped (platform autoplay gate).
	// silent means the output device failed and synthesis is skipped.
	unlocked  atomic.Bool
	silent    atomic.Bool
	speakerOn bool

	theremin *thereminVoice
	quant    *Quantizer
	scaleIdx int
}

// NewEngine builds the persistent graph. No audio device is touched until
// Unlock.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	e := &Engine{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		quant: NewQuantizer(Scales[0]),
	}
	e.filter = newLowpass(e.mixer)
	e.delay = newDelayLine(e.filter)
	e.verb = newReverb(e.delay)
	e.master = newMasterGain(e.verb, cfg.MasterVolume)
	e.chain = e.master
	return e
}

// Unlock starts the output device. Safe to call more than once; only the
// first call does work. A device failure puts the engine into silent
// mode rather than failing the session.
func (e *Engine) Unlock() error {
	if !e.unlocked.CompareAndSwap(false, true) {
		return nil
	}
	if !e.cfg.Enabled {
		e.silent.Store(true)
		return nil
	}

	sr := beep.SampleRate(constants.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(constants.AudioBufferDuration)); err != nil {
		e.silent.Store(true)
		return fmt.Errorf("%w: %v", ErrSpeakerInit, err)
	}
	e.speakerOn = true
	speaker.Play(e.chain)
	return nil
}

// Close tears the output down
func (e *Engine) Close() {
	if e.speakerOn {
		speaker.Clear()
		e.speakerOn = false
	}
}

// Unlocked reports whether the first-interaction gate has opened
func (e *Engine) Unlocked() bool {
	return e.unlocked.Load()
}

func (e *Engine) lock() {
	if e.speakerOn {
		speaker.Lock()
	}
}

func (e *Engine) unlock() {
	if e.speakerOn {
		speaker.Unlock()
	}
}

// Trigger synthesizes one percussive hit at the given velocity (0..1).
// Every call builds its own transient voice with a self-scheduled stop;
// calls never block on or reuse prior voices. A synthesis failure is
// logged and swallowed: one bad trigger must not end the session.
func (e *Engine) Trigger(instr Instrument, velocity float64) {
	if !e.unlocked.Load() || e.silent.Load() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio: trigger %v failed: %v", instr, r)
		}
	}()

	d, ok := instrumentTable[instr]
	if !ok {
		return
	}
	buf := renderVoice(d, vmath.Clamp01(velocity))
	if len(buf) == 0 {
		return
	}

	e.lock()
	e.mixer.Add(&bufferVoice{buf: buf})
	e.unlock()
}

// TriggerName resolves a sample name and triggers it; unknown names are
// a no-op
func (e *Engine) TriggerName(name string, velocity float64) {
	if instr, ok := ParseInstrument(name); ok {
		e.Trigger(instr, velocity)
	}
}

// StartTheremin creates the continuous voice with its attack ramp. At
// most one voice is ever active: starting while one is live, or before a
// stopped voice has finished its release teardown, is a no-op.
func (e *Engine) StartTheremin() {
	if !e.unlocked.Load() || e.silent.Load() {
		return
	}
	if e.theremin != nil && !e.theremin.done() {
		return
	}

	_, freq := e.quant.Quantize(0.5)
	v := newThereminVoice(freq)
	e.theremin = v

	e.lock()
	e.mixer.Add(v)
	e.unlock()
}

// UpdateTheremin remaps normalized hand coordinates onto the voice:
// x -> quantized pitch (ramped), y -> cutoff (inverted, higher is
// brighter), spread -> resonance
func (e *Engine) UpdateTheremin(x, y, spread float64) {
	v := e.theremin
	if v == nil || v.done() {
		return
	}

	_, freq := e.quant.Quantize(x)
	v.freq.set(freq)

	bright := 1 - vmath.Clamp01(y)
	v.cutoff.set(constants.FilterCutoffMin + bright*(constants.FilterCutoffMax-constants.FilterCutoffMin))
	v.res.set(constants.FilterResMin + vmath.Clamp01(spread)*(constants.FilterResMax-constants.FilterResMin))
}

// StopTheremin schedules the release ramp; the voice tears itself down
// when the ramp completes. Stopping while inactive is a no-op.
func (e *Engine) StopTheremin() {
	if e.theremin != nil && !e.theremin.done() {
		e.theremin.release()
	}
}

// SetFilterSpread drives the shared lowpass cutoff from a hand's finger
// spread (0 closed .. 1 open)
func (e *Engine) SetFilterSpread(spread float64) {
	s := vmath.Clamp01(spread)
	e.filter.cutoff.set(constants.FilterCutoffMin + s*(constants.FilterCutoffMax-constants.FilterCutoffMin))
}

// SetDelaySpread drives delay time and mix from the other hand's spread
func (e *Engine) SetDelaySpread(spread float64) {
	s := vmath.Clamp01(spread)
	minSec := constants.DelayTimeMin.Seconds()
	maxSec := constants.DelayTimeMax.Seconds()
	e.delay.delaySec.set(minSec + s*(maxSec-minSec))
	e.delay.mix.set(s * constants.DelayMixMax)
}

// ToggleMute ramps the master gain over the mute ramp duration and
// reports whether output is now audible. In-flight envelopes keep
// running; only the output scale changes.
func (e *Engine) ToggleMute() bool {
	return e.master.toggle()
}

// IsMuted reports the mute state
func (e *Engine) IsMuted() bool {
	return e.master.muted.Load()
}

// CycleScale advances to the next scale and returns its name
func (e *Engine) CycleScale() string {
	e.scaleIdx = (e.scaleIdx + 1) % len(Scales)
	e.quant.Scale = Scales[e.scaleIdx]
	return e.quant.Scale.Name
}

// ScaleName returns the active scale's name
func (e *Engine) ScaleName() string {
	return e.quant.Scale.Name
}
