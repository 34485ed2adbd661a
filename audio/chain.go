package audio

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/maestro/constants"
)

// The persistent synthesis chain:
//
//	mix bus -> lowpass -> delayLine -> reverb -> masterGain -> speaker
//
// Each stage wraps the previous streamer. Control-thread parameter writes
// go through ramp targets; the audio goroutine owns all filter state.

// lowpass is the shared resonant filter; cutoff follows one hand's finger
// spread
type lowpass struct {
	src    beep.Streamer
	cutoff *ramp
	res    *ramp
	flt    [2]svFilter
}

func newLowpass(src beep.Streamer) *lowpass {
	return &lowpass{
		src:    src,
		cutoff: newRamp(constants.FilterCutoffMax, constants.FilterCutoffMax-constants.FilterCutoffMin, constants.FilterRampDuration),
		res:    newRamp(constants.FilterResMin, constants.FilterResMax-constants.FilterResMin, constants.FilterRampDuration),
	}
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.src.Stream(samples)
	for i := 0; i < n; i++ {
		cutoff := l.cutoff.next()
		res := l.res.next()
		samples[i][0] = l.flt[0].process(samples[i][0], cutoff, res)
		samples[i][1] = l.flt[1].process(samples[i][1], cutoff, res)
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.src.Err() }

// delayLine is a feedback delay; time and mix follow the other hand's
// finger spread
type delayLine struct {
	src      beep.Streamer
	delaySec *ramp
	mix      *ramp
	ring     [][2]float64
	write    int
}

func newDelayLine(src beep.Streamer) *delayLine {
	maxSamples := int(constants.DelayTimeMax.Seconds()*float64(constants.AudioSampleRate)) + 1
	return &delayLine{
		src:      src,
		delaySec: newRamp(constants.DelayTimeMin.Seconds(), (constants.DelayTimeMax - constants.DelayTimeMin).Seconds(), time.Duration(constants.DelayRampSeconds*float64(time.Second))),
		mix:      newRamp(0, constants.DelayMixMax, time.Duration(constants.DelayRampSeconds*float64(time.Second))),
		ring:     make([][2]float64, maxSamples),
	}
}

func (d *delayLine) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.src.Stream(samples)
	sr := float64(constants.AudioSampleRate)
	for i := 0; i < n; i++ {
		offset := int(d.delaySec.next() * sr)
		if offset >= len(d.ring) {
			offset = len(d.ring) - 1
		}
		read := d.write - offset
		if read < 0 {
			read += len(d.ring)
		}

		wet := d.ring[read]
		mix := d.mix.next()
		dry := samples[i]

		d.ring[d.write][0] = dry[0] + wet[0]*constants.DelayFeedback
		d.ring[d.write][1] = dry[1] + wet[1]*constants.DelayFeedback
		d.write++
		if d.write >= len(d.ring) {
			d.write = 0
		}

		samples[i][0] = dry[0] + wet[0]*mix
		samples[i][1] = dry[1] + wet[1]*mix
	}
	return n, ok
}

func (d *delayLine) Err() error { return d.src.Err() }

// reverb is a Schroeder network: four parallel combs into two allpasses,
// comb tunings jittered by a seeded source so the tail is noise-seeded
// but reproducible
type reverb struct {
	src    beep.Streamer
	combs  [4]comb
	passes [2]allpass
}

type comb struct {
	buf  [][2]float64
	pos  int
	gain float64
}

type allpass struct {
	buf  [][2]float64
	pos  int
	gain float64
}

func newReverb(src beep.Streamer) *reverb {
	rng := rand.New(rand.NewSource(constants.ReverbSeed))
	baseMs := [4]float64{29.7, 37.1, 41.1, 43.7}

	r := &reverb{src: src}
	for i := range r.combs {
		ms := baseMs[i] * (0.9 + 0.2*rng.Float64())
		r.combs[i] = comb{
			buf:  make([][2]float64, durationToSamples(ms/1000)),
			gain: constants.ReverbDecay,
		}
	}
	for i, ms := range [2]float64{5.0, 1.7} {
		r.passes[i] = allpass{
			buf:  make([][2]float64, durationToSamples(ms/1000)),
			gain: 0.5,
		}
	}
	return r
}

func (r *reverb) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.src.Stream(samples)
	for i := 0; i < n; i++ {
		dry := samples[i]

		var wet [2]float64
		for c := range r.combs {
			out := r.combs[c].process(dry)
			wet[0] += out[0]
			wet[1] += out[1]
		}
		wet[0] *= 0.25
		wet[1] *= 0.25
		for p := range r.passes {
			wet = r.passes[p].process(wet)
		}

		samples[i][0] = dry[0] + wet[0]*constants.ReverbMix
		samples[i][1] = dry[1] + wet[1]*constants.ReverbMix
	}
	return n, ok
}

func (r *reverb) Err() error { return r.src.Err() }

func (c *comb) process(in [2]float64) [2]float64 {
	out := c.buf[c.pos]
	c.buf[c.pos][0] = in[0] + out[0]*c.gain
	c.buf[c.pos][1] = in[1] + out[1]*c.gain
	c.pos++
	if c.pos >= len(c.buf) {
		c.pos = 0
	}
	return out
}

func (a *allpass) process(in [2]float64) [2]float64 {
	delayed := a.buf[a.pos]
	var out [2]float64
	out[0] = -in[0]*a.gain + delayed[0]
	out[1] = -in[1]*a.gain + delayed[1]
	a.buf[a.pos][0] = in[0] + delayed[0]*a.gain
	a.buf[a.pos][1] = in[1] + delayed[1]*a.gain
	a.pos++
	if a.pos >= len(a.buf) {
		a.pos = 0
	}
	return out
}

// masterGain applies the output level with a linear mute ramp. Toggling
// mute mid-envelope only rescales output; it never cancels voices.
type masterGain struct {
	src    beep.Streamer
	gate   *ramp // 1 unmuted, 0 muted
	volume atomicFloat
	muted  atomic.Bool

	// soft limiter threshold
	knee float64
}

func newMasterGain(src beep.Streamer, volume float64) *masterGain {
	m := &masterGain{
		src:  src,
		gate: newRamp(1, 1, constants.MuteRampDuration),
		knee: 0.8,
	}
	m.volume.Set(volume)
	return m
}

// toggle flips mute and returns true if output is now audible
func (m *masterGain) toggle() bool {
	nowMuted := !m.muted.Load()
	m.muted.Store(nowMuted)
	if nowMuted {
		m.gate.set(0)
	} else {
		m.gate.set(1)
	}
	return !nowMuted
}

func (m *masterGain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = m.src.Stream(samples)
	vol := m.volume.Get()
	for i := 0; i < n; i++ {
		g := m.gate.next() * vol
		samples[i][0] = m.limit(samples[i][0] * g)
		samples[i][1] = m.limit(samples[i][1] * g)
	}
	return n, ok
}

// limit is a tanh-knee soft limiter ahead of the hard clip
func (m *masterGain) limit(v float64) float64 {
	if v > m.knee || v < -m.knee {
		sign := 1.0
		if v < 0 {
			sign = -1
		}
		v = sign * (m.knee + (1-m.knee)*math.Tanh((math.Abs(v)-m.knee)/(1-m.knee)))
	}
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return v
}

func (m *masterGain) Err() error { return m.src.Err() }
