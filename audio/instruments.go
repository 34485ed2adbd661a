package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/maestro/constants"
)

// descriptor declares a percussive voice as data: oscillator, envelope and
// post-processing parameters interpreted by renderVoice. Adding a sound is
// a table entry, not new trigger code.
type descriptor struct {
	duration float64 // seconds
	attack   float64 // seconds of linear fade-in
	ampDecay float64 // exponential amplitude decay rate over the voice

	wave      int
	freqStart float64
	freqEnd   float64 // pitch slides exponentially toward this
	pitchDrop float64 // slide rate; 0 holds freqStart

	noiseMix float64 // 0 pure tone .. 1 pure noise
	detune   float64 // extra detuned oscillator pair when > 0

	filter     filterKind
	filterFreq float64
	filterQ    float64

	drive  float64 // tanh saturation amount; 0 = clean
	bursts int     // clap-style gated noise bursts
	level  float64
}

// instrumentTable holds the full voice set. Hits use short exponential
// decays; bass/pad/lead sustain longer.
var instrumentTable = map[Instrument]descriptor{
	Kick:  {duration: 0.28, ampDecay: 5, wave: waveSine, freqStart: 150, freqEnd: 40, pitchDrop: 8, drive: 2.0, level: 0.9},
	Snare: {duration: 0.22, ampDecay: 8, wave: waveSine, freqStart: 200, freqEnd: 200, noiseMix: 0.5, filter: filterBP, filterFreq: 2000, filterQ: 1.5, level: 0.8},
	Hat:   {duration: 0.09, ampDecay: 15, wave: waveNoise, noiseMix: 1, filter: filterHP, filterFreq: 7000, filterQ: 0.707, level: 0.6},
	Tom:   {duration: 0.30, ampDecay: 6, wave: waveSine, freqStart: 220, freqEnd: 90, pitchDrop: 5, drive: 1.2, level: 0.8},
	Clap:  {duration: 0.25, ampDecay: 6, wave: waveNoise, noiseMix: 1, filter: filterBP, filterFreq: 1500, filterQ: 2.0, bursts: 4, level: 0.8},
	Rim:   {duration: 0.06, ampDecay: 20, wave: waveSquare, freqStart: 1700, freqEnd: 1700, noiseMix: 0.2, filter: filterHP, filterFreq: 800, filterQ: 0.9, level: 0.5},
	Snap:  {duration: 0.08, ampDecay: 18, wave: waveNoise, noiseMix: 1, filter: filterBP, filterFreq: 3200, filterQ: 2.5, level: 0.6},
	Crash: {duration: 1.4, ampDecay: 3, wave: waveNoise, noiseMix: 1, filter: filterHP, filterFreq: 5000, filterQ: 0.707, level: 0.5},
	Ride:  {duration: 0.9, ampDecay: 4, wave: waveNoise, noiseMix: 0.7, freqStart: 5200, freqEnd: 5200, filter: filterHP, filterFreq: 6000, filterQ: 0.8, level: 0.45},
	Bass:  {duration: 0.5, attack: 0.005, ampDecay: 4, wave: waveSaw, freqStart: 55, freqEnd: 55, filter: filterLP, filterFreq: 400, filterQ: 1.2, drive: 1.5, level: 0.8},
	Pad:   {duration: 2.2, attack: 0.25, ampDecay: 1.2, wave: waveSaw, freqStart: 220, freqEnd: 220, detune: 0.004, filter: filterLP, filterFreq: 1200, filterQ: 0.9, level: 0.5},
	Lead:  {duration: 0.7, attack: 0.01, ampDecay: 3, wave: waveSquare, freqStart: 440, freqEnd: 440, detune: 0.002, filter: filterLP, filterFreq: 2600, filterQ: 1.4, level: 0.5},
	FX:    {duration: 0.8, ampDecay: 4, wave: waveSaw, freqStart: 1200, freqEnd: 80, pitchDrop: 3, noiseMix: 0.3, filter: filterBP, filterFreq: 900, filterQ: 1.8, level: 0.5},
}

// renderVoice interprets a descriptor into a finished mono buffer at the
// given velocity (0..1)
func renderVoice(d descriptor, velocity float64) floatBuffer {
	total := durationToSamples(d.duration)
	if total <= 0 {
		return nil
	}
	buf := make(floatBuffer, total)
	rng := rand.New(rand.NewSource(rand.Int63()))

	attackSamples := durationToSamples(d.attack)
	phase, phaseHi, phaseLo := 0.0, 0.0, 0.0
	sr := float64(constants.AudioSampleRate)

	for i := 0; i < total; i++ {
		t := float64(i) / float64(total)

		freq := d.freqStart
		if d.pitchDrop > 0 {
			freq = d.freqEnd + (d.freqStart-d.freqEnd)*math.Exp(-d.pitchDrop*t)
		}

		tone := oscSample(d.wave, phase, rng)
		if d.detune > 0 {
			tone += oscSample(d.wave, phaseHi, rng)
			tone += oscSample(d.wave, phaseLo, rng)
			tone /= 3
		}
		phase = stepPhase(phase, freq, sr)
		phaseHi = stepPhase(phaseHi, freq*(1+d.detune), sr)
		phaseLo = stepPhase(phaseLo, freq*(1-d.detune), sr)

		sample := tone
		if d.noiseMix > 0 {
			noise := rng.Float64()*2 - 1
			sample = tone*(1-d.noiseMix) + noise*d.noiseMix
		}

		amp := math.Exp(-d.ampDecay * t)
		if attackSamples > 0 && i < attackSamples {
			amp *= float64(i) / float64(attackSamples)
		}
		buf[i] = sample * amp
	}

	if d.bursts > 1 {
		gateBursts(buf, d.bursts)
	}
	filterBiquad(buf, d.filter, d.filterFreq, d.filterQ)
	if d.drive > 0 {
		for i := range buf {
			buf[i] = math.Tanh(buf[i] * d.drive)
		}
	}
	normalizePeak(buf, 0.9)

	gain := d.level * velocity
	for i := range buf {
		buf[i] *= gain
	}
	return buf
}

func stepPhase(phase, freq, sr float64) float64 {
	phase += freq / sr
	if phase >= 1.0 {
		phase -= 1.0
	}
	return phase
}

// gateBursts carves the first half of the buffer into n short re-attacks
// with decreasing amplitude, the clap texture
func gateBursts(buf floatBuffer, n int) {
	burstLen := len(buf) / (n * 3)
	if burstLen == 0 {
		return
	}
	gapLen := burstLen / 2
	pos := 0
	for b := 0; b < n && pos < len(buf); b++ {
		burstAmp := 1.0 - float64(b)*0.15
		for i := 0; i < burstLen && pos < len(buf); i++ {
			t := float64(i) / float64(burstLen)
			buf[pos] *= burstAmp * math.Exp(-3*t)
			pos++
		}
		for i := 0; i < gapLen && pos < len(buf); i++ {
			buf[pos] *= 0.05
			pos++
		}
	}
}

// bufferVoice streams a rendered buffer once and then reports exhaustion,
// letting the mix bus drop it. Each trigger owns its own instance; nothing
// is shared across invocations.
type bufferVoice struct {
	buf floatBuffer
	pos int
}

func (v *bufferVoice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= len(v.buf) {
			return i, i > 0
		}
		s := v.buf[v.pos]
		samples[i][0] = s
		samples[i][1] = s
		v.pos++
	}
	return len(samples), true
}

func (v *bufferVoice) Err() error { return nil }

var _ beep.Streamer = (*bufferVoice)(nil)
