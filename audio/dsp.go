package audio

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/maestro/constants"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveTriangle
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscSample evaluates one waveform sample at phase in [0,1)
func oscSample(waveType int, phase float64, rng *rand.Rand) float64 {
	switch waveType {
	case waveSine:
		return math.Sin(2 * math.Pi * phase)
	case waveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case waveSaw:
		return 2.0 * (phase - 0.5)
	case waveTriangle:
		return 1.0 - 4.0*math.Abs(phase-0.5)
	case waveNoise:
		return rng.Float64()*2 - 1
	}
	return 0
}

// durationToSamples converts seconds to sample count
func durationToSamples(seconds float64) int {
	return int(seconds * float64(constants.AudioSampleRate))
}

// filterKind selects the one-shot filter applied to a rendered voice
type filterKind int

const (
	filterNone filterKind = iota
	filterLP
	filterHP
	filterBP
)

// filterBiquad applies an RBJ biquad of the given kind in place
func filterBiquad(buf floatBuffer, kind filterKind, freq, q float64) {
	if kind == filterNone || len(buf) == 0 {
		return
	}

	sr := float64(constants.AudioSampleRate)
	w0 := 2 * math.Pi * freq / sr
	cosW := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	var b0, b1, b2 float64
	switch kind {
	case filterLP:
		b0 = (1 - cosW) / 2
		b1 = 1 - cosW
		b2 = (1 - cosW) / 2
	case filterHP:
		b0 = (1 + cosW) / 2
		b1 = -(1 + cosW)
		b2 = (1 + cosW) / 2
	case filterBP:
		b0 = alpha
		b1 = 0
		b2 = -alpha
	}
	a0 := 1 + alpha
	a1 := -2 * cosW
	a2 := 1 - alpha

	var x1, x2, y1, y2 float64
	for i, x := range buf {
		y := (b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2) / a0
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}
}

// normalizePeak scales the buffer so its absolute peak equals target
func normalizePeak(buf floatBuffer, target float64) {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return
	}
	scale := target / peak
	for i := range buf {
		buf[i] *= scale
	}
}

// svFilter is a Chamberlin state-variable lowpass used inside streaming
// voices, cheap enough for per-sample cutoff modulation
type svFilter struct {
	low, band float64
}

// process filters one sample with the given cutoff (Hz) and resonance
func (f *svFilter) process(x, cutoff, res float64) float64 {
	sr := float64(constants.AudioSampleRate)
	if cutoff > 0.22*sr {
		cutoff = 0.22 * sr
	}
	if cutoff < 10 {
		cutoff = 10
	}
	fc := 2 * math.Sin(math.Pi*cutoff/sr)
	q := 1.0 / math.Max(res, 0.5)

	f.low += fc * f.band
	high := x - f.low - q*f.band
	f.band += fc * high
	return f.low
}
