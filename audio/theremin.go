package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/maestro/constants"
)

// thereminVoice is the continuous voice: saw oscillator into a resonant
// lowpass with a linear attack and release. Frequency, cutoff and
// resonance changes arrive as ramp targets and are never stepped. After
// the release ramp completes the streamer reports exhaustion and the mix
// bus drops it; that is the teardown.
type thereminVoice struct {
	freq   *ramp
	cutoff *ramp
	res    *ramp

	phase float64
	flt   svFilter

	env         float64
	attackStep  float64
	releaseStep float64

	releasing atomic.Bool
	finished  atomic.Bool
}

func newThereminVoice(startFreq float64) *thereminVoice {
	span := NoteFreq(constants.RootNote+constants.NoteRangeOctaves*12) - NoteFreq(constants.RootNote)
	v := &thereminVoice{
		freq:        newRamp(startFreq, span/4, constants.ThereminGlide),
		cutoff:      newRamp(constants.FilterCutoffMax/2, constants.FilterCutoffMax-constants.FilterCutoffMin, constants.FilterRampDuration),
		res:         newRamp(1, constants.FilterResMax, constants.FilterRampDuration),
		attackStep:  1.0 / float64(durationToSamples(constants.ThereminAttack.Seconds())),
		releaseStep: 1.0 / float64(durationToSamples(constants.ThereminRelease.Seconds())),
	}
	return v
}

// release schedules the release ramp; safe from the control thread
func (v *thereminVoice) release() {
	v.releasing.Store(true)
}

// done reports whether teardown has completed
func (v *thereminVoice) done() bool {
	return v.finished.Load()
}

func (v *thereminVoice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.finished.Load() {
		return 0, false
	}

	sr := float64(constants.AudioSampleRate)
	releasing := v.releasing.Load()

	for i := range samples {
		if releasing {
			v.env -= v.releaseStep
			if v.env <= 0 {
				v.finished.Store(true)
				return i, i > 0
			}
		} else if v.env < 1 {
			v.env += v.attackStep
			if v.env > 1 {
				v.env = 1
			}
		}

		freq := v.freq.next()
		raw := 2.0*v.phase - 1.0
		v.phase += freq / sr
		if v.phase >= 1.0 {
			v.phase -= 1.0
		}

		s := v.flt.process(raw, v.cutoff.next(), v.res.next()) * v.env * constants.ThereminLevel
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

func (v *thereminVoice) Err() error { return nil }

var _ beep.Streamer = (*thereminVoice)(nil)
