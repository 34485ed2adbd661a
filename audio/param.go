package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/maestro/constants"
)

// atomicFloat provides atomic float64 operations using bit conversion.
// Zero value is ready to use and represents 0.0.
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *atomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// ramp carries a control-thread parameter to the audio render goroutine.
// The control thread stores a target atomically and returns immediately;
// the audio goroutine moves the current value linearly toward the target,
// one step per sample. current is owned exclusively by the audio goroutine.
type ramp struct {
	target  atomicFloat
	current float64
	step    float64 // max change per sample
}

// newRamp creates a ramp that traverses span in dur
func newRamp(initial, span float64, dur time.Duration) *ramp {
	samples := dur.Seconds() * float64(constants.AudioSampleRate)
	if samples < 1 {
		samples = 1
	}
	r := &ramp{
		current: initial,
		step:    math.Abs(span) / samples,
	}
	r.target.Set(initial)
	return r
}

// set schedules a new target; never blocks
func (r *ramp) set(v float64) {
	r.target.Set(v)
}

// next advances one sample toward the target and returns the new value
func (r *ramp) next() float64 {
	t := r.target.Get()
	switch {
	case r.current < t:
		r.current += r.step
		if r.current > t {
			r.current = t
		}
	case r.current > t:
		r.current -= r.step
		if r.current < t {
			r.current = t
		}
	}
	return r.current
}

// value returns the current value without advancing
func (r *ramp) value() float64 {
	return r.current
}
