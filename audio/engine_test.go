package audio

import (
	"testing"
)

// testEngine builds an engine with the interaction gate already open but
// no output device, so triggers land on the mix bus directly
func testEngine() *Engine {
	e := NewEngine(&Config{Enabled: true, MasterVolume: 0.7})
	e.unlocked.Store(true)
	return e
}

// TestTriggerAddsVoice verifies each trigger inserts its own transient
// voice on the mix bus
func TestTriggerAddsVoice(t *testing.T) {
	e := testEngine()

	e.Trigger(Kick, 1.0)
	if got := e.mixer.Len(); got != 1 {
		t.Errorf("Expected 1 voice after trigger, got %d", got)
	}
	e.Trigger(Snare, 0.5)
	e.Trigger(Kick, 0.5)
	if got := e.mixer.Len(); got != 3 {
		t.Errorf("Expected 3 voices after overlapping triggers, got %d", got)
	}
}

// TestTriggerBeforeUnlock verifies triggers are dropped while the
// interaction gate is closed
func TestTriggerBeforeUnlock(t *testing.T) {
	e := NewEngine(nil)
	e.Trigger(Kick, 1.0)
	if got := e.mixer.Len(); got != 0 {
		t.Errorf("Expected no voices before unlock, got %d", got)
	}
}

// TestTriggerUnknownInstrument verifies an unmapped instrument is a no-op
func TestTriggerUnknownInstrument(t *testing.T) {
	e := testEngine()
	e.Trigger(Instrument(99), 1.0)
	if got := e.mixer.Len(); got != 0 {
		t.Errorf("Expected no voice for unknown instrument, got %d", got)
	}
	e.TriggerName("vuvuzela", 1.0)
	if got := e.mixer.Len(); got != 0 {
		t.Errorf("Expected no voice for unknown name, got %d", got)
	}
}

// TestThereminSingleVoice verifies at most one continuous voice exists:
// start while live is a no-op, start during release teardown is a no-op,
// and a finished voice allows a fresh start
func TestThereminSingleVoice(t *testing.T) {
	e := testEngine()

	e.StartTheremin()
	first := e.theremin
	if first == nil {
		t.Fatal("Expected voice after StartTheremin")
	}

	e.StartTheremin()
	if e.theremin != first {
		t.Error("Second start replaced the live voice")
	}

	e.StopTheremin()
	e.StartTheremin()
	if e.theremin != first {
		t.Error("Start during release teardown created a voice")
	}

	// Run the release ramp to completion
	buf := make([][2]float64, 512)
	for i := 0; i < 2000; i++ {
		if _, ok := first.Stream(buf); !ok {
			break
		}
	}
	if !first.done() {
		t.Fatal("Voice did not finish after release ramp")
	}

	e.StartTheremin()
	if e.theremin == first || e.theremin == nil {
		t.Error("Expected a fresh voice after teardown completed")
	}
}

// TestThereminUpdateQuantizes verifies position updates land on scale
// frequencies and stale updates after teardown are ignored
func TestThereminUpdateQuantizes(t *testing.T) {
	e := testEngine()
	e.StartTheremin()
	v := e.theremin

	e.UpdateTheremin(0.5, 0.5, 0.5)
	_, want := e.quant.Quantize(0.5)
	if got := v.freq.target.Get(); got != want {
		t.Errorf("Expected freq target %f, got %f", want, got)
	}

	e.UpdateTheremin(1.0, 0, 1)
	_, want = e.quant.Quantize(1.0)
	if got := v.freq.target.Get(); got != want {
		t.Errorf("Expected freq target %f, got %f", want, got)
	}

	v.finished.Store(true)
	before := v.freq.target.Get()
	e.UpdateTheremin(0.1, 0.9, 0.2)
	if v.freq.target.Get() != before {
		t.Error("Update after teardown modified the voice")
	}
}

// TestStopThereminIdle verifies stopping without an active voice is safe
func TestStopThereminIdle(t *testing.T) {
	e := testEngine()
	e.StopTheremin()
	e.StopTheremin()
}

// TestCycleScale verifies the scale command walks the cycle and wraps
func TestCycleScale(t *testing.T) {
	e := testEngine()
	if e.ScaleName() != Scales[0].Name {
		t.Errorf("Expected initial scale %s, got %s", Scales[0].Name, e.ScaleName())
	}
	for i := 1; i <= len(Scales); i++ {
		name := e.CycleScale()
		if want := Scales[i%len(Scales)].Name; name != want {
			t.Errorf("Cycle %d: expected %s, got %s", i, want, name)
		}
	}
}

// TestToggleMute verifies the mute command alternates and reports state
func TestToggleMute(t *testing.T) {
	e := testEngine()
	if e.IsMuted() {
		t.Error("Expected engine unmuted at start")
	}
	if audible := e.ToggleMute(); audible {
		t.Error("Expected first toggle to mute")
	}
	if !e.IsMuted() {
		t.Error("Expected muted state")
	}
	if audible := e.ToggleMute(); !audible {
		t.Error("Expected second toggle to unmute")
	}
}
