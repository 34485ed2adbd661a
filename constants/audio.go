package constants

import "time"

// Engine core
const (
	// AudioSampleRate is the synthesis and playback rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length; shorter buffers
	// lower trigger latency at the cost of underrun headroom
	AudioBufferDuration = 50 * time.Millisecond
)

// Master section
const (
	// MuteRampDuration is the linear gain ramp applied on mute toggle
	MuteRampDuration = 90 * time.Millisecond

	// MasterVolume is the default output level before the limiter
	MasterVolume = 0.7
)

// Shared filter (cutoff driven by one hand's finger spread)
const (
	FilterCutoffMin = 200.0
	FilterCutoffMax = 9000.0
	FilterResMin    = 0.5
	FilterResMax    = 6.0

	// FilterRampDuration smooths control-thread cutoff changes
	FilterRampDuration = 60 * time.Millisecond
)

// Delay section (time/mix driven by the other hand's finger spread)
const (
	DelayTimeMin     = 120 * time.Millisecond
	DelayTimeMax     = 450 * time.Millisecond
	DelayFeedback    = 0.45
	DelayMixMax      = 0.5
	DelayRampSeconds = 0.25
)

// Reverb section
const (
	ReverbMix   = 0.22
	ReverbDecay = 0.78

	// ReverbSeed makes the jittered comb tuning reproducible
	ReverbSeed = 0x5eed
)

// Theremin voice
const (
	ThereminAttack  = 15 * time.Millisecond
	ThereminRelease = 140 * time.Millisecond

	// ThereminGlide is the pitch ramp duration; frequency changes are
	// always ramped, never stepped
	ThereminGlide = 45 * time.Millisecond

	ThereminLevel = 0.35
)

// Pitch quantization
const (
	// RootNote anchors the playable range (C3 in MIDI)
	RootNote = 48

	// NoteRangeOctaves is the horizontal span of the canvas in octaves
	NoteRangeOctaves = 3

	// ReferenceNote and ReferenceFreq define equal temperament (A4 = 440Hz)
	ReferenceNote = 69
	ReferenceFreq = 440.0
)
