package audio

import (
	"math"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/vmath"
)

// Scale is an ordered set of semitone offsets within one octave
type Scale struct {
	Name    string
	Offsets []int
}

// Scales is the cycle order for the scale-change command
var Scales = []Scale{
	{Name: "pentatonic minor", Offsets: []int{0, 3, 5, 7, 10}},
	{Name: "major", Offsets: []int{0, 2, 4, 5, 7, 9, 11}},
	{Name: "dorian", Offsets: []int{0, 2, 3, 5, 7, 9, 10}},
	{Name: "whole tone", Offsets: []int{0, 2, 4, 6, 8, 10}},
}

// NoteFreq converts a MIDI note number to Hz in equal temperament
func NoteFreq(note int) float64 {
	return constants.ReferenceFreq * math.Pow(2, float64(note-constants.ReferenceNote)/12)
}

// Quantizer snaps a normalized horizontal position to the nearest note of
// the active scale across a fixed multi-octave range above the root
type Quantizer struct {
	Root    int
	Octaves int
	Scale   Scale
}

// NewQuantizer creates a quantizer with the configured root and range
func NewQuantizer(scale Scale) *Quantizer {
	return &Quantizer{
		Root:    constants.RootNote,
		Octaves: constants.NoteRangeOctaves,
		Scale:   scale,
	}
}

// Quantize maps x in [0,1] linearly across the note range, then selects
// the scale offset with minimum absolute distance from the raw semitone
// offset within the octave
func (q *Quantizer) Quantize(x float64) (note int, freq float64) {
	raw := vmath.Clamp01(x) * float64(q.Octaves*12)
	octave := int(raw) / 12
	semi := raw - float64(octave*12)

	best := q.Scale.Offsets[0]
	bestDist := math.Abs(semi - float64(best))
	for _, off := range q.Scale.Offsets[1:] {
		if d := math.Abs(semi - float64(off)); d < bestDist {
			best = off
			bestDist = d
		}
	}

	note = q.Root + octave*12 + best
	return note, NoteFreq(note)
}
