package audio

import (
	"math"
	"testing"
)

// TestNoteFreqReference verifies equal temperament anchors
func TestNoteFreqReference(t *testing.T) {
	if f := NoteFreq(69); math.Abs(f-440.0) > 1e-9 {
		t.Errorf("Expected A4=440Hz, got %f", f)
	}
	if f := NoteFreq(81); math.Abs(f-880.0) > 1e-9 {
		t.Errorf("Expected A5=880Hz, got %f", f)
	}
	if f := NoteFreq(57); math.Abs(f-220.0) > 1e-9 {
		t.Errorf("Expected A3=220Hz, got %f", f)
	}
}

// TestQuantizeDeterministic verifies identical input yields identical output
func TestQuantizeDeterministic(t *testing.T) {
	q := NewQuantizer(Scales[0])
	for _, x := range []float64{0, 0.1, 0.33, 0.5, 0.77, 1.0} {
		n1, f1 := q.Quantize(x)
		n2, f2 := q.Quantize(x)
		if n1 != n2 || f1 != f2 {
			t.Errorf("Quantize(%f) not deterministic: (%d,%f) vs (%d,%f)", x, n1, f1, n2, f2)
		}
	}
}

// TestQuantizeMembership verifies every quantized note lands on a scale
// offset relative to the root, for every scale
func TestQuantizeMembership(t *testing.T) {
	for _, sc := range Scales {
		q := NewQuantizer(sc)
		members := make(map[int]bool)
		for _, off := range sc.Offsets {
			members[off] = true
		}

		for i := 0; i <= 200; i++ {
			x := float64(i) / 200
			note, freq := q.Quantize(x)

			offset := ((note-q.Root)%12 + 12) % 12
			if !members[offset] {
				t.Errorf("scale %s: Quantize(%f) = note %d, offset %d not in scale", sc.Name, x, note, offset)
			}

			expected := NoteFreq(note)
			if math.Abs(freq-expected) > 1e-9 {
				t.Errorf("scale %s: frequency %f does not match note %d (%f)", sc.Name, freq, note, expected)
			}
		}
	}
}

// TestQuantizeRange verifies the output stays within the configured
// octave span and clamps out-of-range input
func TestQuantizeRange(t *testing.T) {
	q := NewQuantizer(Scales[0])

	lo, _ := q.Quantize(-5)
	hi, _ := q.Quantize(5)
	if lo < q.Root {
		t.Errorf("Quantize(-5) = %d below root %d", lo, q.Root)
	}
	if hi > q.Root+q.Octaves*12+11 {
		t.Errorf("Quantize(5) = %d beyond range", hi)
	}
}
