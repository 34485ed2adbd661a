package render

import (
	"math"
	"testing"
)

// TestFingerColorDeterministic verifies identical context state yields
// identical colors
func TestFingerColorDeterministic(t *testing.T) {
	a := NewContext()
	b := NewContext()
	a.UpdatePhase(0.5)
	b.UpdatePhase(0.5)

	for finger := 0; finger < 5; finger++ {
		if a.FingerColor(finger, 3.0, 1.0) != b.FingerColor(finger, 3.0, 1.0) {
			t.Errorf("Finger %d color diverged for identical state", finger)
		}
	}
}

// TestTriadicHues verifies the triadic relationship places fingers 120
// degrees apart
func TestTriadicHues(t *testing.T) {
	c := NewContext()
	if !c.SetScheme("prism") {
		t.Fatal("prism scheme missing")
	}

	h0 := c.FingerHue(0)
	h1 := c.FingerHue(1)
	h2 := c.FingerHue(2)
	if d := math.Mod(h1-h0+360, 360); math.Abs(d-120) > 1e-9 {
		t.Errorf("Expected 120 degree offset between fingers 0 and 1, got %f", d)
	}
	if d := math.Mod(h2-h0+360, 360); math.Abs(d-240) > 1e-9 {
		t.Errorf("Expected 240 degree offset between fingers 0 and 2, got %f", d)
	}
	// Finger 3 wraps back onto finger 0's hue
	if c.FingerHue(3) != h0 {
		t.Errorf("Expected finger 3 to share finger 0's hue")
	}
}

// TestMonochromaticHue verifies the monochromatic relationship pins every
// finger to the base hue
func TestMonochromaticHue(t *testing.T) {
	c := NewContext()
	if !c.SetScheme("ember") {
		t.Fatal("ember scheme missing")
	}
	c.UpdatePhase(3.7)

	base := c.FingerHue(0)
	for finger := 1; finger < 5; finger++ {
		if c.FingerHue(finger) != base {
			t.Errorf("Finger %d hue %f differs from base %f", finger, c.FingerHue(finger), base)
		}
	}
}

// TestSaturationCapped verifies extreme velocity cannot push saturation
// past the cap (full saturation still yields a valid color)
func TestSaturationCapped(t *testing.T) {
	c := NewContext()
	fast := c.FingerColor(0, 1e6, 1.0)
	faster := c.FingerColor(0, 1e9, 1.0)
	if fast != faster {
		t.Error("Saturation kept rising past the cap")
	}
}

// TestPhaseAdvancesOnlyOnUpdate verifies reads never move the shared
// phase
func TestPhaseAdvancesOnlyOnUpdate(t *testing.T) {
	c := NewContext()
	p0 := c.Phase()
	c.FingerHue(2)
	c.FingerColor(1, 4.0, 1.0)
	c.ParticleColor(ByPhase, 0, 1.0)
	if c.Phase() != p0 {
		t.Error("Color reads advanced the phase")
	}

	c.UpdatePhase(1.0)
	if c.Phase() == p0 {
		t.Error("UpdatePhase did not advance the phase")
	}
}

// TestSchemeCycleWraps verifies cycling walks every scheme and returns to
// the start
func TestSchemeCycleWraps(t *testing.T) {
	c := NewContext()
	start := c.SchemeName()
	seen := map[string]bool{start: true}
	for i := 1; i < len(schemes); i++ {
		seen[c.CycleScheme()] = true
	}
	if len(seen) != len(schemes) {
		t.Errorf("Cycle visited %d schemes, want %d", len(seen), len(schemes))
	}
	if got := c.CycleScheme(); got != start {
		t.Errorf("Cycle did not wrap: got %s, want %s", got, start)
	}
}

// TestSetSchemeUnknown verifies unknown names keep the current scheme
func TestSetSchemeUnknown(t *testing.T) {
	c := NewContext()
	before := c.SchemeName()
	if c.SetScheme("chartreuse") {
		t.Error("Expected unknown scheme to be rejected")
	}
	if c.SchemeName() != before {
		t.Error("Unknown scheme name changed the active scheme")
	}
}

// TestWrapHue verifies hue normalization into [0, 360)
func TestWrapHue(t *testing.T) {
	cases := map[float64]float64{0: 0, 360: 0, 480: 120, -40: 320, 725: 5}
	for in, want := range cases {
		if got := wrapHue(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("wrapHue(%f) = %f, want %f", in, got, want)
		}
	}
}
