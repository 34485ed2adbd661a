package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/maestro/constants"
	"github.com/lixenwraith/maestro/hand"
	"github.com/lixenwraith/maestro/vmath"
)

// openFrame builds a frame with fingertips fanned out from the palm
func openFrame(h hand.Handedness, palm vmath.Vec2) *hand.Frame {
	f := &hand.Frame{Handedness: h, Palm: palm, Spread: 0.8}
	for i := 0; i < constants.FingerCount; i++ {
		f.Fingertips[i] = hand.Fingertip{
			Index: i,
			Pos:   vmath.Vec2{X: palm.X + float64(i+1)*40, Y: palm.Y - 120},
		}
	}
	return f
}

// fistFrame builds a frame with every fingertip curled onto the palm
func fistFrame(h hand.Handedness, palm vmath.Vec2) *hand.Frame {
	f := &hand.Frame{Handedness: h, Palm: palm, Spread: 0.05}
	for i := 0; i < constants.FingerCount; i++ {
		f.Fingertips[i] = hand.Fingertip{
			Index: i,
			Pos:   vmath.Vec2{X: palm.X + float64(i)*4, Y: palm.Y + 6},
		}
	}
	return f
}

// TestClassifyNilPrevious verifies the first frame after hand acquisition
// yields zero velocities instead of a spike
func TestClassifyNilPrevious(t *testing.T) {
	c := NewClassifier()
	st := c.Classify(openFrame(hand.Right, vmath.Vec2{X: 400, Y: 400}), nil, time.Now())
	for i, v := range st.Velocities {
		if v != 0 {
			t.Errorf("Finger %d velocity %f without previous frame", i, v)
		}
	}
}

// TestClassifyNilCurrent verifies a lost hand returns a zero state and
// resets hold tracking
func TestClassifyNilCurrent(t *testing.T) {
	c := NewClassifier()
	now := time.Now()
	prev := fistFrame(hand.Right, vmath.Vec2{X: 400, Y: 400})
	c.Classify(prev, nil, now)

	st := c.Classify(nil, prev, now.Add(16*time.Millisecond))
	if st.Held != HoldNone {
		t.Errorf("Expected zero state for lost hand, got hold %s", st.Held)
	}

	// Re-acquiring the fist must restart the hold clock
	later := now.Add(time.Second)
	st = c.Classify(fistFrame(hand.Right, vmath.Vec2{X: 400, Y: 400}), nil, later)
	if st.Held != HoldFist {
		t.Fatalf("Expected fist on re-acquisition, got %s", st.Held)
	}
	if !st.HoldStart.Equal(later) {
		t.Errorf("Expected hold clock restarted at re-acquisition, got %v", st.HoldStart)
	}
}

// TestClassifyVelocity verifies velocity is the Euclidean fingertip
// displacement between consecutive frames
func TestClassifyVelocity(t *testing.T) {
	c := NewClassifier()
	now := time.Now()

	prev := openFrame(hand.Right, vmath.Vec2{X: 400, Y: 400})
	cur := openFrame(hand.Right, vmath.Vec2{X: 400, Y: 400})
	cur.Fingertips[2].Pos.X += 3
	cur.Fingertips[2].Pos.Y += 4

	st := c.Classify(cur, prev, now)
	if math.Abs(st.Velocities[2]-5.0) > 1e-9 {
		t.Errorf("Expected velocity 5 for 3-4-5 displacement, got %f", st.Velocities[2])
	}
	for _, i := range []int{0, 1, 3, 4} {
		if st.Velocities[i] != 0 {
			t.Errorf("Finger %d moved unexpectedly: %f", i, st.Velocities[i])
		}
	}
	if st.Motion[2].X != 3 || st.Motion[2].Y != 4 {
		t.Errorf("Expected motion (3,4), got %v", st.Motion[2])
	}
}

// TestDetectFist verifies the fist pose requires every fingertip near the
// palm
func TestDetectFist(t *testing.T) {
	c := NewClassifier()
	now := time.Now()

	st := c.Classify(fistFrame(hand.Left, vmath.Vec2{X: 200, Y: 300}), nil, now)
	if st.Held != HoldFist {
		t.Errorf("Expected fist, got %s", st.Held)
	}

	// One extended finger breaks the fist
	broken := fistFrame(hand.Left, vmath.Vec2{X: 200, Y: 300})
	broken.Fingertips[1].Pos.Y -= constants.FistRadius * 3
	st = c.Classify(broken, nil, now)
	if st.Held == HoldFist {
		t.Error("Expected extended finger to break the fist")
	}
}

// TestHoldContinuity verifies HoldStart is preserved while the same pose
// persists and resets when the pose changes
func TestHoldContinuity(t *testing.T) {
	c := NewClassifier()
	t0 := time.Now()
	palm := vmath.Vec2{X: 500, Y: 350}

	st := c.Classify(fistFrame(hand.Right, palm), nil, t0)
	if !st.HoldStart.Equal(t0) {
		t.Fatalf("Expected hold start %v, got %v", t0, st.HoldStart)
	}

	t1 := t0.Add(500 * time.Millisecond)
	st = c.Classify(fistFrame(hand.Right, palm), fistFrame(hand.Right, palm), t1)
	if !st.HoldStart.Equal(t0) {
		t.Errorf("Hold start drifted during sustained fist: %v", st.HoldStart)
	}
	if st.HoldDuration(t1) != 500*time.Millisecond {
		t.Errorf("Expected 500ms hold, got %v", st.HoldDuration(t1))
	}

	t2 := t1.Add(16 * time.Millisecond)
	st = c.Classify(openFrame(hand.Right, palm), fistFrame(hand.Right, palm), t2)
	if st.Held == HoldFist {
		t.Fatal("Expected open pose to end the fist")
	}
	if !st.HoldStart.Equal(t2) {
		t.Errorf("Expected hold clock restart on pose change, got %v", st.HoldStart)
	}
}

// TestHoldsTrackedPerHand verifies the two hands keep independent hold
// clocks
func TestHoldsTrackedPerHand(t *testing.T) {
	c := NewClassifier()
	t0 := time.Now()
	t1 := t0.Add(700 * time.Millisecond)

	c.Classify(fistFrame(hand.Left, vmath.Vec2{X: 200, Y: 300}), nil, t0)
	st := c.Classify(fistFrame(hand.Right, vmath.Vec2{X: 900, Y: 300}), nil, t1)
	if !st.HoldStart.Equal(t1) {
		t.Errorf("Right hand inherited left hand's hold clock: %v", st.HoldStart)
	}

	st = c.Classify(fistFrame(hand.Left, vmath.Vec2{X: 200, Y: 300}), fistFrame(hand.Left, vmath.Vec2{X: 200, Y: 300}), t1)
	if !st.HoldStart.Equal(t0) {
		t.Errorf("Left hand lost its hold clock: %v", st.HoldStart)
	}
}
