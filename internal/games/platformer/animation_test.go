package platformer

import "testing"

func TestPingPongAnimator(t *testing.T) {
	a := NewPingPong(3, 375, 125)
	a.Restart(0)

	steps := []struct {
		now      float64
		expected int
	}{
		{375, 0}, // hold not exceeded yet
		{376, 1},
		{501, 1},
		{502, 2},
		{628, 1},
		{754, 0},
		{1000, 0},
		{1130, 1},
	}

	for _, s := range steps {
		a.Update(s.now)
		if got := a.Frame(); got != s.expected {
			t.Errorf("Frame() at %vms = %d, expected %d", s.now, got, s.expected)
		}
	}
}

func TestCyclicAnimator(t *testing.T) {
	a := NewAnimator(3, 100)
	a.Restart(0)

	var frames []int
	for now := 101.0; now < 700; now += 101 {
		a.Update(now)
		frames = append(frames, a.Frame())
	}

	expected := []int{1, 2, 0, 1, 2, 0}
	if len(frames) != len(expected) {
		t.Fatalf("got %d frames, expected %d", len(frames), len(expected))
	}
	for i := range expected {
		if frames[i] != expected[i] {
			t.Errorf("frame %d = %d, expected %d", i, frames[i], expected[i])
		}
	}
}

func TestAnimatorRestart(t *testing.T) {
	a := NewAnimator(4, 50)
	a.Restart(0)
	a.Update(60)
	a.Update(120)
	if a.Frame() != 2 {
		t.Fatalf("Frame() = %d, expected 2", a.Frame())
	}

	a.Restart(200)
	if a.Frame() != 0 {
		t.Errorf("Frame() after restart = %d, expected 0", a.Frame())
	}
	a.Update(240)
	if a.Frame() != 0 {
		t.Errorf("Frame() before hold elapsed = %d, expected 0", a.Frame())
	}
}

func TestSingleFrameAnimator(t *testing.T) {
	a := NewAnimator(1, 10)
	for now := 0.0; now < 100; now += 11 {
		a.Update(now)
		if a.Frame() != 0 {
			t.Fatalf("Frame() = %d, expected 0", a.Frame())
		}
	}
}
