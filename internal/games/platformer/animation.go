package platformer

// Animator steps through a frame sequence on the millisecond clock.
// Each position in the sequence has its own hold time.
type Animator struct {
	seq  []int
	hold []float64
	pos  int
	last float64
}

// NewAnimator returns a cyclic animator over frames 0..n-1 with equal hold.
func NewAnimator(n int, frameMS float64) *Animator {
	seq := make([]int, n)
	hold := make([]float64, n)
	for i := range seq {
		seq[i] = i
		hold[i] = frameMS
	}
	return &Animator{seq: seq, hold: hold}
}

// NewPingPong returns an animator running 0 → n-1 → 1 and repeating, where
// frame 0 is held for firstMS and every other step for frameMS.
func NewPingPong(n int, firstMS, frameMS float64) *Animator {
	a := &Animator{}
	for i := 0; i < n; i++ {
		a.seq = append(a.seq, i)
		if i == 0 {
			a.hold = append(a.hold, firstMS)
		} else {
			a.hold = append(a.hold, frameMS)
		}
	}
	for i := n - 2; i > 0; i-- {
		a.seq = append(a.seq, i)
		a.hold = append(a.hold, frameMS)
	}
	return a
}

// Restart rewinds to the first frame with the timer at now.
func (a *Animator) Restart(now float64) {
	a.pos = 0
	a.last = now
}

// Update advances at most one frame once the current hold has elapsed.
func (a *Animator) Update(now float64) {
	if len(a.seq) < 2 {
		return
	}
	if now-a.last > a.hold[a.pos] {
		a.pos = (a.pos + 1) % len(a.seq)
		a.last = now
	}
}

// Frame returns the current frame index.
func (a *Animator) Frame() int {
	if len(a.seq) == 0 {
		return 0
	}
	return a.seq[a.pos]
}
