package components

// Timer is a dt-driven countdown. Zero value is an already-finished
// timer with no duration.
type Timer struct {
	Duration  float64
	Remaining float64
}

func NewTimer(duration float64) Timer {
	return Timer{Duration: duration, Remaining: duration}
}

// Tick advances the timer. Ticking past zero clamps at zero.
func (t *Timer) Tick(dt float64) {
	if t.Remaining > 0 {
		t.Remaining -= dt
		if t.Remaining < 0 {
			t.Remaining = 0
		}
	}
}

func (t *Timer) Finished() bool {
	return t.Remaining <= 0
}

func (t *Timer) Reset() {
	t.Remaining = t.Duration
}
