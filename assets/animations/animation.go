package animations

// Animation plays an inclusive frame range at a fixed seconds-per-
// frame rate. When the last frame's duration elapses it either wraps
// to the first frame or freezes on the last.
type Animation struct {
	First            int
	Last             int
	FrameDuration    float64
	FreezeOnComplete bool

	frame   int
	elapsed float64
	frozen  bool

	// JustFinished is true from the update in which the last frame
	// completed until the next update.
	JustFinished bool
}

func (a *Animation) Update(dt float64) {
	a.JustFinished = false
	if a.frozen || a.FrameDuration <= 0 {
		return
	}

	a.elapsed += dt
	for a.elapsed >= a.FrameDuration {
		a.elapsed -= a.FrameDuration
		if a.frame >= a.Last {
			a.JustFinished = true
			if a.FreezeOnComplete {
				a.frozen = true
				a.frame = a.Last
				return
			}
			a.frame = a.First
		} else {
			a.frame++
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// TotalFrames is the number of frames in the strip.
func (a *Animation) TotalFrames() int {
	return a.Last + 1
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.frozen = false
	a.JustFinished = false
}

func NewAnimation(first, last int, frameDuration float64, freezeOnComplete bool) *Animation {
	return &Animation{
		First:            first,
		Last:             last,
		FrameDuration:    frameDuration,
		FreezeOnComplete: freezeOnComplete,
		frame:            first,
	}
}
