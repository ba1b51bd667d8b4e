package widget

import "time"

const RotateEvery = 5 * time.Second

// Rotator cycles through n slides on a repeating timer. Hovering pauses it;
// manual navigation leaves the running timer alone.
type Rotator struct {
	sched    Scheduler
	n        int
	index    int
	hovered  bool
	timer    Timer
	onChange func(int)
}

func NewRotator(s Scheduler, n int, onChange func(int)) *Rotator {
	return &Rotator{sched: s, n: n, onChange: onChange}
}

func (r *Rotator) Index() int { return r.index }

func (r *Rotator) Running() bool { return r.timer != nil }

// Start arms the auto-advance timer. No-op with fewer than two slides.
func (r *Rotator) Start() {
	if r.timer != nil || r.n < 2 || r.hovered {
		return
	}
	r.timer = r.sched.Every(RotateEvery, r.Next)
}

// Stop cancels the auto-advance timer.
func (r *Rotator) Stop() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Rotator) Hover(on bool) {
	r.hovered = on
	if on {
		r.Stop()
		return
	}
	r.Start()
}

func (r *Rotator) Next() { r.set(r.index + 1) }

func (r *Rotator) Prev() { r.set(r.index - 1) }

func (r *Rotator) Go(i int) {
	if r.n == 0 {
		return
	}
	r.set(clamp(i, r.n))
}

func (r *Rotator) set(i int) {
	if r.n == 0 {
		return
	}
	r.index = wrap(i, r.n)
	if r.onChange != nil {
		r.onChange(r.index)
	}
}
