// Package widget holds the state machines behind the interactive parts of
// the site: gallery lightbox, room carousel, testimonial rotator, FAQ
// accordion, navigation bar and contact launcher.
//
// Widgets never start goroutines. Anything time-based goes through a
// Scheduler, and every handle a widget arms is released by that widget's
// teardown method.
package widget

import (
	"sort"
	"sync"
	"time"
)

// Timer is a scoped handle to a pending one-shot or repeating callback.
type Timer interface {
	// Stop cancels future firings. It reports whether the timer was still live.
	Stop() bool
}

// Scheduler arms timers. Implementations must run callbacks one at a time
// on the owner's execution context.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
}

// ---- LoopScheduler: real time, callbacks delivered to an event loop ----

// LoopScheduler posts timer callbacks onto a single loop via post. The
// cancellation check happens on the loop itself, so a timer stopped after it
// fired but before its callback ran is dropped rather than run late.
type LoopScheduler struct {
	post func(func())
}

func NewLoopScheduler(post func(func())) *LoopScheduler {
	return &LoopScheduler{post: post}
}

type loopTimer struct {
	mu      sync.Mutex
	stopped bool
	t       *time.Timer
	ticker  *time.Ticker
	done    chan struct{}
}

func (lt *loopTimer) Stop() bool {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	if lt.stopped {
		return false
	}
	lt.stopped = true
	if lt.t != nil {
		lt.t.Stop()
	}
	if lt.ticker != nil {
		lt.ticker.Stop()
		close(lt.done)
	}
	return true
}

func (lt *loopTimer) live() bool {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	return !lt.stopped
}

// claim marks a one-shot timer as spent; false means it was stopped first.
func (lt *loopTimer) claim() bool {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	if lt.stopped {
		return false
	}
	lt.stopped = true
	return true
}

func (s *LoopScheduler) AfterFunc(d time.Duration, f func()) Timer {
	lt := &loopTimer{}
	t := time.AfterFunc(d, func() {
		s.post(func() {
			if lt.claim() {
				f()
			}
		})
	})
	lt.mu.Lock()
	lt.t = t
	lt.mu.Unlock()
	return lt
}

func (s *LoopScheduler) Every(d time.Duration, f func()) Timer {
	lt := &loopTimer{ticker: time.NewTicker(d), done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-lt.done:
				return
			case <-lt.ticker.C:
				s.post(func() {
					if lt.live() {
						f()
					}
				})
			}
		}
	}()
	return lt
}

// ---- ManualScheduler: virtual time for tests and simulations ----

// ManualScheduler fires callbacks only when Advance moves its clock.
// It is not safe for concurrent use.
type ManualScheduler struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

type manualTimer struct {
	due     time.Duration
	every   time.Duration
	f       func()
	seq     int
	stopped bool
}

func (m *manualTimer) Stop() bool {
	if m.stopped {
		return false
	}
	m.stopped = true
	return true
}

func (s *ManualScheduler) add(d, every time.Duration, f func()) *manualTimer {
	s.seq++
	t := &manualTimer{due: s.now + d, every: every, f: f, seq: s.seq}
	s.timers = append(s.timers, t)
	return t
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer { return s.add(d, 0, f) }

func (s *ManualScheduler) Every(d time.Duration, f func()) Timer { return s.add(d, d, f) }

// Now is the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration { return s.now }

// Pending counts live timers.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock by d, firing due callbacks in time order. Timers
// armed by a callback fire within the same Advance if they come due.
func (s *ManualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		t := s.next(end)
		if t == nil {
			break
		}
		s.now = t.due
		if t.every > 0 {
			t.due += t.every
		} else {
			t.stopped = true
		}
		t.f()
	}
	s.now = end
	s.compact()
}

func (s *ManualScheduler) next(end time.Duration) *manualTimer {
	var live []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && t.due <= end {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].due != live[j].due {
			return live[i].due < live[j].due
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}

func (s *ManualScheduler) compact() {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	s.timers = kept
}
