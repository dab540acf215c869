// Package anim drives a per-frame callback from an animation clock.
package anim

import "sync/atomic"

// FrameFunc receives a monotonically increasing timestamp in milliseconds.
type FrameFunc func(timestampMs float64)

// FrameScheduler arms a single callback for the next animation frame.
// Requesting again before the frame fires replaces the pending callback.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc)
}

// Loop renders one frame, then requests the next, until stopped.
type Loop struct {
	sched   FrameScheduler
	frame   FrameFunc
	stopped atomic.Bool
	frames  uint64
}

// Start arms the first frame of a loop running frame on s.
func Start(s FrameScheduler, frame FrameFunc) *Loop {
	l := &Loop{sched: s, frame: frame}
	s.RequestFrame(l.tick)
	return l
}

func (l *Loop) tick(ts float64) {
	if l.stopped.Load() {
		return
	}
	l.frame(ts)
	l.frames++
	if !l.stopped.Load() {
		l.sched.RequestFrame(l.tick)
	}
}

// Stop cancels the loop. A frame already armed runs nothing when it fires.
// Stop may be called from inside the frame callback or from another
// goroutine.
func (l *Loop) Stop() { l.stopped.Store(true) }

// Stopped reports whether Stop was called.
func (l *Loop) Stopped() bool { return l.stopped.Load() }

// Frames counts completed frames.
func (l *Loop) Frames() uint64 { return l.frames }
