package game

import (
	"time"

	"github.com/iburimskiy/blob-background/internal/anim"
)

// frameScheduler hands the armed frame to ebiten's Draw. Timestamps count
// from the first frame, which therefore runs at 0.
type frameScheduler struct {
	pending anim.FrameFunc
	now     func() time.Time
	start   time.Time
	started bool
}

func newFrameScheduler() *frameScheduler {
	return &frameScheduler{now: time.Now}
}

func (s *frameScheduler) RequestFrame(fn anim.FrameFunc) { s.pending = fn }

// fire runs the armed frame, if any.
func (s *frameScheduler) fire() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	now := s.now()
	if !s.started {
		s.start = now
		s.started = true
	}
	fn(elapsedMillis(now.Sub(s.start)))
	return true
}
