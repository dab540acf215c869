package anim

// Manual is a FrameScheduler stepped by hand.
type Manual struct {
	pending FrameFunc
}

func (m *Manual) RequestFrame(fn FrameFunc) { m.pending = fn }

// Pending reports whether a frame is armed.
func (m *Manual) Pending() bool { return m.pending != nil }

// Step fires the armed frame at ts and reports whether one was armed.
func (m *Manual) Step(ts float64) bool {
	fn := m.pending
	if fn == nil {
		return false
	}
	m.pending = nil
	fn(ts)
	return true
}
