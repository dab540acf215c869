// Package viewport tracks the pixel size of the drawing surface.
package viewport

// SizeSource reports the ambient window and screen state.
type SizeSource interface {
	// InnerSize is the size of the window's drawable area.
	InnerSize() (width, height int)
	// Fullscreen reports whether the surface is currently fullscreen.
	Fullscreen() bool
	// ScreenSize is the physical screen size, used while fullscreen.
	ScreenSize() (width, height int)
}

// ChangeFunc is called with the new surface size after it changes.
type ChangeFunc func(width, height int)

// Manager owns the surface dimensions.
type Manager struct {
	src      SizeSource
	onChange ChangeFunc

	width, height int
	measured      bool
	changes       uint64
}

// New returns a manager that has not yet measured the surface. The first
// Reconcile always reports a change.
func New(src SizeSource, onChange ChangeFunc) *Manager {
	return &Manager{src: src, onChange: onChange}
}

// Target returns the size the surface should have right now.
func (m *Manager) Target() (width, height int) {
	if m.src.Fullscreen() {
		return m.src.ScreenSize()
	}
	return m.src.InnerSize()
}

// Reconcile compares the target size with the stored surface size and, if
// they differ, stores the target and calls the change callback. It reports
// whether the surface changed.
func (m *Manager) Reconcile() bool {
	w, h := m.Target()
	if m.measured && w == m.width && h == m.height {
		return false
	}
	m.width, m.height = w, h
	m.measured = true
	m.changes++
	if m.onChange != nil {
		m.onChange(w, h)
	}
	return true
}

// Size returns the stored surface size.
func (m *Manager) Size() (width, height int) { return m.width, m.height }

// Changes counts how many times Reconcile changed the surface.
func (m *Manager) Changes() uint64 { return m.changes }
