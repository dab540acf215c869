package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// platform is the window state the host polls. Tests replace the funcs.
type platform struct {
	windowSize       func() (int, int)
	isFullscreen     func() bool
	setFullscreen    func(bool)
	monitorSize      func() (int, int)
	toggleFullscreen func() bool
}

func ebitenPlatform() platform {
	return platform{
		windowSize:    ebiten.WindowSize,
		isFullscreen:  ebiten.IsFullscreen,
		setFullscreen: ebiten.SetFullscreen,
		monitorSize: func() (int, int) {
			m := ebiten.Monitor()
			if m == nil {
				return 0, 0
			}
			return m.Size()
		},
		toggleFullscreen: func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyF11) },
	}
}

// windowSizes answers viewport queries. The inner size is the outside size
// last passed to Layout; before the first Layout it is the configured
// window size.
type windowSizes struct {
	innerW, innerH int
	isFullscreen   func() bool
	monitorSize    func() (int, int)
}

func newWindowSizes(p platform) *windowSizes {
	w, h := p.windowSize()
	return &windowSizes{
		innerW:       w,
		innerH:       h,
		isFullscreen: p.isFullscreen,
		monitorSize:  p.monitorSize,
	}
}

func (s *windowSizes) setInner(width, height int) {
	s.innerW, s.innerH = width, height
}

func (s *windowSizes) InnerSize() (int, int) { return s.innerW, s.innerH }

func (s *windowSizes) Fullscreen() bool { return s.isFullscreen() }

func (s *windowSizes) ScreenSize() (int, int) {
	w, h := s.monitorSize()
	if w <= 0 || h <= 0 {
		return s.innerW, s.innerH
	}
	return w, h
}
