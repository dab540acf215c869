// Package game runs the blob background inside an ebiten window.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/blob-background/internal/anim"
	"github.com/iburimskiy/blob-background/internal/applog"
	"github.com/iburimskiy/blob-background/internal/backdrop"
	"github.com/iburimskiy/blob-background/internal/blob"
)

var _ ebiten.Game = (*Game)(nil)

type Game struct {
	platform platform
	backdrop *backdrop.Backdrop
	loop     *anim.Loop
	sizes    *windowSizes
	frames   *frameScheduler
	canvas   *screenCanvas

	// last values seen, to turn polling into events
	outsideW, outsideH int
	fullscreen         bool
}

func NewGame() *Game {
	return newGame(ebitenPlatform(), blob.SystemRandom{})
}

func newGame(p platform, rnd blob.RandomSource) *Game {
	g := &Game{
		platform:   p,
		sizes:      newWindowSizes(p),
		frames:     newFrameScheduler(),
		canvas:     newScreenCanvas(),
		fullscreen: p.isFullscreen(),
	}
	g.outsideW, g.outsideH = g.sizes.InnerSize()
	g.backdrop = backdrop.New(g.sizes, rnd, g.canvas)
	g.loop = g.backdrop.Start(g.frames)
	return g
}

// Stop ends the animation loop; the window closes on the next Update.
func (g *Game) Stop() { g.loop.Stop() }

func (g *Game) Update() error {
	if g.platform.toggleFullscreen() {
		g.platform.setFullscreen(!g.platform.isFullscreen())
	}
	if fs := g.platform.isFullscreen(); fs != g.fullscreen {
		g.fullscreen = fs
		applog.Logger().Debug("fullscreen changed", "fullscreen", fs)
		g.backdrop.HandleFullscreenChange()
	}
	if g.loop.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.bind(screen)
	g.frames.fire()
	g.canvas.bind(nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.sizes.setInner(outsideWidth, outsideHeight)
		g.backdrop.HandleResize()
	}
	w, h := g.backdrop.Size()
	// ebiten rejects an empty screen
	return max(w, 1), max(h, 1)
}
