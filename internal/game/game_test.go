package game

import (
	"errors"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/blob-background/internal/render"
)

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.4, 0.4}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVertexColor(t *testing.T) {
	r, g, b, a := vertexColor(color.NRGBA{R: 255, G: 0, B: 51, A: 82})
	if r != 1 || g != 0 || math.Abs(float64(b)-0.2) > 1e-6 || math.Abs(float64(a)-82.0/255) > 1e-6 {
		t.Errorf("vertexColor = (%v, %v, %v, %v)", r, g, b, a)
	}
}

func TestElapsedMillis(t *testing.T) {
	if got := elapsedMillis(1500 * time.Microsecond); got != 1.5 {
		t.Errorf("elapsedMillis(1.5ms) = %v, want 1.5", got)
	}
}

func TestAppendPolygon(t *testing.T) {
	pts := render.NoisyCircle(100, 50, 40)
	vs, is := appendPolygon(nil, nil, pts, 0.25, 0.5, 1, 0.3)

	if len(vs) < len(pts) {
		t.Fatalf("got %d vertices for %d points", len(vs), len(pts))
	}
	if len(is) == 0 || len(is)%3 != 0 {
		t.Fatalf("got %d indices, want a positive multiple of 3", len(is))
	}
	for i, p := range pts {
		if math.Abs(float64(vs[i].DstX)-p.X) > 1e-3 || math.Abs(float64(vs[i].DstY)-p.Y) > 1e-3 {
			t.Errorf("vertex %d at (%v, %v), want %v", i, vs[i].DstX, vs[i].DstY, p)
		}
	}
	for i, v := range vs {
		if v.ColorR != 0.25 || v.ColorG != 0.5 || v.ColorB != 1 || v.ColorA != 0.3 {
			t.Fatalf("vertex %d color = (%v, %v, %v, %v)", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
		if v.SrcX != 1 || v.SrcY != 1 {
			t.Fatalf("vertex %d samples (%v, %v), want the white pixel (1, 1)", i, v.SrcX, v.SrcY)
		}
	}
	for i, idx := range is {
		if int(idx) >= len(vs) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
}

func TestAppendPolygonAppends(t *testing.T) {
	tri := []render.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	vs, is := appendPolygon(nil, nil, tri, 1, 1, 1, 1)
	n, m := len(vs), len(is)
	vs, is = appendPolygon(vs, is, tri, 0, 0, 0, 1)

	if len(vs) != 2*n || len(is) != 2*m {
		t.Fatalf("second polygon added %d vertices and %d indices, want %d and %d", len(vs)-n, len(is)-m, n, m)
	}
	for i, idx := range is[m:] {
		if int(idx) < n {
			t.Errorf("second polygon index %d = %d refers to the first polygon", i, idx)
		}
	}
	if vs[0].ColorR != 1 || vs[n].ColorR != 0 {
		t.Error("second polygon recolored the first")
	}
}

// fakePlatform is a window whose state the test sets directly.
type fakePlatform struct {
	windowW, windowH   int
	monitorW, monitorH int
	fullscreen         bool
	toggle             bool
}

func (f *fakePlatform) platform() platform {
	return platform{
		windowSize:       func() (int, int) { return f.windowW, f.windowH },
		isFullscreen:     func() bool { return f.fullscreen },
		setFullscreen:    func(v bool) { f.fullscreen = v },
		monitorSize:      func() (int, int) { return f.monitorW, f.monitorH },
		toggleFullscreen: func() bool { return f.toggle },
	}
}

func newTestGame(f *fakePlatform) *Game {
	return newGame(f.platform(), rand.New(rand.NewPCG(1, 2)))
}

func TestLayoutUnchangedRaisesNoEvent(t *testing.T) {
	f := &fakePlatform{windowW: 800, windowH: 600, monitorW: 1920, monitorH: 1080}
	g := newTestGame(f)

	for range 3 {
		w, h := g.Layout(800, 600)
		if w != 800 || h != 600 {
			t.Fatalf("Layout = %dx%d, want 800x600", w, h)
		}
	}
	if g.backdrop.Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", g.backdrop.Generation())
	}
}

func TestLayoutResizeRegenerates(t *testing.T) {
	f := &fakePlatform{windowW: 800, windowH: 600}
	g := newTestGame(f)

	w, h := g.Layout(1200, 800)
	if w != 1200 || h != 800 {
		t.Errorf("Layout = %dx%d, want 1200x800", w, h)
	}
	if g.backdrop.Generation() != 2 {
		t.Errorf("Generation() = %d, want 2", g.backdrop.Generation())
	}
	if len(g.backdrop.Blobs()) != 8 {
		t.Errorf("got %d blobs, want 8", len(g.backdrop.Blobs()))
	}
}

func TestFullscreenRoundTrip(t *testing.T) {
	f := &fakePlatform{windowW: 800, windowH: 600, monitorW: 1920, monitorH: 1080}
	g := newTestGame(f)
	g.Layout(800, 600)

	// enter: Update sees the flag, then ebiten reports the screen size
	f.fullscreen = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if w, h := g.Layout(1920, 1080); w != 1920 || h != 1080 {
		t.Errorf("Layout in fullscreen = %dx%d, want 1920x1080", w, h)
	}
	g.frames.fire()
	if g.backdrop.Generation() != 2 {
		t.Fatalf("Generation() after entering = %d, want 2", g.backdrop.Generation())
	}
	if len(g.backdrop.Blobs()) != 17 {
		t.Errorf("got %d blobs in fullscreen, want 17", len(g.backdrop.Blobs()))
	}

	// exit: Update sees false while the outside size is still the screen's
	f.fullscreen = false
	g.Update()
	if g.backdrop.Generation() != 2 {
		t.Errorf("Generation() before the window shrinks = %d, want 2", g.backdrop.Generation())
	}
	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout after exit = %dx%d, want 800x600", w, h)
	}
	g.frames.fire()
	if g.backdrop.Generation() != 3 {
		t.Errorf("Generation() after exit = %d, want 3", g.backdrop.Generation())
	}
	if len(g.backdrop.Blobs()) != 6 {
		t.Errorf("got %d blobs after exit, want 6", len(g.backdrop.Blobs()))
	}
}

func TestToggleKeyFlipsFullscreen(t *testing.T) {
	f := &fakePlatform{windowW: 800, windowH: 600, monitorW: 1920, monitorH: 1080}
	g := newTestGame(f)

	f.toggle = true
	g.Update()
	if !f.fullscreen {
		t.Fatal("toggle did not request fullscreen")
	}
	if w, h := g.backdrop.Size(); w != 1920 || h != 1080 {
		t.Errorf("Size() = %dx%d, want 1920x1080", w, h)
	}
	if g.backdrop.Generation() != 2 {
		t.Errorf("Generation() = %d, want 2", g.backdrop.Generation())
	}
}

func TestScreenSizeFallsBackToWindow(t *testing.T) {
	f := &fakePlatform{windowW: 640, windowH: 480}
	s := newWindowSizes(f.platform())
	if w, h := s.ScreenSize(); w != 640 || h != 480 {
		t.Errorf("ScreenSize() without a monitor = %dx%d, want 640x480", w, h)
	}
}

func TestUpdateTerminatesAfterStop(t *testing.T) {
	g := newTestGame(&fakePlatform{windowW: 100, windowH: 100})
	g.Stop()
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Stop = %v, want ebiten.Termination", err)
	}
}

func TestFrameSchedulerTimestamps(t *testing.T) {
	clock := time.Unix(1000, 0)
	s := newFrameScheduler()
	s.now = func() time.Time { return clock }

	if s.fire() {
		t.Fatal("fire with nothing armed reported a frame")
	}

	var got []float64
	var frame func(float64)
	frame = func(ts float64) {
		got = append(got, ts)
		s.RequestFrame(frame)
	}
	s.RequestFrame(frame)

	s.fire()
	clock = clock.Add(16 * time.Millisecond)
	s.fire()
	clock = clock.Add(250 * time.Microsecond)
	s.fire()

	want := []float64{0, 16, 16.25}
	if len(got) != len(want) {
		t.Fatalf("timestamps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("timestamp %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFrameSchedulerFiresOnce(t *testing.T) {
	s := newFrameScheduler()
	calls := 0
	s.RequestFrame(func(float64) { calls++ })
	s.fire()
	s.fire()
	if calls != 1 {
		t.Errorf("frame ran %d times, want 1", calls)
	}
}
