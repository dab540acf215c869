// Package backdrop owns the state of the animated blob background: surface
// size, blob collection and the canvas they are drawn on.
package backdrop

import (
	"github.com/iburimskiy/blob-background/internal/anim"
	"github.com/iburimskiy/blob-background/internal/applog"
	"github.com/iburimskiy/blob-background/internal/blob"
	"github.com/iburimskiy/blob-background/internal/render"
	"github.com/iburimskiy/blob-background/internal/viewport"
)

// Reason names what triggered a reconciliation.
type Reason string

const (
	ReasonStartup    Reason = "startup"
	ReasonResize     Reason = "resize"
	ReasonFullscreen Reason = "fullscreen"
	ReasonFrame      Reason = "frame"
)

// Backdrop is not safe for concurrent use; every method runs on the frame
// goroutine.
type Backdrop struct {
	viewport *viewport.Manager
	field    *blob.Field
	canvas   render.Canvas
	renderer *render.Renderer

	reason Reason
}

// New builds a backdrop and measures the surface once, generating the first
// blob set.
func New(sizes viewport.SizeSource, rnd blob.RandomSource, canvas render.Canvas) *Backdrop {
	b := &Backdrop{
		field:    blob.NewField(rnd),
		canvas:   canvas,
		renderer: render.NewRenderer(canvas),
	}
	b.viewport = viewport.New(sizes, b.resized)
	b.reconcile(ReasonStartup)
	return b
}

func (b *Backdrop) resized(width, height int) {
	b.canvas.Resize(width, height)
	b.field.Regenerate(width, height)
	applog.Logger().Debug("blobs regenerated",
		"width", width,
		"height", height,
		"blobs", len(b.field.Blobs()),
		"generation", b.field.Generation(),
		"reason", string(b.reason))
}

func (b *Backdrop) reconcile(r Reason) bool {
	b.reason = r
	return b.viewport.Reconcile()
}

// Reconcile re-reads the ambient size and regenerates the blobs if the
// surface changed. It reports whether it did.
func (b *Backdrop) Reconcile() bool { return b.reconcile(ReasonFrame) }

// HandleResize reacts to a window resize event.
func (b *Backdrop) HandleResize() { b.reconcile(ReasonResize) }

// HandleFullscreenChange reacts to entering or leaving fullscreen.
func (b *Backdrop) HandleFullscreenChange() { b.reconcile(ReasonFullscreen) }

// RenderFrame reconciles the surface size, then draws every blob at
// timestamp ts (milliseconds). The size is re-checked every frame because
// fullscreen transitions do not raise a resize on every platform.
func (b *Backdrop) RenderFrame(ts float64) {
	b.reconcile(ReasonFrame)
	w, h := b.viewport.Size()
	b.renderer.DrawFrame(ts, w, h, b.field.Blobs())
}

// Start runs RenderFrame on every frame of s until the returned loop is
// stopped.
func (b *Backdrop) Start(s anim.FrameScheduler) *anim.Loop {
	return anim.Start(s, b.RenderFrame)
}

// Size returns the surface size in pixels.
func (b *Backdrop) Size() (width, height int) { return b.viewport.Size() }

// Blobs returns the current blob collection. Callers must not modify it.
func (b *Backdrop) Blobs() []blob.Blob { return b.field.Blobs() }

// Generation counts blob regenerations.
func (b *Backdrop) Generation() uint64 { return b.field.Generation() }
