package app

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/wgpugp/glimpse"
	"github.com/oliverbestmann/wgpugp/helpers"
)

// Scene is the part of an example that owns pipelines and draws them.
type Scene interface {
	// Init is called once after the context has been created
	Init(ctx *helpers.Context) error

	// Update is called before every frame
	Update() error

	// Draw records the draw calls of one frame
	Draw(pass helpers.RenderPass)

	// DepthStencil reports whether frames need a depth attachment
	DepthStencil() bool
}

// Loop drives a Scene from window events.
type Loop struct {
	ctx   *helpers.Context
	scene Scene

	msaa  *helpers.Texture
	depth *helpers.Texture

	// the latest resize reported an empty framebuffer
	minimized bool

	times FrameTimes
}

// NewLoop initializes the scene and allocates the auxiliary render targets.
func NewLoop(ctx *helpers.Context, scene Scene) (*Loop, error) {
	if err := scene.Init(ctx); err != nil {
		return nil, fmt.Errorf("initialize scene: %w", err)
	}

	loop := &Loop{ctx: ctx, scene: scene, minimized: ctx.Size.IsZero()}

	if err := loop.allocateViews(); err != nil {
		return nil, err
	}

	return loop, nil
}

func (l *Loop) allocateViews() error {
	l.releaseViews()

	if l.ctx.Size.IsZero() {
		return nil
	}

	if l.ctx.SampleCount > 1 {
		msaa, err := helpers.MSAATextureView(l.ctx)
		if err != nil {
			return fmt.Errorf("allocate msaa target: %w", err)
		}

		l.msaa = msaa
	}

	if l.scene.DepthStencil() {
		depth, err := helpers.DepthTextureView(l.ctx)
		if err != nil {
			return fmt.Errorf("allocate depth target: %w", err)
		}

		l.depth = depth
	}

	return nil
}

func (l *Loop) releaseViews() {
	if l.msaa != nil {
		l.msaa.Release()
		l.msaa = nil
	}

	if l.depth != nil {
		l.depth.Release()
		l.depth = nil
	}
}

// Times returns the frame statistics collected so far.
func (l *Loop) Times() FrameTimes {
	return l.times
}

// Handle processes a single window event. It returns false if the
// loop should stop, together with the error that stopped it, if any.
func (l *Loop) Handle(ev glimpse.Event) (bool, error) {
	switch ev.Type {
	case glimpse.EventResize:
		size := helpers.Size{Width: ev.Width, Height: ev.Height}

		l.minimized = size.IsZero()
		if !l.ctx.Resize(size) {
			return true, nil
		}

		if err := l.allocateViews(); err != nil {
			return false, err
		}

		return true, nil

	case glimpse.EventClose:
		slog.Info("Window closed")
		return false, nil

	case glimpse.EventRedraw:
		return l.redraw()
	}

	return true, nil
}

func (l *Loop) redraw() (bool, error) {
	// nothing to render into while minimized
	if l.minimized {
		return true, nil
	}

	if err := l.scene.Update(); err != nil {
		return false, fmt.Errorf("update scene: %w", err)
	}

	if l.times.Tick() {
		slog.Debug("Frame stats",
			slog.Uint64("frames", l.times.FrameCount),
			slog.Float64("fps", l.times.FPS()),
			slog.Duration("max", l.times.MaxDuration),
		)
	}

	err := l.ctx.RenderFrame(helpers.FramePass{MSAA: l.msaa, Depth: l.depth}, l.scene.Draw)

	switch helpers.ActionFor(err) {
	case helpers.FrameReconfigure:
		slog.Debug("Reconfigure surface", slog.Any("err", err))
		l.ctx.Resize(l.ctx.Size)

	case helpers.FrameSkip:
		slog.Warn("Surface timeout")

	case helpers.FrameExit:
		slog.Error("Failed to render frame", slog.Any("err", err))
		return false, err
	}

	return true, nil
}

// Release drops the auxiliary render targets.
func (l *Loop) Release() {
	l.releaseViews()
}
