package app

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/wgpugp/glimpse"
	"github.com/oliverbestmann/wgpugp/helpers"
)

type Options struct {
	// scene to run. This is the only field that is required
	Scene Scene

	Title  string
	Width  int
	Height int

	// Samples per pixel. Defaults to GP_SAMPLE_COUNT
	SampleCount uint32

	// Device limits. Defaults to wgpu.DefaultLimits()
	Limits *wgpu.Limits
}

func (o Options) withDefaults(cfg Config) Options {
	if o.Title == "" {
		o.Title = "wgpugp"
	}

	if o.Width == 0 {
		o.Width = 800
	}

	if o.Height == 0 {
		o.Height = 600
	}

	if o.SampleCount == 0 {
		o.SampleCount = cfg.SampleCount
	}

	return o
}

// Run opens a window and renders the scene until the window is closed
// or a frame fails.
func Run(opts Options) error {
	if opts.Scene == nil {
		return errors.New("Scene must not be nil")
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		return err
	}

	SetupLogging(cfg)

	opts = opts.withDefaults(cfg)

	win, err := glimpse.NewWindow(glimpse.WindowOptions{
		Width:   opts.Width,
		Height:  opts.Height,
		Title:   opts.Title,
		Profile: cfg.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	width, height := win.GetSize()

	ctx, err := helpers.New(win.SurfaceDescriptor(), helpers.Size{Width: width, Height: height}, &helpers.Options{
		SampleCount: opts.SampleCount,
		Limits:      opts.Limits,
	})
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	loop, err := NewLoop(ctx, opts.Scene)
	if err != nil {
		return err
	}

	defer loop.Release()

	var runErr error

	win.Run(func(ev glimpse.Event) bool {
		cont, err := loop.Handle(ev)
		if err != nil {
			runErr = err
		}

		return cont
	})

	return runErr
}
