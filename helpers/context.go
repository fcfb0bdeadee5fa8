package helpers

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// wgpu-native extension that exposes format capabilities beyond the WebGPU baseline
var requiredFeatures = []wgpu.FeatureName{
	wgpu.FeatureName(wgpu.NativeFeatureTextureAdapterSpecificFormatFeatures),
}

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Size is the physical size of a window in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

type Options struct {
	// Number of samples per pixel of every pipeline and render target
	// built against the context. Defaults to 1.
	SampleCount uint32

	// Device limits to request. Defaults to wgpu.DefaultLimits()
	Limits *wgpu.Limits

	PowerPreference wgpu.PowerPreference

	// Allow a software adapter. Can also be enabled by setting
	// WGPU_FORCE_FALLBACK_ADAPTER=1
	ForceFallbackAdapter bool
}

func (o Options) withDefaults() Options {
	if o.SampleCount == 0 {
		o.SampleCount = 1
	}

	if o.Limits == nil {
		limits := wgpu.DefaultLimits()
		o.Limits = &limits
	}

	o.ForceFallbackAdapter = o.ForceFallbackAdapter || forceFallbackAdapter

	return o
}

// Context owns the gpu state of one window: the instance, the surface with its
// current configuration, the adapter and the device/queue pair.
type Context struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue

	Surface Surface
	Config  wgpu.SurfaceConfiguration

	// latest non-zero size of the window
	Size Size

	SampleCount uint32

	gpu      Device
	commands Commands
}

// New acquires an adapter and device that can render to the surface described by sd
// and configures the surface for the given size. This blocks until the driver has
// answered both requests.
func New(sd *wgpu.SurfaceDescriptor, size Size, opts *Options) (ctx *Context, err error) {
	var o Options
	if opts != nil {
		o = *opts
	}

	o = o.withDefaults()

	st := &Context{SampleCount: o.SampleCount}

	defer func() {
		if err != nil {
			st.Release()
		}
	}()

	ctx = st

	ctx.Instance = wgpu.CreateInstance(nil)

	surface := &windowSurface{surface: ctx.Instance.CreateSurface(sd)}
	ctx.Surface = surface

	ctx.Adapter, err = ctx.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    surface.surface,
		PowerPreference:      o.PowerPreference,
		ForceFallbackAdapter: o.ForceFallbackAdapter,
	})
	if err != nil {
		return nil, fmt.Errorf("no compatible adapter: %w", err)
	}

	ctx.Device, err = ctx.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Device",
		RequiredFeatures: requiredFeatures,
		RequiredLimits:   &wgpu.RequiredLimits{Limits: *o.Limits},
	})
	if err != nil {
		return nil, fmt.Errorf("create device: %w", err)
	}

	ctx.Queue = ctx.Device.GetQueue()

	surface.adapter = ctx.Adapter
	surface.device = ctx.Device

	ctx.gpu = ctx.Device
	ctx.commands = &queueCommands{device: ctx.Device, queue: ctx.Queue}

	if err := ctx.configure(size); err != nil {
		return nil, err
	}

	return ctx, nil
}

// Backend holds the gpu objects a Context drives when it is not created
// from a real adapter, e.g. in tests.
type Backend struct {
	Surface  Surface
	Device   Device
	Commands Commands
}

// NewWithBackend builds a Context on top of the given backend, applying the same
// surface configuration policy as New.
func NewWithBackend(b Backend, size Size, sampleCount uint32) (*Context, error) {
	if sampleCount == 0 {
		sampleCount = 1
	}

	ctx := &Context{
		Surface:     b.Surface,
		SampleCount: sampleCount,
		gpu:         b.Device,
		commands:    b.Commands,
	}

	if err := ctx.configure(size); err != nil {
		return nil, err
	}

	return ctx, nil
}

func (c *Context) configure(size Size) error {
	caps := c.Surface.Capabilities()
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return errors.New("surface is not compatible with the adapter")
	}

	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	// the binding has no frame latency setting, wgpu-native uses a maximum latency of 2
	c.Config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
		Width:       size.Width,
		Height:      size.Height,
	}

	c.Size = size

	if !size.IsZero() {
		c.Surface.Configure(&c.Config)
	}

	return nil
}

// Resize reconfigures the surface for the new window size. Sizes with a zero
// dimension, as reported for minimized windows, are ignored. Returns true if the
// surface was reconfigured.
func (c *Context) Resize(size Size) bool {
	if size.IsZero() {
		return false
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(size.Width)),
		slog.Int("height", int(size.Height)),
	)

	c.Size = size
	c.Config.Width = size.Width
	c.Config.Height = size.Height
	c.Surface.Configure(&c.Config)

	return true
}

// LogInfo writes details about the adapter and the device to the default logger.
func (c *Context) LogInfo() {
	slog.Info("Adapter", slog.Any("info", c.Adapter.GetInfo()))
	slog.Info("Adapter limits", slog.Any("limits", c.Adapter.GetLimits()))
	slog.Info("Device limits", slog.Any("limits", c.Device.GetLimits()))
}

// Release drops all gpu objects in reverse order of acquisition.
func (c *Context) Release() {
	if c.Queue != nil {
		c.Queue.Release()
		c.Queue = nil
	}

	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}

	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}

	if c.Surface != nil {
		c.Surface.Release()
		c.Surface = nil
	}

	if c.Instance != nil {
		c.Instance.Release()
		c.Instance = nil
	}

	c.gpu = nil
	c.commands = nil
}
