package helpers

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewWithBackendConfiguresSurface(t *testing.T) {
	ctx, b, err := newStubContext(Size{Width: 800, Height: 600}, 0)
	if err != nil {
		t.Fatalf("NewWithBackend() error = %v", err)
	}

	if ctx.SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1", ctx.SampleCount)
	}

	if len(b.surface.configs) != 1 {
		t.Fatalf("Configure called %d times, want 1", len(b.surface.configs))
	}

	got := b.surface.configs[0]
	want := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      wgpu.TextureFormatBGRA8UnormSrgb,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   wgpu.CompositeAlphaModeOpaque,
		Width:       800,
		Height:      600,
	}

	if got.Usage != want.Usage || got.Format != want.Format || got.PresentMode != want.PresentMode ||
		got.AlphaMode != want.AlphaMode || got.Width != want.Width || got.Height != want.Height {
		t.Errorf("config = %+v, want %+v", got, want)
	}
}

func TestNewWithBackendZeroSizeDefersConfigure(t *testing.T) {
	ctx, b, err := newStubContext(Size{Width: 0, Height: 600}, 4)
	if err != nil {
		t.Fatalf("NewWithBackend() error = %v", err)
	}

	if len(b.surface.configs) != 0 {
		t.Errorf("Configure called %d times, want 0", len(b.surface.configs))
	}

	if ctx.SampleCount != 4 {
		t.Errorf("SampleCount = %d, want 4", ctx.SampleCount)
	}
}

func TestNewWithBackendIncompatibleSurface(t *testing.T) {
	surface := newStubSurface()
	surface.caps.Formats = nil

	_, err := NewWithBackend(Backend{Surface: surface, Device: &stubDevice{}, Commands: &stubCommands{}}, Size{Width: 1, Height: 1}, 1)
	if err == nil {
		t.Fatal("NewWithBackend() expected error for surface without formats")
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name        string
		size        Size
		wantApplied bool
		wantSize    Size
	}{
		{"grow", Size{Width: 1024, Height: 768}, true, Size{Width: 1024, Height: 768}},
		{"shrink", Size{Width: 320, Height: 200}, true, Size{Width: 320, Height: 200}},
		{"zero width", Size{Width: 0, Height: 768}, false, Size{Width: 800, Height: 600}},
		{"zero height", Size{Width: 1024, Height: 0}, false, Size{Width: 800, Height: 600}},
		{"minimized", Size{}, false, Size{Width: 800, Height: 600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, b, err := newStubContext(Size{Width: 800, Height: 600}, 1)
			if err != nil {
				t.Fatalf("NewWithBackend() error = %v", err)
			}

			if got := ctx.Resize(tt.size); got != tt.wantApplied {
				t.Errorf("Resize(%v) = %v, want %v", tt.size, got, tt.wantApplied)
			}

			if ctx.Size != tt.wantSize {
				t.Errorf("Size = %v, want %v", ctx.Size, tt.wantSize)
			}

			if ctx.Config.Width != tt.wantSize.Width || ctx.Config.Height != tt.wantSize.Height {
				t.Errorf("Config size = %dx%d, want %dx%d",
					ctx.Config.Width, ctx.Config.Height, tt.wantSize.Width, tt.wantSize.Height)
			}

			wantConfigs := 1
			if tt.wantApplied {
				wantConfigs = 2
			}

			if len(b.surface.configs) != wantConfigs {
				t.Errorf("Configure called %d times, want %d", len(b.surface.configs), wantConfigs)
			}
		})
	}
}

func TestResizeKeepsFormat(t *testing.T) {
	ctx, b, err := newStubContext(Size{Width: 800, Height: 600}, 1)
	if err != nil {
		t.Fatalf("NewWithBackend() error = %v", err)
	}

	ctx.Resize(Size{Width: 640, Height: 480})

	last := b.surface.configs[len(b.surface.configs)-1]
	if last.Format != b.surface.configs[0].Format {
		t.Errorf("Format after resize = %v, want %v", last.Format, b.surface.configs[0].Format)
	}
}

func TestSizeIsZero(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{Size{}, true},
		{Size{Width: 1}, true},
		{Size{Height: 1}, true},
		{Size{Width: 1, Height: 1}, false},
	}

	for _, tt := range tests {
		if got := tt.size.IsZero(); got != tt.want {
			t.Errorf("%v.IsZero() = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestRequiredFeatures(t *testing.T) {
	want := wgpu.FeatureName(wgpu.NativeFeatureTextureAdapterSpecificFormatFeatures)

	if len(requiredFeatures) != 1 || requiredFeatures[0] != want {
		t.Errorf("requiredFeatures = %v, want [%v]", requiredFeatures, want)
	}
}
