package helpers

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestCachedSampler(t *testing.T) {
	ctx, b, err := newStubContext(Size{Width: 8, Height: 8}, 1)
	if err != nil {
		t.Fatalf("NewWithBackend() error = %v", err)
	}

	first, err := DefaultSampler(ctx)
	if err != nil {
		t.Fatalf("DefaultSampler() error = %v", err)
	}

	second, err := DefaultSampler(ctx)
	if err != nil {
		t.Fatalf("DefaultSampler() error = %v", err)
	}

	if first != second {
		t.Error("DefaultSampler returned a different sampler on the second call")
	}

	nearest := DefaultSamplerDescriptor
	nearest.MagFilter = wgpu.FilterModeNearest

	third, err := CachedSampler(ctx, nearest)
	if err != nil {
		t.Fatalf("CachedSampler() error = %v", err)
	}

	if third == first {
		t.Error("different descriptors share a sampler")
	}

	if b.device.samplers != 2 {
		t.Errorf("CreateSampler called %d times, want 2", b.device.samplers)
	}
}

func TestCachedSamplerPerDevice(t *testing.T) {
	ctxA, a, _ := newStubContext(Size{Width: 8, Height: 8}, 1)
	ctxB, b, _ := newStubContext(Size{Width: 8, Height: 8}, 1)

	if _, err := DefaultSampler(ctxA); err != nil {
		t.Fatalf("DefaultSampler() error = %v", err)
	}

	if _, err := DefaultSampler(ctxB); err != nil {
		t.Fatalf("DefaultSampler() error = %v", err)
	}

	if a.device.samplers != 1 || b.device.samplers != 1 {
		t.Errorf("samplers created = %d/%d, want 1/1", a.device.samplers, b.device.samplers)
	}
}
