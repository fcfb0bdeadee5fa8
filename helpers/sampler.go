package helpers

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
)

type samplerKey struct {
	device Device
	desc   wgpu.SamplerDescriptor
}

var samplerCache, _ = lru.NewWithEvict[samplerKey, *wgpu.Sampler](16, samplerCacheOnEvict)

func samplerCacheOnEvict(_ samplerKey, value *wgpu.Sampler) {
	value.Release()
}

// DefaultSamplerDescriptor filters linearly when magnifying and clamps at the edges.
var DefaultSamplerDescriptor = wgpu.SamplerDescriptor{
	Label:         "DefaultSampler",
	AddressModeU:  wgpu.AddressModeClampToEdge,
	AddressModeV:  wgpu.AddressModeClampToEdge,
	AddressModeW:  wgpu.AddressModeClampToEdge,
	MagFilter:     wgpu.FilterModeLinear,
	MinFilter:     wgpu.FilterModeNearest,
	MipmapFilter:  wgpu.MipmapFilterModeNearest,
	LodMinClamp:   0,
	LodMaxClamp:   32,
	MaxAnisotropy: 1,
}

// CachedSampler returns a sampler matching your description. The sampler may be cached,
// you must not call wgpu.Sampler.Release() on it.
func CachedSampler(ctx *Context, desc wgpu.SamplerDescriptor) (*wgpu.Sampler, error) {
	key := samplerKey{device: ctx.gpu, desc: desc}

	cachedSampler, ok := samplerCache.Get(key)
	if ok {
		return cachedSampler, nil
	}

	sampler, err := ctx.gpu.CreateSampler(&desc)
	if err != nil {
		return nil, fmt.Errorf("create sampler %q: %w", desc.Label, err)
	}

	samplerCache.Add(key, sampler)

	return sampler, nil
}

// DefaultSampler returns the cached sampler for DefaultSamplerDescriptor.
func DefaultSampler(ctx *Context) (*wgpu.Sampler, error) {
	return CachedSampler(ctx, DefaultSamplerDescriptor)
}
