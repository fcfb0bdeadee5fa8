package helpers

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ColorAttachment renders into view, clearing it to black first.
func ColorAttachment(view *wgpu.TextureView) wgpu.RenderPassColorAttachment {
	return wgpu.RenderPassColorAttachment{
		View:       view,
		LoadOp:     wgpu.LoadOpClear,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: ColorBlack.ToWGPU(),
	}
}

// MSAAColorAttachment renders into the multisampled msaaView and resolves
// the result into view.
func MSAAColorAttachment(view, msaaView *wgpu.TextureView) wgpu.RenderPassColorAttachment {
	return wgpu.RenderPassColorAttachment{
		View:          msaaView,
		ResolveTarget: view,
		LoadOp:        wgpu.LoadOpClear,
		StoreOp:       wgpu.StoreOpStore,
		ClearValue:    ColorBlack.ToWGPU(),
	}
}

// DepthStencilAttachment clears the depth buffer to 1.0. The stencil aspect is not used.
func DepthStencilAttachment(view *wgpu.TextureView) *wgpu.RenderPassDepthStencilAttachment {
	return &wgpu.RenderPassDepthStencilAttachment{
		View:            view,
		DepthLoadOp:     wgpu.LoadOpClear,
		DepthStoreOp:    wgpu.StoreOpStore,
		DepthClearValue: 1.0,
	}
}

func msaaTextureDescriptor(ctx *Context) *wgpu.TextureDescriptor {
	return &wgpu.TextureDescriptor{
		Label: "MultisampleRenderTarget",
		Usage: wgpu.TextureUsageRenderAttachment,
		Size: wgpu.Extent3D{
			Width:              ctx.Config.Width,
			Height:             ctx.Config.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        ctx.Config.Format,
		Dimension:     wgpu.TextureDimension2D,
		SampleCount:   ctx.SampleCount,
		MipLevelCount: 1,
	}
}

func depthTextureDescriptor(ctx *Context) *wgpu.TextureDescriptor {
	return &wgpu.TextureDescriptor{
		Label: "DepthTexture",
		Usage: wgpu.TextureUsageRenderAttachment,
		Size: wgpu.Extent3D{
			Width:              ctx.Config.Width,
			Height:             ctx.Config.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        DepthFormat,
		Dimension:     wgpu.TextureDimension2D,
		SampleCount:   ctx.SampleCount,
		MipLevelCount: 1,
	}
}

// MSAATextureView allocates a multisampled render target matching the current
// surface configuration. It must be recreated after every resize.
func MSAATextureView(ctx *Context) (*Texture, error) {
	return NewTextureFromDesc(ctx, msaaTextureDescriptor(ctx))
}

// DepthTextureView allocates a depth texture matching the current surface
// configuration. It must be recreated after every resize.
func DepthTextureView(ctx *Context) (*Texture, error) {
	return NewTextureFromDesc(ctx, depthTextureDescriptor(ctx))
}
