package helpers

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// FramePass describes the attachments of the single render pass of a frame.
type FramePass struct {
	Label string

	// Multisampled render target that resolves into the surface texture.
	// Required if the context uses more than one sample per pixel.
	MSAA *Texture

	// Depth texture to attach. No depth attachment is used if nil.
	Depth *Texture
}

func frameDescriptor(view *wgpu.TextureView, fp FramePass) *wgpu.RenderPassDescriptor {
	label := fp.Label
	if label == "" {
		label = "Frame"
	}

	color := ColorAttachment(view)
	if fp.MSAA != nil {
		color = MSAAColorAttachment(view, fp.MSAA.View())
	}

	desc := &wgpu.RenderPassDescriptor{
		Label:            label,
		ColorAttachments: []wgpu.RenderPassColorAttachment{color},
	}

	if fp.Depth != nil {
		desc.DepthStencilAttachment = DepthStencilAttachment(fp.Depth.View())
	}

	return desc
}

// RenderFrame acquires the next surface texture, records one render pass using
// draw and presents the result. Surface failures are returned as *SurfaceError
// without submitting anything, use ActionFor to decide how to continue.
func (c *Context) RenderFrame(fp FramePass, draw func(pass RenderPass)) error {
	view, err := c.Surface.Acquire()
	if err != nil {
		return err
	}

	desc := frameDescriptor(view, fp)

	if err := c.commands.Submit(desc, draw); err != nil {
		c.Surface.Discard()
		return fmt.Errorf("render frame: %w", err)
	}

	c.Surface.Present()

	return nil
}
