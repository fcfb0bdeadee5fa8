package helpers

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Device is the part of wgpu.Device the helpers create resources with.
type Device interface {
	CreateRenderPipeline(desc *wgpu.RenderPipelineDescriptor) (*wgpu.RenderPipeline, error)
	CreateTexture(desc *wgpu.TextureDescriptor) (*wgpu.Texture, error)
	CreateSampler(desc *wgpu.SamplerDescriptor) (*wgpu.Sampler, error)
}

// RenderPass is the recording interface of a render pass as seen by draw code.
type RenderPass interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32)
	SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset uint64, size uint64)
	SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset uint64, size uint64)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

// Commands records a single render pass into a command buffer and submits it to the queue.
type Commands interface {
	Submit(desc *wgpu.RenderPassDescriptor, record func(pass RenderPass)) error
}

var _ Device = (*wgpu.Device)(nil)
var _ RenderPass = (*wgpu.RenderPassEncoder)(nil)

type queueCommands struct {
	device *wgpu.Device
	queue  *wgpu.Queue
}

func (c *queueCommands) Submit(desc *wgpu.RenderPassDescriptor, record func(pass RenderPass)) error {
	enc, err := c.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: desc.Label})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(desc)

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	record(pass)

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass %q: %w", desc.Label, err)
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: desc.Label})
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer buf.Release()

	c.queue.Submit(buf)

	return nil
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate at most once. Call Keep to hand
// ownership to somebody else.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
