package helpers

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

type stubSurface struct {
	caps       wgpu.SurfaceCapabilities
	acquireErr error

	configs   []wgpu.SurfaceConfiguration
	acquired  int
	presented int
	discarded int
}

func newStubSurface() *stubSurface {
	return &stubSurface{
		caps: wgpu.SurfaceCapabilities{
			Formats:    []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8Unorm},
			AlphaModes: []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
		},
	}
}

func (s *stubSurface) Capabilities() wgpu.SurfaceCapabilities {
	return s.caps
}

func (s *stubSurface) Configure(config *wgpu.SurfaceConfiguration) {
	s.configs = append(s.configs, *config)
}

func (s *stubSurface) Acquire() (*wgpu.TextureView, error) {
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}

	s.acquired++
	return &wgpu.TextureView{}, nil
}

func (s *stubSurface) Present() {
	s.presented++
}

func (s *stubSurface) Discard() {
	s.discarded++
}

func (s *stubSurface) Release() {}

type stubDevice struct {
	pipelines []*wgpu.RenderPipelineDescriptor
	samplers  int
}

func (d *stubDevice) CreateRenderPipeline(desc *wgpu.RenderPipelineDescriptor) (*wgpu.RenderPipeline, error) {
	d.pipelines = append(d.pipelines, desc)
	return &wgpu.RenderPipeline{}, nil
}

func (d *stubDevice) CreateTexture(desc *wgpu.TextureDescriptor) (*wgpu.Texture, error) {
	return nil, errors.New("textures are not supported by the stub device")
}

func (d *stubDevice) CreateSampler(desc *wgpu.SamplerDescriptor) (*wgpu.Sampler, error) {
	d.samplers++
	return &wgpu.Sampler{}, nil
}

type stubPass struct {
	draws int
}

func (p *stubPass) SetPipeline(pipeline *wgpu.RenderPipeline) {}

func (p *stubPass) SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32) {}

func (p *stubPass) SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset uint64, size uint64) {}

func (p *stubPass) SetIndexBuffer(buffer *wgpu.Buffer, format wgpu.IndexFormat, offset uint64, size uint64) {
}

func (p *stubPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.draws++
}

func (p *stubPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.draws++
}

type stubCommands struct {
	err error

	submitted []*wgpu.RenderPassDescriptor
	pass      stubPass
}

func (c *stubCommands) Submit(desc *wgpu.RenderPassDescriptor, record func(pass RenderPass)) error {
	if c.err != nil {
		return c.err
	}

	c.submitted = append(c.submitted, desc)
	record(&c.pass)
	return nil
}

type stubBackend struct {
	surface  *stubSurface
	device   *stubDevice
	commands *stubCommands
}

func newStubContext(size Size, sampleCount uint32) (*Context, stubBackend, error) {
	b := stubBackend{
		surface:  newStubSurface(),
		device:   &stubDevice{},
		commands: &stubCommands{},
	}

	ctx, err := NewWithBackend(Backend{Surface: b.surface, Device: b.device, Commands: b.commands}, size, sampleCount)
	return ctx, b, err
}
