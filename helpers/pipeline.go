package helpers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// DepthFormat is the format of every depth attachment created by the helpers.
const DepthFormat = wgpu.TextureFormatDepth24Plus

var (
	ErrMissingLayout = errors.New("pipeline layout is required")
	ErrMissingShader = errors.New("vertex and fragment shader are required")
)

// PipelineSpec describes a render pipeline. Shader modules and the layout are
// borrowed: building a pipeline does not retain or release them.
// Use DefaultPipelineSpec to get a spec with the documented defaults.
type PipelineSpec struct {
	Label string

	// Shader is used for both stages unless VertexShader or FragmentShader are set.
	Shader         *wgpu.ShaderModule
	VertexShader   *wgpu.ShaderModule
	FragmentShader *wgpu.ShaderModule

	VertexBuffers []wgpu.VertexBufferLayout
	Layout        *wgpu.PipelineLayout

	Topology wgpu.PrimitiveTopology

	// Only used with strip topologies. Undefined means no strip index format.
	StripIndexFormat wgpu.IndexFormat
	CullMode         wgpu.CullMode

	// Adds a Depth24Plus depth attachment state to the pipeline
	DepthStencil bool

	VertexEntry   string
	FragmentEntry string
}

func DefaultPipelineSpec() PipelineSpec {
	return PipelineSpec{
		Label:         "Render Pipeline",
		Topology:      wgpu.PrimitiveTopologyTriangleList,
		CullMode:      wgpu.CullModeNone,
		DepthStencil:  true,
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
	}
}

// Stages returns the shader modules used for the vertex and fragment stage.
func (spec PipelineSpec) Stages() (vs, fs *wgpu.ShaderModule) {
	vs, fs = spec.Shader, spec.Shader

	if spec.VertexShader != nil {
		vs = spec.VertexShader
	}

	if spec.FragmentShader != nil {
		fs = spec.FragmentShader
	}

	return vs, fs
}

// Descriptor builds the pipeline descriptor for the given context. The color
// target uses the current surface format and the context's sample count, so the
// pipeline must be rebuilt if the surface format changes.
func (spec PipelineSpec) Descriptor(ctx *Context) (*wgpu.RenderPipelineDescriptor, error) {
	if spec.Layout == nil {
		return nil, ErrMissingLayout
	}

	vs, fs := spec.Stages()
	if vs == nil || fs == nil {
		return nil, ErrMissingShader
	}

	if spec.VertexEntry == "" {
		spec.VertexEntry = "vs_main"
	}

	if spec.FragmentEntry == "" {
		spec.FragmentEntry = "fs_main"
	}

	var depthStencil *wgpu.DepthStencilState
	if spec.DepthStencil {
		depthStencil = &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLessEqual,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		}
	}

	return &wgpu.RenderPipelineDescriptor{
		Label:  spec.Label,
		Layout: spec.Layout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: spec.VertexEntry,
			Buffers:    spec.VertexBuffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: spec.FragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    ctx.Config.Format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:         spec.Topology,
			StripIndexFormat: spec.StripIndexFormat,
			FrontFace:        wgpu.FrontFaceCCW,
			CullMode:         spec.CullMode,
		},
		DepthStencil: depthStencil,
		Multisample: wgpu.MultisampleState{
			Count: ctx.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	}, nil
}

// Pipeline is a compiled render pipeline together with the target
// configuration it was compiled for.
type Pipeline struct {
	*wgpu.RenderPipeline

	TargetFormat wgpu.TextureFormat
	SampleCount  uint32
	DepthStencil bool
}

// BuildPipeline compiles spec against the context's device.
func BuildPipeline(ctx *Context, spec PipelineSpec) (*Pipeline, error) {
	desc, err := spec.Descriptor(ctx)
	if err != nil {
		return nil, fmt.Errorf("describe pipeline %q: %w", spec.Label, err)
	}

	slog.Info(
		"Create RenderPipeline",
		slog.String("label", spec.Label),
		slog.Any("format", ctx.Config.Format),
		slog.Any("topology", spec.Topology),
		slog.Int("sampleCount", int(ctx.SampleCount)),
		slog.Bool("depthStencil", spec.DepthStencil),
	)

	pipeline, err := ctx.gpu.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build pipeline %q: %w", spec.Label, err)
	}

	return &Pipeline{
		RenderPipeline: pipeline,
		TargetFormat:   ctx.Config.Format,
		SampleCount:    ctx.SampleCount,
		DepthStencil:   spec.DepthStencil,
	}, nil
}

// Compatible reports whether the pipeline can still render to the context's
// surface. Reconfiguring the surface with a different format invalidates a pipeline.
func (p *Pipeline) Compatible(ctx *Context) bool {
	return p.TargetFormat == ctx.Config.Format && p.SampleCount == ctx.SampleCount
}

func (p *Pipeline) Release() {
	if p.RenderPipeline != nil {
		p.RenderPipeline.Release()
		p.RenderPipeline = nil
	}
}
