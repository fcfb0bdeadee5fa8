package helpers

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// CreateShaderModule compiles WGSL source.
func CreateShaderModule(ctx *Context, label, code string) (*wgpu.ShaderModule, error) {
	module, err := ctx.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module %q: %w", label, err)
	}

	return module, nil
}

// CreatePipelineLayout creates a pipeline layout from the given bind group layouts,
// which may be empty.
func CreatePipelineLayout(ctx *Context, label string, bindGroupLayouts ...*wgpu.BindGroupLayout) (*wgpu.PipelineLayout, error) {
	layout, err := ctx.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            label,
		BindGroupLayouts: bindGroupLayouts,
	})
	if err != nil {
		return nil, fmt.Errorf("create pipeline layout %q: %w", label, err)
	}

	return layout, nil
}

// CreateBufferInit allocates a buffer initialized with the given values.
func CreateBufferInit[T any](ctx *Context, label string, usage wgpu.BufferUsage, values []T) (*wgpu.Buffer, error) {
	buf, err := ctx.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: wgpu.ToBytes(values),
		Usage:    usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create and init buffer %q: %w", label, err)
	}

	return buf, nil
}
