package helpers

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/wgpugp/glm"
)

var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)

// Color is a straight rgba color value in linear rgb color space.
type Color glm.Vec4f

func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// ToWGPU converts the color into a clear value.
func (c Color) ToWGPU() wgpu.Color {
	return wgpu.Color{
		R: float64(c[0]),
		G: float64(c[1]),
		B: float64(c[2]),
		A: float64(c[3]),
	}
}
