package helpers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cogentcore/webgpu/wgpu"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Texture wraps a wgpu.Texture and its default wgpu.TextureView.
type Texture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView

	size Size
}

// NewTextureFromDesc creates a texture directly from a texture descriptor
// together with a default view.
func NewTextureFromDesc(ctx *Context, desc *wgpu.TextureDescriptor) (*Texture, error) {
	texture, err := ctx.gpu.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", desc.Label, err)
	}

	textureGuard := NewReleaseGuard(texture)
	defer textureGuard.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create view of %q: %w", desc.Label, err)
	}

	textureGuard.Keep()

	return &Texture{
		texture: texture,
		view:    view,
		size:    Size{Width: desc.Size.Width, Height: desc.Size.Height},
	}, nil
}

func (t *Texture) View() *wgpu.TextureView {
	return t.view
}

func (t *Texture) Width() uint32 {
	return t.size.Width
}

func (t *Texture) Height() uint32 {
	return t.size.Height
}

// Release releases the view and the texture. The texture must not be used afterwards.
func (t *Texture) Release() {
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}

	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}

func (t *Texture) writePixels(ctx *Context, pixels []byte) error {
	dest := &wgpu.ImageCopyTexture{
		Texture:  t.texture,
		MipLevel: 0,
		Origin:   wgpu.Origin3D{},
		Aspect:   wgpu.TextureAspectAll,
	}

	layout := &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  4 * t.size.Width,
		RowsPerImage: t.size.Height,
	}

	size := &wgpu.Extent3D{
		Width:              t.size.Width,
		Height:             t.size.Height,
		DepthOrArrayLayers: 1,
	}

	if err := ctx.Queue.WriteTexture(dest, pixels, layout, size); err != nil {
		return fmt.Errorf("copy image data to texture: %w", err)
	}

	return nil
}

// imageTextureDescriptor describes a sampled RGBA texture the size of an image.
func imageTextureDescriptor(label string, width, height uint32) *wgpu.TextureDescriptor {
	return &wgpu.TextureDescriptor{
		Label:         label,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		MipLevelCount: 1,
		SampleCount:   1,
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
	}
}

// toRGBA converts src into a tightly packed RGBA image with its origin at zero.
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	return rgba
}

// NewTextureFromImage uploads src into a new sampled texture.
func NewTextureFromImage(ctx *Context, src image.Image) (*Texture, error) {
	rgba := toRGBA(src)

	width, height := uint32(rgba.Rect.Dx()), uint32(rgba.Rect.Dy())

	t, err := NewTextureFromDesc(ctx, imageTextureDescriptor("Image", width, height))
	if err != nil {
		return nil, err
	}

	if err := t.writePixels(ctx, rgba.Pix); err != nil {
		t.Release()
		return nil, fmt.Errorf("upload texture: %w", err)
	}

	return t, nil
}

func decodeImage(buf []byte) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode image from memory: %w", err)
	}

	return src, nil
}

// DecodeTexture decodes an encoded png, jpeg, gif, bmp or webp image and uploads it.
func DecodeTexture(ctx *Context, buf []byte) (*Texture, error) {
	src, err := decodeImage(buf)
	if err != nil {
		return nil, err
	}

	return NewTextureFromImage(ctx, src)
}

// DecodeImageSize returns the dimensions of an encoded image without decoding its pixels.
func DecodeImageSize(buf []byte) (Size, error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return Size{}, fmt.Errorf("decode image header: %w", err)
	}

	return Size{Width: uint32(config.Width), Height: uint32(config.Height)}, nil
}
