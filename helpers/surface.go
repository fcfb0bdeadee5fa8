package helpers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

//go:generate go tool stringer -type=SurfaceStatus -trimprefix=Surface
//go:generate go tool stringer -type=FrameAction -trimprefix=Frame

// Surface is the presentable target bound to a window.
type Surface interface {
	Capabilities() wgpu.SurfaceCapabilities
	Configure(config *wgpu.SurfaceConfiguration)

	// Acquire returns a view of the next texture to render into. Failures
	// are reported as *SurfaceError.
	Acquire() (*wgpu.TextureView, error)

	// Present shows the acquired texture on screen.
	Present()

	// Discard drops the acquired texture without presenting it.
	Discard()

	Release()
}

// SurfaceStatus is the reason a surface texture could not be acquired.
type SurfaceStatus int

const (
	SurfaceLost SurfaceStatus = iota + 1
	SurfaceOutdated
	SurfaceOutOfMemory
	SurfaceTimeout
	SurfaceOther
)

type SurfaceError struct {
	Status SurfaceStatus
	Err    error
}

func (e *SurfaceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("acquire surface texture: %s", e.Status)
	}

	return fmt.Sprintf("acquire surface texture: %s: %s", e.Status, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// surfaceStatusOf classifies an error returned by wgpu.Surface.GetCurrentTexture.
// The binding turns validation errors into plain errors, so only their text is left.
func surfaceStatusOf(err error) SurfaceStatus {
	text := strings.ToLower(err.Error())
	text = strings.NewReplacer(" ", "", "_", "").Replace(text)

	switch {
	case strings.Contains(text, "outofmemory"):
		return SurfaceOutOfMemory
	case strings.Contains(text, "outdated"):
		return SurfaceOutdated
	case strings.Contains(text, "devicelost"):
		return SurfaceOther
	case strings.Contains(text, "lost"):
		return SurfaceLost
	case strings.Contains(text, "timeout"):
		return SurfaceTimeout
	default:
		return SurfaceOther
	}
}

// FrameAction is what the control loop does after trying to render a frame.
type FrameAction int

const (
	// the frame was presented
	FrameRender FrameAction = iota

	// reconfigure the surface with the last known size and continue
	FrameReconfigure

	// stop the control loop
	FrameExit

	// drop this frame and continue
	FrameSkip
)

// ActionFor maps the result of Context.RenderFrame to the action the control loop takes.
func ActionFor(err error) FrameAction {
	if err == nil {
		return FrameRender
	}

	var surfaceErr *SurfaceError
	if !errors.As(err, &surfaceErr) {
		return FrameExit
	}

	switch surfaceErr.Status {
	case SurfaceLost, SurfaceOutdated:
		return FrameReconfigure
	case SurfaceTimeout:
		return FrameSkip
	default:
		return FrameExit
	}
}

// windowSurface implements Surface on top of a wgpu.Surface
type windowSurface struct {
	surface *wgpu.Surface
	adapter *wgpu.Adapter
	device  *wgpu.Device

	texture *wgpu.Texture
	view    *wgpu.TextureView
}

func (s *windowSurface) Capabilities() wgpu.SurfaceCapabilities {
	return s.surface.GetCapabilities(s.adapter)
}

func (s *windowSurface) Configure(config *wgpu.SurfaceConfiguration) {
	s.surface.Configure(s.adapter, s.device, config)
}

func (s *windowSurface) Acquire() (*wgpu.TextureView, error) {
	texture, err := acquired(s.surface.GetCurrentTexture())
	if err != nil {
		return nil, err
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create surface view: %w", err)
	}

	s.texture = texture
	s.view = view

	return view, nil
}

// acquired checks the result of wgpu.Surface.GetCurrentTexture. The binding does not
// report the status of the surface texture. Lost, outdated and timed out surfaces
// show up as a texture without a native handle and no error.
func acquired(texture *wgpu.Texture, err error) (*wgpu.Texture, error) {
	if err != nil {
		return nil, &SurfaceError{Status: surfaceStatusOf(err), Err: err}
	}

	if isNullHandle(texture) {
		return nil, &SurfaceError{Status: SurfaceOutdated}
	}

	return texture, nil
}

// isNullHandle reports whether obj is nil or a binding object without a native handle.
func isNullHandle(obj any) bool {
	value := reflect.ValueOf(obj)
	if !value.IsValid() {
		return true
	}

	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return true
		}

		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return false
	}

	ref := value.FieldByName("ref")
	switch ref.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return ref.IsNil()
	case reflect.Uintptr:
		return ref.Uint() == 0
	default:
		return false
	}
}

func (s *windowSurface) Present() {
	s.surface.Present()

	// the texture itself belongs to the surface after a successful present
	s.texture = nil
	s.Discard()
}

func (s *windowSurface) Discard() {
	if s.view != nil {
		s.view.Release()
		s.view = nil
	}

	if s.texture != nil {
		s.texture.Release()
		s.texture = nil
	}
}

func (s *windowSurface) Release() {
	s.Discard()

	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
}
