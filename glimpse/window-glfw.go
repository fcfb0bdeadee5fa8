package glimpse

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

func init() {
	// glfw must be driven from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	queue eventQueue
}

func NewWindow(opts WindowOptions) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	if opts.Profile {
		w.prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		w.queue.push(Event{Type: EventResize, Width: uint32(width), Height: uint32(height)})
	})

	window.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			slog.Debug("Escape pressed")
			win.SetShouldClose(true)
		}
	})

	return w, nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handle func(ev Event) bool) {
	for {
		glfw.PollEvents()

		if g.win.ShouldClose() {
			g.queue.push(Event{Type: EventClose})
		} else {
			g.queue.push(Event{Type: EventRedraw})
		}

		if !g.queue.dispatch(handle) {
			return
		}
	}
}
