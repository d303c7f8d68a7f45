package pulse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/clearscreen/glimpse"
)

// glBackend renders into the default framebuffer of the OpenGL context
// that is current on the window.
type glBackend struct {
	window glimpse.Window

	width, height uint32
}

func newGLBackend(window glimpse.Window, vsync VerticalSync) (*glBackend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("load opengl functions: %w", err)
	}

	interval := swapIntervalFor(vsync, adaptiveSwapSupported())
	glfw.SwapInterval(interval)

	slog.Info("OpenGL context ready",
		slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		slog.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		slog.String("vsync", vsync.String()),
		slog.Int("swapInterval", interval),
	)

	return &glBackend{window: window}, nil
}

func adaptiveSwapSupported() bool {
	return glfw.ExtensionSupported("WGL_EXT_swap_control_tear") ||
		glfw.ExtensionSupported("GLX_EXT_swap_control_tear")
}

// swapIntervalFor maps vertical sync to a swap interval. A negative interval
// enables adaptive vsync, which needs the swap_control_tear extension.
func swapIntervalFor(vsync VerticalSync, adaptiveSupported bool) int {
	switch vsync {
	case VerticalSyncDisabled:
		return 0
	case VerticalSyncAdaptiveEnabled:
		if adaptiveSupported {
			return -1
		}

		return 1
	default:
		return 1
	}
}

func (b *glBackend) beginFrame(width, height uint32) error {
	if width != b.width || height != b.height {
		b.width, b.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
	}

	return nil
}

func (b *glBackend) clear(color Color) error {
	gl.ClearColor(color.R, color.G, color.B, color.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl error 0x%04x", code)
	}

	return nil
}

func (b *glBackend) endFrame() error {
	return nil
}

func (b *glBackend) present() error {
	return b.window.SwapBuffers()
}

func (b *glBackend) release() {
	// the context belongs to the window and is destroyed with it
}
