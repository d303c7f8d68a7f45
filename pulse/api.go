package pulse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/clearscreen/glimpse"
)

// GraphicsAPI is the rendering api a Device is built on.
type GraphicsAPI int

const (
	WebGPU GraphicsAPI = iota
	OpenGL
)

func (a GraphicsAPI) String() string {
	switch a {
	case WebGPU:
		return "webgpu"
	case OpenGL:
		return "opengl"
	default:
		return fmt.Sprintf("GraphicsAPI(%d)", int(a))
	}
}

func ParseGraphicsAPI(value string) (GraphicsAPI, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "webgpu", "wgpu":
		return WebGPU, nil
	case "opengl", "gl":
		return OpenGL, nil
	default:
		return 0, fmt.Errorf("unknown graphics api %q", value)
	}
}

// VerticalSync configures if and how presenting a frame waits for the display.
type VerticalSync int

const (
	VerticalSyncDisabled VerticalSync = iota
	VerticalSyncEnabled

	// AdaptiveEnabled waits for the display unless a frame is late,
	// in which case it is presented immediately.
	VerticalSyncAdaptiveEnabled
)

func (v VerticalSync) String() string {
	switch v {
	case VerticalSyncDisabled:
		return "off"
	case VerticalSyncEnabled:
		return "on"
	case VerticalSyncAdaptiveEnabled:
		return "adaptive"
	default:
		return fmt.Sprintf("VerticalSync(%d)", int(v))
	}
}

func ParseVerticalSync(value string) (VerticalSync, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "off", "disabled", "false":
		return VerticalSyncDisabled, nil
	case "on", "enabled", "true":
		return VerticalSyncEnabled, nil
	case "adaptive":
		return VerticalSyncAdaptiveEnabled, nil
	default:
		return 0, fmt.Errorf("unknown vertical sync mode %q", value)
	}
}

// PrepareWindowAttributes returns the window attributes a window must be created
// with, so that a Device for the given api can be bound to it.
func PrepareWindowAttributes(api GraphicsAPI) glimpse.WindowAttributes {
	switch api {
	case OpenGL:
		return glimpse.WindowAttributes{
			ClientAPI:           glimpse.OpenGLAPI,
			ContextVersionMajor: 3,
			ContextVersionMinor: 3,
			CoreProfile:         true,
			Resizable:           true,
		}

	default:
		// webgpu creates the surface itself, we must not have
		// a client api context on the window.
		return glimpse.WindowAttributes{
			ClientAPI: glimpse.NoAPI,
			Resizable: true,
		}
	}
}

// presentModeFor picks the present mode for the requested vertical sync.
// Fifo must be supported by every surface and is used as fallback.
func presentModeFor(vsync VerticalSync, supported []wgpu.PresentMode) wgpu.PresentMode {
	var wanted wgpu.PresentMode

	switch vsync {
	case VerticalSyncDisabled:
		wanted = wgpu.PresentModeImmediate
	case VerticalSyncAdaptiveEnabled:
		wanted = wgpu.PresentModeFifoRelaxed
	default:
		wanted = wgpu.PresentModeFifo
	}

	if slices.Contains(supported, wanted) {
		return wanted
	}

	return wgpu.PresentModeFifo
}
