package glimpse

import "github.com/cogentcore/webgpu/wgpu"

// ClientAPI selects which rendering context, if any, a window is created with.
type ClientAPI int

const (
	// NoAPI creates a window without a client context. This is what
	// webgpu needs, as it creates its own surface from the native window.
	NoAPI ClientAPI = iota
	OpenGLAPI
)

func (c ClientAPI) String() string {
	switch c {
	case NoAPI:
		return "none"
	case OpenGLAPI:
		return "opengl"
	default:
		return "unknown"
	}
}

// WindowAttributes are the creation hints of a window. A graphics device
// usually provides them for the rendering api it wants to use.
type WindowAttributes struct {
	ClientAPI ClientAPI

	// only used for OpenGLAPI windows
	ContextVersionMajor int
	ContextVersionMinor int
	CoreProfile         bool

	Resizable bool
}

// Presenter is something that can bring the last rendered frame
// of a window to the screen, usually a graphics device bound to the window.
type Presenter interface {
	Present() error
}

type Window interface {
	GetSize() (uint32, uint32)
	Attributes() WindowAttributes
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// SwapBuffers shows the back buffer of an OpenGLAPI window.
	SwapBuffers() error

	// SetPresenter attaches the presenter used by Platform.SwapWindow.
	// Pass nil to detach it again.
	SetPresenter(p Presenter)
}
