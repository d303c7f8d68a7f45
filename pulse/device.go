package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/clearscreen/glimpse"
)

var ErrUnsupportedAPI = errors.New("graphics api not supported")
var ErrIncompatibleWindow = errors.New("window was not prepared for this graphics api")
var ErrFrameInProgress = errors.New("frame already in progress")
var ErrNoFrame = errors.New("no frame in progress")
var ErrNothingToPresent = errors.New("no finished frame to present")
var ErrReleased = errors.New("device already released")

// ErrSurfaceHidden is returned by BeginFrame while the window has no visible
// area, e.g. when it is minimized. The frame should be skipped.
var ErrSurfaceHidden = errors.New("surface has no visible area")

// backend does the actual rendering of a Device. The Device makes sure
// the methods are only called in a valid order.
type backend interface {
	beginFrame(width, height uint32) error
	clear(color Color) error
	endFrame() error
	present() error
	release()
}

// Device is a graphics device bound to a single window. Rendering happens in
// frames, bracketed by BeginFrame and EndFrame. A finished frame is shown
// by presenting the window, see glimpse.Platform.SwapWindow.
type Device struct {
	api     GraphicsAPI
	window  glimpse.Window
	backend backend

	inFrame bool

	// true if a finished frame waits to be presented
	pending bool
}

func NewDevice(api GraphicsAPI, window glimpse.Window, vsync VerticalSync) (*Device, error) {
	if api != WebGPU && api != OpenGL {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAPI, api)
	}

	wanted := PrepareWindowAttributes(api).ClientAPI
	if actual := window.Attributes().ClientAPI; actual != wanted {
		return nil, fmt.Errorf("%w: %s needs %s, window has %s", ErrIncompatibleWindow, api, wanted, actual)
	}

	var b backend
	var err error

	switch api {
	case WebGPU:
		b, err = newWGPUBackend(window, vsync)
	case OpenGL:
		b, err = newGLBackend(window, vsync)
	}

	if err != nil {
		return nil, fmt.Errorf("initialize %s: %w", api, err)
	}

	return newDevice(api, window, b), nil
}

func newDevice(api GraphicsAPI, window glimpse.Window, b backend) *Device {
	d := &Device{api: api, window: window, backend: b}
	window.SetPresenter(d)
	return d
}

func (d *Device) BeginFrame() error {
	if d.backend == nil {
		return ErrReleased
	}

	if d.inFrame {
		return ErrFrameInProgress
	}

	// a frame that was never presented is dropped
	d.pending = false

	width, height := d.window.GetSize()
	if width == 0 || height == 0 {
		return ErrSurfaceHidden
	}

	if err := d.backend.beginFrame(width, height); err != nil {
		return err
	}

	d.inFrame = true

	return nil
}

func (d *Device) ClearScreen(color Color) error {
	if !d.inFrame {
		return ErrNoFrame
	}

	if err := d.backend.clear(color); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	return nil
}

func (d *Device) EndFrame() error {
	if !d.inFrame {
		return ErrNoFrame
	}

	d.inFrame = false

	if err := d.backend.endFrame(); err != nil {
		return err
	}

	d.pending = true

	return nil
}

// Present shows the last finished frame on the window.
func (d *Device) Present() error {
	if d.backend == nil {
		return ErrReleased
	}

	if !d.pending {
		return ErrNothingToPresent
	}

	d.pending = false

	return d.backend.present()
}

// Release frees all resources of the device and detaches it from its window.
// The window itself stays alive and must be destroyed after the device.
func (d *Device) Release() {
	if d.backend == nil {
		return
	}

	d.window.SetPresenter(nil)

	d.backend.release()
	d.backend = nil

	d.inFrame = false
	d.pending = false

	slog.Debug("Graphics device released", slog.String("api", d.api.String()))
}
