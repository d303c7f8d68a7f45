//go:build !js

package glimpse

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/ebitengine/oto/v3"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWPlatform implements the Platform using glfw for windows, input and timing,
// and oto for audio.
type GLFWPlatform struct {
	meta  Metadata
	flags InitFlags

	// true while glfw is initialized
	glfwReady bool

	audio   *oto.Context
	events  eventQueue
	windows map[*glfwWindow]struct{}

	// fallback time source if glfw is not running
	epoch     time.Time
	frequency uint64

	lastErr string
}

func NewPlatform() *GLFWPlatform {
	return &GLFWPlatform{
		windows: map[*glfwWindow]struct{}{},
		epoch:   time.Now(),
	}
}

func (p *GLFWPlatform) SetAppMetadata(meta Metadata) {
	p.meta = meta

	slog.Info("Application metadata",
		slog.String("name", meta.Name),
		slog.String("version", meta.Version),
		slog.String("identifier", meta.Identifier),
	)
}

func (p *GLFWPlatform) Init(flags InitFlags) error {
	// joysticks are part of glfw, so the gamepad subsystem needs it too
	if !p.glfwReady && (flags.Has(InitVideo) || flags.Has(InitGamepad)) {
		if err := glfw.Init(); err != nil {
			return p.fail(fmt.Errorf("%w: glfw: %w", ErrInitFailed, err))
		}

		p.glfwReady = true
		p.frequency = glfw.GetTimerFrequency()
	}

	if flags.Has(InitAudio) && p.audio == nil {
		p.audio = openAudio()
	}

	if flags.Has(InitGamepad) && !p.flags.Has(InitGamepad) {
		glfw.SetJoystickCallback(p.onJoystick)
		p.enqueueConnectedGamepads()
	}

	p.flags |= flags

	slog.Info("Platform initialized",
		slog.String("subsystems", p.flags.String()),
		slog.Bool("audio", p.audio != nil),
	)

	return nil
}

func (p *GLFWPlatform) CreateWindow(title string, width, height int, attrs WindowAttributes) (Window, error) {
	if !p.glfwReady || !p.flags.Has(InitVideo) {
		return nil, p.fail(fmt.Errorf("%w: %w", ErrWindowCreation, ErrNotInitialized))
	}

	glfw.DefaultWindowHints()
	applyWindowHints(attrs)

	if p.meta.Identifier != "" {
		glfw.WindowHintString(glfw.X11ClassName, p.meta.Identifier)
		glfw.WindowHintString(glfw.X11InstanceName, p.meta.Identifier)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, p.fail(fmt.Errorf("%w: %w", ErrWindowCreation, err))
	}

	if attrs.ClientAPI == OpenGLAPI {
		win.MakeContextCurrent()
	}

	w := &glfwWindow{
		win:   win,
		title: title,
		attrs: attrs,
	}

	p.configureCallbacks(w)
	p.windows[w] = struct{}{}

	slog.Info("Window created",
		slog.String("title", title),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("api", attrs.ClientAPI.String()),
	)

	return w, nil
}

func (p *GLFWPlatform) DestroyWindow(win Window) {
	w, ok := win.(*glfwWindow)
	if !ok {
		return
	}

	if _, ok := p.windows[w]; !ok {
		return
	}

	delete(p.windows, w)

	w.presenter = nil
	w.win.Destroy()

	slog.Debug("Window destroyed", slog.String("title", w.title))
}

func (p *GLFWPlatform) PumpEvents() {
	if p.glfwReady {
		glfw.PollEvents()
	}
}

func (p *GLFWPlatform) PollEvent() (Event, bool) {
	return p.events.pop()
}

func (p *GLFWPlatform) PerformanceCounter() uint64 {
	if p.glfwReady {
		return glfw.GetTimerValue()
	}

	return uint64(time.Since(p.epoch).Nanoseconds())
}

func (p *GLFWPlatform) PerformanceFrequency() uint64 {
	if p.glfwReady && p.frequency != 0 {
		return p.frequency
	}

	return uint64(time.Second)
}

func (p *GLFWPlatform) SwapWindow(win Window) error {
	w, ok := win.(*glfwWindow)
	if !ok {
		return p.fail(errors.New("swap window: not a glfw window"))
	}

	if w.presenter != nil {
		if err := w.presenter.Present(); err != nil {
			return p.fail(fmt.Errorf("present: %w", err))
		}

		return nil
	}

	if err := w.SwapBuffers(); err != nil {
		return p.fail(err)
	}

	return nil
}

func (p *GLFWPlatform) LastError() string {
	return p.lastErr
}

func (p *GLFWPlatform) Quit() {
	for w := range p.windows {
		slog.Warn("Window still open during shutdown", slog.String("title", w.title))
		p.DestroyWindow(w)
	}

	if p.flags.Has(InitGamepad) {
		glfw.SetJoystickCallback(nil)
	}

	if p.glfwReady {
		glfw.Terminate()
		p.glfwReady = false
	}

	closeAudio(p.audio)
	p.audio = nil

	p.events.reset()
	p.flags = 0
}

func (p *GLFWPlatform) fail(err error) error {
	p.lastErr = err.Error()
	return err
}

func (p *GLFWPlatform) configureCallbacks(w *glfwWindow) {
	w.win.SetCloseCallback(func(_win *glfw.Window) {
		p.events.push(Event{Type: EventQuit})
	})

	w.win.SetSizeCallback(func(_win *glfw.Window, width, height int) {
		p.events.push(Event{Type: EventWindowResized, Width: width, Height: height})
	})

	w.win.SetKeyCallback(func(_win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			p.events.push(Event{Type: EventKeyDown, Key: int(key), Scancode: scancode})
		case glfw.Release:
			p.events.push(Event{Type: EventKeyUp, Key: int(key), Scancode: scancode})
		}
	})

	w.win.SetMouseButtonCallback(func(win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := win.GetCursorPos()

		ev := Event{Button: MouseButton(btn), X: float32(x), Y: float32(y)}

		switch action {
		case glfw.Press:
			ev.Type = EventMouseButtonDown
		case glfw.Release:
			ev.Type = EventMouseButtonUp
		default:
			return
		}

		p.events.push(ev)
	})

	w.win.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		p.events.push(Event{Type: EventMouseMotion, X: float32(xpos), Y: float32(ypos)})
	})
}

func (p *GLFWPlatform) onJoystick(joy glfw.Joystick, event glfw.PeripheralEvent) {
	switch event {
	case glfw.Connected:
		if joy.IsGamepad() {
			slog.Info("Gamepad connected", slog.String("name", joy.GetGamepadName()))
			p.events.push(Event{Type: EventGamepadAdded, Gamepad: int(joy)})
		}

	case glfw.Disconnected:
		p.events.push(Event{Type: EventGamepadRemoved, Gamepad: int(joy)})
	}
}

func (p *GLFWPlatform) enqueueConnectedGamepads() {
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() && joy.IsGamepad() {
			p.events.push(Event{Type: EventGamepadAdded, Gamepad: int(joy)})
		}
	}
}

func applyWindowHints(attrs WindowAttributes) {
	switch attrs.ClientAPI {
	case NoAPI:
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	case OpenGLAPI:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, attrs.ContextVersionMajor)
		glfw.WindowHint(glfw.ContextVersionMinor, attrs.ContextVersionMinor)

		if attrs.CoreProfile {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
	}

	glfw.WindowHint(glfw.Resizable, glfwBool(attrs.Resizable))
}

func glfwBool(value bool) int {
	if value {
		return glfw.True
	}

	return glfw.False
}

type glfwWindow struct {
	win       *glfw.Window
	title     string
	attrs     WindowAttributes
	presenter Presenter
}

func (g *glfwWindow) SwapBuffers() error {
	if g.attrs.ClientAPI != OpenGLAPI {
		return fmt.Errorf("%w: window %q has no opengl context", ErrNothingToPresent, g.title)
	}

	g.win.SwapBuffers()
	return nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) Attributes() WindowAttributes {
	return g.attrs
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) SetPresenter(presenter Presenter) {
	g.presenter = presenter
}
