package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/clearscreen/glimpse"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

var wgpuLogLevels = map[string]wgpu.LogLevel{
	"OFF":   wgpu.LogLevelOff,
	"ERROR": wgpu.LogLevelError,
	"WARN":  wgpu.LogLevelWarn,
	"INFO":  wgpu.LogLevelInfo,
	"DEBUG": wgpu.LogLevelDebug,
	"TRACE": wgpu.LogLevelTrace,
}

func init() {
	// window system and graphics calls must stay on the main thread
	runtime.LockOSThread()

	if level, ok := parseWGPULogLevel(os.Getenv("WGPU_LOG_LEVEL")); ok {
		wgpu.SetLogLevel(level)
	}
}

func parseWGPULogLevel(value string) (wgpu.LogLevel, bool) {
	level, ok := wgpuLogLevels[strings.ToUpper(strings.TrimSpace(value))]
	return level, ok
}

// wgpuBackend renders into the webgpu surface of a window.
type wgpuBackend struct {
	device  *wgpu.Device
	queue   *wgpu.Queue
	surface *wgpu.Surface
	adapter *wgpu.Adapter

	config wgpu.SurfaceConfiguration

	// true if the surface encodes to srgb on write
	srgb bool

	// surface texture of the current or last finished frame
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

func newWGPUBackend(window glimpse.Window, vsync VerticalSync) (_ *wgpuBackend, err error) {
	b := &wgpuBackend{}

	defer func() {
		if err != nil {
			b.release()
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	b.surface = instance.CreateSurface(window.SurfaceDescriptor())

	b.adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})

	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	b.device, err = b.adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}

	b.queue = b.device.GetQueue()

	caps := b.surface.GetCapabilities(b.adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, errors.New("surface is not compatible with the adapter")
	}

	format, srgb := surfaceFormatFor(caps.Formats)
	presentMode := presentModeFor(vsync, caps.PresentModes)

	slog.Info("Configure surface",
		slog.Any("formats", caps.Formats),
		slog.String("format", format.String()),
		slog.String("vsync", vsync.String()),
		slog.String("presentMode", presentMode.String()),
	)

	b.srgb = srgb

	b.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}

	return b, nil
}

// surfaceFormatFor prefers a plain unorm format, so that color values end up
// in the framebuffer as they are. If the surface only offers srgb formats,
// srgb is true and clear colors must be linearized first.
func surfaceFormatFor(supported []wgpu.TextureFormat) (format wgpu.TextureFormat, srgb bool) {
	for _, preferred := range []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8Unorm} {
		if slices.Contains(supported, preferred) {
			return preferred, false
		}
	}

	format = supported[0]

	switch format {
	case wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb:
		return format, true
	default:
		return format, false
	}
}

func (b *wgpuBackend) beginFrame(width, height uint32) error {
	if width != b.config.Width || height != b.config.Height {
		slog.Debug("Resize surface",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		b.config.Width = width
		b.config.Height = height
		b.surface.Configure(b.adapter, b.device, &b.config)
	}

	b.dropTexture()

	texture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return fmt.Errorf("create texture view: %w", err)
	}

	b.texture = texture
	b.view = view

	return nil
}

func (b *wgpuBackend) clear(color Color) error {
	if b.srgb {
		color = color.Linearized()
	}

	enc, err := b.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "ClearScreen",
	})

	if err != nil {
		return err
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearScreen",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: color.ToWGPU(),
			},
		},
	})

	defer pass.Release()

	if err := pass.End(); err != nil {
		return err
	}

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearScreen"})
	if err != nil {
		return err
	}

	defer buf.Release()

	b.queue.Submit(buf)

	return nil
}

func (b *wgpuBackend) endFrame() error {
	if b.view != nil {
		b.view.Release()
		b.view = nil
	}

	return nil
}

func (b *wgpuBackend) present() error {
	if b.texture == nil {
		return ErrNothingToPresent
	}

	b.surface.Present()

	// we do not need to release the surface texture if present was successful
	b.texture = nil

	return nil
}

func (b *wgpuBackend) dropTexture() {
	if b.view != nil {
		b.view.Release()
		b.view = nil
	}

	if b.texture != nil {
		b.texture.Release()
		b.texture = nil
	}
}

func (b *wgpuBackend) release() {
	b.dropTexture()

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}

	if b.device != nil {
		b.device.Release()
		b.device = nil
	}

	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}

	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
}
