package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/clearscreen/glimpse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareWindowAttributes(t *testing.T) {
	webgpu := PrepareWindowAttributes(WebGPU)
	assert.Equal(t, glimpse.NoAPI, webgpu.ClientAPI)
	assert.True(t, webgpu.Resizable)

	gl := PrepareWindowAttributes(OpenGL)
	assert.Equal(t, glimpse.OpenGLAPI, gl.ClientAPI)
	assert.Equal(t, 3, gl.ContextVersionMajor)
	assert.Equal(t, 3, gl.ContextVersionMinor)
	assert.True(t, gl.CoreProfile)
}

func TestPresentModeFor(t *testing.T) {
	all := []wgpu.PresentMode{
		wgpu.PresentModeFifo,
		wgpu.PresentModeFifoRelaxed,
		wgpu.PresentModeImmediate,
		wgpu.PresentModeMailbox,
	}

	assert.Equal(t, wgpu.PresentModeImmediate, presentModeFor(VerticalSyncDisabled, all))
	assert.Equal(t, wgpu.PresentModeFifo, presentModeFor(VerticalSyncEnabled, all))
	assert.Equal(t, wgpu.PresentModeFifoRelaxed, presentModeFor(VerticalSyncAdaptiveEnabled, all))

	// fifo is the fallback if the surface does not support the mode
	fifoOnly := []wgpu.PresentMode{wgpu.PresentModeFifo}
	assert.Equal(t, wgpu.PresentModeFifo, presentModeFor(VerticalSyncAdaptiveEnabled, fifoOnly))
	assert.Equal(t, wgpu.PresentModeFifo, presentModeFor(VerticalSyncDisabled, fifoOnly))
	assert.Equal(t, wgpu.PresentModeFifo, presentModeFor(VerticalSyncAdaptiveEnabled, nil))
}

func TestParseGraphicsAPI(t *testing.T) {
	api, err := ParseGraphicsAPI("WebGPU")
	require.NoError(t, err)
	assert.Equal(t, WebGPU, api)

	api, err = ParseGraphicsAPI(" gl ")
	require.NoError(t, err)
	assert.Equal(t, OpenGL, api)

	_, err = ParseGraphicsAPI("vulkan")
	assert.Error(t, err)
}

func TestParseVerticalSync(t *testing.T) {
	for value, expected := range map[string]VerticalSync{
		"off":      VerticalSyncDisabled,
		"false":    VerticalSyncDisabled,
		"on":       VerticalSyncEnabled,
		"enabled":  VerticalSyncEnabled,
		"adaptive": VerticalSyncAdaptiveEnabled,
	} {
		vsync, err := ParseVerticalSync(value)
		require.NoError(t, err, value)
		assert.Equal(t, expected, vsync, value)

		// string form parses back to the same mode
		parsed, err := ParseVerticalSync(vsync.String())
		require.NoError(t, err)
		assert.Equal(t, vsync, parsed)
	}

	_, err := ParseVerticalSync("sometimes")
	assert.Error(t, err)
}

func TestSwapIntervalFor(t *testing.T) {
	assert.Equal(t, 0, swapIntervalFor(VerticalSyncDisabled, true))
	assert.Equal(t, 1, swapIntervalFor(VerticalSyncEnabled, true))
	assert.Equal(t, -1, swapIntervalFor(VerticalSyncAdaptiveEnabled, true))

	// without swap_control_tear adaptive falls back to plain vsync
	assert.Equal(t, 1, swapIntervalFor(VerticalSyncAdaptiveEnabled, false))
	assert.Equal(t, 0, swapIntervalFor(VerticalSyncDisabled, false))
}

func TestSurfaceFormatFor(t *testing.T) {
	format, srgb := surfaceFormatFor([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatBGRA8Unorm,
	})

	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, format)
	assert.False(t, srgb)

	format, srgb = surfaceFormatFor([]wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8UnormSrgb,
		wgpu.TextureFormatRGBA8Unorm,
	})

	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, format)
	assert.False(t, srgb)

	// only srgb available, clear colors need to be linearized
	format, srgb = surfaceFormatFor([]wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb})
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, format)
	assert.True(t, srgb)

	format, srgb = surfaceFormatFor([]wgpu.TextureFormat{wgpu.TextureFormatRGBA16Float})
	assert.Equal(t, wgpu.TextureFormatRGBA16Float, format)
	assert.False(t, srgb)
}

func TestParseWGPULogLevel(t *testing.T) {
	level, ok := parseWGPULogLevel(" debug ")
	assert.True(t, ok)
	assert.Equal(t, wgpu.LogLevelDebug, level)

	level, ok = parseWGPULogLevel("OFF")
	assert.True(t, ok)
	assert.Equal(t, wgpu.LogLevelOff, level)

	_, ok = parseWGPULogLevel("")
	assert.False(t, ok)

	_, ok = parseWGPULogLevel("verbose")
	assert.False(t, ok)
}
