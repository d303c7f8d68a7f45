package glimpse

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const AudioSamplesPerSecond = 48000

// oto allows only one context per process, so it is created once
// and suspended or resumed by the platform afterwards.
var audioContext = sync.OnceValue(func() *oto.Context {
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   AudioSamplesPerSecond,
		Format:       oto.FormatFloat32LE,
		ChannelCount: 2,
		BufferSize:   32 * time.Millisecond,
	})

	if err != nil {
		slog.Warn("Failed to initialize AudioContext", slog.String("error", err.Error()))
		return nil
	}

	go func() {
		<-ready
		slog.Info("AudioContext is ready")
	}()

	return context
})

// openAudio starts the audio subsystem. A missing audio device is not fatal,
// the application just runs without sound.
func openAudio() *oto.Context {
	ctx := audioContext()
	if ctx == nil {
		return nil
	}

	if err := ctx.Resume(); err != nil {
		slog.Warn("Failed to resume AudioContext", slog.String("error", err.Error()))
	}

	return ctx
}

func closeAudio(ctx *oto.Context) {
	if ctx == nil {
		return
	}

	if err := ctx.Suspend(); err != nil {
		slog.Warn("Failed to suspend AudioContext", slog.String("error", err.Error()))
	}
}
