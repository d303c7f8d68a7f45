package glimpse

import (
	"errors"
	"strings"
)

var ErrInitFailed = errors.New("initialize platform")
var ErrNotInitialized = errors.New("platform not initialized")
var ErrWindowCreation = errors.New("create window")
var ErrNothingToPresent = errors.New("window has nothing to present")

// InitFlags select the subsystems started by Platform.Init
type InitFlags uint32

const (
	InitVideo InitFlags = 1 << iota
	InitAudio
	InitGamepad
)

func (f InitFlags) Has(other InitFlags) bool {
	return f&other == other
}

func (f InitFlags) String() string {
	var names []string

	if f.Has(InitVideo) {
		names = append(names, "video")
	}

	if f.Has(InitAudio) {
		names = append(names, "audio")
	}

	if f.Has(InitGamepad) {
		names = append(names, "gamepad")
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "|")
}

// Metadata identifies the application towards the operating system.
type Metadata struct {
	Name       string
	Version    string
	Identifier string
}

// Platform is the windowing, input and timing layer of the operating system.
// All methods must be called from the main thread.
type Platform interface {
	SetAppMetadata(meta Metadata)
	Init(flags InitFlags) error

	CreateWindow(title string, width, height int, attrs WindowAttributes) (Window, error)
	DestroyWindow(win Window)

	// PumpEvents collects pending events from the operating system
	// into the queue read by PollEvent.
	PumpEvents()
	PollEvent() (Event, bool)

	PerformanceCounter() uint64
	PerformanceFrequency() uint64

	SwapWindow(win Window) error

	// LastError returns the message of the most recent failure.
	LastError() string

	Quit()
}
