package orion

import (
	"context"
	"log/slog"

	"github.com/oliverbestmann/clearscreen/glimpse"
)

// EventPump is the part of the platform the host loop reads events from.
type EventPump interface {
	PumpEvents()
	PollEvent() (glimpse.Event, bool)
}

// Run drives the app until one of its callbacks returns Success or Failure.
// Cancelling ctx delivers a quit event to the app, the same as closing the window.
func Run(ctx context.Context, pump EventPump, app App) Result {
	result := app.Init()

	defer func() {
		slog.Debug("Application finished", slog.String("result", result.String()))
		app.Quit(result)
	}()

	quitRequested := false

	for result == Continue {
		if ctx.Err() != nil && !quitRequested {
			quitRequested = true

			slog.Info("Quit requested", slog.String("reason", context.Cause(ctx).Error()))

			result = app.Event(glimpse.Event{Type: glimpse.EventQuit})
			if result != Continue {
				break
			}
		}

		result = dispatchEvents(pump, app)
		if result != Continue {
			break
		}

		result = app.Iterate()
	}

	return result
}

func dispatchEvents(pump EventPump, app App) Result {
	pump.PumpEvents()

	for {
		ev, ok := pump.PollEvent()
		if !ok {
			return Continue
		}

		if result := app.Event(ev); result != Continue {
			return result
		}
	}
}
