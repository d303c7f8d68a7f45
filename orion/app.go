package orion

import (
	"fmt"

	"github.com/oliverbestmann/clearscreen/glimpse"
)

// Result tells the host loop whether to keep running the application.
type Result int

const (
	Continue Result = iota
	Success
	Failure
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// App is driven by Run. No two callbacks ever run concurrently.
type App interface {
	// Init is called exactly once, before any other callback.
	Init() Result

	// Event is called for each event delivered by the platform.
	Event(ev glimpse.Event) Result

	// Iterate is called once per frame.
	Iterate() Result

	// Quit is called exactly once after Init returned, with the result
	// that ended the application. It must release everything the app
	// acquired, even if Init failed halfway.
	Quit(result Result)
}
