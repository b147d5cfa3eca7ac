package adscene

import "time"

// PathEvent describes a finished path request.
type PathEvent struct {
	// Requester is the name of the requesting object, empty for anonymous
	// requests.
	Requester string
	// Found is false when the target was unreachable.
	Found bool
	// Points is the length of the solved route.
	Points int
	// Steps is the number of planner steps the search took.
	Steps int
	// Duration is the wall-clock time from request to completion.
	Duration time.Duration
}

// EventSink receives planner events. Set Game.Events to observe them.
type EventSink interface {
	EmitPathEvent(PathEvent)
}

// EventFunc adapts a function to EventSink.
type EventFunc func(PathEvent)

// EmitPathEvent calls fn(ev).
func (fn EventFunc) EmitPathEvent(ev PathEvent) { fn(ev) }
