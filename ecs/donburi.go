package ecs

import (
	"github.com/phanxgames/adscene"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PathEventType is the Donburi event type for finished path requests.
// Subscribe to this in your ECS systems to learn when an actor's route is
// solved or found unreachable.
var PathEventType = events.NewEventType[adscene.PathEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Path events
// are published to PathEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) adscene.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitPathEvent(event adscene.PathEvent) {
	PathEventType.Publish(s.world, event)
}
