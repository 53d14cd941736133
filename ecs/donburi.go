package ecs

import (
	"github.com/phanxgames/spiraltree"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ShowEventType is the Donburi event type for show lifecycle events.
// Subscribe to this in your ECS systems to react to the tree starting,
// completing, or losing audio and tilt.
var ShowEventType = events.NewEventType[spiraltree.ShowEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Show events are published to ShowEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) spiraltree.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event spiraltree.ShowEvent) {
	ShowEventType.Publish(s.world, event)
}
