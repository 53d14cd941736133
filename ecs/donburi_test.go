package ecs

import (
	"testing"

	"github.com/phanxgames/spiraltree"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []spiraltree.ShowEvent
	ShowEventType.Subscribe(world, func(w donburi.World, e spiraltree.ShowEvent) {
		received = append(received, e)
	})

	store.EmitEvent(spiraltree.ShowEvent{Type: spiraltree.EventShowStarted, Time: 1.5, Frame: 90})
	store.EmitEvent(spiraltree.ShowEvent{Type: spiraltree.EventGrowthComplete, Time: 7.5, Frame: 450})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	ShowEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != spiraltree.EventShowStarted || e.Frame != 90 || e.Time != 1.5 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != spiraltree.EventGrowthComplete || e.Frame != 450 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store spiraltree.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_ShowTrigger(t *testing.T) {
	world := donburi.NewWorld()

	cfg := spiraltree.DefaultConfig()
	cfg.Seed = 7
	cfg.Tree.Count = 50
	cfg.Ambient.SnowCount = 10
	show := spiraltree.NewShow(cfg)
	show.SetEventStore(NewDonburiStore(world))

	var types []spiraltree.EventType
	ShowEventType.Subscribe(world, func(w donburi.World, e spiraltree.ShowEvent) {
		types = append(types, e.Type)
	})

	show.Trigger()
	show.Trigger()
	events.ProcessAllEvents(world)

	if len(types) != 1 || types[0] != spiraltree.EventShowStarted {
		t.Errorf("events = %v, want one %v", types, spiraltree.EventShowStarted)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	ShowEventType.Subscribe(world, func(w donburi.World, e spiraltree.ShowEvent) {
		count1++
	})
	ShowEventType.Subscribe(world, func(w donburi.World, e spiraltree.ShowEvent) {
		count2++
	})

	store.EmitEvent(spiraltree.ShowEvent{Type: spiraltree.EventTiltWired})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
