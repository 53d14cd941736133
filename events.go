package spiraltree

// EventType identifies a show lifecycle event.
type EventType uint8

const (
	EventShowStarted    EventType = iota // first trigger moved the show to forming
	EventGrowthComplete                  // every particle settled; ornament and end message revealed
	EventTiltWired                       // orientation input was granted and enabled
	EventTiltDenied                      // orientation permission failed; tilt stays off
	EventAudioFailed                     // background music could not start
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventShowStarted:
		return "show-started"
	case EventGrowthComplete:
		return "growth-complete"
	case EventTiltWired:
		return "tilt-wired"
	case EventTiltDenied:
		return "tilt-denied"
	case EventAudioFailed:
		return "audio-failed"
	default:
		return "unknown"
	}
}

// ShowEvent carries a lifecycle event and when it happened.
type ShowEvent struct {
	Type EventType
	// Time is the scene clock in seconds.
	Time float64
	// Frame is the tick count at emission.
	Frame uint64
}

// EventStore is the interface for optional ECS integration.
// When set on a Show, lifecycle events are forwarded to it.
type EventStore interface {
	EmitEvent(event ShowEvent)
}

// EventLog is an EventStore that keeps every event in order.
type EventLog struct {
	Events []ShowEvent
}

// EmitEvent appends event.
func (l *EventLog) EmitEvent(event ShowEvent) {
	l.Events = append(l.Events, event)
}

// Count returns how many events of type t were recorded.
func (l *EventLog) Count(t EventType) int {
	n := 0
	for _, e := range l.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}
