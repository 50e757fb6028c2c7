package scene

import "github.com/go-gl/mathgl/mgl64"

type EventType int

const (
	EventExploded EventType = iota
	EventReset
	EventPaused
	EventResumed
	EventSettingsReloaded
)

func (t EventType) String() string {
	switch t {
	case EventExploded:
		return "exploded"
	case EventReset:
		return "reset"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventSettingsReloaded:
		return "settings-reloaded"
	}
	return "unknown"
}

type Event struct {
	Type     EventType
	Time     float64 // simulation clock when emitted
	Position mgl64.Vec3
	Power    float64 // explosion power, EventExploded only
	Count    int     // particle count, EventExploded only
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the caller's goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
