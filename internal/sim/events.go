package sim

type EventType int

const (
	EventSessionStarted EventType = iota
	EventObstaclePassed
	EventCollision
	EventLandmarkPassed
	EventPauseChanged
	EventMenu
)

type Event struct {
	Type EventType
	Pos  Vec3
	Data int // Generic payload (score after a pass, 1/0 for pause).
}

type EventHandler func(Event)

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
