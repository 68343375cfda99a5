package game

type EventType int

const (
	EventCollect EventType = iota
	EventLevelUp
	EventDash
	EventDeath
)

func (t EventType) String() string {
	switch t {
	case EventCollect:
		return "collect"
	case EventLevelUp:
		return "level-up"
	case EventDash:
		return "dash"
	case EventDeath:
		return "death"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	X, Y float64
	Data int // score for collect, level for level-up, final score for death
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the caller's goroutine.
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
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
