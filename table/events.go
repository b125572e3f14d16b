package table

import "github.com/chevcast/poker-engine/deck"

// EventType identifies a game event.
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypeHandEnd      EventType = "hand_end"
	EventTypeStreetChange EventType = "street_change"
	EventTypePlayerAction EventType = "player_action"
)

// Event is a game event published by the table.
type Event interface {
	EventType() EventType
}

// HandStartEvent is published when a new hand is dealt.
type HandStartEvent struct {
	HandNumber int
	Players    []*Player
	SmallBlind int
	BigBlind   int
}

func (HandStartEvent) EventType() EventType { return EventTypeHandStart }

// PlayerActionEvent is published after a player acts.
type PlayerActionEvent struct {
	Player *Player
	Action Action
	Amount int
	Round  Round
}

func (PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }

// StreetChangeEvent is published when a new street is dealt.
type StreetChangeEvent struct {
	Round          Round
	CommunityCards []deck.Card
}

func (StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }

// HandEndEvent is published when a hand settles.
type HandEndEvent struct {
	HandNumber int
	Winners    []*Player
	Pots       []*Pot
}

func (HandEndEvent) EventType() EventType { return EventTypeHandEnd }

// Subscriber receives game events.
type Subscriber interface {
	OnEvent(event Event)
}

// EventBus delivers game events to subscribers.
type EventBus interface {
	Subscribe(subscriber Subscriber)
	Publish(event Event)
}

// SimpleEventBus is a synchronous in-memory event bus. Delivery happens on
// the caller's goroutine, keeping table operations single-threaded.
type SimpleEventBus struct {
	subscribers []Subscriber
}

// NewEventBus creates a new synchronous event bus.
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber Subscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers.
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
