package game

import "time"

// EventType represents a session event type with type safety.
type EventType string

const (
	EventTypeCardsLoaded  EventType = "cards_loaded"
	EventTypeGameStart    EventType = "game_start"
	EventTypeWordCall     EventType = "word_call"
	EventTypeRoundWon     EventType = "round_won"
	EventTypeRoundAdvance EventType = "round_advance"
	EventTypeGameFinish   EventType = "game_finish"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event published by a session.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// CardsLoadedEvent is published after each load operation, successful or not.
type CardsLoadedEvent struct {
	Accepted []*Card
	Errors   []string
	Total    int // cards held by the session after this load
	ts       time.Time
}

func (e CardsLoadedEvent) EventType() EventType { return EventTypeCardsLoaded }
func (e CardsLoadedEvent) Timestamp() time.Time { return e.ts }

// GameStartEvent is published once, when the round order is generated.
type GameStartEvent struct {
	Rounds []Language
	ts     time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.ts }

// WordCallEvent is published for every accepted word call.
type WordCallEvent struct {
	Word     string
	Language Language
	Round    int
	Found    bool
	ts       time.Time
}

func (e WordCallEvent) EventType() EventType { return EventTypeWordCall }
func (e WordCallEvent) Timestamp() time.Time { return e.ts }

// RoundWonEvent is published when a call produces one or more winners.
type RoundWonEvent struct {
	Language Language
	Round    int
	Winners  []*Card
	ts       time.Time
}

func (e RoundWonEvent) EventType() EventType { return EventTypeRoundWon }
func (e RoundWonEvent) Timestamp() time.Time { return e.ts }

// RoundAdvanceEvent is published when play moves on to the next round.
type RoundAdvanceEvent struct {
	Language Language
	Round    int
	ts       time.Time
}

func (e RoundAdvanceEvent) EventType() EventType { return EventTypeRoundAdvance }
func (e RoundAdvanceEvent) Timestamp() time.Time { return e.ts }

// GameFinishEvent is published when the last round is advanced past.
type GameFinishEvent struct {
	ts time.Time
}

func (e GameFinishEvent) EventType() EventType { return EventTypeGameFinish }
func (e GameFinishEvent) Timestamp() time.Time { return e.ts }

// EventSubscriber can subscribe to session events.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a previously registered subscriber.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers.
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, sub := range bus.subscribers {
		sub.OnEvent(event)
	}
}
