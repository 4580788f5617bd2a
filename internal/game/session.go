package game

import (
	"errors"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// State is the session lifecycle phase. Transitions only move forward; a
// fresh Setup is only reachable by creating a new session.
type State int

const (
	// Setup accepts card loads until the operator starts the game.
	Setup State = iota
	// RoundActive accepts word calls for the current round's language.
	RoundActive
	// RoundWon has declared winners; calls are rejected until the round is
	// advanced.
	RoundWon
	// Finished is reached once the last round has been advanced past.
	Finished
)

func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case RoundActive:
		return "round_active"
	case RoundWon:
		return "round_won"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Call records one word call within the current round.
type Call struct {
	Word  string    `json:"word"`
	Found bool      `json:"found"`
	At    time.Time `json:"at"`
}

// CallResult is what a successful CallWord returns.
type CallResult struct {
	Found   bool
	Winners []*Card
}

// Session owns the evolving state of one game: the loaded cards (append-only
// for the session's lifetime), the round order generated at start, the
// current round pointer, the current round's call history, and its winners.
//
// A session is single-writer: loading, calling, and advancing are discrete
// synchronous operations with no internal locking. Hosts serving a session
// over the network must serialize requests per session (see server package).
type Session struct {
	banks  Banks
	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger
	bus    EventBus

	state    State
	cards    []*Card
	knownIDs map[string]struct{}
	rounds   []Language
	roundIdx int
	history  []Call
	winners  []*Card
}

// ErrNoCards is returned by Start when no card has been loaded yet.
var ErrNoCards = errors.New("no cards loaded")

// NewSession creates a session in the Setup state. The rng drives round
// shuffling only; the clock stamps call history and events.
func NewSession(banks Banks, rng *rand.Rand, clock quartz.Clock, logger *log.Logger) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Session{
		banks:    banks,
		rng:      rng,
		clock:    clock,
		logger:   logger.WithPrefix("session"),
		bus:      NewEventBus(),
		state:    Setup,
		knownIDs: make(map[string]struct{}),
	}
}

// EventBus returns the bus session events are published on.
func (s *Session) EventBus() EventBus {
	return s.bus
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// LoadCards parses the given text and appends accepted cards to the
// session. Only valid during Setup. Parse failures are reported in the
// returned error strings, never as an error value.
func (s *Session) LoadCards(text string) ([]*Card, []string, error) {
	if s.state != Setup {
		return nil, nil, &InvalidStateError{Op: "load cards", State: s.state}
	}

	accepted, errs := ParseCards(text, s.banks, s.knownIDs)
	s.cards = append(s.cards, accepted...)

	s.logger.Info("cards loaded", "accepted", len(accepted), "rejected", len(errs), "total", len(s.cards))
	s.bus.Publish(CardsLoadedEvent{Accepted: accepted, Errors: errs, Total: len(s.cards), ts: s.clock.Now()})

	return accepted, errs, nil
}

// Start generates the round order and moves the session to the first round.
// The order is fixed for the rest of the game.
func (s *Session) Start() ([]Language, error) {
	if s.state != Setup {
		return nil, &InvalidStateError{Op: "start the game", State: s.state}
	}
	if len(s.cards) == 0 {
		return nil, ErrNoCards
	}

	s.rounds = ShuffleRounds(LanguagesPresent(s.cards), s.rng)
	s.roundIdx = 0
	s.history = nil
	s.winners = nil
	s.state = RoundActive

	s.logger.Info("game started", "rounds", s.rounds)
	s.bus.Publish(GameStartEvent{Rounds: s.Rounds(), ts: s.clock.Now()})

	return s.Rounds(), nil
}

// CallWord validates the word against the active language's bank, marks
// matching cards, and evaluates winners. Unknown words and calls outside
// RoundActive are rejected before any card is touched.
func (s *Session) CallWord(word string) (*CallResult, error) {
	if s.state != RoundActive {
		return nil, &InvalidStateError{Op: "call a word", State: s.state}
	}

	word = strings.TrimSpace(word)
	active := s.rounds[s.roundIdx]

	if !s.banks[active].Contains(word) {
		return nil, &UnknownWordError{Word: word, Language: active}
	}

	found := MarkWord(s.cards, active, word)
	s.history = append(s.history, Call{Word: word, Found: found, At: s.clock.Now()})
	s.bus.Publish(WordCallEvent{Word: word, Language: active, Round: s.roundIdx, Found: found, ts: s.clock.Now()})

	winners := CheckWinners(s.activeCards(active))
	if len(winners) > 0 {
		for _, w := range winners {
			w.HasWon = true
		}
		s.winners = winners
		s.state = RoundWon

		s.logger.Info("round won", "round", s.roundIdx, "language", active, "winners", len(winners))
		s.bus.Publish(RoundWonEvent{Language: active, Round: s.roundIdx, Winners: winners, ts: s.clock.Now()})
	}

	return &CallResult{Found: found, Winners: winners}, nil
}

// Advance moves past a won round: on to the next round's language, or to
// Finished if the current round was the last. Call history and winners are
// reset for the new round.
func (s *Session) Advance() error {
	if s.state != RoundWon {
		return &InvalidStateError{Op: "advance the round", State: s.state}
	}

	s.roundIdx++
	s.history = nil
	s.winners = nil

	if s.roundIdx >= len(s.rounds) {
		s.state = Finished
		s.logger.Info("game finished", "rounds", len(s.rounds))
		s.bus.Publish(GameFinishEvent{ts: s.clock.Now()})
		return nil
	}

	s.state = RoundActive
	s.logger.Info("round advanced", "round", s.roundIdx, "language", s.rounds[s.roundIdx])
	s.bus.Publish(RoundAdvanceEvent{Language: s.rounds[s.roundIdx], Round: s.roundIdx, ts: s.clock.Now()})
	return nil
}

// CurrentLanguage returns the active round's language, if a round is in play.
func (s *Session) CurrentLanguage() (Language, bool) {
	if s.state != RoundActive && s.state != RoundWon {
		return "", false
	}
	return s.rounds[s.roundIdx], true
}

// Cards returns the session's card collection. Callers must treat the cards
// as read-only.
func (s *Session) Cards() []*Card {
	out := make([]*Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Rounds returns the generated round order, nil before Start.
func (s *Session) Rounds() []Language {
	out := make([]Language, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// RoundIndex returns the zero-based current round pointer.
func (s *Session) RoundIndex() int {
	return s.roundIdx
}

// History returns the call history for the current round.
func (s *Session) History() []Call {
	out := make([]Call, len(s.history))
	copy(out, s.history)
	return out
}

// Winners returns the current round's winner set.
func (s *Session) Winners() []*Card {
	out := make([]*Card, len(s.winners))
	copy(out, s.winners)
	return out
}

// activeCards returns the not-yet-won cards of the given language, the
// winner selection candidate set.
func (s *Session) activeCards(lang Language) []*Card {
	var out []*Card
	for _, c := range s.cards {
		if c.Language == lang && !c.HasWon {
			out = append(out, c)
		}
	}
	return out
}
