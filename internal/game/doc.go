// Package game implements the word-bingo round engine: parsing card
// declarations, validating them against per-language word banks, driving a
// multi-round game with one round per language, marking called words, and
// selecting winners.
//
// The main type is Session, which owns the evolving game state and sequences
// the lower-level pieces per operator action:
//
//	s := game.NewSession(banks, rng, nil, logger)
//	cards, errs, _ := s.LoadCards(input)
//	rounds, _ := s.Start()
//	res, err := s.CallWord("casa")
//	if len(res.Winners) > 0 {
//	    _ = s.Advance()
//	}
//
// # Determinism
//
// Round order is the only random element. The shuffle rng is injected, so a
// fixed seed reproduces a game exactly:
//
//	rng := randutil.New(42)
//	s := game.NewSession(banks, rng, quartz.NewMock(t), logger)
//
// # Architecture
//
// Session delegates to stateless components, each independently testable:
//   - SortWords: stable merge sort establishing the card word order
//   - ParseCards: line parser with per-line error recovery
//   - ShuffleRounds: Fisher-Yates round order generation
//   - MarkWord: binary-search marking over sorted card words
//   - CheckWinners: greedy winner selection with exact early exit
//
// Sessions are single-writer; hosts must serialize operations per session.
package game
