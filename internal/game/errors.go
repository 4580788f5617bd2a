package game

import "fmt"

// UnknownWordError is returned when a called word is not in the active
// language's dictionary. The call is rejected before any card is touched.
type UnknownWordError struct {
	Word     string
	Language Language
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("word %q is not in the %s bank", e.Word, e.Language)
}

// InvalidStateError is returned when an operation is attempted in a session
// state that does not permit it, e.g. calling a word before the game starts
// or after the round has been won. Distinguishable from UnknownWordError so
// callers can render different guidance.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s while the session is %s", e.Op, e.State)
}
