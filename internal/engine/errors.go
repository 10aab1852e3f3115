package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNoCurrentEvent      = errors.New("no current trail event")
	ErrNoCurrentEncounter  = errors.New("no current encounter")
	ErrNoActiveAmbush      = errors.New("no active reporter ambush")
	ErrEventInProgress     = errors.New("trail event already in progress")
	ErrEncountersRemaining = errors.New("encounters remain at this stop")
	ErrAwaitingResolution  = errors.New("current encounter not yet resolved")
)

// InvalidStateError reports an operation attempted in the wrong state. It
// unwraps to the sentinel so callers can match with errors.Is.
type InvalidStateError struct {
	Op    string
	State State
	Err   error
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s while %s: %v", e.Op, e.State, e.Err)
}

func (e *InvalidStateError) Unwrap() error { return e.Err }
