package store

import (
	"fmt"
)

// Sentinel domain errors. Every error here is recoverable by the
// caller; the store itself never retries a failed transition.
var (
	ErrRequestNotFound = fmt.Errorf("request not found")
	ErrMatchNotFound   = fmt.Errorf("match not found")
	ErrRatingNotFound  = fmt.Errorf("rating not found")
	ErrProfileNotFound = fmt.Errorf("profile not found")
	ErrSessionNotFound = fmt.Errorf("session not found")

	// ErrForbidden - the actor is not a party of the target entity, or
	// not the party allowed to perform this action
	ErrForbidden = fmt.Errorf("not authorized for this action")

	// ErrConflictRace - a conditional update matched no document after
	// its precondition had been verified; a concurrent writer won the
	// transition. Callers must re-read before retrying.
	ErrConflictRace = fmt.Errorf("lost transition to a concurrent writer")

	ErrRatingExists      = fmt.Errorf("request has already been rated by this user")
	ErrMatchExists       = fmt.Errorf("match already exists for this request")
	ErrEditWindowExpired = fmt.Errorf("rating can no longer be modified")
	ErrProfileTaken      = fmt.Errorf("account number has already been registered")
	ErrFeedbackExists    = fmt.Errorf("feedback has already been submitted by this participant")

	// ErrMatchNotCompleted - participant feedback is only accepted once
	// the match has been completed
	ErrMatchNotCompleted = fmt.Errorf("match is not completed")
)

// InvalidTransitionError - the entity exists and the actor is
// authorized, but the current status does not allow the requested
// transition. Current and Attempted are kept for diagnostics.
type InvalidTransitionError struct {
	Entity    string
	Current   string
	Attempted string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.Entity, e.Current, e.Attempted)
}

// ValidationError - malformed input, rejected before any persistence
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	_, ok := err.(*InvalidTransitionError)
	return ok
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
