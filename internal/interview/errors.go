package interview

import "errors"

// The engine surfaces three distinguishable error kinds: not-found,
// invalid-state, and validation (handled before the engine by request
// validation). Everything else is an opaque persistence failure. Upstream
// AI degradation never appears here at all.

// not-found conditions
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrResumeRequired   = errors.New("resume required for role-specific interviews")
	ErrQuestionNotFound = errors.New("question not found")
)

// invalid-state conditions
var (
	ErrSessionNotActive  = errors.New("session is not in progress")
	ErrInterviewComplete = errors.New("interview already complete")
	ErrNoQuestions       = errors.New("session has no questions")
	ErrAlreadyAnswered   = errors.New("question already answered")
)

// IsNotFound reports whether err is one of the engine's not-found conditions.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrResumeRequired) ||
		errors.Is(err, ErrQuestionNotFound)
}

// IsInvalidState reports whether err is one of the engine's invalid-state
// conditions.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrSessionNotActive) ||
		errors.Is(err, ErrInterviewComplete) ||
		errors.Is(err, ErrNoQuestions) ||
		errors.Is(err, ErrAlreadyAnswered)
}
