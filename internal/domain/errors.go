package domain

import "errors"

// Every error here is local to a single request. Only a missing API key is
// fatal, and that is raised from config at startup.
var (
	// ErrEmptyGoal blocks submission before any prompt is built.
	ErrEmptyGoal = errors.New("goal must not be blank")

	// ErrEmptyResponse means the model returned no usable text.
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrModel wraps any transport or SDK failure from the model client.
	ErrModel = errors.New("model request failed")

	// ErrInsufficientVariants means a remix could not pick a different
	// tone or format because the enumeration has fewer than two values.
	ErrInsufficientVariants = errors.New("not enough variants to remix")

	// ErrInvalidCredentials is surfaced on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPersistence marks a history append failure. It is reported as a
	// warning next to an already-displayed result, never as a generation
	// failure.
	ErrPersistence = errors.New("failed to save history")
)
