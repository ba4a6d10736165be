package thread

import "errors"

// Marker is the closed response vocabulary of the board protocol. Write
// operations answer with exactly one of these tokens; clients match on the
// literal string.
type Marker string

const (
	MarkerSuccess   Marker = "SUCCESS"
	MarkerIncorrect Marker = "INCORRECT"
	MarkerReported  Marker = "REPORTED-OK"

	// MarkerError covers both not-found and malformed input, so a failed
	// lookup never reveals which key was wrong. Thread fetch answers with
	// the capitalized variant.
	MarkerError      Marker = "error"
	MarkerFetchError Marker = "Error"
)

var (
	ErrNotFound      = errors.New("thread: not found")
	ErrWrongPassword = errors.New("thread: incorrect password")
	ErrValidation    = errors.New("thread: invalid input")
)
