package types

import "errors"

// Sentinel errors. Raise sites wrap these with fmt.Errorf("...: %w", Err...)
// so callers can still match with errors.Is while getting a useful message.
var (
	// ErrBadWord is returned when a token contains a control character
	// (a byte below 0x20).
	ErrBadWord = errors.New("tfsearch: word contains a control character")

	// ErrInvalidID is returned by AddDocument for a negative or
	// already-present document id.
	ErrInvalidID = errors.New("tfsearch: invalid document id")

	// ErrBadQuery is returned when a query token is a bare "-", starts
	// with "--", or contains a control character.
	ErrBadQuery = errors.New("tfsearch: malformed query")
)
