package plan

import "errors"

var (
	// ErrMalformedContent is returned when plan content is not a JSON object.
	ErrMalformedContent = errors.New("plan: malformed content")
	// ErrNilClient is returned by NewFromClient when no API client is given.
	ErrNilClient = errors.New("plan: nil api client")
	// ErrInvalidID is returned for the zero plan id.
	ErrInvalidID = errors.New("plan: invalid id")
)
