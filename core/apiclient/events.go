package apiclient

import "time"

// SessionEventKind tells subscribers what happened to the session.
type SessionEventKind string

const (
	// SessionRefreshed is published after the refresh endpoint issued a new session.
	SessionRefreshed SessionEventKind = "refreshed"
	// SessionExpired is published after a failed refresh cleared the session.
	// Shells react by sending the user to the login entry point.
	SessionExpired SessionEventKind = "expired"
	// SessionEnded is published when the session is cleared on request, e.g. logout.
	SessionEnded SessionEventKind = "ended"
)

// SessionEvent is delivered on the client's broadcaster.
type SessionEvent struct {
	Kind   SessionEventKind
	Reason string
	At     time.Time
}
