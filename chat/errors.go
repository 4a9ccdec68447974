package chat

import "errors"

var (
	// ErrUnexpectedReply is returned when Send does not get back a user echo and an assistant reply.
	ErrUnexpectedReply = errors.New("chat: unexpected reply")
)
