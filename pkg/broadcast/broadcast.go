package broadcast

import "context"

// Message wraps a broadcast payload.
type Message[T any] struct {
	Data T
}

// Broadcaster fans messages out to every live subscriber.
type Broadcaster[T any] interface {
	Subscribe(ctx context.Context) Subscriber[T]
	Broadcast(ctx context.Context, msg Message[T]) error
	Close() error
}

// Subscriber receives broadcast messages until closed or its context is done.
type Subscriber[T any] interface {
	Receive(ctx context.Context) <-chan Message[T]
	Close() error
}
