package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster is an in-process Broadcaster with per-subscriber buffers.
// Delivery never blocks: a full subscriber buffer drops the message for that
// subscriber only.
type MemoryBroadcaster[T any] struct {
	mu          sync.RWMutex
	subscribers map[*memorySubscriber[T]]struct{}
	bufferSize  int
	closed      bool
}

// NewMemoryBroadcaster creates a broadcaster with the given per-subscriber buffer size.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	if bufferSize < 0 {
		bufferSize = 0
	}
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*memorySubscriber[T]]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a subscriber that is removed when ctx is done or Close is called.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := &memorySubscriber[T]{
		ch:     make(chan Message[T], b.bufferSize),
		parent: b,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.closeOnce.Do(func() { close(sub.ch) })
		return sub
	}
	b.subscribers[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()

	return sub
}

// Broadcast delivers msg to every subscriber without blocking.
func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBroadcasterClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for sub := range b.subscribers {
		sub.deliver(msg)
	}
	return nil
}

// Close closes every subscriber channel. Safe to call more than once.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	subs := b.subscribers
	b.subscribers = make(map[*memorySubscriber[T]]struct{})
	b.mu.Unlock()

	for sub := range subs {
		sub.closeChannel()
	}
	return nil
}

// Subscribers returns the number of live subscribers.
func (b *MemoryBroadcaster[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

func (b *MemoryBroadcaster[T]) remove(sub *memorySubscriber[T]) {
	b.mu.Lock()
	delete(b.subscribers, sub)
	b.mu.Unlock()
}

type memorySubscriber[T any] struct {
	ch        chan Message[T]
	parent    *MemoryBroadcaster[T]
	mu        sync.RWMutex
	done      bool
	closeOnce sync.Once
}

// Receive returns the delivery channel. It is closed when the subscriber closes.
func (s *memorySubscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

// Close detaches the subscriber and closes its channel.
func (s *memorySubscriber[T]) Close() error {
	s.parent.remove(s)
	s.closeChannel()
	return nil
}

func (s *memorySubscriber[T]) deliver(msg Message[T]) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.done {
		return
	}
	select {
	case s.ch <- msg:
	default:
	}
}

func (s *memorySubscriber[T]) closeChannel() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.done = true
		close(s.ch)
		s.mu.Unlock()
	})
}
