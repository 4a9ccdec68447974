// Package broadcast is a small generic pub/sub.
//
// The API client publishes session events through it; a CLI or UI subscribes
// to learn when the user has to sign in again.
//
//	b := broadcast.NewMemoryBroadcaster[Event](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx) // removed when ctx is done
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			handle(msg.Data)
//		}
//	}()
//
//	_ = b.Broadcast(ctx, broadcast.Message[Event]{Data: ev})
//
// Delivery never blocks the publisher: a subscriber whose buffer is full
// misses the message. Closing a subscriber leaves already buffered messages
// readable, so a range loop drains them before it ends.
package broadcast
