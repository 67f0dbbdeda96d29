// Package events buffers unsolicited game server events between tool calls.
//
// The receive loop pushes events as they arrive; result assembly drains them
// in bulk so the caller sees everything that happened since its previous
// call. The buffer is a bounded ring: when full, the oldest unconsumed event
// is dropped and a monotonic lost counter is incremented, so a slow consumer
// degrades observably instead of growing without bound.
package events

import (
	"sync"

	"github.com/louisbranch/wyvernbridge/internal/services/bridge/wire"
)

// DefaultCapacity bounds the events held between two drains.
const DefaultCapacity = 256

// Buffer is a bounded FIFO ring of push events. Safe for concurrent use.
type Buffer struct {
	mu    sync.Mutex
	ring  []wire.PushEvent
	start int
	count int
	lost  uint64
}

// NewBuffer creates a buffer holding at most capacity events.
// A non-positive capacity falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{ring: make([]wire.PushEvent, capacity)}
}

// Push appends an event, dropping the oldest unconsumed one when full.
// Push never blocks the receive loop.
func (b *Buffer) Push(event wire.PushEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == len(b.ring) {
		b.start = (b.start + 1) % len(b.ring)
		b.count--
		b.lost++
	}
	b.ring[(b.start+b.count)%len(b.ring)] = wire.PushEvent{Kind: event.Kind, Seq: event.Seq, Data: event.Data}
	b.count++
}

// Drain returns, and marks consumed, every event accumulated since the
// previous drain, in arrival order. Returns nil when nothing accumulated.
func (b *Buffer) Drain() []wire.PushEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == 0 {
		return nil
	}
	drained := make([]wire.PushEvent, 0, b.count)
	for i := 0; i < b.count; i++ {
		drained = append(drained, b.ring[(b.start+i)%len(b.ring)])
	}
	b.start = 0
	b.count = 0
	return drained
}

// Lost reports the total number of events dropped to overflow since startup.
func (b *Buffer) Lost() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lost
}
