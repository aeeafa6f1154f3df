// Package eventbus fans lifecycle events out to push subscribers.
//
// The bus is the only bridge between the synchronous command path and the
// asynchronous push transport. Publish never blocks and never reports
// failure upward: a subscriber that cannot keep up is dropped, not waited
// for, so one stalled connection cannot slow the order flow.
package eventbus

import (
	"encoding/json"
	"sync"

	"dispatch/internal/core/ports"

	"go.uber.org/zap"
)

// Subscription is one subscriber's view of the bus. C delivers wire-ready
// frames and is closed when the subscription ends, whether by Unsubscribe or
// by being dropped as too slow.
type Subscription struct {
	ID uint64
	C  <-chan []byte
}

// Bus implements ports.EventPublisher with non-blocking fan-out.
type Bus struct {
	mu         sync.RWMutex
	subs       map[uint64]chan []byte
	nextSubID  uint64
	bufferSize int

	log *zap.SugaredLogger
}

// frame is the wire form of an event: {"type": ..., "data": ...}.
type frame struct {
	Type ports.EventName `json:"type"`
	Data any             `json:"data"`
}

// NewBus creates a bus whose subscriber channels buffer up to bufferSize
// frames before the subscriber is considered too slow.
func NewBus(bufferSize int, log *zap.SugaredLogger) *Bus {
	if bufferSize <= 0 {
		bufferSize = 64
	}

	return &Bus{
		subs:       make(map[uint64]chan []byte),
		bufferSize: bufferSize,
		log:        log,
	}
}

// Subscribe registers a new subscriber and returns its subscription.
func (b *Bus) Subscribe() *Subscription {
	ch := make(chan []byte, b.bufferSize)

	b.mu.Lock()
	b.nextSubID++
	id := b.nextSubID
	b.subs[id] = ch
	b.mu.Unlock()

	b.log.Debugw("subscriber attached", "subscriber", id)
	return &Subscription{ID: id, C: ch}
}

// Unsubscribe removes a subscriber and closes its channel. Safe to call
// more than once and after the subscriber was dropped.
func (b *Bus) Unsubscribe(id uint64) {
	b.mu.Lock()
	ch, ok := b.subs[id]
	if ok {
		delete(b.subs, id)
	}
	b.mu.Unlock()

	if ok {
		close(ch)
		b.log.Debugw("subscriber detached", "subscriber", id)
	}
}

// Publish marshals the event once and offers the frame to every subscriber.
// Subscribers with a full buffer are dropped on the spot: their channel is
// closed and they must resubscribe, at which point the full-snapshot events
// let them rebuild state from the REST API.
func (b *Bus) Publish(event ports.Event) {
	payload, err := json.Marshal(frame{Type: event.Name, Data: event.Data})
	if err != nil {
		b.log.Errorw("event not serializable, dropping", "event", event.Name, "error", err)
		return
	}

	var dropped []uint64

	b.mu.RLock()
	for id, ch := range b.subs {
		select {
		case ch <- payload:
		default:
			dropped = append(dropped, id)
		}
	}
	b.mu.RUnlock()

	if len(dropped) == 0 {
		return
	}

	b.mu.Lock()
	for _, id := range dropped {
		ch, ok := b.subs[id]
		if !ok {
			continue // unsubscribed between the two passes
		}
		delete(b.subs, id)
		close(ch)
		b.log.Warnw("slow subscriber dropped", "subscriber", id, "event", event.Name)
	}
	b.mu.Unlock()
}

// SubscriberCount reports how many subscribers are attached.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
