package events

import (
	"context"
	"errors"
	"sync"
)

// DefaultCapacity bounds the per-request queue. Producers block when the
// consumer falls this far behind rather than growing memory without bound.
const DefaultCapacity = 1024

// ErrBusClosed is returned by Publish after Close.
var ErrBusClosed = errors.New("event bus closed")

// Bus is a bounded FIFO event queue for a single chat request.
type Bus struct {
	ch        chan Event
	closed    chan struct{}
	closeOnce sync.Once
}

// NewBus creates a bus with the given capacity (DefaultCapacity if <= 0).
func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{
		ch:     make(chan Event, capacity),
		closed: make(chan struct{}),
	}
}

// Publish enqueues an event, blocking while the queue is full. It returns
// ErrBusClosed once Close has been called and the context error if ctx is
// cancelled while blocked.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	select {
	case <-b.closed:
		return ErrBusClosed
	default:
	}

	select {
	case b.ch <- event:
		return nil
	case <-b.closed:
		return ErrBusClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close enqueues the terminal done event and rejects further publishes.
// Safe to call more than once. Close never blocks: when the queue is full
// (the consumer stopped draining, e.g. a client disconnect), the sentinel
// is skipped and Next synthesizes done once the backlog is drained.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.closed)
		select {
		case b.ch <- Event{Type: EventTypeDone, Payload: DonePayload{}}:
		default:
		}
	})
}

// Next blocks until the next event is available. The consumer loops until it
// receives the EventTypeDone sentinel; a closed and drained bus yields the
// sentinel even when Close could not enqueue it. A cancelled ctx wins over
// buffered events: a disconnected consumer never observes a late done.
func (b *Bus) Next(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}
	select {
	case event := <-b.ch:
		return event, nil
	default:
	}
	select {
	case event := <-b.ch:
		return event, nil
	case <-b.closed:
		// Drain buffered events before synthesizing the terminal event.
		select {
		case event := <-b.ch:
			return event, nil
		default:
			return Event{Type: EventTypeDone, Payload: DonePayload{}}, nil
		}
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

type busContextKey struct{}

// WithBus attaches the bus to the context as the ambient publish handle.
func WithBus(ctx context.Context, bus *Bus) context.Context {
	return context.WithValue(ctx, busContextKey{}, bus)
}

// FromContext returns the ambient bus, or nil when the context carries none
// (background jobs such as memory summarization run without a bus).
func FromContext(ctx context.Context) *Bus {
	bus, _ := ctx.Value(busContextKey{}).(*Bus)
	return bus
}

// Publish sends an event through the ambient bus on ctx. It is a no-op when
// no bus is attached, so emitters never need to care whether they run inside
// a streaming request.
func Publish(ctx context.Context, event Event) error {
	bus := FromContext(ctx)
	if bus == nil {
		return nil
	}
	return bus.Publish(ctx, event)
}
