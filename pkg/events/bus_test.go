package events

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishAndDrain(t *testing.T) {
	bus := NewBus(8)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, Event{Type: EventTypeStream, Payload: StreamPayload{Text: "a", ExecutorID: "x", Seq: 0}}))
	require.NoError(t, bus.Publish(ctx, Event{Type: EventTypeStream, Payload: StreamPayload{Text: "b", ExecutorID: "x", Seq: 1}}))
	bus.Close()

	var types []string
	for {
		event, err := bus.Next(ctx)
		require.NoError(t, err)
		types = append(types, event.Type)
		if event.Type == EventTypeDone {
			break
		}
	}
	assert.Equal(t, []string{EventTypeStream, EventTypeStream, EventTypeDone}, types)
}

func TestBusPublishAfterClose(t *testing.T) {
	bus := NewBus(8)
	bus.Close()

	err := bus.Publish(context.Background(), Event{Type: EventTypeStream})
	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestBusCloseIdempotent(t *testing.T) {
	bus := NewBus(8)
	bus.Close()
	bus.Close()

	event, err := bus.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, EventTypeDone, event.Type)
}

func TestBusPublishBlocksUntilDrained(t *testing.T) {
	bus := NewBus(1)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, Event{Type: EventTypeStream, Payload: StreamPayload{Seq: 0}}))

	published := make(chan error, 1)
	go func() {
		published <- bus.Publish(ctx, Event{Type: EventTypeStream, Payload: StreamPayload{Seq: 1}})
	}()

	// Second publish is blocked on the full queue until the consumer drains.
	first, err := bus.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Payload.(StreamPayload).Seq)

	require.NoError(t, <-published)
	second, err := bus.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Payload.(StreamPayload).Seq)
}

func TestBusCloseDoesNotBlockOnFullQueue(t *testing.T) {
	bus := NewBus(2)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, Event{Type: EventTypeStream, Payload: StreamPayload{Seq: 0}}))
	require.NoError(t, bus.Publish(ctx, Event{Type: EventTypeStream, Payload: StreamPayload{Seq: 1}}))

	// Nobody is consuming (disconnected client); Close must still return.
	closed := make(chan struct{})
	go func() {
		bus.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked on a full queue with no consumer")
	}

	// The backlog is still drainable and terminates with done even though
	// the sentinel could not be enqueued.
	var types []string
	for {
		event, err := bus.Next(ctx)
		require.NoError(t, err)
		types = append(types, event.Type)
		if event.Type == EventTypeDone {
			break
		}
	}
	assert.Equal(t, []string{EventTypeStream, EventTypeStream, EventTypeDone}, types)
}

func TestBusPublishUnblocksOnClose(t *testing.T) {
	bus := NewBus(1)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, Event{Type: EventTypeStream, Payload: StreamPayload{Seq: 0}}))

	published := make(chan error, 1)
	go func() {
		published <- bus.Publish(ctx, Event{Type: EventTypeStream, Payload: StreamPayload{Seq: 1}})
	}()
	bus.Close()

	select {
	case err := <-published:
		assert.ErrorIs(t, err, ErrBusClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("publisher stayed blocked after Close")
	}
}

func TestAmbientBusOnContext(t *testing.T) {
	bus := NewBus(8)
	ctx := WithBus(context.Background(), bus)

	require.NoError(t, Publish(ctx, Event{Type: EventTypeThinking, Payload: ThinkingPayload{Type: ThinkingAgentInvoked, AgentName: "servicenow-agent"}}))

	event, err := bus.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, EventTypeThinking, event.Type)

	// Without a bus attached, publishing is a no-op.
	assert.NoError(t, Publish(context.Background(), Event{Type: EventTypeStream}))
}

func TestWriteSSE(t *testing.T) {
	var sb strings.Builder
	err := WriteSSE(&sb, Event{Type: EventTypeStream, Payload: StreamPayload{Text: "hi", ExecutorID: "summary_agent", Seq: 3}})
	require.NoError(t, err)

	assert.Equal(t, "event: stream\ndata: {\"text\":\"hi\",\"executor_id\":\"summary_agent\",\"seq\":3}\n\n", sb.String())
}
