// Package events provides the per-request event bus that carries workflow
// progress from executors and middleware to the message orchestrator, which
// serializes it to the client as server-sent events.
//
// One bus exists per chat request. Producers (executors, agent middleware)
// publish through an ambient handle carried on the request context, so deep
// call sites emit without threading the bus as a parameter. Exactly one
// consumer drains the bus: the orchestrator goroutine owning the HTTP
// response. The producer side closes the bus when the workflow finishes,
// which enqueues a terminal done event; publishes after close are rejected
// with ErrBusClosed.
package events

// Event types as they appear on the SSE wire.
const (
	// EventTypeMessage carries a persisted user or assistant message.
	EventTypeMessage = "message"

	// EventTypeThinking carries orchestration progress: agent lifecycle
	// and tool call boundaries.
	EventTypeThinking = "thinking"

	// EventTypeStream carries one incremental text chunk of the answer.
	EventTypeStream = "stream"

	// EventTypeDone terminates the stream. Always the last event.
	EventTypeDone = "done"
)

// Thinking payload subtypes (ThinkingPayload.Type).
const (
	ThinkingAgentInvoked  = "agent_invoked"
	ThinkingAgentFinished = "agent_finished"
	ThinkingFunctionStart = "function_start"
	ThinkingFunctionEnd   = "function_end"
)

// Message payload subtypes (MessagePayload.Type).
const (
	MessageUser      = "user"
	MessageAssistant = "assistant"
)

// Event is one item on the bus.
type Event struct {
	Type    string
	Payload any
}
