package events

import (
	"time"

	"github.com/stanley-ops/stanley/pkg/models"
)

// MessagePayload is the payload for "message" events: the echoed user
// message at the start of a turn and the final assistant message at the end.
type MessagePayload struct {
	Type           string `json:"type"` // MessageUser or MessageAssistant
	Content        string `json:"content"`
	SequenceNumber int    `json:"sequence_number"`
	Timestamp      string `json:"timestamp"`       // RFC3339Nano
	Title          string `json:"title,omitempty"` // set when the turn renamed the conversation
}

// ThinkingPayload is the payload for "thinking" events: agent lifecycle and
// tool call boundaries emitted by the observability middleware.
type ThinkingPayload struct {
	Type            string         `json:"type"` // agent_invoked, agent_finished, function_start, function_end
	AgentName       string         `json:"agent_name,omitempty"`
	Function        string         `json:"function,omitempty"`
	Arguments       map[string]any `json:"arguments,omitempty"`
	Result          string         `json:"result,omitempty"` // only when SHOW_FUNC_RESULT is enabled
	Output          string         `json:"output,omitempty"` // agent_finished for orchestration agents
	Model           string         `json:"model,omitempty"`  // agent_finished only
	Usage           *models.Usage  `json:"usage,omitempty"`  // agent_finished only
	ExecutionTimeMS int64          `json:"execution_time_ms,omitempty"`
	Timestamp       string         `json:"timestamp"` // RFC3339Nano
}

// StreamPayload is the payload for "stream" events: one text delta.
// Seq increases monotonically per executor so clients can detect gaps.
type StreamPayload struct {
	Text       string `json:"text"`
	ExecutorID string `json:"executor_id"`
	Seq        int    `json:"seq"`
}

// DonePayload is the payload for the terminal "done" event.
type DonePayload struct{}

// Now returns the current time in the wire timestamp format.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
