package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/events"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/memory"
	"github.com/stanley-ops/stanley/pkg/models"
	"github.com/stanley-ops/stanley/pkg/services"
	"github.com/stanley-ops/stanley/pkg/tools"
)

// Route keys: distinctive fragments of each agent's system prompt.
const (
	routeTriage     = "triage agent"
	routeSummary    = "senior operations analyst"
	routeServiceNow = "ServiceNow specialist"
	routeMemory     = "conversation summarization assistant"
)

const triageToServiceNow = `{"should_reject": false, "reject_reason": "", "tasks": [{"agent": "servicenow", "question": "Look up incident INC123"}]}`

type harness struct {
	orch   *Orchestrator
	convs  *services.ConversationService
	memory *memory.Service
	client *llm.ScriptedClient
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	client := llm.NewScriptedClient()

	convStore := services.NewLocalStore()
	convs := services.NewConversationService(convStore, config.NewModelRegistry(), 7)
	memSvc := memory.NewService(memory.NewLocalStore(), convStore, client, memory.Config{
		Model: config.ModelGPT41Mini,
	})

	registry := tools.NewRegistry()
	tools.RegisterBuiltinTools(registry)
	pool := tools.NewPool(4)
	t.Cleanup(pool.Stop)

	settings := config.Settings{
		DefaultModel:     config.ModelGPT41,
		ChatHistoryMode:  config.HistoryModeLocal,
		MaxIterations:    10,
		ToolCallBudget:   8,
		EventBusCapacity: 64,
		LLMTimeout:       5 * time.Second,
		ToolTimeout:      5 * time.Second,
		WorkflowTimeout:  10 * time.Second,
	}

	orch := New(Config{
		Conversations: convs,
		Memory:        memSvc,
		Client:        client,
		Agents:        config.NewSubAgentRegistry(),
		Tools:         registry,
		Pool:          pool,
		Settings:      settings,
	})
	return &harness{orch: orch, convs: convs, memory: memSvc, client: client}
}

func (h *harness) newConversation(t *testing.T) string {
	t.Helper()
	meta, err := h.convs.CreateConversation(context.Background(), "alice", "", config.ModelGPT41)
	require.NoError(t, err)
	return meta.ConversationID
}

// collect runs one turn and gathers everything emitted.
func collect(t *testing.T, h *harness, conversationID string, req Request) []events.Event {
	t.Helper()
	var got []events.Event
	err := h.orch.HandleMessage(context.Background(), "alice", conversationID, req.send, func(ev events.Event) error {
		got = append(got, ev)
		return nil
	})
	if req.wantErr {
		require.Error(t, err)
	} else {
		require.NoError(t, err)
	}
	return got
}

type Request struct {
	send    SendRequest
	wantErr bool
}

func scriptHappyTurn(client *llm.ScriptedClient, answer string) {
	client.AddRouted(routeTriage, llm.ScriptEntry{Text: triageToServiceNow})
	client.AddRouted(routeServiceNow, llm.ScriptEntry{Text: "INC123 is resolved."})
	client.AddRouted(routeSummary, llm.ScriptEntry{Text: answer})
}

func reactMode(v bool) *bool { return &v }

func TestHandleMessage_HappyTurn(t *testing.T) {
	h := newHarness(t)
	convID := h.newConversation(t)
	scriptHappyTurn(h.client, "INC123 is resolved, closed yesterday.")

	got := collect(t, h, convID, Request{send: SendRequest{
		Message:   "What's the status of INC123?",
		ReactMode: reactMode(false),
	}})

	require.NotEmpty(t, got)
	first, ok := got[0].Payload.(events.MessagePayload)
	require.True(t, ok)
	assert.Equal(t, events.MessageUser, first.Type)
	assert.Equal(t, 0, first.SequenceNumber)

	last := got[len(got)-1]
	assert.Equal(t, events.EventTypeDone, last.Type)

	assistant, ok := got[len(got)-2].Payload.(events.MessagePayload)
	require.True(t, ok)
	assert.Equal(t, events.MessageAssistant, assistant.Type)
	assert.Equal(t, 1, assistant.SequenceNumber)
	assert.Equal(t, "INC123 is resolved, closed yesterday.", assistant.Content)
	assert.Equal(t, "What's the status of INC123?", assistant.Title)

	// Stream events surface only from the streaming summary executor.
	var streamed string
	for _, ev := range got {
		if ev.Type == events.EventTypeStream {
			streamed += ev.Payload.(events.StreamPayload).Text
		}
	}
	assert.Equal(t, "INC123 is resolved, closed yesterday.", streamed)

	// Both rounds are persisted.
	msgs, err := h.convs.Messages(context.Background(), "alice", convID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
}

func TestHandleMessage_ThinkingEventsCarryAgentLifecycle(t *testing.T) {
	h := newHarness(t)
	convID := h.newConversation(t)
	scriptHappyTurn(h.client, "done")

	got := collect(t, h, convID, Request{send: SendRequest{
		Message:   "status of INC123",
		ReactMode: reactMode(false),
	}})

	var invoked, finished int
	for _, ev := range got {
		if ev.Type != events.EventTypeThinking {
			continue
		}
		payload := ev.Payload.(events.ThinkingPayload)
		switch payload.Type {
		case events.ThinkingAgentInvoked:
			invoked++
		case events.ThinkingAgentFinished:
			finished++
		}
	}
	assert.Equal(t, invoked, finished)
	assert.GreaterOrEqual(t, invoked, 3) // triage, servicenow, summary
}

func TestHandleMessage_WorkflowFailurePersistsFallbackAnswer(t *testing.T) {
	h := newHarness(t)
	convID := h.newConversation(t)
	// Triage succeeds; the sub-agent errors, which fails the workflow.
	h.client.AddRouted(routeTriage, llm.ScriptEntry{Text: triageToServiceNow})
	h.client.AddRouted(routeServiceNow, llm.ScriptEntry{Error: fmt.Errorf("model unavailable")})

	got := collect(t, h, convID, Request{send: SendRequest{
		Message:   "status of INC123",
		ReactMode: reactMode(false),
	}})

	assistant, ok := got[len(got)-2].Payload.(events.MessagePayload)
	require.True(t, ok)
	assert.Equal(t, failureText, assistant.Content)

	msgs, err := h.convs.Messages(context.Background(), "alice", convID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, failureText, msgs[1].Content)
}

func TestHandleMessage_ClientDisconnectAbandonsTurn(t *testing.T) {
	h := newHarness(t)
	convID := h.newConversation(t)

	h.client.AddRouted(routeTriage, llm.ScriptEntry{Text: triageToServiceNow})
	h.client.AddRouted(routeServiceNow, llm.ScriptEntry{Text: "INC123 is resolved."})
	// The summary streams one delta, then hangs until the turn is cancelled.
	h.client.AddRouted(routeSummary, llm.ScriptEntry{
		Chunks:              []llm.Chunk{&llm.TextChunk{Content: "INC123 "}},
		BlockUntilCancelled: true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []events.Event
	err := h.orch.HandleMessage(ctx, "alice", convID, SendRequest{
		Message:   "status of INC123",
		ReactMode: reactMode(false),
	}, func(ev events.Event) error {
		got = append(got, ev)
		if ev.Type == events.EventTypeStream {
			// Client walks away mid-stream.
			cancel()
		}
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// No done and no assistant message reached the wire.
	for _, ev := range got {
		assert.NotEqual(t, events.EventTypeDone, ev.Type)
		if payload, ok := ev.Payload.(events.MessagePayload); ok {
			assert.Equal(t, events.MessageUser, payload.Type)
		}
	}

	// The abandoned turn keeps only the user message; give the cancelled
	// workflow goroutine time to finish before checking.
	time.Sleep(200 * time.Millisecond)
	msgs, err := h.convs.Messages(context.Background(), "alice", convID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
}

func TestHandleMessage_ValidatesBeforeStreaming(t *testing.T) {
	h := newHarness(t)
	convID := h.newConversation(t)

	err := h.orch.HandleMessage(context.Background(), "alice", convID, SendRequest{Message: "   "}, func(events.Event) error {
		t.Fatal("no event expected")
		return nil
	})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	err = h.orch.HandleMessage(context.Background(), "alice", "nope", SendRequest{Message: "hi"}, func(events.Event) error {
		t.Fatal("no event expected")
		return nil
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestHandleMessage_TriggersMemoryAfterThreshold(t *testing.T) {
	h := newHarness(t)
	convID := h.newConversation(t)

	// All routes up front: the memory agent runs on a background goroutine.
	h.client.AddRouted(routeMemory, llm.ScriptEntry{Text: "memory of rounds 0-2"})
	for round := 0; round < 4; round++ {
		scriptHappyTurn(h.client, fmt.Sprintf("answer %d", round))
	}

	// Round 3 ends at sequence 5, the summarization threshold.
	for round := 0; round < 3; round++ {
		collect(t, h, convID, Request{send: SendRequest{
			Message:   fmt.Sprintf("question %d", round),
			ReactMode: reactMode(false),
		}})
	}
	h.memory.Wait()

	// The next turn sees the completed summary prepended to its input.
	collect(t, h, convID, Request{send: SendRequest{
		Message:   "question 3",
		ReactMode: reactMode(false),
	}})

	var triageInput *llm.GenerateInput
	for _, input := range h.client.CapturedInputs() {
		for _, msg := range input.Messages {
			if msg.Role == llm.RoleSystem && strings.Contains(msg.Content, routeTriage) {
				triageInput = input
			}
		}
	}
	require.NotNil(t, triageInput)
	lastTriage := triageInput.Messages[1].Content
	assert.Contains(t, lastTriage, "Previous conversation summary:\nmemory of rounds 0-2")
}
