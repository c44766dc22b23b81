// Package orchestrator glues one chat turn together: it persists the user
// message, assembles workflow input from memory context, runs the selected
// workflow in the background, multiplexes bus events to the client, and
// persists the outcome.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/events"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/memory"
	"github.com/stanley-ops/stanley/pkg/middleware"
	"github.com/stanley-ops/stanley/pkg/models"
	"github.com/stanley-ops/stanley/pkg/services"
	"github.com/stanley-ops/stanley/pkg/tools"
	"github.com/stanley-ops/stanley/pkg/workflow"
	"github.com/stanley-ops/stanley/pkg/workflows"
)

// failureText is persisted as the assistant answer when a workflow run
// fails for any reason.
const failureText = "An error occurred while processing your request. Please try again."

// SendRequest is the body of a send-message call.
type SendRequest struct {
	Message string `json:"message"`

	// ReactMode selects the planning workflow (true) or the triage
	// workflow (false). Nil falls back to the process default.
	ReactMode *bool `json:"react_mode,omitempty"`

	// WorkflowModel overrides the conversation's model for this turn.
	WorkflowModel string `json:"workflow_model,omitempty"`

	// AgentModelMapping overrides per-agent models for this turn, layered
	// over the conversation's stored overrides.
	AgentModelMapping map[string]string `json:"agent_model_mapping,omitempty"`

	// MemoryEnabled turns the memory context and trigger off for this
	// turn. Nil means enabled.
	MemoryEnabled *bool `json:"memory_enabled,omitempty"`
}

// EmitFunc delivers one event to the client. A returned error means the
// client is gone and the turn should be cancelled.
type EmitFunc func(events.Event) error

// Config wires the orchestrator's collaborators.
type Config struct {
	Conversations *services.ConversationService
	Memory        *memory.Service
	Client        llm.Client
	Agents        *config.SubAgentRegistry
	Tools         *tools.Registry
	Pool          *tools.Pool
	Masker        tools.ResultMasker
	Settings      config.Settings
}

// Orchestrator runs chat turns.
type Orchestrator struct {
	convs    *services.ConversationService
	memory   *memory.Service
	client   llm.Client
	agents   *config.SubAgentRegistry
	tools    *tools.Registry
	pool     *tools.Pool
	masker   tools.ResultMasker
	settings config.Settings
	logger   *slog.Logger
}

// New creates the message orchestrator.
func New(cfg Config) *Orchestrator {
	return &Orchestrator{
		convs:    cfg.Conversations,
		memory:   cfg.Memory,
		client:   cfg.Client,
		agents:   cfg.Agents,
		tools:    cfg.Tools,
		pool:     cfg.Pool,
		masker:   cfg.Masker,
		settings: cfg.Settings,
		logger:   slog.Default().With("component", "orchestrator"),
	}
}

// HandleMessage processes one user turn, emitting bus events through emit
// until the terminal done event. Returns validation and not-found errors
// before any event is emitted; once streaming starts, failures surface as
// the persisted failure answer instead.
func (o *Orchestrator) HandleMessage(ctx context.Context, userID, conversationID string, req SendRequest, emit EmitFunc) error {
	if strings.TrimSpace(req.Message) == "" {
		return services.NewValidationError("message must not be empty")
	}

	meta, err := o.convs.GetMeta(ctx, userID, conversationID)
	if err != nil {
		return err
	}

	userMsg, err := o.convs.AppendMessage(ctx, userID, conversationID, models.RoleUser, req.Message)
	if err != nil {
		return err
	}

	memoryEnabled := req.MemoryEnabled == nil || *req.MemoryEnabled
	input, err := o.buildInput(ctx, userID, conversationID, memoryEnabled)
	if err != nil {
		return err
	}

	wf, err := o.buildWorkflow(meta, req)
	if err != nil {
		return err
	}

	bus := events.NewBus(o.settings.EventBusCapacity)
	busCtx := events.WithBus(ctx, bus)
	if err := bus.Publish(busCtx, events.Event{
		Type: events.EventTypeMessage,
		Payload: events.MessagePayload{
			Type:           events.MessageUser,
			Content:        userMsg.Content,
			SequenceNumber: userMsg.SequenceNumber,
			Timestamp:      userMsg.Timestamp.UTC().Format(time.RFC3339Nano),
		},
	}); err != nil {
		return err
	}

	wfCtx, cancel := context.WithTimeout(busCtx, o.settings.WorkflowTimeout)
	defer cancel()
	go o.runWorkflow(wfCtx, bus, wf, input, turnState{
		userID:         userID,
		conversationID: conversationID,
		userMessage:    userMsg,
		memoryEnabled:  memoryEnabled,
	})

	return o.drain(ctx, bus, cancel, emit)
}

// turnState is what the workflow goroutine needs to finish the turn.
type turnState struct {
	userID         string
	conversationID string
	userMessage    *models.ChatMessage
	memoryEnabled  bool
}

// buildInput assembles the workflow input: memory summary prepended to the
// first included message, then the gap messages, then the current one.
func (o *Orchestrator) buildInput(ctx context.Context, userID, conversationID string, memoryEnabled bool) (workflows.Input, error) {
	all, err := o.convs.Messages(ctx, userID, conversationID)
	if err != nil {
		return workflows.Input{}, err
	}
	if len(all) == 0 {
		return workflows.Input{}, services.NewValidationError("conversation has no messages")
	}
	current := all[len(all)-1]

	var memText *string
	gap := all[:len(all)-1]
	if o.memory != nil && memoryEnabled {
		cc := o.memory.Context(ctx, conversationID, all)
		memText = cc.MemoryText
		gap = cc.GapMessages
	}

	msgs := make([]llm.Message, 0, len(gap)+1)
	for _, m := range gap {
		msgs = append(msgs, llm.Message{Role: string(m.Role), Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: current.Content})
	if memText != nil && *memText != "" {
		msgs[0].Content = "Previous conversation summary:\n" + *memText + "\n\n" + msgs[0].Content
	}
	return workflows.Input{Messages: msgs}, nil
}

func (o *Orchestrator) buildWorkflow(meta *models.ConversationMeta, req SendRequest) (*workflow.Workflow, error) {
	// ReactMode selects the planning workflow; off means triage.
	reactMode := o.settings.DynamicPlan
	if req.ReactMode != nil {
		reactMode = *req.ReactMode
	}

	conversationModel := meta.Model
	if req.WorkflowModel != "" {
		conversationModel = req.WorkflowModel
	}
	overrides := map[string]string{}
	for k, v := range meta.AgentLevelLLMOverwrite {
		overrides[k] = v
	}
	for k, v := range req.AgentModelMapping {
		overrides[k] = v
	}

	cfg := workflows.Config{
		Client:            o.client,
		Registry:          o.agents,
		Tools:             o.tools,
		Pool:              o.pool,
		Masker:            o.masker,
		Obs:               &middleware.Observability{ShowFuncResult: o.settings.ShowFuncResult},
		DefaultModel:      o.settings.DefaultModel,
		ConversationModel: conversationModel,
		AgentOverrides:    overrides,
		LLMTimeout:        o.settings.LLMTimeout,
		ToolTimeout:       o.settings.ToolTimeout,
		ToolCallBudget:    o.settings.ToolCallBudget,
		MaxIterations:     o.settings.MaxIterations,
	}
	if reactMode {
		return workflows.NewDynamic(cfg)
	}
	return workflows.NewTriage(cfg)
}

// runWorkflow consumes the engine stream, translates it to bus events,
// persists the outcome and closes the bus.
func (o *Orchestrator) runWorkflow(ctx context.Context, bus *events.Bus, wf *workflow.Workflow, input workflows.Input, turn turnState) {
	defer bus.Close()

	var output string
	var runErr error
	for ev := range wf.RunStream(ctx, input) {
		switch ev.Kind {
		case workflow.KindAgentRunUpdate:
			if !wf.IsStreaming(ev.ExecutorID) {
				continue
			}
			err := bus.Publish(ctx, events.Event{
				Type: events.EventTypeStream,
				Payload: events.StreamPayload{
					Text:       ev.Delta,
					ExecutorID: ev.ExecutorID,
					Seq:        ev.Seq,
				},
			})
			if err != nil {
				o.logger.DebugContext(ctx, "Stream event dropped", "error", err)
			}
		case workflow.KindWorkflowOutput:
			output = ev.Output
		case workflow.KindWorkflowFailed:
			runErr = ev.Err
		default:
			// Executor lifecycle; thinking events arrive via middleware.
		}
	}
	if runErr == nil && ctx.Err() != nil {
		runErr = ctx.Err()
	}

	// A cancelled context means the client is gone, whatever error the run
	// surfaced on the way down; a workflow timeout is DeadlineExceeded and
	// still produces the failure answer.
	if errors.Is(runErr, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		o.logger.InfoContext(ctx, "Turn cancelled",
			"conversation_id", turn.conversationID)
		return
	}
	if runErr != nil {
		o.logger.ErrorContext(ctx, "Workflow failed",
			"workflow", wf.Name(),
			"conversation_id", turn.conversationID,
			"error", runErr)
		output = failureText
	} else if output == "" {
		o.logger.WarnContext(ctx, "Workflow produced no output",
			"workflow", wf.Name(),
			"conversation_id", turn.conversationID)
		output = failureText
	}

	o.finishTurn(ctx, bus, turn, output)
}

// finishTurn persists the assistant answer, derives the title on the first
// round, emits the assistant_message event and fires the memory trigger.
// Persistence uses a fresh context: the answer must land even when the
// client already disconnected mid-stream.
func (o *Orchestrator) finishTurn(ctx context.Context, bus *events.Bus, turn turnState, output string) {
	persistCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	assistantMsg, err := o.convs.AppendMessage(persistCtx, turn.userID, turn.conversationID, models.RoleAssistant, output)
	if err != nil {
		o.logger.ErrorContext(ctx, "Failed to persist assistant message",
			"conversation_id", turn.conversationID,
			"error", err)
		return
	}

	var title string
	if turn.userMessage.SequenceNumber == 0 {
		title = o.convs.MaybeDeriveTitle(persistCtx, turn.userID, turn.conversationID, turn.userMessage.Content)
	}

	if err := bus.Publish(persistCtx, events.Event{
		Type: events.EventTypeMessage,
		Payload: events.MessagePayload{
			Type:           events.MessageAssistant,
			Content:        assistantMsg.Content,
			SequenceNumber: assistantMsg.SequenceNumber,
			Timestamp:      assistantMsg.Timestamp.UTC().Format(time.RFC3339Nano),
			Title:          title,
		},
	}); err != nil {
		o.logger.DebugContext(ctx, "Assistant message event dropped", "error", err)
	}

	if o.memory != nil && turn.memoryEnabled {
		if _, err := o.memory.Trigger(persistCtx, turn.conversationID, assistantMsg.SequenceNumber); err != nil {
			o.logger.WarnContext(ctx, "Memory trigger failed",
				"conversation_id", turn.conversationID,
				"error", err)
		}
	}
}

// drain forwards bus events to the client until done or disconnect.
func (o *Orchestrator) drain(ctx context.Context, bus *events.Bus, cancelWorkflow context.CancelFunc, emit EmitFunc) error {
	for {
		ev, err := bus.Next(ctx)
		if err != nil {
			// Client disconnected; stop the workflow and drop the bus.
			cancelWorkflow()
			bus.Close()
			return fmt.Errorf("client disconnected: %w", err)
		}
		if err := emit(ev); err != nil {
			cancelWorkflow()
			bus.Close()
			return fmt.Errorf("client write failed: %w", err)
		}
		if ev.Type == events.EventTypeDone {
			return nil
		}
	}
}
