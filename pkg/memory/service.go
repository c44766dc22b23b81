package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/stanley-ops/stanley/pkg/agent"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/models"
	"github.com/stanley-ops/stanley/pkg/prompt"
)

// Defaults for the sliding window.
const (
	// DefaultRollingWindow is the number of messages a summary covers
	// (7 rounds).
	DefaultRollingWindow = 14
	// DefaultSummarizeAfterSeq is the minimum assistant sequence that
	// triggers summarization (end of round 3).
	DefaultSummarizeAfterSeq = 5
)

// MessageSource reads a conversation's ordered message list.
type MessageSource interface {
	Messages(ctx context.Context, conversationID string) ([]models.ChatMessage, error)
}

// Config parameterizes the memory service.
type Config struct {
	RollingWindow     int
	SummarizeAfterSeq int
	Model             string // summarization model, typically the cheap one
	LLMTimeout        time.Duration
}

// Service runs sliding-window summarization in the background and serves
// conversation context to new workflow runs.
type Service struct {
	store  Store
	msgs   MessageSource
	client llm.Client
	cfg    Config
	logger *slog.Logger

	wg sync.WaitGroup
}

// NewService creates the memory service.
func NewService(store Store, msgs MessageSource, client llm.Client, cfg Config) *Service {
	if cfg.RollingWindow <= 0 {
		cfg.RollingWindow = DefaultRollingWindow
	}
	if cfg.SummarizeAfterSeq <= 0 {
		cfg.SummarizeAfterSeq = DefaultSummarizeAfterSeq
	}
	return &Service{
		store:  store,
		msgs:   msgs,
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "memory"),
	}
}

// Trigger starts summarization after the assistant message at sequence s,
// if due. Returns the new record's memory id, or 0 when nothing was
// started. The summarization itself runs in the background and is not tied
// to the caller's context; a client disconnect does not cancel it.
func (s *Service) Trigger(ctx context.Context, conversationID string, seq int) (int, error) {
	if seq < s.cfg.SummarizeAfterSeq {
		return 0, nil
	}

	start, end := s.window(seq)
	base, err := s.store.LatestCompleted(ctx, conversationID)
	if err != nil {
		return 0, fmt.Errorf("failed to load latest memory: %w", err)
	}
	var baseID *int
	if base != nil {
		baseID = &base.MemoryID
	}

	rec, err := s.store.BeginSummary(ctx, conversationID, start, end, baseID)
	if errors.Is(err, ErrProcessingExists) {
		s.logger.DebugContext(ctx, "Summarization already pending",
			"conversation_id", conversationID,
			"end_sequence", seq)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.summarize(context.Background(), rec, base)
	}()
	return rec.MemoryID, nil
}

// Context returns what a new workflow run should know: the newest completed
// summary plus the messages it does not cover. The message list must end
// with the just-posted user message, which is always excluded from the gap.
// Memory read failures degrade to full history instead of failing the turn.
func (s *Service) Context(ctx context.Context, conversationID string, messages []models.ChatMessage) models.ConversationContext {
	gapEnd := len(messages) - 1 // exclude current user message
	if gapEnd < 0 {
		gapEnd = 0
	}

	latest, err := s.store.LatestCompleted(ctx, conversationID)
	if err != nil {
		s.logger.WarnContext(ctx, "Memory read failed, using full history",
			"conversation_id", conversationID,
			"error", err)
		latest = nil
	}
	if latest == nil {
		return models.ConversationContext{GapMessages: messages[:gapEnd]}
	}

	gapStart := latest.EndSequence + 1
	if gapStart > gapEnd {
		gapStart = gapEnd
	}
	return models.ConversationContext{
		MemoryText:  &latest.MemoryText,
		GapMessages: messages[gapStart:gapEnd],
	}
}

// Wait blocks until all background summarizations finish. Used during
// shutdown and in tests.
func (s *Service) Wait() {
	s.wg.Wait()
}

// window computes the record's coverage for an assistant message at seq:
// the last rolling_window messages, with start aligned upward to an even
// sequence so a round is never split.
func (s *Service) window(seq int) (start, end int) {
	end = seq
	start = seq - s.cfg.RollingWindow + 1
	if start < 0 {
		start = 0
	}
	if start%2 == 1 {
		start++
	}
	return start, end
}

func (s *Service) summarize(ctx context.Context, rec *models.MemoryRecord, base *models.MemoryRecord) {
	began := time.Now()

	text, err := s.generateSummary(ctx, rec, base)
	elapsed := time.Since(began).Milliseconds()
	if err != nil {
		s.logger.ErrorContext(ctx, "Summarization failed",
			"conversation_id", rec.ConversationID,
			"memory_id", rec.MemoryID,
			"error", err)
		if ferr := s.store.Fail(ctx, rec.MemoryID, elapsed); ferr != nil {
			s.logger.ErrorContext(ctx, "Failed to mark memory record failed",
				"memory_id", rec.MemoryID,
				"error", ferr)
		}
		return
	}

	if err := s.store.Complete(ctx, rec.MemoryID, text, elapsed); err != nil {
		s.logger.ErrorContext(ctx, "Failed to store completed memory",
			"memory_id", rec.MemoryID,
			"error", err)
		return
	}
	s.logger.InfoContext(ctx, "Memory summarized",
		"conversation_id", rec.ConversationID,
		"memory_id", rec.MemoryID,
		"start_sequence", rec.StartSequence,
		"end_sequence", rec.EndSequence,
		"generation_time_ms", elapsed)
}

func (s *Service) generateSummary(ctx context.Context, rec *models.MemoryRecord, base *models.MemoryRecord) (string, error) {
	all, err := s.msgs.Messages(ctx, rec.ConversationID)
	if err != nil {
		return "", fmt.Errorf("failed to read messages: %w", err)
	}

	from := rec.StartSequence
	if base != nil {
		from = base.EndSequence + 1
	}
	slice := messagesInRange(all, from, rec.EndSequence)
	if len(slice) == 0 {
		return "", fmt.Errorf("no messages in range [%d..%d]", from, rec.EndSequence)
	}

	var userPrompt string
	if base != nil {
		userPrompt = prompt.MemoryIncrementalPrompt(base.MemoryText, conversationText(slice), rec.StartSequence)
	} else {
		userPrompt = prompt.MemoryInitialPrompt(conversationText(slice))
	}

	summarizer := agent.New(agent.Config{
		Name:         "memory-agent",
		Instructions: prompt.MemorySummaryInstructions(),
		Model:        s.cfg.Model,
		Client:       s.client,
		LLMTimeout:   s.cfg.LLMTimeout,
	})
	resp, err := summarizer.Run(ctx, []llm.Message{{Role: llm.RoleUser, Content: userPrompt}})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func messagesInRange(msgs []models.ChatMessage, from, to int) []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(msgs))
	for _, msg := range msgs {
		if msg.SequenceNumber >= from && msg.SequenceNumber <= to {
			out = append(out, msg)
		}
	}
	return out
}

func conversationText(msgs []models.ChatMessage) string {
	turns := make([]llm.Message, len(msgs))
	for i, msg := range msgs {
		turns[i] = llm.Message{Role: string(msg.Role), Content: msg.Content}
	}
	return prompt.ConversationHistory(turns)
}
