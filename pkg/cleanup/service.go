// Package cleanup provides data retention for conversation storage.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/stanley-ops/stanley/ent"
	"github.com/stanley-ops/stanley/ent/conversation"
	"github.com/stanley-ops/stanley/ent/memoryrecord"
)

// staleProcessingAfter bounds how long a summarization run may hold the
// per-conversation processing slot. A run abandoned by a crashed process
// is marked failed so the next trigger can claim the slot again.
const staleProcessingAfter = 30 * time.Minute

// Config controls the retention loop.
type Config struct {
	// ConversationRetention is how long an untouched conversation is kept.
	ConversationRetention time.Duration
	// Interval is how often the loop runs.
	Interval time.Duration
}

// Service periodically enforces retention policies:
//   - Deletes conversations untouched past the retention window
//     (messages and memory records cascade with them)
//   - Fails memory summarization records stuck in processing
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config Config
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg Config, client *ent.Client) *Service {
	if cfg.ConversationRetention <= 0 {
		cfg.ConversationRetention = 90 * 24 * time.Hour
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"conversation_retention", s.config.ConversationRetention,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteExpiredConversations(ctx)
	s.failStaleSummaries(ctx)
}

// deleteExpiredConversations removes conversations whose last_modified is
// past the retention window. Cached copies are not touched; they expire on
// their own TTL, which is far shorter than the retention window.
func (s *Service) deleteExpiredConversations(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.ConversationRetention)
	count, err := s.client.Conversation.Delete().
		Where(conversation.LastModifiedLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: conversation delete failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired conversations", "count", count)
	}
}

// failStaleSummaries releases processing slots held by summarization runs
// that never completed, so a crashed process cannot wedge a conversation's
// memory forever.
func (s *Service) failStaleSummaries(ctx context.Context) {
	cutoff := time.Now().Add(-staleProcessingAfter)
	count, err := s.client.MemoryRecord.Update().
		Where(
			memoryrecord.StatusEQ(memoryrecord.StatusProcessing),
			memoryrecord.CreatedAtLT(cutoff),
		).
		SetStatus(memoryrecord.StatusFailed).
		Save(ctx)
	if err != nil {
		slog.Error("Retention: stale summary cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Warn("Retention: failed stale summarization records", "count", count)
	}
}
