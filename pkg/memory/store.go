// Package memory implements the sliding-window conversation summarizer:
// a background job that compresses old rounds into a rolling summary with
// a version chain, plus the graceful-degradation read path.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/stanley-ops/stanley/pkg/models"
)

// ErrProcessingExists is returned by BeginSummary when a processing record
// already holds the conversation's summarization slot.
var ErrProcessingExists = errors.New("summarization already in progress")

// Store persists memory records. One summarization at a time per
// conversation is enforced at insert time, inside a transaction for the
// durable backend.
type Store interface {
	// BeginSummary inserts a processing record for the window, or returns
	// ErrProcessingExists when one is already pending.
	BeginSummary(ctx context.Context, conversationID string, start, end int, baseMemoryID *int) (*models.MemoryRecord, error)
	// LatestCompleted returns the completed record with the highest
	// end_sequence, or nil when the conversation has none.
	LatestCompleted(ctx context.Context, conversationID string) (*models.MemoryRecord, error)
	Complete(ctx context.Context, memoryID int, memoryText string, generationTimeMS int64) error
	Fail(ctx context.Context, memoryID int, generationTimeMS int64) error
}

// LocalStore keeps memory records in process memory. Backs the local chat
// history mode and tests.
type LocalStore struct {
	mu      sync.Mutex
	nextID  int
	records map[int]*models.MemoryRecord
}

// NewLocalStore creates an empty in-memory record store.
func NewLocalStore() *LocalStore {
	return &LocalStore{nextID: 1, records: map[int]*models.MemoryRecord{}}
}

func (s *LocalStore) BeginSummary(ctx context.Context, conversationID string, start, end int, baseMemoryID *int) (*models.MemoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ConversationID == conversationID && rec.Status == models.MemoryProcessing {
			return nil, ErrProcessingExists
		}
	}
	rec := &models.MemoryRecord{
		MemoryID:       s.nextID,
		ConversationID: conversationID,
		StartSequence:  start,
		EndSequence:    end,
		BaseMemoryID:   baseMemoryID,
		Status:         models.MemoryProcessing,
		CreatedAt:      time.Now().UTC(),
	}
	s.nextID++
	s.records[rec.MemoryID] = rec
	out := *rec
	return &out, nil
}

func (s *LocalStore) LatestCompleted(ctx context.Context, conversationID string) (*models.MemoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var completed []*models.MemoryRecord
	for _, rec := range s.records {
		if rec.ConversationID == conversationID && rec.Status == models.MemoryCompleted {
			completed = append(completed, rec)
		}
	}
	if len(completed) == 0 {
		return nil, nil
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].EndSequence > completed[j].EndSequence
	})
	out := *completed[0]
	return &out, nil
}

func (s *LocalStore) Complete(ctx context.Context, memoryID int, memoryText string, generationTimeMS int64) error {
	return s.finish(memoryID, models.MemoryCompleted, memoryText, generationTimeMS)
}

func (s *LocalStore) Fail(ctx context.Context, memoryID int, generationTimeMS int64) error {
	return s.finish(memoryID, models.MemoryFailed, "", generationTimeMS)
}

func (s *LocalStore) finish(memoryID int, status models.MemoryStatus, text string, generationTimeMS int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[memoryID]
	if !ok {
		return errors.New("memory record not found")
	}
	rec.Status = status
	rec.MemoryText = text
	rec.GenerationTimeMS = &generationTimeMS
	return nil
}

// Records returns all records for a conversation ordered by memory_id.
// Test helper.
func (s *LocalStore) Records(conversationID string) []models.MemoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.MemoryRecord
	for _, rec := range s.records {
		if rec.ConversationID == conversationID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemoryID < out[j].MemoryID })
	return out
}
