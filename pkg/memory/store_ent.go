package memory

import (
	"context"
	"fmt"

	"github.com/stanley-ops/stanley/ent"
	"github.com/stanley-ops/stanley/ent/memoryrecord"
	"github.com/stanley-ops/stanley/pkg/models"
)

// EntStore persists memory records in Postgres.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates the durable memory record store.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// BeginSummary claims the conversation's summarization slot. The existence
// check and insert run in one transaction so two concurrent triggers cannot
// both claim it.
func (s *EntStore) BeginSummary(ctx context.Context, conversationID string, start, end int, baseMemoryID *int) (*models.MemoryRecord, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}
	rec, err := s.beginSummaryTx(ctx, tx, conversationID, start, end, baseMemoryID)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return nil, fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit memory insert: %w", err)
	}
	return rec, nil
}

func (s *EntStore) beginSummaryTx(ctx context.Context, tx *ent.Tx, conversationID string, start, end int, baseMemoryID *int) (*models.MemoryRecord, error) {
	pending, err := tx.MemoryRecord.Query().
		Where(
			memoryrecord.ConversationIDEQ(conversationID),
			memoryrecord.StatusEQ(memoryrecord.StatusProcessing),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending summarization: %w", err)
	}
	if pending {
		return nil, ErrProcessingExists
	}

	row, err := tx.MemoryRecord.Create().
		SetConversationID(conversationID).
		SetStartSequence(start).
		SetEndSequence(end).
		SetNillableBaseMemoryID(baseMemoryID).
		SetStatus(memoryrecord.StatusProcessing).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert memory record: %w", err)
	}
	rec := recordFromEnt(row)
	return &rec, nil
}

func (s *EntStore) LatestCompleted(ctx context.Context, conversationID string) (*models.MemoryRecord, error) {
	row, err := s.client.MemoryRecord.Query().
		Where(
			memoryrecord.ConversationIDEQ(conversationID),
			memoryrecord.StatusEQ(memoryrecord.StatusCompleted),
		).
		Order(ent.Desc(memoryrecord.FieldEndSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest memory: %w", err)
	}
	rec := recordFromEnt(row)
	return &rec, nil
}

func (s *EntStore) Complete(ctx context.Context, memoryID int, memoryText string, generationTimeMS int64) error {
	err := s.client.MemoryRecord.UpdateOneID(memoryID).
		SetStatus(memoryrecord.StatusCompleted).
		SetMemoryText(memoryText).
		SetGenerationTimeMs(generationTimeMS).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete memory record %d: %w", memoryID, err)
	}
	return nil
}

func (s *EntStore) Fail(ctx context.Context, memoryID int, generationTimeMS int64) error {
	err := s.client.MemoryRecord.UpdateOneID(memoryID).
		SetStatus(memoryrecord.StatusFailed).
		SetGenerationTimeMs(generationTimeMS).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark memory record %d failed: %w", memoryID, err)
	}
	return nil
}

func recordFromEnt(row *ent.MemoryRecord) models.MemoryRecord {
	return models.MemoryRecord{
		MemoryID:         row.ID,
		ConversationID:   row.ConversationID,
		MemoryText:       row.MemoryText,
		StartSequence:    row.StartSequence,
		EndSequence:      row.EndSequence,
		BaseMemoryID:     row.BaseMemoryID,
		Status:           models.MemoryStatus(row.Status),
		CreatedAt:        row.CreatedAt,
		GenerationTimeMS: row.GenerationTimeMs,
	}
}
