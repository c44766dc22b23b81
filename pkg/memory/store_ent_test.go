package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/models"
	testdb "github.com/stanley-ops/stanley/test/database"
)

func newEntStoreWithConversation(t *testing.T) (*EntStore, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	const convID = "memconv1"
	err := client.Conversation.Create().
		SetID(convID).
		SetUserClientID("memory-test-user").
		SetTitle("New chat").
		SetModel("gpt-4.1").
		Exec(context.Background())
	require.NoError(t, err)
	return NewEntStore(client.Client), convID
}

func TestEntStore_BeginSummaryClaimsSlot(t *testing.T) {
	store, convID := newEntStoreWithConversation(t)
	ctx := context.Background()

	rec, err := store.BeginSummary(ctx, convID, 0, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MemoryProcessing, rec.Status)
	assert.Equal(t, 0, rec.StartSequence)
	assert.Equal(t, 5, rec.EndSequence)
	assert.Nil(t, rec.BaseMemoryID)

	// Second claim is rejected while the first is processing
	_, err = store.BeginSummary(ctx, convID, 0, 7, nil)
	assert.ErrorIs(t, err, ErrProcessingExists)
}

func TestEntStore_CompleteReleasesSlot(t *testing.T) {
	store, convID := newEntStoreWithConversation(t)
	ctx := context.Background()

	rec, err := store.BeginSummary(ctx, convID, 0, 5, nil)
	require.NoError(t, err)
	require.NoError(t, store.Complete(ctx, rec.MemoryID, "summary of rounds 0-2", 420))

	latest, err := store.LatestCompleted(ctx, convID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "summary of rounds 0-2", latest.MemoryText)
	assert.Equal(t, 5, latest.EndSequence)
	require.NotNil(t, latest.GenerationTimeMS)
	assert.Equal(t, int64(420), *latest.GenerationTimeMS)

	// Slot is free again; the next record chains on the completed one
	next, err := store.BeginSummary(ctx, convID, 0, 7, &latest.MemoryID)
	require.NoError(t, err)
	require.NotNil(t, next.BaseMemoryID)
	assert.Equal(t, latest.MemoryID, *next.BaseMemoryID)
	assert.Greater(t, next.MemoryID, latest.MemoryID)
}

func TestEntStore_FailedRecordDoesNotServeReads(t *testing.T) {
	store, convID := newEntStoreWithConversation(t)
	ctx := context.Background()

	rec, err := store.BeginSummary(ctx, convID, 0, 5, nil)
	require.NoError(t, err)
	require.NoError(t, store.Fail(ctx, rec.MemoryID, 99))

	latest, err := store.LatestCompleted(ctx, convID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	// A failed record does not hold the slot either
	_, err = store.BeginSummary(ctx, convID, 0, 5, nil)
	require.NoError(t, err)
}

func TestEntStore_LatestCompletedPicksWidestWindow(t *testing.T) {
	store, convID := newEntStoreWithConversation(t)
	ctx := context.Background()

	first, err := store.BeginSummary(ctx, convID, 0, 5, nil)
	require.NoError(t, err)
	require.NoError(t, store.Complete(ctx, first.MemoryID, "first", 10))

	second, err := store.BeginSummary(ctx, convID, 0, 9, &first.MemoryID)
	require.NoError(t, err)
	require.NoError(t, store.Complete(ctx, second.MemoryID, "second", 10))

	latest, err := store.LatestCompleted(ctx, convID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 9, latest.EndSequence)
	assert.Equal(t, "second", latest.MemoryText)

	// Unrelated conversations see nothing
	latest, err = store.LatestCompleted(ctx, "otherconv")
	require.NoError(t, err)
	assert.Nil(t, latest)
}
