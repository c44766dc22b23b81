package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/models"
	testdb "github.com/stanley-ops/stanley/test/database"
)

func newEntStore(t *testing.T) *EntStore {
	t.Helper()
	return NewEntStore(testdb.NewTestClient(t).Client)
}

func seedConversation(t *testing.T, store *EntStore, userID, convID string) *models.ConversationMeta {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	meta := &models.ConversationMeta{
		ConversationID: convID,
		UserClientID:   userID,
		Title:          "New chat",
		Model:          "gpt-4.1",
		CreatedAt:      now,
		LastModified:   now,
	}
	require.NoError(t, store.CreateConversation(context.Background(), meta))
	return meta
}

func TestEntStore_CreateAndGetMeta(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	seedConversation(t, store, "user-a", "conv1234")

	got, err := store.GetMeta(ctx, "user-a", "conv1234")
	require.NoError(t, err)
	assert.Equal(t, "conv1234", got.ConversationID)
	assert.Equal(t, "New chat", got.Title)
	assert.Equal(t, "gpt-4.1", got.Model)
	assert.Empty(t, got.AgentLevelLLMOverwrite)

	// Ownership is part of the key
	_, err = store.GetMeta(ctx, "user-b", "conv1234")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntStore_ListMetasWindow(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	fresh := seedConversation(t, store, "user-a", "freshcnv")
	stale := seedConversation(t, store, "user-a", "stalecnv")
	seedConversation(t, store, "user-b", "othercnv")

	// Push the stale conversation outside the window
	stale.LastModified = time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, store.UpdateMeta(ctx, stale))

	metas, err := store.ListMetas(ctx, "user-a", time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, fresh.ConversationID, metas[0].ConversationID)
}

func TestEntStore_UpdateMeta(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	meta := seedConversation(t, store, "user-a", "conv1234")
	meta.Title = "Payment outage"
	meta.AgentLevelLLMOverwrite = map[string]string{"servicenow": "gpt-4.1-mini"}
	require.NoError(t, store.UpdateMeta(ctx, meta))

	got, err := store.GetMeta(ctx, "user-a", "conv1234")
	require.NoError(t, err)
	assert.Equal(t, "Payment outage", got.Title)
	assert.Equal(t, map[string]string{"servicenow": "gpt-4.1-mini"}, got.AgentLevelLLMOverwrite)

	// Clearing the overrides persists as absent, not empty map
	meta.AgentLevelLLMOverwrite = nil
	require.NoError(t, store.UpdateMeta(ctx, meta))
	got, err = store.GetMeta(ctx, "user-a", "conv1234")
	require.NoError(t, err)
	assert.Empty(t, got.AgentLevelLLMOverwrite)

	missing := *meta
	missing.ConversationID = "missing1"
	assert.ErrorIs(t, store.UpdateMeta(ctx, &missing), ErrNotFound)
}

func TestEntStore_ReplaceMessagesRoundTrip(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	seedConversation(t, store, "user-a", "conv1234")

	msgs := []models.ChatMessage{
		{SequenceNumber: 0, Role: models.RoleUser, Content: "why is payment-api down?", Timestamp: time.Now().UTC()},
		{SequenceNumber: 1, Role: models.RoleAssistant, Content: "It is recovering.", Timestamp: time.Now().UTC()},
	}
	require.NoError(t, store.ReplaceMessages(ctx, "conv1234", msgs))

	got, err := store.Messages(ctx, "conv1234")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.RoleUser, got[0].Role)
	assert.Equal(t, "why is payment-api down?", got[0].Content)
	assert.Equal(t, 1, got[1].SequenceNumber)

	// Replacement is atomic: the old rows are gone
	require.NoError(t, store.ReplaceMessages(ctx, "conv1234", msgs[:1]))
	got, err = store.Messages(ctx, "conv1234")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	assert.ErrorIs(t, store.ReplaceMessages(ctx, "missing1", msgs), ErrNotFound)
	_, err = store.Messages(ctx, "missing1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntStore_ReplaceMessagesBumpsLastModified(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	meta := seedConversation(t, store, "user-a", "conv1234")

	require.NoError(t, store.ReplaceMessages(ctx, "conv1234", []models.ChatMessage{
		{SequenceNumber: 0, Role: models.RoleUser, Content: "hello", Timestamp: time.Now().UTC()},
	}))

	got, err := store.GetMeta(ctx, "user-a", "conv1234")
	require.NoError(t, err)
	assert.True(t, got.LastModified.After(meta.LastModified))
}

func TestEntStore_DeleteCascades(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	seedConversation(t, store, "user-a", "conv1234")
	require.NoError(t, store.ReplaceMessages(ctx, "conv1234", []models.ChatMessage{
		{SequenceNumber: 0, Role: models.RoleUser, Content: "hello", Timestamp: time.Now().UTC()},
	}))

	require.NoError(t, store.DeleteConversation(ctx, "user-a", "conv1234"))

	_, err := store.GetMeta(ctx, "user-a", "conv1234")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Messages(ctx, "conv1234")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.DeleteConversation(ctx, "user-a", "conv1234"), ErrNotFound)
}

func TestEntStore_SetEvaluation(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	seedConversation(t, store, "user-a", "conv1234")
	require.NoError(t, store.ReplaceMessages(ctx, "conv1234", []models.ChatMessage{
		{SequenceNumber: 0, Role: models.RoleUser, Content: "q", Timestamp: time.Now().UTC()},
		{SequenceNumber: 1, Role: models.RoleAssistant, Content: "a", Timestamp: time.Now().UTC()},
	}))

	satisfied := true
	comment := "clear answer"
	require.NoError(t, store.SetEvaluation(ctx, "conv1234", 1, &satisfied, &comment))

	msgs, err := store.Messages(ctx, "conv1234")
	require.NoError(t, err)
	require.NotNil(t, msgs[1].IsSatisfy)
	assert.True(t, *msgs[1].IsSatisfy)
	require.NotNil(t, msgs[1].Comment)
	assert.Equal(t, "clear answer", *msgs[1].Comment)

	// Clearing drops both fields
	require.NoError(t, store.SetEvaluation(ctx, "conv1234", 1, nil, nil))
	msgs, err = store.Messages(ctx, "conv1234")
	require.NoError(t, err)
	assert.Nil(t, msgs[1].IsSatisfy)
	assert.Nil(t, msgs[1].Comment)
}
