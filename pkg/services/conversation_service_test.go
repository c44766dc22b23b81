package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/models"
)

func newTestService(t *testing.T) *ConversationService {
	t.Helper()
	return NewConversationService(NewLocalStore(), config.NewModelRegistry(), 7)
}

func TestConversationService_CreateDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)

	assert.Len(t, meta.ConversationID, 8)
	assert.Equal(t, "alice", meta.UserClientID)
	assert.Equal(t, "New chat", meta.Title)
	assert.Equal(t, config.ModelGPT41, meta.Model)
	assert.False(t, meta.CreatedAt.IsZero())
	assert.Equal(t, meta.CreatedAt, meta.LastModified)
}

func TestConversationService_CreateRejectsUnknownModel(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateConversation(context.Background(), "alice", "gpt-nonexistent", config.ModelGPT41)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestConversationService_ListFiltersByOwnerAndWindow(t *testing.T) {
	store := NewLocalStore()
	svc := NewConversationService(store, config.NewModelRegistry(), 7)
	ctx := context.Background()

	mine, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)
	_, err = svc.CreateConversation(ctx, "bob", "", config.ModelGPT41)
	require.NoError(t, err)

	// A conversation last touched before the window must not be listed.
	stale := &models.ConversationMeta{
		ConversationID: "stale001",
		UserClientID:   "alice",
		Title:          "Old incident",
		Model:          config.ModelGPT41,
		CreatedAt:      time.Now().UTC().AddDate(0, 0, -30),
		LastModified:   time.Now().UTC().AddDate(0, 0, -30),
	}
	require.NoError(t, store.CreateConversation(ctx, stale))

	metas, err := svc.ListConversations(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, mine.ConversationID, metas[0].ConversationID)
}

func TestConversationService_GetIsOwnerScoped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)

	_, err = svc.GetConversation(ctx, "bob", meta.ConversationID)
	assert.ErrorIs(t, err, ErrNotFound)

	conv, err := svc.GetConversation(ctx, "alice", meta.ConversationID)
	require.NoError(t, err)
	assert.Empty(t, conv.Messages)
}

func TestConversationService_AppendAssignsDenseSequences(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)

	first, err := svc.AppendMessage(ctx, "alice", meta.ConversationID, models.RoleUser, "check INC123")
	require.NoError(t, err)
	assert.Equal(t, 0, first.SequenceNumber)

	second, err := svc.AppendMessage(ctx, "alice", meta.ConversationID, models.RoleAssistant, "INC123 is resolved")
	require.NoError(t, err)
	assert.Equal(t, 1, second.SequenceNumber)

	msgs, err := svc.Messages(ctx, "alice", meta.ConversationID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
}

func TestConversationService_AppendBumpsLastModified(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)
	created := meta.LastModified

	time.Sleep(5 * time.Millisecond)
	_, err = svc.AppendMessage(ctx, "alice", meta.ConversationID, models.RoleUser, "hello")
	require.NoError(t, err)

	after, err := svc.GetMeta(ctx, "alice", meta.ConversationID)
	require.NoError(t, err)
	assert.True(t, after.LastModified.After(created))
}

func TestConversationService_UpdateValidatesModels(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)

	bad := "gpt-nonexistent"
	_, err = svc.UpdateConversation(ctx, "alice", meta.ConversationID, models.UpdateConversationRequest{Model: &bad})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.UpdateConversation(ctx, "alice", meta.ConversationID, models.UpdateConversationRequest{
		AgentLevelLLMOverwrite: map[string]string{"servicenow": bad},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	good := config.ModelGPT41Mini
	updated, err := svc.UpdateConversation(ctx, "alice", meta.ConversationID, models.UpdateConversationRequest{
		Model:                  &good,
		AgentLevelLLMOverwrite: map[string]string{"servicenow": config.ModelGPT41},
	})
	require.NoError(t, err)
	assert.Equal(t, config.ModelGPT41Mini, updated.Model)
	assert.Equal(t, config.ModelGPT41, updated.AgentLevelLLMOverwrite["servicenow"])
}

func TestConversationService_DeleteIsOwnerScoped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)

	err = svc.DeleteConversation(ctx, "bob", meta.ConversationID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.DeleteConversation(ctx, "alice", meta.ConversationID))
	_, err = svc.GetMeta(ctx, "alice", meta.ConversationID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConversationService_TitleDerivation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)

	svc.MaybeDeriveTitle(ctx, "alice", meta.ConversationID, "  why   is payment-api   returning 502s?  ")
	after, err := svc.GetMeta(ctx, "alice", meta.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, "why is payment-api returning…", after.Title)

	// A user-chosen title is never overwritten.
	svc.MaybeDeriveTitle(ctx, "alice", meta.ConversationID, "something else entirely")
	again, err := svc.GetMeta(ctx, "alice", meta.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, after.Title, again.Title)
}

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, "New chat", deriveTitle("   "))
	assert.Equal(t, "short question", deriveTitle("short question"))

	long := strings.Repeat("a", 40)
	got := deriveTitle(long)
	assert.Equal(t, strings.Repeat("a", 28)+"…", got)
}

func TestConversationService_Evaluation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, "alice", meta.ConversationID, models.RoleUser, "check INC123")
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, "alice", meta.ConversationID, models.RoleAssistant, "INC123 is resolved")
	require.NoError(t, err)

	comment := "accurate and fast"
	err = svc.SetEvaluation(ctx, "alice", meta.ConversationID, 1, models.EvaluationRequest{IsSatisfy: true, Comment: &comment})
	require.NoError(t, err)

	msgs, err := svc.Messages(ctx, "alice", meta.ConversationID)
	require.NoError(t, err)
	require.NotNil(t, msgs[1].IsSatisfy)
	assert.True(t, *msgs[1].IsSatisfy)
	require.NotNil(t, msgs[1].Comment)
	assert.Equal(t, comment, *msgs[1].Comment)

	require.NoError(t, svc.ClearEvaluation(ctx, "alice", meta.ConversationID, 1))
	msgs, err = svc.Messages(ctx, "alice", meta.ConversationID)
	require.NoError(t, err)
	assert.Nil(t, msgs[1].IsSatisfy)
	assert.Nil(t, msgs[1].Comment)
}

func TestConversationService_EvaluationValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta, err := svc.CreateConversation(ctx, "alice", "", config.ModelGPT41)
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, "alice", meta.ConversationID, models.RoleUser, "check INC123")
	require.NoError(t, err)

	// User messages cannot be evaluated.
	err = svc.SetEvaluation(ctx, "alice", meta.ConversationID, 0, models.EvaluationRequest{IsSatisfy: true})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// Missing sequence.
	err = svc.SetEvaluation(ctx, "alice", meta.ConversationID, 9, models.EvaluationRequest{IsSatisfy: true})
	assert.ErrorIs(t, err, ErrNotFound)

	// Wrong owner.
	err = svc.SetEvaluation(ctx, "bob", meta.ConversationID, 0, models.EvaluationRequest{IsSatisfy: true})
	assert.ErrorIs(t, err, ErrNotFound)
}
