package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/ent/conversation"
	"github.com/stanley-ops/stanley/ent/memoryrecord"
	"github.com/stanley-ops/stanley/pkg/database"
	testdb "github.com/stanley-ops/stanley/test/database"
)

func createConversation(t *testing.T, client *database.Client, lastModified time.Time) string {
	t.Helper()
	id := uuid.New().String()[:8]
	err := client.Conversation.Create().
		SetID(id).
		SetUserClientID("cleanup-test-user").
		SetTitle("New chat").
		SetModel("gpt-4.1").
		SetLastModified(lastModified).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestService_DeletesExpiredConversations(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	expired := createConversation(t, client, time.Now().Add(-120*24*time.Hour))
	fresh := createConversation(t, client, time.Now())

	// Attach a message and a memory record to the expired conversation so
	// the cascade is exercised, not just the bare row.
	err := client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(expired).
		SetSequenceNumber(0).
		SetRole("user").
		SetContent("old question").
		Exec(ctx)
	require.NoError(t, err)
	err = client.MemoryRecord.Create().
		SetConversationID(expired).
		SetStartSequence(0).
		SetEndSequence(5).
		SetStatus(memoryrecord.StatusCompleted).
		SetMemoryText("old summary").
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(Config{ConversationRetention: 90 * 24 * time.Hour}, client.Client)
	svc.runAll(ctx)

	exists, err := client.Conversation.Query().Where(conversation.IDEQ(expired)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "expired conversation should be deleted")

	exists, err = client.Conversation.Query().Where(conversation.IDEQ(fresh)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists, "fresh conversation should survive")

	orphans, err := client.MemoryRecord.Query().
		Where(memoryrecord.ConversationIDEQ(expired)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, orphans, "memory records should cascade with the conversation")
}

func TestService_FailsStaleSummaries(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	convID := createConversation(t, client, time.Now())

	stale, err := client.MemoryRecord.Create().
		SetConversationID(convID).
		SetStartSequence(0).
		SetEndSequence(5).
		SetCreatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	recent, err := client.MemoryRecord.Create().
		SetConversationID(convID).
		SetStartSequence(0).
		SetEndSequence(7).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(Config{}, client.Client)
	svc.runAll(ctx)

	got, err := client.MemoryRecord.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, memoryrecord.StatusFailed, got.Status)

	got, err = client.MemoryRecord.Get(ctx, recent.ID)
	require.NoError(t, err)
	assert.Equal(t, memoryrecord.StatusProcessing, got.Status)
}
