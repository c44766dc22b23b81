package memory

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/models"
)

// fixedMessages serves a canned dense message list.
type fixedMessages struct {
	msgs []models.ChatMessage
}

func (f *fixedMessages) Messages(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	return f.msgs, nil
}

// denseMessages builds messages 0..n-1, user at even sequences.
func denseMessages(n int) []models.ChatMessage {
	msgs := make([]models.ChatMessage, n)
	for i := range msgs {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		msgs[i] = models.ChatMessage{
			SequenceNumber: i,
			Role:           role,
			Content:        fmt.Sprintf("message %d", i),
			Timestamp:      time.Now().UTC(),
		}
	}
	return msgs
}

func newTestService(t *testing.T, n int, client llm.Client) (*Service, *LocalStore) {
	t.Helper()
	store := NewLocalStore()
	svc := NewService(store, &fixedMessages{msgs: denseMessages(n)}, client, Config{
		Model: config.ModelGPT41Mini,
	})
	return svc, store
}

func TestTrigger_NoopBelowThreshold(t *testing.T) {
	svc, store := newTestService(t, 4, llm.NewScriptedClient())

	id, err := svc.Trigger(context.Background(), "conv1", 3)
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Empty(t, store.Records("conv1"))
}

func TestTrigger_InitialSummary(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddSequential(llm.ScriptEntry{Text: "summary of rounds 0-2"})
	svc, store := newTestService(t, 6, client)

	id, err := svc.Trigger(context.Background(), "conv1", 5)
	require.NoError(t, err)
	require.NotZero(t, id)
	svc.Wait()

	recs := store.Records("conv1")
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, models.MemoryCompleted, rec.Status)
	assert.Equal(t, "summary of rounds 0-2", rec.MemoryText)
	assert.Equal(t, 0, rec.StartSequence)
	assert.Equal(t, 5, rec.EndSequence)
	assert.Nil(t, rec.BaseMemoryID)
	require.NotNil(t, rec.GenerationTimeMS)

	// First-time summarization sees the whole window, no previous memory.
	inputs := client.CapturedInputs()
	require.Len(t, inputs, 1)
	userMsg := inputs[0].Messages[len(inputs[0].Messages)-1].Content
	assert.Contains(t, userMsg, "[user]: message 0")
	assert.Contains(t, userMsg, "[assistant]: message 5")
	assert.NotContains(t, userMsg, "Previous memory")
}

func TestTrigger_WindowAlignsStartUpToEven(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddSequential(llm.ScriptEntry{Text: "windowed summary"})
	svc, store := newTestService(t, 18, client)

	// seq 17: start = max(0, 17-14+1) = 4, already even.
	_, err := svc.Trigger(context.Background(), "conv1", 17)
	require.NoError(t, err)
	svc.Wait()

	recs := store.Records("conv1")
	require.Len(t, recs, 1)
	assert.Equal(t, 4, recs[0].StartSequence)
	assert.Equal(t, 17, recs[0].EndSequence)
}

func TestWindow_OddStartAligned(t *testing.T) {
	svc, _ := newTestService(t, 0, llm.NewScriptedClient())

	// seq 16: raw start 3 is odd, aligned to 4 (13-message window).
	start, end := svc.window(16)
	assert.Equal(t, 4, start)
	assert.Equal(t, 16, end)

	// Short conversation clamps to 0.
	start, end = svc.window(5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}

func TestTrigger_IncrementalChainsOnBase(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddSequential(llm.ScriptEntry{Text: "first summary"})
	client.AddSequential(llm.ScriptEntry{Text: "merged summary"})
	svc, store := newTestService(t, 8, client)
	ctx := context.Background()

	first, err := svc.Trigger(ctx, "conv1", 5)
	require.NoError(t, err)
	svc.Wait()

	_, err = svc.Trigger(ctx, "conv1", 7)
	require.NoError(t, err)
	svc.Wait()

	recs := store.Records("conv1")
	require.Len(t, recs, 2)
	second := recs[1]
	assert.Equal(t, models.MemoryCompleted, second.Status)
	assert.Equal(t, "merged summary", second.MemoryText)
	require.NotNil(t, second.BaseMemoryID)
	assert.Equal(t, first, *second.BaseMemoryID)

	// Incremental run carries the previous memory and only the new rounds.
	inputs := client.CapturedInputs()
	require.Len(t, inputs, 2)
	userMsg := inputs[1].Messages[len(inputs[1].Messages)-1].Content
	assert.Contains(t, userMsg, "first summary")
	assert.Contains(t, userMsg, "[user]: message 6")
	assert.NotContains(t, userMsg, "message 5")
}

func TestTrigger_NoopWhileProcessing(t *testing.T) {
	store := NewLocalStore()
	_, err := store.BeginSummary(context.Background(), "conv1", 0, 5, nil)
	require.NoError(t, err)

	svc := NewService(store, &fixedMessages{msgs: denseMessages(8)}, llm.NewScriptedClient(), Config{})
	id, err := svc.Trigger(context.Background(), "conv1", 7)
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Len(t, store.Records("conv1"), 1)
}

func TestTrigger_LLMFailureMarksRecordFailed(t *testing.T) {
	client := llm.NewScriptedClient()
	client.AddSequential(llm.ScriptEntry{Error: fmt.Errorf("model unavailable")})
	svc, store := newTestService(t, 6, client)

	_, err := svc.Trigger(context.Background(), "conv1", 5)
	require.NoError(t, err)
	svc.Wait()

	recs := store.Records("conv1")
	require.Len(t, recs, 1)
	assert.Equal(t, models.MemoryFailed, recs[0].Status)
	assert.Empty(t, recs[0].MemoryText)
	require.NotNil(t, recs[0].GenerationTimeMS)

	// A failed record does not hold the slot: the next round retries.
	client.AddSequential(llm.ScriptEntry{Text: "recovered"})
	_, err = svc.Trigger(context.Background(), "conv1", 5)
	require.NoError(t, err)
	svc.Wait()
	recs = store.Records("conv1")
	require.Len(t, recs, 2)
	assert.Equal(t, models.MemoryCompleted, recs[1].Status)
}

func TestContext_NoMemoryReturnsAllButCurrent(t *testing.T) {
	svc, _ := newTestService(t, 0, llm.NewScriptedClient())

	msgs := denseMessages(5) // last one is the just-posted user message
	got := svc.Context(context.Background(), "conv1", msgs)
	assert.Nil(t, got.MemoryText)
	require.Len(t, got.GapMessages, 4)
	assert.Equal(t, 3, got.GapMessages[3].SequenceNumber)
}

func TestContext_MemoryPlusGap(t *testing.T) {
	store := NewLocalStore()
	rec, err := store.BeginSummary(context.Background(), "conv1", 0, 5, nil)
	require.NoError(t, err)
	require.NoError(t, store.Complete(context.Background(), rec.MemoryID, "rounds 0-2 summary", 12))

	svc := NewService(store, &fixedMessages{}, llm.NewScriptedClient(), Config{})
	msgs := denseMessages(9) // seq 8 is the current user message
	got := svc.Context(context.Background(), "conv1", msgs)

	require.NotNil(t, got.MemoryText)
	assert.Equal(t, "rounds 0-2 summary", *got.MemoryText)
	require.Len(t, got.GapMessages, 2) // seqs 6 and 7
	assert.Equal(t, 6, got.GapMessages[0].SequenceNumber)
	assert.Equal(t, 7, got.GapMessages[1].SequenceNumber)
}

func TestContext_MemoryCoversEverything(t *testing.T) {
	store := NewLocalStore()
	rec, err := store.BeginSummary(context.Background(), "conv1", 0, 5, nil)
	require.NoError(t, err)
	require.NoError(t, store.Complete(context.Background(), rec.MemoryID, "complete summary", 10))

	svc := NewService(store, &fixedMessages{}, llm.NewScriptedClient(), Config{})
	msgs := denseMessages(7) // seq 6 is the current user message
	got := svc.Context(context.Background(), "conv1", msgs)

	require.NotNil(t, got.MemoryText)
	assert.Empty(t, got.GapMessages)
}

func TestConversationText(t *testing.T) {
	text := conversationText(denseMessages(2))
	assert.True(t, strings.HasPrefix(text, "[user]: message 0\n"))
	assert.Contains(t, text, "[assistant]: message 1")
}
