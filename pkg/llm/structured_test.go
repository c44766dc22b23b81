package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type triageShape struct {
	ShouldReject bool   `json:"should_reject"`
	RejectReason string `json:"reject_reason"`
}

func TestCollect(t *testing.T) {
	t.Run("concatenates text and picks up usage", func(t *testing.T) {
		ch := make(chan Chunk, 3)
		ch <- &TextChunk{Content: "Hello "}
		ch <- &TextChunk{Content: "world"}
		ch <- &UsageChunk{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}
		close(ch)

		resp, err := Collect(context.Background(), ch)
		require.NoError(t, err)
		assert.Equal(t, "Hello world", resp.Text)
		assert.Equal(t, 16, resp.Usage.TotalTokens)
	})

	t.Run("error chunk maps to failure class", func(t *testing.T) {
		ch := make(chan Chunk, 1)
		ch <- &ErrorChunk{Message: "rate limited", Retryable: true}
		close(ch)

		_, err := Collect(context.Background(), ch)
		assert.ErrorIs(t, err, ErrTransient)
	})

	t.Run("collects tool calls", func(t *testing.T) {
		ch := make(chan Chunk, 2)
		ch <- &ToolCallChunk{CallID: "call_1", Name: "get_incident", Arguments: `{"incident_id":"INC123"}`}
		ch <- &UsageChunk{TotalTokens: 5}
		close(ch)

		resp, err := Collect(context.Background(), ch)
		require.NoError(t, err)
		require.Len(t, resp.ToolCalls, 1)
		assert.Equal(t, "get_incident", resp.ToolCalls[0].Name)
	})
}

func TestCompleteStructured(t *testing.T) {
	t.Run("valid first response", func(t *testing.T) {
		client := NewScriptedClient()
		client.AddSequential(ScriptEntry{Text: `{"should_reject":false,"reject_reason":""}`})

		var out triageShape
		resp, err := CompleteStructured(context.Background(), client, &GenerateInput{
			Model:    "gpt-4.1",
			Messages: []Message{{Role: RoleUser, Content: "triage this"}},
		}, &out)
		require.NoError(t, err)
		assert.False(t, out.ShouldReject)
		assert.Equal(t, 15, resp.Usage.TotalTokens)
	})

	t.Run("recovers from one malformed response", func(t *testing.T) {
		client := NewScriptedClient()
		client.AddSequential(ScriptEntry{Text: `not json`})
		client.AddSequential(ScriptEntry{Text: `{"should_reject":true,"reject_reason":"off topic"}`})

		var out triageShape
		_, err := CompleteStructured(context.Background(), client, &GenerateInput{
			Model:    "gpt-4.1",
			Messages: []Message{{Role: RoleUser, Content: "triage this"}},
		}, &out)
		require.NoError(t, err)
		assert.True(t, out.ShouldReject)

		// The re-ask carries the bad response plus a correction prompt.
		inputs := client.CapturedInputs()
		require.Len(t, inputs, 2)
		assert.Len(t, inputs[1].Messages, 3)
	})

	t.Run("fails with SchemaViolation after exhausting retries", func(t *testing.T) {
		client := NewScriptedClient()
		for i := 0; i < schemaParseAttempts; i++ {
			client.AddSequential(ScriptEntry{Text: `still not json`})
		}

		var out triageShape
		_, err := CompleteStructured(context.Background(), client, &GenerateInput{
			Model:    "gpt-4.1",
			Messages: []Message{{Role: RoleUser, Content: "triage this"}},
		}, &out)
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})
}

func TestValidateJSON(t *testing.T) {
	schema := MustDeriveSchema(&triageShape{})

	assert.NoError(t, ValidateJSON(schema, `{"should_reject":false,"reject_reason":""}`))
	assert.Error(t, ValidateJSON(schema, `{"should_reject":"nope"}`))
	assert.Error(t, ValidateJSON(schema, `{`))
}
