package tools

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanley-ops/stanley/pkg/llm"
)

func newTestExecutor(t *testing.T, toolNames []string) (*Registry, *ScopedExecutor) {
	t.Helper()
	registry := NewRegistry()
	RegisterBuiltinTools(registry)
	pool := NewPool(4)
	t.Cleanup(pool.Stop)
	return registry, NewScopedExecutor(registry, pool, toolNames, 5*time.Second)
}

func TestBuiltinToolDefinitions(t *testing.T) {
	registry := NewRegistry()
	RegisterBuiltinTools(registry)

	assert.Equal(t, []string{
		"check_service_health",
		"get_change_request",
		"get_incident",
		"get_pipeline_runs",
		"query_logs",
	}, registry.Names())

	defs, err := registry.Definitions([]string{"get_incident", "get_change_request"})
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "get_incident", defs[0].Name)
	assert.Contains(t, defs[0].ParametersSchema, "incident_id")

	_, err = registry.Definitions([]string{"no_such_tool"})
	assert.Error(t, err)
}

func TestScopedExecutorExecute(t *testing.T) {
	_, executor := newTestExecutor(t, []string{"get_incident", "get_change_request"})
	ctx := context.Background()

	t.Run("runs a scoped tool", func(t *testing.T) {
		result, err := executor.Execute(ctx, llm.ToolCall{
			ID:        "call_1",
			Name:      "get_incident",
			Arguments: `{"incident_id":"INC123"}`,
		})
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "call_1", result.CallID)

		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(result.Content), &payload))
		assert.Equal(t, "INC123", payload["incident_id"])
	})

	t.Run("out-of-scope tool is an error result, not a failure", func(t *testing.T) {
		result, err := executor.Execute(ctx, llm.ToolCall{
			ID:        "call_2",
			Name:      "query_logs",
			Arguments: `{"service":"api"}`,
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "not available")
	})

	t.Run("handler failure is an error result", func(t *testing.T) {
		result, err := executor.Execute(ctx, llm.ToolCall{
			ID:        "call_3",
			Name:      "get_incident",
			Arguments: `{}`,
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "incident_id is required")
	})
}

func TestPoolBoundsConcurrency(t *testing.T) {
	pool := NewPool(2)
	defer pool.Stop()

	var running, peak atomic.Int32
	start := make(chan struct{})
	done := make(chan struct{}, 4)
	for i := 0; i < 4; i++ {
		go func() {
			_ = pool.Run(context.Background(), func(context.Context) {
				cur := running.Add(1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				<-start
				running.Add(-1)
			})
			done <- struct{}{}
		}()
	}

	// Give the first two tasks time to occupy both workers.
	time.Sleep(50 * time.Millisecond)
	close(start)
	for i := 0; i < 4; i++ {
		<-done
	}
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestPoolRunCancelled(t *testing.T) {
	pool := NewPool(1)
	defer pool.Stop()

	block := make(chan struct{})
	go func() {
		_ = pool.Run(context.Background(), func(context.Context) { <-block })
	}()
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := pool.Run(ctx, func(context.Context) {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(block)
}
