package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcExecutor adapts a function to Executor for engine tests.
type funcExecutor struct {
	id        string
	streaming bool
	handle    func(ctx context.Context, rc *RunContext, env Envelope) error
}

func (f *funcExecutor) ID() string           { return f.id }
func (f *funcExecutor) OutputResponse() bool { return f.streaming }
func (f *funcExecutor) YieldsOutput()        {}
func (f *funcExecutor) Handle(ctx context.Context, rc *RunContext, env Envelope) error {
	return f.handle(ctx, rc, env)
}

func collectRun(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var out []Event
	for event := range events {
		out = append(out, event)
	}
	return out
}

func finalOutput(events []Event) (string, bool) {
	for _, e := range events {
		if e.Kind == KindWorkflowOutput {
			return e.Output, true
		}
	}
	return "", false
}

func TestLinearPipeline(t *testing.T) {
	wf, err := NewBuilder("linear").
		AddExecutor(&funcExecutor{id: "a", handle: func(_ context.Context, rc *RunContext, env Envelope) error {
			rc.Send(env.Data.(string) + "-a")
			return nil
		}}).
		AddExecutor(&funcExecutor{id: "b", streaming: true, handle: func(ctx context.Context, rc *RunContext, env Envelope) error {
			text := env.Data.(string) + "-b"
			rc.Update(ctx, text)
			rc.Yield(text)
			return nil
		}}).
		SetStart("a").
		AddEdge("a", "b").
		Build()
	require.NoError(t, err)

	events := collectRun(t, wf.RunStream(context.Background(), "in"))
	output, ok := finalOutput(events)
	require.True(t, ok)
	assert.Equal(t, "in-a-b", output)

	assert.True(t, wf.IsStreaming("b"))
	assert.False(t, wf.IsStreaming("a"))
	assert.Equal(t, StatusCompleted, events[len(events)-1].Status)
}

func TestSelectionGroupRoutesSubset(t *testing.T) {
	var visited []string
	leaf := func(id string) *funcExecutor {
		return &funcExecutor{id: id, handle: func(_ context.Context, rc *RunContext, env Envelope) error {
			visited = append(visited, id)
			rc.Yield(id)
			return nil
		}}
	}
	wf, err := NewBuilder("select").
		AddExecutor(&funcExecutor{id: "src", handle: func(_ context.Context, rc *RunContext, env Envelope) error {
			rc.Send(env.Data)
			return nil
		}}).
		AddExecutor(leaf("left")).
		AddExecutor(leaf("right")).
		SetStart("src").
		AddSelectionGroup("src", []string{"left", "right"}, func(output any, targets []string) []string {
			if output.(string) == "go-left" {
				return []string{"left"}
			}
			return []string{"right"}
		}).
		Build()
	require.NoError(t, err)

	events := collectRun(t, wf.RunStream(context.Background(), "go-left"))
	output, _ := finalOutput(events)
	assert.Equal(t, "left", output)
	assert.Equal(t, []string{"left"}, visited)
}

func TestFanOutRunsInOneSuperstepAndFanInCollects(t *testing.T) {
	const workers = 3
	results := make(chan string, workers)

	builder := NewBuilder("fanout").
		AddExecutor(&funcExecutor{id: "split", handle: func(_ context.Context, rc *RunContext, env Envelope) error {
			for i := 0; i < workers; i++ {
				rc.Send(fmt.Sprintf("task-%d", i))
			}
			return nil
		}}).
		AddExecutor(&funcExecutor{id: "join", handle: func(_ context.Context, rc *RunContext, env Envelope) error {
			results <- env.Data.(string)
			if len(results) == workers {
				rc.Yield("joined")
			}
			return nil
		}})
	for i := 0; i < workers; i++ {
		id := fmt.Sprintf("w%d", i)
		builder.AddExecutor(&funcExecutor{id: id, handle: func(_ context.Context, rc *RunContext, env Envelope) error {
			rc.Send(env.Data.(string) + "/" + id)
			return nil
		}})
		builder.AddEdge(id, "join")
	}
	builder.SetStart("split")
	builder.AddSelectionGroup("split", []string{"w0", "w1", "w2"}, func(output any, targets []string) []string {
		// Route task-i to worker i.
		task := output.(string)
		return []string{"w" + strings.TrimPrefix(task, "task-")}
	})
	wf, err := builder.Build()
	require.NoError(t, err)

	events := collectRun(t, wf.RunStream(context.Background(), nil))
	output, ok := finalOutput(events)
	require.True(t, ok)
	assert.Equal(t, "joined", output)
	assert.Len(t, results, workers)
}

func TestLoopEdgeIncrementsIterationAndBoundTrips(t *testing.T) {
	var seenIterations []int
	wf, err := NewBuilder("loop").
		AddExecutor(&funcExecutor{id: "spin", handle: func(_ context.Context, rc *RunContext, env Envelope) error {
			seenIterations = append(seenIterations, env.Iteration)
			rc.Send(env.Data)
			return nil
		}}).
		SetStart("spin").
		AddLoopEdge("spin", "spin").
		WithMaxIterations(4).
		Build()
	require.NoError(t, err)

	events := collectRun(t, wf.RunStream(context.Background(), "x"))
	last := events[len(events)-1]
	assert.Equal(t, StatusFailed, last.Status)

	var failed *Event
	for i := range events {
		if events[i].Kind == KindWorkflowFailed {
			failed = &events[i]
		}
	}
	require.NotNil(t, failed)
	assert.ErrorIs(t, failed.Err, ErrIterationLimitExceeded)
	assert.Equal(t, []int{0, 1, 2, 3}, seenIterations)
}

func TestExecutorFailureTerminatesRun(t *testing.T) {
	boom := errors.New("boom")
	wf, err := NewBuilder("failing").
		AddExecutor(&funcExecutor{id: "a", handle: func(_ context.Context, rc *RunContext, env Envelope) error {
			rc.Send(env.Data)
			return nil
		}}).
		AddExecutor(&funcExecutor{id: "b", handle: func(context.Context, *RunContext, Envelope) error {
			return boom
		}}).
		SetStart("a").
		AddEdge("a", "b").
		Build()
	require.NoError(t, err)

	events := collectRun(t, wf.RunStream(context.Background(), "x"))
	var kinds []EventKind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	assert.Contains(t, kinds, KindExecutorFailed)
	assert.Contains(t, kinds, KindWorkflowFailed)
	_, hasOutput := finalOutput(events)
	assert.False(t, hasOutput)
}

func TestBuilderValidation(t *testing.T) {
	t.Run("missing start", func(t *testing.T) {
		_, err := NewBuilder("bad").
			AddExecutor(&funcExecutor{id: "a", handle: nil}).
			Build()
		assert.ErrorContains(t, err, "start executor not set")
	})

	t.Run("unknown edge target", func(t *testing.T) {
		_, err := NewBuilder("bad").
			AddExecutor(&funcExecutor{id: "a", handle: nil}).
			SetStart("a").
			AddEdge("a", "ghost").
			Build()
		assert.ErrorContains(t, err, `edge target "ghost"`)
	})

	t.Run("duplicate executor", func(t *testing.T) {
		_, err := NewBuilder("bad").
			AddExecutor(&funcExecutor{id: "a", handle: nil}).
			AddExecutor(&funcExecutor{id: "a", handle: nil}).
			SetStart("a").
			Build()
		assert.ErrorContains(t, err, "registered twice")
	})

	t.Run("streaming executor without final yield", func(t *testing.T) {
		_, err := NewBuilder("bad").
			AddExecutor(&streamOnlyExecutor{id: "leaky"}).
			SetStart("leaky").
			Build()
		assert.ErrorContains(t, err, `streaming executor "leaky" does not declare a final output yield`)
	})
}

// streamOnlyExecutor streams but never declares a final yield; Build must
// reject it.
type streamOnlyExecutor struct {
	id string
}

func (s *streamOnlyExecutor) ID() string           { return s.id }
func (s *streamOnlyExecutor) OutputResponse() bool { return true }
func (s *streamOnlyExecutor) Handle(ctx context.Context, rc *RunContext, env Envelope) error {
	return nil
}

func TestUpdatesCarryExecutorIDAndSequence(t *testing.T) {
	wf, err := NewBuilder("updates").
		AddExecutor(&funcExecutor{id: "stream", streaming: true, handle: func(ctx context.Context, rc *RunContext, env Envelope) error {
			rc.Update(ctx, "one")
			rc.Update(ctx, "two")
			rc.Yield("onetwo")
			return nil
		}}).
		SetStart("stream").
		Build()
	require.NoError(t, err)

	var updates []Event
	for _, e := range collectRun(t, wf.RunStream(context.Background(), nil)) {
		if e.Kind == KindAgentRunUpdate {
			updates = append(updates, e)
		}
	}
	require.Len(t, updates, 2)
	assert.Equal(t, "stream", updates[0].ExecutorID)
	assert.Equal(t, 0, updates[0].Seq)
	assert.Equal(t, 1, updates[1].Seq)
}
