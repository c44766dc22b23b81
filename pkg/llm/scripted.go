package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// ScriptEntry defines a single scripted model response for tests.
type ScriptEntry struct {
	// Response content (exactly one should be set)
	Chunks []Chunk // pre-built chunks to return
	Text   string  // shorthand: auto-wrapped as TextChunk + UsageChunk
	Error  error   // return error from Generate()

	// Test control
	BlockUntilCancelled bool // stream Chunks (if any), then block until ctx is cancelled
}

// ScriptedClient implements Client with a dual-dispatch mock: sequential
// fallback for deterministic call orders, plus route matching on the system
// prompt for parallel fan-out where call order is non-deterministic.
type ScriptedClient struct {
	mu             sync.Mutex
	sequential     []ScriptEntry
	seqIndex       int
	routes         map[string][]ScriptEntry // system-prompt substring → script
	routeIndex     map[string]int
	capturedInputs []*GenerateInput
}

// NewScriptedClient creates an empty scripted client.
func NewScriptedClient() *ScriptedClient {
	return &ScriptedClient{
		routes:     make(map[string][]ScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential adds an entry consumed in order by non-routed calls.
func (c *ScriptedClient) AddSequential(entry ScriptEntry) {
	c.sequential = append(c.sequential, entry)
}

// AddRouted adds an entry matched when the call's system prompt contains key.
func (c *ScriptedClient) AddRouted(key string, entry ScriptEntry) {
	c.routes[key] = append(c.routes[key], entry)
}

// CapturedInputs returns every GenerateInput seen so far.
func (c *ScriptedClient) CapturedInputs() []*GenerateInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*GenerateInput, len(c.capturedInputs))
	copy(out, c.capturedInputs)
	return out
}

// Generate implements Client.
func (c *ScriptedClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	c.mu.Lock()
	c.capturedInputs = append(c.capturedInputs, input)
	entry, err := c.nextEntry(input)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if entry.BlockUntilCancelled {
		ch := make(chan Chunk)
		go func() {
			defer close(ch)
			for _, chunk := range entry.Chunks {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
			<-ctx.Done()
		}()
		return ch, nil
	}

	if entry.Error != nil {
		return nil, entry.Error
	}

	chunks := entry.Chunks
	if len(chunks) == 0 && entry.Text != "" {
		chunks = []Chunk{
			&TextChunk{Content: entry.Text},
			&UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		}
	}

	ch := make(chan Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

// Close implements Client.
func (c *ScriptedClient) Close() error { return nil }

func (c *ScriptedClient) nextEntry(input *GenerateInput) (ScriptEntry, error) {
	var system string
	for _, m := range input.Messages {
		if m.Role == RoleSystem {
			system = m.Content
			break
		}
	}
	for key, script := range c.routes {
		if strings.Contains(system, key) {
			idx := c.routeIndex[key]
			if idx >= len(script) {
				return ScriptEntry{}, fmt.Errorf("scripted client: route %q exhausted after %d calls", key, idx)
			}
			c.routeIndex[key] = idx + 1
			return script[idx], nil
		}
	}
	if c.seqIndex >= len(c.sequential) {
		return ScriptEntry{}, fmt.Errorf("scripted client: sequential script exhausted after %d calls", c.seqIndex)
	}
	entry := c.sequential[c.seqIndex]
	c.seqIndex++
	return entry, nil
}
