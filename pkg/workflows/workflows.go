package workflows

import (
	"fmt"
	"time"

	"github.com/stanley-ops/stanley/pkg/agent"
	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/middleware"
	"github.com/stanley-ops/stanley/pkg/tools"
)

// Config parameterizes one workflow construction. Model resolution uses
// per-agent overrides first, then the conversation's model, then the
// process default.
type Config struct {
	Client   llm.Client
	Registry *config.SubAgentRegistry
	Tools    *tools.Registry
	Pool     *tools.Pool
	Masker   tools.ResultMasker
	Obs      *middleware.Observability

	DefaultModel      string
	ConversationModel string
	AgentOverrides    map[string]string

	LLMTimeout     time.Duration
	ToolTimeout    time.Duration
	ToolCallBudget int
	MaxIterations  int
}

func (c *Config) modelFor(agentKey string) string {
	return config.ResolveModel(agentKey, c.AgentOverrides, c.ConversationModel, c.DefaultModel)
}

func (c *Config) obs() *middleware.Observability {
	if c.Obs != nil {
		return c.Obs
	}
	return &middleware.Observability{}
}

// orchestrationAgent builds one tool-less agent whose structured or textual
// output drives the workflow. Its output rides on agent_finished events so
// the client can render decision traces.
func (c *Config) orchestrationAgent(name, agentKey, instructions, responseSchema string) *agent.Agent {
	return agent.New(agent.Config{
		Name:                  name,
		Instructions:          instructions,
		Model:                 c.modelFor(agentKey),
		Client:                c.Client,
		Obs:                   c.obs(),
		LLMTimeout:            c.LLMTimeout,
		ResponseSchema:        responseSchema,
		IncludeOutputInEvents: true,
	})
}

// subAgents builds one tool-equipped agent per registry entry, keyed by the
// entry key.
func (c *Config) subAgents() (map[string]*agent.Agent, error) {
	agents := make(map[string]*agent.Agent, len(c.Registry.Entries()))
	for _, entry := range c.Registry.Entries() {
		if _, err := c.Tools.Definitions(entry.Tools); err != nil {
			return nil, fmt.Errorf("sub-agent %s: %w", entry.Key, err)
		}
		executor := tools.NewScopedExecutor(c.Tools, c.Pool, entry.Tools, c.ToolTimeout).
			WithMasker(c.Masker)
		agents[entry.Key] = agent.New(agent.Config{
			Name:           entry.Name,
			Instructions:   entry.Instructions,
			Model:          c.modelFor(entry.Key),
			Client:         c.Client,
			Executor:       executor,
			Obs:            c.obs(),
			ToolCallBudget: c.ToolCallBudget,
			LLMTimeout:     c.LLMTimeout,
		})
	}
	return agents, nil
}
