package config

import (
	"fmt"
	"sort"
)

// Known model names. Deployment names default to the model name; Azure
// deployments that differ can override via ModelDefinition.Deployment.
const (
	ModelGPT41     = "gpt-4.1"
	ModelGPT41Mini = "gpt-4.1-mini"
)

// ModelDefinition describes one chat model available to the service.
type ModelDefinition struct {
	Name        string `json:"name"`
	Deployment  string `json:"deployment"`
	Description string `json:"description"`
}

// ModelRegistry maps model names to their definitions.
type ModelRegistry struct {
	models map[string]ModelDefinition
}

// NewModelRegistry builds the registry of supported models.
func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{
		models: map[string]ModelDefinition{
			ModelGPT41: {
				Name:        ModelGPT41,
				Deployment:  ModelGPT41,
				Description: "Best quality; default for all workflows",
			},
			ModelGPT41Mini: {
				Name:        ModelGPT41Mini,
				Deployment:  ModelGPT41Mini,
				Description: "Fast and cheap; used for memory summarization",
			},
		},
	}
}

// Get returns the definition for a model name.
func (r *ModelRegistry) Get(name string) (ModelDefinition, error) {
	def, ok := r.models[name]
	if !ok {
		return ModelDefinition{}, fmt.Errorf("unknown model: %q", name)
	}
	return def, nil
}

// Names returns all registered model names, sorted.
func (r *ModelRegistry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all definitions sorted by name.
func (r *ModelRegistry) List() []ModelDefinition {
	defs := make([]ModelDefinition, 0, len(r.models))
	for _, name := range r.Names() {
		defs = append(defs, r.models[name])
	}
	return defs
}

// ResolveModel picks the model for one agent invocation. Priority:
// per-agent override, then the conversation's model, then the process default.
func ResolveModel(agentKey string, overrides map[string]string, conversationModel, defaultModel string) string {
	if m, ok := overrides[agentKey]; ok && m != "" {
		return m
	}
	if conversationModel != "" {
		return conversationModel
	}
	return defaultModel
}
