package config

import (
	"fmt"
	"sort"
	"strings"
)

// SubAgentEntry describes one dispatchable sub-agent: which tools it owns
// and the instructions its agent runs with.
type SubAgentEntry struct {
	Key          string
	Name         string
	Description  string
	Instructions string
	Tools        []string
}

// SubAgentRegistry holds the sub-agents workflows may dispatch to.
type SubAgentRegistry struct {
	entries []SubAgentEntry
}

// NewSubAgentRegistry builds the registry of builtin ops sub-agents.
func NewSubAgentRegistry() *SubAgentRegistry {
	entries := []SubAgentEntry{
		{
			Key:         "servicenow",
			Name:        "servicenow-agent",
			Description: "Looks up ServiceNow incidents and change requests by ID.",
			Instructions: "You are a ServiceNow specialist. Use the available tools to " +
				"fetch incidents and change requests, then answer the question with " +
				"the retrieved details. Cite record IDs in your answer.",
			Tools: []string{"get_incident", "get_change_request"},
		},
		{
			Key:         "log_analytics",
			Name:        "log-analytics-agent",
			Description: "Queries application logs and data pipeline run history.",
			Instructions: "You are a log analytics specialist. Use the available tools " +
				"to query logs and pipeline runs, then summarize the relevant findings " +
				"for the question asked.",
			Tools: []string{"query_logs", "get_pipeline_runs"},
		},
		{
			Key:         "service_health",
			Name:        "service-health-agent",
			Description: "Checks current health and availability of named services.",
			Instructions: "You are a service health specialist. Use the available tools " +
				"to check service status and report current health, noting any degraded " +
				"components. Consult the service's runbook when the status is degraded.",
			Tools: []string{"check_service_health", "get_runbook"},
		},
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return &SubAgentRegistry{entries: entries}
}

// Entries returns all entries in key order.
func (r *SubAgentRegistry) Entries() []SubAgentEntry {
	out := make([]SubAgentEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Get returns the entry for the given sub-agent key.
func (r *SubAgentRegistry) Get(key string) (SubAgentEntry, bool) {
	for _, e := range r.entries {
		if e.Key == key {
			return e, true
		}
	}
	return SubAgentEntry{}, false
}

// Keys returns the registered sub-agent keys in order.
func (r *SubAgentRegistry) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

// CapabilitiesSummary renders a bullet list of what the registered
// sub-agents can do, used in triage prompts and rejection messages.
func (r *SubAgentRegistry) CapabilitiesSummary() string {
	var b strings.Builder
	for _, e := range r.entries {
		fmt.Fprintf(&b, "- %s: %s\n", e.Key, e.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
