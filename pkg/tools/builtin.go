package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/stanley-ops/stanley/pkg/llm"
)

// Builtin tool parameter shapes. The JSON schemas handed to the model are
// derived from these structs.
type getIncidentParams struct {
	IncidentID string `json:"incident_id" jsonschema:"description=ServiceNow incident number, e.g. INC123"`
}

type getChangeRequestParams struct {
	ChangeID string `json:"change_id" jsonschema:"description=ServiceNow change request number, e.g. CHG456"`
}

type queryLogsParams struct {
	Service string `json:"service" jsonschema:"description=Service name to query logs for"`
	Level   string `json:"level,omitempty" jsonschema:"description=Minimum log level (info, warning, error)"`
	Hours   int    `json:"hours,omitempty" jsonschema:"description=Look-back window in hours, default 4"`
}

type getPipelineRunsParams struct {
	Pipeline string `json:"pipeline" jsonschema:"description=Data pipeline name"`
	Limit    int    `json:"limit,omitempty" jsonschema:"description=Max runs to return, default 5"`
}

type checkServiceHealthParams struct {
	Service string `json:"service" jsonschema:"description=Service name to check"`
}

type getRunbookParams struct {
	Runbook string `json:"runbook" jsonschema:"description=Runbook name, usually the service name"`
}

// RegisterBuiltinTools populates the registry with the ops tools the builtin
// sub-agents use. The backends return representative sample data; swapping
// in real ServiceNow / log-analytics clients only changes the handlers.
func RegisterBuiltinTools(registry *Registry) {
	registry.Register(Tool{
		Name:         "get_incident",
		Description:  "Fetch a ServiceNow incident by its number, including state, priority and work notes.",
		ParamsSchema: llm.MustDeriveSchema(&getIncidentParams{}),
		Handler:      getIncident,
	})
	registry.Register(Tool{
		Name:         "get_change_request",
		Description:  "Fetch a ServiceNow change request by its number, including schedule and approval state.",
		ParamsSchema: llm.MustDeriveSchema(&getChangeRequestParams{}),
		Handler:      getChangeRequest,
	})
	registry.Register(Tool{
		Name:         "query_logs",
		Description:  "Query recent application logs for a service, filtered by level.",
		ParamsSchema: llm.MustDeriveSchema(&queryLogsParams{}),
		Handler:      queryLogs,
	})
	registry.Register(Tool{
		Name:         "get_pipeline_runs",
		Description:  "List recent runs of a data pipeline with their status and duration.",
		ParamsSchema: llm.MustDeriveSchema(&getPipelineRunsParams{}),
		Handler:      getPipelineRuns,
	})
	registry.Register(Tool{
		Name:         "check_service_health",
		Description:  "Check the current health and availability of a named service.",
		ParamsSchema: llm.MustDeriveSchema(&checkServiceHealthParams{}),
		Handler:      checkServiceHealth,
	})
	// Replaced with a repository-backed handler when a runbook repo is
	// configured; see pkg/runbook.
	registry.Register(Tool{
		Name:         "get_runbook",
		Description:  "Fetch the operational runbook for a service or alert from the runbook repository.",
		ParamsSchema: llm.MustDeriveSchema(&getRunbookParams{}),
		Handler:      getRunbook,
	})
}

func getIncident(_ context.Context, args json.RawMessage) (string, error) {
	var p getIncidentParams
	if err := json.Unmarshal(args, &p); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if p.IncidentID == "" {
		return "", fmt.Errorf("incident_id is required")
	}
	states := []string{"New", "In Progress", "On Hold", "Resolved"}
	return marshalResult(map[string]any{
		"incident_id":       p.IncidentID,
		"state":             pick(p.IncidentID, states),
		"priority":          fmt.Sprintf("P%d", 1+stableIndex(p.IncidentID, 4)),
		"short_description": fmt.Sprintf("Service degradation reported for %s", p.IncidentID),
		"assigned_to":       "ops-oncall",
		"opened_at":         time.Now().Add(-6 * time.Hour).UTC().Format(time.RFC3339),
		"work_notes": []string{
			"Initial triage complete, correlating with recent deployments.",
			"Mitigation in progress.",
		},
	})
}

func getChangeRequest(_ context.Context, args json.RawMessage) (string, error) {
	var p getChangeRequestParams
	if err := json.Unmarshal(args, &p); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if p.ChangeID == "" {
		return "", fmt.Errorf("change_id is required")
	}
	return marshalResult(map[string]any{
		"change_id":     p.ChangeID,
		"state":         pick(p.ChangeID, []string{"Assess", "Authorize", "Scheduled", "Implement", "Closed"}),
		"risk":          pick(p.ChangeID, []string{"Low", "Moderate", "High"}),
		"description":   fmt.Sprintf("Planned maintenance tracked as %s", p.ChangeID),
		"planned_start": time.Now().Add(12 * time.Hour).UTC().Format(time.RFC3339),
		"planned_end":   time.Now().Add(14 * time.Hour).UTC().Format(time.RFC3339),
		"approval":      "Approved",
	})
}

func queryLogs(_ context.Context, args json.RawMessage) (string, error) {
	var p queryLogsParams
	if err := json.Unmarshal(args, &p); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if p.Service == "" {
		return "", fmt.Errorf("service is required")
	}
	if p.Hours <= 0 {
		p.Hours = 4
	}
	level := p.Level
	if level == "" {
		level = "error"
	}
	entries := []map[string]any{
		{
			"timestamp": time.Now().Add(-90 * time.Minute).UTC().Format(time.RFC3339),
			"level":     strings.ToUpper(level),
			"message":   fmt.Sprintf("%s: upstream timeout after 30s", p.Service),
		},
		{
			"timestamp": time.Now().Add(-30 * time.Minute).UTC().Format(time.RFC3339),
			"level":     strings.ToUpper(level),
			"message":   fmt.Sprintf("%s: retry budget exhausted for dependency call", p.Service),
		},
	}
	return marshalResult(map[string]any{
		"service":     p.Service,
		"hours":       p.Hours,
		"level":       level,
		"match_count": len(entries),
		"entries":     entries,
	})
}

func getPipelineRuns(_ context.Context, args json.RawMessage) (string, error) {
	var p getPipelineRunsParams
	if err := json.Unmarshal(args, &p); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if p.Pipeline == "" {
		return "", fmt.Errorf("pipeline is required")
	}
	if p.Limit <= 0 || p.Limit > 20 {
		p.Limit = 5
	}
	statuses := []string{"Succeeded", "Succeeded", "Failed", "Succeeded", "Running"}
	runs := make([]map[string]any, 0, p.Limit)
	for i := 0; i < p.Limit && i < len(statuses); i++ {
		runs = append(runs, map[string]any{
			"run_id":      fmt.Sprintf("%s-run-%d", p.Pipeline, i+1),
			"status":      statuses[i],
			"started_at":  time.Now().Add(-time.Duration(i+1) * time.Hour).UTC().Format(time.RFC3339),
			"duration_ms": 1000 * (180 + 60*i),
		})
	}
	return marshalResult(map[string]any{
		"pipeline": p.Pipeline,
		"runs":     runs,
	})
}

func checkServiceHealth(_ context.Context, args json.RawMessage) (string, error) {
	var p checkServiceHealthParams
	if err := json.Unmarshal(args, &p); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if p.Service == "" {
		return "", fmt.Errorf("service is required")
	}
	healthy := stableIndex(p.Service, 4) != 0
	status := "healthy"
	var degraded []string
	if !healthy {
		status = "degraded"
		degraded = []string{"ingest", "query-frontend"}
	}
	return marshalResult(map[string]any{
		"service":             p.Service,
		"status":              status,
		"degraded_components": degraded,
		"checked_at":          time.Now().UTC().Format(time.RFC3339),
	})
}

func getRunbook(_ context.Context, args json.RawMessage) (string, error) {
	var p getRunbookParams
	if err := json.Unmarshal(args, &p); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if p.Runbook == "" {
		return "", fmt.Errorf("runbook is required")
	}
	return fmt.Sprintf(`# Runbook: %s

## Triage
1. Check current health with check_service_health.
2. Pull recent error logs with query_logs.
3. Look for open incidents or in-flight change requests.

## Escalation
Page ops-oncall if the service stays degraded for more than 15 minutes.`, p.Runbook), nil
}

func marshalResult(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return string(data), nil
}

func stableIndex(key string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(n))
}

func pick(key string, options []string) string {
	return options[stableIndex(key, len(options))]
}
