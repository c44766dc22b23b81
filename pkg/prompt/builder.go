package prompt

import (
	"fmt"
	"strings"

	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/llm"
)

// TriageInstructions builds the triage agent system prompt.
func TriageInstructions(registry *config.SubAgentRegistry) string {
	return fmt.Sprintf(triageInstructionsTemplate, registry.CapabilitiesSummary())
}

// PlanInstructions builds the plan agent system prompt.
func PlanInstructions(registry *config.SubAgentRegistry) string {
	return fmt.Sprintf(planInstructionsTemplate, agentDescriptionsWithTools(registry))
}

// ReplanInstructions builds the replan agent system prompt.
func ReplanInstructions(registry *config.SubAgentRegistry) string {
	return fmt.Sprintf(replanInstructionsTemplate, agentDescriptionsWithTools(registry))
}

// ReviewInstructions builds the review agent system prompt.
func ReviewInstructions(registry *config.SubAgentRegistry) string {
	return fmt.Sprintf(reviewInstructionsTemplate, registry.CapabilitiesSummary())
}

// ClarifyInstructions builds the clarify agent system prompt.
func ClarifyInstructions(registry *config.SubAgentRegistry) string {
	return fmt.Sprintf(clarifyInstructionsTemplate, registry.CapabilitiesSummary())
}

// SummaryInstructions returns the summary agent system prompt.
func SummaryInstructions() string { return summaryInstructions }

// MemorySummaryInstructions returns the memory agent system prompt.
func MemorySummaryInstructions() string { return memorySummaryInstructions }

// RejectionMessage renders the user-visible rejection text.
func RejectionMessage(reason string, registry *config.SubAgentRegistry) string {
	if reason == "" {
		reason = "Out of scope"
	}
	return fmt.Sprintf(rejectionMessageTemplate, reason, registry.CapabilitiesSummary())
}

// SummaryPrompt renders the final-summary user message.
func SummaryPrompt(originalQuery, collectedData string) string {
	return fmt.Sprintf(summaryUserTemplate, originalQuery, collectedData)
}

// PlanPrompt renders the plan-agent user message from the conversation.
func PlanPrompt(messages []llm.Message) string {
	return fmt.Sprintf(planUserTemplate, ConversationHistory(messages))
}

// ReplanPrompt renders the replan-agent user message.
func ReplanPrompt(originalQuery, previousResults string, missingAspects []string, suggestedApproach string) string {
	return fmt.Sprintf(replanUserTemplate,
		originalQuery, previousResults,
		strings.Join(missingAspects, "; "), suggestedApproach)
}

// ReviewPrompt renders the review-agent user message.
func ReviewPrompt(originalQuery, executionResults string) string {
	return fmt.Sprintf(reviewUserTemplate, originalQuery, executionResults)
}

// ClarifyPrompt renders the clarify-agent user message.
func ClarifyPrompt(originalQuery, reason string) string {
	return fmt.Sprintf(clarifyUserTemplate, originalQuery, reason)
}

// MemoryInitialPrompt renders the first-time memory summarization message.
func MemoryInitialPrompt(conversationText string) string {
	return fmt.Sprintf(memoryInitialTemplate, conversationText)
}

// MemoryIncrementalPrompt renders the incremental memory summarization
// message that folds new messages into an existing summary, dropping
// details that fall before the rolling window.
func MemoryIncrementalPrompt(previousMemory, conversationText string, windowStart int) string {
	return fmt.Sprintf(memoryIncrementalTemplate, previousMemory, conversationText, windowStart)
}

// ConversationHistory renders messages as "[role]: text" lines.
func ConversationHistory(messages []llm.Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, fmt.Sprintf("[%s]: %s", msg.Role, msg.Content))
	}
	return strings.Join(lines, "\n")
}

// agentDescriptionsWithTools renders one bullet per sub-agent including its
// tool names, used where the model plans around agent capabilities.
func agentDescriptionsWithTools(registry *config.SubAgentRegistry) string {
	var b strings.Builder
	for _, e := range registry.Entries() {
		fmt.Fprintf(&b, "- %s: %s (tools: %s)\n", e.Key, e.Description, strings.Join(e.Tools, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
