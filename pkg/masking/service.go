// Package masking scrubs credential material from tool output before it
// reaches model transcripts, the event stream, or stored messages.
package masking

import "log/slog"

// Service applies data masking to tool result content. Created once at
// application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
}

// NewService creates a masking service with compiled patterns. All
// patterns are compiled eagerly at creation time.
func NewService(enabled bool) *Service {
	s := &Service{
		enabled:  enabled,
		patterns: compilePatterns(),
	}
	slog.Info("Masking service initialized",
		"enabled", enabled,
		"compiled_patterns", len(s.patterns))
	return s
}

// MaskToolResult rewrites credential-shaped substrings in tool result
// content. Returns the input unchanged when masking is disabled.
func (s *Service) MaskToolResult(content string) string {
	if !s.enabled || content == "" {
		return content
	}
	for _, p := range s.patterns {
		content = p.Regex.ReplaceAllString(content, p.Replacement)
	}
	return content
}
