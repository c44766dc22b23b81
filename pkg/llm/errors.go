package llm

import "errors"

// Failure classes for LLM calls. Callers branch on these with errors.Is:
// transient failures are retried, permanent ones abort the executor.
var (
	// ErrTransient marks retriable transport failures (429, 5xx, resets).
	ErrTransient = errors.New("transient llm failure")

	// ErrPermanent marks non-retriable failures (auth, bad request).
	ErrPermanent = errors.New("permanent llm failure")

	// ErrSchemaViolation is returned when a schema-constrained call still
	// produced invalid JSON after exhausting parse retries.
	ErrSchemaViolation = errors.New("llm output violates response schema")
)
