package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// schemaParseAttempts bounds re-asks when a schema-constrained response
// comes back as invalid JSON.
const schemaParseAttempts = 3

// CompleteStructured performs a buffered call constrained by the JSON Schema
// derived from out's type, validates the response against it, and unmarshals
// into out. Parse or validation failures re-ask the model with the error
// appended, up to schemaParseAttempts; after that the call fails with
// ErrSchemaViolation.
func CompleteStructured(ctx context.Context, client Client, input *GenerateInput, out any) (*Response, error) {
	if input.ResponseSchema == "" {
		schema, err := DeriveSchema(out)
		if err != nil {
			return nil, err
		}
		input.ResponseSchema = schema
	}

	messages := input.Messages
	var lastErr error
	for attempt := 1; attempt <= schemaParseAttempts; attempt++ {
		call := *input
		call.Messages = messages
		resp, err := Complete(ctx, client, &call)
		if err != nil {
			return nil, err
		}

		if err := ValidateJSON(input.ResponseSchema, resp.Text); err != nil {
			lastErr = err
		} else if err := json.Unmarshal([]byte(resp.Text), out); err != nil {
			lastErr = err
		} else {
			return resp, nil
		}

		slog.Warn("structured response invalid, re-asking",
			"model", input.Model, "attempt", attempt, "error", lastErr)
		messages = append(messages,
			Message{Role: RoleAssistant, Content: resp.Text},
			Message{Role: RoleUser, Content: fmt.Sprintf(
				"Your previous response was not valid against the required JSON schema (%v). "+
					"Respond again with only the corrected JSON object.", lastErr)},
		)
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrSchemaViolation, schemaParseAttempts, lastErr)
}
