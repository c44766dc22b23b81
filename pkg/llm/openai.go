package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/azure"
	"github.com/openai/openai-go/v2/shared"
)

// OpenAIClient implements Client against Azure OpenAI chat completions.
type OpenAIClient struct {
	client openai.Client
	logger *slog.Logger
}

// OpenAIConfig holds Azure OpenAI connection settings.
type OpenAIConfig struct {
	Endpoint   string
	APIKey     string
	APIVersion string
}

// NewOpenAIClient creates an Azure OpenAI backed client.
func NewOpenAIClient(cfg OpenAIConfig, logger *slog.Logger) (*OpenAIClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("azure openai endpoint is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("azure openai api key is required")
	}
	client := openai.NewClient(
		azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
		azure.WithAPIKey(cfg.APIKey),
	)
	return &OpenAIClient{
		client: client,
		logger: logger.With("component", "llm_client"),
	}, nil
}

// Generate streams one chat completion. Text deltas are forwarded as they
// arrive; tool calls and usage are emitted once the stream finishes.
func (c *OpenAIClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	if input.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if len(input.Messages) == 0 {
		return nil, fmt.Errorf("messages are required")
	}

	params, err := buildParams(input)
	if err != nil {
		return nil, err
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)

		stream := c.client.Chat.Completions.NewStreaming(ctx, params)
		defer func() { _ = stream.Close() }()

		acc := openai.ChatCompletionAccumulator{}
		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)
			if len(chunk.Choices) > 0 {
				if delta := chunk.Choices[0].Delta.Content; delta != "" {
					if !send(ctx, out, &TextChunk{Content: delta}) {
						return
					}
				}
			}
		}
		if err := stream.Err(); err != nil {
			c.logger.Error("llm stream failed", "model", input.Model, "error", err)
			send(ctx, out, classifyError(err))
			return
		}

		if len(acc.Choices) > 0 {
			for _, tc := range acc.Choices[0].Message.ToolCalls {
				chunk := &ToolCallChunk{
					CallID:    tc.ID,
					Name:      tc.Function.Name,
					Arguments: tc.Function.Arguments,
				}
				if !send(ctx, out, chunk) {
					return
				}
			}
		}
		send(ctx, out, &UsageChunk{
			InputTokens:  int(acc.Usage.PromptTokens),
			OutputTokens: int(acc.Usage.CompletionTokens),
			TotalTokens:  int(acc.Usage.TotalTokens),
		})
	}()
	return out, nil
}

// Close implements Client. The HTTP client has no connection state to release.
func (c *OpenAIClient) Close() error { return nil }

func buildParams(input *GenerateInput) (openai.ChatCompletionNewParams, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(input.Messages))
	for _, m := range input.Messages {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case RoleUser:
			messages = append(messages, openai.UserMessage(m.Content))
		case RoleAssistant:
			if len(m.ToolCalls) == 0 {
				messages = append(messages, openai.AssistantMessage(m.Content))
				continue
			}
			assistant := openai.ChatCompletionAssistantMessageParam{}
			if m.Content != "" {
				assistant.Content.OfString = openai.String(m.Content)
			}
			for _, tc := range m.ToolCalls {
				assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      tc.Name,
							Arguments: tc.Arguments,
						},
					},
				})
			}
			messages = append(messages, openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
		case RoleTool:
			messages = append(messages, openai.ToolMessage(m.Content, m.ToolCallID))
		default:
			return openai.ChatCompletionNewParams{}, fmt.Errorf("unsupported message role: %q", m.Role)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(input.Model),
		Messages: messages,
		StreamOptions: openai.ChatCompletionStreamOptionsParam{
			IncludeUsage: openai.Bool(true),
		},
	}

	for _, tool := range input.Tools {
		var schema map[string]any
		if err := json.Unmarshal([]byte(tool.ParametersSchema), &schema); err != nil {
			return openai.ChatCompletionNewParams{}, fmt.Errorf("invalid parameters schema for tool %s: %w", tool.Name, err)
		}
		params.Tools = append(params.Tools, openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        tool.Name,
			Description: openai.String(tool.Description),
			Parameters:  shared.FunctionParameters(schema),
		}))
	}

	if input.ResponseSchema != "" {
		var schema map[string]any
		if err := json.Unmarshal([]byte(input.ResponseSchema), &schema); err != nil {
			return openai.ChatCompletionNewParams{}, fmt.Errorf("invalid response schema: %w", err)
		}
		name := input.ResponseSchemaName
		if name == "" {
			name = "response"
		}
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   name,
					Schema: schema,
					Strict: openai.Bool(true),
				},
			},
		}
	}
	return params, nil
}

func send(ctx context.Context, out chan<- Chunk, chunk Chunk) bool {
	select {
	case out <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

// classifyError maps provider errors to the retriable/permanent split.
// Rate limits and server-side failures are worth retrying; everything else
// (auth, malformed request) is not.
func classifyError(err error) *ErrorChunk {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		retryable := apierr.StatusCode == 429 || apierr.StatusCode >= 500
		return &ErrorChunk{Message: err.Error(), Retryable: retryable}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ErrorChunk{Message: err.Error(), Retryable: false}
	}
	// Network-level failures without an HTTP status are treated as transient.
	return &ErrorChunk{Message: err.Error(), Retryable: true}
}
