package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	"github.com/Hadi2525/toolbridge/internal/tools"
)

// ChatClient is the slice of the OpenAI client the executor needs; tests
// inject a mock behind it.
type ChatClient interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

type openaiChat struct {
	client *openai.Client
}

func (c openaiChat) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}

// OpenAIOptions configures the chat-completions loop.
type OpenAIOptions struct {
	Model        string
	SummaryModel string
	Pricing      Pricing
}

// OpenAIExecutor drives the chat-completions loop: first call with tools
// attached, sequential dispatch of any requested tool calls, then a
// summarization call with no tools.
type OpenAIExecutor struct {
	chat   ChatClient
	reg    *tools.Registry
	opts   OpenAIOptions
	logger *slog.Logger
}

// NewOpenAIExecutor builds an executor on a real OpenAI client.
func NewOpenAIExecutor(client *openai.Client, reg *tools.Registry, opts OpenAIOptions, logger *slog.Logger) *OpenAIExecutor {
	return &OpenAIExecutor{chat: openaiChat{client: client}, reg: reg, opts: opts, logger: logger}
}

// OpenAIResult is the outcome of one orchestration pass. Response carries
// the model's direct answer when it requested no tools; Summary and
// ToolCalls are set when tools ran. Token and cost counters accumulate
// across both model calls.
type OpenAIResult struct {
	Response         string
	Summary          string
	ToolCalls        []ToolCall
	TokensUsed       int64
	EstimatedCostUSD float64
}

// Execute runs one query through the loop.
func (e *OpenAIExecutor) Execute(ctx context.Context, query string) (*OpenAIResult, error) {
	first, err := e.chat.New(ctx, openai.ChatCompletionNewParams{
		Model:      shared.ChatModel(e.opts.Model),
		Messages:   []openai.ChatCompletionMessageParamUnion{openai.UserMessage(query)},
		Tools:      tools.OpenAITools(e.reg),
		ToolChoice: openai.ChatCompletionToolChoiceOptionUnionParam{OfAuto: openai.String("auto")},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(first.Choices) == 0 {
		return nil, errors.New("no response generated")
	}

	tokens := first.Usage.TotalTokens
	cost := e.opts.Pricing.Cost(first.Usage.PromptTokens, first.Usage.CompletionTokens)

	choice := first.Choices[0]
	if len(choice.Message.ToolCalls) == 0 {
		e.logger.Info("no tool call; returning assistant text")
		return &OpenAIResult{
			Response:         choice.Message.Content,
			TokensUsed:       tokens,
			EstimatedCostUSD: roundUSD(cost),
		}, nil
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(query),
		choice.Message.ToParam(),
	}
	invoked := make([]ToolCall, 0, len(choice.Message.ToolCalls))
	for _, call := range choice.Message.ToolCalls {
		args, err := parseArguments(call.Function.Arguments)
		if err != nil {
			return nil, fmt.Errorf("malformed arguments for tool %s: %w", call.Function.Name, err)
		}
		e.logger.Info("executing tool call", "tool", call.Function.Name, "args", args)

		result := e.reg.Dispatch(ctx, call.Function.Name, args)
		payload, err := json.Marshal(result.Payload())
		if err != nil {
			return nil, fmt.Errorf("serializing result of tool %s: %w", call.Function.Name, err)
		}

		invoked = append(invoked, ToolCall{Name: call.Function.Name})
		messages = append(messages, openai.ToolMessage(string(payload), call.ID))
	}

	final, err := e.chat.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(e.opts.SummaryModel),
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("summary completion failed: %w", err)
	}
	if len(final.Choices) == 0 {
		return nil, errors.New("no summary generated")
	}

	tokens += final.Usage.TotalTokens
	cost += e.opts.Pricing.Cost(final.Usage.PromptTokens, final.Usage.CompletionTokens)

	return &OpenAIResult{
		Summary:          final.Choices[0].Message.Content,
		ToolCalls:        invoked,
		TokensUsed:       tokens,
		EstimatedCostUSD: roundUSD(cost),
	}, nil
}

// parseArguments decodes the model's raw JSON argument string. An empty or
// absent string parses to an empty mapping.
func parseArguments(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
