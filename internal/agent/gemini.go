package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/Hadi2525/toolbridge/internal/tools"
)

// GenerativeClient is the slice of the Gemini client the executor needs;
// *genai.Models satisfies it, tests inject a mock.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiExecutor drives the function-calling loop: one generation with
// declarations attached, sequential dispatch of every function-call part,
// then a second generation fed the function responses.
type GeminiExecutor struct {
	models GenerativeClient
	reg    *tools.Registry
	model  string
	logger *slog.Logger
}

// NewGeminiExecutor builds an executor on a Gemini models client.
func NewGeminiExecutor(models GenerativeClient, reg *tools.Registry, model string, logger *slog.Logger) *GeminiExecutor {
	return &GeminiExecutor{models: models, reg: reg, model: model, logger: logger}
}

// GeminiResult is the outcome of one orchestration pass: either a direct
// Response (no tools requested) or a Summary plus the invoked tool names.
type GeminiResult struct {
	Response  string
	Summary   string
	ToolCalls []ToolCall
}

// Execute runs one query through the loop.
func (e *GeminiExecutor) Execute(ctx context.Context, query string) (*GeminiResult, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: tools.GeminiDeclarations(e.reg)},
		},
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	first, err := e.models.GenerateContent(ctx, e.model, genai.Text(query), config)
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}
	if len(first.Candidates) == 0 || first.Candidates[0].Content == nil {
		return nil, errors.New("no response generated")
	}

	// Gemini may request several calls within one response; collect every
	// function-call part before executing any.
	var calls []*genai.FunctionCall
	for _, part := range first.Candidates[0].Content.Parts {
		if part != nil && part.FunctionCall != nil {
			calls = append(calls, part.FunctionCall)
		}
	}

	if len(calls) == 0 {
		e.logger.Info("no function call; returning response text")
		return &GeminiResult{Response: first.Text()}, nil
	}

	invoked := make([]ToolCall, 0, len(calls))
	responses := make([]*genai.Part, 0, len(calls))
	for _, call := range calls {
		args := call.Args
		if args == nil {
			args = map[string]any{}
		}
		e.logger.Info("executing function call", "tool", call.Name, "args", args)

		result := e.reg.Dispatch(ctx, call.Name, args)
		invoked = append(invoked, ToolCall{Name: call.Name})
		responses = append(responses, &genai.Part{
			FunctionResponse: &genai.FunctionResponse{
				Name:     call.Name,
				Response: result.Object(),
			},
		})
	}

	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: query}}},
		first.Candidates[0].Content,
		{Role: genai.RoleModel, Parts: responses},
	}
	second, err := e.models.GenerateContent(ctx, e.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}

	return &GeminiResult{Summary: second.Text(), ToolCalls: invoked}, nil
}
