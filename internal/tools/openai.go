package tools

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// OpenAITools projects the registry into chat-completions tool definitions.
// Parameter schemas pass through verbatim — OpenAI accepts
// additionalProperties, so nothing is stripped. Output order matches
// registry iteration order.
func OpenAITools(reg *Registry) []openai.ChatCompletionToolParam {
	all := reg.All()
	defs := make([]openai.ChatCompletionToolParam, 0, len(all))
	for _, t := range all {
		defs = append(defs, openai.ChatCompletionToolParam{
			Type: "function",
			Function: shared.FunctionDefinitionParam{
				Name:        t.Spec.Name,
				Description: openai.String(t.Spec.Description),
				Parameters:  openai.FunctionParameters(t.Spec.Parameters),
			},
		})
	}
	return defs
}
