package tools

import (
	"google.golang.org/genai"
)

// GeminiDeclarations projects the registry into Gemini function
// declarations. Gemini's schema validator rejects the additionalProperties
// key, so it is removed at every nesting depth; all other schema fields
// pass through unchanged. The registry's schema is deep-copied, never
// mutated.
func GeminiDeclarations(reg *Registry) []*genai.FunctionDeclaration {
	all := reg.All()
	decls := make([]*genai.FunctionDeclaration, 0, len(all))
	for _, t := range all {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:                 t.Spec.Name,
			Description:          t.Spec.Description,
			ParametersJsonSchema: stripAdditionalProperties(t.Spec.Parameters),
		})
	}
	return decls
}

func stripAdditionalProperties(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if k == "additionalProperties" {
				continue
			}
			out[k] = stripAdditionalProperties(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = stripAdditionalProperties(item)
		}
		return out
	default:
		return v
	}
}
