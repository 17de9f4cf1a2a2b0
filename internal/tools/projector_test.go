package tools

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nestedSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"filter": map[string]any{
				"type":                 "object",
				"properties":           map[string]any{"tag": map[string]any{"type": "string"}},
				"additionalProperties": false,
			},
		},
		"required":             []any{"filter"},
		"additionalProperties": false,
	}
}

func TestOpenAIToolsPreservesSchemaVerbatim(t *testing.T) {
	reg := NewRegistry()
	schema := nestedSchema()
	require.NoError(t, reg.Register(Spec{Name: "search", Description: "find things", Parameters: schema}, echoHandler))
	require.NoError(t, reg.Register(Spec{Name: "second", Parameters: map[string]any{"type": "object"}}, echoHandler))

	defs := OpenAITools(reg)
	require.Len(t, defs, 2)
	assert.Equal(t, "search", defs[0].Function.Name)
	assert.Equal(t, "second", defs[1].Function.Name)
	assert.Equal(t, "find things", defs[0].Function.Description.Value)
	assert.Equal(t, map[string]any(defs[0].Function.Parameters), schema)

	raw, err := json.Marshal(defs[0].Function.Parameters)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "additionalProperties")
}

func TestGeminiDeclarationsStripAdditionalProperties(t *testing.T) {
	reg := NewRegistry()
	schema := nestedSchema()
	require.NoError(t, reg.Register(Spec{Name: "search", Description: "find things", Parameters: schema}, echoHandler))

	decls := GeminiDeclarations(reg)
	require.Len(t, decls, 1)
	assert.Equal(t, "search", decls[0].Name)
	assert.Equal(t, "find things", decls[0].Description)

	raw, err := json.Marshal(decls[0].ParametersJsonSchema)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "additionalProperties"),
		"stripped schema still mentions additionalProperties: %s", raw)
	// Everything else survives, including nested fields.
	assert.Contains(t, string(raw), `"filter"`)
	assert.Contains(t, string(raw), `"required"`)
}

func TestGeminiDeclarationsDoNotMutateRegistrySchema(t *testing.T) {
	reg := NewRegistry()
	schema := nestedSchema()
	require.NoError(t, reg.Register(Spec{Name: "search", Parameters: schema}, echoHandler))

	_ = GeminiDeclarations(reg)

	_, topLevel := schema["additionalProperties"]
	assert.True(t, topLevel, "projection must not mutate the registered schema")
	nested := schema["properties"].(map[string]any)["filter"].(map[string]any)
	_, nestedKey := nested["additionalProperties"]
	assert.True(t, nestedKey)
}

func TestBuiltinProjectionOrder(t *testing.T) {
	reg := NewRegistry()
	news := &NewsClient{}
	places := &PlacesClient{}
	require.NoError(t, RegisterBuiltins(reg, news, places))

	want := []string{"get_latest_news", "get_google_places", "convert_units", "get_time"}

	defs := OpenAITools(reg)
	require.Len(t, defs, len(want))
	for i, name := range want {
		assert.Equal(t, name, defs[i].Function.Name)
	}

	decls := GeminiDeclarations(reg)
	require.Len(t, decls, len(want))
	for i, name := range want {
		assert.Equal(t, name, decls[i].Name)
	}
}
