package tools

import (
	"context"
	"fmt"
	"strings"
)

var unitsSpec = Spec{
	Name: "convert_units",
	Description: "Converts between common units of measurement for temperature and distance. " +
		"Supports three conversion types: Celsius to Fahrenheit, Fahrenheit to Celsius, and kilometers to miles. " +
		"Use this when the user needs to convert temperatures between metric and imperial systems or convert distances. " +
		"Provides instant, accurate conversions without external API calls.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"kind": map[string]any{
				"type": "string",
				"enum": []any{"c_to_f", "f_to_c", "km_to_miles"},
				"description": "The type of conversion to perform. Choose 'c_to_f' to convert Celsius to Fahrenheit (e.g., for US weather), " +
					"'f_to_c' to convert Fahrenheit to Celsius (e.g., for metric system), or 'km_to_miles' to convert kilometers to miles (e.g., for distance/speed conversions).",
			},
			"value": map[string]any{
				"type": "number",
				"description": "The numeric value to convert. Can be an integer or decimal number. For temperature, this is the degrees in the source unit. " +
					"For distance, this is the kilometers to convert to miles.",
			},
		},
		"required":             []any{"kind", "value"},
		"additionalProperties": false,
	},
}

// ConvertUnits implements the convert_units tool. It runs locally, without
// network I/O, and reports invalid input as {"error": ...} values.
func ConvertUnits(_ context.Context, args map[string]any) (any, error) {
	kind := strings.ToLower(stringArg(args, "kind", ""))
	v, ok := numberArg(args["value"])
	if !ok {
		return map[string]any{"error": "value must be a number"}, nil
	}

	switch kind {
	case "c_to_f":
		return map[string]any{"input": v, "output": v*9/5 + 32, "unit": "F"}, nil
	case "f_to_c":
		return map[string]any{"input": v, "output": (v - 32) * 5 / 9, "unit": "C"}, nil
	case "km_to_miles":
		return map[string]any{"input": v, "output": v * 0.621371, "unit": "mi"}, nil
	default:
		return map[string]any{"error": fmt.Sprintf("unknown kind: %s", kind)}, nil
	}
}
