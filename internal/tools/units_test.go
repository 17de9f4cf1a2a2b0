package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUnits(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want map[string]any
	}{
		{
			name: "celsius to fahrenheit",
			args: map[string]any{"kind": "c_to_f", "value": 25.0},
			want: map[string]any{"input": 25.0, "output": 77.0, "unit": "F"},
		},
		{
			name: "fahrenheit to celsius",
			args: map[string]any{"kind": "f_to_c", "value": 32.0},
			want: map[string]any{"input": 32.0, "output": 0.0, "unit": "C"},
		},
		{
			name: "uppercase kind accepted",
			args: map[string]any{"kind": "C_TO_F", "value": 0.0},
			want: map[string]any{"input": 0.0, "output": 32.0, "unit": "F"},
		},
		{
			name: "unknown kind",
			args: map[string]any{"kind": "bogus", "value": 1.0},
			want: map[string]any{"error": "unknown kind: bogus"},
		},
		{
			name: "non numeric value",
			args: map[string]any{"kind": "c_to_f", "value": "not-a-number"},
			want: map[string]any{"error": "value must be a number"},
		},
		{
			name: "missing value",
			args: map[string]any{"kind": "c_to_f"},
			want: map[string]any{"error": "value must be a number"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertUnits(context.Background(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertUnitsKilometersToMiles(t *testing.T) {
	got, err := ConvertUnits(context.Background(), map[string]any{"kind": "km_to_miles", "value": 100.0})
	require.NoError(t, err)

	result, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 100.0, result["input"])
	assert.Equal(t, "mi", result["unit"])
	assert.InDelta(t, 62.1371, result["output"], 1e-9)
}

func TestConvertUnitsCoercesNumericStrings(t *testing.T) {
	got, err := ConvertUnits(context.Background(), map[string]any{"kind": "f_to_c", "value": "212"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"input": 212.0, "output": 100.0, "unit": "C"}, got)
}
