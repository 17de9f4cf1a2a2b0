package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchReturnsHandlerValueUnchanged(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Spec{Name: "echo"}, echoHandler))

	args := map[string]any{"a": "b", "n": 3.5}
	res := reg.Dispatch(context.Background(), "echo", args)
	assert.Empty(t, res.Err)
	assert.Equal(t, args, res.Value)
	assert.Equal(t, args, res.Payload())
}

func TestDispatchUnknownTool(t *testing.T) {
	reg := NewRegistry()
	res := reg.Dispatch(context.Background(), "definitely-unregistered", map[string]any{})
	assert.Equal(t, "Unknown tool: definitely-unregistered", res.Err)
	assert.Equal(t, map[string]any{"error": "Unknown tool: definitely-unregistered"}, res.Payload())
}

func TestDispatchConvertsHandlerError(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Spec{Name: "broken"}, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, errors.New("upstream unreachable")
	}))

	res := reg.Dispatch(context.Background(), "broken", map[string]any{})
	assert.Equal(t, "upstream unreachable", res.Err)
	assert.Equal(t, map[string]any{"error": "upstream unreachable"}, res.Payload())
}

func TestDispatchRecoversHandlerPanic(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Spec{Name: "explode"}, func(_ context.Context, _ map[string]any) (any, error) {
		panic("boom")
	}))

	res := reg.Dispatch(context.Background(), "explode", map[string]any{})
	assert.Contains(t, res.Err, "boom")
}

func TestResultObjectNormalization(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want map[string]any
	}{
		{
			name: "object passes through",
			res:  Result{Value: map[string]any{"k": "v"}},
			want: map[string]any{"k": "v"},
		},
		{
			name: "sequence wrapped",
			res:  Result{Value: []any{"a", "b"}},
			want: map[string]any{"results": []any{"a", "b"}},
		},
		{
			name: "scalar wrapped",
			res:  Result{Value: 42.0},
			want: map[string]any{"value": 42.0},
		},
		{
			name: "nil becomes empty object",
			res:  Result{},
			want: map[string]any{},
		},
		{
			name: "error stays an object",
			res:  Result{Err: "nope"},
			want: map[string]any{"error": "nope"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.Object())
		})
	}
}
