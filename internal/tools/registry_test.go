package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(_ context.Context, args map[string]any) (any, error) {
	return args, nil
}

func TestRegisterRequiresName(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(Spec{Description: "nameless"}, echoHandler)
	require.ErrorIs(t, err, ErrInvalidSpec)
	assert.Empty(t, reg.All())
}

func TestAllReturnsRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(Spec{Name: name}, echoHandler))
	}

	var got []string
	for _, tool := range reg.All() {
		got = append(got, tool.Spec.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, got)
}

func TestRegisterOverwritesDuplicateName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Spec{Name: "first"}, echoHandler))
	require.NoError(t, reg.Register(Spec{Name: "dup", Description: "old"}, echoHandler))
	require.NoError(t, reg.Register(Spec{Name: "last"}, echoHandler))

	replacement := func(_ context.Context, _ map[string]any) (any, error) {
		return "replaced", nil
	}
	require.NoError(t, reg.Register(Spec{Name: "dup", Description: "new"}, replacement))

	all := reg.All()
	require.Len(t, all, 3)
	// Overwriting keeps the original slot.
	assert.Equal(t, "first", all[0].Spec.Name)
	assert.Equal(t, "dup", all[1].Spec.Name)
	assert.Equal(t, "new", all[1].Spec.Description)
	assert.Equal(t, "last", all[2].Spec.Name)

	res := reg.Dispatch(context.Background(), "dup", map[string]any{})
	assert.Equal(t, "replaced", res.Value)
}
