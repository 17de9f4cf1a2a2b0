package tools

import (
	"context"
	"fmt"
)

// Handler executes one tool call. The returned value must be JSON
// marshalable: an object, a slice or a scalar. Handlers may perform network
// I/O; ctx carries the surrounding request's cancellation.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Result is the outcome of a dispatch: a success payload or an error
// message, never both. Failures live in the value rather than in a Go error
// so the never-propagate contract is visible at the type level — the
// orchestration loops always have something to forward to the model, even
// when it hallucinated a tool name.
type Result struct {
	Value any
	Err   string
}

// Payload renders the wire value sent back to the model: the success value,
// or the uniform {"error": msg} object.
func (res Result) Payload() any {
	if res.Err != "" {
		return map[string]any{"error": res.Err}
	}
	return res.Value
}

// Object renders the payload as an object. Gemini's protocol requires the
// echoed function result to be an object, so sequences are wrapped as
// {"results": seq} and other non-object values as {"value": scalar}.
func (res Result) Object() map[string]any {
	switch v := res.Payload().(type) {
	case map[string]any:
		return v
	case []any:
		return map[string]any{"results": v}
	case []map[string]any:
		return map[string]any{"results": v}
	case nil:
		return map[string]any{}
	default:
		return map[string]any{"value": v}
	}
}

// Dispatch looks up and invokes a tool by name. An unknown name, a handler
// error or a handler panic all degrade to an error Result: a misbehaving or
// unreachable third-party API must never crash the surrounding request.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (res Result) {
	tool, ok := r.tools[name]
	if !ok {
		return Result{Err: fmt.Sprintf("Unknown tool: %s", name)}
	}
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{Err: fmt.Sprintf("tool %s panicked: %v", name, rec)}
		}
	}()
	value, err := tool.Handler(ctx, args)
	if err != nil {
		return Result{Err: err.Error()}
	}
	return Result{Value: value}
}
