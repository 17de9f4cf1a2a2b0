// Package tools implements the provider-agnostic tool registry: named
// capabilities described by a JSON-Schema parameter object and backed by an
// executable handler, plus the dispatcher that folds every failure into a
// structured error result the calling model can read. The package also
// carries the four built-in tools and the per-provider schema projectors.
package tools

import (
	"errors"
)

// ErrInvalidSpec is returned by Register when the spec has no name.
var ErrInvalidSpec = errors.New("tool spec must have a name")

// Spec describes a tool to a model: a unique name, a free-text description
// the model uses to decide relevance, and a JSON-Schema-shaped parameter
// object. Schemas are data rather than compile-time types, so the parameter
// object is an open map.
type Spec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// RegisteredTool pairs a Spec with its Handler.
type RegisteredTool struct {
	Spec    Spec
	Handler Handler
}

// Registry holds registered tools keyed by name. It is populated once at
// startup and read-only afterward, so it needs no locking; construct it
// explicitly and pass it by handle instead of relying on a process-wide
// singleton.
type Registry struct {
	order []string
	tools map[string]RegisteredTool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]RegisteredTool)}
}

// Register inserts the tool under spec.Name. Registering a duplicate name
// overwrites the prior entry (last write wins) while keeping the name's
// original position in iteration order. The registry holds references to
// spec and handler; neither is copied or mutated after registration.
func (r *Registry) Register(spec Spec, handler Handler) error {
	if spec.Name == "" {
		return ErrInvalidSpec
	}
	if _, ok := r.tools[spec.Name]; !ok {
		r.order = append(r.order, spec.Name)
	}
	r.tools[spec.Name] = RegisteredTool{Spec: spec, Handler: handler}
	return nil
}

// All returns every registered tool in registration order. Order carries no
// semantics for callers but stays deterministic for testability.
func (r *Registry) All() []RegisteredTool {
	out := make([]RegisteredTool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}
