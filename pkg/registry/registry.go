// Package registry dispatches formkit operations by name with untyped
// arguments, as decoded from JSON/YAML or passed from scripting layers.
// Argument helpers reject wrong types with errs.ErrInvalidArgument so the
// dynamic surface keeps the same error taxonomy as the typed one.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownOperation is returned by Invoke for unregistered names.
var ErrUnknownOperation = errors.New("registry: unknown operation")

// Handler runs an operation with positional arguments.
type Handler func(args []any) (any, error)

// Operation describes a callable entry.
type Operation struct {
	Name        string
	Params      []string
	Description string
	Handler     Handler
}

// Registry maps operation names to handlers. Re-registering a name replaces
// the earlier entry.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds op. Names are trimmed; an empty name or nil handler is
// rejected.
func (r *Registry) Register(op Operation) error {
	if r == nil {
		return errors.New("registry: nil registry")
	}
	name := strings.TrimSpace(op.Name)
	if name == "" {
		return errors.New("registry: operation name is required")
	}
	if op.Handler == nil {
		return fmt.Errorf("registry: operation %q has no handler", name)
	}
	op.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ops == nil {
		r.ops = make(map[string]Operation)
	}
	r.ops[name] = op
	return nil
}

// MustRegister panics when Register fails; intended for built-in tables.
func (r *Registry) MustRegister(ops ...Operation) {
	for _, op := range ops {
		if err := r.Register(op); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Operation, bool) {
	if r == nil {
		return Operation{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[strings.TrimSpace(name)]
	return op, ok
}

// Operations lists registered operations sorted by name.
func (r *Registry) Operations() []Operation {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	out := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, op)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Invoke runs the named operation.
func (r *Registry) Invoke(name string, args ...any) (any, error) {
	op, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op.Handler(args)
}
