package operations

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a thread-safe set of operations addressable by name or alias.
type Registry struct {
	mu      sync.RWMutex
	ops     map[string]Operation
	aliases map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ops:     make(map[string]Operation),
		aliases: make(map[string]string),
	}
}

// NewDefaultRegistry returns a registry holding every built-in operation.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, op := range builtins() {
		if err := r.Register(op); err != nil {
			panic(fmt.Sprintf("operations: %v", err))
		}
	}
	return r
}

// Register adds op. Names and aliases share one namespace; registering a
// name that is already taken is an error.
func (r *Registry) Register(op Operation) error {
	if op.Name == "" || op.Eval == nil {
		return fmt.Errorf("operation %q is incomplete", op.Name)
	}
	if op.MaxArgs != Variadic && op.MaxArgs < op.MinArgs {
		return fmt.Errorf("operation %q has MaxArgs < MinArgs", op.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range append([]string{op.Name}, op.Aliases...) {
		if r.taken(name) {
			return fmt.Errorf("operation name %q already registered", name)
		}
	}
	r.ops[op.Name] = op
	for _, a := range op.Aliases {
		r.aliases[a] = op.Name
	}
	return nil
}

func (r *Registry) taken(name string) bool {
	_, isOp := r.ops[name]
	_, isAlias := r.aliases[name]
	return isOp || isAlias
}

// Get resolves a name or alias.
func (r *Registry) Get(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	op, ok := r.ops[name]
	return op, ok
}

// List returns all operations sorted by name.
func (r *Registry) List() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}
