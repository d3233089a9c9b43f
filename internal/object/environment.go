package object

// Environment maps identifier names to values and optionally chains to an
// outer Environment, modeling lexical scope: Get falls back to the outer
// chain on a local miss, Set always writes to the local scope only. A
// Function's captured Environment must outlive the Function value itself —
// that is what makes closures work — so Environments are ordinary
// garbage-collected Go values referenced by pointer, not pooled or freed
// explicitly.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a top-level Environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a child Environment whose lookups fall
// back to outer. Each function call gets one of these, chained to the
// function's captured environment — not to the caller's — so that two
// functions defined in the same scope can each keep their own call-local
// bindings while still sharing access to their common closure.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get searches the local scope, then recurses to the outer chain on a
// miss. The bool result reports whether the name was bound anywhere in
// the chain.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in the local scope, overwriting any existing local
// binding (rebinding `var x` twice in the same block keeps the later
// value — see DESIGN.md for why this overwrites rather than the original
// insert-if-absent behavior).
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
