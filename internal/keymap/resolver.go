package keymap

// Global is the context whose bindings apply under every focus.
const Global = "global"

// Resolver looks keys up per focus context.
type Resolver struct {
	contexts map[string]map[string]Action
}

// NewResolver indexes bindings by context. Within one context a later
// binding of the same key replaces the earlier one.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{contexts: make(map[string]map[string]Action)}
	for _, b := range bindings {
		keys, ok := r.contexts[b.Context]
		if !ok {
			keys = make(map[string]Action)
			r.contexts[b.Context] = keys
		}
		for _, key := range b.Keys {
			keys[key] = b.Action
		}
	}
	return r
}

// Resolve returns the action bound to key in context, falling back to the
// global bindings. It returns "" when the key is unbound.
func (r *Resolver) Resolve(context, key string) Action {
	if a, ok := r.contexts[context][key]; ok {
		return a
	}
	return r.contexts[Global][key]
}
