package depends

// Resolver is the recursive resolution contract every graph participant
// implements, leaf or derived. O is the borrowed output view produced for
// the duration of one call: a node state view for nodes, a DepRef for
// dependency wrappers, nesting as many layers as the graph wraps. Callers
// must not store the view past the enclosing resolution pass.
type Resolver[O any] interface {
	Resolve(visitor Visitor) (O, error)
}

// ResolveRoot runs one full resolution pass from a root resolver. It
// performs the same recursive resolution as Resolve and, upon successful
// completion, ends the pass: every visited node discards its transient
// per-pass bookkeeping before the next external mutation is accepted.
// Resolve calls made internally while traversing never trigger cleanup;
// only the outermost call does.
//
// A failed pass returns the first error encountered on the first
// offending path and leaves previously committed node state untouched,
// so the caller may retry after fixing the graph shape.
//
// Node and edge types expose a ResolveRoot method that picks O for you;
// call this function directly when rooting a pass at a custom Resolver.
func ResolveRoot[O any](root Resolver[O], visitor Visitor) (O, error) {
	out, err := root.Resolve(visitor)
	if err != nil {
		var zero O
		return zero, err
	}
	visitor.EndPass()
	return out, nil
}
