package depends

import "hash"

// DependencyState classifies one resolution of an edge relative to the
// previous pass. It is computed fresh on every resolution and never
// stored beyond the call that produced it.
type DependencyState uint8

const (
	// Clean means the content observed across this edge is unchanged
	// since this edge last resolved.
	Clean DependencyState = iota
	// Dirty means the content changed, or this edge has never resolved.
	Dirty
)

func (s DependencyState) String() string {
	if s == Clean {
		return "Clean"
	}
	return "Dirty"
}

// DepRef is the handle returned by resolving a dependency edge: the
// resolved value view paired with its clean/dirty classification. It is
// a short-lived, read-only composite owned by the caller for the
// duration of one resolution call; it carries no ownership of the
// underlying node state and must not outlive the pass.
type DepRef[O HashValue] struct {
	state DependencyState
	value O
}

// IsDirty reports whether the content observed across this edge changed
// since the consumer last looked.
func (r DepRef[O]) IsDirty() bool {
	return r.state == Dirty
}

// State returns the edge classification.
func (r DepRef[O]) State() DependencyState {
	return r.state
}

// Value returns the resolved view. When edges nest (a dependency wrapped
// around another dependency), the view is itself a DepRef and reference
// access threads through losslessly layer by layer.
func (r DepRef[O]) Value() O {
	return r.value
}

// HashValue delegates fingerprinting to the wrapped view, which lets a
// DepRef stand as the output of a node wrapped by a further edge.
func (r DepRef[O]) HashValue(hasher hash.Hash64) NodeHash {
	return r.value.HashValue(hasher)
}

// Dependency wraps one edge of the graph: a reference to some resolvable
// node plus one memory cell holding the fingerprint observed on the
// previous resolution of this specific edge. The memory is per edge, not
// per node: the same node reached through several wrappers (a diamond)
// is tracked independently by each, so every consumer gets its own
// precise "did this actually change since I last looked" signal.
type Dependency[O HashValue] struct {
	last      NodeHash
	hasLast   bool
	resolving bool
	node      Resolver[O]
}

// NewDependency wraps a resolvable node as a tracked edge. Node types
// expose a Dep method that picks O for you; use NewDependency directly
// when wrapping a custom Resolver implementation.
func NewDependency[O HashValue](node Resolver[O]) *Dependency[O] {
	return &Dependency[O]{node: node}
}

// Resolve resolves the wrapped node, fingerprints its current content
// with the visitor's hashing strategy, and classifies the edge against
// the previous pass: equal fingerprints are Clean, anything else is
// Dirty and overwrites the remembered fingerprint. The first resolution
// of any edge is always Dirty, by definition: there is no prior memory
// to compare against.
//
// The memory cell is held exclusively for the duration of the call. If
// this same edge is already being resolved higher up the call chain (a
// structural cycle through this exact edge), resolution fails with an
// EdgeError instead of recursing. A failed inner resolution propagates
// before the remembered fingerprint is overwritten.
func (d *Dependency[O]) Resolve(visitor Visitor) (DepRef[O], error) {
	var zero DepRef[O]
	if d.resolving {
		return zero, &EdgeError{Node: d.nodeName()}
	}
	d.resolving = true
	defer func() { d.resolving = false }()

	data, err := d.node.Resolve(visitor)
	if err != nil {
		return zero, err
	}

	// A view that carries no fingerprint can never classify Clean; two
	// NotHashed sentinels match each other but say nothing about content.
	current := data.HashValue(visitor.Hasher())
	if d.hasLast && current.IsHashed() && d.last == current {
		return DepRef[O]{state: Clean, value: data}, nil
	}
	d.last = current
	d.hasLast = true
	return DepRef[O]{state: Dirty, value: data}, nil
}

// ResolveRoot runs one full resolution pass with this edge as the root.
// See the package-level ResolveRoot for pass and cleanup semantics.
func (d *Dependency[O]) ResolveRoot(visitor Visitor) (DepRef[O], error) {
	return ResolveRoot[DepRef[O]](d, visitor)
}

// NestDep wraps an already tracked edge as a node for a further edge,
// nesting the view one layer deeper. It is a free function rather than a
// method because a method would mention Dependency[DepRef[O]] in the
// method set of Dependency[O] itself, instantiating without bound.
func NestDep[O HashValue](d *Dependency[O]) *Dependency[DepRef[O]] {
	return NewDependency[DepRef[O]](d)
}

func (d *Dependency[O]) nodeName() string {
	if named, ok := d.node.(Named); ok {
		return named.Name()
	}
	return ""
}
