package depends

// InputNode is the mutable leaf of a computation graph: an externally
// updatable cell guarded against being mutated or re-entered while a
// resolution pass is in flight through it. The payload type T is
// pointer-shaped (methods mutate through it) and satisfies the Value
// contract; leaves that accept external updates additionally satisfy
// UpdateInput and are mutated via the free Update function.
type InputNode[T Value] struct {
	guard nodeGuard
	state *NodeState[T]
	id    NodeID
}

// NewInputNode creates a leaf holding an initial payload. The node starts
// Resting with a NotHashed content hash; the first resolution computes
// the fingerprint lazily.
func NewInputNode[T Value](ids *NodeIDSource, data T) *InputNode[T] {
	return &InputNode[T]{
		state: NewNodeState(data),
		id:    ids.Next(),
	}
}

// ID returns the node's diagnostic identifier.
func (n *InputNode[T]) ID() NodeID {
	return n.id
}

// Name returns the payload type's diagnostic name.
func (n *InputNode[T]) Name() string {
	return n.state.data.Name()
}

// Clean discards the payload's transient per-pass state. Invoked by the
// visitor when a root-level pass completes.
func (n *InputNode[T]) Clean() {
	n.state.data.Clean()
}

// Resolve produces the node's current state view. It acquires the
// Resolving guard (failing if an update or a nested resolution is already
// in flight on this node), marks the node reached for the pass, and
// recomputes the content hash if the payload changed since it was last
// hashed. Rehashing is keyed on the cache, not the visit bookkeeping: a
// node updated after an aborted pass still fingerprints fresh even
// though the visited set was retained.
func (n *InputNode[T]) Resolve(visitor Visitor) (*NodeState[T], error) {
	if err := n.guard.begin(Resolving, n.id, n.Name()); err != nil {
		return nil, err
	}
	defer n.guard.end()
	defer observe(visitor, n)()

	visitor.Visit(n)
	n.state.rehash(visitor.Hasher())
	return n.state, nil
}

// ResolveRoot runs one full resolution pass with this node as the root.
// See the package-level ResolveRoot for pass and cleanup semantics.
func (n *InputNode[T]) ResolveRoot(visitor Visitor) (*NodeState[T], error) {
	return ResolveRoot[*NodeState[T]](n, visitor)
}

// Dep wraps this node as a tracked dependency edge. Each call creates an
// independent edge with its own clean/dirty history, so several consumers
// of the same node each observe their own change signal.
func (n *InputNode[T]) Dep() *Dependency[*NodeState[T]] {
	return NewDependency[*NodeState[T]](n)
}

// Update applies a type-specific partial update to a leaf node's payload.
// It acquires the Updating guard, failing if a resolution or another
// update is already in flight on this node, applies the mutation, and
// invalidates the cached content hash so the next resolution re-hashes.
func Update[T UpdateInput[U], U any](n *InputNode[T], update U) error {
	if err := n.guard.begin(Updating, n.id, n.Name()); err != nil {
		return err
	}
	defer n.guard.end()

	n.state.data.UpdateMut(update)
	n.state.markUnhashed()
	return nil
}
