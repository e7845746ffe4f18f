package depends

import "hash"

// ResolveState is the reentrancy guard state on a mutable node. At most
// one of Resolving or Updating may be active on a node at any instant;
// any other transition attempt fails rather than corrupting state or
// recursing unboundedly.
type ResolveState uint8

const (
	// Resting means no resolution or mutation is in flight.
	Resting ResolveState = iota
	// Resolving means a read traversal is in progress through this node.
	Resolving
	// Updating means an external write is mutating this node.
	Updating
)

func (s ResolveState) String() string {
	switch s {
	case Resting:
		return "Resting"
	case Resolving:
		return "Resolving"
	case Updating:
		return "Updating"
	default:
		return "Unknown"
	}
}

// nodeGuard turns illegal reentrant access into a reported error. There is
// no parallelism to arbitrate, so a plain state flag substitutes for a
// lock: begin fails unless the node is Resting, end returns it to Resting.
type nodeGuard struct {
	state ResolveState
}

func (g *nodeGuard) begin(next ResolveState, id NodeID, name string) error {
	if g.state != Resting {
		return &GuardError{NodeID: id, Node: name, State: g.state, Attempted: next}
	}
	g.state = next
	return nil
}

func (g *nodeGuard) end() {
	g.state = Resting
}

// NodeState owns exactly one payload value plus the cached content hash
// for that payload. It is exclusively owned by the node that stores it;
// consumers only ever receive it as a read-only view during a resolution
// call and must not retain it past the pass.
type NodeState[T HashValue] struct {
	nodeHash NodeHash
	data     T
}

// NewNodeState wraps an initial payload. The hash starts out NotHashed
// and is computed lazily on first resolution.
func NewNodeState[T HashValue](data T) *NodeState[T] {
	return &NodeState[T]{nodeHash: NotHashed, data: data}
}

// Value returns the payload view.
func (s *NodeState[T]) Value() T {
	return s.data
}

// Hash returns the cached content hash.
func (s *NodeState[T]) Hash() NodeHash {
	return s.nodeHash
}

// HashValue returns the cached hash without recomputation. Resolution
// keeps the cache current, so consumers observing a node through its
// state view never pay for a second hashing of the same content.
func (s *NodeState[T]) HashValue(hash.Hash64) NodeHash {
	return s.nodeHash
}

// markUnhashed invalidates the cached hash after a payload mutation.
func (s *NodeState[T]) markUnhashed() {
	s.nodeHash = NotHashed
}

// rehash recomputes the cached hash if the payload changed since it was
// last hashed.
func (s *NodeState[T]) rehash(hasher hash.Hash64) {
	if !s.nodeHash.IsHashed() {
		s.nodeHash = s.data.HashValue(hasher)
	}
}
