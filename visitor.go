package depends

import (
	"hash"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
)

// GraphNode is what a visitor tracks during a pass: any node that can be
// identified, named for diagnostics, and asked to discard its transient
// per-pass state once the pass completes.
type GraphNode interface {
	Identifiable
	Named
	Cleaner
}

// Visitor is the traversal context threaded through a resolution pass. It
// carries the hashing strategy so an entire pass fingerprints with one
// consistent algorithm, and it remembers which nodes were reached so the
// root-level pass can clean them up afterwards.
type Visitor interface {
	// Visit marks a node as reached in the current pass and reports
	// whether this is the first time it has been seen this pass. Nodes
	// shared by several dependency wrappers recompute at most once per
	// pass because only the first visit returns true.
	Visit(node GraphNode) bool

	// Hasher returns a fresh hasher for one content-hash computation.
	Hasher() hash.Hash64

	// EndPass invokes Clean on every node visited this pass and forgets
	// them. Only the outermost resolution call triggers this.
	EndPass()
}

// TraversalObserver is an optional Visitor upgrade. A visitor that also
// implements it is notified when resolution enters and leaves each node,
// in call-stack order. Used by diagnostic decorators; the engine works
// identically without it.
type TraversalObserver interface {
	Touch(node GraphNode)
	Leave(node GraphNode)
}

// observe notifies an observing visitor of node entry and returns the
// matching exit callback.
func observe(v Visitor, n GraphNode) func() {
	if o, ok := v.(TraversalObserver); ok {
		o.Touch(n)
		return func() { o.Leave(n) }
	}
	return func() {}
}

// HashSetVisitor is the standard Visitor: a visited set keyed by node id
// plus a pluggable hasher factory. The default strategy is xxhash; any
// hash.Hash64 factory can be substituted per visitor.
type HashSetVisitor struct {
	visited map[NodeID]GraphNode
	hasher  func() hash.Hash64
}

// VisitorOption is a modifier for visitors.
type VisitorOption func(*HashSetVisitor)

// WithHasher replaces the hashing strategy used for every fingerprint
// computed during this visitor's passes.
func WithHasher(factory func() hash.Hash64) VisitorOption {
	return func(v *HashSetVisitor) {
		v.hasher = factory
	}
}

// WithFNVHasher selects the standard library's FNV-1a strategy.
func WithFNVHasher() VisitorOption {
	return WithHasher(func() hash.Hash64 { return fnv.New64a() })
}

// NewHashSetVisitor creates a visitor with an empty visited set.
func NewHashSetVisitor(opts ...VisitorOption) *HashSetVisitor {
	v := &HashSetVisitor{
		visited: make(map[NodeID]GraphNode),
		hasher:  func() hash.Hash64 { return xxhash.New() },
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

func (v *HashSetVisitor) Visit(node GraphNode) bool {
	if _, seen := v.visited[node.ID()]; seen {
		return false
	}
	v.visited[node.ID()] = node
	return true
}

func (v *HashSetVisitor) Hasher() hash.Hash64 {
	return v.hasher()
}

func (v *HashSetVisitor) EndPass() {
	for id, node := range v.visited {
		node.Clean()
		delete(v.visited, id)
	}
}
