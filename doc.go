// Package depends provides a graph-based incremental computation engine for Go.
//
// # Overview
//
// A computation is expressed as a graph of nodes: mutable leaves (input
// nodes) and derived values recomputed from them. A derived value is
// recomputed only when the content of something it depends on actually
// changed, not merely because it was touched. Change is detected by
// comparing content fingerprints across resolution passes, so independent
// consumers of the same input each observe a precise, per-edge "did this
// actually change since I last looked" signal.
//
// The engine organizes code around four core concepts:
//
//  1. Input nodes: externally updatable leaf cells with a reentrancy guard
//  2. Dependency edges: per-consumer clean/dirty tracking of one graph edge
//  3. Derived nodes: payloads recomputed from resolved dependency views
//  4. Visitors: the traversal context carrying the hashing strategy through a pass
//
// # Basic Usage
//
// Payload types implement the Value capabilities (Named, Cleaner,
// HashValue) plus UpdateInput for leaves:
//
//	type Counter struct{ N uint64 }
//
//	func (c *Counter) Name() string  { return "Counter" }
//	func (c *Counter) Clean()        {}
//	func (c *Counter) UpdateMut(n uint64) { c.N = n }
//	func (c *Counter) HashValue(h hash.Hash64) depends.NodeHash {
//		return depends.HashUint64(h, c.N)
//	}
//
// Build the graph and run passes:
//
//	ids := depends.NewNodeIDSource()
//	node := depends.NewInputNode(ids, &Counter{N: 57})
//	edge := node.Dep()
//
//	visitor := depends.NewHashSetVisitor()
//	ref, err := edge.ResolveRoot(visitor)
//	// ref.IsDirty() == true, first resolution of an edge is always Dirty
//	// ref.Value().Value().N == 57
//
//	ref, err = edge.ResolveRoot(visitor)
//	// ref.IsDirty() == false, nothing changed
//
//	depends.Update(node, 42)
//	ref, err = edge.ResolveRoot(visitor)
//	// ref.IsDirty() == true, ref.Value().Value().N == 42
//
// # Derived Nodes
//
// Derived nodes own their payload and recompute it from dependency views:
//
//	doubled := depends.Derive1(
//		ids,
//		node.Dep(),
//		&Counter{},
//		func(value *Counter, d depends.DepRef[*depends.NodeState[*Counter]]) error {
//			value.N = d.Value().Value().N * 2
//			return nil
//		},
//	)
//
// By default recomputation runs only when at least one dependency reports
// Dirty; pass WithRecomputePolicy(RecomputeAlways) to recompute every
// pass. Either way a derived node reports Dirty upward only when its own
// recomputed content differs, because parents compare fingerprints.
//
// # Passes and Cleanup
//
// ResolveRoot runs one full pass and then invokes Clean on every node the
// pass reached, discarding transient per-pass bookkeeping (such as "items
// added this generation") before the next external mutation. Inner
// Resolve calls made while traversing never trigger cleanup.
//
// # Errors
//
// The engine is single-threaded and cooperative; the only concurrency
// primitive is the per-node reentrancy guard. Structural cycles and
// writes attempted mid-resolution surface as errors matching
// ErrExclusiveAccess instead of unbounded recursion or corrupted state.
// A failed pass leaves previously committed node state untouched and is
// never retried automatically.
package depends
