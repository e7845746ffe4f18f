package depends

import "sync/atomic"

// NodeID identifies a node for diagnostics and testing. It is not a
// correctness invariant: two nodes with equal payloads and different ids
// behave identically.
type NodeID uint64

// Identifiable is implemented by every graph node.
type Identifiable interface {
	ID() NodeID
}

// NodeIDSource allocates sequential node ids. It is owned by whoever
// builds the graph (an application, a test harness) rather than being
// process-global, so tests can reset it deterministically between runs.
type NodeIDSource struct {
	counter atomic.Uint64
}

// NewNodeIDSource creates an id source starting at zero.
func NewNodeIDSource() *NodeIDSource {
	return &NodeIDSource{}
}

// Next allocates the next id.
func (s *NodeIDSource) Next() NodeID {
	return NodeID(s.counter.Add(1) - 1)
}

// Reset rewinds the source so the next allocation yields zero.
func (s *NodeIDSource) Reset() {
	s.counter.Store(0)
}
