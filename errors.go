package depends

import (
	"errors"
	"fmt"
)

// ErrExclusiveAccess is the family sentinel for every exclusive-access
// violation: guard violations on nodes and contended dependency edges
// both match it under errors.Is. Receiving one signals a structural cycle
// in the dependency graph or a concurrent-use bug; callers should fix the
// graph shape rather than retry.
var ErrExclusiveAccess = errors.New("exclusive access violation")

// GuardError reports an illegal transition attempted on a node's resolve
// state: a resolve or update entered while another resolve or update was
// already in flight on the same node.
type GuardError struct {
	NodeID    NodeID
	Node      string
	State     ResolveState
	Attempted ResolveState
}

func (e *GuardError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("node %s (id %d): cannot enter %s while %s", e.Node, e.NodeID, e.Attempted, e.State)
	}
	return fmt.Sprintf("node %d: cannot enter %s while %s", e.NodeID, e.Attempted, e.State)
}

func (e *GuardError) Is(target error) bool {
	return target == ErrExclusiveAccess
}

// EdgeError reports that a dependency wrapper's hash-memory cell was
// re-entered: the same edge is being resolved again higher up the current
// call chain, which only happens when the graph contains a cycle through
// that exact edge.
type EdgeError struct {
	Node string
}

func (e *EdgeError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("dependency on %s is already being resolved", e.Node)
	}
	return "dependency is already being resolved"
}

func (e *EdgeError) Is(target error) bool {
	return target == ErrExclusiveAccess
}
