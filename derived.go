package depends

// RecomputePolicy decides when a derived node recomputes its payload
// from its dependencies' clean/dirty signals. The engine only guarantees
// the signal is accurate relative to content; whether to act on it is a
// per-node choice.
type RecomputePolicy uint8

const (
	// RecomputeWhenDirty recomputes only when at least one dependency
	// reports Dirty. The default.
	RecomputeWhenDirty RecomputePolicy = iota
	// RecomputeAlways recomputes on every pass. The node still reports
	// Dirty upward only if the recomputed content actually differs,
	// since parents compare fingerprints, not recomputation activity.
	RecomputeAlways
)

func (p RecomputePolicy) String() string {
	if p == RecomputeAlways {
		return "RecomputeAlways"
	}
	return "RecomputeWhenDirty"
}

type derivedConfig struct {
	policy RecomputePolicy
}

// DeriveOption is a modifier for derived nodes.
type DeriveOption func(*derivedConfig)

// WithRecomputePolicy overrides the default RecomputeWhenDirty policy.
func WithRecomputePolicy(policy RecomputePolicy) DeriveOption {
	return func(c *derivedConfig) {
		c.policy = policy
	}
}

// derivedCore carries the state every derived node owns regardless of
// arity: a node state with its own hash memory, a reentrancy guard, and
// the recompute policy. A derived node behaves exactly like an input
// node with respect to its own hash memory; only the source of payload
// changes differs.
type derivedCore[T Value] struct {
	guard  nodeGuard
	state  *NodeState[T]
	id     NodeID
	policy RecomputePolicy
}

func newDerivedCore[T Value](ids *NodeIDSource, initial T, opts []DeriveOption) derivedCore[T] {
	cfg := derivedConfig{policy: RecomputeWhenDirty}
	for _, opt := range opts {
		opt(&cfg)
	}

	return derivedCore[T]{
		state:  NewNodeState(initial),
		id:     ids.Next(),
		policy: cfg.policy,
	}
}

func (c *derivedCore[T]) ID() NodeID {
	return c.id
}

func (c *derivedCore[T]) Name() string {
	return c.state.data.Name()
}

func (c *derivedCore[T]) Clean() {
	c.state.data.Clean()
}
