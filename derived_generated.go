package depends

// Arity-indexed derived node constructors. Each DeriveN wires N tracked
// dependency edges to a recompute function over their resolved views.
// The recompute function mutates the node's own payload in place; the
// engine re-fingerprints the payload afterwards so parents observe a
// content-accurate dirty signal.

// DerivedNode1 is a derived node over one dependency edge.
type DerivedNode1[T Value, D1 HashValue] struct {
	derivedCore[T]
	dep1      *Dependency[D1]
	recompute func(value T, d1 DepRef[D1]) error
}

// Derive1 creates a derived node from one dependency.
func Derive1[T Value, D1 HashValue](
	ids *NodeIDSource,
	d1 *Dependency[D1],
	initial T,
	recompute func(value T, d1 DepRef[D1]) error,
	opts ...DeriveOption,
) *DerivedNode1[T, D1] {
	return &DerivedNode1[T, D1]{
		derivedCore: newDerivedCore(ids, initial, opts),
		dep1:        d1,
		recompute:   recompute,
	}
}

func (n *DerivedNode1[T, D1]) Resolve(visitor Visitor) (*NodeState[T], error) {
	if err := n.guard.begin(Resolving, n.id, n.Name()); err != nil {
		return nil, err
	}
	defer n.guard.end()
	defer observe(visitor, n)()

	if visitor.Visit(n) {
		r1, err := n.dep1.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		if n.policy == RecomputeAlways || r1.IsDirty() {
			if err := n.recompute(n.state.data, r1); err != nil {
				return nil, err
			}
			n.state.markUnhashed()
			n.state.rehash(visitor.Hasher())
		}
	}
	return n.state, nil
}

// ResolveRoot runs one full resolution pass with this node as the root.
func (n *DerivedNode1[T, D1]) ResolveRoot(visitor Visitor) (*NodeState[T], error) {
	return ResolveRoot[*NodeState[T]](n, visitor)
}

// Dep wraps this node as a tracked dependency edge.
func (n *DerivedNode1[T, D1]) Dep() *Dependency[*NodeState[T]] {
	return NewDependency[*NodeState[T]](n)
}

// DerivedNode2 is a derived node over two dependency edges.
type DerivedNode2[T Value, D1 HashValue, D2 HashValue] struct {
	derivedCore[T]
	dep1      *Dependency[D1]
	dep2      *Dependency[D2]
	recompute func(value T, d1 DepRef[D1], d2 DepRef[D2]) error
}

// Derive2 creates a derived node from two dependencies.
func Derive2[T Value, D1 HashValue, D2 HashValue](
	ids *NodeIDSource,
	d1 *Dependency[D1],
	d2 *Dependency[D2],
	initial T,
	recompute func(value T, d1 DepRef[D1], d2 DepRef[D2]) error,
	opts ...DeriveOption,
) *DerivedNode2[T, D1, D2] {
	return &DerivedNode2[T, D1, D2]{
		derivedCore: newDerivedCore(ids, initial, opts),
		dep1:        d1,
		dep2:        d2,
		recompute:   recompute,
	}
}

func (n *DerivedNode2[T, D1, D2]) Resolve(visitor Visitor) (*NodeState[T], error) {
	if err := n.guard.begin(Resolving, n.id, n.Name()); err != nil {
		return nil, err
	}
	defer n.guard.end()
	defer observe(visitor, n)()

	if visitor.Visit(n) {
		r1, err := n.dep1.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		r2, err := n.dep2.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		if n.policy == RecomputeAlways || r1.IsDirty() || r2.IsDirty() {
			if err := n.recompute(n.state.data, r1, r2); err != nil {
				return nil, err
			}
			n.state.markUnhashed()
			n.state.rehash(visitor.Hasher())
		}
	}
	return n.state, nil
}

// ResolveRoot runs one full resolution pass with this node as the root.
func (n *DerivedNode2[T, D1, D2]) ResolveRoot(visitor Visitor) (*NodeState[T], error) {
	return ResolveRoot[*NodeState[T]](n, visitor)
}

// Dep wraps this node as a tracked dependency edge.
func (n *DerivedNode2[T, D1, D2]) Dep() *Dependency[*NodeState[T]] {
	return NewDependency[*NodeState[T]](n)
}

// DerivedNode3 is a derived node over three dependency edges.
type DerivedNode3[T Value, D1 HashValue, D2 HashValue, D3 HashValue] struct {
	derivedCore[T]
	dep1      *Dependency[D1]
	dep2      *Dependency[D2]
	dep3      *Dependency[D3]
	recompute func(value T, d1 DepRef[D1], d2 DepRef[D2], d3 DepRef[D3]) error
}

// Derive3 creates a derived node from three dependencies.
func Derive3[T Value, D1 HashValue, D2 HashValue, D3 HashValue](
	ids *NodeIDSource,
	d1 *Dependency[D1],
	d2 *Dependency[D2],
	d3 *Dependency[D3],
	initial T,
	recompute func(value T, d1 DepRef[D1], d2 DepRef[D2], d3 DepRef[D3]) error,
	opts ...DeriveOption,
) *DerivedNode3[T, D1, D2, D3] {
	return &DerivedNode3[T, D1, D2, D3]{
		derivedCore: newDerivedCore(ids, initial, opts),
		dep1:        d1,
		dep2:        d2,
		dep3:        d3,
		recompute:   recompute,
	}
}

func (n *DerivedNode3[T, D1, D2, D3]) Resolve(visitor Visitor) (*NodeState[T], error) {
	if err := n.guard.begin(Resolving, n.id, n.Name()); err != nil {
		return nil, err
	}
	defer n.guard.end()
	defer observe(visitor, n)()

	if visitor.Visit(n) {
		r1, err := n.dep1.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		r2, err := n.dep2.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		r3, err := n.dep3.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		if n.policy == RecomputeAlways || r1.IsDirty() || r2.IsDirty() || r3.IsDirty() {
			if err := n.recompute(n.state.data, r1, r2, r3); err != nil {
				return nil, err
			}
			n.state.markUnhashed()
			n.state.rehash(visitor.Hasher())
		}
	}
	return n.state, nil
}

// ResolveRoot runs one full resolution pass with this node as the root.
func (n *DerivedNode3[T, D1, D2, D3]) ResolveRoot(visitor Visitor) (*NodeState[T], error) {
	return ResolveRoot[*NodeState[T]](n, visitor)
}

// Dep wraps this node as a tracked dependency edge.
func (n *DerivedNode3[T, D1, D2, D3]) Dep() *Dependency[*NodeState[T]] {
	return NewDependency[*NodeState[T]](n)
}

// DerivedNode4 is a derived node over four dependency edges.
type DerivedNode4[T Value, D1 HashValue, D2 HashValue, D3 HashValue, D4 HashValue] struct {
	derivedCore[T]
	dep1      *Dependency[D1]
	dep2      *Dependency[D2]
	dep3      *Dependency[D3]
	dep4      *Dependency[D4]
	recompute func(value T, d1 DepRef[D1], d2 DepRef[D2], d3 DepRef[D3], d4 DepRef[D4]) error
}

// Derive4 creates a derived node from four dependencies.
func Derive4[T Value, D1 HashValue, D2 HashValue, D3 HashValue, D4 HashValue](
	ids *NodeIDSource,
	d1 *Dependency[D1],
	d2 *Dependency[D2],
	d3 *Dependency[D3],
	d4 *Dependency[D4],
	initial T,
	recompute func(value T, d1 DepRef[D1], d2 DepRef[D2], d3 DepRef[D3], d4 DepRef[D4]) error,
	opts ...DeriveOption,
) *DerivedNode4[T, D1, D2, D3, D4] {
	return &DerivedNode4[T, D1, D2, D3, D4]{
		derivedCore: newDerivedCore(ids, initial, opts),
		dep1:        d1,
		dep2:        d2,
		dep3:        d3,
		dep4:        d4,
		recompute:   recompute,
	}
}

func (n *DerivedNode4[T, D1, D2, D3, D4]) Resolve(visitor Visitor) (*NodeState[T], error) {
	if err := n.guard.begin(Resolving, n.id, n.Name()); err != nil {
		return nil, err
	}
	defer n.guard.end()
	defer observe(visitor, n)()

	if visitor.Visit(n) {
		r1, err := n.dep1.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		r2, err := n.dep2.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		r3, err := n.dep3.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		r4, err := n.dep4.Resolve(visitor)
		if err != nil {
			return nil, err
		}
		if n.policy == RecomputeAlways || r1.IsDirty() || r2.IsDirty() || r3.IsDirty() || r4.IsDirty() {
			if err := n.recompute(n.state.data, r1, r2, r3, r4); err != nil {
				return nil, err
			}
			n.state.markUnhashed()
			n.state.rehash(visitor.Hasher())
		}
	}
	return n.state, nil
}

// ResolveRoot runs one full resolution pass with this node as the root.
func (n *DerivedNode4[T, D1, D2, D3, D4]) ResolveRoot(visitor Visitor) (*NodeState[T], error) {
	return ResolveRoot[*NodeState[T]](n, visitor)
}

// Dep wraps this node as a tracked dependency edge.
func (n *DerivedNode4[T, D1, D2, D3, D4]) Dep() *Dependency[*NodeState[T]] {
	return NewDependency[*NodeState[T]](n)
}
