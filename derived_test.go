package depends

import (
	"errors"
	"hash"
	"testing"
)

// Sum is a derived payload accumulating a computed total.
type Sum struct {
	total uint64
}

func (s *Sum) Name() string { return "Sum" }

func (s *Sum) Clean() {}

func (s *Sum) HashValue(hasher hash.Hash64) NodeHash {
	return HashUint64(hasher, s.total)
}

type fooRef = DepRef[*NodeState[*Foo]]

func TestDerive1_RecomputesOnlyWhenDirty(t *testing.T) {
	ids := NewNodeIDSource()
	node := NewInputNode(ids, &Foo{n: 5})

	recomputes := 0
	doubled := Derive1(
		ids,
		node.Dep(),
		&Sum{},
		func(value *Sum, d1 fooRef) error {
			recomputes++
			value.total = uint64(d1.Value().Value().n) * 2
			return nil
		},
	)
	edge := doubled.Dep()
	visitor := NewHashSetVisitor()

	ref, err := edge.ResolveRoot(visitor)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ref.IsDirty() {
		t.Error("first resolution must be dirty")
	}
	if got := ref.Value().Value().total; got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if recomputes != 1 {
		t.Errorf("expected 1 recompute, got %d", recomputes)
	}

	// Nothing changed: no recompute, clean upward.
	ref, err = edge.ResolveRoot(visitor)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ref.IsDirty() {
		t.Error("unchanged graph must resolve clean")
	}
	if recomputes != 1 {
		t.Errorf("expected no further recompute, got %d", recomputes)
	}

	if err := Update(node, 6); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	ref, err = edge.ResolveRoot(visitor)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ref.IsDirty() {
		t.Error("changed input must propagate dirty")
	}
	if got := ref.Value().Value().total; got != 12 {
		t.Errorf("expected 12, got %d", got)
	}
	if recomputes != 2 {
		t.Errorf("expected 2 recomputes, got %d", recomputes)
	}
}

func TestDerive1_RecomputeAlways(t *testing.T) {
	ids := NewNodeIDSource()
	node := NewInputNode(ids, &Foo{n: 5})

	recomputes := 0
	derived := Derive1(
		ids,
		node.Dep(),
		&Sum{},
		func(value *Sum, d1 fooRef) error {
			recomputes++
			value.total = uint64(d1.Value().Value().n)
			return nil
		},
		WithRecomputePolicy(RecomputeAlways),
	)
	edge := derived.Dep()
	visitor := NewHashSetVisitor()

	if _, err := edge.ResolveRoot(visitor); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	ref, err := edge.ResolveRoot(visitor)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if recomputes != 2 {
		t.Errorf("expected recompute on every pass, got %d", recomputes)
	}
	// Recomputation happened but the content is identical, so the
	// signal upward stays clean.
	if ref.IsDirty() {
		t.Error("identical recomputed content must report clean")
	}
}

func TestDerive1_DirtyOnlyWhenContentChanges(t *testing.T) {
	ids := NewNodeIDSource()
	node := NewInputNode(ids, &Foo{n: 5})

	// clamped saturates at 1: further input changes recompute it but
	// produce identical content.
	clamped := Derive1(
		ids,
		node.Dep(),
		&Sum{},
		func(value *Sum, d1 fooRef) error {
			if d1.Value().Value().n > 0 {
				value.total = 1
			} else {
				value.total = 0
			}
			return nil
		},
	)
	edge := clamped.Dep()
	visitor := NewHashSetVisitor()

	if _, err := edge.ResolveRoot(visitor); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := Update(node, 7); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ref, err := edge.ResolveRoot(visitor)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ref.IsDirty() {
		t.Error("recomputation yielding identical content must report clean")
	}
}

func TestDerive2_Diamond(t *testing.T) {
	ids := NewNodeIDSource()
	node := NewInputNode(ids, &Foo{n: 3})

	left := Derive1(
		ids,
		node.Dep(),
		&Sum{},
		func(value *Sum, d1 fooRef) error {
			value.total = uint64(d1.Value().Value().n) * 2
			return nil
		},
	)
	right := Derive1(
		ids,
		node.Dep(),
		&Sum{},
		func(value *Sum, d1 fooRef) error {
			value.total = uint64(d1.Value().Value().n) * 3
			return nil
		},
	)

	combined := Derive2(
		ids,
		left.Dep(),
		right.Dep(),
		&Sum{},
		func(value *Sum, d1, d2 DepRef[*NodeState[*Sum]]) error {
			value.total = d1.Value().Value().total + d2.Value().Value().total
			return nil
		},
	)
	edge := combined.Dep()
	visitor := NewHashSetVisitor()

	ref, err := edge.ResolveRoot(visitor)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := ref.Value().Value().total; got != 15 {
		t.Errorf("expected 15, got %d", got)
	}

	if err := Update(node, 4); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	ref, err = edge.ResolveRoot(visitor)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ref.IsDirty() {
		t.Error("shared input change must propagate through the diamond")
	}
	if got := ref.Value().Value().total; got != 20 {
		t.Errorf("expected 20, got %d", got)
	}
}

func TestDerive1_RecomputeErrorPropagates(t *testing.T) {
	ids := NewNodeIDSource()
	node := NewInputNode(ids, &Foo{n: 3})
	boom := errors.New("recompute failed")

	derived := Derive1(
		ids,
		node.Dep(),
		&Sum{},
		func(*Sum, fooRef) error {
			return boom
		},
	)
	visitor := NewHashSetVisitor()

	_, err := derived.ResolveRoot(visitor)
	if !errors.Is(err, boom) {
		t.Errorf("expected recompute error, got %v", err)
	}
}

// forward defers to a resolver chosen after construction, letting tests
// tie the knot for cycles.
type forward struct {
	inner Resolver[*NodeState[*Sum]]
}

func (f *forward) Resolve(visitor Visitor) (*NodeState[*Sum], error) {
	return f.inner.Resolve(visitor)
}

func TestDerived_CycleFails(t *testing.T) {
	ids := NewNodeIDSource()
	fwd := &forward{}

	derived := Derive1(
		ids,
		NewDependency[*NodeState[*Sum]](fwd),
		&Sum{},
		func(value *Sum, d1 DepRef[*NodeState[*Sum]]) error {
			value.total = d1.Value().Value().total
			return nil
		},
	)
	fwd.inner = derived
	visitor := NewHashSetVisitor()

	_, err := derived.ResolveRoot(visitor)
	if err == nil {
		t.Fatal("expected cycle to fail, got nil")
	}
	if !errors.Is(err, ErrExclusiveAccess) {
		t.Errorf("expected exclusive-access violation, got %v", err)
	}
	var guardErr *GuardError
	if !errors.As(err, &guardErr) {
		t.Fatalf("expected GuardError, got %T", err)
	}
	if guardErr.State != Resolving || guardErr.Attempted != Resolving {
		t.Errorf("unexpected transition %s -> %s", guardErr.State, guardErr.Attempted)
	}
}

func TestDerived_SharedNodeResolvesOncePerPass(t *testing.T) {
	ids := NewNodeIDSource()
	node := NewInputNode(ids, &Foo{n: 3})

	// Both edges of a single derived node point at the same input: each
	// edge tracks its own memory, the node itself recomputes only once.
	combined := Derive2(
		ids,
		node.Dep(),
		node.Dep(),
		&Sum{},
		func(value *Sum, d1, d2 fooRef) error {
			value.total = uint64(d1.Value().Value().n) + uint64(d2.Value().Value().n)
			return nil
		},
	)
	visitor := NewHashSetVisitor()

	state, err := combined.ResolveRoot(visitor)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := state.Value().total; got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
}
