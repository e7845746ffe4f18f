package depends

// Named provides a stable human-readable identifier for a node payload
// type. Used in diagnostics and error messages only.
type Named interface {
	Name() string
}

// Cleaner lets a payload discard transient per-pass bookkeeping (for
// example a list of "items added this generation") once a root resolution
// pass completes. Durable payload data and hash memory are not touched.
// A no-op implementation is fine for payloads with no transient state.
type Cleaner interface {
	Clean()
}

// Value is the contract any payload stored in a node must satisfy.
type Value interface {
	Named
	Cleaner
	HashValue
}

// UpdateInput is the contract for leaf payloads that accept external
// updates. U is the per-type shape of a partial update. UpdateMut is
// expected to be accretive for collection-like payloads: it merges the
// update into the payload rather than replacing it wholesale, and any
// "new since last generation" tracking it maintains must be cleared by
// the payload's own Clean.
type UpdateInput[U any] interface {
	Value
	UpdateMut(update U)
}
