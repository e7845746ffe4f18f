package depends

import (
	"hash"

	"github.com/mitchellh/hashstructure/v2"
)

// HashReflect fingerprints an arbitrary value by structural reflection,
// for payload types that don't want to enumerate fields by hand. The
// structural sum is folded through the visitor-supplied hasher so passes
// hashed under different strategies stay distinguishable. It fails only
// on values hashstructure cannot walk (function or channel fields and
// the like).
func HashReflect(hasher hash.Hash64, v any) (NodeHash, error) {
	sum, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return NotHashed, err
	}
	return HashUint64(hasher, sum), nil
}

// MustHashReflect is HashReflect for values known to be hashable; it
// panics otherwise. Suitable inside HashValue implementations, where an
// unhashable payload is a programming error, not a runtime condition.
func MustHashReflect(hasher hash.Hash64, v any) NodeHash {
	h, err := HashReflect(hasher, v)
	if err != nil {
		panic(err)
	}
	return h
}
