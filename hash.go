package depends

import (
	"encoding/binary"
	"hash"
)

// NodeHash is the content fingerprint of a resolved value. The zero value
// is the NotHashed sentinel, meaning no value has ever been summarised.
type NodeHash struct {
	hashed bool
	sum    uint64
}

// NotHashed is the sentinel hash carried by nodes that have never been
// resolved. It compares unequal to every hashed fingerprint.
var NotHashed = NodeHash{}

// Hashed wraps a finished hasher sum as a comparable fingerprint.
func Hashed(sum uint64) NodeHash {
	return NodeHash{hashed: true, sum: sum}
}

// IsHashed reports whether this hash carries a fingerprint.
func (h NodeHash) IsHashed() bool {
	return h.hashed
}

// Sum returns the fingerprint and whether one is present.
func (h NodeHash) Sum() (uint64, bool) {
	return h.sum, h.hashed
}

func (h NodeHash) String() string {
	if !h.hashed {
		return "NotHashed"
	}
	return "Hashed"
}

// HashValue is the content-fingerprinting capability every node payload
// must provide. Implementations write whatever identifies the payload's
// content into the hasher and return the finished fingerprint. The hasher
// is supplied by the traversal so one pass uses one consistent strategy.
//
// Two payloads considered semantically equal must hash identically under
// the same strategy. Collisions are possible and accepted: dirty detection
// needs "probably changed", not a cryptographic guarantee.
type HashValue interface {
	HashValue(hasher hash.Hash64) NodeHash
}

// HashBytes hashes a single byte slice. Convenience for payload types
// whose identity is one binary field.
func HashBytes(hasher hash.Hash64, b []byte) NodeHash {
	_, _ = hasher.Write(b)
	return Hashed(hasher.Sum64())
}

// HashString hashes a single string field.
func HashString(hasher hash.Hash64, s string) NodeHash {
	_, _ = hasher.Write([]byte(s))
	return Hashed(hasher.Sum64())
}

// HashUint64 hashes a single integer field, typically a generation
// counter on collection-like payloads.
func HashUint64(hasher hash.Hash64, v uint64) NodeHash {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = hasher.Write(buf[:])
	return Hashed(hasher.Sum64())
}
