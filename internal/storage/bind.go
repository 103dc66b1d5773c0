package storage

import "github.com/eventify-go/eventify/pkg/primitives"

// bindU256 encodes a U256 as a fixed 32-byte little-endian slice, so every
// u256-typed column binds a single stable Go type (bytea) regardless of
// magnitude — values that fit an int64 still round-trip through
// FitsInt64/Int64 for in-process comparisons, but never through the wire.
func bindU256(u primitives.U256) interface{} {
	return u.LittleEndianBytes32()
}

func bindUint64Ptr(p *uint64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func bindBytes(b []byte) interface{} {
	if b == nil {
		return []byte{}
	}
	return b
}
