package primitives

import "math/big"

// U256 is a 256-bit unsigned integer as it appears on the wire: decoded from
// a 0x-prefixed hex string and bound to storage as a fixed-width
// little-endian byte slice, per the persistence sink's encoding contract.
type U256 struct {
	v *big.Int
}

// NewU256FromHex parses a 0x-prefixed hex string into a U256. An empty or
// "0x" string decodes to zero.
func NewU256FromHex(hex string) (U256, error) {
	hex = trim0x(hex)
	if hex == "" {
		return U256{v: new(big.Int)}, nil
	}
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return U256{}, &DecodeError{Field: "u256", Value: hex}
	}
	return U256{v: v}, nil
}

// NewU256 wraps a big.Int directly; a nil i is treated as zero.
func NewU256(i *big.Int) U256 {
	if i == nil {
		return U256{v: new(big.Int)}
	}
	return U256{v: new(big.Int).Set(i)}
}

// Big returns the underlying big.Int; callers must not mutate it.
func (u U256) Big() *big.Int {
	if u.v == nil {
		return new(big.Int)
	}
	return u.v
}

// FitsInt64 reports whether the value fits a signed 64-bit integer, for
// in-process comparisons; the persistence sink binds every U256 as a
// fixed-width byte slice regardless of this.
func (u U256) FitsInt64() bool {
	return u.Big().IsInt64()
}

// Int64 returns the value as an int64; callers must check FitsInt64 first.
func (u U256) Int64() int64 {
	return u.Big().Int64()
}

// LittleEndianBytes32 returns the value as a fixed 32-byte little-endian
// two's-complement slice, the format the persistence sink binds for every
// u256-typed column, whatever its magnitude (§3 invariant).
func (u U256) LittleEndianBytes32() []byte {
	be := u.Big().Bytes()
	out := make([]byte, 32)
	n := len(be)
	for i := 0; i < n; i++ {
		out[i] = be[n-1-i]
	}
	return out
}

// String renders the canonical 0x-prefixed hex form.
func (u U256) String() string {
	return "0x" + u.Big().Text(16)
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// DecodeError reports a failure to decode a wire value into its typed form.
type DecodeError struct {
	Field string
	Value string
}

func (e *DecodeError) Error() string {
	return "primitives: cannot decode " + e.Field + " from " + e.Value
}
