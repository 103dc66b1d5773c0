package primitives

import (
	"math/big"
	"testing"
)

func TestNewU256FromHex(t *testing.T) {
	u, err := NewU256FromHex("0x2a")
	if err != nil {
		t.Fatalf("NewU256FromHex: %v", err)
	}
	if u.Int64() != 42 {
		t.Fatalf("got %d, want 42", u.Int64())
	}
}

func TestNewU256FromHexEmpty(t *testing.T) {
	u, err := NewU256FromHex("0x")
	if err != nil {
		t.Fatalf("NewU256FromHex: %v", err)
	}
	if u.Int64() != 0 {
		t.Fatalf("got %d, want 0", u.Int64())
	}
}

func TestNewU256FromHexMalformed(t *testing.T) {
	if _, err := NewU256FromHex("0xzz"); err == nil {
		t.Fatal("expected decode error for malformed hex")
	}
}

func TestFitsInt64(t *testing.T) {
	small := NewU256(big.NewInt(100))
	if !small.FitsInt64() {
		t.Fatal("100 should fit in int64")
	}

	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	large := NewU256(huge)
	if large.FitsInt64() {
		t.Fatal("2^200 should not fit in int64")
	}
}

func TestLittleEndianBytes32(t *testing.T) {
	u := NewU256(big.NewInt(0x0102))
	b := u.LittleEndianBytes32()
	if len(b) != 32 {
		t.Fatalf("len(b) = %d, want 32", len(b))
	}
	if b[0] != 0x02 || b[1] != 0x01 {
		t.Fatalf("got %x, want low byte first", b[:2])
	}
	for i := 2; i < 32; i++ {
		if b[i] != 0 {
			t.Fatalf("byte %d = %x, want 0", i, b[i])
		}
	}
}

func TestLittleEndianBytes32Zero(t *testing.T) {
	u := NewU256(nil)
	b := u.LittleEndianBytes32()
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %x, want 0", i, v)
		}
	}
}
