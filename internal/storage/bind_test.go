package storage

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/eventify-go/eventify/pkg/primitives"
)

func TestBindU256(t *testing.T) {
	u := primitives.NewU256(big.NewInt(0x0102))
	got, ok := bindU256(u).([]byte)
	if !ok {
		t.Fatalf("bindU256 returned %T, want []byte", bindU256(u))
	}
	if len(got) != 32 {
		t.Fatalf("len = %d, want 32", len(got))
	}
	want := make([]byte, 32)
	want[0], want[1] = 0x02, 0x01
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestBindUint64Ptr(t *testing.T) {
	if bindUint64Ptr(nil) != nil {
		t.Fatal("nil pointer must bind to nil")
	}
	n := uint64(7)
	got, ok := bindUint64Ptr(&n).(uint64)
	if !ok || got != 7 {
		t.Fatalf("bindUint64Ptr(&7) = %v", bindUint64Ptr(&n))
	}
}

func TestBindBytesNilBecomesEmptySlice(t *testing.T) {
	got, ok := bindBytes(nil).([]byte)
	if !ok {
		t.Fatalf("bindBytes(nil) = %T, want []byte", bindBytes(nil))
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestBindBytesPassthrough(t *testing.T) {
	in := []byte{1, 2, 3}
	got, ok := bindBytes(in).([]byte)
	if !ok || !bytes.Equal(got, in) {
		t.Fatalf("bindBytes(%v) = %v", in, bindBytes(in))
	}
}
