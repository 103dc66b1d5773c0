package storage

import (
	"errors"
	"testing"
)

func TestStoreErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &StoreError{Table: "ethereum.block", Tag: "0xdead", Err: cause}

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should see through StoreError to its cause")
	}
	if got := err.Error(); got == "" {
		t.Fatal("Error() must not be empty")
	}
}
