package queue

import (
	"errors"
	"testing"
)

func TestEmitErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &EmitError{Channel: "ethereum:block", Err: cause}

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should see through EmitError to its cause")
	}
	if got := err.Error(); got == "" {
		t.Fatal("Error() must not be empty")
	}
}

func TestNewRejectsInvalidURL(t *testing.T) {
	if _, err := New("not-a-redis-url"); err == nil {
		t.Fatal("New should reject a malformed queue URL")
	}
}
