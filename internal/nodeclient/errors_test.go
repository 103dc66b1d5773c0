package nodeclient

import (
	"strings"
	"testing"
)

func TestRetryableKinds(t *testing.T) {
	cases := []struct {
		kind      Kind
		retryable bool
	}{
		{KindTransport, true},
		{KindEmptyStream, true},
		{KindProtocol, false},
		{KindFatal, false},
	}
	for _, c := range cases {
		err := &Error{Kind: c.kind, Method: "eth_getBlockByNumber"}
		if got := err.Retryable(); got != c.retryable {
			t.Fatalf("Kind(%s).Retryable() = %v, want %v", c.kind, got, c.retryable)
		}
	}
}

func TestErrorMessageIncludesBlock(t *testing.T) {
	n := uint64(42)
	err := &Error{Kind: KindProtocol, Method: "eth_getLogs", Block: &n, Message: "bad response"}
	got := err.Error()
	if got == "" {
		t.Fatal("Error() must not be empty")
	}
	if !strings.Contains(got, "block=42") {
		t.Fatalf("Error() = %q, want it to mention block=42", got)
	}
}
