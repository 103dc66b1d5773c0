package nodeclient

import "fmt"

// Kind tags the error taxonomy the Manager uses to decide whether to
// restart a stream, per §7.
type Kind int

const (
	KindTransport Kind = iota
	KindEmptyStream
	KindProtocol
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindEmptyStream:
		return "empty_stream"
	case KindProtocol:
		return "protocol"
	default:
		return "fatal"
	}
}

// Error is the typed error every request/subscription item returns,
// bearing the RPC method name, a block number where applicable, and the
// upstream message, per §4.1.
type Error struct {
	Kind    Kind
	Method  string
	Block   *uint64
	Message string
}

func (e *Error) Error() string {
	if e.Block != nil {
		return fmt.Sprintf("nodeclient: %s(%s, block=%d): %s", e.Kind, e.Method, *e.Block, e.Message)
	}
	return fmt.Sprintf("nodeclient: %s(%s): %s", e.Kind, e.Method, e.Message)
}

// Retryable reports whether the Manager's reconnect loop should treat this
// error as restart-worthy (Transport/EmptyStream) rather than fatal.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransport || e.Kind == KindEmptyStream
}
