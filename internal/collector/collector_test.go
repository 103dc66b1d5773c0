package collector

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eventify-go/eventify/pkg/network"
)

func discardLogger() *logrus.Entry {
	lg := logrus.New()
	lg.SetOutput(io.Discard)
	return lg.WithField("test", "collector")
}

// bareCollector builds a Collector without starting its propagation
// goroutine, so send/recordStore can be exercised without a live node,
// database or Redis handle.
func bareCollector() *Collector {
	return &Collector{
		net:      network.Ethereum,
		lg:       discardLogger(),
		outbound: make(chan queuedItem, outboundCapacity),
		done:     make(chan struct{}),
	}
}

func TestSendEnqueuesItem(t *testing.T) {
	c := bareCollector()
	ok := c.send(context.Background(), "ethereum:block", 42)
	if !ok {
		t.Fatal("send should succeed when outbound has capacity")
	}

	select {
	case item := <-c.outbound:
		if item.channel != "ethereum:block" || item.payload != 42 {
			t.Fatalf("unexpected item: %+v", item)
		}
	default:
		t.Fatal("expected an item on outbound")
	}
}

func TestSendReturnsFalseOnCancelledContext(t *testing.T) {
	c := &Collector{
		net: network.Ethereum,
		lg:  discardLogger(),
		// zero capacity so the send blocks until ctx is checked
		outbound: make(chan queuedItem),
		done:     make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if c.send(ctx, "ethereum:block", 1) {
		t.Fatal("send should report false once ctx is cancelled")
	}
}

func TestRecordStoreDoesNotPanicOnSuccessOrFailure(t *testing.T) {
	c := bareCollector()
	c.recordStore("block", nil)
	c.recordStore("block", errors.New("write failed"))
}
