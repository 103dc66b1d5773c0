package manager

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eventify-go/eventify/internal/nodeclient"
	"github.com/eventify-go/eventify/pkg/network"
)

func discardLogger() *logrus.Logger {
	lg := logrus.New()
	lg.SetOutput(discardWriter{})
	return lg
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestSuperviseFinishesOnNilError(t *testing.T) {
	m := &Manager{net: network.Ethereum, lg: discardLogger().WithField("test", "finish")}

	calls := int32(0)
	fn := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}

	done := make(chan struct{})
	go func() {
		m.supervise(context.Background(), "block", fn)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("supervise should return promptly when fn returns nil")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("fn called %d times, want 1", calls)
	}
}

func TestSuperviseRestartsOnRetryableError(t *testing.T) {
	m := &Manager{net: network.Ethereum, lg: discardLogger().WithField("test", "restart")}

	calls := int32(0)
	fn := func(ctx context.Context) error {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			return &nodeclient.Error{Kind: nodeclient.KindTransport, Method: "eth_subscribe", Message: "closed"}
		}
		return nil
	}

	done := make(chan struct{})
	go func() {
		m.supervise(context.Background(), "block", fn)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("supervise should eventually finish after retryable restarts")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("fn called %d times, want 3", got)
	}
}

func TestSuperviseDiesOnFatalError(t *testing.T) {
	m := &Manager{net: network.Ethereum, lg: discardLogger().WithField("test", "fatal")}

	calls := int32(0)
	fn := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("boom")
	}

	done := make(chan struct{})
	go func() {
		m.supervise(context.Background(), "block", fn)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("supervise should return promptly on a fatal error")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("fn called %d times, want 1 (no restart on fatal error)", calls)
	}
}

func TestSuperviseTerminatesOnCancel(t *testing.T) {
	m := &Manager{net: network.Ethereum, lg: discardLogger().WithField("test", "terminate")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := int32(0)
	fn := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}

	done := make(chan struct{})
	go func() {
		m.supervise(ctx, "block", fn)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("supervise should terminate immediately on a cancelled context")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("fn called %d times, want 0 after cancellation", calls)
	}
}
