// Package manager implements the per-network concurrency supervisor: one
// task per enabled resource kind, a reconnect loop per task, and a shared
// shutdown signal, per §4.6. Grounded on
// original_source/crates/eventify-core/src/manager.rs's tokio::select!
// reconnect loop, translated to a context.Context-driven Go select.
package manager

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eventify-go/eventify/internal/collector"
	"github.com/eventify-go/eventify/internal/metrics"
	"github.com/eventify-go/eventify/internal/nodeclient"
	"github.com/eventify-go/eventify/pkg/primitives"
)

// Resources selects which of the three streaming tasks to spawn.
type Resources struct {
	Blocks       bool
	Transactions bool
	Logs         bool
}

// Manager owns the supervising tasks for one network.
type Manager struct {
	net primitives.Tag
	c   *collector.Collector
	lg  *logrus.Entry
}

// New constructs a Manager for one network.
func New(net primitives.Tag, c *collector.Collector, lg *logrus.Logger) *Manager {
	return &Manager{net: net, c: c, lg: lg.WithField("network", net.String())}
}

// Run spawns the enabled resource tasks and blocks until every task has
// exited — either because ctx was cancelled (Terminated, per §4.6) or
// because every task reached Finished/Dead on its own.
func (m *Manager) Run(ctx context.Context, r Resources) {
	var wg sync.WaitGroup

	spawn := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.supervise(ctx, name, fn)
		}()
	}

	if r.Blocks {
		spawn("block", m.c.StreamBlocks)
	}
	if r.Transactions {
		spawn("transaction", m.c.StreamTransactions)
	}
	if r.Logs {
		spawn("log", m.c.StreamLogs)
	}

	wg.Wait()
}

const minBackoff = 500 * time.Millisecond
const maxBackoff = 30 * time.Second

// supervise implements the state machine in §4.6:
//
//	Running --ok--> Finished (stream closed cleanly; task exits)
//	Running --transport/empty-stream error--> Restarting --> Running
//	Running --any other error--> FatalError --> Dead
//	any state --shutdown--> Terminated
func (m *Manager) supervise(ctx context.Context, name string, fn func(context.Context) error) {
	log := m.lg.WithField("task", name)
	backoff := minBackoff

	for {
		select {
		case <-ctx.Done():
			log.Info("manager: terminated by shutdown signal")
			return
		default:
		}

		err := fn(ctx)

		if ctx.Err() != nil {
			log.Info("manager: terminated by shutdown signal")
			return
		}

		if err == nil {
			log.Info("manager: finished")
			return
		}

		if retryable(err) {
			log.WithError(err).Warn("manager: restarting stream")
			metrics.TaskRestarts.WithLabelValues(m.net.String(), name).Inc()
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				log.Info("manager: terminated by shutdown signal")
				return
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}

		log.WithError(err).Error("manager: fatal error, task dead")
		metrics.TaskDeaths.WithLabelValues(m.net.String(), name).Inc()
		return
	}
}

func retryable(err error) bool {
	if e, ok := err.(*nodeclient.Error); ok {
		return e.Retryable()
	}
	return false
}
