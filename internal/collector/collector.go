// Package collector drives the three per-network record streams (blocks,
// transactions, logs) and fans each persisted record out to the
// propagation sink, per §4.5. Grounded on
// original_source/crates/eventify-core/src/collector.rs.
package collector

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/eventify-go/eventify/internal/metrics"
	"github.com/eventify-go/eventify/internal/nodeclient"
	"github.com/eventify-go/eventify/internal/queue"
	"github.com/eventify-go/eventify/internal/storage"
	"github.com/eventify-go/eventify/pkg/primitives"
)

// outboundCapacity is the bounded channel capacity between the Collector
// and its propagation task, per §4.5/§2.
const outboundCapacity = 1500

type queuedItem struct {
	channel string
	payload interface{}
}

// Collector is the per-network streaming engine. It holds the node client,
// the persistence sink handle, and an outbound bounded sender to its own
// propagation goroutine.
type Collector struct {
	net   primitives.Tag
	node  *nodeclient.Client
	store *storage.Sink
	queue *queue.Sink
	lg    *logrus.Entry

	outbound chan queuedItem
	done     chan struct{}
}

// New constructs a Collector for one network and starts its propagation
// goroutine.
func New(net primitives.Tag, node *nodeclient.Client, store *storage.Sink, q *queue.Sink, lg *logrus.Logger) *Collector {
	c := &Collector{
		net:   net,
		node:  node,
		store: store,
		queue: q,
		lg: lg.WithFields(map[string]interface{}{
			"network": net.String(),
			"conn_id": node.ConnectionID().String(),
		}),
		outbound: make(chan queuedItem, outboundCapacity),
		done:     make(chan struct{}),
	}
	go c.propagate()
	return c
}

// Stop drains and stops the propagation goroutine. Callers must ensure no
// further sends occur after calling Stop.
func (c *Collector) Stop() {
	close(c.outbound)
	<-c.done
}

func (c *Collector) propagate() {
	defer close(c.done)
	for item := range c.outbound {
		if err := c.queue.Publish(context.Background(), item.channel, item.payload); err != nil {
			c.lg.WithError(err).Warn("propagation: publish failed")
			metrics.PublishFailures.WithLabelValues(c.net.String(), item.channel).Inc()
			continue
		}
		metrics.RecordsPublished.WithLabelValues(c.net.String(), item.channel).Inc()
	}
}

// send enqueues a record for propagation. If ctx is cancelled before the
// bounded channel accepts the item, send reports false and the caller
// treats this as an observed shutdown, per §4.5 step 2(b).
func (c *Collector) send(ctx context.Context, channel string, payload interface{}) bool {
	select {
	case c.outbound <- queuedItem{channel: channel, payload: payload}:
		return true
	case <-ctx.Done():
		return false
	}
}

// recordStore updates the store-side metrics for one persistence attempt.
func (c *Collector) recordStore(table string, err error) {
	if err != nil {
		metrics.StoreFailures.WithLabelValues(c.net.String(), table).Inc()
		return
	}
	metrics.RecordsStored.WithLabelValues(c.net.String(), table).Inc()
}

// decodedEventEnvelope is what a decoded-event publish carries: the parent
// log, so downstream consumers can correlate the decoded variant back to
// its raw log without a second query.
type decodedEventEnvelope struct {
	Log   *primitives.Log `json:"log"`
	Event interface{}     `json:"event"`
}
