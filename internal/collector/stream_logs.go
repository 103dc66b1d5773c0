package collector

import (
	"context"

	"github.com/eventify-go/eventify/pkg/events"
	"github.com/eventify-go/eventify/pkg/primitives"
)

// StreamLogs subscribes to raw logs and, for each one, writes and publishes
// the raw row exactly once; if topics[0] matches a known signature it
// additionally writes and publishes the decoded variant under its own
// channel. The raw log is never published a second time — see
// SPEC_FULL.md §13's resolution of the original's double-publish bug.
func (c *Collector) StreamLogs(ctx context.Context) error {
	stream, err := c.node.StreamLogs(ctx, c.net)
	if err != nil {
		return err
	}
	defer stream.Close(context.Background())

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		log, err := stream.Next(ctx)
		if err != nil {
			return err
		}

		storeErr := c.store.StoreLog(ctx, log)
		c.recordStore("log", storeErr)
		if storeErr != nil {
			c.lg.WithError(storeErr).Error("collector: store log failed")
		}
		if !c.send(ctx, primitives.Channel(c.net, primitives.ResourceLog), log) {
			return nil
		}

		decoded, ok := events.Decode(log)
		if !ok {
			continue
		}

		decodedErr := c.store.StoreDecoded(ctx, c.net, decoded)
		c.recordStore(string(decoded.Tag), decodedErr)
		if decodedErr != nil {
			c.lg.WithError(decodedErr).Error("collector: store decoded event failed")
		}
		envelope := decodedEventEnvelope{Log: log, Event: decoded.Event}
		if !c.send(ctx, c.net.String()+":"+string(decoded.Tag), envelope) {
			return nil
		}
	}
}
