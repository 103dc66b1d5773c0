package collector

import (
	"context"

	"github.com/eventify-go/eventify/pkg/primitives"
)

// StreamBlocks opens a new-heads subscription and, for every head, persists
// it (idempotent) and forwards it to propagation, per §4.5 step-by-step
// algorithm. It returns when the subscription errors (Transport, handled
// by the Manager's reconnect loop) or ctx is cancelled (clean exit).
func (c *Collector) StreamBlocks(ctx context.Context) error {
	stream, err := c.node.StreamBlocks(ctx, c.net)
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

		block, err := stream.Next(ctx)
		if err != nil {
			return err
		}

		err = c.store.StoreBlock(ctx, block)
		c.recordStore("block", err)
		if err != nil {
			c.lg.WithError(err).Error("collector: store block failed")
		}

		if !c.send(ctx, primitives.Channel(c.net, primitives.ResourceBlock), block) {
			return nil
		}
	}
}
