package collector

import (
	"context"
	"time"

	"github.com/eventify-go/eventify/pkg/events"
	"github.com/eventify-go/eventify/pkg/primitives"
)

// BlockRange parameterises historical (bounded) iteration, per §4.5's
// "Historical (range) mode": "for n in src..=dst step step". It replaces
// the subscription of the streaming mode with a bounded loop; every other
// semantic (persist, then publish) is identical.
type BlockRange struct {
	Src  uint64
	Dst  uint64
	Step uint64
}

// CollectBlocks walks a block range, persisting and publishing each block.
// Per §8 Scenario 4, the shutdown signal is checked before each iteration
// so that a cancellation mid-range stops before the next block is touched.
func (c *Collector) CollectBlocks(ctx context.Context, r BlockRange) error {
	start := time.Now()
	step := r.Step
	if step == 0 {
		step = 1
	}

	processed := uint64(0)
	for n := r.Src; n <= r.Dst; n += step {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		block, err := c.node.Block(ctx, n, c.net)
		if err != nil {
			return err
		}
		storeErr := c.store.StoreBlock(ctx, block)
		c.recordStore("block", storeErr)
		if storeErr != nil {
			c.lg.WithError(storeErr).Error("collector: store block failed")
		}
		if !c.send(ctx, primitives.Channel(c.net, primitives.ResourceBlock), block) {
			return nil
		}

		processed++
		if processed%30 == 0 {
			c.lg.WithFields(map[string]interface{}{
				"processed": processed,
				"latest":    n,
				"elapsed":   time.Since(start),
			}).Info("collector: range progress")
		}
	}
	return nil
}

// CollectTransactions walks a block range, persisting and publishing every
// transaction of every block in it.
func (c *Collector) CollectTransactions(ctx context.Context, r BlockRange) error {
	step := r.Step
	if step == 0 {
		step = 1
	}

	for n := r.Src; n <= r.Dst; n += step {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		txs, err := c.node.Transactions(ctx, n, c.net)
		if err != nil {
			return err
		}
		for _, tx := range txs {
			storeErr := c.store.StoreTransaction(ctx, tx)
			c.recordStore("transaction", storeErr)
			if storeErr != nil {
				c.lg.WithError(storeErr).Error("collector: store transaction failed")
			}
			if tx.IsContractCreation() {
				contract := primitives.ContractFromTransaction(tx)
				contractErr := c.store.StoreContract(ctx, &contract)
				c.recordStore("contract", contractErr)
				if contractErr != nil {
					c.lg.WithError(contractErr).Error("collector: store contract failed")
				}
			}
			if !c.send(ctx, primitives.Channel(c.net, primitives.ResourceTx), tx) {
				return nil
			}
		}
	}
	return nil
}

// CollectLogs runs a single eth_getLogs(criteria) query, persisting and
// publishing (with decoding) each returned log.
func (c *Collector) CollectLogs(ctx context.Context, criteria primitives.Criteria) error {
	logs, err := c.node.Logs(ctx, criteria, c.net)
	if err != nil {
		return err
	}

	for _, log := range logs {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		storeErr := c.store.StoreLog(ctx, log)
		c.recordStore("log", storeErr)
		if storeErr != nil {
			c.lg.WithError(storeErr).Error("collector: store log failed")
		}
		if !c.send(ctx, primitives.Channel(c.net, primitives.ResourceLog), log) {
			return nil
		}

		if decoded, ok := events.Decode(log); ok {
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
	return nil
}
