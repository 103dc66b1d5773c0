package collector

import (
	"context"

	"github.com/eventify-go/eventify/pkg/primitives"
)

// StreamTransactions subscribes to new heads and, for each one, re-fetches
// the full transaction list (the head alone yields hashes only), per §4.5.
// Every transaction with To absent additionally writes a Contract record.
func (c *Collector) StreamTransactions(ctx context.Context) error {
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

		head, err := stream.Next(ctx)
		if err != nil {
			return err
		}
		if head.Number == nil {
			continue
		}

		txs, err := c.node.Transactions(ctx, *head.Number, c.net)
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
}
