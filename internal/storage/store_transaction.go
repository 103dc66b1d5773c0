package storage

import (
	"context"
	"fmt"

	"github.com/eventify-go/eventify/pkg/primitives"
)

// StoreTransaction inserts into "<schema>.transaction", per storage/pg.rs's
// store_transaction (14 columns, quoted "from"/"to" reserved-word columns).
func (s *Sink) StoreTransaction(ctx context.Context, t *primitives.Transaction) error {
	schema := t.Network.Schema()
	sql := fmt.Sprintf(`
INSERT INTO %s.transaction
	(hash, block_hash, block_number, "from", "to", value, nonce, gas, gas_price, input, v, r, s, transaction_index)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
ON CONFLICT DO NOTHING`, schema)

	var blockHash, to interface{}
	if t.BlockHash != nil {
		blockHash = t.BlockHash.Bytes()
	}
	if t.To != nil {
		to = t.To.Bytes()
	}

	err := s.exec(ctx, sql,
		t.Hash.Bytes(), blockHash, bindUint64Ptr(t.BlockNumber), t.From.Bytes(), to,
		bindU256(t.Value), bindU256(t.Nonce), bindU256(t.Gas), bindU256(t.GasPrice),
		bindBytes(t.Input), bindU256(t.V), bindU256(t.R), bindU256(t.S), bindUint64Ptr(t.TransactionIndex),
	)
	if err != nil {
		return &StoreError{Table: schema + ".transaction", Tag: t.Hash.Hex(), Err: err}
	}
	return nil
}

// StoreContract inserts the contract-creation projection into
// "<schema>.contract", per §4.2 and storage/pg.rs's store_contract.
func (s *Sink) StoreContract(ctx context.Context, c *primitives.Contract) error {
	schema := c.Network.Schema()
	sql := fmt.Sprintf(`
INSERT INTO %s.contract (tx_hash, "from", input)
VALUES ($1,$2,$3)
ON CONFLICT DO NOTHING`, schema)

	if err := s.exec(ctx, sql, c.TransactionHash.Bytes(), c.From.Bytes(), bindBytes(c.Input)); err != nil {
		return &StoreError{Table: schema + ".contract", Tag: c.TransactionHash.Hex(), Err: err}
	}
	return nil
}
