package storage

import (
	"context"
	"fmt"

	"github.com/eventify-go/eventify/pkg/primitives"
)

// StoreBlock inserts a block row into "<schema>.block", ON CONFLICT DO
// NOTHING on (network implied by schema, hash), per §3/§4.3. Grounded on
// storage/pg.rs's store_block: 23-column insert, u256 fields bound as
// little-endian byte slices.
func (s *Sink) StoreBlock(ctx context.Context, b *primitives.Block) error {
	schema := b.Network.Schema()
	sql := fmt.Sprintf(`
INSERT INTO %s.block
	(number, hash, parent_hash, mix_digest, uncle_hash, receipt_hash, root, tx_hash,
	 coinbase, nonce, gas_used, gas_limit, difficulty, extra, bloom, time,
	 base_fee, total_difficulty, withdrawals_hash, beacon_root, blob_gas_used, blob_gas_excess, l1_batch_number)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
ON CONFLICT DO NOTHING`, schema)

	var hash, mixDigest, bloom, baseFee, totalDiff, withdrawalsHash, beaconRoot interface{}
	if b.Hash != nil {
		hash = b.Hash.Bytes()
	}
	if b.MixDigest != nil {
		mixDigest = b.MixDigest.Bytes()
	}
	if b.Bloom != nil {
		bloom = b.Bloom[:]
	}
	if b.BaseFee != nil {
		baseFee = bindU256(*b.BaseFee)
	}
	if b.TotalDifficulty != nil {
		totalDiff = bindU256(*b.TotalDifficulty)
	}
	if b.WithdrawalsHash != nil {
		withdrawalsHash = b.WithdrawalsHash.Bytes()
	}
	if b.BeaconRoot != nil {
		beaconRoot = b.BeaconRoot.Bytes()
	}

	err := s.exec(ctx, sql,
		bindUint64Ptr(b.Number), hash, b.ParentHash.Bytes(), mixDigest, b.UncleHash.Bytes(),
		b.ReceiptHash.Bytes(), b.Root.Bytes(), b.TxHash.Bytes(), b.Coinbase.Bytes(),
		bindUint64Ptr(b.Nonce), bindU256(b.GasUsed), bindU256(b.GasLimit), bindU256(b.Difficulty),
		bindBytes(b.Extra), bloom, b.Time,
		baseFee, totalDiff, withdrawalsHash, beaconRoot,
		bindUint64Ptr(b.BlobGasUsed), bindUint64Ptr(b.BlobGasExcess), bindUint64Ptr(b.L1BatchNumber),
	)
	if err != nil {
		tag := "pending"
		if b.Hash != nil {
			tag = b.Hash.Hex()
		}
		return &StoreError{Table: schema + ".block", Tag: tag, Err: err}
	}
	return nil
}
