package storage

import (
	"context"
	"fmt"

	"github.com/eventify-go/eventify/pkg/primitives"
)

// StoreLog inserts the raw log row into "<schema>.log", per §3/§4.2: the
// raw row is written unconditionally and exactly once, independent of
// whatever decoded variant may also be written (see SPEC_FULL.md §13).
func (s *Sink) StoreLog(ctx context.Context, l *primitives.Log) error {
	schema := l.Network.Schema()
	sql := fmt.Sprintf(`
INSERT INTO %s.log
	(address, topics, data, block_hash, block_number, tx_hash, tx_index, log_index, removed,
	 l1_batch_number, tx_log_index, log_type)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
ON CONFLICT DO NOTHING`, schema)

	topics := make([][]byte, len(l.Topics))
	for i, t := range l.Topics {
		topics[i] = t.Bytes()
	}

	var blockHash, txHash, logType interface{}
	if l.BlockHash != nil {
		blockHash = l.BlockHash.Bytes()
	}
	if l.TransactionHash != nil {
		txHash = l.TransactionHash.Bytes()
	}
	if l.LogType != nil {
		logType = *l.LogType
	}

	err := s.exec(ctx, sql,
		l.Address.Bytes(), topics, bindBytes(l.Data), blockHash, bindUint64Ptr(l.BlockNumber),
		txHash, bindUint64Ptr(l.TransactionIndex), bindUint64Ptr(l.LogIndex), l.Removed,
		bindUint64Ptr(l.L1BatchNumber), bindUint64Ptr(l.TxLogIndex), logType,
	)
	if err != nil {
		tag := "unknown"
		if l.TransactionHash != nil {
			tag = l.TransactionHash.Hex()
		}
		return &StoreError{Table: schema + ".log", Tag: tag, Err: err}
	}
	return nil
}
