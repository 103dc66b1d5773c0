package primitives

import "github.com/ethereum/go-ethereum/common"

// Log is the raw log record per §3. Zksync extensions are optional columns
// of the same row.
type Log struct {
	Network Tag

	Address          common.Address
	Topics           []common.Hash // at most 4
	Data             []byte
	BlockHash        *common.Hash
	BlockNumber      *uint64
	TransactionHash  *common.Hash
	TransactionIndex *uint64
	LogIndex         *uint64
	Removed          bool

	// Zksync extensions.
	L1BatchNumber *uint64
	TxLogIndex    *uint64
	LogType       *string
}

// Topic0 returns the first topic or the zero hash if there are none, used
// as the dispatch key for decoded-event lookup.
func (l *Log) Topic0() common.Hash {
	if len(l.Topics) == 0 {
		return common.Hash{}
	}
	return l.Topics[0]
}

// Criteria is a filter for historical log queries per §3/§6.
type Criteria struct {
	// Name is an optional operator-facing label for a saved filter; it is
	// never part of the wire request (see SPEC_FULL.md §12).
	Name string

	FromBlock uint64
	ToBlock   uint64
	Addresses []common.Address
	Topics    []common.Hash
}
