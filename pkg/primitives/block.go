package primitives

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/eventify-go/eventify/pkg/network"
)

// Block is the canonical in-memory representation of a network head, per
// §3 of the data model: core fields are common to every network, the
// pointer fields (BaseFee, TotalDifficulty, ...) are per-network
// extensions stored as optional columns of the same schema row.
type Block struct {
	Network Tag

	Number     *uint64
	Hash       *common.Hash
	ParentHash common.Hash
	MixDigest  *common.Hash
	UncleHash  common.Hash
	ReceiptHash common.Hash
	Root       common.Hash
	TxHash     common.Hash
	Coinbase   common.Address
	Nonce      *uint64
	GasUsed    U256
	GasLimit   U256
	Difficulty U256
	Extra      []byte
	Bloom      *[256]byte
	Time       uint64

	// Network-specific extensions, all optional.
	BaseFee             *U256
	TotalDifficulty     *U256
	WithdrawalsHash     *common.Hash
	BeaconRoot          *common.Hash
	BlobGasUsed         *uint64
	BlobGasExcess       *uint64
	L1BatchNumber       *uint64
}

// Tag is a convenience alias so callers needn't import pkg/network solely
// for the field type.
type Tag = network.Tag

// Resource names the kind of record for channel naming (§6).
type Resource string

const (
	ResourceBlock Resource = "block"
	ResourceTx    Resource = "tx"
	ResourceLog   Resource = "log"
)

// Channel returns the queue channel name for a record of this resource on
// the given network: "<network>:<resource>" exactly, per §6/§8.
func Channel(net Tag, resource Resource) string {
	return net.String() + ":" + string(resource)
}
