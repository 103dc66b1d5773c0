package primitives

import "github.com/ethereum/go-ethereum/common"

// Transaction mirrors §3: a `To` of nil is the only valid contract-creation
// marker. Decoders must never fabricate a To address.
type Transaction struct {
	Network Tag

	Hash             common.Hash
	BlockHash        *common.Hash
	BlockNumber      *uint64
	From             common.Address
	To               *common.Address
	Value            U256
	Nonce            U256
	Gas              U256
	GasPrice         U256
	Input            []byte
	V                U256
	R                U256
	S                U256
	TransactionIndex *uint64
}

// IsContractCreation reports whether this transaction is the one valid
// contract-creation marker per §3: To absent.
func (t *Transaction) IsContractCreation() bool {
	return t.To == nil
}

// Contract is the projection derived from a contract-creation transaction
// per §4.2: {tx_hash, from, input}.
type Contract struct {
	Network         Tag
	TransactionHash common.Hash
	From            common.Address
	Input           []byte
}

// ContractFromTransaction derives the Contract row for a transaction whose
// To is absent. Callers must check IsContractCreation first.
func ContractFromTransaction(t *Transaction) Contract {
	return Contract{
		Network:         t.Network,
		TransactionHash: t.Hash,
		From:            t.From,
		Input:           t.Input,
	}
}
