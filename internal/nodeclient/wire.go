package nodeclient

import (
	"encoding/json"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/eventify-go/eventify/pkg/primitives"
)

// wireBlock mirrors the eth_getBlockByNumber response shape; field names
// follow the standard Ethereum JSON-RPC naming used across the pack's
// go-ethereum-derived examples.
type wireBlock struct {
	Number           *string          `json:"number"`
	Hash             *string          `json:"hash"`
	ParentHash       string           `json:"parentHash"`
	MixHash          *string          `json:"mixHash"`
	Sha3Uncles       string           `json:"sha3Uncles"`
	ReceiptsRoot     string           `json:"receiptsRoot"`
	StateRoot        string           `json:"stateRoot"`
	TransactionsRoot string           `json:"transactionsRoot"`
	Miner            string           `json:"miner"`
	Nonce            *string          `json:"nonce"`
	GasUsed          string           `json:"gasUsed"`
	GasLimit         string           `json:"gasLimit"`
	Difficulty       string           `json:"difficulty"`
	ExtraData        string           `json:"extraData"`
	LogsBloom        *string          `json:"logsBloom"`
	Timestamp        string           `json:"timestamp"`
	BaseFeePerGas    *string          `json:"baseFeePerGas"`
	TotalDifficulty  *string          `json:"totalDifficulty"`
	WithdrawalsRoot  *string          `json:"withdrawalsRoot"`
	ParentBeaconRoot *string          `json:"parentBeaconBlockRoot"`
	BlobGasUsed      *string          `json:"blobGasUsed"`
	ExcessBlobGas    *string          `json:"excessBlobGas"`
	L1BatchNumber    *string          `json:"l1BatchNumber"`
	Transactions     []wireTransaction `json:"transactions"`
}

type wireTransaction struct {
	Hash             string  `json:"hash"`
	BlockHash        *string `json:"blockHash"`
	BlockNumber      *string `json:"blockNumber"`
	From             string  `json:"from"`
	To               *string `json:"to"`
	Value            string  `json:"value"`
	Nonce            string  `json:"nonce"`
	Gas              string  `json:"gas"`
	GasPrice         string  `json:"gasPrice"`
	Input            string  `json:"input"`
	V                string  `json:"v"`
	R                string  `json:"r"`
	S                string  `json:"s"`
	TransactionIndex *string `json:"transactionIndex"`
}

type wireLog struct {
	Address          string   `json:"address"`
	Topics           []string `json:"topics"`
	Data             string   `json:"data"`
	BlockHash        *string  `json:"blockHash"`
	BlockNumber      *string  `json:"blockNumber"`
	TransactionHash  *string  `json:"transactionHash"`
	TransactionIndex *string  `json:"transactionIndex"`
	LogIndex         *string  `json:"logIndex"`
	Removed          bool     `json:"removed"`
	L1BatchNumber    *string  `json:"l1BatchNumber"`
	TransactionLogIndex *string `json:"transactionLogIndex"`
	LogType          *string  `json:"logType"`
}

func hexToUint64Ptr(s *string) *uint64 {
	if s == nil {
		return nil
	}
	n, err := strconv.ParseUint(trimHex(*s), 16, 64)
	if err != nil {
		return nil
	}
	return &n
}

func hexToUint64(s string) uint64 {
	n, _ := strconv.ParseUint(trimHex(s), 16, 64)
	return n
}

func hexToHashPtr(s *string) *common.Hash {
	if s == nil {
		return nil
	}
	h := common.HexToHash(*s)
	return &h
}

func hexToU256(s string) primitives.U256 {
	u, err := primitives.NewU256FromHex(s)
	if err != nil {
		return primitives.NewU256(nil)
	}
	return u
}

func hexToBloomPtr(s *string) *[256]byte {
	if s == nil {
		return nil
	}
	b := common.FromHex(*s)
	if len(b) != 256 {
		return nil
	}
	var out [256]byte
	copy(out[:], b)
	return &out
}

func decodeWireBlock(raw json.RawMessage, net primitives.Tag) (*primitives.Block, error) {
	var w wireBlock
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &Error{Kind: KindProtocol, Method: "eth_getBlockByNumber", Message: err.Error()}
	}

	b := &primitives.Block{
		Network:      net,
		Number:       hexToUint64Ptr(w.Number),
		Hash:         hexToHashPtr(w.Hash),
		ParentHash:   common.HexToHash(w.ParentHash),
		MixDigest:    hexToHashPtr(w.MixHash),
		UncleHash:    common.HexToHash(w.Sha3Uncles),
		ReceiptHash:  common.HexToHash(w.ReceiptsRoot),
		Root:         common.HexToHash(w.StateRoot),
		TxHash:       common.HexToHash(w.TransactionsRoot),
		Coinbase:     common.HexToAddress(w.Miner),
		Nonce:        hexToUint64Ptr(w.Nonce),
		GasUsed:      hexToU256(w.GasUsed),
		GasLimit:     hexToU256(w.GasLimit),
		Difficulty:   hexToU256(w.Difficulty),
		Extra:        common.FromHex(w.ExtraData),
		Bloom:        hexToBloomPtr(w.LogsBloom),
		Time:         hexToUint64(w.Timestamp),
		WithdrawalsHash: hexToHashPtr(w.WithdrawalsRoot),
		BeaconRoot:   hexToHashPtr(w.ParentBeaconRoot),
		BlobGasUsed:  hexToUint64Ptr(w.BlobGasUsed),
		BlobGasExcess: hexToUint64Ptr(w.ExcessBlobGas),
		L1BatchNumber: hexToUint64Ptr(w.L1BatchNumber),
	}
	if w.BaseFeePerGas != nil {
		u := hexToU256(*w.BaseFeePerGas)
		b.BaseFee = &u
	}
	if w.TotalDifficulty != nil {
		u := hexToU256(*w.TotalDifficulty)
		b.TotalDifficulty = &u
	}
	return b, nil
}

func decodeWireTransaction(w wireTransaction, net primitives.Tag) *primitives.Transaction {
	var to *common.Address
	if w.To != nil {
		a := common.HexToAddress(*w.To)
		to = &a
	}
	return &primitives.Transaction{
		Network:          net,
		Hash:             common.HexToHash(w.Hash),
		BlockHash:        hexToHashPtr(w.BlockHash),
		BlockNumber:      hexToUint64Ptr(w.BlockNumber),
		From:             common.HexToAddress(w.From),
		To:               to,
		Value:            hexToU256(w.Value),
		Nonce:            hexToU256(w.Nonce),
		Gas:              hexToU256(w.Gas),
		GasPrice:         hexToU256(w.GasPrice),
		Input:            common.FromHex(w.Input),
		V:                hexToU256(w.V),
		R:                hexToU256(w.R),
		S:                hexToU256(w.S),
		TransactionIndex: hexToUint64Ptr(w.TransactionIndex),
	}
}

func decodeWireLog(w wireLog, net primitives.Tag) *primitives.Log {
	topics := make([]common.Hash, 0, len(w.Topics))
	for _, t := range w.Topics {
		topics = append(topics, common.HexToHash(t))
	}
	return &primitives.Log{
		Network:          net,
		Address:          common.HexToAddress(w.Address),
		Topics:           topics,
		Data:             common.FromHex(w.Data),
		BlockHash:        hexToHashPtr(w.BlockHash),
		BlockNumber:      hexToUint64Ptr(w.BlockNumber),
		TransactionHash:  hexToHashPtr(w.TransactionHash),
		TransactionIndex: hexToUint64Ptr(w.TransactionIndex),
		LogIndex:         hexToUint64Ptr(w.LogIndex),
		Removed:          w.Removed,
		L1BatchNumber:    hexToUint64Ptr(w.L1BatchNumber),
		TxLogIndex:       hexToUint64Ptr(w.TransactionLogIndex),
		LogType:          w.LogType,
	}
}
