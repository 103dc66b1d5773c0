package events

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/eventify-go/eventify/pkg/network"
	"github.com/eventify-go/eventify/pkg/primitives"
)

func addressTopic(a common.Address) common.Hash {
	var h common.Hash
	copy(h[12:], a[:])
	return h
}

func wordFor(v int64) []byte {
	b := make([]byte, 32)
	big.NewInt(v).FillBytes(b)
	return b
}

func TestDecodeERC20Transfer(t *testing.T) {
	from := common.HexToAddress("0x1111111111111111111111111111111111111111")
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	txHash := common.HexToHash("0xdead")

	log := &primitives.Log{
		Network:         network.Ethereum,
		Topics:          []common.Hash{TransferTopic, addressTopic(from), addressTopic(to)},
		Data:            wordFor(1000),
		TransactionHash: &txHash,
	}

	decoded, ok := Decode(log)
	if !ok {
		t.Fatal("expected a decode match")
	}
	if decoded.Tag != TagERC20Transfer {
		t.Fatalf("tag = %v, want %v", decoded.Tag, TagERC20Transfer)
	}
	ev, ok := decoded.Event.(ERC20Transfer)
	if !ok {
		t.Fatalf("event type = %T, want ERC20Transfer", decoded.Event)
	}
	if ev.From != from || ev.To != to {
		t.Fatalf("from/to mismatch: %v/%v", ev.From, ev.To)
	}
	if ev.Value.Int64() != 1000 {
		t.Fatalf("value = %d, want 1000", ev.Value.Int64())
	}
}

func TestDecodeERC721TransferDisambiguatedByTopicCount(t *testing.T) {
	from := common.HexToAddress("0x1111111111111111111111111111111111111111")
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	txHash := common.HexToHash("0xbeef")
	tokenID := common.BigToHash(big.NewInt(7))

	// Same topic-0 as ERC-20 Transfer, but the tokenId is indexed (4 topics).
	log := &primitives.Log{
		Network:         network.Ethereum,
		Topics:          []common.Hash{TransferTopic, addressTopic(from), addressTopic(to), tokenID},
		TransactionHash: &txHash,
	}

	decoded, ok := Decode(log)
	if !ok {
		t.Fatal("expected a decode match")
	}
	if decoded.Tag != TagERC721Transfer {
		t.Fatalf("tag = %v, want %v", decoded.Tag, TagERC721Transfer)
	}
	ev := decoded.Event.(ERC721Transfer)
	if ev.TokenID.Int64() != 7 {
		t.Fatalf("tokenID = %d, want 7", ev.TokenID.Int64())
	}
}

func TestDecodeUnknownTopicFallsBackToRawLog(t *testing.T) {
	log := &primitives.Log{
		Network: network.Ethereum,
		Topics:  []common.Hash{common.HexToHash("0xabcdef")},
	}
	if _, ok := Decode(log); ok {
		t.Fatal("an unrecognised topic must never decode")
	}
}

func TestDecodeEmptyTopicsFalse(t *testing.T) {
	log := &primitives.Log{Network: network.Ethereum}
	if _, ok := Decode(log); ok {
		t.Fatal("a log with no topics must never decode")
	}
}

func TestDecodeTransferBatch(t *testing.T) {
	operator := common.HexToAddress("0x3333333333333333333333333333333333333333")
	from := common.HexToAddress("0x1111111111111111111111111111111111111111")
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	txHash := common.HexToHash("0xcafe")

	var data []byte
	data = append(data, wordFor(64)...)  // ids offset
	data = append(data, wordFor(160)...) // values offset
	data = append(data, wordFor(2)...)   // ids length
	data = append(data, wordFor(10)...)
	data = append(data, wordFor(20)...)
	data = append(data, wordFor(2)...) // values length
	data = append(data, wordFor(100)...)
	data = append(data, wordFor(200)...)

	log := &primitives.Log{
		Network:         network.Ethereum,
		Topics:          []common.Hash{TransferBatchTopic, addressTopic(operator), addressTopic(from), addressTopic(to)},
		Data:            data,
		TransactionHash: &txHash,
	}

	decoded, ok := Decode(log)
	if !ok {
		t.Fatal("expected a decode match")
	}
	ev := decoded.Event.(ERC1155TransferBatch)
	if len(ev.IDs) != 2 || ev.IDs[0].Int64() != 10 || ev.IDs[1].Int64() != 20 {
		t.Fatalf("ids = %v", ev.IDs)
	}
	if len(ev.Values) != 2 || ev.Values[0].Int64() != 100 || ev.Values[1].Int64() != 200 {
		t.Fatalf("values = %v", ev.Values)
	}
}
