package primitives

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/eventify-go/eventify/pkg/network"
)

func TestCriteriaMarshalJSON(t *testing.T) {
	c := Criteria{
		Name:      "my-filter",
		FromBlock: 16,
		ToBlock:   32,
		Addresses: []common.Address{common.HexToAddress("0x1")},
		Topics:    []common.Hash{common.HexToHash("0x2")},
	}

	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded["fromBlock"] != "0x10" {
		t.Fatalf("fromBlock = %v, want 0x10", decoded["fromBlock"])
	}
	if decoded["toBlock"] != "0x20" {
		t.Fatalf("toBlock = %v, want 0x20", decoded["toBlock"])
	}
	if _, ok := decoded["name"]; ok {
		t.Fatal("Name must never appear on the wire")
	}
}

func TestChannelNaming(t *testing.T) {
	if got := Channel(network.Ethereum, ResourceBlock); got != "ethereum:block" {
		t.Fatalf("Channel = %q, want %q", got, "ethereum:block")
	}
}
