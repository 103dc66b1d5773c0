package nodeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/eventify-go/eventify/pkg/network"
)

// fakeNode is a minimal JSON-RPC-over-websocket peer standing in for a real
// blockchain node, answering eth_blockNumber and eth_getBlockByNumber with
// canned responses.
func fakeNode(t *testing.T) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var req rpcRequest
			if err := json.Unmarshal(data, &req); err != nil {
				continue
			}

			var result string
			switch req.Method {
			case "eth_blockNumber":
				result = `"0x2a"`
			case "eth_getBlockByNumber":
				result = `{"number":"0x2a","parentHash":"0x01","sha3Uncles":"0x02","receiptsRoot":"0x03","stateRoot":"0x04","transactionsRoot":"0x05","miner":"0x06","gasUsed":"0x1","gasLimit":"0x2","difficulty":"0x3","extraData":"0x","timestamp":"0x64"}`
			default:
				result = "null"
			}

			resp := rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: json.RawMessage(result)}
			out, _ := json.Marshal(resp)
			if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
				return
			}
		}
	}))
}

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestClientBlockNumber(t *testing.T) {
	srv := fakeNode(t)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := Connect(ctx, wsURL(srv.URL), 0, nil)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	n, err := c.BlockNumber(ctx)
	if err != nil {
		t.Fatalf("BlockNumber: %v", err)
	}
	if n != 42 {
		t.Fatalf("BlockNumber = %d, want 42", n)
	}
}

func TestClientBlock(t *testing.T) {
	srv := fakeNode(t)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := Connect(ctx, wsURL(srv.URL), 0, nil)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	block, err := c.Block(ctx, 42, network.Ethereum)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	if block.Number == nil || *block.Number != 42 {
		t.Fatalf("block.Number = %v, want 42", block.Number)
	}
	if block.Network != network.Ethereum {
		t.Fatalf("block.Network = %v, want ethereum", block.Network)
	}
}

func TestConnectFailsAfterExhaustingRetries(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := Connect(ctx, "ws://127.0.0.1:1/does-not-exist", 1, nil); err == nil {
		t.Fatal("Connect should fail against an unreachable host")
	}
}
