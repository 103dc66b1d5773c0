package nodeclient

import (
	"context"
	"encoding/json"

	"github.com/eventify-go/eventify/pkg/primitives"
)

// Block implements eth_getBlockByNumber(hex, false), per §4.1/§6.
func (c *Client) Block(ctx context.Context, n uint64, net primitives.Tag) (*primitives.Block, error) {
	raw, err := c.call(ctx, "eth_getBlockByNumber", []interface{}{hexBlock(n), false})
	if err != nil {
		return nil, taggedBlockErr(err, "eth_getBlockByNumber", n)
	}
	return decodeWireBlock(raw, net)
}

// Transactions implements eth_getBlockByNumber(hex, true), extracting the
// full transaction list, per §4.1.
func (c *Client) Transactions(ctx context.Context, n uint64, net primitives.Tag) ([]*primitives.Transaction, error) {
	raw, err := c.call(ctx, "eth_getBlockByNumber", []interface{}{hexBlock(n), true})
	if err != nil {
		return nil, taggedBlockErr(err, "eth_getBlockByNumber", n)
	}

	var w wireBlock
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &Error{Kind: KindProtocol, Method: "eth_getBlockByNumber", Message: err.Error()}
	}

	txs := make([]*primitives.Transaction, 0, len(w.Transactions))
	for _, wt := range w.Transactions {
		txs = append(txs, decodeWireTransaction(wt, net))
	}
	return txs, nil
}

// Logs implements eth_getLogs(criteria), per §4.1/§6.
func (c *Client) Logs(ctx context.Context, criteria primitives.Criteria, net primitives.Tag) ([]*primitives.Log, error) {
	raw, err := c.call(ctx, "eth_getLogs", []interface{}{criteria})
	if err != nil {
		return nil, &Error{Kind: errKind(err), Method: "eth_getLogs", Message: err.Error()}
	}

	var wireLogs []wireLog
	if err := json.Unmarshal(raw, &wireLogs); err != nil {
		return nil, &Error{Kind: KindProtocol, Method: "eth_getLogs", Message: err.Error()}
	}

	logs := make([]*primitives.Log, 0, len(wireLogs))
	for _, wl := range wireLogs {
		logs = append(logs, decodeWireLog(wl, net))
	}
	return logs, nil
}

func taggedBlockErr(err error, method string, n uint64) error {
	if e, ok := err.(*Error); ok {
		e.Method = method
		e.Block = &n
		return e
	}
	return &Error{Kind: KindTransport, Method: method, Block: &n, Message: err.Error()}
}

func errKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindTransport
}
