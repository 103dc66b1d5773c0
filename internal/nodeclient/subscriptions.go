package nodeclient

import (
	"context"
	"encoding/json"

	"github.com/eventify-go/eventify/pkg/primitives"
)

const subscriptionBuffer = 256

func (c *Client) subscribe(ctx context.Context, kind string) (string, chan json.RawMessage, error) {
	raw, err := c.call(ctx, "eth_subscribe", []interface{}{kind})
	if err != nil {
		return "", nil, &Error{Kind: errKind(err), Method: "eth_subscribe", Message: err.Error()}
	}

	var subID string
	if err := json.Unmarshal(raw, &subID); err != nil {
		return "", nil, &Error{Kind: KindProtocol, Method: "eth_subscribe", Message: err.Error()}
	}

	ch := make(chan json.RawMessage, subscriptionBuffer)
	c.s.subsMu.Lock()
	c.s.subs[subID] = ch
	c.s.subsMu.Unlock()

	return subID, ch, nil
}

func (c *Client) unsubscribe(ctx context.Context, subID string) error {
	c.s.subsMu.Lock()
	delete(c.s.subs, subID)
	c.s.subsMu.Unlock()
	_, err := c.call(ctx, "eth_unsubscribe", []interface{}{subID})
	return err
}

// BlockStream is a live eth_subscribe("newHeads") stream.
type BlockStream struct {
	c     *Client
	subID string
	ch    chan json.RawMessage
	net   primitives.Tag
}

// StreamBlocks opens a newHeads subscription, per §4.1/§4.5.
func (c *Client) StreamBlocks(ctx context.Context, net primitives.Tag) (*BlockStream, error) {
	id, ch, err := c.subscribe(ctx, "newHeads")
	if err != nil {
		return nil, err
	}
	return &BlockStream{c: c, subID: id, ch: ch, net: net}, nil
}

// Next blocks until the next head arrives, the subscription closes
// (Transport error, restart-worthy per §7), or ctx is cancelled.
func (s *BlockStream) Next(ctx context.Context) (*primitives.Block, error) {
	select {
	case raw, ok := <-s.ch:
		if !ok {
			return nil, &Error{Kind: KindTransport, Method: "newHeads", Message: "subscription closed"}
		}
		return decodeWireBlock(raw, s.net)
	case <-s.c.s.closed:
		return nil, &Error{Kind: KindTransport, Method: "newHeads", Message: "connection closed"}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close unsubscribes from the stream.
func (s *BlockStream) Close(ctx context.Context) error {
	return s.c.unsubscribe(ctx, s.subID)
}

// LogStream is a live eth_subscribe("logs") stream.
type LogStream struct {
	c     *Client
	subID string
	ch    chan json.RawMessage
	net   primitives.Tag
}

// StreamLogs opens a logs subscription, per §4.1/§4.5.
func (c *Client) StreamLogs(ctx context.Context, net primitives.Tag) (*LogStream, error) {
	id, ch, err := c.subscribe(ctx, "logs")
	if err != nil {
		return nil, err
	}
	return &LogStream{c: c, subID: id, ch: ch, net: net}, nil
}

// Next blocks until the next log arrives, the subscription closes, or ctx
// is cancelled.
func (s *LogStream) Next(ctx context.Context) (*primitives.Log, error) {
	select {
	case raw, ok := <-s.ch:
		if !ok {
			return nil, &Error{Kind: KindTransport, Method: "logs", Message: "subscription closed"}
		}
		var wl wireLog
		if err := json.Unmarshal(raw, &wl); err != nil {
			return nil, &Error{Kind: KindProtocol, Method: "logs", Message: err.Error()}
		}
		return decodeWireLog(wl, s.net), nil
	case <-s.c.s.closed:
		return nil, &Error{Kind: KindTransport, Method: "logs", Message: "connection closed"}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close unsubscribes from the stream.
func (s *LogStream) Close(ctx context.Context) error {
	return s.c.unsubscribe(ctx, s.subID)
}
