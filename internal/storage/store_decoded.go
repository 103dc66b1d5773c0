package storage

import (
	"context"
	"fmt"

	"github.com/eventify-go/eventify/pkg/events"
	"github.com/eventify-go/eventify/pkg/primitives"
)

// StoreDecoded inserts a decoded-event row into its dedicated table, per
// §3's "decoded variants never replace the raw log row" and the dispatch
// table design note in §9. net must match the network the log came from.
func (s *Sink) StoreDecoded(ctx context.Context, net primitives.Tag, d events.Decoded) error {
	switch d.Tag {
	case events.TagERC20Transfer:
		return s.storeERC20Transfer(ctx, net, d.Event.(events.ERC20Transfer))
	case events.TagERC20Approval:
		return s.storeERC20Approval(ctx, net, d.Event.(events.ERC20Approval))
	case events.TagERC721Transfer:
		return s.storeERC721Transfer(ctx, net, d.Event.(events.ERC721Transfer))
	case events.TagERC721Approval:
		return s.storeERC721Approval(ctx, net, d.Event.(events.ERC721Approval))
	case events.TagERC721ApprovalForAll:
		return s.storeApprovalForAll(ctx, net, d.Event.(events.ERC721ApprovalForAll))
	case events.TagERC777Sent:
		return s.storeSent(ctx, net, d.Event.(events.ERC777Sent))
	case events.TagERC777Minted:
		return s.storeMinted(ctx, net, d.Event.(events.ERC777Minted))
	case events.TagERC777Burned:
		return s.storeBurned(ctx, net, d.Event.(events.ERC777Burned))
	case events.TagERC777AuthorizedOperator:
		return s.storeAuthorizedOperator(ctx, net, d.Event.(events.ERC777AuthorizedOperator))
	case events.TagERC777RevokedOperator:
		return s.storeRevokedOperator(ctx, net, d.Event.(events.ERC777RevokedOperator))
	case events.TagERC1155TransferSingle:
		return s.storeTransferSingle(ctx, net, d.Event.(events.ERC1155TransferSingle))
	case events.TagERC1155TransferBatch:
		return s.storeTransferBatch(ctx, net, d.Event.(events.ERC1155TransferBatch))
	case events.TagERC1155URI:
		return s.storeURI(ctx, net, d.Event.(events.ERC1155URI))
	case events.TagERC4626Deposit:
		return s.storeDeposit(ctx, net, d.Event.(events.ERC4626Deposit))
	case events.TagERC4626Withdraw:
		return s.storeWithdraw(ctx, net, d.Event.(events.ERC4626Withdraw))
	default:
		return &StoreError{Table: "decoded", Tag: string(d.Tag), Err: fmt.Errorf("unknown decoded tag")}
	}
}

func (s *Sink) storeERC20Transfer(ctx context.Context, net primitives.Tag, e events.ERC20Transfer) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc20_transfer (tx_hash, "from", "to", value) VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.From.Bytes(), e.To.Bytes(), bindU256(e.Value)); err != nil {
		return &StoreError{Table: schema + ".log_erc20_transfer", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeERC20Approval(ctx context.Context, net primitives.Tag, e events.ERC20Approval) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc20_approval (tx_hash, owner, spender, value) VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Owner.Bytes(), e.Spender.Bytes(), bindU256(e.Value)); err != nil {
		return &StoreError{Table: schema + ".log_erc20_approval", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeERC721Transfer(ctx context.Context, net primitives.Tag, e events.ERC721Transfer) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc721_transfer (tx_hash, "from", "to", token_id) VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.From.Bytes(), e.To.Bytes(), bindU256(e.TokenID)); err != nil {
		return &StoreError{Table: schema + ".log_erc721_transfer", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeERC721Approval(ctx context.Context, net primitives.Tag, e events.ERC721Approval) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc721_approval (tx_hash, owner, approved, token_id) VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Owner.Bytes(), e.Approved.Bytes(), bindU256(e.TokenID)); err != nil {
		return &StoreError{Table: schema + ".log_erc721_approval", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeApprovalForAll(ctx context.Context, net primitives.Tag, e events.ERC721ApprovalForAll) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc20_approval_for_all (tx_hash, owner, operator, approved) VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Owner.Bytes(), e.Operator.Bytes(), e.Approved); err != nil {
		return &StoreError{Table: schema + ".log_erc20_approval_for_all", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeSent(ctx context.Context, net primitives.Tag, e events.ERC777Sent) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc777_sent (tx_hash, operator, "from", "to", amount, data, operator_data) VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Operator.Bytes(), e.From.Bytes(), e.To.Bytes(), bindU256(e.Amount), bindBytes(e.Data), bindBytes(e.OperatorData)); err != nil {
		return &StoreError{Table: schema + ".log_erc777_sent", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeMinted(ctx context.Context, net primitives.Tag, e events.ERC777Minted) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc777_minted (tx_hash, operator, "to", amount, data, operator_data) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Operator.Bytes(), e.To.Bytes(), bindU256(e.Amount), bindBytes(e.Data), bindBytes(e.OperatorData)); err != nil {
		return &StoreError{Table: schema + ".log_erc777_minted", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeBurned(ctx context.Context, net primitives.Tag, e events.ERC777Burned) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc777_burned (tx_hash, operator, "from", amount, data, operator_data) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Operator.Bytes(), e.From.Bytes(), bindU256(e.Amount), bindBytes(e.Data), bindBytes(e.OperatorData)); err != nil {
		return &StoreError{Table: schema + ".log_erc777_burned", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeAuthorizedOperator(ctx context.Context, net primitives.Tag, e events.ERC777AuthorizedOperator) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc777_authorized_operator (tx_hash, operator, holder) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Operator.Bytes(), e.Holder.Bytes()); err != nil {
		return &StoreError{Table: schema + ".log_erc777_authorized_operator", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeRevokedOperator(ctx context.Context, net primitives.Tag, e events.ERC777RevokedOperator) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc777_revoked_operator (tx_hash, operator, holder) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Operator.Bytes(), e.Holder.Bytes()); err != nil {
		return &StoreError{Table: schema + ".log_erc777_revoked_operator", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeTransferSingle(ctx context.Context, net primitives.Tag, e events.ERC1155TransferSingle) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc1155_transfer_single (tx_hash, operator, "from", "to", id, value) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Operator.Bytes(), e.From.Bytes(), e.To.Bytes(), bindU256(e.ID), bindU256(e.Value)); err != nil {
		return &StoreError{Table: schema + ".log_erc1155_transfer_single", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeTransferBatch(ctx context.Context, net primitives.Tag, e events.ERC1155TransferBatch) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc1155_transfer_batch (tx_hash, operator, "from", "to", ids, values) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`, schema)
	ids := make([][]byte, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = id.LittleEndianBytes32()
	}
	values := make([][]byte, len(e.Values))
	for i, v := range e.Values {
		values[i] = v.LittleEndianBytes32()
	}
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Operator.Bytes(), e.From.Bytes(), e.To.Bytes(), ids, values); err != nil {
		return &StoreError{Table: schema + ".log_erc1155_transfer_batch", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeURI(ctx context.Context, net primitives.Tag, e events.ERC1155URI) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc1155_uri (tx_hash, value, id) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Value, bindU256(e.ID)); err != nil {
		return &StoreError{Table: schema + ".log_erc1155_uri", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeDeposit(ctx context.Context, net primitives.Tag, e events.ERC4626Deposit) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc4626_deposit (tx_hash, sender, owner, assets, shares) VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Sender.Bytes(), e.Owner.Bytes(), bindU256(e.Assets), bindU256(e.Shares)); err != nil {
		return &StoreError{Table: schema + ".log_erc4626_deposit", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}

func (s *Sink) storeWithdraw(ctx context.Context, net primitives.Tag, e events.ERC4626Withdraw) error {
	schema := net.Schema()
	sql := fmt.Sprintf(`INSERT INTO %s.log_erc4626_withdraw (tx_hash, sender, receiver, owner, assets, shares) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`, schema)
	if err := s.exec(ctx, sql, e.TransactionHash.Bytes(), e.Sender.Bytes(), e.Receiver.Bytes(), e.Owner.Bytes(), bindU256(e.Assets), bindU256(e.Shares)); err != nil {
		return &StoreError{Table: schema + ".log_erc4626_withdraw", Tag: e.TransactionHash.Hex(), Err: err}
	}
	return nil
}
