// Package events implements the closed dispatch table of well-known ABI
// event signatures (ERC-20/721/777/1155/4626) and their decoded Go
// representations, per §4.2/§9 of the data model: "prefer a dispatch table
// keyed by topics[0] to branching prose in code."
package events

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// signature computes the topic-0 hash for an event the same way
// go-ethereum's own abi package does: Keccak-256 of the canonical
// "Name(type,type,...)" string.
func signature(canonical string) common.Hash {
	return crypto.Keccak256Hash([]byte(canonical))
}

var (
	TransferTopic        = signature("Transfer(address,address,uint256)")
	ApprovalTopic        = signature("Approval(address,address,uint256)")
	ApprovalForAllTopic  = signature("ApprovalForAll(address,address,bool)")
	SentTopic            = signature("Sent(address,address,address,uint256,bytes,bytes)")
	MintedTopic          = signature("Minted(address,address,uint256,bytes,bytes)")
	BurnedTopic          = signature("Burned(address,address,uint256,bytes,bytes)")
	AuthorizedOperatorTopic = signature("AuthorizedOperator(address,address)")
	RevokedOperatorTopic    = signature("RevokedOperator(address,address)")
	TransferSingleTopic  = signature("TransferSingle(address,address,address,uint256,uint256)")
	TransferBatchTopic   = signature("TransferBatch(address,address,address,uint256[],uint256[])")
	URITopic             = signature("URI(string,uint256)")
	DepositTopic         = signature("Deposit(address,address,uint256,uint256)")
	WithdrawTopic        = signature("Withdraw(address,address,address,uint256,uint256)")
)

// Tag names the decoded-event variant, used as the propagation channel
// suffix per §6 (e.g. "log_erc20_transfer").
type Tag string

const (
	TagERC20Transfer          Tag = "log_erc20_transfer"
	TagERC20Approval          Tag = "log_erc20_approval"
	TagERC721Transfer         Tag = "log_erc721_transfer"
	TagERC721Approval         Tag = "log_erc721_approval"
	TagERC721ApprovalForAll   Tag = "log_erc20_approval_for_all" // matches §6's channel spelling exactly
	TagERC777Sent             Tag = "log_erc777_sent"
	TagERC777Minted           Tag = "log_erc777_minted"
	TagERC777Burned           Tag = "log_erc777_burned"
	TagERC777AuthorizedOperator Tag = "log_erc777_authorized_operator"
	TagERC777RevokedOperator  Tag = "log_erc777_revoked_operator"
	TagERC1155TransferSingle  Tag = "log_erc1155_transfer_single"
	TagERC1155TransferBatch   Tag = "log_erc1155_transfer_batch"
	TagERC1155URI             Tag = "log_erc1155_uri"
	TagERC4626Deposit         Tag = "log_erc4626_deposit"
	TagERC4626Withdraw        Tag = "log_erc4626_withdraw"
)
