package events

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/eventify-go/eventify/pkg/primitives"
)

// Every decoded variant carries the parent transaction hash plus its
// decoded indexed and non-indexed fields, per §3.

type ERC20Transfer struct {
	TransactionHash common.Hash
	From            common.Address
	To              common.Address
	Value           primitives.U256
}

type ERC20Approval struct {
	TransactionHash common.Hash
	Owner           common.Address
	Spender         common.Address
	Value           primitives.U256
}

type ERC721Transfer struct {
	TransactionHash common.Hash
	From            common.Address
	To              common.Address
	TokenID         primitives.U256
}

type ERC721Approval struct {
	TransactionHash common.Hash
	Owner           common.Address
	Approved        common.Address
	TokenID         primitives.U256
}

type ERC721ApprovalForAll struct {
	TransactionHash common.Hash
	Owner           common.Address
	Operator        common.Address
	Approved        bool
}

type ERC777Sent struct {
	TransactionHash common.Hash
	Operator        common.Address
	From            common.Address
	To              common.Address
	Amount          primitives.U256
	Data            []byte
	OperatorData    []byte
}

type ERC777Minted struct {
	TransactionHash common.Hash
	Operator        common.Address
	To              common.Address
	Amount          primitives.U256
	Data            []byte
	OperatorData    []byte
}

type ERC777Burned struct {
	TransactionHash common.Hash
	Operator        common.Address
	From            common.Address
	Amount          primitives.U256
	Data            []byte
	OperatorData    []byte
}

type ERC777AuthorizedOperator struct {
	TransactionHash common.Hash
	Operator        common.Address
	Holder          common.Address
}

type ERC777RevokedOperator struct {
	TransactionHash common.Hash
	Operator        common.Address
	Holder          common.Address
}

type ERC1155TransferSingle struct {
	TransactionHash common.Hash
	Operator        common.Address
	From            common.Address
	To              common.Address
	ID              primitives.U256
	Value           primitives.U256
}

type ERC1155TransferBatch struct {
	TransactionHash common.Hash
	Operator        common.Address
	From            common.Address
	To              common.Address
	IDs             []primitives.U256
	Values          []primitives.U256
}

type ERC1155URI struct {
	TransactionHash common.Hash
	Value           string
	ID              primitives.U256
}

type ERC4626Deposit struct {
	TransactionHash common.Hash
	Sender          common.Address
	Owner           common.Address
	Assets          primitives.U256
	Shares          primitives.U256
}

type ERC4626Withdraw struct {
	TransactionHash common.Hash
	Sender          common.Address
	Receiver        common.Address
	Owner           common.Address
	Assets          primitives.U256
	Shares          primitives.U256
}
