package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/eventify-go/eventify/pkg/primitives"
)

// Decoded pairs a decoded event value with the channel tag it publishes
// under.
type Decoded struct {
	Tag   Tag
	Event interface{}
}

// addressFromTopic extracts the low 20 bytes of an indexed address
// parameter, which ABI encoding left-pads to 32 bytes. Grounded on
// original_source/crates/eventify-core/src/collector.rs's commented
// Address::try_from(&sent[12..32]) slicing.
func addressFromTopic(t common.Hash) common.Address {
	var a common.Address
	copy(a[:], t[12:])
	return a
}

func u256FromWord(word []byte) primitives.U256 {
	return primitives.NewU256(new(big.Int).SetBytes(word))
}

func word(data []byte, i int) []byte {
	start := i * 32
	if start+32 > len(data) {
		return nil
	}
	return data[start : start+32]
}

// Decode inspects a raw log's topics[0] against the closed signature table
// and, on a match, attempts to parse the remaining topics and data into the
// corresponding variant. A decode failure (data too short for the fixed
// words, wrong topic count) returns a zero Decoded and false so the caller
// falls back to storing the raw log only, per §4.2 — this is never fatal.
// For the ERC-777 variants, a dynamic bytes field whose offset or length
// runs past the data is left nil rather than failing the decode.
func Decode(log *primitives.Log) (Decoded, bool) {
	if len(log.Topics) == 0 {
		return Decoded{}, false
	}
	txHash := common.Hash{}
	if log.TransactionHash != nil {
		txHash = *log.TransactionHash
	}

	switch log.Topic0() {
	case TransferTopic:
		if len(log.Topics) >= 4 {
			return Decoded{Tag: TagERC721Transfer, Event: ERC721Transfer{
				TransactionHash: txHash,
				From:            addressFromTopic(log.Topics[1]),
				To:              addressFromTopic(log.Topics[2]),
				TokenID:         u256FromWord(log.Topics[3][:]),
			}}, true
		}
		if len(log.Topics) == 3 {
			w := word(log.Data, 0)
			if w == nil {
				return Decoded{}, false
			}
			return Decoded{Tag: TagERC20Transfer, Event: ERC20Transfer{
				TransactionHash: txHash,
				From:            addressFromTopic(log.Topics[1]),
				To:              addressFromTopic(log.Topics[2]),
				Value:           u256FromWord(w),
			}}, true
		}
		return Decoded{}, false

	case ApprovalTopic:
		if len(log.Topics) >= 4 {
			return Decoded{Tag: TagERC721Approval, Event: ERC721Approval{
				TransactionHash: txHash,
				Owner:           addressFromTopic(log.Topics[1]),
				Approved:        addressFromTopic(log.Topics[2]),
				TokenID:         u256FromWord(log.Topics[3][:]),
			}}, true
		}
		if len(log.Topics) == 3 {
			w := word(log.Data, 0)
			if w == nil {
				return Decoded{}, false
			}
			return Decoded{Tag: TagERC20Approval, Event: ERC20Approval{
				TransactionHash: txHash,
				Owner:           addressFromTopic(log.Topics[1]),
				Spender:         addressFromTopic(log.Topics[2]),
				Value:           u256FromWord(w),
			}}, true
		}
		return Decoded{}, false

	case ApprovalForAllTopic:
		if len(log.Topics) != 3 {
			return Decoded{}, false
		}
		w := word(log.Data, 0)
		if w == nil {
			return Decoded{}, false
		}
		approved := w[len(w)-1] != 0
		return Decoded{Tag: TagERC721ApprovalForAll, Event: ERC721ApprovalForAll{
			TransactionHash: txHash,
			Owner:           addressFromTopic(log.Topics[1]),
			Operator:        addressFromTopic(log.Topics[2]),
			Approved:        approved,
		}}, true

	case SentTopic:
		if len(log.Topics) != 3 {
			return Decoded{}, false
		}
		if word(log.Data, 3) == nil {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC777Sent, Event: ERC777Sent{
			TransactionHash: txHash,
			Operator:        addressFromTopic(log.Topics[1]),
			From:            addressFromTopic(log.Topics[2]),
			To:              addressFromDataWord(log.Data, 0),
			Amount:          u256FromWordAt(log.Data, 1),
			Data:             dynamicBytesAt(log.Data, 2),
			OperatorData:     dynamicBytesAt(log.Data, 3),
		}}, true

	case MintedTopic:
		if len(log.Topics) != 2 {
			return Decoded{}, false
		}
		if word(log.Data, 3) == nil {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC777Minted, Event: ERC777Minted{
			TransactionHash: txHash,
			Operator:        addressFromTopic(log.Topics[1]),
			To:              addressFromDataWord(log.Data, 0),
			Amount:          u256FromWordAt(log.Data, 1),
			Data:             dynamicBytesAt(log.Data, 2),
			OperatorData:     dynamicBytesAt(log.Data, 3),
		}}, true

	case BurnedTopic:
		if len(log.Topics) != 2 {
			return Decoded{}, false
		}
		if word(log.Data, 3) == nil {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC777Burned, Event: ERC777Burned{
			TransactionHash: txHash,
			Operator:        addressFromTopic(log.Topics[1]),
			From:            addressFromDataWord(log.Data, 0),
			Amount:          u256FromWordAt(log.Data, 1),
			Data:             dynamicBytesAt(log.Data, 2),
			OperatorData:     dynamicBytesAt(log.Data, 3),
		}}, true

	case AuthorizedOperatorTopic:
		if len(log.Topics) != 3 {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC777AuthorizedOperator, Event: ERC777AuthorizedOperator{
			TransactionHash: txHash,
			Operator:        addressFromTopic(log.Topics[1]),
			Holder:          addressFromTopic(log.Topics[2]),
		}}, true

	case RevokedOperatorTopic:
		if len(log.Topics) != 3 {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC777RevokedOperator, Event: ERC777RevokedOperator{
			TransactionHash: txHash,
			Operator:        addressFromTopic(log.Topics[1]),
			Holder:          addressFromTopic(log.Topics[2]),
		}}, true

	case TransferSingleTopic:
		if len(log.Topics) != 4 {
			return Decoded{}, false
		}
		idW, valW := word(log.Data, 0), word(log.Data, 1)
		if idW == nil || valW == nil {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC1155TransferSingle, Event: ERC1155TransferSingle{
			TransactionHash: txHash,
			Operator:        addressFromTopic(log.Topics[1]),
			From:            addressFromTopic(log.Topics[2]),
			To:              addressFromTopic(log.Topics[3]),
			ID:              u256FromWord(idW),
			Value:           u256FromWord(valW),
		}}, true

	case TransferBatchTopic:
		if len(log.Topics) != 4 {
			return Decoded{}, false
		}
		ids, values, ok := decodeUint256Arrays(log.Data)
		if !ok {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC1155TransferBatch, Event: ERC1155TransferBatch{
			TransactionHash: txHash,
			Operator:        addressFromTopic(log.Topics[1]),
			From:            addressFromTopic(log.Topics[2]),
			To:              addressFromTopic(log.Topics[3]),
			IDs:             ids,
			Values:          values,
		}}, true

	case URITopic:
		if len(log.Topics) != 2 {
			return Decoded{}, false
		}
		idW := log.Topics[1][:]
		str, ok := decodeDynamicString(log.Data, 0)
		if !ok {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC1155URI, Event: ERC1155URI{
			TransactionHash: txHash,
			Value:           str,
			ID:              u256FromWord(idW),
		}}, true

	case DepositTopic:
		if len(log.Topics) != 3 {
			return Decoded{}, false
		}
		assetsW, sharesW := word(log.Data, 0), word(log.Data, 1)
		if assetsW == nil || sharesW == nil {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC4626Deposit, Event: ERC4626Deposit{
			TransactionHash: txHash,
			Sender:          addressFromTopic(log.Topics[1]),
			Owner:           addressFromTopic(log.Topics[2]),
			Assets:          u256FromWord(assetsW),
			Shares:          u256FromWord(sharesW),
		}}, true

	case WithdrawTopic:
		if len(log.Topics) != 4 {
			return Decoded{}, false
		}
		assetsW, sharesW := word(log.Data, 0), word(log.Data, 1)
		if assetsW == nil || sharesW == nil {
			return Decoded{}, false
		}
		return Decoded{Tag: TagERC4626Withdraw, Event: ERC4626Withdraw{
			TransactionHash: txHash,
			Sender:          addressFromTopic(log.Topics[1]),
			Receiver:        addressFromTopic(log.Topics[2]),
			Owner:           addressFromTopic(log.Topics[3]),
			Assets:          u256FromWord(assetsW),
			Shares:          u256FromWord(sharesW),
		}}, true
	}

	return Decoded{}, false
}

func addressFromDataWord(data []byte, i int) common.Address {
	w := word(data, i)
	var a common.Address
	if w != nil {
		copy(a[:], w[12:])
	}
	return a
}

func u256FromWordAt(data []byte, i int) primitives.U256 {
	w := word(data, i)
	if w == nil {
		return primitives.NewU256(nil)
	}
	return u256FromWord(w)
}

// dynamicBytesAt resolves a `bytes` parameter whose head word (at slot i)
// holds a byte offset into data, per standard ABI dynamic-type encoding.
func dynamicBytesAt(data []byte, i int) []byte {
	offW := word(data, i)
	if offW == nil {
		return nil
	}
	off := new(big.Int).SetBytes(offW).Int64()
	if off < 0 || int(off)+32 > len(data) {
		return nil
	}
	lenW := data[off : off+32]
	length := new(big.Int).SetBytes(lenW).Int64()
	start := off + 32
	if length < 0 || int(start)+int(length) > len(data) {
		return nil
	}
	return data[start : start+length]
}

func decodeDynamicString(data []byte, i int) (string, bool) {
	b := dynamicBytesAt(data, i)
	if b == nil {
		return "", false
	}
	return string(b), true
}

// decodeUint256Arrays resolves the TransferBatch payload: two dynamic
// uint256[] parameters (ids, values).
func decodeUint256Arrays(data []byte) ([]primitives.U256, []primitives.U256, bool) {
	idsOffW, valuesOffW := word(data, 0), word(data, 1)
	if idsOffW == nil || valuesOffW == nil {
		return nil, nil, false
	}
	ids, ok1 := decodeUint256Array(data, new(big.Int).SetBytes(idsOffW).Int64())
	values, ok2 := decodeUint256Array(data, new(big.Int).SetBytes(valuesOffW).Int64())
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return ids, values, true
}

func decodeUint256Array(data []byte, off int64) ([]primitives.U256, bool) {
	if off < 0 || int(off)+32 > len(data) {
		return nil, false
	}
	length := new(big.Int).SetBytes(data[off : off+32]).Int64()
	out := make([]primitives.U256, 0, length)
	start := off + 32
	for n := int64(0); n < length; n++ {
		s := start + n*32
		if int(s)+32 > len(data) {
			return nil, false
		}
		out = append(out, u256FromWord(data[s:s+32]))
	}
	return out, true
}
