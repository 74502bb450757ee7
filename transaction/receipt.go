package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightlink-network/ll-tx-api/types"
)

type L1Receipt struct {
	Status      types.L1Status `json:"status"`
	EthBlock    uint64         `json:"eth_block"`
	RollupBlock *uint32        `json:"rollup_block"`
	ID          uint64         `json:"id"`
}

type L2Receipt struct {
	TxHash      common.Hash    `json:"tx_hash"`
	RollupBlock *uint32        `json:"rollup_block"`
	Status      types.L2Status `json:"status"`
	FailReason  *string        `json:"fail_reason"`
}

type ReceiptKind int

const (
	L1ReceiptKind ReceiptKind = iota + 1
	L2ReceiptKind
)

// Receipt is either an L1 or an L2 receipt, selected by Kind.
//
// The JSON form carries no tag: an L1 receipt has "eth_block" and "id", an
// L2 receipt has "tx_hash".
type Receipt struct {
	Kind ReceiptKind
	L1   *L1Receipt
	L2   *L2Receipt
}

func (r Receipt) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case L1ReceiptKind:
		return json.Marshal(r.L1)
	case L2ReceiptKind:
		return json.Marshal(r.L2)
	default:
		return nil, fmt.Errorf("unknown receipt kind %d", r.Kind)
	}
}

func (r *Receipt) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if _, ok := fields["tx_hash"]; ok {
		var l2 L2Receipt
		if err := json.Unmarshal(data, &l2); err != nil {
			return err
		}
		*r = Receipt{Kind: L2ReceiptKind, L2: &l2}
		return nil
	}

	_, hasEthBlock := fields["eth_block"]
	_, hasID := fields["id"]
	if !hasEthBlock || !hasID {
		return fmt.Errorf("receipt has neither tx_hash nor eth_block and id: %s", bytes.TrimSpace(data))
	}

	var l1 L1Receipt
	if err := json.Unmarshal(data, &l1); err != nil {
		return err
	}
	*r = Receipt{Kind: L1ReceiptKind, L1: &l1}
	return nil
}

// Status returns the receipt status in the L2 status space.
func (r Receipt) Status() types.L2Status {
	if r.Kind == L1ReceiptKind {
		return r.L1.Status.ToL2()
	}
	return r.L2.Status
}

// Transaction is the full record of a priority operation or a rollup
// transaction.
type Transaction struct {
	TxHash      common.Hash     `json:"tx_hash"`
	BlockNumber *uint32         `json:"block_number"`
	Op          json.RawMessage `json:"op"`
	Status      types.L2Status  `json:"status"`
	FailReason  *string         `json:"fail_reason"`
	CreatedAt   time.Time       `json:"created_at"`
}

type TxData struct {
	Tx           Transaction `json:"tx"`
	EthSignature *string     `json:"eth_signature"`
}
