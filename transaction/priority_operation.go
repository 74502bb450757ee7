package transaction

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightlink-network/ll-tx-api/database/models"
	"github.com/lightlink-network/ll-tx-api/types"
)

// priorityOpSource resolves hashes of base-chain transactions that created
// an executed priority operation.
type priorityOpSource struct{}

func (priorityOpSource) name() string { return "priority_operation" }

func (priorityOpSource) lookup(ctx context.Context, st Storage, hash common.Hash) (*models.PriorityOperation, types.L1Status, error) {
	op, err := st.GetExecutedPriorityOperationByHash(ctx, hash)
	if err != nil || op == nil {
		return nil, "", err
	}

	if op.BlockNumber == nil {
		return nil, "", fmt.Errorf("%w: executed priority operation %s has no block number", ErrInconsistentRecord, hash.Hex())
	}

	finalized, err := IsBlockFinalized(ctx, st, *op.BlockNumber)
	if err != nil {
		return nil, "", err
	}

	if finalized {
		return op, types.L1Finalized, nil
	}
	return op, types.L1Committed, nil
}

func (s priorityOpSource) receipt(ctx context.Context, st Storage, hash common.Hash) (*Receipt, error) {
	op, status, err := s.lookup(ctx, st, hash)
	if err != nil || op == nil {
		return nil, err
	}

	block := *op.BlockNumber
	return &Receipt{
		Kind: L1ReceiptKind,
		L1: &L1Receipt{
			Status:      status,
			EthBlock:    op.EthBlock,
			RollupBlock: &block,
			ID:          op.PriorityOpSerialID,
		},
	}, nil
}

func (s priorityOpSource) data(ctx context.Context, st Storage, hash common.Hash) (*TxData, error) {
	op, status, err := s.lookup(ctx, st, hash)
	if err != nil || op == nil {
		return nil, err
	}

	payload, err := models.OperationJSON(op.Operation)
	if err != nil {
		return nil, err
	}

	block := *op.BlockNumber
	return &TxData{
		Tx: Transaction{
			TxHash:      hash,
			BlockNumber: &block,
			Op:          payload,
			Status:      status.ToL2(),
			CreatedAt:   op.CreatedAt,
		},
	}, nil
}
