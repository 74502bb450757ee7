package transaction

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightlink-network/ll-tx-api/database/models"
	"github.com/lightlink-network/ll-tx-api/signature"
	"github.com/lightlink-network/ll-tx-api/types"
)

// rollupTxSource resolves rollup transaction hashes. Executed transactions
// take precedence over the mempool, which may still hold a stale entry.
type rollupTxSource struct{}

func (rollupTxSource) name() string { return "rollup_transaction" }

func (rollupTxSource) executedStatus(ctx context.Context, st Storage, tx *models.ExecutedTransaction) (types.L2Status, error) {
	if !tx.Success {
		return types.L2Rejected, nil
	}
	if tx.Verified {
		return types.L2Finalized, nil
	}

	finalized, err := IsBlockFinalized(ctx, st, *tx.BlockNumber)
	if err != nil {
		return "", err
	}
	if finalized {
		return types.L2Finalized, nil
	}
	return types.L2Committed, nil
}

func (s rollupTxSource) executed(ctx context.Context, st Storage, hash common.Hash) (*models.ExecutedTransaction, types.L2Status, error) {
	tx, err := st.GetExecutedTransaction(ctx, hash)
	if err != nil || tx == nil {
		return nil, "", err
	}

	if tx.BlockNumber == nil {
		return nil, "", fmt.Errorf("%w: executed transaction %s has no block number", ErrInconsistentRecord, hash.Hex())
	}

	status, err := s.executedStatus(ctx, st, tx)
	if err != nil {
		return nil, "", err
	}
	return tx, status, nil
}

func failReason(tx *models.ExecutedTransaction, status types.L2Status) *string {
	if status != types.L2Rejected {
		return nil
	}
	return tx.FailReason
}

func (s rollupTxSource) receipt(ctx context.Context, st Storage, hash common.Hash) (*Receipt, error) {
	tx, status, err := s.executed(ctx, st, hash)
	if err != nil {
		return nil, err
	}
	if tx != nil {
		block := *tx.BlockNumber
		return &Receipt{
			Kind: L2ReceiptKind,
			L2: &L2Receipt{
				TxHash:      hash,
				RollupBlock: &block,
				Status:      status,
				FailReason:  failReason(tx, status),
			},
		}, nil
	}

	queued, err := st.MempoolContainsTx(ctx, hash)
	if err != nil || !queued {
		return nil, err
	}

	return &Receipt{
		Kind: L2ReceiptKind,
		L2: &L2Receipt{
			TxHash: hash,
			Status: types.L2Queued,
		},
	}, nil
}

func (s rollupTxSource) data(ctx context.Context, st Storage, hash common.Hash) (*TxData, error) {
	tx, status, err := s.executed(ctx, st, hash)
	if err != nil {
		return nil, err
	}
	if tx != nil {
		return s.executedData(hash, tx, status)
	}

	queued, err := st.GetMempoolTx(ctx, hash)
	if err != nil || queued == nil {
		return nil, err
	}

	payload, err := models.OperationJSON(queued.Tx)
	if err != nil {
		return nil, err
	}

	ethSignature, err := signature.EncodeSignData(queued.EthSignData)
	if err != nil {
		return nil, fmt.Errorf("%w: mempool transaction %s: %w", ErrInconsistentRecord, hash.Hex(), err)
	}

	return &TxData{
		Tx: Transaction{
			TxHash:    hash,
			Op:        payload,
			Status:    types.L2Queued,
			CreatedAt: queued.CreatedAt,
		},
		EthSignature: ethSignature,
	}, nil
}

func (rollupTxSource) executedData(hash common.Hash, tx *models.ExecutedTransaction, status types.L2Status) (*TxData, error) {
	payload, err := models.OperationJSON(tx.Tx)
	if err != nil {
		return nil, err
	}

	ethSignature, err := signature.EncodeSignData(tx.EthSignData)
	if err != nil {
		return nil, fmt.Errorf("%w: executed transaction %s: %w", ErrInconsistentRecord, hash.Hex(), err)
	}

	block := *tx.BlockNumber
	return &TxData{
		Tx: Transaction{
			TxHash:      hash,
			BlockNumber: &block,
			Op:          payload,
			Status:      status,
			FailReason:  failReason(tx, status),
			CreatedAt:   tx.CreatedAt,
		},
		EthSignature: ethSignature,
	}, nil
}
