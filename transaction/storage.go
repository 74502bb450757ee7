package transaction

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightlink-network/ll-tx-api/database/models"
	"github.com/lightlink-network/ll-tx-api/types"
)

// Storage is the read-only view over the rollup's committed facts. Lookups
// return nil when the record does not exist.
type Storage interface {
	GetExecutedPriorityOperationByHash(ctx context.Context, ethHash common.Hash) (*models.PriorityOperation, error)
	GetStoredAggregatedOperation(ctx context.Context, blockNumber uint32, actionType types.AggregatedActionType) (*models.AggregatedOperation, error)
	GetExecutedTransaction(ctx context.Context, txHash common.Hash) (*models.ExecutedTransaction, error)
	MempoolContainsTx(ctx context.Context, txHash common.Hash) (bool, error)
	GetMempoolTx(ctx context.Context, txHash common.Hash) (*models.MempoolTransaction, error)
	Close(ctx context.Context)
}

// StorageProvider hands out one Storage per request.
type StorageProvider interface {
	Access(ctx context.Context) (Storage, error)
}

type StorageProviderFunc func(ctx context.Context) (Storage, error)

func (f StorageProviderFunc) Access(ctx context.Context) (Storage, error) {
	return f(ctx)
}
