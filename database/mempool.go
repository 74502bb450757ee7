package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightlink-network/ll-tx-api/database/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Storage) MempoolContainsTx(ctx context.Context, txHash common.Hash) (bool, error) {
	collection := s.collection(mempoolCollection)

	filter := bson.D{{Key: "tx_hash", Value: txHash.Hex()}}

	count, err := collection.CountDocuments(s.sessionContext(ctx), filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check mempool for transaction: %w", err)
	}

	return count > 0, nil
}

// GetMempoolTx gets a queued transaction from the mempool. Returns nil if the
// transaction is not in the mempool.
func (s *Storage) GetMempoolTx(ctx context.Context, txHash common.Hash) (*models.MempoolTransaction, error) {
	collection := s.collection(mempoolCollection)

	filter := bson.D{{Key: "tx_hash", Value: txHash.Hex()}}

	var tx models.MempoolTransaction
	if err := collection.FindOne(s.sessionContext(ctx), filter).Decode(&tx); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mempool transaction by hash: %w", err)
	}

	return &tx, nil
}
