package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightlink-network/ll-tx-api/database/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetExecutedTransaction gets an executed rollup transaction by its hash.
// Returns nil if the transaction has not been executed.
func (s *Storage) GetExecutedTransaction(ctx context.Context, txHash common.Hash) (*models.ExecutedTransaction, error) {
	collection := s.collection(executedTransactionsCollection)

	filter := bson.D{{Key: "tx_hash", Value: txHash.Hex()}}

	var tx models.ExecutedTransaction
	if err := collection.FindOne(s.sessionContext(ctx), filter).Decode(&tx); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get executed transaction by hash: %w", err)
	}

	return &tx, nil
}
