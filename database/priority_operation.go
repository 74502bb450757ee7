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

// GetExecutedPriorityOperationByHash gets an executed priority operation by
// the hash of the base-chain transaction that created it. Returns nil if
// there is none.
func (s *Storage) GetExecutedPriorityOperationByHash(ctx context.Context, ethHash common.Hash) (*models.PriorityOperation, error) {
	collection := s.collection(priorityOperationsCollection)

	filter := bson.D{{Key: "eth_hash", Value: ethHash.Hex()}}

	var op models.PriorityOperation
	if err := collection.FindOne(s.sessionContext(ctx), filter).Decode(&op); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get executed priority operation by hash: %w", err)
	}

	return &op, nil
}
