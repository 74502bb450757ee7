package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/lightlink-network/ll-tx-api/database/models"
	"github.com/lightlink-network/ll-tx-api/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetStoredAggregatedOperation gets the aggregated operation of the given
// action type whose block range covers blockNumber. Returns nil if the
// block has not been aggregated for that action yet.
func (s *Storage) GetStoredAggregatedOperation(ctx context.Context, blockNumber uint32, actionType types.AggregatedActionType) (*models.AggregatedOperation, error) {
	collection := s.collection(aggregatedOperationsCollection)

	filter := bson.D{
		{Key: "action_type", Value: string(actionType)},
		{Key: "from_block", Value: bson.D{{Key: "$lte", Value: blockNumber}}},
		{Key: "to_block", Value: bson.D{{Key: "$gte", Value: blockNumber}}},
	}

	// a block may be re-aggregated after a revert, the latest one counts
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var op models.AggregatedOperation
	if err := collection.FindOne(s.sessionContext(ctx), filter, opts).Decode(&op); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get aggregated operation for block %d: %w", blockNumber, err)
	}

	return &op, nil
}
