//go:build !ci
// +build !ci

package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightlink-network/ll-tx-api/database/models"
	"github.com/lightlink-network/ll-tx-api/types"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// newTestDatabase connects to the mongo instance in LL_TX_API_TEST_MONGO_URI
// and uses a throwaway database that is dropped after the test.
func newTestDatabase(t *testing.T) *Database {
	uri := os.Getenv("LL_TX_API_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("LL_TX_API_TEST_MONGO_URI not set")
	}

	db, err := NewDatabase(DatabaseOpts{
		URI:          uri,
		DatabaseName: fmt.Sprintf("ll_tx_api_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.client.Database(db.databaseName).Drop(ctx)
		_ = db.Disconnect(ctx)
	})

	require.NoError(t, db.CreateIndexes(context.Background()))
	return db
}

func insert(t *testing.T, db *Database, collection string, doc interface{}) {
	_, err := db.client.Database(db.databaseName).Collection(collection).InsertOne(context.Background(), doc)
	require.NoError(t, err)
}

func TestStorage_lookups(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	ethHash := common.HexToHash("0x01")
	executedHash := common.HexToHash("0x02")
	queuedHash := common.HexToHash("0x03")
	unknownHash := common.HexToHash("0x04")

	block := uint32(100)
	operation, err := bson.Marshal(bson.D{{Key: "type", Value: "Deposit"}})
	require.NoError(t, err)

	insert(t, db, priorityOperationsCollection, models.PriorityOperation{
		EthHash:            ethHash.Hex(),
		EthBlock:           12,
		BlockNumber:        &block,
		PriorityOpSerialID: 5,
		Operation:          operation,
		CreatedAt:          time.Now().UTC().Truncate(time.Millisecond),
	})
	insert(t, db, executedTransactionsCollection, models.ExecutedTransaction{
		TxHash:      executedHash.Hex(),
		BlockNumber: &block,
		Tx:          operation,
		Success:     true,
	})
	insert(t, db, mempoolCollection, models.MempoolTransaction{TxHash: queuedHash.Hex(), Tx: operation})
	insert(t, db, aggregatedOperationsCollection, models.AggregatedOperation{
		ActionType: string(types.ExecuteBlocks),
		FromBlock:  90,
		ToBlock:    110,
		Confirmed:  true,
	})

	st, err := db.Access(ctx)
	require.NoError(t, err)
	defer st.Close(ctx)

	op, err := st.GetExecutedPriorityOperationByHash(ctx, ethHash)
	require.NoError(t, err)
	require.NotNil(t, op)
	require.Equal(t, uint64(5), op.PriorityOpSerialID)
	require.Equal(t, block, *op.BlockNumber)

	op, err = st.GetExecutedPriorityOperationByHash(ctx, unknownHash)
	require.NoError(t, err)
	require.Nil(t, op)

	tx, err := st.GetExecutedTransaction(ctx, executedHash)
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.True(t, tx.Success)

	queued, err := st.MempoolContainsTx(ctx, queuedHash)
	require.NoError(t, err)
	require.True(t, queued)

	queued, err = st.MempoolContainsTx(ctx, executedHash)
	require.NoError(t, err)
	require.False(t, queued)

	mempoolTx, err := st.GetMempoolTx(ctx, queuedHash)
	require.NoError(t, err)
	require.NotNil(t, mempoolTx)

	aggregated, err := st.GetStoredAggregatedOperation(ctx, 100, types.ExecuteBlocks)
	require.NoError(t, err)
	require.NotNil(t, aggregated)
	require.True(t, aggregated.Confirmed)

	aggregated, err = st.GetStoredAggregatedOperation(ctx, 111, types.ExecuteBlocks)
	require.NoError(t, err)
	require.Nil(t, aggregated)

	aggregated, err = st.GetStoredAggregatedOperation(ctx, 100, types.CommitBlocks)
	require.NoError(t, err)
	require.Nil(t, aggregated)
}
