package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	priorityOperationsCollection   = "executed_priority_operations"
	executedTransactionsCollection = "executed_transactions"
	mempoolCollection              = "mempool_txs"
	aggregatedOperationsCollection = "aggregate_operations"
)

type Database struct {
	client       *mongo.Client
	databaseName string
	logger       *slog.Logger
}

type DatabaseOpts struct {
	URI          string
	DatabaseName string
	Logger       *slog.Logger
}

const (
	defaultTimeout = 10 * time.Second
)

func NewDatabase(opts DatabaseOpts) (*Database, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetMaxPoolSize(100). // Adjust based on your needs
		SetMinPoolSize(10).  // Maintain minimum connections
		SetMaxConnecting(10).
		SetServerSelectionTimeout(5 * time.Second).
		SetReadPreference(readpref.PrimaryPreferred())

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	opts.Logger.Info("Connected to database", "database", opts.DatabaseName)

	return &Database{
		client:       client,
		databaseName: opts.DatabaseName,
		logger:       opts.Logger,
	}, nil
}

// Access starts a storage session scoped to a single request. The caller
// must Close it on every exit path.
func (db *Database) Access(ctx context.Context) (*Storage, error) {
	session, err := db.client.StartSession(options.Session().SetCausalConsistency(true))
	if err != nil {
		return nil, fmt.Errorf("failed to start database session: %w", err)
	}

	return &Storage{
		session: session,
		db:      db.client.Database(db.databaseName),
	}, nil
}

func (db *Database) Disconnect(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from database: %w", err)
	}
	return nil
}

// CreateIndexes creates the lookup indexes the transaction API relies on.
func (db *Database) CreateIndexes(ctx context.Context) error {
	// Executed priority operations are looked up by their base-chain hash
	priorityOpsColl := db.client.Database(db.databaseName).Collection(priorityOperationsCollection)
	_, err := priorityOpsColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "eth_hash", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "block_number", Value: 1}}},
		{Keys: bson.D{{Key: "priority_op_serialid", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create executed_priority_operations indexes: %w", err)
	}

	executedColl := db.client.Database(db.databaseName).Collection(executedTransactionsCollection)
	_, err = executedColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tx_hash", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "block_number", Value: 1}}},
		{Keys: bson.D{{Key: "primary_account_address", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create executed_transactions indexes: %w", err)
	}

	mempoolColl := db.client.Database(db.databaseName).Collection(mempoolCollection)
	_, err = mempoolColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tx_hash", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create mempool_txs index: %w", err)
	}

	aggregatedColl := db.client.Database(db.databaseName).Collection(aggregatedOperationsCollection)
	_, err = aggregatedColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "action_type", Value: 1},
			{Key: "from_block", Value: 1},
			{Key: "to_block", Value: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create aggregate_operations index: %w", err)
	}

	return nil
}
