package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// MempoolTransaction is an accepted rollup transaction that has not been
// executed yet. It is removed from the mempool once executed.
type MempoolTransaction struct {
	TxHash      string       `json:"tx_hash" bson:"tx_hash"`
	Tx          bson.Raw     `json:"tx" bson:"tx"`
	EthSignData *EthSignData `json:"eth_sign_data,omitempty" bson:"eth_sign_data,omitempty"`
	BatchID     *int64       `json:"batch_id,omitempty" bson:"batch_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
}
