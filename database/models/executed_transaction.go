package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ExecutedTransaction is a rollup transaction that went through the block
// executor, successfully or not. Verified flips to true once the block's
// execution is confirmed on the base chain and never flips back.
type ExecutedTransaction struct {
	TxHash                string       `json:"tx_hash" bson:"tx_hash"`
	BlockNumber           *uint32      `json:"block_number" bson:"block_number"`
	BlockIndex            *uint32      `json:"block_index,omitempty" bson:"block_index,omitempty"`
	Tx                    bson.Raw     `json:"tx" bson:"tx"`
	Success               bool         `json:"success" bson:"success"`
	FailReason            *string      `json:"fail_reason,omitempty" bson:"fail_reason,omitempty"`
	Verified              bool         `json:"verified" bson:"verified"`
	PrimaryAccountAddress string       `json:"primary_account_address" bson:"primary_account_address"`
	Nonce                 uint64       `json:"nonce" bson:"nonce"`
	EthSignData           *EthSignData `json:"eth_sign_data,omitempty" bson:"eth_sign_data,omitempty"`
	BatchID               *int64       `json:"batch_id,omitempty" bson:"batch_id,omitempty"`
	CreatedAt             time.Time    `json:"created_at" bson:"created_at"`
}
