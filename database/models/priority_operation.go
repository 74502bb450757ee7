package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// PriorityOperation is a base-chain initiated operation that has been
// executed in a rollup block. Records are written once by the block
// executor and never updated.
type PriorityOperation struct {
	EthHash            string    `json:"eth_hash" bson:"eth_hash"`
	EthBlock           uint64    `json:"eth_block" bson:"eth_block"`
	EthBlockIndex      *uint64   `json:"eth_block_index,omitempty" bson:"eth_block_index,omitempty"`
	BlockNumber        *uint32   `json:"block_number" bson:"block_number"`
	BlockIndex         uint32    `json:"block_index" bson:"block_index"`
	PriorityOpSerialID uint64    `json:"priority_op_serialid" bson:"priority_op_serialid"`
	Operation          bson.Raw  `json:"operation" bson:"operation"`
	FromAccount        string    `json:"from_account" bson:"from_account"`
	ToAccount          string    `json:"to_account" bson:"to_account"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
}
