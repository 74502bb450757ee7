package models

import "time"

// AggregatedOperation is a batched base-chain action over the rollup blocks
// FromBlock..ToBlock (inclusive). Confirmed is set once the base chain
// confirmed the action.
type AggregatedOperation struct {
	ActionType string    `json:"action_type" bson:"action_type"`
	FromBlock  uint32    `json:"from_block" bson:"from_block"`
	ToBlock    uint32    `json:"to_block" bson:"to_block"`
	Confirmed  bool      `json:"confirmed" bson:"confirmed"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
