package types

// L1Status is the lifecycle status of a priority operation. A priority
// operation is only observed once it has been included in a rollup block,
// so there is no queued or rejected state.
type L1Status string

const (
	// L1Committed - Operation is included in a committed rollup block
	L1Committed L1Status = "committed"

	// L1Finalized - Block execution has been confirmed on the base chain
	L1Finalized L1Status = "finalized"
)

// L2Status is the lifecycle status of a rollup transaction.
//
//	queued -> committed -> finalized
//	queued | committed -> rejected
type L2Status string

const (
	// L2Queued - Transaction sits in the mempool and has no block yet
	L2Queued L2Status = "queued"

	// L2Committed - Transaction was executed successfully in a rollup block
	L2Committed L2Status = "committed"

	// L2Finalized - Block execution has been confirmed on the base chain
	L2Finalized L2Status = "finalized"

	// L2Rejected - Transaction execution failed
	L2Rejected L2Status = "rejected"
)

// ToL2 maps an L1 status into the L2 status space.
func (s L1Status) ToL2() L2Status {
	switch s {
	case L1Finalized:
		return L2Finalized
	default:
		return L2Committed
	}
}

// AggregatedActionType identifies a batched base-chain action covering a
// range of rollup blocks.
type AggregatedActionType string

const (
	CommitBlocks              AggregatedActionType = "CommitBlocks"
	CreateProofBlocks         AggregatedActionType = "CreateProofBlocks"
	PublishProofBlocksOnchain AggregatedActionType = "PublishProofBlocksOnchain"
	ExecuteBlocks             AggregatedActionType = "ExecuteBlocks"
)
