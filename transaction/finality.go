package transaction

import (
	"context"
	"fmt"

	"github.com/lightlink-network/ll-tx-api/types"
)

// IsBlockFinalized reports whether the execution of the given rollup block
// has been confirmed on the base chain. A block without a recorded
// ExecuteBlocks operation is not finalized.
func IsBlockFinalized(ctx context.Context, st Storage, blockNumber uint32) (bool, error) {
	op, err := st.GetStoredAggregatedOperation(ctx, blockNumber, types.ExecuteBlocks)
	if err != nil {
		return false, fmt.Errorf("failed to check finality of block %d: %w", blockNumber, err)
	}

	return op != nil && op.Confirmed, nil
}
