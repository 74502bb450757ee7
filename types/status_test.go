package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestL1Status_ToL2(t *testing.T) {
	require.Equal(t, L2Committed, L1Committed.ToL2())
	require.Equal(t, L2Finalized, L1Finalized.ToL2())
}
