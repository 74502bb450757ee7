package transaction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrInvalidHash       = errors.New("invalid tx_hash")
	ErrInvalidHashLength = errors.New("incorrect tx_hash length")
)

// DecodeHash decodes a hex encoded transaction hash, with or without the 0x
// prefix. The decoded value must be exactly 32 bytes.
func DecodeHash(raw string) (common.Hash, error) {
	b, err := hexutil.Decode("0x" + strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHashLength, common.HashLength, len(b))
	}

	return common.BytesToHash(b), nil
}
