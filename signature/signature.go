// Package signature renders the base-chain co-signatures attached to rollup
// transactions.
package signature

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/lightlink-network/ll-tx-api/database/models"
)

const (
	EthereumSignatureType = "EthereumSignature"
	EIP1271SignatureType  = "EIP1271Signature"
)

var (
	ErrUnknownSignatureType = errors.New("unknown signature type")
	ErrInvalidSignature     = errors.New("invalid signature")
)

// Signature is one of EthereumSignature or EIP1271Signature. The set is
// closed: Encode only knows these two.
type Signature interface {
	isSignature()
}

// EthereumSignature is a recoverable secp256k1 signature. V is the recovery
// id (0 or 1).
type EthereumSignature struct {
	R [32]byte
	S [32]byte
	V byte
}

func (EthereumSignature) isSignature() {}

// SerializePacked returns r || s || v with v in the 27/28 form.
func (s EthereumSignature) SerializePacked() []byte {
	out := make([]byte, crypto.SignatureLength)
	copy(out[:32], s.R[:])
	copy(out[32:64], s.S[:])
	out[crypto.RecoveryIDOffset] = s.V + 27
	return out
}

// EIP1271Signature is the opaque payload verified by a smart contract wallet.
type EIP1271Signature []byte

func (EIP1271Signature) isSignature() {}

// Encode renders a signature as a 0x prefixed lowercase hex string.
func Encode(sig Signature) string {
	switch s := sig.(type) {
	case EthereumSignature:
		return hexutil.Encode(s.SerializePacked())
	case EIP1271Signature:
		return hexutil.Encode(s)
	default:
		panic(fmt.Sprintf("signature: unsupported signature type %T", sig))
	}
}

// Parse decodes a stored signature of the given kind.
func Parse(kind string, encoded string) (Signature, error) {
	raw, err := hexutil.Decode("0x" + strings.TrimPrefix(encoded, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSignature, kind, err)
	}

	switch kind {
	case EthereumSignatureType:
		if len(raw) != crypto.SignatureLength {
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, crypto.SignatureLength, len(raw))
		}
		var sig EthereumSignature
		copy(sig.R[:], raw[:32])
		copy(sig.S[:], raw[32:64])
		sig.V = raw[crypto.RecoveryIDOffset]
		if sig.V >= 27 {
			sig.V -= 27
		}
		return sig, nil
	case EIP1271SignatureType:
		return EIP1271Signature(raw), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSignatureType, kind)
	}
}

// FromSignData extracts the signature from stored sign data.
func FromSignData(data *models.EthSignData) (Signature, error) {
	return Parse(data.Signature.Type, data.Signature.Signature)
}

// EncodeSignData renders optional sign data. Nil data renders as nil.
func EncodeSignData(data *models.EthSignData) (*string, error) {
	if data == nil {
		return nil, nil
	}

	sig, err := FromSignData(data)
	if err != nil {
		return nil, err
	}

	encoded := Encode(sig)
	return &encoded, nil
}
