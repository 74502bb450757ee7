// Package transaction resolves the status and the full record of a rollup
// transaction from its hash.
//
// A hash is looked up first as the base-chain hash of an executed priority
// operation, then as a rollup transaction hash (executed, then mempool). The
// first source with a hit answers; results are never merged. Status is
// derived from the stored facts and the ExecuteBlocks confirmation on every
// call and is never cached.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInconsistentRecord = errors.New("inconsistent stored record")

type source interface {
	name() string
	receipt(ctx context.Context, st Storage, hash common.Hash) (*Receipt, error)
	data(ctx context.Context, st Storage, hash common.Hash) (*TxData, error)
}

type Resolver struct {
	storage StorageProvider
	sources []source
	logger  *slog.Logger
}

type ResolverOpts struct {
	Storage StorageProvider
	Logger  *slog.Logger
}

func NewResolver(opts ResolverOpts) *Resolver {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Resolver{
		storage: opts.Storage,
		sources: []source{priorityOpSource{}, rollupTxSource{}},
		logger:  opts.Logger,
	}
}

// Receipt returns the lifecycle receipt of the transaction, or nil if no
// source knows the hash.
func (r *Resolver) Receipt(ctx context.Context, rawHash string) (*Receipt, error) {
	return resolve(ctx, r, rawHash, source.receipt)
}

// Data returns the full transaction record, or nil if no source knows the
// hash.
func (r *Resolver) Data(ctx context.Context, rawHash string) (*TxData, error) {
	return resolve(ctx, r, rawHash, source.data)
}

func resolve[T any](ctx context.Context, r *Resolver, rawHash string, find func(source, context.Context, Storage, common.Hash) (*T, error)) (*T, error) {
	hash, err := DecodeHash(rawHash)
	if err != nil {
		return nil, err
	}

	st, err := r.storage.Access(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to access storage: %w", err)
	}
	defer st.Close(context.WithoutCancel(ctx))

	for _, src := range r.sources {
		result, err := find(src, ctx, st, hash)
		if err != nil {
			r.logger.Error("transaction lookup failed", "source", src.name(), "hash", hash.Hex(), "error", err)
			return nil, err
		}
		if result != nil {
			r.logger.Debug("transaction resolved", "source", src.name(), "hash", hash.Hex())
			return result, nil
		}
	}

	return nil, nil
}
