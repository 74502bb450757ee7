package transaction

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightlink-network/ll-tx-api/database/models"
	"github.com/lightlink-network/ll-tx-api/types"
)

type FakeStorage struct {
	priorityOps  map[common.Hash]*models.PriorityOperation
	executed     map[common.Hash]*models.ExecutedTransaction
	mempool      map[common.Hash]*models.MempoolTransaction
	aggregated   map[uint32]*models.AggregatedOperation
	err          error
	calls        int
	closed       int
	finalityHits int
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		priorityOps: map[common.Hash]*models.PriorityOperation{},
		executed:    map[common.Hash]*models.ExecutedTransaction{},
		mempool:     map[common.Hash]*models.MempoolTransaction{},
		aggregated:  map[uint32]*models.AggregatedOperation{},
	}
}

func (f *FakeStorage) GetExecutedPriorityOperationByHash(_ context.Context, ethHash common.Hash) (*models.PriorityOperation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.priorityOps[ethHash], nil
}

func (f *FakeStorage) GetStoredAggregatedOperation(_ context.Context, blockNumber uint32, actionType types.AggregatedActionType) (*models.AggregatedOperation, error) {
	f.calls++
	f.finalityHits++
	if f.err != nil {
		return nil, f.err
	}
	if actionType != types.ExecuteBlocks {
		return nil, nil
	}
	return f.aggregated[blockNumber], nil
}

func (f *FakeStorage) GetExecutedTransaction(_ context.Context, txHash common.Hash) (*models.ExecutedTransaction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.executed[txHash], nil
}

func (f *FakeStorage) MempoolContainsTx(_ context.Context, txHash common.Hash) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.mempool[txHash]
	return ok, nil
}

func (f *FakeStorage) GetMempoolTx(_ context.Context, txHash common.Hash) (*models.MempoolTransaction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.mempool[txHash], nil
}

func (f *FakeStorage) Close(_ context.Context) {
	f.closed++
}

func (f *FakeStorage) confirm(block uint32, confirmed bool) {
	f.aggregated[block] = &models.AggregatedOperation{
		ActionType: string(types.ExecuteBlocks),
		FromBlock:  block,
		ToBlock:    block,
		Confirmed:  confirmed,
	}
}

type FakeStorageProvider struct {
	storage  *FakeStorage
	err      error
	accessed int
}

func (p *FakeStorageProvider) Access(_ context.Context) (Storage, error) {
	p.accessed++
	if p.err != nil {
		return nil, p.err
	}
	return p.storage, nil
}
