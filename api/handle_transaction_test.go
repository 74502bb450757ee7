package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lightlink-network/ll-tx-api/metrics"
	"github.com/lightlink-network/ll-tx-api/transaction"
	"github.com/lightlink-network/ll-tx-api/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type FakeResolver struct {
	receipt *transaction.Receipt
	data    *transaction.TxData
	err     error
	hashes  []string
}

func (f *FakeResolver) Receipt(_ context.Context, rawHash string) (*transaction.Receipt, error) {
	f.hashes = append(f.hashes, rawHash)
	return f.receipt, f.err
}

func (f *FakeResolver) Data(_ context.Context, rawHash string) (*transaction.TxData, error) {
	f.hashes = append(f.hashes, rawHash)
	return f.data, f.err
}

var testHash = common.HexToHash("0x9c8b7a6f5e4d3c2b1a09f8e7d6c5b4a3928170f6e5d4c3b2a1908f7e6d5c4b3a")

func newTestServer(t *testing.T, resolver TransactionResolver) *Server {
	registry := prometheus.NewRegistry()
	server, err := NewServer(ServerOpts{
		Resolver: resolver,
		Metrics:  metrics.NewMetrics("test", registry),
		Gatherer: registry,
		Port:     "0",
	})
	require.NoError(t, err)
	return server
}

func get(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestServer_receipt(t *testing.T) {
	block := uint32(100)
	resolver := &FakeResolver{receipt: &transaction.Receipt{
		Kind: transaction.L1ReceiptKind,
		L1:   &transaction.L1Receipt{Status: types.L1Committed, EthBlock: 12, RollupBlock: &block, ID: 7},
	}}
	server := newTestServer(t, resolver)

	rec := get(t, server, "/api/v0.2/transaction/"+testHash.Hex())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"status":"committed","eth_block":12,"rollup_block":100,"id":7}`, rec.Body.String())
	require.Equal(t, []string{testHash.Hex()}, resolver.hashes)
}

func TestServer_data(t *testing.T) {
	signature := "0xdeadbeef"
	resolver := &FakeResolver{data: &transaction.TxData{
		Tx: transaction.Transaction{
			TxHash:    testHash,
			Op:        json.RawMessage(`{"type":"Transfer"}`),
			Status:    types.L2Queued,
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		EthSignature: &signature,
	}}
	server := newTestServer(t, resolver)

	rec := get(t, server, "/api/v0.2/transaction/"+testHash.Hex()+"/data")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, fmt.Sprintf(`{
		"tx": {
			"tx_hash": "%s",
			"block_number": null,
			"op": {"type":"Transfer"},
			"status": "queued",
			"fail_reason": null,
			"created_at": "2024-01-02T03:04:05Z"
		},
		"eth_signature": "0xdeadbeef"
	}`, testHash.Hex()), rec.Body.String())
}

func TestServer_givenUnknownTransaction(t *testing.T) {
	server := newTestServer(t, &FakeResolver{})

	rec := get(t, server, "/api/v0.2/transaction/"+testHash.Hex())
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"transaction not found"}`, rec.Body.String())

	rec = get(t, server, "/api/v0.2/transaction/"+testHash.Hex()+"/data")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_givenInvalidHash(t *testing.T) {
	server := newTestServer(t, &FakeResolver{err: fmt.Errorf("%w: expected 32 bytes, got 2", transaction.ErrInvalidHashLength)})

	rec := get(t, server, "/api/v0.2/transaction/0xabcd")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "incorrect tx_hash length")
}

func TestServer_givenStorageError(t *testing.T) {
	server := newTestServer(t, &FakeResolver{err: errors.New("server selection timeout")})

	rec := get(t, server, "/api/v0.2/transaction/"+testHash.Hex()+"/data")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_health(t *testing.T) {
	server := newTestServer(t, &FakeResolver{})

	rec := get(t, server, "/api/v0.2/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"health_status":"online"}`, rec.Body.String())
}

func TestServer_metrics(t *testing.T) {
	server := newTestServer(t, &FakeResolver{})
	get(t, server, "/api/v0.2/transaction/"+testHash.Hex())

	rec := get(t, server, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `test_transaction_lookups_total{endpoint="receipt",outcome="not_found"} 1`)
}

func TestNewServer_requiresResolver(t *testing.T) {
	_, err := NewServer(ServerOpts{})
	require.Error(t, err)
}
