package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lightlink-network/ll-tx-api/metrics"
	"github.com/lightlink-network/ll-tx-api/transaction"
)

var ErrTransactionNotFound = errors.New("transaction not found")

func (s *Server) handleTransactionReceiptGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	receipt, err := s.resolver.Receipt(r.Context(), chi.URLParam(r, "hash"))
	respondLookup(s, w, "receipt", start, receipt, err)
}

func (s *Server) handleTransactionDataGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	data, err := s.resolver.Data(r.Context(), chi.URLParam(r, "hash"))
	respondLookup(s, w, "data", start, data, err)
}

func respondLookup[T any](s *Server, w http.ResponseWriter, endpoint string, start time.Time, result *T, err error) {
	var outcome string

	switch {
	case errors.Is(err, transaction.ErrInvalidHash), errors.Is(err, transaction.ErrInvalidHashLength):
		outcome = metrics.OutcomeBadRequest
		ERROR(w, http.StatusBadRequest, err)
	case err != nil:
		outcome = metrics.OutcomeError
		s.log.Error("failed to resolve transaction", "endpoint", endpoint, "error", err)
		ERROR(w, http.StatusInternalServerError, err)
	case result == nil:
		outcome = metrics.OutcomeNotFound
		ERROR(w, http.StatusNotFound, ErrTransactionNotFound)
	default:
		outcome = metrics.OutcomeFound
		JSON(w, http.StatusOK, result)
	}

	if s.metrics != nil {
		s.metrics.ObserveLookup(endpoint, outcome, time.Since(start))
	}
}
