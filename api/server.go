package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lightlink-network/ll-tx-api/metrics"
	"github.com/lightlink-network/ll-tx-api/transaction"
	"github.com/prometheus/client_golang/prometheus"
)

type TransactionResolver interface {
	Receipt(ctx context.Context, rawHash string) (*transaction.Receipt, error)
	Data(ctx context.Context, rawHash string) (*transaction.TxData, error)
}

// API server
type Server struct {
	r        chi.Router
	http     *http.Server
	log      *slog.Logger
	resolver TransactionResolver
	metrics  *metrics.Metrics
	opts     ServerOpts
}

type ServerOpts struct {
	Logger         *slog.Logger
	Resolver       TransactionResolver
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Port           string
	RequestTimeout time.Duration
}

// Create API server
func NewServer(opts ServerOpts) (*Server, error) {
	if opts.Resolver == nil {
		return nil, errors.New("api server requires a transaction resolver")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	s := &Server{
		log:      opts.Logger,
		resolver: opts.Resolver,
		metrics:  opts.Metrics,
		opts:     opts,
	}
	s.routes()

	s.http = &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Starts HTTP server. Blocks until the server is shut down.
func (s *Server) StartServer() error {
	s.log.Info("📡 Server Started. API Server is now listening on http://localhost:" + s.opts.Port)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Turns server into http server
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

// Returns JSON response to the API user. HTTP status code
// and data must be provided
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		fmt.Fprintf(w, "%s", err.Error())
	}
}

// Returns an error to the API user
func ERROR(w http.ResponseWriter, statusCode int, err error) {
	w.WriteHeader(statusCode)
	err = json.NewEncoder(w).Encode(map[string]interface{}{"error": err.Error()})
	if err != nil {
		fmt.Fprintf(w, "%s", err.Error())
	}
}
