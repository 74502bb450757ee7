package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	"github.com/lightlink-network/ll-tx-api/api"
	"github.com/lightlink-network/ll-tx-api/database"
	"github.com/lightlink-network/ll-tx-api/metrics"
	"github.com/lightlink-network/ll-tx-api/transaction"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Version will be set at build time
var Version = "development"

const envPrefix = "LL_TX_API"

func main() {
	if err := run(); err != nil {
		log.Fatalf("main: exited with error: %s", err.Error())
	}
}

func run() error {
	// .env is optional, the environment wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "loading .env file")
	}

	var cfg struct {
		Server struct {
			Port            string        `conf:"default:8080"`
			RequestTimeout  time.Duration `conf:"default:60s"`
			ShutdownTimeout time.Duration `conf:"default:10s"`
		}
		Database struct {
			URI           string `conf:"default:mongodb://localhost:27017,mask"`
			Name          string `conf:"default:rollup"`
			CreateIndexes bool   `conf:"default:false"`
		}
		Metrics struct {
			Namespace string `conf:"default:ll_tx_api"`
		}
		Log struct {
			Level string `conf:"default:info"`
		}
	}

	if err := conf.Parse(os.Args[1:], envPrefix, &cfg); err != nil {
		switch {
		case errors.Is(err, conf.ErrHelpWanted):
			usage, err := conf.Usage(envPrefix, &cfg)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return nil
		case errors.Is(err, conf.ErrVersionWanted):
			version, err := conf.VersionString(envPrefix, &cfg)
			if err != nil {
				return errors.Wrap(err, "generating config version")
			}
			fmt.Println(version)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return errors.Wrap(err, "parsing log level")
	}

	// set global logger with custom options
	Logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(Logger)

	Logger.Info("Starting ll-tx-api ("+Version+")",
		"Go Version", runtime.Version(),
		"Operating System", runtime.GOOS,
		"Architecture", runtime.GOARCH)

	out, err := conf.String(&cfg)
	if err != nil {
		return errors.Wrap(err, "generating config for output")
	}
	Logger.Debug("Config:\n" + out)

	db, err := database.NewDatabase(database.DatabaseOpts{
		URI:          cfg.Database.URI,
		DatabaseName: cfg.Database.Name,
		Logger:       Logger.With("component", "database"),
	})
	if err != nil {
		return errors.Wrap(err, "creating database")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := db.Disconnect(ctx); err != nil {
			Logger.Error("failed to disconnect database", "error", err)
		}
	}()

	if cfg.Database.CreateIndexes {
		if err := db.CreateIndexes(context.Background()); err != nil {
			return errors.Wrap(err, "creating database indexes")
		}
	}

	resolver := transaction.NewResolver(transaction.ResolverOpts{
		Storage: transaction.StorageProviderFunc(func(ctx context.Context) (transaction.Storage, error) {
			st, err := db.Access(ctx)
			if err != nil {
				return nil, err
			}
			return st, nil
		}),
		Logger: Logger.With("component", "resolver"),
	})

	server, err := api.NewServer(api.ServerOpts{
		Logger:         Logger.With("component", "api-server"),
		Resolver:       resolver,
		Metrics:        metrics.NewMetrics(cfg.Metrics.Namespace, prometheus.DefaultRegisterer),
		Gatherer:       prometheus.DefaultGatherer,
		Port:           cfg.Server.Port,
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	if err != nil {
		return errors.Wrap(err, "creating api server")
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.StartServer()
	}()

	// Handle OS signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return errors.Wrap(err, "running api server")
	case sig := <-sigChan:
		Logger.Info("Shutting down gracefully...", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return errors.Wrap(err, "shutting down api server")
		}
	}

	return nil
}
