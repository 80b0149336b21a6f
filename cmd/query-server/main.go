package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/addrindex/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/health"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/node"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/query"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpcHealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// headersBatchBudget is the write time allowed for an unthrottled /headers batch on top of
// the per-call RPC timeout.
const headersBatchBudget = time.Minute

type config struct {
	Coin           model.Coin    `long:"coin" env:"QUERY_COIN" description:"coin name" choice:"BTC" choice:"LTC" default:"BTC"`
	Network        model.Network `long:"network" env:"QUERY_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" choice:"regtest" choice:"signet" required:"true"`
	RPCURL         string        `long:"rpc-url" env:"QUERY_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser        string        `long:"rpc-user" env:"QUERY_RPC_USER" description:"node RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"QUERY_RPC_PASSWORD" description:"node RPC password"`
	RPCTimeout     time.Duration `long:"rpc-timeout" env:"QUERY_RPC_TIMEOUT" description:"per-call node RPC timeout, 0 disables" default:"30s"`
	RPCRateLimit   int           `long:"rpc-rate-limit" env:"QUERY_RPC_RATE_LIMIT" description:"node RPC calls per second, 0 disables" default:"0"`
	NodeCacheSize  int           `long:"node-cache-size" env:"QUERY_NODE_CACHE_SIZE" description:"node reply cache size in MB, 0 disables" default:"64"`
	NodeCacheTTL   time.Duration `long:"node-cache-ttl" env:"QUERY_NODE_CACHE_TTL" description:"node reply cache entry lifetime" default:"1h"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"QUERY_CLICKHOUSE_DSN" description:"address index ClickHouse DSN" required:"true"`
	HTTPAddr       string        `long:"http-addr" env:"QUERY_HTTP_ADDR" description:"REST API and metrics addr" default:":3060"`
	GRPCAddr       string        `long:"grpc-addr" env:"QUERY_GRPC_ADDR" description:"gRPC health addr" default:":3061"`
	HealthInterval time.Duration `long:"health-interval" env:"QUERY_HEALTH_INTERVAL" description:"node probe interval" default:"10s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if cfg.HealthInterval <= 0 {
		logger.Fatal("health interval must be positive", zap.Duration("interval", cfg.HealthInterval))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("query server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("coin", string(cfg.Coin)), zap.String("network", string(cfg.Network)))

	addresses, err := bitcoin.NewScriptHasher(cfg.Network)
	if err != nil {
		return fmt.Errorf("init address resolver: %w", err)
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	var chainNode query.ChainNode = node.NewRPCNode(rpcClient, newLimiter(cfg.RPCRateLimit), metrics.NewRPCClient(cfg.Coin, cfg.Network), cfg.RPCTimeout)
	if cfg.NodeCacheSize > 0 {
		cached, err := node.NewCachedNode(ctx, chainNode, cfg.NodeCacheTTL, cfg.NodeCacheSize, logger)
		if err != nil {
			return err
		}
		defer func() {
			_ = cached.Close()
		}()
		chainNode = cached
	}

	index, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Coin, cfg.Network, metrics.NewAddressIndex())
	if err != nil {
		return fmt.Errorf("init address index: %w", err)
	}
	defer func() {
		if err := index.Close(); err != nil {
			logger.Error("failed to close address index", zap.Error(err))
		}
	}()

	q := query.New(chainNode, index)

	healthServer := grpcHealth.NewServer()
	monitor := health.NewMonitor(q, healthServer, metrics.NewHealth(cfg.Coin, cfg.Network), cfg.HealthInterval, logger)
	go func() {
		if err := monitor.Run(ctx); err != nil {
			logger.Error("health monitor stopped", zap.Error(err))
		}
	}()

	if err := startGRPCServer(ctx, cfg.GRPCAddr, healthServer, logger); err != nil {
		return err
	}

	gw := gwruntime.NewServeMux()
	if err := transport.NewHandler(q, addresses, metrics.NewHTTPAPI(), logger).Register(gw); err != nil {
		return fmt.Errorf("register http routes: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout(cfg.RPCTimeout, cfg.RPCRateLimit),
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func startGRPCServer(ctx context.Context, addr string, healthServer healthpb.HealthServer, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
		grpc.StreamInterceptor(grpcMiddleware.ChainStreamServer(
			grpcRecovery.StreamServerInterceptor(),
			grpcPrometheus.StreamServerInterceptor,
		)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", addr, err)
	}
	go func() {
		logger.Info("starting grpc server", zap.String("addr", addr))
		if err := grpcServer.Serve(socket); err != nil {
			logger.Error("grpc server failed", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down grpc server")
		grpcServer.GracefulStop()
	}()
	return nil
}

// writeTimeout leaves room for the largest /headers batch: two node calls per height,
// paced by the rate limit when one is set.
func writeTimeout(rpcTimeout time.Duration, rateLimit int) time.Duration {
	timeout := rpcTimeout + headersBatchBudget
	if rateLimit > 0 {
		calls := 2 * transport.MaxHeadersPerRequest
		timeout += time.Duration(calls/rateLimit+1) * time.Second
	}
	return timeout
}

func newLimiter(perSecond int) ratelimit.Limiter {
	if perSecond <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(perSecond)
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
