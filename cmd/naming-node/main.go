package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/goodnatureofminers/namesight7000-backend/internal/clock"
	"github.com/goodnatureofminers/namesight7000-backend/internal/metrics"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/auth"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/events"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/events/clickhouse"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/ledger"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/registrar"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/registry"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/resolver"
	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/service"
	"github.com/goodnatureofminers/namesight7000-backend/internal/transport"
	"github.com/goodnatureofminers/namesight7000-backend/pkg/batcher"
	namesight7000v1 "github.com/goodnatureofminers/namesight7000-backend/pkg/namesight7000/v1"
)

var config struct {
	DataDir       string `long:"data-dir" env:"NAMING_DATA_DIR" description:"leveldb directory" default:"data/ledger"`
	Network       string `long:"network" env:"NAMING_NETWORK" description:"address network (mainnet, testnet, regtest)" default:"mainnet"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"NAMING_CLICKHOUSE_DSN" description:"event archive dsn, archive disabled when empty"`

	Addr        string `long:"addr" env:"NAMING_ADDR" description:"grpc addr" default:":8000"`
	RestAddr    string `long:"rest-addr" env:"NAMING_REST_ADDR" description:"rest addr" default:":8001"`
	MetricsAddr string `long:"metrics-addr" env:"NAMING_METRICS_ADDR" description:"metrics addr" default:":9100"`

	TLD   string `long:"tld" env:"NAMING_TLD" description:"top level domain" default:"stellar"`
	Admin string `long:"admin" env:"NAMING_ADMIN" description:"admin address" required:"true"`

	MinLabelLen    uint32        `long:"min-label-len" env:"NAMING_MIN_LABEL_LEN" default:"3"`
	MaxLabelLen    uint32        `long:"max-label-len" env:"NAMING_MAX_LABEL_LEN" default:"63"`
	CommitMinAge   time.Duration `long:"commit-min-age" env:"NAMING_COMMIT_MIN_AGE" default:"60s"`
	CommitMaxAge   time.Duration `long:"commit-max-age" env:"NAMING_COMMIT_MAX_AGE" default:"24h"`
	RenewExtension time.Duration `long:"renew-extension" env:"NAMING_RENEW_EXTENSION" default:"8760h"`
	GracePeriod    time.Duration `long:"grace-period" env:"NAMING_GRACE_PERIOD" default:"2160h"`

	ReapInterval time.Duration `long:"reap-interval" env:"NAMING_REAP_INTERVAL" default:"1m"`
	ReapLimit    int           `long:"reap-limit" env:"NAMING_REAP_LIMIT" default:"500"`

	FlushSize     int           `long:"flush-size" env:"NAMING_FLUSH_SIZE" default:"100"`
	FlushInterval time.Duration `long:"flush-interval" env:"NAMING_FLUSH_INTERVAL" default:"1s"`
	FlushRPS      int           `long:"flush-rps" env:"NAMING_FLUSH_RPS" default:"10"`
	FlushTimeout  time.Duration `long:"flush-timeout" env:"NAMING_FLUSH_TIMEOUT" default:"30s"`
}

var (
	registryAddr  = model.ContractAddress("registry")
	resolverAddr  = model.ContractAddress("resolver")
	registrarAddr = model.ContractAddress("registrar")
)

func main() {
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
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if err := run(ctx, logger); err != nil {
		logger.Fatal("naming node stopped", zap.Error(err))
	}
	logger.Info("naming node stopped")
}

func run(ctx context.Context, logger *zap.Logger) error {
	network := model.Network(config.Network)
	admin, err := auth.ParseAddress(config.Admin, network)
	if err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	params := model.Params{
		MinLabelLen:    config.MinLabelLen,
		MaxLabelLen:    config.MaxLabelLen,
		CommitMinAge:   seconds(config.CommitMinAge),
		CommitMaxAge:   seconds(config.CommitMaxAge),
		RenewExtension: seconds(config.RenewExtension),
		GracePeriod:    seconds(config.GracePeriod),
	}
	if err := params.Validate(); err != nil {
		return err
	}

	store, err := ledger.OpenLevelStore(config.DataDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close ledger store", zap.Error(err))
		}
	}()

	sinks := events.Fanout{events.NewLogSink(logger)}
	var history transport.History
	if config.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return err
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("close event archive", zap.Error(err))
			}
		}()
		sink := events.NewSink(repo, metrics.NewEventSink(), batcher.Config{
			FlushSize:     config.FlushSize,
			FlushInterval: config.FlushInterval,
			RPS:           config.FlushRPS,
			FlushTimeout:  config.FlushTimeout,
		}, logger)
		// Detached so in-flight calls finishing during GracefulStop are still
		// archived; the deferred Stop runs after every server has returned.
		sink.Start(context.WithoutCancel(ctx))
		defer sink.Stop()
		sinks = append(sinks, sink)
		history = repo
	}

	host, err := ledger.NewHost(store, clock.System{}, sinks, metrics.NewHost(network), logger)
	if err != nil {
		return err
	}

	dir := ledger.NewDirectory()
	reg := registry.New(registryAddr, logger)
	res := resolver.New(resolverAddr, dir, logger)
	rar, err := registrar.New(registrarAddr, dir, logger)
	if err != nil {
		return err
	}
	dir.Register(registryAddr, reg)
	dir.Register(resolverAddr, res)
	dir.Register(registrarAddr, rar)

	steps := []struct {
		op string
		fn func(env *ledger.Env) error
	}{
		{"init_registry", func(env *ledger.Env) error {
			return reg.Init(env, registry.Config{Admin: admin, Controller: registrarAddr, RenewExtension: params.RenewExtension})
		}},
		{"init_resolver", func(env *ledger.Env) error {
			return res.Init(env, registryAddr)
		}},
		{"init_registrar", func(env *ledger.Env) error {
			return rar.Init(env, registrar.Config{Registry: registryAddr, TLD: config.TLD, Admin: admin}, params)
		}},
	}
	for _, step := range steps {
		err := host.Invoke(ctx, ledger.Invocation{Operation: step.op, Signers: []model.Address{admin}}, step.fn)
		switch {
		case errors.Is(err, model.ErrAlreadyInitialized):
			logger.Debug("contract already initialized", zap.String("operation", step.op))
		case err != nil:
			return fmt.Errorf("%s: %w", step.op, err)
		}
	}

	verifier, err := auth.NewVerifier(network)
	if err != nil {
		return err
	}
	handler, err := transport.NewHandler(host, transport.Contracts{
		Directory: dir,
		Registry:  reg,
		Resolver:  res,
		Registrar: rar,
	}, verifier, history, logger)
	if err != nil {
		return err
	}
	reaper, err := service.NewReaper(host, rar, metrics.NewReaper(), service.ReaperConfig{
		Interval:   config.ReapInterval,
		BatchLimit: config.ReapLimit,
	}, logger)
	if err != nil {
		return err
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	namesight7000v1.RegisterNamingServiceServer(grpcServer, handler)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	gw := transport.NewGatewayMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := namesight7000v1.RegisterNamingServiceHandlerFromEndpoint(ctx, gw, config.Addr, opts); err != nil {
		return fmt.Errorf("register naming gateway: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/", gw)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	restServer := newHTTPServer(config.RestAddr, cors.Default().Handler(mux))
	metricsServer := newHTTPServer(config.MetricsAddr, metricsMux)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting gRPC server", zap.String("addr", config.Addr))
		return grpcServer.Serve(socket)
	})
	for _, s := range []*http.Server{restServer, metricsServer} {
		g.Go(func() error {
			logger.Info("Starting HTTP server", zap.String("addr", s.Addr))
			if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		return reaper.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers")
		grpcServer.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return errors.Join(restServer.Shutdown(shutdownCtx), metricsServer.Shutdown(shutdownCtx))
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

func seconds(d time.Duration) uint64 {
	return uint64(d / time.Second)
}
