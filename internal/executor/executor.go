// Package executor assembles a node from its configuration and runs it:
// the block store or upstream connection behind the query adapter, the
// optional syncer and archive, and the API servers.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/goodnatureofminers/chainexec/internal/archive"
	"github.com/goodnatureofminers/chainexec/internal/archive/clickhouse"
	"github.com/goodnatureofminers/chainexec/internal/blockstore"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/metrics"
	"github.com/goodnatureofminers/chainexec/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/chainexec/internal/provider"
	"github.com/goodnatureofminers/chainexec/internal/provider/local"
	"github.com/goodnatureofminers/chainexec/internal/provider/rpc"
	"github.com/goodnatureofminers/chainexec/internal/query"
	"github.com/goodnatureofminers/chainexec/internal/syncer"
	"github.com/goodnatureofminers/chainexec/internal/transport"
	"github.com/goodnatureofminers/chainexec/pkg/batcher"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

var (
	ErrRunning = errors.New("executor already running")
	ErrStopped = errors.New("executor stopped")
)

type state int

const (
	stateIdle state = iota
	stateRunning
	stateStopped
)

// Executor is a single-use node. Run starts it, Stop ends it.
type Executor struct {
	cfg    Config
	logger *zap.Logger

	mu       sync.Mutex
	state    state
	cancel   context.CancelFunc
	done     chan struct{}
	closers  []func()
	querier  *query.Querier
	grpcAddr net.Addr
	httpAddr net.Addr

	errMu  sync.Mutex
	runErr error
}

// New builds an Executor logging info to stdout and warnings to stderr.
func New(cfg Config, stdout, stderr io.Writer) (*Executor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Executor{
		cfg:    cfg,
		logger: NewLogger(stdout, stderr).With(zap.String("network", string(cfg.Node.Network))),
		done:   make(chan struct{}),
	}, nil
}

// NewFromFile loads the ini configuration at path.
func NewFromFile(path string, stdout, stderr io.Writer) (*Executor, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, stdout, stderr)
}

func (e *Executor) Config() Config {
	return e.cfg
}

func (e *Executor) Logger() *zap.Logger {
	return e.logger
}

// InitChain creates the block store and writes the genesis block of the
// configured network.
func (e *Executor) InitChain() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != stateIdle {
		return ErrRunning
	}
	if e.cfg.Node.Provider != ProviderLocal {
		return fmt.Errorf("initchain needs the %s provider", ProviderLocal)
	}

	params, err := chain.ParamsForNetwork(e.cfg.Node.Network)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(e.cfg.Database.Directory, 0o750); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	store, err := blockstore.Open(e.cfg.StorePath(), metrics.NewBlockstore())
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			e.logger.Error("close block store", zap.Error(err))
		}
	}()

	if err := store.Init(params.GenesisBlock); err != nil {
		return fmt.Errorf("init chain: %w", err)
	}
	e.logger.Info("chain initialized",
		zap.String("path", e.cfg.StorePath()),
		zap.Stringer("genesis", params.GenesisHash))
	return nil
}

// Run starts the node and returns once every component is up.
func (e *Executor) Run(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.state {
	case stateRunning:
		return ErrRunning
	case stateStopped:
		return ErrStopped
	}

	ctx, cancel := context.WithCancel(ctx)
	if err := e.start(ctx); err != nil {
		cancel()
		e.shutdown()
		e.querier, e.grpcAddr, e.httpAddr = nil, nil, nil
		return err
	}

	e.cancel = cancel
	e.state = stateRunning
	go func() {
		<-ctx.Done()
		e.shutdown()
		close(e.done)
	}()
	e.logger.Info("node started", zap.String("provider", e.cfg.Node.Provider))
	return nil
}

// Wait blocks until the node stops and returns the error that stopped it,
// if any.
func (e *Executor) Wait() error {
	<-e.done
	e.errMu.Lock()
	defer e.errMu.Unlock()
	return e.runErr
}

// RunWait runs the node until Stop is called, ctx ends or a component
// fails.
func (e *Executor) RunWait(ctx context.Context) error {
	if err := e.Run(ctx); err != nil {
		return err
	}
	return e.Wait()
}

// Stop shuts the node down and waits for it. Queries queued before Stop
// are still answered; later ones complete with chain.ServiceStopped.
func (e *Executor) Stop() {
	e.mu.Lock()
	switch e.state {
	case stateIdle:
		e.state = stateStopped
		close(e.done)
		e.mu.Unlock()
		return
	case stateStopped:
		e.mu.Unlock()
		<-e.done
		return
	}
	e.state = stateStopped
	cancel := e.cancel
	e.mu.Unlock()

	cancel()
	<-e.done
	e.logger.Info("node stopped")
}

// Close stops the node and flushes the logger.
func (e *Executor) Close() {
	e.Stop()
	_ = e.logger.Sync()
}

// Querier returns the query adapter, or nil before Run.
func (e *Executor) Querier() *query.Querier {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.querier
}

// GRPCAddr returns the bound gRPC address, or nil when not serving.
func (e *Executor) GRPCAddr() net.Addr {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grpcAddr
}

// HTTPAddr returns the bound HTTP address, or nil when not serving.
func (e *Executor) HTTPAddr() net.Addr {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.httpAddr
}

func (e *Executor) start(ctx context.Context) error {
	network := e.cfg.Node.Network

	var (
		store  *blockstore.Store
		client *rpcclient.ObservedClient
		err    error
	)
	if e.cfg.Node.Provider == ProviderRPC || e.cfg.Upstream.Sync {
		client, err = rpcclient.Dial(e.cfg.Upstream.Host, e.cfg.Upstream.User, e.cfg.Upstream.Password, metrics.NewRPCClient(network))
		if err != nil {
			return fmt.Errorf("dial upstream %s: %w", e.cfg.Upstream.Host, err)
		}
		e.onShutdown(client.Shutdown)
	}

	dispatcher := provider.NewDispatcher(e.logger.Named("dispatcher"), e.cfg.Node.Workers, e.cfg.Node.QueueSize)
	var prov query.Provider
	switch e.cfg.Node.Provider {
	case ProviderLocal:
		store, err = e.openStore()
		if err != nil {
			dispatcher.Stop()
			return err
		}
		prov = local.New(store, dispatcher, e.logger)
	case ProviderRPC:
		prov = rpc.New(client, dispatcher, e.logger)
	}
	e.onShutdown(dispatcher.Stop)
	e.querier = query.New(prov, metrics.NewQuery(network), e.logger)

	if e.cfg.Upstream.Sync {
		if err := e.startSyncer(ctx, client, store); err != nil {
			return err
		}
	}
	if e.cfg.Server.GRPCAddr != "" {
		if err := e.startGRPC(); err != nil {
			return err
		}
	}
	if e.cfg.Server.HTTPAddr != "" {
		if err := e.startHTTP(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) openStore() (*blockstore.Store, error) {
	store, err := blockstore.Open(e.cfg.StorePath(), metrics.NewBlockstore())
	if err != nil {
		return nil, err
	}
	ok, err := store.Initialized()
	if err == nil && !ok {
		err = fmt.Errorf("%s: %w", e.cfg.StorePath(), blockstore.ErrNotInitialized)
	}
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	e.onShutdown(func() {
		if err := store.Close(); err != nil {
			e.logger.Error("close block store", zap.Error(err))
		}
	})
	return store, nil
}

func (e *Executor) startSyncer(ctx context.Context, client *rpcclient.ObservedClient, store *blockstore.Store) error {
	network := e.cfg.Node.Network

	var writer syncer.BlockWriter
	if dsn := e.cfg.Archive.ClickhouseDSN; dsn != "" {
		repo, err := clickhouse.NewRepository(dsn, metrics.NewClickhouseArchive())
		if err != nil {
			return fmt.Errorf("init archive repository: %w", err)
		}
		e.onShutdown(func() {
			if err := repo.Close(); err != nil {
				e.logger.Error("close archive repository", zap.Error(err))
			}
		})

		w, err := archive.NewWriter(repo, store, metrics.NewArchive(network), batcher.Config{
			FlushSize:     e.cfg.Archive.FlushSize,
			FlushInterval: e.cfg.Archive.FlushInterval,
			RPS:           e.cfg.Archive.RPS,
		}, e.logger)
		if err != nil {
			return fmt.Errorf("init archive writer: %w", err)
		}
		w.Start(context.WithoutCancel(ctx))
		e.onShutdown(w.Stop)
		writer = w
	}

	signal, err := startBlockSignal(ctx, e.cfg.Upstream.BlockZMQ, e.logger)
	if err != nil {
		return err
	}

	svc, err := syncer.New(client, store, writer, metrics.NewSyncer(network), syncer.Config{
		Workers: e.cfg.Upstream.Workers,
		Window:  e.cfg.Upstream.Window,
		Mempool: e.cfg.Upstream.Mempool,
	}, network, e.logger, signal)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			e.fail(fmt.Errorf("syncer: %w", err))
		}
	}()
	e.onShutdown(wg.Wait)
	return nil
}

func (e *Executor) startGRPC() error {
	lis, err := net.Listen("tcp", e.cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", e.cfg.Server.GRPCAddr, err)
	}
	server := transport.NewServer(e.querier, e.logger)
	e.grpcAddr = lis.Addr()

	go func() {
		if err := server.Serve(lis); err != nil {
			e.fail(fmt.Errorf("grpc server: %w", err))
		}
	}()
	e.onShutdown(server.GracefulStop)
	e.logger.Info("serving grpc", zap.Stringer("addr", lis.Addr()))
	return nil
}

func (e *Executor) startHTTP() error {
	lis, err := net.Listen("tcp", e.cfg.Server.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", e.cfg.Server.HTTPAddr, err)
	}
	e.httpAddr = lis.Addr()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", e.healthz)

	server := &http.Server{
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		if err := server.Serve(lis); !errors.Is(err, http.ErrServerClosed) {
			e.fail(fmt.Errorf("http server: %w", err))
		}
	}()
	e.onShutdown(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			e.logger.Error("shutdown http server", zap.Error(err))
		}
	})
	e.logger.Info("serving http", zap.Stringer("addr", lis.Addr()))
	return nil
}

func (e *Executor) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	height, err := e.querier.GetLastHeight(ctx)
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = fmt.Fprintf(w, "unhealthy: code %d\n", chain.CodeOf(err))
		return
	}
	_, _ = fmt.Fprintf(w, "ok %d\n", height)
}

// onShutdown registers fn to run at shutdown, in reverse order of registration.
func (e *Executor) onShutdown(fn func()) {
	e.closers = append(e.closers, fn)
}

func (e *Executor) shutdown() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
	e.closers = nil
}

// fail records the first component failure and stops the node.
func (e *Executor) fail(err error) {
	e.errMu.Lock()
	if e.runErr == nil {
		e.runErr = err
	}
	e.errMu.Unlock()

	e.logger.Error("node component failed", zap.Error(err))
	e.mu.Lock()
	cancel := e.cancel
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
