package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/tliron/commonlog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/chazu/celstep/gen/celstep/v1/celstepv1connect"
	"github.com/chazu/celstep/history"
)

var log = commonlog.GetLogger("celstep.server")

// Config configures a StepperServer.
type Config struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration

	// HistoryRetention, when positive, prunes saved sources older than this
	// on every sweep.
	HistoryRetention time.Duration
	Eval             EvalOptions
}

// StepperServer serves the stepping service over Connect (HTTP/JSON and
// the gRPC protocol) and, optionally, gRPC health and reflection on a
// separate listener.
type StepperServer struct {
	sessions *SessionStore
	stepper  *StepperService
	history  history.Store
	mux      *http.ServeMux

	health *health.Server

	mu          sync.Mutex
	httpServer  *http.Server
	grpcServer  *grpc.Server
	stopSweeper func()
}

// New creates a StepperServer backed by the given history store.
func New(cfg Config, store history.Store) *StepperServer {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 5 * time.Minute
	}

	sessions := NewSessionStore()
	s := &StepperServer{
		sessions: sessions,
		stepper:  NewStepperService(sessions, store, cfg.Eval),
		history:  store,
		mux:      http.NewServeMux(),
		health:   health.NewServer(),
	}

	path, handler := celstepv1connect.NewStepperServiceHandler(s.stepper)
	s.mux.Handle(path, handler)
	s.health.SetServingStatus(celstepv1connect.StepperServiceName, healthpb.HealthCheckResponse_SERVING)

	var hooks []func()
	if retention := cfg.HistoryRetention; retention > 0 {
		hooks = append(hooks, func() { s.pruneHistory(time.Now().Add(-retention)) })
	}
	s.stopSweeper = sessions.StartSweeper(cfg.SweepInterval, cfg.SessionTTL, hooks...)
	return s
}

// pruneHistory drops history entries saved before cutoff.
func (s *StepperServer) pruneHistory(cutoff time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n, err := s.history.Prune(ctx, cutoff)
	if err != nil {
		log.Warningf("pruning history: %s", err)
		return
	}
	if n > 0 {
		log.Debugf("pruned %d history entries", n)
	}
}

// Handler returns the HTTP handler serving the Connect procedures.
func (s *StepperServer) Handler() http.Handler {
	return s.mux
}

// Sessions returns the server's session store.
func (s *StepperServer) Sessions() *SessionStore {
	return s.sessions
}

// ListenAndServe starts the HTTP server on the given address.
// The address should be in the form "host:port" or ":port".
func (s *StepperServer) ListenAndServe(addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	log.Noticef("celstep stepping service listening on %s", addr)
	log.Infof("  Connect (HTTP/JSON): http://%s%s", addr, celstepv1connect.StepperServiceCompileProcedure)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ServeGRPC serves gRPC health checks and server reflection on addr until
// Stop is called.
func (s *StepperServer) ServeGRPC(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.serveGRPC(lis)
}

func (s *StepperServer) serveGRPC(lis net.Listener) error {
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, s.health)
	reflection.Register(gs)

	s.mu.Lock()
	s.grpcServer = gs
	s.mu.Unlock()

	log.Noticef("gRPC health and reflection listening on %s", lis.Addr())
	return gs.Serve(lis)
}

// Stop shuts down the listeners and the session sweeper.
func (s *StepperServer) Stop() {
	s.health.Shutdown()
	if s.stopSweeper != nil {
		s.stopSweeper()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}
