// Package indexsafeserver serves the bounds-checked accessor over gRPC.
package indexsafeserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe/metrics"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/go/indexsafe_grpc"
	"github.com/xaionaro-go/indexsafe/pkg/sequencefile"
	"github.com/xaionaro-go/observability"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	Config     Config
	GRPCServer *GRPCServer
}

func New(
	ctx context.Context,
	sequences sequencefile.Sequences,
	reg prometheus.Registerer,
	opts ...Option,
) (*Server, error) {
	cfg := Options(opts).Config()
	m, err := metrics.New(
		metrics.OptionNamespace(cfg.MetricsNamespace),
		metrics.OptionRegisterer(reg),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize metrics: %w", err)
	}
	return &Server{
		Config:     cfg,
		GRPCServer: NewGRPCServer(ctx, m, sequences),
	}, nil
}

func (srv *Server) newGRPC() *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			grpc_recovery.UnaryServerInterceptor(
				grpc_recovery.WithRecoveryHandlerContext(srv.recoveryHandler),
			),
			srv.loggingInterceptor,
		)),
	)
	indexsafe_grpc.RegisterIndexSafeServer(grpcServer, srv.GRPCServer)
	return grpcServer
}

// ServeContext serves until ctx is cancelled, then stops gracefully.
func (srv *Server) ServeContext(
	ctx context.Context,
	listener net.Listener,
) error {
	grpcServer := srv.newGRPC()
	observability.Go(ctx, func(ctx context.Context) {
		<-ctx.Done()
		logger.Debugf(ctx, "stopping the gRPC server at %s", listener.Addr())
		grpcServer.GracefulStop()
	})

	err := grpcServer.Serve(listener)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("unable to serve at %s: %w", listener.Addr(), err)
	}
	return nil
}

func (srv *Server) recoveryHandler(ctx context.Context, p any) error {
	ctx = srv.GRPCServer.ctx(ctx)
	logger.Errorf(ctx, "panic in a request handler: %v", p)
	if srv.Config.PanicReporter != nil {
		srv.Config.PanicReporter(ctx, p)
	}
	return status.Errorf(codes.Internal, "internal error: %v", p)
}

func (srv *Server) loggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	logCtx := srv.GRPCServer.ctx(ctx)
	startedAt := time.Now()
	reply, err := handler(ctx, req)
	if err != nil {
		logger.Warnf(logCtx, "%s failed after %v: %v", info.FullMethod, time.Since(startedAt), err)
		return reply, err
	}
	logger.Debugf(logCtx, "%s took %v", info.FullMethod, time.Since(startedAt))
	return reply, nil
}
