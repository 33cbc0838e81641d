package indexsafeserver

import (
	"context"
	"errors"

	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe/metrics"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/go/indexsafe_grpc"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/goconv"
	"github.com/xaionaro-go/indexsafe/pkg/sequencefile"
	"github.com/xaionaro-go/xsync"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GRPCServer struct {
	indexsafe_grpc.UnimplementedIndexSafeServer
	Metrics         *metrics.Metrics
	Observability   *belt.Belt
	SequencesLocker xsync.Mutex
	Sequences       sequencefile.Sequences
}

var _ indexsafe_grpc.IndexSafeServer = (*GRPCServer)(nil)

func NewGRPCServer(
	ctx context.Context,
	m *metrics.Metrics,
	sequences sequencefile.Sequences,
) *GRPCServer {
	if sequences == nil {
		sequences = sequencefile.Sequences{}
	}
	return &GRPCServer{
		Observability: belt.CtxBelt(ctx),
		Metrics:       m,
		Sequences:     sequences,
	}
}

func (srv *GRPCServer) ctx(ctx context.Context) context.Context {
	return belt.CtxWithBelt(ctx, srv.Observability)
}

func (srv *GRPCServer) Get(
	ctx context.Context,
	req *indexsafe_grpc.GetRequest,
) (_ret *indexsafe_grpc.GetReply, _err error) {
	ctx = srv.ctx(ctx)
	logger.Tracef(ctx, "Get: %s", spew.Sdump(req))
	defer func() { logger.Tracef(ctx, "/Get: %v %v", _ret, _err) }()

	var seq indexsafe.Slice[int64]
	if req.GetInline() {
		seq = req.GetValues()
	} else {
		var err error
		seq, err = xsync.DoR2(ctx, &srv.SequencesLocker, func() (indexsafe.Slice[int64], error) {
			return srv.Sequences.Get(req.GetSequenceName())
		})
		var unknown sequencefile.ErrUnknownSequence
		if errors.As(err, &unknown) {
			return nil, status.Errorf(codes.NotFound, "%v", err)
		}
		if err != nil {
			return nil, status.Errorf(codes.Internal, "unable to get sequence %q: %v", req.GetSequenceName(), err)
		}
	}

	r := metrics.Lookup[int64](ctx, srv.Metrics, seq, req.GetIndex())
	return goconv.ResultToGRPC(r), nil
}

func (srv *GRPCServer) SetSequence(
	ctx context.Context,
	req *indexsafe_grpc.SetSequenceRequest,
) (*indexsafe_grpc.SetSequenceReply, error) {
	ctx = srv.ctx(ctx)
	logger.Debugf(ctx, "SetSequence: %s (length %d)", req.GetName(), len(req.GetValues()))
	if req.GetName() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "the sequence name is empty")
	}

	values := make(indexsafe.Slice[int64], len(req.GetValues()))
	copy(values, req.GetValues())

	err := xsync.DoR1(ctx, &srv.SequencesLocker, func() error {
		srv.Sequences[req.GetName()] = values
		return nil
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "unable to set sequence %q: %v", req.GetName(), err)
	}
	return &indexsafe_grpc.SetSequenceReply{}, nil
}

func (srv *GRPCServer) ListSequences(
	ctx context.Context,
	req *indexsafe_grpc.ListSequencesRequest,
) (*indexsafe_grpc.ListSequencesReply, error) {
	ctx = srv.ctx(ctx)
	return xsync.DoR2(ctx, &srv.SequencesLocker, func() (*indexsafe_grpc.ListSequencesReply, error) {
		reply := &indexsafe_grpc.ListSequencesReply{}
		for _, name := range srv.Sequences.Names() {
			reply.Sequences = append(reply.Sequences, indexsafe_grpc.SequenceInfo{
				Name:   name,
				Length: int64(srv.Sequences[name].Len()),
			})
		}
		return reply, nil
	})
}

func (srv *GRPCServer) GetStats(
	ctx context.Context,
	req *indexsafe_grpc.GetStatsRequest,
) (*indexsafe_grpc.GetStatsReply, error) {
	return goconv.StatsToGRPC(srv.Metrics.Snapshot()), nil
}
