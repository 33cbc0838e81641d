// service.go wires the IndexSafe service into grpc-go: the service
// descriptor, the server registration and the client stub.

package indexsafe_grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	IndexSafe_Get_FullMethodName           = "/indexsafe.IndexSafe/Get"
	IndexSafe_SetSequence_FullMethodName   = "/indexsafe.IndexSafe/SetSequence"
	IndexSafe_ListSequences_FullMethodName = "/indexsafe.IndexSafe/ListSequences"
	IndexSafe_GetStats_FullMethodName      = "/indexsafe.IndexSafe/GetStats"
)

type IndexSafeClient interface {
	Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetReply, error)
	SetSequence(ctx context.Context, in *SetSequenceRequest, opts ...grpc.CallOption) (*SetSequenceReply, error)
	ListSequences(ctx context.Context, in *ListSequencesRequest, opts ...grpc.CallOption) (*ListSequencesReply, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsReply, error)
}

type indexSafeClient struct {
	cc grpc.ClientConnInterface
}

func NewIndexSafeClient(cc grpc.ClientConnInterface) IndexSafeClient {
	return &indexSafeClient{cc}
}

func invoke[REQ, REPLY any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	method string,
	in *REQ,
	opts []grpc.CallOption,
) (*REPLY, error) {
	out := new(REPLY)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexSafeClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*GetReply, error) {
	return invoke[GetRequest, GetReply](ctx, c.cc, IndexSafe_Get_FullMethodName, in, opts)
}

func (c *indexSafeClient) SetSequence(ctx context.Context, in *SetSequenceRequest, opts ...grpc.CallOption) (*SetSequenceReply, error) {
	return invoke[SetSequenceRequest, SetSequenceReply](ctx, c.cc, IndexSafe_SetSequence_FullMethodName, in, opts)
}

func (c *indexSafeClient) ListSequences(ctx context.Context, in *ListSequencesRequest, opts ...grpc.CallOption) (*ListSequencesReply, error) {
	return invoke[ListSequencesRequest, ListSequencesReply](ctx, c.cc, IndexSafe_ListSequences_FullMethodName, in, opts)
}

func (c *indexSafeClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsReply, error) {
	return invoke[GetStatsRequest, GetStatsReply](ctx, c.cc, IndexSafe_GetStats_FullMethodName, in, opts)
}

type IndexSafeServer interface {
	Get(context.Context, *GetRequest) (*GetReply, error)
	SetSequence(context.Context, *SetSequenceRequest) (*SetSequenceReply, error)
	ListSequences(context.Context, *ListSequencesRequest) (*ListSequencesReply, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsReply, error)
	mustEmbedUnimplementedIndexSafeServer()
}

// UnimplementedIndexSafeServer must be embedded by IndexSafeServer implementations.
type UnimplementedIndexSafeServer struct{}

func (UnimplementedIndexSafeServer) Get(context.Context, *GetRequest) (*GetReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedIndexSafeServer) SetSequence(context.Context, *SetSequenceRequest) (*SetSequenceReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetSequence not implemented")
}
func (UnimplementedIndexSafeServer) ListSequences(context.Context, *ListSequencesRequest) (*ListSequencesReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSequences not implemented")
}
func (UnimplementedIndexSafeServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedIndexSafeServer) mustEmbedUnimplementedIndexSafeServer() {}

func RegisterIndexSafeServer(s grpc.ServiceRegistrar, srv IndexSafeServer) {
	s.RegisterService(&IndexSafe_ServiceDesc, srv)
}

func unaryHandler[REQ any](
	method string,
	call func(IndexSafeServer, context.Context, *REQ) (any, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(REQ)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(IndexSafeServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(IndexSafeServer), ctx, req.(*REQ))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var IndexSafe_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "indexsafe.IndexSafe",
	HandlerType: (*IndexSafeServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Get",
			Handler: unaryHandler(IndexSafe_Get_FullMethodName, func(s IndexSafeServer, ctx context.Context, in *GetRequest) (any, error) {
				return s.Get(ctx, in)
			}),
		},
		{
			MethodName: "SetSequence",
			Handler: unaryHandler(IndexSafe_SetSequence_FullMethodName, func(s IndexSafeServer, ctx context.Context, in *SetSequenceRequest) (any, error) {
				return s.SetSequence(ctx, in)
			}),
		},
		{
			MethodName: "ListSequences",
			Handler: unaryHandler(IndexSafe_ListSequences_FullMethodName, func(s IndexSafeServer, ctx context.Context, in *ListSequencesRequest) (any, error) {
				return s.ListSequences(ctx, in)
			}),
		},
		{
			MethodName: "GetStats",
			Handler: unaryHandler(IndexSafe_GetStats_FullMethodName, func(s IndexSafeServer, ctx context.Context, in *GetStatsRequest) (any, error) {
				return s.GetStats(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "indexsafe.proto",
}
