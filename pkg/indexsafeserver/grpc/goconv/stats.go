package goconv

import (
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe/metrics"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/go/indexsafe_grpc"
)

func StatsToGRPC(in metrics.Stats) *indexsafe_grpc.GetStatsReply {
	return &indexsafe_grpc.GetStatsReply{
		Value:        in.Value,
		IndexTooLow:  in.IndexTooLow,
		IndexTooHigh: in.IndexTooHigh,
	}
}

func StatsFromGRPC(in *indexsafe_grpc.GetStatsReply) metrics.Stats {
	if in == nil {
		return metrics.Stats{}
	}
	return metrics.Stats{
		Value:        in.Value,
		IndexTooLow:  in.IndexTooLow,
		IndexTooHigh: in.IndexTooHigh,
	}
}
