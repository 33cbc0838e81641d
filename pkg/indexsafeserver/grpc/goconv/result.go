package goconv

import (
	"errors"
	"fmt"
	"math"

	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/go/indexsafe_grpc"
)

func ResultToGRPC(r indexsafe.Result[int64]) *indexsafe_grpc.GetReply {
	reply := &indexsafe_grpc.GetReply{
		Outcome: r.Outcome.String(),
		Index:   r.Index,
		Length:  int64(r.Length),
	}
	if r.OK() {
		reply.Value = r.Value
	}
	if err := r.Err(); err != nil {
		reply.Error = err.Error()
	}
	var tooHigh indexsafe.ErrIndexTooHigh
	if errors.As(r.Err(), &tooHigh) && tooHigh.Index > math.MaxInt64 {
		reply.IndexUnsigned = tooHigh.Index
	}
	return reply
}

// ResultFromGRPC rebuilds the typed result, including the typed
// failure, from a reply.
func ResultFromGRPC(reply *indexsafe_grpc.GetReply) (indexsafe.Result[int64], error) {
	if reply == nil {
		return indexsafe.Result[int64]{}, fmt.Errorf("empty reply")
	}
	length := int(reply.Length)
	if length < 0 {
		return indexsafe.Result[int64]{}, fmt.Errorf("negative length %d in the reply", reply.Length)
	}

	var err error
	switch outcome := indexsafe.OutcomeFromString(reply.GetOutcome()); outcome {
	case indexsafe.OutcomeValue:
	case indexsafe.OutcomeIndexTooLow:
		err = indexsafe.ErrIndexTooLow{Index: reply.Index, Length: length}
	case indexsafe.OutcomeIndexTooHigh:
		if reply.Index < 0 {
			return indexsafe.Result[int64]{}, fmt.Errorf("negative index %d for outcome %q", reply.Index, reply.GetOutcome())
		}
		index := uint64(reply.Index)
		if reply.IndexUnsigned != 0 {
			index = reply.IndexUnsigned
		}
		err = indexsafe.ErrIndexTooHigh{Index: index, Length: length}
	default:
		return indexsafe.Result[int64]{}, fmt.Errorf("unexpected outcome %q", reply.GetOutcome())
	}
	return indexsafe.NewResult(reply.Value, reply.Index, length, err), nil
}
