package goconv

import (
	"errors"
	"math"
	"testing"

	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/go/indexsafe_grpc"
)

func TestResultGRPCRoundTrip(t *testing.T) {
	seq := indexsafe.Slice[int64]{10, 20, 30}

	for _, index := range []int64{0, 2, 3, -1} {
		orig := indexsafe.Lookup[int64](seq, index)
		got, err := ResultFromGRPC(ResultToGRPC(orig))
		if err != nil {
			t.Fatalf("index %d: unexpected error: %v", index, err)
		}
		if got.Outcome != orig.Outcome || got.Value != orig.Value || got.Index != orig.Index || got.Length != orig.Length {
			t.Fatalf("index %d: expected %#v, got %#v", index, orig, got)
		}
		if (got.Err() == nil) != (orig.Err() == nil) {
			t.Fatalf("index %d: error mismatch: %v vs %v", index, got.Err(), orig.Err())
		}
		if orig.Err() != nil && got.Err().Error() != orig.Err().Error() {
			t.Fatalf("index %d: %q != %q", index, got.Err(), orig.Err())
		}
	}
}

func TestResultFromGRPCTypedErrors(t *testing.T) {
	r, err := ResultFromGRPC(&indexsafe_grpc.GetReply{
		Outcome: indexsafe_grpc.OutcomeIndexTooLow,
		Index:   -7,
		Length:  3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var tooLow indexsafe.ErrIndexTooLow
	if !errors.As(r.Err(), &tooLow) || tooLow.Index != -7 || tooLow.Length != 3 {
		t.Fatalf("unexpected result error: %#v", r.Err())
	}
}

func TestResultGRPCHugeUnsignedIndex(t *testing.T) {
	orig := indexsafe.Lookup[int64](indexsafe.Slice[int64]{10, 20, 30}, uint64(math.MaxUint64))

	b, err := ResultToGRPC(orig).Marshal()
	if err != nil {
		t.Fatalf("unable to marshal: %v", err)
	}
	var reply indexsafe_grpc.GetReply
	if err := reply.Unmarshal(b); err != nil {
		t.Fatalf("unable to unmarshal: %v", err)
	}

	got, err := ResultFromGRPC(&reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var tooHigh indexsafe.ErrIndexTooHigh
	if !errors.As(got.Err(), &tooHigh) || tooHigh.Index != math.MaxUint64 || tooHigh.Length != 3 {
		t.Fatalf("unexpected result error: %#v", got.Err())
	}
	if got.Err().Error() != orig.Err().Error() {
		t.Fatalf("%q != %q", got.Err(), orig.Err())
	}
	if got.Index != math.MaxInt64 {
		t.Fatalf("unexpected index %d", got.Index)
	}
}

func TestResultFromGRPCInvalid(t *testing.T) {
	for _, reply := range []*indexsafe_grpc.GetReply{
		nil,
		{Outcome: "garbage"},
		{Outcome: indexsafe_grpc.OutcomeValue, Length: -1},
		{Outcome: indexsafe_grpc.OutcomeIndexTooHigh, Index: -1, Length: 3},
	} {
		if _, err := ResultFromGRPC(reply); err == nil {
			t.Fatalf("expected an error for %#v", reply)
		}
	}
}
