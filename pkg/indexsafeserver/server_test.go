package indexsafeserver

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe/metrics"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/client"
	"github.com/xaionaro-go/indexsafe/pkg/sequencefile"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(
	t *testing.T,
	sequences sequencefile.Sequences,
	opts ...Option,
) (*Server, *client.Client) {
	t.Helper()
	ctx, cancelFn := context.WithCancel(context.Background())

	srv, err := New(ctx, sequences, prometheus.NewRegistry(), opts...)
	if err != nil {
		t.Fatalf("unable to initialize the server: %v", err)
	}

	listener := bufconn.Listen(1 << 20)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ServeContext(ctx, listener)
	}()
	t.Cleanup(func() {
		cancelFn()
		if err := <-errCh; err != nil {
			t.Errorf("ServeContext returned an error: %v", err)
		}
	})

	c := client.New("passthrough:///bufnet")
	c.DialOptions = append(c.DialOptions, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return listener.DialContext(ctx)
	}))
	return srv, c
}

func TestServerGet(t *testing.T) {
	ctx := context.Background()
	_, c := startServer(t, sequencefile.Sequences{
		"small": {10, 20, 30},
		"empty": {},
	})

	for _, tc := range []struct {
		name    string
		seq     string
		index   int64
		outcome indexsafe.Outcome
		value   int64
	}{
		{name: "first", seq: "small", index: 0, outcome: indexsafe.OutcomeValue, value: 10},
		{name: "last", seq: "small", index: 2, outcome: indexsafe.OutcomeValue, value: 30},
		{name: "pastEnd", seq: "small", index: 3, outcome: indexsafe.OutcomeIndexTooHigh},
		{name: "negative", seq: "small", index: -1, outcome: indexsafe.OutcomeIndexTooLow},
		{name: "empty", seq: "empty", index: 0, outcome: indexsafe.OutcomeIndexTooHigh},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, err := c.Get(ctx, tc.seq, tc.index)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Outcome != tc.outcome || r.Value != tc.value {
				t.Fatalf("expected %s/%d, got %s/%d", tc.outcome, tc.value, r.Outcome, r.Value)
			}
			if r.Index != tc.index {
				t.Fatalf("expected index %d, got %d", tc.index, r.Index)
			}
		})
	}

	t.Run("typedError", func(t *testing.T) {
		r, err := c.Get(ctx, "small", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var tooHigh indexsafe.ErrIndexTooHigh
		if !errors.As(r.Err(), &tooHigh) || tooHigh.Index != 5 || tooHigh.Length != 3 {
			t.Fatalf("unexpected error: %#v", r.Err())
		}
	})

	t.Run("unknownSequence", func(t *testing.T) {
		_, err := c.Get(ctx, "nope", 0)
		if status.Code(errors.Unwrap(err)) != codes.NotFound {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("inline", func(t *testing.T) {
		r, err := c.GetInline(ctx, []int64{-1, -2}, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.OK() || r.Value != -2 {
			t.Fatalf("unexpected result: %#v", r)
		}
	})

	t.Run("inlineEmpty", func(t *testing.T) {
		r, err := c.GetInline(ctx, nil, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Outcome != indexsafe.OutcomeIndexTooHigh || r.Length != 0 {
			t.Fatalf("unexpected result: %#v", r)
		}
	})
}

func TestServerSetAndList(t *testing.T) {
	ctx := context.Background()
	_, c := startServer(t, nil)

	values := []int64{7, 8, 9}
	if err := c.SetSequence(ctx, "x", values); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values[0] = 100

	r, err := c.Get(ctx, "x", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Value != 7 {
		t.Fatalf("expected 7, got %d", r.Value)
	}

	err = c.SetSequence(ctx, "", values)
	if status.Code(errors.Unwrap(err)) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	list, err := c.ListSequences(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "x" || list[0].Length != 3 {
		t.Fatalf("unexpected list: %#v", list)
	}
}

func TestServerStats(t *testing.T) {
	ctx := context.Background()
	_, c := startServer(t, sequencefile.Sequences{"s": {10, 20, 30}})

	for _, index := range []int64{0, 1, 3, -1, -2} {
		if _, err := c.Get(ctx, "s", index); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats, err := c.GetStats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := metrics.Stats{Value: 2, IndexTooLow: 2, IndexTooHigh: 1}
	if stats != want {
		t.Fatalf("expected %#v, got %#v", want, stats)
	}
}

func TestRecoveryHandler(t *testing.T) {
	var reported any
	srv, err := New(context.Background(), nil, nil, OptionPanicReporter(func(ctx context.Context, p any) {
		reported = p
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = srv.recoveryHandler(context.Background(), "boom")
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
	if reported != "boom" {
		t.Fatalf("expected the panic to be reported, got %v", reported)
	}
}
