package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe/metrics"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/go/indexsafe_grpc"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/goconv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

type Client struct {
	Target string

	// DialOptions are appended to the options derived from Target.
	DialOptions []grpc.DialOption
}

func New(target string) *Client {
	return &Client{Target: target}
}

func (c *Client) getGRPCDialParams() (target string, opts []grpc.DialOption) {
	target = c.Target
	opts = []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	defer func() { opts = append(opts, c.DialOptions...) }()

	parts := strings.SplitN(c.Target, ":", 2)
	if len(parts) < 2 {
		return
	}

	switch parts[0] {
	case "tcp+ssl":
		opts = []grpc.DialOption{
			grpc.WithTransportCredentials(
				credentials.NewTLS(&tls.Config{
					InsecureSkipVerify: true,
				}),
			),
		}
		target = parts[1]
	case "tcp":
		target = parts[1]
	case "unix":
		target = "unix:" + parts[1]
	}
	return
}

func (c *Client) grpcClient() (indexsafe_grpc.IndexSafeClient, *grpc.ClientConn, error) {
	target, opts := c.getGRPCDialParams()
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to initialize a gRPC client: %w", err)
	}

	client := indexsafe_grpc.NewIndexSafeClient(conn)
	return client, conn, nil
}

// Get looks up index in the sequence registered on the server under name.
func (c *Client) Get(
	ctx context.Context,
	name string,
	index int64,
) (indexsafe.Result[int64], error) {
	return c.get(ctx, &indexsafe_grpc.GetRequest{
		SequenceName: name,
		Index:        index,
	})
}

// GetInline looks up index in values, the sequence travels with the request.
func (c *Client) GetInline(
	ctx context.Context,
	values []int64,
	index int64,
) (indexsafe.Result[int64], error) {
	return c.get(ctx, &indexsafe_grpc.GetRequest{
		Values: values,
		Inline: true,
		Index:  index,
	})
}

func (c *Client) get(
	ctx context.Context,
	req *indexsafe_grpc.GetRequest,
) (indexsafe.Result[int64], error) {
	client, conn, err := c.grpcClient()
	if err != nil {
		return indexsafe.Result[int64]{}, err
	}
	defer conn.Close()

	reply, err := client.Get(ctx, req)
	if err != nil {
		return indexsafe.Result[int64]{}, fmt.Errorf("query error: %w", err)
	}
	logger.Tracef(ctx, "Get reply: %#+v", reply)

	r, err := goconv.ResultFromGRPC(reply)
	if err != nil {
		return indexsafe.Result[int64]{}, fmt.Errorf("unable to parse the reply: %w", err)
	}
	return r, nil
}

func (c *Client) SetSequence(
	ctx context.Context,
	name string,
	values []int64,
) error {
	client, conn, err := c.grpcClient()
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = client.SetSequence(ctx, &indexsafe_grpc.SetSequenceRequest{
		Name:   name,
		Values: values,
	})
	if err != nil {
		return fmt.Errorf("query error: %w", err)
	}
	return nil
}

func (c *Client) ListSequences(
	ctx context.Context,
) ([]indexsafe_grpc.SequenceInfo, error) {
	client, conn, err := c.grpcClient()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	reply, err := client.ListSequences(ctx, &indexsafe_grpc.ListSequencesRequest{})
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return reply.Sequences, nil
}

func (c *Client) GetStats(
	ctx context.Context,
) (metrics.Stats, error) {
	client, conn, err := c.grpcClient()
	if err != nil {
		return metrics.Stats{}, err
	}
	defer conn.Close()

	reply, err := client.GetStats(ctx, &indexsafe_grpc.GetStatsRequest{})
	if err != nil {
		return metrics.Stats{}, fmt.Errorf("query error: %w", err)
	}
	return goconv.StatsFromGRPC(reply), nil
}
