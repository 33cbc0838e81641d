package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe/metrics"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/grpc/goconv"
)

func isJSON(ctx context.Context, cmd *cobra.Command) bool {
	format, err := cmd.Flags().GetString("format")
	assertNoError(ctx, err)
	switch format {
	case "json":
		return true
	case "plaintext", "":
		return false
	default:
		logger.Panicf(ctx, "unknown output format %q", format)
		return false
	}
}

func jsonOutput(ctx context.Context, out io.Writer, value any) {
	b, err := json.MarshalIndent(value, "", " ")
	assertNoError(ctx, err)
	fmt.Fprintf(out, "%s\n", b)
}

// resultOutput prints r and terminates with ExitCodeOutOfRange if the
// lookup was refused.
func resultOutput(
	ctx context.Context,
	cmd *cobra.Command,
	r indexsafe.Result[int64],
) {
	out := cmd.OutOrStdout()
	switch {
	case isJSON(ctx, cmd):
		jsonOutput(ctx, out, goconv.ResultToGRPC(r))
	case r.OK():
		fmt.Fprintf(out, "%d\n", r.Value)
	default:
		fmt.Fprintf(out, "%s: %v\n", r.Outcome, r.Err())
	}

	if r.Outcome.IsOutOfRange() {
		exit(ExitCodeOutOfRange)
	}
}

func statsOutput(
	ctx context.Context,
	cmd *cobra.Command,
	stats metrics.Stats,
) {
	out := cmd.OutOrStdout()
	if isJSON(ctx, cmd) {
		jsonOutput(ctx, out, stats)
		return
	}
	fmt.Fprintf(out, "lookups:        %s\n", humanize.Comma(int64(stats.Total())))
	fmt.Fprintf(out, "value:          %s\n", humanize.Comma(int64(stats.Value)))
	fmt.Fprintf(out, "index_too_low:  %s\n", humanize.Comma(int64(stats.IndexTooLow)))
	fmt.Fprintf(out, "index_too_high: %s\n", humanize.Comma(int64(stats.IndexTooHigh)))
}
