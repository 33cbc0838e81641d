package commands

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver/client"
	"github.com/xaionaro-go/indexsafe/pkg/sequencefile"
	"github.com/xaionaro-go/observability"
)

const (
	// ExitCodeOutOfRange is the exit status of a lookup that was refused.
	ExitCodeOutOfRange = 3
)

var (
	// Access these variables only from a main package:

	Root = &cobra.Command{
		Use: os.Args[0],
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			l := logger.FromCtx(ctx).WithLevel(LoggerLevel)
			ctx = logger.CtxWithLogger(ctx, l)
			cmd.SetContext(ctx)
			logger.Debugf(ctx, "log-level: %v", LoggerLevel)

			netPprofAddr, err := cmd.Flags().GetString("go-net-pprof-addr")
			if err != nil {
				l.Error("unable to get the value of the flag 'go-net-pprof-addr': %v", err)
			}
			if netPprofAddr != "" {
				observability.Go(ctx, func(ctx context.Context) {
					l.Infof("starting to listen for net/pprof requests at '%s'", netPprofAddr)
					l.Error(http.ListenAndServe(netPprofAddr, nil))
				})
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			logger.Debug(ctx, "end")
		},
	}

	Get = &cobra.Command{
		Use:   "get INDEX [VALUE...]",
		Short: "look up INDEX in the given values (or in --file/--sequence); put -- before a negative INDEX",
		Args:  cobra.MinimumNArgs(1),
		Run:   get,
	}

	Serve = &cobra.Command{
		Use:   "serve",
		Short: "serve lookups over gRPC",
		Args:  cobra.ExactArgs(0),
		Run:   serve,
	}

	Remote = &cobra.Command{
		Use: "remote",
	}

	RemoteGet = &cobra.Command{
		Use:  "get NAME INDEX",
		Args: cobra.ExactArgs(2),
		Run:  remoteGet,
	}

	RemoteSet = &cobra.Command{
		Use:  "set NAME [VALUE...]",
		Args: cobra.MinimumNArgs(1),
		Run:  remoteSet,
	}

	RemoteList = &cobra.Command{
		Use:  "list",
		Args: cobra.ExactArgs(0),
		Run:  remoteList,
	}

	RemoteStats = &cobra.Command{
		Use:  "stats",
		Args: cobra.ExactArgs(0),
		Run:  remoteStats,
	}

	LoggerLevel = logger.LevelWarning

	exit = os.Exit
)

func init() {
	Root.AddCommand(Get)
	Root.AddCommand(Serve)
	Root.AddCommand(Remote)
	Remote.AddCommand(RemoteGet)
	Remote.AddCommand(RemoteSet)
	Remote.AddCommand(RemoteList)
	Remote.AddCommand(RemoteStats)

	Root.PersistentFlags().Var(&LoggerLevel, "log-level", "")
	Root.PersistentFlags().String("go-net-pprof-addr", "", "address to listen to for net/pprof requests")
	Root.PersistentFlags().String("format", "plaintext", "output format (plaintext|json)")

	Get.Flags().String("file", "", "a YAML/JSON file with named sequences")
	Get.Flags().String("sequence", "", "the name of the sequence in --file")

	Serve.Flags().String("listen", "tcp:localhost:3594", "address to listen for gRPC clients at (tcp:, tcp+ssl:, unix: or a unix socket path)")
	Serve.Flags().String("sequences", "", "a YAML/JSON file with named sequences to serve")
	Serve.Flags().String("metrics-addr", "", "address to expose Prometheus metrics at")
	Serve.Flags().String("sentry-dsn", "", "report recovered panics to this Sentry DSN")

	Remote.PersistentFlags().String("remote-addr", "localhost:3594", "the address to an indexsafe server")
}

func assertNoError(ctx context.Context, err error) {
	if err != nil {
		logger.Panic(ctx, err)
	}
}

func parseInt64s(args []string) ([]int64, error) {
	result := make([]int64, 0, len(args))
	for idx, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse value #%d %q: %w", idx, arg, err)
		}
		result = append(result, v)
	}
	return result, nil
}

func get(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	index, err := strconv.ParseInt(args[0], 10, 64)
	assertNoError(ctx, err)

	seq, err := resolveSequence(cmd, args[1:])
	assertNoError(ctx, err)

	r := indexsafe.Lookup[int64](seq, index)
	logger.Debugf(ctx, "lookup of %d in %d values: %s", index, seq.Len(), r.Outcome)
	resultOutput(ctx, cmd, r)
}

// resolveSequence returns either the inline values or the --sequence
// of --file; mixing the two is refused.
func resolveSequence(cmd *cobra.Command, values []string) (indexsafe.Slice[int64], error) {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	name, err := cmd.Flags().GetString("sequence")
	if err != nil {
		return nil, err
	}

	switch {
	case filePath == "" && name != "":
		return nil, fmt.Errorf("--sequence requires --file")
	case filePath == "":
		return parseInt64s(values)
	case len(values) > 0:
		return nil, fmt.Errorf("values are not expected together with --file")
	}

	sequences, err := sequencefile.Load(filePath)
	if err != nil {
		return nil, err
	}
	return sequences.Get(name)
}

func remoteGet(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	index, err := strconv.ParseInt(args[1], 10, 64)
	assertNoError(ctx, err)

	r, err := remoteClient(cmd).Get(ctx, args[0], index)
	assertNoError(ctx, err)

	resultOutput(ctx, cmd, r)
}

func remoteSet(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	values, err := parseInt64s(args[1:])
	assertNoError(ctx, err)

	err = remoteClient(cmd).SetSequence(ctx, args[0], values)
	assertNoError(ctx, err)
}

func remoteList(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	list, err := remoteClient(cmd).ListSequences(ctx)
	assertNoError(ctx, err)

	if isJSON(ctx, cmd) {
		jsonOutput(ctx, cmd.OutOrStdout(), list)
		return
	}
	for _, item := range list {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", item.Name, item.Length)
	}
}

func remoteStats(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	stats, err := remoteClient(cmd).GetStats(ctx)
	assertNoError(ctx, err)

	statsOutput(ctx, cmd, stats)
}

func remoteClient(cmd *cobra.Command) *client.Client {
	remoteAddr, err := cmd.Flags().GetString("remote-addr")
	assertNoError(cmd.Context(), err)
	return client.New(remoteAddr)
}
