package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafeserver"
	"github.com/xaionaro-go/indexsafe/pkg/sequencefile"
	"github.com/xaionaro-go/observability"
	"golang.org/x/sys/unix"
)

func serve(cmd *cobra.Command, args []string) {
	ctx, cancelFn := signal.NotifyContext(cmd.Context(), os.Interrupt, unix.SIGTERM)
	defer cancelFn()

	listenAddr, err := cmd.Flags().GetString("listen")
	assertNoError(ctx, err)
	sequencesPath, err := cmd.Flags().GetString("sequences")
	assertNoError(ctx, err)
	metricsAddr, err := cmd.Flags().GetString("metrics-addr")
	assertNoError(ctx, err)
	sentryDSN, err := cmd.Flags().GetString("sentry-dsn")
	assertNoError(ctx, err)

	var sequences sequencefile.Sequences
	if sequencesPath != "" {
		sequences, err = sequencefile.Load(sequencesPath)
		assertNoError(ctx, err)
		logger.Infof(ctx, "loaded %d sequences from '%s'", len(sequences), sequencesPath)
	}

	var opts []indexsafeserver.Option
	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn: sentryDSN,
		})
		assertNoError(ctx, err)
		defer sentry.Flush(2 * time.Second)
		opts = append(opts, indexsafeserver.OptionPanicReporter(newSentryPanicReporter(sentry.CurrentHub())))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	srv, err := indexsafeserver.New(ctx, sequences, reg, opts...)
	assertNoError(ctx, err)

	if metricsAddr != "" {
		httpServer := &http.Server{Addr: metricsAddr, Handler: metricsHandler(reg)}
		observability.Go(ctx, func(ctx context.Context) {
			logger.Infof(ctx, "exposing metrics at http://%s/metrics", metricsAddr)
			err := httpServer.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				logger.Errorf(ctx, "unable to serve metrics: %v", err)
			}
		})
		observability.Go(ctx, func(ctx context.Context) {
			<-ctx.Done()
			_ = httpServer.Close()
		})
	}

	listener, err := getListener(ctx, listenAddr)
	assertNoError(ctx, err)

	logger.Infof(ctx, "listening for gRPC clients at %s (%T)", listener.Addr(), listener)
	err = srv.ServeContext(ctx, listener)
	assertNoError(ctx, err)
	logger.Infof(ctx, "finished")
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return mux
}

func newSentryPanicReporter(hub *sentry.Hub) indexsafeserver.PanicReporter {
	return func(ctx context.Context, p any) {
		hub.RecoverWithContext(ctx, p)
	}
}
