// Package metrics wraps the indexsafe accessor with Prometheus counters
// and go-belt logging of refused lookups.
package metrics

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/xaionaro-go/indexsafe/pkg/indexsafe"
	"golang.org/x/exp/constraints"
)

type Metrics struct {
	Config  Config
	Lookups *prometheus.CounterVec
}

func New(opts ...Option) (*Metrics, error) {
	cfg := Options(opts).Config()
	m := &Metrics{
		Config: cfg,
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "lookups_total",
			Help:      "Bounds-checked lookups by outcome.",
		}, []string{"outcome"}),
	}

	// pre-create the series so that zeros are exported
	for o := indexsafe.OutcomeValue; o < indexsafe.EndOfOutcome; o++ {
		m.Lookups.WithLabelValues(o.String())
	}

	if cfg.Registerer != nil {
		if err := cfg.Registerer.Register(m.Lookups); err != nil {
			return nil, fmt.Errorf("unable to register the lookups counter: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Lookups}
}

// Observe accounts a single lookup with the given outcome.
func (m *Metrics) Observe(
	ctx context.Context,
	outcome indexsafe.Outcome,
	err error,
) {
	switch outcome {
	case indexsafe.OutcomeValue:
	case indexsafe.OutcomeIndexTooLow, indexsafe.OutcomeIndexTooHigh:
		logger.Debugf(ctx, "refused lookup: %v", err)
	default:
		logger.Errorf(ctx, "unexpected lookup outcome %s: %v", outcome, err)
		return
	}
	m.Lookups.WithLabelValues(outcome.String()).Inc()
}

// Get is indexsafe.GetFrom accounted in m.
func Get[T any, I constraints.Integer](
	ctx context.Context,
	m *Metrics,
	seq indexsafe.Sequence[T],
	index I,
) (T, error) {
	v, err := indexsafe.GetFrom(seq, index)
	m.Observe(ctx, indexsafe.OutcomeOf(err), err)
	return v, err
}

// Lookup is indexsafe.Lookup accounted in m.
func Lookup[T any, I constraints.Integer](
	ctx context.Context,
	m *Metrics,
	seq indexsafe.Sequence[T],
	index I,
) indexsafe.Result[T] {
	r := indexsafe.Lookup(seq, index)
	m.Observe(ctx, r.Outcome, r.Err())
	return r
}

type Stats struct {
	Value        uint64 `json:"value"`
	IndexTooLow  uint64 `json:"index_too_low"`
	IndexTooHigh uint64 `json:"index_too_high"`
}

func (s Stats) Total() uint64 {
	return s.Value + s.IndexTooLow + s.IndexTooHigh
}

func (m *Metrics) Snapshot() Stats {
	return Stats{
		Value:        m.count(indexsafe.OutcomeValue),
		IndexTooLow:  m.count(indexsafe.OutcomeIndexTooLow),
		IndexTooHigh: m.count(indexsafe.OutcomeIndexTooHigh),
	}
}

func (m *Metrics) count(outcome indexsafe.Outcome) uint64 {
	var metric dto.Metric
	if err := m.Lookups.WithLabelValues(outcome.String()).Write(&metric); err != nil {
		return 0
	}
	return uint64(metric.GetCounter().GetValue())
}
