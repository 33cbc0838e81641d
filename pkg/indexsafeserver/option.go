package indexsafeserver

import (
	"context"
)

// PanicReporter receives panics recovered in request handlers.
type PanicReporter func(ctx context.Context, p any)

// Config is a configuration of the IndexSafe server.
// Keep fields additive (backwards compatible).
type Config struct {
	// PanicReporter is called for every recovered panic. Nil means: only log it.
	PanicReporter PanicReporter

	// MetricsNamespace prefixes the exported metric names.
	MetricsNamespace string
}

func DefaultConfig() Config {
	return Config{
		MetricsNamespace: "indexsafe",
	}
}

type Option interface {
	apply(*Config)
}

// Options is a helper wrapper around []Option.
type Options []Option

func (opts Options) apply(cfg *Config) {
	for _, opt := range opts {
		opt.apply(cfg)
	}
}

func (opts Options) Config() Config {
	cfg := DefaultConfig()
	opts.apply(&cfg)
	return cfg
}

type OptionPanicReporter PanicReporter

func (o OptionPanicReporter) apply(cfg *Config) {
	cfg.PanicReporter = PanicReporter(o)
}

type OptionMetricsNamespace string

func (o OptionMetricsNamespace) apply(cfg *Config) {
	cfg.MetricsNamespace = string(o)
}
