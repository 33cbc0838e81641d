package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Config is a configuration of Metrics.
// Keep fields additive (backwards compatible).
type Config struct {
	// Namespace prefixes the metric names. Empty means no prefix.
	Namespace string

	// Registerer is where the collectors are registered.
	// Nil means: do not register anywhere.
	Registerer prometheus.Registerer
}

func DefaultConfig() Config {
	return Config{
		Namespace: "indexsafe",
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

type OptionNamespace string

func (o OptionNamespace) apply(cfg *Config) {
	cfg.Namespace = string(o)
}

type optionRegisterer struct {
	prometheus.Registerer
}

func (o optionRegisterer) apply(cfg *Config) {
	cfg.Registerer = o.Registerer
}

func OptionRegisterer(reg prometheus.Registerer) Option {
	return optionRegisterer{Registerer: reg}
}
