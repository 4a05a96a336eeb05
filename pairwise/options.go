package pairwise

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/warp/dtw"
)

// Option customizes Compute and Nearest.
type Option func(*config)

type config struct {
	workers int
	opts    dtw.Options
	cache   Cache
	logger  *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.NumCPU(),
		opts:    dtw.DefaultOptions(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithConcurrency bounds the number of pairs computed at a time. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("pairwise: WithConcurrency(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithOptions sets the DTW options used for every pair.
// ReturnPath and MemoryMode are ignored; only distances are computed.
func WithOptions(o dtw.Options) Option {
	return func(c *config) { c.opts = o }
}

// WithCache memoizes distances in cache. Panics on nil.
func WithCache(cache Cache) Option {
	if cache == nil {
		panic("pairwise: WithCache(nil)")
	}
	return func(c *config) { c.cache = cache }
}

// WithLogger reports progress and cache failures to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pairwise: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
