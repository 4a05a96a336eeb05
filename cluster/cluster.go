// Package cluster groups equal-length series by k-means under the DTW
// distance.
//
// Assignment uses DTW (|x−y|, optional band and slope penalty) between a
// series and each group center; centers are the element-wise mean of their
// members, as in classic k-means, and Group.Center is recomputed from the
// final members. Initial centers are random, so repeated runs may label
// groups differently; Partition orders its result by the lowest member index
// to keep output stable for well-separated data.
package cluster

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/warp/dtw"
)

var (
	// ErrEmpty indicates no series, or series with no samples.
	ErrEmpty = errors.New("cluster: no samples")

	// ErrLengthMismatch indicates series of different lengths.
	ErrLengthMismatch = errors.New("cluster: series lengths differ")

	// ErrBadK indicates k outside [1, len(series)].
	ErrBadK = errors.New("cluster: k out of range")
)

// Group is one cluster: its mean series and the indices of its members
// (ascending) in the input.
type Group struct {
	Center  []float64
	Members []int
}

// Option customizes Partition.
type Option func(*config)

type config struct {
	opts   dtw.Options
	delta  float64
	logger *slog.Logger
}

const defaultDelta = 0.01

// WithOptions sets the DTW options used for assignment.
func WithOptions(o dtw.Options) Option {
	return func(c *config) { c.opts = o }
}

// WithDelta stops iterating once fewer than delta·N series change group.
// Panics unless 0 < delta < 1.
func WithDelta(delta float64) Option {
	if !(delta > 0 && delta < 1) {
		panic("cluster: WithDelta(delta not in (0,1))")
	}
	return func(c *config) { c.delta = delta }
}

// WithLogger reports the partition summary to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("cluster: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// observation adapts a series to clusters.Observation with a DTW distance.
type observation struct {
	idx  int
	s    []float64
	opts *dtw.Options
}

func (o observation) Coordinates() clusters.Coordinates { return o.s }

// Distance returns +Inf when the center is unreachable under the band.
func (o observation) Distance(center clusters.Coordinates) float64 {
	d, err := dtw.Cost(o.s, []float64(center), dtw.AbsDiff[float64], o.opts)
	if err != nil {
		return math.Inf(1)
	}

	return d
}

// Partition splits series into k groups.
//
// Stage 1 (Validate): non-empty equal-length series, 1 ≤ k ≤ N, valid options.
// Stage 2 (Cluster):  Lloyd iterations with DTW assignment.
// Stage 3 (Report):   groups ordered by their lowest member index.
//
// Complexity: O(iterations·N·k·n²) time.
func Partition(series [][]float64, k int, opts ...Option) ([]Group, error) {
	cfg := config{opts: dtw.DefaultOptions(), delta: defaultDelta, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(series) == 0 || len(series[0]) == 0 {
		return nil, ErrEmpty
	}
	n := len(series[0])
	for i, s := range series {
		if len(s) != n {
			return nil, fmt.Errorf("%w: series %d has %d samples, want %d", ErrLengthMismatch, i, len(s), n)
		}
	}
	if k < 1 || k > len(series) {
		return nil, fmt.Errorf("%w: k=%d, series=%d", ErrBadK, k, len(series))
	}
	if _, err := dtw.Cost(series[0], series[0], dtw.AbsDiff[float64], &cfg.opts); err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}

	data := make(clusters.Observations, len(series))
	for i, s := range series {
		data[i] = observation{idx: i, s: s, opts: &cfg.opts}
	}

	km, err := kmeans.NewWithOptions(cfg.delta, nil)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	cc, err := km.Partition(data, k)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}

	// an empty-group refill on the last iteration can list a series twice
	seen := make([]bool, len(series))
	groups := make([]Group, 0, len(cc))
	for _, c := range cc {
		g := Group{Center: make([]float64, n)}
		for _, o := range c.Observations {
			ob := o.(observation)
			if seen[ob.idx] {
				continue
			}
			seen[ob.idx] = true
			g.Members = append(g.Members, ob.idx)
			floats.Add(g.Center, ob.s)
		}
		if len(g.Members) == 0 {
			continue
		}
		floats.Scale(1/float64(len(g.Members)), g.Center)
		slices.Sort(g.Members)
		groups = append(groups, g)
	}
	slices.SortFunc(groups, func(a, b Group) int { return a.Members[0] - b.Members[0] })

	cfg.logger.Debug("Partition computed",
		slog.Int("series", len(series)),
		slog.Int("k", k),
		slog.Int("groups", len(groups)))

	return groups, nil
}
