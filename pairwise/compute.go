package pairwise

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/matrix"
)

// Compute returns the N×N matrix of DTW distances between every pair of
// series under |x−y|. The matrix is symmetric with a zero diagonal; each
// unordered pair is computed once. Pairs whose end cell is unreachable
// under the band hold +Inf.
//
// Stage 1 (Validate): at least one series.
// Stage 2 (Fan out):  N(N−1)/2 pairs over WithConcurrency workers.
// Stage 3 (Collect):  first error or ctx cancellation aborts the batch.
//
// Complexity: O(N²·n·m) time, O(N² + workers·m) memory.
func Compute(ctx context.Context, series [][]float64, opts ...Option) (*matrix.Dense, error) {
	if len(series) == 0 {
		return nil, ErrEmpty
	}
	cfg := newConfig(opts...)
	n := len(series)
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	fps := make([]uint64, n)
	for i, s := range series {
		fps[i] = fingerprint(s)
	}
	type pair struct{ i, j int }
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	start := time.Now()
	var hits atomic.Int64
	err = cfg.run(ctx, len(pairs), func(ctx context.Context, k int) error {
		p := pairs[k]
		d, hit, err := cfg.distance(ctx, series[p.i], series[p.j], fps[p.i], fps[p.j])
		if err != nil {
			return fmt.Errorf("pairwise: pair (%d,%d): %w", p.i, p.j, err)
		}
		if hit {
			hits.Add(1)
		}
		// distinct cells per pair; no two workers write the same element
		out.Row(p.i)[p.j] = d
		out.Row(p.j)[p.i] = d

		return nil
	})
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("Pairwise matrix computed",
		slog.Int("series", n),
		slog.Int("pairs", len(pairs)),
		slog.Int64("cache_hits", hits.Load()),
		slog.Duration("took", time.Since(start)))

	return out, nil
}

// Nearest returns the index of the candidate closest to query and its
// distance. Ties go to the lowest index. Unreachable candidates are skipped;
// ErrNoCandidate is returned when none is reachable.
//
// Each distance is computed in the same series order as Compute and the
// cache use, which is fixed by content rather than by argument position.
// Under ScaledBand with n ≠ m the reported value may therefore be
// DTW(candidate, query) rather than DTW(query, candidate); Nearest(q, {c})
// and Nearest(c, {q}) always agree.
func Nearest(ctx context.Context, query []float64, candidates [][]float64, opts ...Option) (int, float64, error) {
	if len(candidates) == 0 {
		return -1, 0, ErrEmpty
	}
	cfg := newConfig(opts...)
	fq := fingerprint(query)

	dists := make([]float64, len(candidates))
	err := cfg.run(ctx, len(candidates), func(ctx context.Context, k int) error {
		d, _, err := cfg.distance(ctx, query, candidates[k], fq, fingerprint(candidates[k]))
		if err != nil {
			return fmt.Errorf("pairwise: candidate %d: %w", k, err)
		}
		dists[k] = d

		return nil
	})
	if err != nil {
		return -1, 0, err
	}

	best, idx := math.Inf(1), -1
	for k, d := range dists {
		if d < best {
			best, idx = d, k
		}
	}
	if idx < 0 {
		return -1, 0, ErrNoCandidate
	}
	cfg.logger.Debug("Nearest candidate found",
		slog.Int("candidates", len(candidates)),
		slog.Int("index", idx),
		slog.Float64("distance", best))

	return idx, best, nil
}

// run calls do for every job index in [0, jobs) on at most c.workers
// goroutines. The first error cancels the remaining jobs and is returned;
// otherwise a cancelled ctx yields ctx.Err().
func (c config) run(ctx context.Context, jobs int, do func(ctx context.Context, k int) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)
	work := make(chan int)
	for range min(c.workers, jobs) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range work {
				if err := do(ctx, k); err != nil {
					once.Do(func() {
						first = err
						cancel()
					})
					return
				}
			}
		}()
	}

feed:
	for k := 0; k < jobs; k++ {
		select {
		case work <- k:
		case <-ctx.Done():
			break feed
		}
	}
	close(work)
	wg.Wait()

	if first != nil {
		return first
	}

	return ctx.Err()
}

// distance computes (or fetches) the DTW distance of one pair. The pair is
// evaluated in fingerprint order so that both argument orders agree.
func (c config) distance(ctx context.Context, a, b []float64, ha, hb uint64) (float64, bool, error) {
	if hb < ha {
		a, b = b, a
	}

	var key string
	if c.cache != nil {
		key = pairKey(ha, hb, c.opts)
		v, ok, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			c.logger.Warn("Cache lookup failed", slog.String("key", key), slog.Any("error", err))
		case ok:
			return v, true, nil
		}
	}

	opts := c.opts
	d, err := dtw.Cost(a, b, dtw.AbsDiff[float64], &opts)
	if errors.Is(err, dtw.ErrUnreachable) {
		d, err = math.Inf(1), nil
	}
	if err != nil {
		return 0, false, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, d); err != nil {
			c.logger.Warn("Cache store failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return d, false, nil
}
