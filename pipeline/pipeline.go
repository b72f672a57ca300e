// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/hetmat/dwpc"
	"github.com/katalvlaran/hetmat/hetmat"
	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/permute"
	"github.com/katalvlaran/hetmat/significance"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds concurrent permutation work.
const DefaultWorkers = 4

// ErrNoPermutations is returned when a null model is requested from a
// HetMat without permutations.
var ErrNoPermutations = errors.New("pipeline: hetmat has no permutations")

// Pipeline binds the workflow to one HetMat.
type Pipeline struct {
	hm      *hetmat.HetMat
	logger  *zap.Logger
	workers int
	arcsinh bool
	cache   *significance.Cache
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithWorkers bounds concurrency; n < 1 keeps DefaultWorkers.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithArcsinhScale transforms permuted and observed DWPCs with
// asinh(v / mean observed DWPC) before they are compared.
func WithArcsinhScale(on bool) Option { return func(p *Pipeline) { p.arcsinh = on } }

// WithCache shares a summary cache between pipelines.
func WithCache(c *significance.Cache) Option { return func(p *Pipeline) { p.cache = c } }

// New returns a Pipeline over hm.
func New(hm *hetmat.HetMat, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{hm: hm, logger: zap.NewNop(), workers: DefaultWorkers}
	for _, fn := range opts {
		fn(p)
	}
	if p.cache == nil {
		c, err := significance.NewCache(0)
		if err != nil {
			return nil, err
		}
		p.cache = c
	}

	return p, nil
}

// Cache returns the summary cache.
func (p *Pipeline) Cache() *significance.Cache { return p.cache }

// GeneratePermutations adds count XSwap permutations named 000, 001, ...
// Existing names are skipped. Permutation i is seeded with
// permute.DeriveSeed(seed, i), so the set does not depend on worker count.
// The summary cache is purged.
func (p *Pipeline) GeneratePermutations(ctx context.Context, count int, seed int64, multiplier float64) error {
	existing, err := p.hm.PermutationNames()
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, n := range existing {
		have[n] = true
	}
	g, err := p.hm.Graph()
	if err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)
	for i := 0; i < count; i++ {
		i := i
		name := fmt.Sprintf("%03d", i)
		if have[name] {
			continue
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			perm, stats, err := permute.Permute(g,
				permute.WithSeed(permute.DeriveSeed(seed, uint64(i))),
				permute.WithMultiplier(multiplier))
			if err != nil {
				return err
			}
			if _, err := p.hm.AddPermutation(name, perm); err != nil {
				return err
			}
			swaps := 0
			for _, s := range stats {
				swaps += s.Swaps
			}
			p.logger.Debug("permutation written", zap.String("name", name), zap.Int("swaps", swaps))

			return nil
		})
	}
	err = eg.Wait()
	p.cache.Purge()
	if err != nil {
		return fmt.Errorf("pipeline: permutations: %w", err)
	}
	p.logger.Info("permutations ready", zap.Int("count", count), zap.Int("existing", len(existing)))

	return nil
}

// ComputeDWPC returns the observed DWPC of mp, computing and storing it when
// no table exists yet.
func (p *Pipeline) ComputeDWPC(mp *hetnet.MetaPath, damping float64) (*dwpc.Result, error) {
	if p.hm.HasPathCounts(mp, damping) {
		return p.hm.ReadPathCounts(mp, damping)
	}
	start := time.Now()
	res, err := dwpc.DWPC(p.hm, mp, damping)
	if err != nil {
		return nil, err
	}
	if err := p.hm.WritePathCounts(mp, damping, res); err != nil {
		return nil, err
	}
	p.logger.Info("dwpc computed",
		zap.String("metapath", mp.Abbrev()),
		zap.String("category", string(res.Category)),
		zap.Int("nnz", res.Matrix.NNZ()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

func (p *Pipeline) transform(mp *hetnet.MetaPath, damping float64) (significance.Transform, error) {
	if !p.arcsinh {
		return nil, nil
	}
	observed, err := p.ComputeDWPC(mp, damping)
	if err != nil {
		return nil, err
	}

	return significance.ArcsinhScale(significance.Mean(observed.Matrix)), nil
}

// ComputeDegreeGroupedPermutations returns degree-group summaries of mp's
// DWPC over all permutations. Summaries already cached or stored for mp or
// its inverse are reused; otherwise they are computed and stored.
func (p *Pipeline) ComputeDegreeGroupedPermutations(ctx context.Context, mp *hetnet.MetaPath, damping float64) (map[significance.DegreePair]significance.Summary, error) {
	if s, ok := p.cache.Get(mp, damping); ok {
		return s, nil
	}
	if p.hm.HasDegreeGroups(mp, damping) {
		s, err := p.hm.ReadDegreeGroups(mp, damping)
		if err != nil {
			return nil, err
		}
		p.cache.Add(mp, damping, s)

		return s, nil
	}

	start := time.Now()
	deg, err := significance.ComputeDegrees(p.hm, mp)
	if err != nil {
		return nil, err
	}
	transform, err := p.transform(mp, damping)
	if err != nil {
		return nil, err
	}
	perms, err := p.hm.Permutations()
	if err != nil {
		return nil, err
	}
	if len(perms) == 0 {
		return nil, ErrNoPermutations
	}

	partials := make([]significance.Aggregate, len(perms))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)
	for i, perm := range perms {
		i, perm := i, perm
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := dwpc.DWPC(perm, mp, damping)
			if err != nil {
				return fmt.Errorf("permutation %s: %w", perm.Dir(), err)
			}
			agg, err := significance.GroupByDegree(res.Matrix, deg.Source, deg.Target, transform)
			if err != nil {
				return fmt.Errorf("permutation %s: %w", perm.Dir(), err)
			}
			partials[i] = agg

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", mp.Abbrev(), err)
	}

	total := significance.Aggregate{}
	for _, agg := range partials {
		total.Merge(agg)
	}
	summaries := total.Summarize()
	if err := p.hm.WriteDegreeGroups(mp, damping, summaries); err != nil {
		return nil, err
	}
	p.cache.Add(mp, damping, summaries)
	p.logger.Info("degree-grouped permutations computed",
		zap.String("metapath", mp.Abbrev()),
		zap.Int("permutations", len(perms)),
		zap.Int("groups", len(summaries)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return summaries, nil
}
