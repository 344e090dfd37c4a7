package discovery

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/wildercal/internal/curation"
	"github.com/alexanderramin/wildercal/internal/domain"
)

// DefaultSourceTimeout bounds a single source's whole Discover call.
const DefaultSourceTimeout = 2 * time.Minute

// SourceReport records how one source fared.
type SourceReport struct {
	Tag      domain.SourceTag
	Count    int
	Err      error
	Duration time.Duration
}

// Result is the merged candidate list plus per-source reports in
// priority order.
type Result struct {
	Candidates []domain.CandidateRecord
	Reports    []SourceReport
}

// Failed counts sources that returned an error.
func (r Result) Failed() int {
	n := 0
	for _, rep := range r.Reports {
		if rep.Err != nil {
			n++
		}
	}
	return n
}

// Runner fans a request out to every source concurrently.
type Runner struct {
	sources []Source
	timeout time.Duration
	log     *zap.Logger
}

// NewRunner creates a runner. timeout <= 0 uses DefaultSourceTimeout.
func NewRunner(log *zap.Logger, timeout time.Duration, sources ...Source) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultSourceTimeout
	}
	return &Runner{sources: sources, timeout: timeout, log: log.Named("discovery")}
}

// Run waits for every source to settle. A failing source is logged and
// contributes whatever it returned before failing; it never fails the run.
// Results are merged so that earlier sources in Priority win duplicates.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	ordered := orderByPriority(r.sources)
	batches := make([][]domain.CandidateRecord, len(ordered))
	reports := make([]SourceReport, len(ordered))

	var g errgroup.Group
	for i, src := range ordered {
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			start := time.Now()
			recs, err := src.Discover(sctx, req)
			batches[i] = recs
			reports[i] = SourceReport{Tag: src.Tag(), Count: len(recs), Err: err, Duration: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()

	for _, rep := range reports {
		if rep.Err != nil {
			r.log.Warn("source failed",
				zap.String("source", string(rep.Tag)),
				zap.Int("count", rep.Count),
				zap.Duration("duration", rep.Duration),
				zap.Error(rep.Err),
			)
			continue
		}
		r.log.Info("source settled",
			zap.String("source", string(rep.Tag)),
			zap.Int("count", rep.Count),
			zap.Duration("duration", rep.Duration),
		)
	}

	res := Result{Candidates: curation.Merge(batches...), Reports: reports}
	return res, ctx.Err()
}

func orderByPriority(sources []Source) []Source {
	rank := make(map[domain.SourceTag]int, len(Priority))
	for i, t := range Priority {
		rank[t] = i
	}
	out := make([]Source, len(sources))
	copy(out, sources)
	pos := func(s Source) int {
		if r, ok := rank[s.Tag()]; ok {
			return r
		}
		return len(Priority)
	}
	// insertion sort keeps registration order among equal ranks
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && pos(out[j]) < pos(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
