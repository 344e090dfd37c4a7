package enrichment

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// Options tunes enrichment pacing.
type Options struct {
	BatchSize int           // places looked up concurrently; default 5
	Delay     time.Duration // pause between batches; default 200ms
	Rate      rate.Limit    // lookups per second; 0 disables the limiter
}

// DefaultOptions returns the pacing used against Google Places.
func DefaultOptions() Options {
	return Options{BatchSize: 5, Delay: 200 * time.Millisecond, Rate: 10}
}

// Stats summarizes one Enrich call.
type Stats struct {
	Total    int
	Enriched int
	NotFound int
	Failed   int
}

// Enricher attaches external facts to merged candidates.
type Enricher struct {
	lookup  Lookup
	opts    Options
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewEnricher(lookup Lookup, opts Options, log *zap.Logger) *Enricher {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 5
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	if log == nil {
		log = zap.NewNop()
	}
	e := &Enricher{lookup: lookup, opts: opts, log: log.Named("enrichment")}
	if opts.Rate > 0 {
		e.limiter = rate.NewLimiter(opts.Rate, opts.BatchSize)
	}
	return e
}

// Enrich looks every candidate up and returns one entry per candidate, nil
// where nothing was found or the lookup failed. Failures never abort the
// run; only cancellation of ctx does, and then the entries gathered so far
// are returned with ctx's error.
func (e *Enricher) Enrich(ctx context.Context, city, state string, cands []domain.CandidateRecord) ([]*domain.Enrichment, Stats, error) {
	out := make([]*domain.Enrichment, len(cands))
	failed := make([]bool, len(cands))
	stats := Stats{Total: len(cands)}

	for start := 0; start < len(cands); start += e.opts.BatchSize {
		if start > 0 && e.opts.Delay > 0 {
			select {
			case <-ctx.Done():
				return out, tally(stats, out, failed), ctx.Err()
			case <-time.After(e.opts.Delay):
			}
		}
		end := min(start+e.opts.BatchSize, len(cands))

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				if e.limiter != nil {
					if err := e.limiter.Wait(ctx); err != nil {
						failed[i] = true
						return nil
					}
				}
				enr, err := e.lookup.Lookup(ctx, cands[i].Name, city, state)
				if err != nil {
					failed[i] = true
					e.log.Warn("lookup failed", zap.String("place", cands[i].Name), zap.Error(err))
					return nil
				}
				out[i] = enr
				return nil
			})
		}
		_ = g.Wait()

		if err := ctx.Err(); err != nil {
			return out, tally(stats, out, failed), err
		}
	}

	stats = tally(stats, out, failed)
	e.log.Info("enrichment complete",
		zap.Int("total", stats.Total),
		zap.Int("enriched", stats.Enriched),
		zap.Int("not_found", stats.NotFound),
		zap.Int("failed", stats.Failed),
	)
	return out, stats, nil
}

func tally(s Stats, out []*domain.Enrichment, failed []bool) Stats {
	s.Enriched, s.NotFound, s.Failed = 0, 0, 0
	for i := range out {
		switch {
		case failed[i]:
			s.Failed++
		case out[i] != nil:
			s.Enriched++
		default:
			s.NotFound++
		}
	}
	return s
}
