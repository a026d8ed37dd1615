package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/namepulse/internal/adapters/repository"
	"github.com/okian/namepulse/internal/domain/cohort"
	"github.com/okian/namepulse/internal/domain/lifecycle"
	"github.com/okian/namepulse/internal/domain/lingual"
	"github.com/okian/namepulse/internal/domain/movement"
	"github.com/okian/namepulse/internal/domain/turnover"
	"github.com/okian/namepulse/pkg/logger"
	"github.com/okian/namepulse/pkg/metrics"
)

// Generator runs every analyzer over one snapshot and bundles the results.
type Generator struct {
	store repository.Store

	topListSize    int
	evergreenMin   int
	suffixPatterns []string
	specialChars   []string

	log logger.Logger
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithTopListSize caps the climber and faller lists.
func WithTopListSize(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.topListSize = n
		}
	}
}

// WithEvergreenMinDecades sets the longevity threshold for evergreen names.
func WithEvergreenMinDecades(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.evergreenMin = n
		}
	}
}

// WithSuffixPatterns sets the ordered suffix match list.
func WithSuffixPatterns(patterns []string) Option {
	return func(g *Generator) {
		if len(patterns) > 0 {
			g.suffixPatterns = patterns
		}
	}
}

// WithSpecialChars sets the tracked diacritic characters.
func WithSpecialChars(chars []string) Option {
	return func(g *Generator) {
		if len(chars) > 0 {
			g.specialChars = chars
		}
	}
}

// WithLogger sets a custom logger for the generator.
func WithLogger(log logger.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGenerator creates a Generator reading from store.
func NewGenerator(store repository.Store, opts ...Option) *Generator {
	g := &Generator{
		store:          store,
		topListSize:    movement.DefaultListSize,
		evergreenMin:   lifecycle.DefaultEvergreenMinDecades,
		suffixPatterns: lingual.DefaultSuffixPatterns,
		specialChars:   lingual.DefaultSpecialChars,
		log:            logger.Get(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate computes a full report from the store's current snapshot.
// Analyzers are pure and read-only over the same record slice, so they run
// concurrently; the fan-out changes throughput, never output. The returned
// report is complete — there is no partial or streamed form.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	start := time.Now()

	records, err := g.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	tl, err := g.store.Timeline(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading timeline: %w", err)
	}

	rep := &Report{
		ID:            uuid.NewString(),
		GeneratedAt:   start.UTC(),
		Decades:       tl.Decades(),
		TotalRecords:  len(records),
		DistinctNames: distinctNames(records),
	}

	eg, egCtx := errgroup.WithContext(ctx)

	run := func(name string, fn func()) {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			t := time.Now()
			fn()
			metrics.RecordAnalyzerDuration(name, float64(time.Since(t).Milliseconds()))
			return nil
		})
	}

	run("cohort", func() { rep.Cohorts = cohort.Analyze(records, tl) })
	run("lifecycle", func() {
		rep.Lifecycles = lifecycle.Build(records, tl)
		rep.Evergreen = lifecycle.EvergreenNames(rep.Lifecycles, g.evergreenMin)
	})
	run("movement", func() {
		m := movement.Analyze(records, tl, g.topListSize)
		rep.Climbers, rep.Fallers = m.Climbers, m.Fallers
	})
	run("entries", func() { rep.NewEntries = turnover.NewEntries(records, tl) })
	run("comebacks", func() { rep.Comebacks = turnover.Comebacks(records, tl) })
	run("churn", func() { rep.Churn = turnover.ChurnRates(records, tl) })
	run("letters", func() { rep.Letters = lingual.Letters(records, tl) })
	run("suffixes", func() { rep.Suffixes = lingual.Suffixes(records, tl, g.suffixPatterns) })
	run("lengths", func() { rep.Lengths = lingual.Lengths(records, tl) })
	run("special", func() { rep.SpecialChars = lingual.SpecialChars(records, tl, g.specialChars) })
	run("unisex", func() { rep.Unisex = lingual.Unisex(records, tl) })

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("running analyzers: %w", err)
	}

	elapsed := time.Since(start)
	metrics.RecordReportGenerated(float64(elapsed.Milliseconds()))
	metrics.SetSnapshotScale(rep.TotalRecords, rep.DistinctNames)
	g.log.Info(ctx, "report generated",
		logger.String("report_id", rep.ID),
		logger.Int("records", rep.TotalRecords),
		logger.Int("distinct_names", rep.DistinctNames),
		logger.Int("cohorts", len(rep.Cohorts)),
		logger.Any("elapsed", elapsed),
	)
	return rep, nil
}
