package schedule

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// preanalyze runs pitch-mark and loudness analysis for every distinct
// sample in samples concurrently, populating the scheduler's caches before
// the synchronous render pass begins. Each task is pure and read-only;
// ordering between tasks does not matter. A sample too short for pitch
// analysis is not an error here — AnalyzeCached's ErrAnalysisEmpty is
// swallowed; failed analyses are not cached, so the render pass runs the
// analysis again and meets the same length check.
func (s *Scheduler) preanalyze(ctx context.Context, samples []voicebank.Sample) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers())

	for _, sample := range samples {
		sample := sample

		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			if _, err := s.pitchCache.AnalyzeCached(sample); err != nil && !errors.Is(err, voicebank.ErrAnalysisEmpty) {
				return err
			}

			s.loudnessCache.AnalyzeCached(sample)

			return nil
		})
	}

	return g.Wait()
}

func (s *Scheduler) maxWorkers() int {
	if s.cfg.MaxWorkers > 0 {
		return s.cfg.MaxWorkers
	}

	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}

	return n
}
