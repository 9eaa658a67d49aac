package heli

import "golang.org/x/sync/errgroup"

// ParallelDispatcher runs Identify over a batch of texts using a
// fixed-size worker pool, one thread-local ScoringEngine per worker,
// created when the worker starts, before it takes its first task. The
// bundle is shared
// read-only across all workers; results preserve input order regardless
// of completion order.
type ParallelDispatcher struct {
	bundle  *ModelBundle
	workers int
}

// NewParallelDispatcher creates a dispatcher with workers concurrent
// workers, each holding its own ScoringEngine over bundle. workers <= 0
// is treated as 1.
func NewParallelDispatcher(bundle *ModelBundle, workers int) *ParallelDispatcher {
	if workers <= 0 {
		workers = 1
	}
	return &ParallelDispatcher{bundle: bundle, workers: workers}
}

// Result is one dispatched text's prediction. It carries no index: its
// position in the slice Identify returns is the text's position in the
// input batch.
type Result struct {
	Lang  Lang
	Score float32
}

// Identify runs Identify(text, ignoreConfidence) over every element of
// texts, fanning out across the dispatcher's worker pool. The returned
// slice is in the same order as texts.
func (d *ParallelDispatcher) Identify(texts []string, ignoreConfidence bool) ([]Result, error) {
	results := make([]Result, len(texts))
	jobs := make(chan int)

	var g errgroup.Group
	for i := 0; i < d.workers; i++ {
		g.Go(func() error {
			engine := NewScoringEngine(d.bundle)
			for idx := range jobs {
				lang, score := engine.Identify(texts[idx], ignoreConfidence)
				results[idx] = Result{Lang: lang, Score: score}
			}
			return nil
		})
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// IdentifyTopK runs IdentifyTopK(text, k) over every element of texts,
// fanning out the same way as Identify.
func (d *ParallelDispatcher) IdentifyTopK(texts []string, k int) ([][]LangScore, error) {
	results := make([][]LangScore, len(texts))
	jobs := make(chan int)

	var g errgroup.Group
	for i := 0; i < d.workers; i++ {
		g.Go(func() error {
			engine := NewScoringEngine(d.bundle)
			for idx := range jobs {
				results[idx] = engine.IdentifyTopK(texts[idx], k)
			}
			return nil
		})
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
