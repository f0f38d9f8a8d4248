package filter

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/twitterctl/twitter"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator splits large timelines into chunks evaluated on a
// bounded number of goroutines
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate returns the statuses matching filter, keeping their order
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, statuses []*twitter.StatusMessage) ([]*twitter.StatusMessage, error) {
	if len(statuses) == 0 {
		return []*twitter.StatusMessage{}, nil
	}

	// Small timelines are not worth the goroutines
	if len(statuses) < e.batchSize {
		return evaluateSequential(filter, statuses), nil
	}

	return e.evaluateConcurrent(ctx, filter, statuses)
}

// EvaluateBatch evaluates multiple filters against statuses concurrently
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, statuses []*twitter.StatusMessage) (map[string][]*twitter.StatusMessage, error) {
	results := make(map[string][]*twitter.StatusMessage, len(filters))
	if len(filters) == 0 {
		return results, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)

	for name, filter := range filters {
		g.Go(func() error {
			matches, err := e.Evaluate(gctx, filter, statuses)
			if err != nil {
				return err
			}

			mu.Lock()
			results[name] = matches
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluateSequential(filter CompiledFilter, statuses []*twitter.StatusMessage) []*twitter.StatusMessage {
	matches := make([]*twitter.StatusMessage, 0, len(statuses)/4)
	for _, status := range statuses {
		if filter.Evaluate(status) {
			matches = append(matches, status)
		}
	}
	return matches
}

func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, statuses []*twitter.StatusMessage) ([]*twitter.StatusMessage, error) {
	chunkSize := max(len(statuses)/e.workerCount, e.batchSize)
	chunks := make([][]*twitter.StatusMessage, (len(statuses)+chunkSize-1)/chunkSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)

	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(statuses))

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chunks[i] = evaluateSequential(filter, statuses[start:end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}

	matches := make([]*twitter.StatusMessage, 0, total)
	for _, c := range chunks {
		matches = append(matches, c...)
	}
	return matches, nil
}
