package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome for one document of a batch.
type BatchResult struct {
	Filename string    `json:"filename"`
	Analysis *Analysis `json:"analysis,omitempty"`
	Error    string    `json:"error,omitempty"`
	Err      error     `json:"-"`
}

// Batch analyzes documents independently with at most the configured number
// of workers. Results keep input order; a failing document does not stop the
// others.
func (s *Service) Batch(ctx context.Context, docs []Document, opts AnalyzeOptions) []BatchResult {
	results := make([]BatchResult, len(docs))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, doc := range docs {
		g.Go(func() error {
			results[i] = BatchResult{Filename: doc.Filename}
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				results[i].Error = err.Error()
				return nil
			}
			a, err := s.Analyze(ctx, doc, opts)
			if err != nil {
				results[i].Err = err
				results[i].Error = err.Error()
				return nil
			}
			results[i].Analysis = a
			return nil
		})
	}
	_ = g.Wait()

	return results
}
