package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/rgonek/docrebuild/converter"
	"golang.org/x/sync/errgroup"
)

// Job is one document in a batch. A blank ID is replaced with a random
// UUID in the results.
type Job struct {
	ID      string           `json:"id"`
	Input   Input            `json:"input"`
	Format  converter.Format `json:"format,omitempty"`
	Summary string           `json:"summary"`
}

// BatchResult pairs a job with its outcome.
type BatchResult struct {
	ID     string `json:"id"`
	Output Output `json:"output"`
	Err    error  `json:"-"`
}

// ConvertBatch processes jobs concurrently with at most limit in flight
// (limit <= 0 uses the configured BatchLimit). Results are in job order
// and each carries its own error. When ctx is cancelled no further jobs
// start; unstarted jobs get ctx's error and ConvertBatch returns it after
// the running jobs finish. Rewriter calls are throttled by RewriteRate.
func (e *Engine) ConvertBatch(ctx context.Context, jobs []Job, rw Rewriter, limit int) ([]BatchResult, error) {
	if limit <= 0 {
		limit = e.cfg.BatchLimit
	}

	rw = RateLimit(rw, e.cfg.RewriteRate, e.cfg.RewriteBurst)

	jobs = append([]Job(nil), jobs...)
	for i := range jobs {
		if jobs[i].ID == "" {
			jobs[i].ID = uuid.New().String()
		}
	}

	results := make([]BatchResult, len(jobs))
	var g errgroup.Group
	g.SetLimit(limit)
	var scheduleErr error

	for i, job := range jobs {
		results[i].ID = job.ID

		if scheduleErr = ctx.Err(); scheduleErr != nil {
			for j := i; j < len(jobs); j++ {
				results[j] = BatchResult{ID: jobs[j].ID, Err: scheduleErr}
			}
			break
		}

		// Go blocks until a slot frees up; ctx may end meanwhile.
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return err
			}

			// Job failures stay in their result and never stop the group.
			out, err := e.Process(ctx, job.Input, rw, job.Format, job.Summary)
			results[i].Output = out
			results[i].Err = err
			return nil
		})
	}
	if err := g.Wait(); err != nil && scheduleErr == nil {
		scheduleErr = err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	e.logger.Debug("batch finished", "jobs", len(jobs), "failed", failed, "limit", limit)

	return results, scheduleErr
}
