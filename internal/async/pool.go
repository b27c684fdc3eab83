package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nimali/invoice-wizard/internal/entity"
)

// Job is the smallest useful unit. Extend as needed later (retry, trace, priority).
type Job struct {
	DocumentID  uuid.UUID
	SubmittedAt time.Time
}

// Result pairs a job with its outcome. Err is set only when the processing
// function itself failed; an empty Records slice is a normal outcome.
type Result struct {
	DocumentID uuid.UUID
	Records    []entity.Record
	Err        error
}

// ProcessFunc handles one document end to end.
type ProcessFunc func(ctx context.Context, documentID uuid.UUID) ([]entity.Record, error)

// Pool fans jobs out to a fixed number of workers. It is built per batch and
// not reused; Run blocks until every job has a result or ctx is cancelled.
type Pool struct {
	workers int
	process ProcessFunc
	logger  *slog.Logger
}

func NewPool(workers int, process ProcessFunc, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{workers: workers, process: process, logger: logger}
}

// Run processes jobs concurrently and returns one Result per job, in
// completion order. Cancelled jobs report ctx.Err().
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	in := make(chan Job)
	out := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range in {
				if err := ctx.Err(); err != nil {
					out <- Result{DocumentID: job.DocumentID, Err: err}
					continue
				}
				recs, err := p.process(ctx, job.DocumentID)
				out <- Result{DocumentID: job.DocumentID, Records: recs, Err: err}
			}
		}()
	}

	for _, job := range jobs {
		in <- job
	}
	close(in)
	wg.Wait()
	close(out)

	results := make([]Result, 0, len(jobs))
	for r := range out {
		results = append(results, r)
	}
	return results
}
