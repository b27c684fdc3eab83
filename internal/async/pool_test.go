package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimali/invoice-wizard/internal/entity"
)

func TestPool_Run(t *testing.T) {
	ctx := context.Background()

	makeJobs := func(n int) []Job {
		jobs := make([]Job, n)
		for i := range jobs {
			jobs[i] = Job{DocumentID: uuid.New(), SubmittedAt: time.Now().UTC()}
		}
		return jobs
	}

	t.Run("one result per job", func(t *testing.T) {
		jobs := makeJobs(10)
		pool := NewPool(3, func(ctx context.Context, id uuid.UUID) ([]entity.Record, error) {
			return []entity.Record{{Filename: "f", Supplier: "Unknown", Description: id.String()}}, nil
		}, nil)

		results := pool.Run(ctx, jobs)
		require.Len(t, results, len(jobs))

		seen := make(map[uuid.UUID]bool)
		for _, r := range results {
			require.NoError(t, r.Err)
			require.Len(t, r.Records, 1)
			seen[r.DocumentID] = true
		}
		assert.Len(t, seen, len(jobs))
	})

	t.Run("failures are reported per job, not fatal", func(t *testing.T) {
		jobs := makeJobs(4)
		boom := errors.New("boom")
		pool := NewPool(2, func(ctx context.Context, id uuid.UUID) ([]entity.Record, error) {
			if id == jobs[0].DocumentID {
				return nil, boom
			}
			return nil, nil
		}, nil)

		results := pool.Run(ctx, jobs)
		require.Len(t, results, 4)

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				assert.ErrorIs(t, r.Err, boom)
			}
		}
		assert.Equal(t, 1, failed)
	})

	t.Run("worker count is capped by concurrency limit", func(t *testing.T) {
		var active, peak int32
		pool := NewPool(2, func(ctx context.Context, id uuid.UUID) ([]entity.Record, error) {
			n := atomic.AddInt32(&active, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&active, -1)
			return nil, nil
		}, nil)

		pool.Run(ctx, makeJobs(8))
		assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	})

	t.Run("cancelled context fails remaining jobs", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		var calls int32
		pool := NewPool(1, func(ctx context.Context, id uuid.UUID) ([]entity.Record, error) {
			atomic.AddInt32(&calls, 1)
			return nil, nil
		}, nil)

		results := pool.Run(cancelled, makeJobs(3))
		require.Len(t, results, 3)
		for _, r := range results {
			require.ErrorIs(t, r.Err, context.Canceled)
		}
		assert.Zero(t, atomic.LoadInt32(&calls))
	})

	t.Run("zero workers falls back to one", func(t *testing.T) {
		pool := NewPool(0, func(ctx context.Context, id uuid.UUID) ([]entity.Record, error) {
			return nil, nil
		}, nil)
		results := pool.Run(ctx, makeJobs(2))
		assert.Len(t, results, 2)
	})
}
