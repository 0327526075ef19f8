package worker

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"keyforge/internal/domain"
)

// Pool bounds the number of jobs running at once.
type Pool struct {
	sem      *semaphore.Weighted
	size     int
	inFlight atomic.Int64
	log      zerolog.Logger
}

// New returns a pool running at most size jobs concurrently. size <= 0 selects
// runtime.NumCPU().
func New(size int, log zerolog.Logger) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
		log:  log.With().Str("component", "worker").Logger(),
	}
}

// Size reports the concurrency bound.
func (p *Pool) Size() int { return p.size }

// InFlight reports how many jobs currently hold a slot.
func (p *Pool) InFlight() int { return int(p.inFlight.Load()) }

// Job is a unit of work tagged with an identifier for logging.
type Job[T any] struct {
	ID   domain.JobID
	Name string
	Run  func() (T, error)
}

// NewJob returns a job with a fresh random identifier.
func NewJob[T any](name string, run func() (T, error)) Job[T] {
	return Job[T]{ID: domain.JobID(uuid.NewString()), Name: name, Run: run}
}

type result[T any] struct {
	val T
	err error
}

// Submit waits for a free slot and runs job on its own goroutine. It returns
// when the job finishes or ctx ends, whichever comes first.
func Submit[T any](ctx context.Context, p *Pool, job Job[T]) (T, error) {
	var zero T
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, err
	}

	done := make(chan result[T], 1)
	go func() {
		p.inFlight.Add(1)
		start := time.Now()
		var r result[T]
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					r.err = fmt.Errorf("%w: job %s panicked: %v", domain.ErrGenerationFailure, job.Name, rec)
				}
			}()
			r.val, r.err = job.Run()
		}()
		p.inFlight.Add(-1)
		p.sem.Release(1)

		ev := p.log.Debug()
		if r.err != nil {
			ev = p.log.Warn().Err(r.err)
		}
		ev.Str("job_id", job.ID.String()).
			Str("job", job.Name).
			Dur("duration", time.Since(start)).
			Msg("job finished")

		done <- r
	}()

	r, err := await(ctx, done)
	if err != nil {
		p.log.Debug().
			Str("job_id", job.ID.String()).
			Str("job", job.Name).
			Msg("caller gone; result will be dropped")
		return zero, err
	}
	return r.val, r.err
}

// await returns the job result, or ctx.Err() if ctx ends first. A result that
// is already available wins over a cancelled context.
func await[T any](ctx context.Context, done <-chan result[T]) (result[T], error) {
	select {
	case r := <-done:
		return r, nil
	case <-ctx.Done():
		select {
		case r := <-done:
			return r, nil
		default:
			return result[T]{}, ctx.Err()
		}
	}
}
