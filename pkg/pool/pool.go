package pool

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool represents a set of workers, used for parallelizing searches.
//
// Functions needing a *Pool will work with a nil receiver, doing the equivalent
// work on the current goroutine instead.
type Pool struct {
	// This holds the number of workers started for each operation
	workerCount int
}

// NewPool creates a new pool, with a certain number of workers.
//
// If count <= 0, this will use the number of available CPUs instead.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	return &Pool{workerCount: count}
}

// Workers returns the number of workers used by the pool, 1 for a nil pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workerCount
}

// searchAlone runs f until count successes are found.
func searchAlone[T any](f func() (T, bool), count int) []T {
	results := make([]T, 0, count)
	for len(results) < count {
		if res, ok := f(); ok {
			results = append(results, res)
		}
	}
	return results
}

// Search queries the function f, until count successes are found.
//
// f is supposed to try a single candidate, returning false if that candidate isn't
// successful. f is called concurrently by every worker, so any state it shares must
// be safe for concurrent use.
//
// The result will be a slice containing the first count successes.
func Search[T any](p *Pool, count int, f func() (T, bool)) []T {
	if count <= 0 {
		return nil
	}
	if p.Workers() == 1 {
		return searchAlone(f, count)
	}

	results := make([]T, count)
	// This counter indicates the number of results that still need to be produced.
	ctr := int64(count)
	var g errgroup.Group
	for w := 0; w < p.workerCount; w++ {
		g.Go(func() error {
			for atomic.LoadInt64(&ctr) > 0 {
				res, ok := f()
				if !ok {
					continue
				}
				i := atomic.AddInt64(&ctr, -1)
				if i < 0 {
					break
				}
				results[i] = res
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Parallelize calls f count times, passing in indices from 0..count-1.
//
// The result will be a slice containing [f(0), f(1), ..., f(count - 1)].
func Parallelize[T any](p *Pool, count int, f func(int) T) []T {
	if count <= 0 {
		return nil
	}
	results := make([]T, count)
	if p == nil {
		for i := range results {
			results[i] = f(i)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(p.workerCount)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			results[i] = f(i)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
