package seq

import (
	"fmt"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/persistent/result"
	"golang.org/x/sync/errgroup"
)

// Executor runs tasks concurrently. Go submits a task, Wait blocks until all
// submitted tasks have finished and returns the first error any of them returned.
//
// *errgroup.Group is an Executor; so is a group created with errgroup.WithContext,
// which is the way to make a ParMap cancellable. Executors are single-use: create
// a fresh one for every call of ParMap.
type Executor interface {
	Go(func() error)
	Wait() error
}

var _ Executor = &errgroup.Group{}

// Workers returns an executor which runs at most n tasks at a time.
// n < 1 means no limit.
func Workers(n int) *errgroup.Group {
	g := &errgroup.Group{}
	if n > 0 {
		g.SetLimit(n)
	}
	return g
}

// ParMap applies f to every element of s, each as a task of its own, submitted to ex.
// ParMap blocks until all tasks have finished. Results are collected in the order of s.
// If any task fails, an error is returned and results are discarded.
//
// f is called concurrently and must be safe for concurrent use.
func ParMap[T, U, C any](s persistent.Sequence[T], f func(T) (U, error), ex Executor,
	out persistent.Collector[U, C]) (C, error) {
	results := make([]U, s.Len())
	n := submit(s, ex, func(i int, x T) error {
		u, err := f(x)
		if err != nil {
			tracer().Errorf("par-map task %d failed: %v", i, err)
			return fmt.Errorf("mapping element %d: %w", i, err)
		}
		results[i] = u
		return nil
	})
	if err := ex.Wait(); err != nil {
		var zero C
		return zero, err
	}
	for _, u := range results[:n] {
		out.Add(u)
	}
	return out.Result(), nil
}

// ParMapResults works like ParMap, but never fails as a whole: the outcome of every
// task, value or error, is collected as a result.Result, in the order of s.
func ParMapResults[T, U, C any](s persistent.Sequence[T], f func(T) (U, error), ex Executor,
	out persistent.Collector[result.Result[U], C]) C {
	results := make([]result.Result[U], s.Len())
	n := submit(s, ex, func(i int, x T) error {
		u, err := f(x)
		results[i] = result.Of(u, err)
		return nil
	})
	_ = ex.Wait() // tasks never fail
	for _, r := range results[:n] {
		out.Add(r)
	}
	return out.Result()
}

// submit starts a task for every element of s and returns the number of tasks.
func submit[T any](s persistent.Sequence[T], ex Executor, task func(int, T) error) int {
	i := 0
	for x := range s.All() {
		if i == s.Len() {
			break // s must not grow while being traversed
		}
		inx := i
		ex.Go(func() error {
			return task(inx, x)
		})
		i++
	}
	tracer().Debugf("par-map submitted %d tasks", i)
	return i
}
