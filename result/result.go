/*
Package result provides a type for the outcome of a computation that may fail.

A Result is either Ok(value) or Err(error). Parallel mapping over sequences uses
results to keep the outcome of every single task, in input order, without failing
the whole operation:

    rs := vector.ParMapResults(v, strconv.Atoi, seq.Workers(4))
    for r := range rs.All() {
        if x, err := r.Get(); err == nil { … }
    }

The design follows Elm's Result type.
*/
package result

import "fmt"

type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsErr() bool
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of wraps a Go-style (value, error) return into a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsErr() bool {
	return r.err != nil
}

func (r result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// WithDefault returns the value of r if r is Ok, def otherwise.
func WithDefault[T any](r Result[T], def T) T {
	if x, err := r.Get(); err == nil {
		return x
	}
	return def
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
