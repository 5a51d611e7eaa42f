/*
Package validate turns untyped input, such as decoded JSON, into persistent sequences.

Input is accepted if it is an ordered sequence: a Go slice or array, an
iter.Seq of any element type, or a value with a method All() returning such an
iterator. The latter includes every persistent.Sequence, e.g. a vector.Vector[int]
or a list.List[string]. Strings and maps are rejected, as are all other values. Every element is checked by an ElementValidator, which converts it
to the element type of the target collection:

    ev := validate.Func[int](func(x any) (int, error) {
        if f, ok := x.(float64); ok && f == math.Trunc(f) {
            return int(f), nil
        }
        return 0, errors.New("not an integer")
    })
    v, err := vector.Validate(decoded, ev)

All failing elements are reported, not just the first one. Each is a
*persistent.ValidationError carrying the position of the element; use
multierr.Errors to get at all of them, or errors.As to get at the first one.
*/
package validate

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/npillmayer/persistent"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
)

// tracer traces with key 'persistent.validate'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.validate")
}

// ElementValidator checks a single element of an input sequence and converts it to T.
type ElementValidator[T any] interface {
	Validate(x any) (T, error)
}

// Func adapts a function to ElementValidator.
type Func[T any] func(any) (T, error)

func (f Func[T]) Validate(x any) (T, error) {
	return f(x)
}

// Into validates input with ev and collects the converted elements, in order, into out.
func Into[T, C any](input any, ev ElementValidator[T], out persistent.Collector[T, C]) (C, error) {
	elems, err := elements(input)
	if err != nil {
		out.Result()
		var zero C
		return zero, err
	}
	var errs error
	i := 0
	for x := range elems {
		y, err := ev.Validate(x)
		if err != nil {
			errs = multierr.Append(errs, &persistent.ValidationError{Index: i, Cause: err})
		} else {
			out.Add(y)
		}
		i++
	}
	if errs != nil {
		out.Result()
		tracer().Debugf("validation of %d elements: %d failed", i, len(multierr.Errors(errs)))
		var zero C
		return zero, errs
	}
	return out.Result(), nil
}

// elements returns an iterator over the elements of input, if input is an ordered sequence.
func elements(input any) (iter.Seq[any], error) {
	switch s := input.(type) {
	case nil:
		return nil, notASequence("nil")
	case persistent.Sequence[any]:
		return s.All(), nil
	case iter.Seq[any]:
		return s, nil
	case func(func(any) bool):
		return iter.Seq[any](s), nil
	case []any:
		return persistent.Slice[any](s).All(), nil
	}
	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}, nil
	case reflect.Func:
		if isSeq(rv.Type()) && !rv.IsNil() {
			return reflectSeq(rv), nil
		}
	case reflect.String, reflect.Map:
		return nil, notASequence(rv.Kind().String())
	}
	if all := rv.MethodByName("All"); all.IsValid() {
		if t := all.Type(); t.NumIn() == 0 && t.NumOut() == 1 && isSeq(t.Out(0)) {
			return reflectSeq(all.Call(nil)[0]), nil
		}
	}
	return nil, notASequence(rv.Kind().String())
}

// isSeq is true for function types func(func(E) bool), i.e. iter.Seq[E].
func isSeq(t reflect.Type) bool {
	return t.Kind() == reflect.Func && t.NumIn() == 1 && t.NumOut() == 0 &&
		t.CanSeq() && t.In(0).NumIn() == 1
}

func reflectSeq(it reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for x := range it.Seq() {
			if !yield(x.Interface()) {
				return
			}
		}
	}
}

func notASequence(kind string) error {
	return &persistent.ValidationError{
		Index: -1,
		Cause: fmt.Errorf("%w: got %s", persistent.ErrNotASequence, kind),
	}
}
