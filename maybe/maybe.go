/*
Package maybe provides an explicit marker for optional values.

Operations on sequences which may have no answer, such as the maximum of an empty
sequence, return a Maybe instead of an error: Just(x) if there is an answer, Nothing
otherwise. The design follows Elm's Maybe type:

    module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

Clients may either extract the value directly,

    if x, ok := m.Value(); ok { … }

or pattern-match:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        …
    case m.Nothing():
        …
    }
*/
package maybe

import "fmt"

type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Value() (T, bool)
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Just(x) if ok, Nothing otherwise. It lifts the Go idiom of
// returning (value, found) into a Maybe.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if any. Different from method Map, the
// result may be of a different type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
