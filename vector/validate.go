package vector

import "github.com/npillmayer/persistent/validate"

// Validate checks untyped input element by element with ev and returns a vector of
// the converted elements, see package validate.
func Validate[T any](input any, ev validate.ElementValidator[T], opts ...Option) (Vector[T], error) {
	return validate.Into(input, ev, NewBuilder[T](opts...))
}
