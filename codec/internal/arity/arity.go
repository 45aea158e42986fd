// Package arity folds ordered field lists into right-leaning composite
// chains for hosts whose composite facility caps the number of components
// per layer.
package arity

// Nest builds a composite over fields, calling compose once per layer.
//
// When len(fields) is at most limit, compose is called once with all
// fields. Otherwise the trailing group of at most limit fields forms the
// innermost layer, and each preceding group of exactly limit fields is
// composed with the previous layer appended as its final component. Every
// compose call therefore receives at most limit+1 components, and a
// left-to-right flatten of the result restores the original field order.
//
// limit must be at least 1; callers validate it.
func Nest[T any](fields []T, limit int, compose func([]T) (T, error)) (T, error) {
	if len(fields) <= limit {
		return compose(fields)
	}

	rem := len(fields) % limit
	if rem == 0 {
		rem = limit
	}
	start := len(fields) - rem

	inner, err := compose(fields[start:])
	if err != nil {
		var zero T
		return zero, err
	}

	for start > 0 {
		start -= limit
		layer := make([]T, 0, limit+1)
		layer = append(layer, fields[start:start+limit]...)
		layer = append(layer, inner)
		inner, err = compose(layer)
		if err != nil {
			var zero T
			return zero, err
		}
	}
	return inner, nil
}
