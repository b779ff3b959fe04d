package await

import "errors"

// Join returns a [Future] that completes when every future in s has
// completed. Its value collects the values of s, positionally; its
// error joins their errors with [errors.Join], and is nil if none
// failed.
//
// When passed no arguments, Join returns a Future that completes right
// away with an empty slice.
func Join[T any](s ...Future[T]) FutureFunc[[]T] {
	var (
		done    bool
		joined  Result[[]T]
		results = make([]Result[T], len(s))
		waiting = make([]bool, len(s))
		left    = len(s)
	)
	for i := range waiting {
		waiting[i] = true
	}
	return func(w Waker) (Result[[]T], bool) {
		if done {
			return joined, true
		}
		for i, f := range s {
			if !waiting[i] {
				continue
			}
			if res, ok := f.Poll(w); ok {
				results[i] = res
				waiting[i] = false
				left--
			}
		}
		if left > 0 {
			return Result[[]T]{}, false
		}
		done = true
		values := make([]T, len(s))
		var errs []error
		for i, res := range results {
			values[i] = res.Value
			if res.Err != nil {
				errs = append(errs, res.Err)
			}
		}
		joined = Result[[]T]{Value: values, Err: errors.Join(errs...)}
		return joined, true
	}
}
