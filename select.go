package await

// Select returns a [Future] that completes with the [Result] of
// whichever future in s completes first, success and failure alike.
// If several are complete at the same poll, the earliest in s wins.
//
// The losers are abandoned, not cancelled: bridged work keeps running
// and its results are discarded.
//
// When passed no arguments, Select returns a Future that never
// completes.
func Select[T any](s ...Future[T]) FutureFunc[T] {
	var (
		done   bool
		winner Result[T]
	)
	return func(w Waker) (Result[T], bool) {
		if done {
			return winner, true
		}
		for _, f := range s {
			if res, ok := f.Poll(w); ok {
				done, winner = true, res
				return res, true
			}
		}
		return Result[T]{}, false
	}
}
