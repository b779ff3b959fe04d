package await

// Run drives f to completion on the calling goroutine and returns its
// [Result], unpacked.
//
// Run polls f once right away; if f is already complete, Run returns
// without parking. Otherwise the goroutine parks until the [Waker]
// passed to Poll is invoked, then polls again. The goroutine never
// spins: between two polls it is either parked or about to park with a
// wake already pending. A redundant wake costs one extra poll and
// nothing else.
//
// f must not be polled by anything else, before or while Run runs it.
// If f reports pending without arranging a wake, Run never returns.
func Run[T any](f Future[T]) (T, error) {
	p := newParker()
	w := WakerFunc(p.unpark)
	for {
		if res, ok := f.Poll(w); ok {
			return res.Value, res.Err
		}
		p.park()
	}
}
