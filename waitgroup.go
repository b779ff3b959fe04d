package await

import "sync"

// A WaitGroup waits for a collection of goroutines to finish. One side
// calls Add to count things to wait for and Done as each finishes; the
// driver runs the [Future] returned by Wait, which completes when the
// counter becomes zero.
//
// Unlike [sync.WaitGroup], waiting does not monopolize the driving
// goroutine: Wait is an ordinary Future and composes under [Select] and
// [Join].
//
// A WaitGroup must not be waited on by more than one driver at a time.
type WaitGroup struct {
	mu sync.Mutex
	n  int
	w  Waker
}

// Add adds delta, which may be negative, to the [WaitGroup] counter.
// If the counter becomes zero, Add wakes the waiter, if there is one.
// If the counter becomes negative, Add panics.
//
// Add is safe for concurrent use.
func (wg *WaitGroup) Add(delta int) {
	wg.mu.Lock()
	wg.n += delta
	if wg.n < 0 {
		wg.mu.Unlock()
		panic("await(WaitGroup): negative counter")
	}
	var w Waker
	if wg.n == 0 {
		w, wg.w = wg.w, nil
	}
	wg.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

// Done decrements the [WaitGroup] counter by one.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Wait returns a [Future] that completes once the [WaitGroup] counter
// is zero.
func (wg *WaitGroup) Wait() FutureFunc[struct{}] {
	return func(w Waker) (Result[struct{}], bool) {
		wg.mu.Lock()
		if wg.n == 0 {
			wg.mu.Unlock()
			return Result[struct{}]{}, true
		}
		wg.w = w
		wg.mu.Unlock()
		return Result[struct{}]{}, false
	}
}
