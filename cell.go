package await

import "sync"

// A cell is the state shared between a computation's completer, which
// runs on an arbitrary goroutine, and its poller.
//
// The mutex makes store-result-and-take-waker atomic with respect to
// store-waker. That rules out the missed-wake race: either the poller's
// waker is in the cell when the result lands, and it is woken, or the
// result is in the cell when the poller next polls, and it is observed.
type cell[T any] struct {
	mu   sync.Mutex
	done bool
	res  Result[T]
	w    Waker
}

// poll returns the result if c has completed. Otherwise it stores w as
// the waker to wake on completion, replacing any previously stored one.
// A completed cell keeps returning the same result.
func (c *cell[T]) poll(w Waker) (Result[T], bool) {
	c.mu.Lock()
	if c.done {
		res := c.res
		c.mu.Unlock()
		return res, true
	}
	c.w = w
	c.mu.Unlock()
	return Result[T]{}, false
}

// complete stores res in c and wakes the stored waker, if there is one.
// The waker is invoked after the lock is released, so it may safely poll
// c again. Only the first complete takes effect.
func (c *cell[T]) complete(res Result[T]) {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	c.done = true
	c.res = res
	w := c.w
	c.w = nil
	c.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}
