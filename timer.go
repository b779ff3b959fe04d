package await

import "time"

// A Timer is a [Future] that completes at some point in the future,
// carrying the time it fired. Create one with [After].
type Timer struct {
	c cell[time.Time]
	t *time.Timer
}

// After returns a [Timer] that completes d from now.
//
// A Timer under [Select] puts a deadline on any computation. There is
// no other timeout or cancellation mechanism in this package.
func After(d time.Duration) *Timer {
	tm := new(Timer)
	tm.t = time.AfterFunc(d, func() {
		tm.c.complete(Result[time.Time]{Value: time.Now()})
	})
	return tm
}

// Poll implements [Future].
func (tm *Timer) Poll(w Waker) (Result[time.Time], bool) {
	return tm.c.poll(w)
}

// Stop releases the underlying timer and reports whether it acted
// before tm fired. A stopped Timer never completes; running one alone
// parks the driving goroutine forever.
func (tm *Timer) Stop() bool {
	return tm.t.Stop()
}
