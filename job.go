package await

// A Job is a [Future] backed by a function running on another
// goroutine. Create one with [Go] or [Submit].
//
// A Job may be abandoned at any point: the function still runs to
// completion, and its result is discarded. Once complete, a Job keeps
// returning the same [Result].
type Job[T any] struct {
	c cell[T]
}

// Go runs fn on a new goroutine and returns a [Job] that completes with
// fn's result.
//
// fn is free to block. If fn panics, the Job completes with a
// [*PanicError]; if fn calls runtime.Goexit, with [ErrGoexit]. Either
// way the process is unaffected and whoever polls the Job is not
// stalled.
//
// Every call spawns one goroutine. Callers issuing many small tasks
// should amortize spawning with a [Pool] and [Submit].
func Go[T any](fn func() (T, error)) *Job[T] {
	j := new(Job[T])
	go work(&j.c, fn)
	return j
}

// A Runner executes functions handed to its Go method, typically on a
// pool of goroutines. [Pool] is the Runner this package provides.
//
// A Runner must eventually run every function it accepts; dropping one
// would stall whoever polls the [Job] built on it.
type Runner interface {
	Go(f func())
}

// Submit is like [Go], but runs fn on r instead of a new goroutine.
func Submit[T any](r Runner, fn func() (T, error)) *Job[T] {
	j := new(Job[T])
	r.Go(func() { work(&j.c, fn) })
	return j
}

// Poll implements [Future].
func (j *Job[T]) Poll(w Waker) (Result[T], bool) {
	return j.c.poll(w)
}

// Wait blocks until j completes and returns its [Result], unpacked.
// It is [Run] applied to j, with the same constraint: nothing else may
// poll j at the same time.
func (j *Job[T]) Wait() (T, error) {
	return Run[T](j)
}

// work runs fn and completes c with its outcome, whether fn returns
// normally, panics, or calls runtime.Goexit.
func work[T any](c *cell[T], fn func() (T, error)) {
	var res Result[T]
	normal := false
	defer func() {
		if !normal {
			if v := recover(); v != nil {
				res = Result[T]{Err: newPanicError(v)}
			} else {
				res = Result[T]{Err: ErrGoexit}
			}
		}
		c.complete(res)
	}()
	res.Value, res.Err = fn()
	normal = true
}
