// Package await is a small library for driving asynchronous computations
// to completion, one at a time.
//
// Go code normally has no need for such a thing. A goroutine that wants
// a value simply blocks until it has one, and the runtime parks it for
// free. This package is for the times one wants that machinery in the
// open: a computation assembled from many sources of readiness, tended
// by a single goroutine with an explicit wake-up path from whichever
// goroutine makes it ready. It is also a faithful, minimal model of how
// async runtimes work under the hood, useful on its own for study.
//
// # The Poll Contract
//
// A [Future] is a computation that may not have finished yet. Asking it
// to make progress is called polling. Poll either returns the final
// [Result] and true, or returns false after arranging for the supplied
// [Waker] to be invoked once progress becomes possible again.
//
// The contract has one hard rule: no pending without a wake. A Future
// that returns false and never causes a wake leaves its driver parked
// forever. Everything else is lenient. Wakes may be redundant, may come
// from any goroutine, and may arrive after completion; a wasted wake
// costs one no-op poll.
//
// # Driving
//
// [Run] polls a [Future] on the calling goroutine. If the first poll
// completes, Run returns on the spot. Otherwise the goroutine parks on a
// one-token channel and each wake deposits the token. However many wakes
// pile up while a poll is in flight, they collapse into a single token,
// so the driver never misses a wake and never spins.
//
// One Run drives one Future. There is no queue of runnable tasks and no
// scheduler; composition happens inside futures, with [Select], [Join]
// and [Then].
//
// # Bridging Blocking Work
//
// Blocking code cannot be polled. [Go] runs an ordinary blocking
// function on its own goroutine and hands back a [Job], a Future that
// completes when the function returns. The two sides meet in a small
// guarded cell: the worker stores the result and takes out whatever
// waker is stored; the poller stores a waker as long as no result has
// landed. Whichever side gets there first, the result is observed.
//
// A Job that no one polls is fine. Its function runs to completion and
// the result is quietly discarded.
//
// # Pooling
//
// Spawning one goroutine per [Go] is cheap but not free. Callers
// issuing many small tasks can create a [Pool] and use [Submit], which
// runs functions on pooled workers instead. A Pool never drops work;
// when it is saturated or stopped, submissions overflow to dedicated
// goroutines.
//
// # Failures
//
// Failures ride inside the [Result], as errors. A panic in a bridged
// function does not kill the process; it is caught and delivered as a
// [*PanicError] carrying the panic value and the worker's stack. A
// bridged function that calls runtime.Goexit completes its Job with
// [ErrGoexit]. There is no cancellation: a computation that is no
// longer wanted is simply abandoned. To give up on one after a while,
// race it under [Select] against a [Timer].
package await
