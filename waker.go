package await

// A Waker wakes the goroutine that is driving a computation, telling it
// that the computation may be able to make progress.
//
// Wakers are safe for concurrent use and may be retained and invoked from
// any goroutine. Waking is idempotent: any number of invocations before
// the driver polls again cost the driver a single extra poll. Invoking a
// Waker after its computation has completed does nothing.
//
// A Waker is an interface value; copies are cheap and every copy wakes
// the same driver.
type Waker interface {
	Wake()
}

// A WakerFunc is a func() that implements the [Waker] interface.
// The function must be safe for concurrent use.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }
