package await

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrGoexit is the error a [Job] completes with when its function
// terminates by calling runtime.Goexit instead of returning.
var ErrGoexit = errors.New("await: blocking function called runtime.Goexit")

// A PanicError is the error a [Job] completes with when its function
// panics. It carries the recovered value and the stack of the panicking
// goroutine.
type PanicError struct {
	Value any    // the value passed to panic
	Stack []byte // the worker's stack, captured by runtime/debug.Stack
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns the panic value if it is an error, so that [errors.Is]
// and [errors.As] see through a panic raised with an error value.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func newPanicError(v any) error {
	return &PanicError{Value: v, Stack: debug.Stack()}
}
