package await_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/b97tsk/await"
	"golang.org/x/sync/errgroup"
)

func TestGo(t *testing.T) {
	t.Run("DeliversResult", func(t *testing.T) {
		j := await.Go(func() (int, error) {
			return 7 + 35, nil
		})

		v, err := j.Wait()
		if err != nil {
			t.Fatal("Wait failed:", err)
		}
		if v != 42 {
			t.Fatal("The job did not deliver the worker's value.")
		}
	})

	t.Run("DeliversError", func(t *testing.T) {
		errBang := errors.New("bang")

		j := await.Go(func() (int, error) {
			return 0, errBang
		})

		if _, err := j.Wait(); !errors.Is(err, errBang) {
			t.Fatal("The job did not deliver the worker's error.")
		}
	})

	t.Run("DistinctResults", func(t *testing.T) {
		jobs := make([]*await.Job[int], 64)
		for i := range jobs {
			jobs[i] = await.Go(func() (int, error) {
				time.Sleep(time.Duration(i%7) * time.Millisecond)
				return i, nil
			})
		}

		for i, j := range jobs {
			v, err := j.Wait()
			if err != nil {
				t.Fatal("Wait failed:", err)
			}
			if v != i {
				t.Fatalf("Job %d delivered %d.", i, v)
			}
		}
	})

	t.Run("ParksUntilDone", func(t *testing.T) {
		f := &countingFuture[int]{f: await.Go(func() (int, error) {
			time.Sleep(50 * time.Millisecond)
			return 42, nil
		})}

		v, err := await.Run[int](f)
		if err != nil || v != 42 {
			t.Fatal("Run did not return the worker's value.")
		}
		if f.polls < 2 {
			t.Fatal("The driver did not poll again after the worker finished.")
		}
	})

	t.Run("StickyResult", func(t *testing.T) {
		j := await.Go(func() (int, error) {
			return 1, nil
		})

		if v, _ := j.Wait(); v != 1 {
			t.Fatal("The job did not deliver the worker's value.")
		}

		res, ok := j.Poll(await.WakerFunc(func() {}))
		if !ok || res.Value != 1 {
			t.Fatal("A completed job did not keep returning its result.")
		}
	})

	t.Run("Abandoned", func(t *testing.T) {
		done := make(chan struct{})

		_ = await.Go(func() (int, error) {
			defer close(done)
			time.Sleep(50 * time.Millisecond)
			return 1, nil
		})

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("The worker of an abandoned job did not finish.")
		}
	})

	t.Run("Panic", func(t *testing.T) {
		j := await.Go(func() (int, error) {
			panic("boom")
		})

		_, err := j.Wait()

		var pe *await.PanicError
		if !errors.As(err, &pe) {
			t.Fatal("A worker panic was not delivered as a PanicError.")
		}
		if pe.Value != "boom" {
			t.Fatal("The PanicError did not carry the panic value.")
		}
		if len(pe.Stack) == 0 {
			t.Error("The PanicError did not carry a stack.")
		}
	})

	t.Run("PanicWithError", func(t *testing.T) {
		errBang := errors.New("bang")

		j := await.Go(func() (int, error) {
			panic(errBang)
		})

		if _, err := j.Wait(); !errors.Is(err, errBang) {
			t.Fatal("errors.Is did not see through the PanicError.")
		}
	})

	t.Run("Goexit", func(t *testing.T) {
		j := await.Go(func() (int, error) {
			runtime.Goexit()
			return 1, nil
		})

		if _, err := j.Wait(); !errors.Is(err, await.ErrGoexit) {
			t.Fatal("A worker Goexit was not delivered as ErrGoexit.")
		}
	})
}

func TestManyJobs(t *testing.T) {
	// Many drivers, each racing its own worker for the completion cell.
	// Any missed wake would show up here as a stuck Wait.
	var g errgroup.Group
	g.SetLimit(4 * runtime.GOMAXPROCS(0))

	for i := range 500 {
		g.Go(func() error {
			j := await.Go(func() (int, error) {
				if i%2 == 0 {
					runtime.Gosched()
				}
				return i * 3, nil
			})
			if i%3 == 0 {
				runtime.Gosched()
			}
			v, err := j.Wait()
			if err != nil {
				return err
			}
			if v != i*3 {
				return fmt.Errorf("job %d delivered %d", i, v)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
