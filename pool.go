package await

import (
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// A Pool is a [Runner] backed by a goroutine pool. It amortizes
// goroutine spawning across many [Submit] calls; workers that stay idle
// for a while are reclaimed.
//
// Create a Pool with [NewPool]. The zero Pool is not usable.
type Pool struct {
	p  *ants.Pool
	wg sync.WaitGroup
}

// A PoolOption configures a [Pool].
type PoolOption func(*poolOptions)

type poolOptions struct {
	expiry      time.Duration
	nonblocking bool
}

// WithExpiry sets how long a worker may stay idle before it is
// reclaimed. The default is one minute.
func WithExpiry(d time.Duration) PoolOption {
	return func(o *poolOptions) { o.expiry = d }
}

// WithNonblocking makes a saturated Pool overflow immediately to a
// dedicated goroutine instead of waiting for a worker to free up.
func WithNonblocking() PoolOption {
	return func(o *poolOptions) { o.nonblocking = true }
}

// NewPool returns a [Pool] with at most size workers. A size of zero or
// less gives an unbounded pool.
func NewPool(size int, opts ...PoolOption) (*Pool, error) {
	o := poolOptions{expiry: time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	p, err := ants.NewPool(size,
		ants.WithExpiryDuration(o.expiry),
		ants.WithNonblocking(o.nonblocking))
	if err != nil {
		return nil, err
	}
	return &Pool{p: p}, nil
}

// Go runs f on a pool worker, implementing [Runner].
//
// Go never drops work: if the pool cannot take f because it is
// saturated (see [WithNonblocking]) or already stopped, f runs on a
// dedicated goroutine instead. By default Go blocks while the pool is
// full.
//
// f should not panic. [Submit] wraps its function so that a panic
// becomes the [Job]'s completion error rather than escaping into the
// pool.
func (p *Pool) Go(f func()) {
	p.wg.Add(1)
	task := func() {
		defer p.wg.Done()
		f()
	}
	if p.p.Submit(task) != nil {
		go task()
	}
}

// Stop stops the pool. Functions already accepted keep running;
// functions submitted afterwards run on dedicated goroutines.
func (p *Pool) Stop() {
	p.p.Release()
}

// StopAndWait stops the pool and blocks until every function it
// accepted has finished, including any that overflowed to dedicated
// goroutines.
func (p *Pool) StopAndWait() {
	p.p.Release()
	p.wg.Wait()
}
