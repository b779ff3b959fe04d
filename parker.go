package await

// A parker blocks a goroutine until another goroutine unparks it.
//
// The token channel has capacity one. An unpark that arrives before the
// next park leaves a token behind and is not lost; any number of unparks
// in between coalesce into that single token.
type parker struct {
	token chan struct{}
}

func newParker() *parker {
	return &parker{token: make(chan struct{}, 1)}
}

// park blocks until a token is available and consumes it.
// It must only be called from the owning goroutine.
func (p *parker) park() {
	<-p.token
}

// unpark deposits a token unless one is already pending.
// It never blocks and is safe for concurrent use.
func (p *parker) unpark() {
	select {
	case p.token <- struct{}{}:
	default:
	}
}
