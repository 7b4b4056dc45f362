package fetch

type result[T any] struct {
	value T
	err   error
}

// Pending is the handle of a job started with Start.
type Pending[T any] struct {
	done chan result[T]
}

// Start runs fn on a new goroutine.
func Start[T any](fn func() (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan result[T], 1)}
	go func() {
		v, err := fn()
		p.done <- result[T]{value: v, err: err}
	}()
	return p
}

// Wait blocks until the job finishes and returns its outcome. It must be
// called at most once.
func (p *Pending[T]) Wait() (T, error) {
	r := <-p.done
	return r.value, r.err
}
