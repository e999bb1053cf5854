package backend

// Mode reports whether mock implementations should serve the next call.
type Mode interface {
	UseMock() bool
}

// Pair holds both implementations of a service interface. Pick is called
// on every request so a mode flip takes effect on the next call.
type Pair[T any] struct {
	mode   Mode
	mock   T
	remote T
}

func NewPair[T any](mode Mode, mock, remote T) *Pair[T] {
	return &Pair[T]{mode: mode, mock: mock, remote: remote}
}

func (p *Pair[T]) Pick() T {
	if p.mode != nil && p.mode.UseMock() {
		return p.mock
	}
	return p.remote
}
