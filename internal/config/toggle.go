package config

import "sync/atomic"

const (
	ModeMock   = "mock"
	ModeRemote = "remote"
)

// Toggle selects mock or remote services at runtime. A flip is picked up
// by the next service call; nothing in flight is interrupted.
type Toggle struct {
	mock atomic.Bool
}

func NewToggle(useMock bool) *Toggle {
	t := &Toggle{}
	t.mock.Store(useMock)
	return t
}

func (t *Toggle) UseMock() bool {
	return t.mock.Load()
}

func (t *Toggle) Set(useMock bool) {
	t.mock.Store(useMock)
}

func (t *Toggle) Mode() string {
	if t.UseMock() {
		return ModeMock
	}
	return ModeRemote
}
