package cart

import (
	"sync"

	"github.com/CodeWithFin/platypus-website/internal/promotion"
)

// Session is what the cart page owns for one visitor: the cart itself and
// the promotion entered on it.
type Session struct {
	Cart      *Store
	Promotion *promotion.Slot
}

type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// For returns the owner's session, creating an empty one on first use.
func (r *Registry) For(owner string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[owner]
	if !ok {
		s = &Session{Cart: NewStore(), Promotion: promotion.NewSlot()}
		r.sessions[owner] = s
	}
	return s
}

func (r *Registry) Drop(owner string) {
	r.mu.Lock()
	delete(r.sessions, owner)
	r.mu.Unlock()
}
