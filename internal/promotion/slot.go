package promotion

import (
	"context"
	"sync"
)

// Slot holds at most one active promotion. Applying a new code replaces
// the old one; a failed apply leaves it in place.
type Slot struct {
	mu     sync.RWMutex
	active *Promotion
}

func NewSlot() *Slot {
	return &Slot{}
}

func (s *Slot) Apply(ctx context.Context, reg Registry, code string) (Promotion, error) {
	code = Normalize(code)
	if code == "" {
		return Promotion{}, ErrPromoCodeRequired
	}

	p, err := reg.Lookup(ctx, code)
	if err != nil {
		return Promotion{}, err
	}

	s.mu.Lock()
	s.active = &p
	s.mu.Unlock()
	return p, nil
}

// Remove reports whether a promotion was active.
func (s *Slot) Remove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.active != nil
	s.active = nil
	return had
}

// Active returns a copy of the current promotion, nil when none.
func (s *Slot) Active() *Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	p := *s.active
	return &p
}

// Set replaces the active promotion without a lookup; nil clears it.
func (s *Slot) Set(p *Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.active = nil
		return
	}
	cp := *p
	s.active = &cp
}
