package cart

import (
	"sync"

	"github.com/CodeWithFin/platypus-website/internal/catalog"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	ProductID      string          `json:"productId"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Quantity       int             `json:"quantity"`
	Image          string          `json:"image"`
	Brand          string          `json:"brand"`
	AlcoholContent float64         `json:"alcoholContent"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Store is the cart of one visitor. Each product appears at most once and
// every quantity is at least 1. Mutations are visible to the next read.
type Store struct {
	mu    sync.RWMutex
	items []LineItem
}

func NewStore() *Store {
	return &Store{}
}

// AddItem inserts the product or, when already present, increments its
// quantity. qty below 1 counts as 1.
func (s *Store) AddItem(p catalog.Product, qty int) LineItem {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity += qty
		return s.items[i]
	}

	li := LineItem{
		ProductID:      p.ID,
		Name:           p.Name,
		UnitPrice:      p.Price,
		Quantity:       qty,
		Image:          p.Image,
		Brand:          p.Brand,
		AlcoholContent: p.ABV(),
	}
	s.items = append(s.items, li)
	return li
}

// UpdateQuantity sets the quantity; below 1 removes the line. Unknown
// products are ignored.
func (s *Store) UpdateQuantity(productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	if qty < 1 {
		s.removeAt(i)
		return
	}
	s.items[i].Quantity = qty
}

func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.removeAt(i)
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, li := range s.items {
		n += li.Quantity
	}
	return n
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, li := range s.items {
		total = total.Add(li.LineTotal())
	}
	return total
}

// Items returns a snapshot in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Item(productID string) (LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}
	return LineItem{}, false
}

func (s *Store) Contains(productID string) bool {
	_, ok := s.Item(productID)
	return ok
}

func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) == 0
}

// RequiresAgeVerification is true when any line carries alcohol.
func (s *Store) RequiresAgeVerification() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, li := range s.items {
		if li.AlcoholContent > 0 {
			return true
		}
	}
	return false
}

func (s *Store) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}
