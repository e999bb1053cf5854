package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/catalog"
	"github.com/CodeWithFin/platypus-website/internal/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const StorageKey = "platypus_wishlist"

type Entry struct {
	ProductID     string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Image         string           `json:"image"`
	Category      string           `json:"category"`
	Brand         string           `json:"brand"`
	InStock       bool             `json:"inStock"`
	DateAdded     time.Time        `json:"dateAdded"`
}

type Stats struct {
	TotalItems      int             `json:"totalItems"`
	InStockItems    int             `json:"inStockItems"`
	OutOfStockItems int             `json:"outOfStockItems"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	Categories      map[string]int  `json:"categories"`
	IsEmpty         bool            `json:"isEmpty"`
}

type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Filter dimensions are AND-ed. Category "all" or empty matches everything.
type Filter struct {
	Category   string
	InStock    *bool
	PriceRange *PriceRange
	Search     string
}

const (
	SortByName      = "name"
	SortByPrice     = "price"
	SortByDateAdded = "dateAdded"
	SortByCategory  = "category"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Store is one visitor's wishlist. Each mutation is written to storage
// first and only then becomes visible; a failed write changes nothing.
type Store struct {
	mu      sync.RWMutex
	storage storage.Storage
	key     string
	items   []Entry
	now     func() time.Time
	logger  *zap.Logger
}

// Load reads the owner's wishlist. Missing, unreadable or corrupt data
// yields an empty wishlist; the cause is logged, never returned.
func Load(ctx context.Context, st storage.Storage, owner string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		storage: st,
		key:     storage.Key(StorageKey, owner),
		now:     time.Now,
		logger:  logger.With(zap.String("owner", owner)),
	}

	raw, err := st.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("wishlist read failed, starting empty", zap.Error(err))
		}
		return s
	}

	var items []Entry
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("wishlist data corrupt, starting empty", zap.Error(err))
		return s
	}
	s.items = dedupe(items)
	return s
}

func dedupe(items []Entry) []Entry {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, e := range items {
		if _, ok := seen[e.ProductID]; ok || e.ProductID == "" {
			continue
		}
		seen[e.ProductID] = struct{}{}
		out = append(out, e)
	}
	return out
}

// commit persists next and swaps it in. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []Entry) error {
	if next == nil {
		next = []Entry{}
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return ErrWishlistFailed.WithCause(err)
	}
	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		s.logger.Error("wishlist write failed", zap.Error(err))
		return ErrWishlistFailed.WithCause(err)
	}
	s.items = next
	return nil
}

func (s *Store) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) Add(ctx context.Context, p catalog.Product) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(p.ID) >= 0 {
		return Entry{}, ErrItemAlreadyExists
	}

	e := Entry{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      p.Category,
		Brand:         p.Brand,
		InStock:       p.InStock,
		DateAdded:     s.now().UTC(),
	}

	next := make([]Entry, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, e)
	if err := s.commit(ctx, next); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Remove reports whether an entry was removed, with the entry itself.
func (s *Store) Remove(ctx context.Context, productID string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return Entry{}, false, nil
	}
	removed := s.items[i]

	next := make([]Entry, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return Entry{}, false, err
	}
	return removed, true, nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []Entry{})
}

func (s *Store) Contains(productID string) bool {
	_, ok := s.Get(productID)
	return ok
}

func (s *Store) Get(productID string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}
	return Entry{}, false
}

func (s *Store) Items() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.items))
	copy(out, s.items)
	return out
}

// AddFunc inserts a wishlist entry into the cart.
type AddFunc func(ctx context.Context, e Entry) error

// MoveToCart inserts the entry into the cart and only after that succeeds
// removes it from the wishlist. A failed insert leaves the wishlist as it
// was. Once the cart holds the item the move counts as done: if the
// wishlist write fails the entry is still dropped from memory and the next
// successful write persists that.
func (s *Store) MoveToCart(ctx context.Context, productID string, add AddFunc) (Entry, error) {
	e, ok := s.Get(productID)
	if !ok {
		return Entry{}, ErrItemNotFound
	}
	if !e.InStock {
		return Entry{}, ErrOutOfStock
	}

	if err := add(ctx, e); err != nil {
		return Entry{}, err
	}

	if _, _, err := s.Remove(ctx, productID); err != nil {
		s.logger.Warn("wishlist removal after move not persisted",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		s.forget(productID)
	}
	return e, nil
}

// forget drops productID from memory only.
func (s *Store) forget(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	next := make([]Entry, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	s.items = next
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		TotalItems: len(s.items),
		TotalValue: decimal.Zero,
		Categories: make(map[string]int),
	}
	for _, e := range s.items {
		if e.InStock {
			st.InStockItems++
		}
		st.TotalValue = st.TotalValue.Add(e.Price)
		st.Categories[e.Category]++
	}
	st.OutOfStockItems = st.TotalItems - st.InStockItems
	st.IsEmpty = st.TotalItems == 0
	return st
}

func validSortField(field string) bool {
	switch field {
	case SortByName, SortByPrice, SortByDateAdded, SortByCategory:
		return true
	}
	return false
}

// Sort reorders the stored collection and persists the new order. String
// fields compare case-insensitively; order other than "asc" is descending.
func (s *Store) Sort(ctx context.Context, field, order string) error {
	if field == "" {
		field = SortByDateAdded
	}
	if !validSortField(field) {
		return ErrInvalidSort
	}
	desc := order != OrderAsc

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Entry, len(s.items))
	copy(next, s.items)

	sort.SliceStable(next, func(i, j int) bool {
		c := compare(next[i], next[j], field)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return s.commit(ctx, next)
}

func compare(a, b Entry, field string) int {
	switch field {
	case SortByName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortByPrice:
		return a.Price.Cmp(b.Price)
	case SortByCategory:
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	default:
		return a.DateAdded.Compare(b.DateAdded)
	}
}

// Filter returns the matching entries without touching the stored order.
func (s *Store) Filter(f Filter) []Entry {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.items))
	for _, e := range s.items {
		if f.Category != "" && f.Category != "all" && e.Category != f.Category {
			continue
		}
		if f.InStock != nil && e.InStock != *f.InStock {
			continue
		}
		if f.PriceRange != nil && (e.Price.LessThan(f.PriceRange.Min) || e.Price.GreaterThan(f.PriceRange.Max)) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.Brand), search) &&
			!strings.Contains(strings.ToLower(e.Category), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// WithClock replaces the time source used for DateAdded.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
	return s
}
