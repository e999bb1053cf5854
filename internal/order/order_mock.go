package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/storage"
)

// StorageKey holds every order created while running on mock data.
const StorageKey = "orders"

const estimatedDeliveryWindow = 48 * time.Hour

// Mock records orders in storage instead of calling the order service.
type Mock struct {
	mu      sync.Mutex
	storage storage.Storage
	now     func() time.Time
	lastID  int64
}

func NewMock(st storage.Storage) *Mock {
	return &Mock{storage: st, now: time.Now}
}

// WithClock replaces the time source used for ids and timestamps.
func (m *Mock) WithClock(now func() time.Time) *Mock {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
	return m
}

func (m *Mock) load(ctx context.Context) ([]Placed, error) {
	raw, err := m.storage.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []Placed
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// nextID returns a millisecond stamp that never repeats. Callers hold m.mu.
func (m *Mock) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= m.lastID {
		id = m.lastID + 1
	}
	m.lastID = id
	return id
}

func (m *Mock) Create(ctx context.Context, o Order) (Placed, error) {
	if len(o.Items) == 0 {
		return Placed{}, ErrEmptyOrder
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	orders, err := m.load(ctx)
	if err != nil {
		return Placed{}, ErrOrderFailed.WithCause(err)
	}

	now := m.now().UTC()
	stamp := strconv.FormatInt(m.nextID(now), 10)
	p := Placed{
		Order:             o,
		ID:                "PL" + stamp,
		Number:            "PL-" + stamp[max(0, len(stamp)-6):],
		Status:            StatusConfirmed,
		PaymentStatus:     "completed",
		CreatedAt:         now,
		EstimatedDelivery: now.Add(estimatedDeliveryWindow),
	}

	raw, err := json.Marshal(append(orders, p))
	if err != nil {
		return Placed{}, ErrOrderFailed.WithCause(err)
	}
	if err := m.storage.Set(ctx, StorageKey, raw); err != nil {
		return Placed{}, ErrOrderFailed.WithCause(err)
	}
	return p, nil
}

func (m *Mock) Get(ctx context.Context, id string) (Placed, error) {
	if strings.TrimSpace(id) == "" {
		return Placed{}, ErrInvalidOrderID
	}

	m.mu.Lock()
	orders, err := m.load(ctx)
	m.mu.Unlock()
	if err != nil {
		return Placed{}, err
	}

	for _, p := range orders {
		if p.ID == id {
			return p, nil
		}
	}
	return Placed{}, ErrOrderNotFound
}
