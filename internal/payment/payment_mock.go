package payment

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/pkg/validation"
)

// Mock approves every payment. References are millisecond stamps.
type Mock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewMock() *Mock {
	return &Mock{now: time.Now}
}

func (m *Mock) WithClock(now func() time.Time) *Mock {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
	return m
}

func (m *Mock) stamp() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.now().UnixMilli()
	if id <= m.last {
		id = m.last + 1
	}
	m.last = id
	return strconv.FormatInt(id, 10)
}

func (m *Mock) InitiateMobileMoney(_ context.Context, req MobileMoneyRequest) (Initiation, error) {
	if req.OrderID == "" || !req.Amount.IsPositive() || !validation.ValidKenyanPhone(req.Phone) {
		return Initiation{}, ErrInvalidRequest
	}

	return Initiation{
		CheckoutReference: "CHK" + m.stamp(),
		Status:            StatusPending,
		Message:           "M-Pesa payment request sent to your phone",
	}, nil
}

func (m *Mock) CheckStatus(_ context.Context, ref string) (StatusResult, error) {
	if strings.TrimSpace(ref) == "" {
		return StatusResult{}, ErrInvalidReference
	}

	return StatusResult{
		Status:        StatusCompleted,
		TransactionID: "MP" + m.stamp(),
		Message:       "Payment completed successfully",
	}, nil
}
