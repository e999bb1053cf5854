package checkout

import (
	"sync"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/cart"
	"github.com/CodeWithFin/platypus-website/internal/events"
	"github.com/CodeWithFin/platypus-website/internal/metrics"
	"github.com/CodeWithFin/platypus-website/internal/notify"
	"github.com/CodeWithFin/platypus-website/internal/order"
	"github.com/CodeWithFin/platypus-website/internal/payment"
	"github.com/CodeWithFin/platypus-website/internal/promotion"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultSubmitTimeout = 30 * time.Second

type Deps struct {
	Carts      *cart.Registry
	Orders     order.Service
	Payments   payment.Service
	Promotions promotion.Registry
	Handoff    *order.Handoff
	Notifier   *notify.Recorder
	Events     events.Publisher
	Metrics    *metrics.Metrics

	Threshold     decimal.Decimal
	SubmitTimeout time.Duration
	// PaymentStatusDelay is the wait between the M-Pesa push and the
	// status check. Zero checks immediately.
	PaymentStatusDelay time.Duration

	Logger *zap.Logger
}

// Manager keeps at most one live checkout per owner.
type Manager struct {
	carts      *cart.Registry
	orders     order.Service
	payments   payment.Service
	promotions promotion.Registry
	handoff    *order.Handoff
	notifier   *notify.Recorder
	events     events.Publisher
	metrics    *metrics.Metrics

	threshold          decimal.Decimal
	submitTimeout      time.Duration
	paymentStatusDelay time.Duration

	logger *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(deps Deps) *Manager {
	if deps.Carts == nil {
		panic("cart registry cannot be nil")
	}
	if deps.Orders == nil {
		panic("order service cannot be nil")
	}
	if deps.Payments == nil {
		panic("payment service cannot be nil")
	}
	if deps.Promotions == nil {
		panic("promotion registry cannot be nil")
	}
	if deps.Notifier == nil {
		panic("notifier cannot be nil")
	}
	if deps.Events == nil {
		deps.Events = events.NewNoop()
	}
	if deps.SubmitTimeout <= 0 {
		deps.SubmitTimeout = defaultSubmitTimeout
	}
	if deps.PaymentStatusDelay < 0 {
		deps.PaymentStatusDelay = 0
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Manager{
		carts:              deps.Carts,
		orders:             deps.Orders,
		payments:           deps.Payments,
		promotions:         deps.Promotions,
		handoff:            deps.Handoff,
		notifier:           deps.Notifier,
		events:             deps.Events,
		metrics:            deps.Metrics,
		threshold:          deps.Threshold,
		submitTimeout:      deps.SubmitTimeout,
		paymentStatusDelay: deps.PaymentStatusDelay,
		logger:             deps.Logger.Named("checkout.manager"),
		sessions:           make(map[string]*Session),
	}
}

// Start opens a fresh checkout for owner, abandoning any previous one.
// The promotion entered on the cart page carries over.
func (m *Manager) Start(owner string) (*Session, error) {
	cs := m.carts.For(owner)
	if cs.Cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	s := newSession(owner, cs.Cart, m.promotions, cs.Promotion.Active(), m.threshold)

	m.mu.Lock()
	prev := m.sessions[owner]
	m.sessions[owner] = s
	m.mu.Unlock()

	if prev != nil {
		prev.abandon()
		m.logger.Info("previous checkout abandoned", zap.String("owner", owner))
	}
	return s, nil
}

func (m *Manager) Get(owner string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[owner]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

func (m *Manager) Abandon(owner string) error {
	s, err := m.Get(owner)
	if err != nil {
		return err
	}
	s.abandon()
	m.drop(owner, s)
	return nil
}

// ConfirmAge records the answer to the age gate. Declining ends the
// checkout; the returned view carries the redirect back to the cart.
func (m *Manager) ConfirmAge(owner string, confirmed bool) (View, error) {
	s, err := m.Get(owner)
	if err != nil {
		return View{}, err
	}

	s.mu.Lock()
	err = s.editableLocked()
	s.mu.Unlock()
	if err != nil {
		return View{}, err
	}

	if confirmed {
		return s.confirmAge(), nil
	}

	s.abandon()
	m.drop(owner, s)
	m.notifier.Error(owner, msgAgeRequired)
	m.metrics.AgeDeclined()
	m.logger.Info("age verification declined", zap.String("owner", owner))
	return s.View(), nil
}

// drop removes s only while it is still the owner's active session.
func (m *Manager) drop(owner string, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[owner] == s {
		delete(m.sessions, owner)
	}
}
