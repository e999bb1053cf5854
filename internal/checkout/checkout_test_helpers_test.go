package checkout_test

import (
	"testing"

	"github.com/CodeWithFin/platypus-website/internal/cart"
	"github.com/CodeWithFin/platypus-website/internal/catalog"
	"github.com/CodeWithFin/platypus-website/internal/checkout"
	"github.com/CodeWithFin/platypus-website/internal/events"
	"github.com/CodeWithFin/platypus-website/internal/notify"
	"github.com/CodeWithFin/platypus-website/internal/order"
	"github.com/CodeWithFin/platypus-website/internal/payment"
	"github.com/CodeWithFin/platypus-website/internal/promotion"
	"github.com/CodeWithFin/platypus-website/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const owner = "guest:test"

var gin750 = catalog.Product{
	ID:             "gin-gordons",
	Name:           "Gordon's London Dry Gin",
	Brand:          "Gordon's",
	Price:          decimal.NewFromInt(1650),
	AlcoholContent: "37.5%",
	InStock:        true,
	StockCount:     18,
}

var mixer = catalog.Product{
	ID:      "tonic-schweppes",
	Name:    "Schweppes Indian Tonic",
	Price:   decimal.NewFromInt(120),
	InStock: true,
}

type fixture struct {
	carts   *cart.Registry
	notes   *notify.Recorder
	store   *storage.Memory
	handoff *order.Handoff
	manager *checkout.Manager
}

type fixtureOpts struct {
	orders   order.Service
	payments payment.Service
	events   events.Publisher
	// threshold overrides the free delivery threshold of 3000.
	threshold *decimal.Decimal
}

func newFixture(t *testing.T, opts fixtureOpts) *fixture {
	t.Helper()

	st := storage.NewMemory()
	if opts.orders == nil {
		opts.orders = order.NewMock(st)
	}
	if opts.payments == nil {
		opts.payments = payment.NewMock()
	}
	threshold := decimal.NewFromInt(3000)
	if opts.threshold != nil {
		threshold = *opts.threshold
	}

	f := &fixture{
		carts:   cart.NewRegistry(),
		notes:   notify.NewRecorder(nil),
		store:   st,
		handoff: order.NewHandoff(st, nil),
	}
	f.manager = checkout.NewManager(checkout.Deps{
		Carts:      f.carts,
		Orders:     opts.orders,
		Payments:   opts.payments,
		Promotions: promotion.NewStatic(promotion.DefaultPromotions()...),
		Handoff:    f.handoff,
		Notifier:   f.notes,
		Events:     opts.events,
		Threshold:  threshold,
	})
	return f
}

func (f *fixture) addToCart(p catalog.Product, qty int) {
	f.carts.For(owner).Cart.AddItem(p, qty)
}

var validCustomer = checkout.CustomerInfo{
	FirstName: "Wanjiku",
	LastName:  "Kamau",
	Email:     "wanjiku@example.co.ke",
	Phone:     "0712345678",
}

var validDelivery = checkout.DeliveryInfo{
	Address: "Kenyatta Avenue 12",
	City:    "Nakuru",
	Option:  "standard",
}

// toReview starts a checkout, passes the age gate and fills every step.
func (f *fixture) toReview(t *testing.T) *checkout.Session {
	t.Helper()

	s, err := f.manager.Start(owner)
	require.NoError(t, err)

	if s.View().AgeCheckPending {
		_, err = f.manager.ConfirmAge(owner, true)
		require.NoError(t, err)
	}

	_, err = s.UpdateCustomer(validCustomer)
	require.NoError(t, err)
	_, err = s.Next()
	require.NoError(t, err)

	_, err = s.UpdateDelivery(validDelivery)
	require.NoError(t, err)
	_, err = s.Next()
	require.NoError(t, err)

	_, err = s.UpdatePayment(checkout.PaymentInfo{Method: "mpesa"})
	require.NoError(t, err)
	v, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, checkout.StepReview, v.Step)
	return s
}

func levels(notices []notify.Notice) []string {
	out := make([]string, 0, len(notices))
	for _, n := range notices {
		out = append(out, n.Level)
	}
	return out
}
