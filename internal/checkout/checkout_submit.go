package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/events"
	"github.com/CodeWithFin/platypus-website/internal/notify"
	"github.com/CodeWithFin/platypus-website/internal/order"
	"github.com/CodeWithFin/platypus-website/internal/payment"
	"github.com/CodeWithFin/platypus-website/internal/pkg/apperror"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Receipt identifies a placed order to the confirmation view.
type Receipt struct {
	OrderID          string          `json:"orderId"`
	OrderNumber      string          `json:"orderNumber"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	Total            decimal.Decimal `json:"total"`
}

type outcome struct {
	placed           order.Placed
	paymentReference string
}

// Submit places the order for owner's checkout. The session lock is not
// held while the order and payment services are called.
func (m *Manager) Submit(ctx context.Context, owner string) (Receipt, error) {
	s, err := m.Get(owner)
	if err != nil {
		return Receipt{}, err
	}

	sub, err := s.begin()
	if err != nil {
		return Receipt{}, err
	}

	res, err := m.place(ctx, s, sub)
	if err != nil {
		return Receipt{}, m.fail(s, sub, err)
	}
	return m.succeed(ctx, s, sub, res)
}

// place runs order creation then payment, stopping at the first failure.
// Payment is not started, and its status not polled, once s has been
// abandoned or restarted.
func (m *Manager) place(ctx context.Context, s *Session, sub submission) (outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, m.submitTimeout)
	defer cancel()

	placed, err := m.orders.Create(ctx, sub.order)
	if err != nil {
		return outcome{}, err
	}
	res := outcome{placed: placed}

	if sub.order.Payment.Method != order.PaymentMethodMpesa {
		return res, nil
	}
	if !s.stillCurrent(sub.generation) {
		m.logger.Info("session closed before payment",
			zap.String("owner", s.owner),
			zap.String("order_id", placed.ID),
		)
		return outcome{}, ErrSessionClosed
	}

	started, err := m.payments.InitiateMobileMoney(ctx, payment.MobileMoneyRequest{
		OrderID: placed.ID,
		Phone:   sub.order.Payment.Phone,
		Amount:  sub.order.Total,
	})
	if err != nil {
		return outcome{}, err
	}
	if started.CheckoutReference == "" {
		return outcome{}, payment.ErrPaymentNotCompleted
	}
	if !m.notifyIfCurrent(s, sub.generation, notify.LevelInfo, msgMpesaSent) {
		return outcome{}, ErrSessionClosed
	}

	if m.paymentStatusDelay > 0 {
		t := time.NewTimer(m.paymentStatusDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return outcome{}, ctx.Err()
		case <-t.C:
		}
	}
	if !s.stillCurrent(sub.generation) {
		return outcome{}, ErrSessionClosed
	}

	status, err := m.payments.CheckStatus(ctx, started.CheckoutReference)
	if err != nil {
		return outcome{}, err
	}
	if !status.Completed() {
		m.logger.Warn("payment not completed",
			zap.String("order_id", placed.ID),
			zap.String("checkout_reference", started.CheckoutReference),
			zap.String("status", status.Status),
		)
		return outcome{}, payment.ErrPaymentNotCompleted
	}

	res.paymentReference = status.TransactionID
	if res.paymentReference == "" {
		res.paymentReference = started.CheckoutReference
	}
	return res, nil
}

// notifyIfCurrent sends the notice only while gen is still s's live
// submission. The check and the send share the lock so an abandon cannot
// slip in between.
func (m *Manager) notifyIfCurrent(s *Session, gen uint64, level, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.currentLocked(gen) {
		return false
	}
	m.notifier.Notify(s.owner, level, msg)
	return true
}

func (m *Manager) fail(s *Session, sub submission, cause error) error {
	err := submitError(cause)

	s.mu.Lock()
	if !s.currentLocked(sub.generation) {
		s.mu.Unlock()
		m.logger.Info("discarding late submission failure",
			zap.String("owner", s.owner),
			zap.Error(cause),
		)
		return ErrSessionClosed
	}
	s.status = StatusFailed
	msg := failureMessage(cause)
	s.lastError = msg
	s.mu.Unlock()

	m.notifier.Error(s.owner, msg)
	m.metrics.CheckoutFailed()
	m.logger.Error("checkout submission failed",
		zap.String("owner", s.owner),
		zap.Error(cause),
	)
	return err
}

func (m *Manager) succeed(ctx context.Context, s *Session, sub submission, res outcome) (Receipt, error) {
	receipt := Receipt{
		OrderID:          res.placed.ID,
		OrderNumber:      res.placed.Number,
		PaymentReference: res.paymentReference,
		Total:            sub.order.Total,
	}

	s.mu.Lock()
	if !s.currentLocked(sub.generation) {
		s.mu.Unlock()
		m.logger.Warn("discarding late submission result",
			zap.String("owner", s.owner),
			zap.String("order_id", res.placed.ID),
		)
		return Receipt{}, ErrSessionClosed
	}
	s.status = StatusSucceeded
	s.receipt = &receipt
	s.mu.Unlock()

	m.writeHandoff(ctx, s.owner, sub)
	s.cart.Clear()
	m.drop(s.owner, s)

	m.notifier.Success(s.owner, msgOrderPlaced)
	m.publish(ctx, s.owner, sub, res)
	total, _ := sub.order.Total.Float64()
	m.metrics.CheckoutSucceeded(total)

	m.logger.Info("order placed",
		zap.String("owner", s.owner),
		zap.String("order_id", res.placed.ID),
		zap.String("order_number", res.placed.Number),
		zap.String("total", sub.order.Total.StringFixed(2)),
	)
	return receipt, nil
}

func (m *Manager) writeHandoff(ctx context.Context, owner string, sub submission) {
	if m.handoff == nil {
		return
	}
	slot := sub.option.Description
	if slot == "" {
		slot = "2-3 business days"
	}
	err := m.handoff.Write(context.WithoutCancel(ctx), owner, order.Receipt{
		Total:        sub.order.Total,
		Subtotal:     sub.order.Subtotal,
		DeliveryFee:  sub.order.DeliveryFee,
		Items:        sub.order.Items,
		Address:      sub.order.Delivery.Address,
		City:         sub.order.Delivery.City,
		Instructions: sub.order.Delivery.Instructions,
		TimeSlot:     slot,
	})
	if err != nil {
		m.logger.Warn("failed to write order handoff", zap.String("owner", owner), zap.Error(err))
	}
}

func (m *Manager) publish(ctx context.Context, owner string, sub submission, res outcome) {
	o := sub.order
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}

	placedAt := res.placed.CreatedAt
	if placedAt.IsZero() {
		placedAt = time.Now().UTC()
	}

	err := m.events.PublishOrderPlaced(context.WithoutCancel(ctx), events.OrderPlaced{
		OrderID:          res.placed.ID,
		OrderNumber:      res.placed.Number,
		Owner:            owner,
		CustomerName:     strings.TrimSpace(o.Customer.FirstName + " " + o.Customer.LastName),
		Email:            o.Customer.Email,
		Phone:            o.Customer.Phone,
		ItemCount:        count,
		Subtotal:         o.Subtotal,
		Discount:         o.Discount,
		DeliveryFee:      o.DeliveryFee,
		Total:            o.Total,
		PaymentMethod:    o.Payment.Method,
		PaymentReference: res.paymentReference,
		DeliveryOption:   o.Delivery.Option,
		City:             o.Delivery.City,
		PlacedAt:         placedAt,
	})
	if err != nil {
		m.logger.Warn("failed to publish order placed event",
			zap.String("order_id", res.placed.ID),
			zap.Error(err),
		)
	}
}

func failureMessage(err error) string {
	if errors.Is(err, payment.ErrPaymentNotCompleted) {
		return msgPaymentFailed
	}
	return msgOrderFailed
}

// submitError maps a failed attempt to what the client sees.
func submitError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrSubmitTimeout.WithCause(err)
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return ErrSubmitFailed.WithCause(err)
}
