package checkout

import (
	"context"
	"sync"

	"github.com/CodeWithFin/platypus-website/internal/cart"
	"github.com/CodeWithFin/platypus-website/internal/order"
	"github.com/CodeWithFin/platypus-website/internal/pkg/validation"
	"github.com/CodeWithFin/platypus-website/internal/pricing"
	"github.com/CodeWithFin/platypus-website/internal/promotion"

	"github.com/shopspring/decimal"
)

type Step string

const (
	StepCustomer Step = "customer"
	StepDelivery Step = "delivery"
	StepPayment  Step = "payment"
	StepReview   Step = "review"
)

var steps = []Step{StepCustomer, StepDelivery, StepPayment, StepReview}

func (s Step) index() int {
	for i, st := range steps {
		if st == s {
			return i
		}
	}
	return 0
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
	StatusAbandoned  Status = "abandoned"
)

// closed sessions accept no further input.
func (s Status) closed() bool {
	return s == StatusSucceeded || s == StatusAbandoned
}

// Session is one checkout attempt. It reads the live cart, so pricing
// always reflects the cart as it is now.
type Session struct {
	mu sync.Mutex

	owner      string
	cart       *cart.Store
	promotion  *promotion.Slot
	promotions promotion.Registry
	threshold  decimal.Decimal

	step     Step
	status   Status
	customer CustomerInfo
	delivery DeliveryInfo
	payment  PaymentInfo
	errors   FieldErrors

	ageCheckPending bool
	ageVerified     bool

	// generation changes whenever a submission starts or the session is
	// abandoned. A submission that finishes under an older generation is
	// discarded.
	generation uint64
	lastError  string
	receipt    *Receipt
}

func newSession(owner string, store *cart.Store, promos promotion.Registry, seed *promotion.Promotion, threshold decimal.Decimal) *Session {
	slot := promotion.NewSlot()
	slot.Set(seed)

	s := &Session{
		owner:      owner,
		cart:       store,
		promotion:  slot,
		promotions: promos,
		threshold:  threshold,
		step:       StepCustomer,
		status:     StatusOpen,
		delivery:   DeliveryInfo{City: defaultCity, County: defaultCounty, Option: pricing.DefaultDeliveryOption},
		payment:    PaymentInfo{Method: order.PaymentMethodMpesa},
	}
	s.ageCheckPending = store.RequiresAgeVerification()
	return s
}

func (s *Session) Owner() string { return s.owner }

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	opt := s.deliveryOptionLocked()
	active := s.promotion.Active()

	v := View{
		Step:            s.step,
		Steps:           steps,
		Status:          s.status,
		Customer:        s.customer,
		Delivery:        s.delivery,
		Payment:         s.effectivePaymentLocked(),
		Items:           s.cart.Items(),
		ItemCount:       s.cart.TotalItems(),
		DeliveryOption:  opt,
		Promotion:       active,
		Quote:           s.quoteLocked(opt, active),
		AgeCheckPending: s.ageCheckPending,
		AgeVerified:     s.ageVerified,
		LastError:       s.lastError,
		Receipt:         s.receipt,
	}
	if len(s.errors) > 0 {
		v.Errors = make(FieldErrors, len(s.errors))
		for k, msg := range s.errors {
			v.Errors[k] = msg
		}
	}
	if s.status == StatusAbandoned {
		v.Redirect = "/cart"
	}

	busy := s.status == StatusSubmitting || s.status.closed()
	v.CanGoBack = !busy && s.step != StepCustomer
	v.CanGoNext = !busy && !s.ageCheckPending && s.step != StepReview
	v.CanSubmit = !busy && !s.ageCheckPending && s.step == StepReview && !s.cart.IsEmpty()
	return v
}

func (s *Session) deliveryOptionLocked() pricing.DeliveryOption {
	opt, ok := pricing.LookupDeliveryOption(s.delivery.normalize().Option)
	if !ok {
		opt, _ = pricing.LookupDeliveryOption(pricing.DefaultDeliveryOption)
	}
	return opt
}

func (s *Session) quoteLocked(opt pricing.DeliveryOption, active *promotion.Promotion) pricing.Quote {
	return pricing.Compute(pricing.QuoteInput{
		Subtotal:        s.cart.TotalPrice(),
		Delivery:        opt,
		DiscountPercent: promotion.PercentOf(active),
		Threshold:       s.threshold,
	})
}

// effectivePaymentLocked fills the M-Pesa number from the customer phone
// until one is entered.
func (s *Session) effectivePaymentLocked() PaymentInfo {
	p := s.payment.normalize()
	if p.Method == order.PaymentMethodMpesa && p.Phone == "" {
		p.Phone = s.customer.Phone
	}
	return p
}

// editable reports why input is refused, nil when it is accepted.
func (s *Session) editableLocked() error {
	switch {
	case s.status.closed():
		return ErrSessionClosed
	case s.status == StatusSubmitting:
		return ErrSubmitting
	}
	return nil
}

func (s *Session) UpdateCustomer(in CustomerInfo) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return View{}, err
	}
	in = in.normalize()
	s.clearErrorsLocked(changedFields(s.customer.fields(), in.fields()))
	s.customer = in
	return s.viewLocked(), nil
}

func (s *Session) UpdateDelivery(in DeliveryInfo) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return View{}, err
	}
	in = in.normalize()
	s.clearErrorsLocked(changedFields(s.delivery.fields(), in.fields()))
	s.delivery = in
	return s.viewLocked(), nil
}

func (s *Session) UpdatePayment(in PaymentInfo) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return View{}, err
	}
	in = in.normalize()
	s.clearErrorsLocked(changedFields(s.payment.fields(), in.fields()))
	s.payment = in
	return s.viewLocked(), nil
}

func (s *Session) clearErrorsLocked(fields []string) {
	for _, f := range fields {
		delete(s.errors, f)
	}
}

// Next validates the current step and moves forward when it is clean.
// On validation failure the step stays put and the returned error is a
// FieldErrors.
func (s *Session) Next() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return View{}, err
	}
	if s.ageCheckPending {
		return View{}, ErrAgeVerificationRequired
	}
	if s.step == StepReview {
		return s.viewLocked(), nil
	}

	if errs := s.validateStepLocked(s.step); len(errs) > 0 {
		s.errors = errs
		return s.viewLocked(), errs
	}
	s.errors = nil
	s.step = steps[s.step.index()+1]
	return s.viewLocked(), nil
}

func (s *Session) Back() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return View{}, err
	}
	if i := s.step.index(); i > 0 {
		s.step = steps[i-1]
		s.errors = nil
	}
	return s.viewLocked(), nil
}

func (s *Session) validateStepLocked(step Step) FieldErrors {
	switch step {
	case StepCustomer:
		return s.customer.validate()
	case StepDelivery:
		return s.delivery.validate()
	case StepPayment:
		return s.effectivePaymentLocked().validate()
	}
	return nil
}

// validateAllLocked returns the first step with errors.
func (s *Session) validateAllLocked() (Step, FieldErrors) {
	for _, st := range steps[:len(steps)-1] {
		if errs := s.validateStepLocked(st); len(errs) > 0 {
			return st, errs
		}
	}
	return StepReview, nil
}

func (s *Session) confirmAge() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ageCheckPending = false
	s.ageVerified = true
	return s.viewLocked()
}

// abandon closes the session and invalidates any submission in flight.
func (s *Session) abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusSucceeded {
		return
	}
	s.status = StatusAbandoned
	s.generation++
}

func (s *Session) ApplyPromotion(ctx context.Context, code string) (promotion.Promotion, View, error) {
	s.mu.Lock()
	err := s.editableLocked()
	s.mu.Unlock()
	if err != nil {
		return promotion.Promotion{}, View{}, err
	}

	p, err := s.promotion.Apply(ctx, s.promotions, code)
	if err != nil {
		return promotion.Promotion{}, View{}, err
	}
	return p, s.View(), nil
}

func (s *Session) RemovePromotion() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return View{}, err
	}
	if !s.promotion.Remove() {
		return View{}, promotion.ErrNoActivePromotion
	}
	return s.viewLocked(), nil
}

// submission is the frozen input of one submit attempt.
type submission struct {
	generation uint64
	order      order.Order
	option     pricing.DeliveryOption
}

// begin checks every precondition, freezes the order and enters
// submitting.
func (s *Session) begin() (submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editableLocked(); err != nil {
		return submission{}, err
	}
	if s.step != StepReview {
		return submission{}, ErrNotAtReview
	}
	if s.ageCheckPending || (s.cart.RequiresAgeVerification() && !s.ageVerified) {
		s.ageCheckPending = true
		return submission{}, ErrAgeVerificationRequired
	}
	if s.cart.IsEmpty() {
		return submission{}, ErrCartEmpty
	}
	if step, errs := s.validateAllLocked(); len(errs) > 0 {
		s.step = step
		s.errors = errs
		return submission{}, errs
	}

	opt := s.deliveryOptionLocked()
	active := s.promotion.Active()
	quote := s.quoteLocked(opt, active)

	s.status = StatusSubmitting
	s.errors = nil
	s.lastError = ""
	s.generation++

	return submission{
		generation: s.generation,
		order:      s.snapshotLocked(quote, active),
		option:     opt,
	}, nil
}

func (s *Session) snapshotLocked(q pricing.Quote, active *promotion.Promotion) order.Order {
	lines := s.cart.Items()
	items := make([]order.Item, 0, len(lines))
	for _, li := range lines {
		items = append(items, order.Item{
			ProductID:      li.ProductID,
			Name:           li.Name,
			UnitPrice:      li.UnitPrice,
			Quantity:       li.Quantity,
			Image:          li.Image,
			Brand:          li.Brand,
			AlcoholContent: li.AlcoholContent,
		})
	}

	pay := s.effectivePaymentLocked()
	o := order.Order{
		Items: items,
		Customer: order.Customer{
			FirstName: s.customer.FirstName,
			LastName:  s.customer.LastName,
			Email:     s.customer.Email,
			Phone:     validation.FormatKenyanPhone(s.customer.Phone),
		},
		Delivery: order.Delivery(s.delivery.normalize()),
		Payment: order.Payment{
			Method: pay.Method,
			Amount: q.Total,
		},
		Subtotal:    q.Subtotal,
		Discount:    q.Discount,
		DeliveryFee: q.DeliveryFee,
		Total:       q.Total,
	}
	if pay.Phone != "" {
		o.Payment.Phone = validation.FormatKenyanPhone(pay.Phone)
	}
	if active != nil {
		o.PromotionCode = active.Code
	}
	return o
}

// current reports whether a submission started under gen may still land.
func (s *Session) currentLocked(gen uint64) bool {
	return s.generation == gen && s.status == StatusSubmitting
}

func (s *Session) stillCurrent(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked(gen)
}
