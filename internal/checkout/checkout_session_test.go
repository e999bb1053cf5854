package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/CodeWithFin/platypus-website/internal/checkout"
	"github.com/CodeWithFin/platypus-website/internal/promotion"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Start(t *testing.T) {
	t.Run("error_empty_cart", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		_, err := f.manager.Start(owner)
		assert.ErrorIs(t, err, checkout.ErrCartEmpty)
	})

	t.Run("success_defaults", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 2)

		s, err := f.manager.Start(owner)
		require.NoError(t, err)

		v := s.View()
		assert.Equal(t, checkout.StepCustomer, v.Step)
		assert.Equal(t, checkout.StatusOpen, v.Status)
		assert.Equal(t, "standard", v.Delivery.Option)
		assert.Equal(t, "Nairobi", v.Delivery.City)
		assert.Equal(t, "mpesa", v.Payment.Method)
		assert.False(t, v.AgeCheckPending)
		assert.Equal(t, 2, v.ItemCount)
	})

	t.Run("success_alcohol_requires_age_check", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(gin750, 1)

		s, err := f.manager.Start(owner)
		require.NoError(t, err)
		assert.True(t, s.View().AgeCheckPending)
		assert.False(t, s.View().CanGoNext)
	})

	t.Run("success_carries_cart_promotion", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 1)
		f.carts.For(owner).Promotion.Set(&promotion.Promotion{Code: "WELCOME10", DiscountPercent: decimal.NewFromInt(10)})

		s, err := f.manager.Start(owner)
		require.NoError(t, err)
		require.NotNil(t, s.View().Promotion)
		assert.Equal(t, "WELCOME10", s.View().Promotion.Code)
	})

	t.Run("success_replaces_previous_session", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 1)

		first, err := f.manager.Start(owner)
		require.NoError(t, err)
		second, err := f.manager.Start(owner)
		require.NoError(t, err)

		assert.Equal(t, checkout.StatusAbandoned, first.View().Status)
		current, err := f.manager.Get(owner)
		require.NoError(t, err)
		assert.Same(t, second, current)

		_, err = first.Next()
		assert.ErrorIs(t, err, checkout.ErrSessionClosed)
	})
}

func TestSession_Next(t *testing.T) {
	t.Run("error_empty_email_blocks_customer_step", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 1)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)

		in := validCustomer
		in.Email = ""
		_, err = s.UpdateCustomer(in)
		require.NoError(t, err)

		v, err := s.Next()
		var fields checkout.FieldErrors
		require.True(t, errors.As(err, &fields))
		assert.ErrorIs(t, err, checkout.ErrValidation)
		assert.Equal(t, checkout.FieldErrors{"email": "Email is required"}, fields)
		assert.Equal(t, checkout.StepCustomer, v.Step)
		assert.Equal(t, checkout.StepCustomer, s.View().Step)
	})

	t.Run("error_field_messages", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 1)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)

		_, err = s.UpdateCustomer(checkout.CustomerInfo{FirstName: "  ", Email: "nope", Phone: "12345"})
		require.NoError(t, err)

		_, err = s.Next()
		var fields checkout.FieldErrors
		require.True(t, errors.As(err, &fields))
		assert.Equal(t, "First name is required", fields["firstName"])
		assert.Equal(t, "Last name is required", fields["lastName"])
		assert.Equal(t, "Email is invalid", fields["email"])
		assert.Equal(t, "Please enter a valid Kenyan phone number", fields["phone"])
	})

	t.Run("success_editing_clears_field_error", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 1)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)

		in := validCustomer
		in.Email = ""
		in.LastName = ""
		_, _ = s.UpdateCustomer(in)
		_, _ = s.Next()

		in.Email = validCustomer.Email
		v, err := s.UpdateCustomer(in)
		require.NoError(t, err)
		assert.NotContains(t, v.Errors, "email")
		assert.Contains(t, v.Errors, "lastName")
	})

	t.Run("error_delivery_unknown_option", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 1)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)
		_, _ = s.UpdateCustomer(validCustomer)
		_, err = s.Next()
		require.NoError(t, err)

		_, _ = s.UpdateDelivery(checkout.DeliveryInfo{Option: "drone"})
		v, err := s.Next()
		var fields checkout.FieldErrors
		require.True(t, errors.As(err, &fields))
		assert.Equal(t, "Address is required", fields["address"])
		assert.Equal(t, "City is required", fields["city"])
		assert.Equal(t, "Please select a delivery option", fields["option"])
		assert.Equal(t, checkout.StepDelivery, v.Step)
	})

	t.Run("error_payment_methods", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 1)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)
		_, _ = s.UpdateCustomer(validCustomer)
		_, _ = s.Next()
		_, _ = s.UpdateDelivery(validDelivery)
		_, err = s.Next()
		require.NoError(t, err)

		cases := []struct {
			in    checkout.PaymentInfo
			field string
			msg   string
		}{
			{checkout.PaymentInfo{Method: "card"}, "method", "Card payments are not available yet"},
			{checkout.PaymentInfo{Method: "cheque"}, "method", "Please select a payment method"},
			{checkout.PaymentInfo{Method: "mpesa", Phone: "0712"}, "mpesaPhone", "Please enter a valid M-Pesa phone number"},
		}
		for _, tc := range cases {
			_, err = s.UpdatePayment(tc.in)
			require.NoError(t, err)
			_, err = s.Next()
			var fields checkout.FieldErrors
			require.True(t, errors.As(err, &fields), tc.in.Method)
			assert.Equal(t, tc.msg, fields[tc.field])
			assert.Equal(t, checkout.StepPayment, s.View().Step)
		}
	})

	t.Run("success_mpesa_phone_follows_customer", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 1)
		s := f.toReview(t)
		assert.Equal(t, validCustomer.Phone, s.View().Payment.Phone)
	})

	t.Run("success_back_and_forward", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(mixer, 1)
		s := f.toReview(t)

		v, err := s.Back()
		require.NoError(t, err)
		assert.Equal(t, checkout.StepPayment, v.Step)

		v, err = s.Next()
		require.NoError(t, err)
		assert.Equal(t, checkout.StepReview, v.Step)
		assert.True(t, v.CanSubmit)
	})

	t.Run("error_age_pending", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(gin750, 1)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)
		_, _ = s.UpdateCustomer(validCustomer)

		_, err = s.Next()
		assert.ErrorIs(t, err, checkout.ErrAgeVerificationRequired)
	})
}

func TestManager_ConfirmAge(t *testing.T) {
	t.Run("success_yes_unblocks", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(gin750, 1)
		_, err := f.manager.Start(owner)
		require.NoError(t, err)

		v, err := f.manager.ConfirmAge(owner, true)
		require.NoError(t, err)
		assert.False(t, v.AgeCheckPending)
		assert.True(t, v.AgeVerified)
	})

	t.Run("success_no_tears_session_down", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(gin750, 1)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)

		v, err := f.manager.ConfirmAge(owner, false)
		require.NoError(t, err)
		assert.Equal(t, checkout.StatusAbandoned, v.Status)
		assert.Equal(t, "/cart", v.Redirect)

		_, err = f.manager.Get(owner)
		assert.ErrorIs(t, err, checkout.ErrNoSession)
		_, err = s.Next()
		assert.ErrorIs(t, err, checkout.ErrSessionClosed)

		notes := f.notes.Drain(owner)
		require.Len(t, notes, 1)
		assert.Equal(t, "Age verification is required to purchase alcoholic beverages", notes[0].Message)
		assert.Equal(t, 1, f.carts.For(owner).Cart.TotalItems())
	})

	t.Run("success_not_sticky_across_sessions", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(gin750, 1)
		_, err := f.manager.Start(owner)
		require.NoError(t, err)
		_, err = f.manager.ConfirmAge(owner, true)
		require.NoError(t, err)

		s, err := f.manager.Start(owner)
		require.NoError(t, err)
		assert.True(t, s.View().AgeCheckPending)
	})

	t.Run("error_no_session", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		_, err := f.manager.ConfirmAge(owner, true)
		assert.ErrorIs(t, err, checkout.ErrNoSession)
	})
}

func TestSession_Pricing(t *testing.T) {
	t.Run("success_recomputed_from_live_cart", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(gin750, 1)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)

		q := s.View().Quote
		assert.True(t, q.DeliveryFee.Equal(decimal.NewFromInt(200)))
		assert.True(t, q.Total.Equal(decimal.NewFromInt(1850)))

		f.addToCart(gin750, 1)
		q = s.View().Quote
		assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(3300)))
		assert.True(t, q.DeliveryFee.IsZero())
		assert.True(t, q.Total.Equal(decimal.NewFromInt(3300)))
	})

	t.Run("success_threshold_used_as_given", func(t *testing.T) {
		for _, tc := range []struct {
			name      string
			threshold decimal.Decimal
		}{
			{name: "zero", threshold: decimal.Zero},
			{name: "below_subtotal", threshold: decimal.NewFromInt(1000)},
		} {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t, fixtureOpts{threshold: &tc.threshold})
				f.addToCart(gin750, 1)
				s, err := f.manager.Start(owner)
				require.NoError(t, err)

				q := s.View().Quote
				assert.True(t, q.DeliveryFee.IsZero())
				assert.True(t, q.Total.Equal(decimal.NewFromInt(1650)))
				assert.True(t, q.AmountToFreeDelivery.IsZero())
			})
		}
	})

	t.Run("success_express_never_free", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(gin750, 2)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)

		d := validDelivery
		d.Option = "express"
		v, err := s.UpdateDelivery(d)
		require.NoError(t, err)
		assert.True(t, v.Quote.DeliveryFee.Equal(decimal.NewFromInt(500)))
	})

	t.Run("success_promotion_apply_and_remove", func(t *testing.T) {
		f := newFixture(t, fixtureOpts{})
		f.addToCart(gin750, 2)
		s, err := f.manager.Start(owner)
		require.NoError(t, err)

		p, v, err := s.ApplyPromotion(context.Background(), " weekend20 ")
		require.NoError(t, err)
		assert.Equal(t, "WEEKEND20", p.Code)
		assert.True(t, v.Quote.Discount.Equal(decimal.NewFromInt(660)))
		assert.True(t, v.Quote.Total.Equal(decimal.NewFromInt(2640)))

		_, _, err = s.ApplyPromotion(context.Background(), "BOGUS")
		assert.ErrorIs(t, err, promotion.ErrInvalidPromoCode)
		assert.Equal(t, "WEEKEND20", s.View().Promotion.Code)

		v, err = s.RemovePromotion()
		require.NoError(t, err)
		assert.Nil(t, v.Promotion)

		_, err = s.RemovePromotion()
		assert.ErrorIs(t, err, promotion.ErrNoActivePromotion)
	})
}
