package promotion_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/config"
	"github.com/CodeWithFin/platypus-website/internal/httpclient"
	mock "github.com/CodeWithFin/platypus-website/internal/mock/promotion"
	"github.com/CodeWithFin/platypus-website/internal/promotion"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatic_Lookup(t *testing.T) {
	reg := promotion.NewStatic()
	ctx := context.Background()

	t.Run("success_case_insensitive", func(t *testing.T) {
		p, err := reg.Lookup(ctx, " welcome10 ")
		require.NoError(t, err)
		assert.Equal(t, "WELCOME10", p.Code)
		assert.True(t, p.DiscountPercent.Equal(decimal.NewFromInt(10)))
	})

	t.Run("error_unknown_code", func(t *testing.T) {
		_, err := reg.Lookup(ctx, "FREEBOOZE")
		assert.ErrorIs(t, err, promotion.ErrInvalidPromoCode)
	})
}

func TestComputeDiscount(t *testing.T) {
	welcome := &promotion.Promotion{Code: "WELCOME10", DiscountPercent: decimal.NewFromInt(10)}

	t.Run("success_ten_percent", func(t *testing.T) {
		got := promotion.ComputeDiscount(decimal.NewFromInt(1000), welcome)
		assert.True(t, got.Equal(decimal.NewFromInt(100)))
	})

	t.Run("success_pure", func(t *testing.T) {
		a := promotion.ComputeDiscount(decimal.NewFromInt(2450), welcome)
		b := promotion.ComputeDiscount(decimal.NewFromInt(2450), welcome)
		assert.True(t, a.Equal(b))
		assert.True(t, a.Equal(decimal.NewFromInt(245)))
	})

	t.Run("success_nil_promotion", func(t *testing.T) {
		assert.True(t, promotion.ComputeDiscount(decimal.NewFromInt(1000), nil).IsZero())
	})
}

func TestSlot(t *testing.T) {
	reg := promotion.NewStatic()
	ctx := context.Background()

	t.Run("success_apply_replaces", func(t *testing.T) {
		s := promotion.NewSlot()
		_, err := s.Apply(ctx, reg, "WELCOME10")
		require.NoError(t, err)
		_, err = s.Apply(ctx, reg, "weekend20")
		require.NoError(t, err)

		active := s.Active()
		require.NotNil(t, active)
		assert.Equal(t, "WEEKEND20", active.Code)
	})

	t.Run("success_apply_same_code_twice_is_idempotent", func(t *testing.T) {
		s := promotion.NewSlot()
		first, err := s.Apply(ctx, reg, "PLATYPUS15")
		require.NoError(t, err)
		second, err := s.Apply(ctx, reg, "platypus15")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, first, *s.Active())
	})

	t.Run("error_invalid_code_keeps_prior", func(t *testing.T) {
		s := promotion.NewSlot()
		_, err := s.Apply(ctx, reg, "WELCOME10")
		require.NoError(t, err)

		_, err = s.Apply(ctx, reg, "NOPE")
		assert.ErrorIs(t, err, promotion.ErrInvalidPromoCode)
		assert.Equal(t, "WELCOME10", s.Active().Code)
	})

	t.Run("error_empty_code", func(t *testing.T) {
		s := promotion.NewSlot()
		_, err := s.Apply(ctx, reg, "   ")
		assert.ErrorIs(t, err, promotion.ErrPromoCodeRequired)
	})

	t.Run("success_remove", func(t *testing.T) {
		s := promotion.NewSlot()
		assert.False(t, s.Remove())
		_, _ = s.Apply(ctx, reg, "WELCOME10")
		assert.True(t, s.Remove())
		assert.Nil(t, s.Active())
	})

	t.Run("success_active_is_a_copy", func(t *testing.T) {
		s := promotion.NewSlot()
		_, _ = s.Apply(ctx, reg, "WELCOME10")
		s.Active().Code = "HACKED"
		assert.Equal(t, "WELCOME10", s.Active().Code)
	})
}

func TestSlot_RegistryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := mock.NewMockRegistry(ctrl)
	ctx := context.Background()

	s := promotion.NewSlot()
	s.Set(&promotion.Promotion{Code: "WELCOME10", DiscountPercent: decimal.NewFromInt(10)})

	reg.EXPECT().
		Lookup(ctx, "WEEKEND20").
		Return(promotion.Promotion{}, errors.New("network down"))

	_, err := s.Apply(ctx, reg, "weekend20")
	assert.Error(t, err)
	assert.Equal(t, "WELCOME10", s.Active().Code)
}

func TestParsePromoCodes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		promos, err := promotion.ParsePromoCodes("summer5:5:Summer treat; XMAS25:25")
		require.NoError(t, err)
		require.Len(t, promos, 2)
		assert.Equal(t, "SUMMER5", promos[0].Code)
		assert.Equal(t, "Summer treat", promos[0].Description)
		assert.Equal(t, "25% off", promos[1].Description)
	})

	t.Run("error_bad_percent", func(t *testing.T) {
		_, err := promotion.ParsePromoCodes("BAD:abc")
		assert.Error(t, err)
		_, err = promotion.ParsePromoCodes("BAD:150")
		assert.Error(t, err)
	})

	t.Run("error_missing_percent", func(t *testing.T) {
		_, err := promotion.ParsePromoCodes("LONELY")
		assert.Error(t, err)
	})

	t.Run("success_override_registry", func(t *testing.T) {
		promos, err := promotion.ParsePromoCodes("VIP30:30:VIP")
		require.NoError(t, err)
		reg := promotion.NewStatic(promos...)

		_, err = reg.Lookup(context.Background(), "WELCOME10")
		assert.ErrorIs(t, err, promotion.ErrInvalidPromoCode)
		_, err = reg.Lookup(context.Background(), "vip30")
		assert.NoError(t, err)
	})
}

func TestRemote_Lookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/promotions/apply-coupon", func(c *gin.Context) {
		var req struct {
			Code string `json:"code"`
		}
		_ = c.ShouldBindJSON(&req)
		switch req.Code {
		case "FLASH50":
			c.JSON(http.StatusOK, gin.H{"code": "FLASH50", "discountPercent": 50, "description": "Flash sale"})
		case "BROKEN":
			c.Status(http.StatusInternalServerError)
		case "TOOBIG":
			c.JSON(http.StatusOK, gin.H{"code": "TOOBIG", "discountPercent": 150})
		case "NEGATIVE":
			c.JSON(http.StatusOK, gin.H{"code": "NEGATIVE", "discountPercent": -5})
		case "FULL":
			c.JSON(http.StatusOK, gin.H{"code": "FULL", "discountPercent": 100})
		default:
			c.JSON(http.StatusNotFound, gin.H{"message": "coupon not found"})
		}
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := httpclient.New(httpclient.Options{Name: "promotions", BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)
	remote := promotion.NewRemote(client)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		p, err := remote.Lookup(ctx, "flash50")
		require.NoError(t, err)
		assert.True(t, p.DiscountPercent.Equal(decimal.NewFromInt(50)))
	})

	t.Run("error_unknown", func(t *testing.T) {
		_, err := remote.Lookup(ctx, "NOPE")
		assert.ErrorIs(t, err, promotion.ErrInvalidPromoCode)
	})

	t.Run("success_full_discount", func(t *testing.T) {
		p, err := remote.Lookup(ctx, "full")
		require.NoError(t, err)
		assert.True(t, p.DiscountPercent.Equal(decimal.NewFromInt(100)))
	})

	t.Run("error_percent_out_of_range", func(t *testing.T) {
		for _, code := range []string{"TOOBIG", "NEGATIVE"} {
			_, err := remote.Lookup(ctx, code)
			assert.ErrorIs(t, err, promotion.ErrInvalidPromoCode, code)
		}
	})

	t.Run("error_upstream", func(t *testing.T) {
		_, err := remote.Lookup(ctx, "BROKEN")
		require.Error(t, err)
		assert.NotErrorIs(t, err, promotion.ErrInvalidPromoCode)
	})
}

func TestSwitch(t *testing.T) {
	toggle := config.NewToggle(true)
	mockReg := promotion.NewStatic(promotion.Promotion{Code: "MOCKONLY", DiscountPercent: decimal.NewFromInt(5)})
	remoteReg := promotion.NewStatic()
	reg := promotion.NewSwitch(toggle, mockReg, remoteReg)
	ctx := context.Background()

	_, err := reg.Lookup(ctx, "MOCKONLY")
	assert.NoError(t, err)

	toggle.Set(false)
	_, err = reg.Lookup(ctx, "MOCKONLY")
	assert.ErrorIs(t, err, promotion.ErrInvalidPromoCode)
}
