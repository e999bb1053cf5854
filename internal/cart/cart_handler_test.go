package cart_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CodeWithFin/platypus-website/internal/cart"
	"github.com/CodeWithFin/platypus-website/internal/catalog"
	"github.com/CodeWithFin/platypus-website/internal/middleware"
	"github.com/CodeWithFin/platypus-website/internal/promotion"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== HELPER FUNCTIONS ====================

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupTestRouter(reg *cart.Registry, products ...catalog.Product) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyOwner, "guest:test")
		c.Next()
	})

	var cat catalog.Catalog = catalog.NewMock()
	if len(products) > 0 {
		cat = catalog.NewMockWith(products)
	}

	h := cart.NewHandler(cart.Deps{
		Registry:   reg,
		Catalog:    cat,
		Promotions: promotion.NewStatic(),
		Threshold:  decimal.NewFromInt(2500),
	})
	cart.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

// ==================== TEST CASES ====================

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success_add_priced_from_catalog", func(t *testing.T) {
		reg := cart.NewRegistry()
		r := setupTestRouter(reg)

		w, env := do(r, http.MethodPost, "/api/v1/cart/items", `{"productId":"gin-beefeater","quantity":2,"price":1}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Beefeater London Dry Gin added to cart!", env.Message)
		assert.True(t, reg.For("guest:test").Cart.TotalPrice().Equal(decimal.NewFromInt(3700)))
	})

	t.Run("error_unknown_product", func(t *testing.T) {
		r := setupTestRouter(cart.NewRegistry())
		w, env := do(r, http.MethodPost, "/api/v1/cart/items", `{"productId":"nope"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("error_out_of_stock", func(t *testing.T) {
		reg := cart.NewRegistry()
		r := setupTestRouter(reg, catalog.Product{ID: "sold-out", Price: decimal.NewFromInt(100), InStock: false})

		w, env := do(r, http.MethodPost, "/api/v1/cart/items", `{"productId":"sold-out"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
		assert.True(t, reg.For("guest:test").Cart.IsEmpty())
	})

	t.Run("error_missing_product_id", func(t *testing.T) {
		r := setupTestRouter(cart.NewRegistry())
		w, _ := do(r, http.MethodPost, "/api/v1/cart/items", `{"quantity":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_UpdateQty(t *testing.T) {
	reg := cart.NewRegistry()
	r := setupTestRouter(reg)
	do(r, http.MethodPost, "/api/v1/cart/items", `{"productId":"gin-gordons","quantity":1}`)

	t.Run("success_update", func(t *testing.T) {
		w, _ := do(r, http.MethodPatch, "/api/v1/cart/items/gin-gordons", `{"quantity":3}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, reg.For("guest:test").Cart.TotalItems())
	})

	t.Run("success_zero_removes", func(t *testing.T) {
		w, env := do(r, http.MethodPatch, "/api/v1/cart/items/gin-gordons", `{"quantity":0}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Item removed from cart", env.Message)
		assert.True(t, reg.For("guest:test").Cart.IsEmpty())
	})

	t.Run("error_not_in_cart", func(t *testing.T) {
		w, _ := do(r, http.MethodPatch, "/api/v1/cart/items/gin-gordons", `{"quantity":2}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error_missing_quantity", func(t *testing.T) {
		w, _ := do(r, http.MethodPatch, "/api/v1/cart/items/gin-gordons", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_DeleteAndClear(t *testing.T) {
	reg := cart.NewRegistry()
	r := setupTestRouter(reg)
	do(r, http.MethodPost, "/api/v1/cart/items", `{"productId":"gin-gordons"}`)
	do(r, http.MethodPost, "/api/v1/cart/items", `{"productId":"vodka-smirnoff"}`)

	w, _ := do(r, http.MethodDelete, "/api/v1/cart/items/gin-gordons", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, reg.For("guest:test").Cart.Contains("gin-gordons"))

	w, env := do(r, http.MethodDelete, "/api/v1/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cart cleared", env.Message)
	assert.True(t, reg.For("guest:test").Cart.IsEmpty())
}

func TestCartHandler_Promotion(t *testing.T) {
	reg := cart.NewRegistry()
	r := setupTestRouter(reg)
	do(r, http.MethodPost, "/api/v1/cart/items", `{"productId":"wine-kiwara-red"}`)

	t.Run("success_apply", func(t *testing.T) {
		w, env := do(r, http.MethodPost, "/api/v1/cart/promotion", `{"code":"welcome10"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Promo code applied! 10% off your first order", env.Message)

		var sum cart.SummaryResponse
		require.NoError(t, json.Unmarshal(env.Data, &sum))
		assert.True(t, sum.Discount.Equal(decimal.NewFromInt(125)))
		assert.True(t, sum.DeliveryFee.Equal(decimal.NewFromInt(200)))
		assert.True(t, sum.Total.Equal(decimal.NewFromInt(1325)))
	})

	t.Run("error_invalid_code_keeps_prior", func(t *testing.T) {
		w, env := do(r, http.MethodPost, "/api/v1/cart/promotion", `{"code":"BOGUS"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid promo code", env.Message)
		assert.Equal(t, "WELCOME10", reg.For("guest:test").Promotion.Active().Code)
	})

	t.Run("error_empty_code", func(t *testing.T) {
		_, env := do(r, http.MethodPost, "/api/v1/cart/promotion", `{"code":""}`)
		assert.Equal(t, "Please enter a promo code", env.Message)
	})

	t.Run("success_remove", func(t *testing.T) {
		w, env := do(r, http.MethodDelete, "/api/v1/cart/promotion", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Promo code removed", env.Message)
		assert.Nil(t, reg.For("guest:test").Promotion.Active())
	})

	t.Run("error_remove_without_promotion", func(t *testing.T) {
		w, _ := do(r, http.MethodDelete, "/api/v1/cart/promotion", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartHandler_Summary(t *testing.T) {
	reg := cart.NewRegistry()
	r := setupTestRouter(reg)
	do(r, http.MethodPost, "/api/v1/cart/items", `{"productId":"whisky-jameson"}`)

	w, env := do(r, http.MethodGet, "/api/v1/cart/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	var sum cart.SummaryResponse
	require.NoError(t, json.Unmarshal(env.Data, &sum))
	assert.True(t, sum.DeliveryFee.IsZero())
	assert.True(t, sum.FreeDelivery)
	assert.Equal(t, "KES 2,850", sum.TotalLabel)
}
