package order_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/config"
	"github.com/CodeWithFin/platypus-website/internal/httpclient"
	"github.com/CodeWithFin/platypus-website/internal/middleware"
	mock "github.com/CodeWithFin/platypus-website/internal/mock/order"
	"github.com/CodeWithFin/platypus-website/internal/order"
	"github.com/CodeWithFin/platypus-website/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleOrder() order.Order {
	return order.Order{
		Items: []order.Item{{
			ProductID: "gin-gordons",
			Name:      "Gordon's London Dry Gin",
			UnitPrice: decimal.NewFromInt(1650),
			Quantity:  2,
		}},
		Customer: order.Customer{FirstName: "Wanjiku", LastName: "Kamau", Email: "w@example.co.ke", Phone: "0712345678"},
		Delivery: order.Delivery{Address: "Kenyatta Ave 12", City: "Nakuru", Option: "standard"},
		Payment:  order.Payment{Method: order.PaymentMethodMpesa, Phone: "0712345678", Amount: decimal.NewFromInt(3300)},
		Subtotal: decimal.NewFromInt(3300),
		Total:    decimal.NewFromInt(3300),
	}
}

// failingStorage rejects every write.
type failingStorage struct {
	storage.Storage
}

func (failingStorage) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func TestMock_Create(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("success_ids_and_defaults", func(t *testing.T) {
		m := order.NewMock(storage.NewMemory()).WithClock(func() time.Time { return at })

		p, err := m.Create(ctx, sampleOrder())
		require.NoError(t, err)

		stamp := at.UnixMilli()
		assert.Equal(t, "PL"+itoa(stamp), p.ID)
		assert.Equal(t, "PL-"+itoa(stamp)[len(itoa(stamp))-6:], p.Number)
		assert.Equal(t, order.StatusConfirmed, p.Status)
		assert.Equal(t, at.Add(48*time.Hour), p.EstimatedDelivery)
	})

	t.Run("success_ids_unique_within_same_millisecond", func(t *testing.T) {
		m := order.NewMock(storage.NewMemory()).WithClock(func() time.Time { return at })

		a, err := m.Create(ctx, sampleOrder())
		require.NoError(t, err)
		b, err := m.Create(ctx, sampleOrder())
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("success_persisted_and_readable", func(t *testing.T) {
		st := storage.NewMemory()
		p, err := order.NewMock(st).Create(ctx, sampleOrder())
		require.NoError(t, err)

		got, err := order.NewMock(st).Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Wanjiku", got.Customer.FirstName)
		assert.True(t, got.Total.Equal(decimal.NewFromInt(3300)))
	})

	t.Run("error_empty_order", func(t *testing.T) {
		_, err := order.NewMock(storage.NewMemory()).Create(ctx, order.Order{})
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("error_storage_write", func(t *testing.T) {
		m := order.NewMock(failingStorage{storage.NewMemory()})
		_, err := m.Create(ctx, sampleOrder())
		assert.ErrorIs(t, err, order.ErrOrderFailed)
	})
}

func TestMock_Get(t *testing.T) {
	ctx := context.Background()
	m := order.NewMock(storage.NewMemory())

	t.Run("error_not_found", func(t *testing.T) {
		_, err := m.Get(ctx, "PL1")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("error_blank_id", func(t *testing.T) {
		_, err := m.Get(ctx, " ")
		assert.ErrorIs(t, err, order.ErrInvalidOrderID)
	})
}

func newRemote(t *testing.T, create gin.HandlerFunc) *order.Remote {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if create == nil {
		create = func(c *gin.Context) { c.Status(http.StatusMethodNotAllowed) }
	}
	r.POST("/v1/orders", create)
	r.GET("/v1/orders/:id", func(c *gin.Context) {
		if c.Param("id") != "ORD-1" {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": "ORD-1", "number": "N-1", "status": "confirmed"})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := httpclient.New(httpclient.Options{Name: "orders", BaseURL: srv.URL + "/v1", Timeout: time.Second})
	require.NoError(t, err)
	return order.NewRemote(client)
}

func TestRemote(t *testing.T) {
	ctx := context.Background()

	t.Run("success_create", func(t *testing.T) {
		rem := newRemote(t, func(c *gin.Context) {
			var in order.Order
			require.NoError(t, c.ShouldBindJSON(&in))
			assert.Equal(t, "Nakuru", in.Delivery.City)
			c.JSON(http.StatusCreated, gin.H{"id": "ORD-1", "number": "N-1", "status": "confirmed"})
		})

		p, err := rem.Create(ctx, sampleOrder())
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", p.ID)
	})

	t.Run("error_non_2xx", func(t *testing.T) {
		rem := newRemote(t, func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "db down"})
		})

		_, err := rem.Create(ctx, sampleOrder())
		assert.ErrorIs(t, err, httpclient.ErrUpstream)
	})

	t.Run("error_missing_id", func(t *testing.T) {
		rem := newRemote(t, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		_, err := rem.Create(ctx, sampleOrder())
		assert.ErrorIs(t, err, order.ErrOrderFailed)
	})

	t.Run("success_get", func(t *testing.T) {
		rem := newRemote(t, nil)
		p, err := rem.Get(ctx, "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, "N-1", p.Number)
	})

	t.Run("error_get_not_found", func(t *testing.T) {
		rem := newRemote(t, nil)
		_, err := rem.Get(ctx, "ORD-2")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestSwitch(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockSvc := mock.NewMockService(ctrl)
	remoteSvc := mock.NewMockService(ctrl)
	toggle := config.NewToggle(true)

	svc := order.NewSwitch(toggle, mockSvc, remoteSvc)

	mockSvc.EXPECT().Get(gomock.Any(), "a").Return(order.Placed{ID: "a"}, nil)
	_, err := svc.Get(ctx, "a")
	require.NoError(t, err)

	toggle.Set(false)
	remoteSvc.EXPECT().Get(gomock.Any(), "a").Return(order.Placed{}, order.ErrOrderNotFound)
	_, err = svc.Get(ctx, "a")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestHandoff(t *testing.T) {
	ctx := context.Background()
	receipt := order.Receipt{
		Total:        decimal.NewFromInt(3500),
		Subtotal:     decimal.NewFromInt(3300),
		DeliveryFee:  decimal.NewFromInt(200),
		Items:        sampleOrder().Items,
		Address:      "Kenyatta Ave 12",
		City:         "Nakuru",
		Instructions: "Call on arrival",
		TimeSlot:     "2-3 business days",
	}

	t.Run("success_take_clears", func(t *testing.T) {
		h := order.NewHandoff(storage.NewMemory(), nil)
		require.NoError(t, h.Write(ctx, "guest:a", receipt))

		got, err := h.Take(ctx, "guest:a")
		require.NoError(t, err)
		assert.True(t, got.Total.Equal(receipt.Total))
		assert.Equal(t, "Call on arrival", got.Instructions)
		require.Len(t, got.Items, 1)

		_, err = h.Take(ctx, "guest:a")
		assert.ErrorIs(t, err, order.ErrNoReceipt)
	})

	t.Run("success_owners_isolated", func(t *testing.T) {
		h := order.NewHandoff(storage.NewMemory(), nil)
		require.NoError(t, h.Write(ctx, "guest:a", receipt))

		_, err := h.Take(ctx, "guest:b")
		assert.ErrorIs(t, err, order.ErrNoReceipt)
	})

	t.Run("success_corrupt_items_tolerated", func(t *testing.T) {
		st := storage.NewMemory()
		h := order.NewHandoff(st, nil)
		require.NoError(t, h.Write(ctx, "guest:a", receipt))
		require.NoError(t, st.Set(ctx, storage.Key(order.KeyOrderItems, "guest:a"), []byte("[oops")))

		got, err := h.Take(ctx, "guest:a")
		require.NoError(t, err)
		assert.Empty(t, got.Items)
		assert.Equal(t, "Nakuru", got.City)
	})
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mock.MockService, *order.Handoff) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		h := order.NewHandoff(storage.NewMemory(), nil)

		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextKeyOwner, "guest:test")
			c.Next()
		})
		order.RegisterRoutes(r.Group("/api/v1"), order.NewHandler(svc, h))
		return r, svc, h
	}

	get := func(r *gin.Engine, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("success_detail", func(t *testing.T) {
		r, svc, _ := setup(t)
		svc.EXPECT().Get(gomock.Any(), "PL1").Return(order.Placed{ID: "PL1", Number: "PL-000001"}, nil)

		w := get(r, "/api/v1/orders/PL1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "PL-000001")
	})

	t.Run("error_detail_not_found", func(t *testing.T) {
		r, svc, _ := setup(t)
		svc.EXPECT().Get(gomock.Any(), "PL9").Return(order.Placed{}, order.ErrOrderNotFound)

		w := get(r, "/api/v1/orders/PL9")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success_receipt_once", func(t *testing.T) {
		r, _, h := setup(t)
		require.NoError(t, h.Write(context.Background(), "guest:test", order.Receipt{City: "Nakuru", Total: decimal.NewFromInt(900)}))

		w := get(r, "/api/v1/orders/receipt")
		require.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Data order.Receipt `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "Nakuru", env.Data.City)

		w = get(r, "/api/v1/orders/receipt")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
