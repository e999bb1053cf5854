package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/CodeWithFin/platypus-website/internal/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Hand-off keys, namespaced per owner.
const (
	KeyOrderTotal           = "orderTotal"
	KeyOrderSubtotal        = "orderSubtotal"
	KeyDeliveryFee          = "deliveryFee"
	KeyOrderItems           = "orderItems"
	KeyDeliveryAddress      = "deliveryAddress"
	KeyDeliveryCity         = "deliveryCity"
	KeyDeliveryInstructions = "deliveryInstructions"
	KeyDeliveryTimeSlot     = "deliveryTimeSlot"
)

var handoffKeys = []string{
	KeyOrderTotal,
	KeyOrderSubtotal,
	KeyDeliveryFee,
	KeyOrderItems,
	KeyDeliveryAddress,
	KeyDeliveryCity,
	KeyDeliveryInstructions,
	KeyDeliveryTimeSlot,
}

// Receipt is what the order confirmation page shows. It is best effort and
// never authoritative: the order service owns the real record.
type Receipt struct {
	Total        decimal.Decimal `json:"total"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	Items        []Item          `json:"items"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Instructions string          `json:"instructions"`
	TimeSlot     string          `json:"timeSlot"`
}

// Handoff passes the last placed order from checkout to the receipt view.
type Handoff struct {
	storage storage.Storage
	logger  *zap.Logger
}

func NewHandoff(st storage.Storage, logger *zap.Logger) *Handoff {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handoff{storage: st, logger: logger.Named("order.handoff")}
}

// Write stores every field of r for owner. It stops at the first failed
// write.
func (h *Handoff) Write(ctx context.Context, owner string, r Receipt) error {
	items, err := json.Marshal(r.Items)
	if err != nil {
		return err
	}

	values := map[string][]byte{
		KeyOrderTotal:           []byte(r.Total.String()),
		KeyOrderSubtotal:        []byte(r.Subtotal.String()),
		KeyDeliveryFee:          []byte(r.DeliveryFee.String()),
		KeyOrderItems:           items,
		KeyDeliveryAddress:      []byte(r.Address),
		KeyDeliveryCity:         []byte(r.City),
		KeyDeliveryInstructions: []byte(r.Instructions),
		KeyDeliveryTimeSlot:     []byte(r.TimeSlot),
	}
	for _, k := range handoffKeys {
		if err := h.storage.Set(ctx, storage.Key(k, owner), values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Take reads and clears the owner's hand-off. Missing or unreadable fields
// are left at their zero value; ErrNoReceipt means nothing was there.
func (h *Handoff) Take(ctx context.Context, owner string) (Receipt, error) {
	logger := h.logger.With(zap.String("owner", owner))

	var (
		r     Receipt
		found bool
		keys  = make([]string, 0, len(handoffKeys))
	)
	for _, k := range handoffKeys {
		key := storage.Key(k, owner)
		keys = append(keys, key)

		raw, err := h.storage.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				logger.Warn("hand-off read failed", zap.String("key", k), zap.Error(err))
			}
			continue
		}
		found = true

		switch k {
		case KeyOrderTotal:
			r.Total = parseAmount(raw)
		case KeyOrderSubtotal:
			r.Subtotal = parseAmount(raw)
		case KeyDeliveryFee:
			r.DeliveryFee = parseAmount(raw)
		case KeyOrderItems:
			if err := json.Unmarshal(raw, &r.Items); err != nil {
				logger.Warn("hand-off items corrupt", zap.Error(err))
				r.Items = nil
			}
		case KeyDeliveryAddress:
			r.Address = string(raw)
		case KeyDeliveryCity:
			r.City = string(raw)
		case KeyDeliveryInstructions:
			r.Instructions = string(raw)
		case KeyDeliveryTimeSlot:
			r.TimeSlot = string(raw)
		}
	}

	if err := h.storage.Delete(ctx, keys...); err != nil {
		logger.Warn("hand-off clear failed", zap.Error(err))
	}
	if !found {
		return Receipt{}, ErrNoReceipt
	}
	if r.Items == nil {
		r.Items = []Item{}
	}
	return r, nil
}

func parseAmount(raw []byte) decimal.Decimal {
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
