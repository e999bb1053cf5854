package consumer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/CodeWithFin/platypus-website/internal/email"
	"github.com/CodeWithFin/platypus-website/internal/events"
)

func handleOrderPlaced(ctx context.Context, payload []byte, emailService email.Service) error {
	var data events.OrderPlaced
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Sending confirmation for order: %s", data.OrderID)

	err := emailService.SendOrderConfirmation(ctx, email.OrderConfirmation{
		To:               data.Email,
		CustomerName:     data.CustomerName,
		OrderNumber:      data.OrderNumber,
		Total:            data.Total,
		DeliveryFee:      data.DeliveryFee,
		ItemCount:        data.ItemCount,
		City:             data.City,
		PaymentReference: data.PaymentReference,
	})
	if err != nil {
		return err
	}

	log.Printf("[CONSUMER] Confirmation sent for order: %s", data.OrderID)
	return nil
}
