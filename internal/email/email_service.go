package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/pricing"

	"github.com/shopspring/decimal"
)

const (
	defaultFrom    = "onboarding@resend.dev"
	defaultBaseURL = "https://api.resend.com"
)

type OrderConfirmation struct {
	To               string
	CustomerName     string
	OrderNumber      string
	Total            decimal.Decimal
	DeliveryFee      decimal.Decimal
	ItemCount        int
	City             string
	PaymentReference string
}

//go:generate mockgen -source=email_service.go -destination=../mock/email/email_service_mock.go -package=mock
type Service interface {
	SendOrderConfirmation(ctx context.Context, c OrderConfirmation) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
	client    *http.Client
}

type ResendOptions struct {
	APIKey    string
	FromEmail string
	// BaseURL is only overridden in tests.
	BaseURL string
}

func NewResendService(opts ResendOptions) (Service, error) {
	apiKey := strings.Trim(opts.APIKey, "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(strings.Trim(opts.FromEmail, "\""))
	if from == "" {
		from = defaultFrom
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendOrderConfirmation(ctx context.Context, c OrderConfirmation) error {
	if strings.TrimSpace(c.To) == "" {
		return fmt.Errorf("order confirmation has no recipient")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(c.CustomerName))
	fmt.Fprintf(&b, "<p>Thank you for shopping with Platypus. Your order <strong>%s</strong> has been received.</p>",
		html.EscapeString(c.OrderNumber))
	fmt.Fprintf(&b, "<p>Items: %d<br>Delivery: %s<br>Total: %s</p>",
		c.ItemCount, pricing.FormatPrice(c.DeliveryFee), pricing.FormatPrice(c.Total))
	if c.City != "" {
		fmt.Fprintf(&b, "<p>We will deliver to %s.</p>", html.EscapeString(c.City))
	}
	if c.PaymentReference != "" {
		fmt.Fprintf(&b, "<p>M-Pesa reference: %s</p>", html.EscapeString(c.PaymentReference))
	}

	return s.send(ctx, c.To, "Your Platypus order "+c.OrderNumber, b.String())
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > 500 {
			msg = msg[:500]
		}
		if msg == "" {
			return fmt.Errorf("resend API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

type noopService struct{}

func (s *noopService) SendOrderConfirmation(_ context.Context, _ OrderConfirmation) error {
	return nil
}
