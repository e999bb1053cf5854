package checkout

import (
	"strings"

	"github.com/CodeWithFin/platypus-website/internal/order"
	"github.com/CodeWithFin/platypus-website/internal/pkg/validation"
	"github.com/CodeWithFin/platypus-website/internal/pricing"
)

const (
	defaultCity   = "Nairobi"
	defaultCounty = "Nairobi"
)

type CustomerInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,emailshape"`
	Phone     string `json:"phone" validate:"required,kephone"`
}

type DeliveryInfo struct {
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	County       string `json:"county"`
	Instructions string `json:"instructions"`
	Option       string `json:"option"`
}

type PaymentInfo struct {
	Method string `json:"method"`
	Phone  string `json:"mpesaPhone"`
}

var customerMessages = map[string]string{
	"firstName.required": "First name is required",
	"lastName.required":  "Last name is required",
	"email.required":     "Email is required",
	"email.emailshape":   "Email is invalid",
	"phone.required":     "Phone number is required",
	"phone.kephone":      "Please enter a valid Kenyan phone number",
}

var deliveryMessages = map[string]string{
	"address.required": "Address is required",
	"city.required":    "City is required",
}

func (c CustomerInfo) normalize() CustomerInfo {
	return CustomerInfo{
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Email:     strings.TrimSpace(c.Email),
		Phone:     strings.TrimSpace(c.Phone),
	}
}

func (c CustomerInfo) validate() FieldErrors {
	return fieldErrors(validation.Validator().Struct(c.normalize()), customerMessages)
}

func (d DeliveryInfo) normalize() DeliveryInfo {
	out := DeliveryInfo{
		Address:      strings.TrimSpace(d.Address),
		City:         strings.TrimSpace(d.City),
		County:       strings.TrimSpace(d.County),
		Instructions: strings.TrimSpace(d.Instructions),
		Option:       strings.TrimSpace(d.Option),
	}
	if out.Option == "" {
		out.Option = pricing.DefaultDeliveryOption
	}
	return out
}

func (d DeliveryInfo) validate() FieldErrors {
	d = d.normalize()
	errs := fieldErrors(validation.Validator().Struct(d), deliveryMessages)
	if _, ok := pricing.LookupDeliveryOption(d.Option); !ok {
		if errs == nil {
			errs = FieldErrors{}
		}
		errs["option"] = "Please select a delivery option"
	}
	return errs
}

func (p PaymentInfo) normalize() PaymentInfo {
	out := PaymentInfo{
		Method: strings.ToLower(strings.TrimSpace(p.Method)),
		Phone:  strings.TrimSpace(p.Phone),
	}
	if out.Method == "" {
		out.Method = order.PaymentMethodMpesa
	}
	return out
}

// validate accepts M-Pesa only. Card is a known method that cannot be
// used yet.
func (p PaymentInfo) validate() FieldErrors {
	p = p.normalize()
	switch p.Method {
	case order.PaymentMethodMpesa:
		if p.Phone == "" {
			return FieldErrors{"mpesaPhone": "M-Pesa phone number is required"}
		}
		if err := validation.Validator().Var(p.Phone, validation.TagKenyanPhone); err != nil {
			return FieldErrors{"mpesaPhone": "Please enter a valid M-Pesa phone number"}
		}
		return nil
	case order.PaymentMethodCard:
		return FieldErrors{"method": "Card payments are not available yet"}
	default:
		return FieldErrors{"method": "Please select a payment method"}
	}
}

func fieldErrors(err error, messages map[string]string) FieldErrors {
	if err == nil {
		return nil
	}
	errs := validation.FieldErrors(err, messages)
	if len(errs) == 0 {
		return FieldErrors{"form": err.Error()}
	}
	return FieldErrors(errs)
}

// changedFields lists the json names whose values differ.
func changedFields(before, after map[string]string) []string {
	var out []string
	for k, v := range after {
		if before[k] != v {
			out = append(out, k)
		}
	}
	return out
}

func (c CustomerInfo) fields() map[string]string {
	return map[string]string{"firstName": c.FirstName, "lastName": c.LastName, "email": c.Email, "phone": c.Phone}
}

func (d DeliveryInfo) fields() map[string]string {
	return map[string]string{"address": d.Address, "city": d.City, "county": d.County, "instructions": d.Instructions, "option": d.Option}
}

func (p PaymentInfo) fields() map[string]string {
	return map[string]string{"method": p.Method, "mpesaPhone": p.Phone}
}
