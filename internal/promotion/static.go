package promotion

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func DefaultPromotions() []Promotion {
	return []Promotion{
		{Code: "WELCOME10", DiscountPercent: decimal.NewFromInt(10), Description: "10% off your first order"},
		{Code: "PLATYPUS15", DiscountPercent: decimal.NewFromInt(15), Description: "15% off for loyal customers"},
		{Code: "WEEKEND20", DiscountPercent: decimal.NewFromInt(20), Description: "20% off weekend special"},
	}
}

// Static is the fixed registry used when no promotions backend is reachable.
type Static struct {
	codes map[string]Promotion
}

func NewStatic(promos ...Promotion) *Static {
	if len(promos) == 0 {
		promos = DefaultPromotions()
	}
	codes := make(map[string]Promotion, len(promos))
	for _, p := range promos {
		p.Code = Normalize(p.Code)
		codes[p.Code] = p
	}
	return &Static{codes: codes}
}

func (s *Static) Lookup(_ context.Context, code string) (Promotion, error) {
	p, ok := s.codes[Normalize(code)]
	if !ok {
		return Promotion{}, ErrInvalidPromoCode
	}
	return p, nil
}

// ParsePromoCodes reads "CODE:PCT:description;CODE:PCT:description".
// The description may be omitted.
func ParsePromoCodes(raw string) ([]Promotion, error) {
	var out []Promotion
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("promo code %q: want CODE:PCT[:description]", entry)
		}

		code := Normalize(parts[0])
		if code == "" {
			return nil, fmt.Errorf("promo code %q: empty code", entry)
		}
		pct, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("promo code %q: %w", entry, err)
		}
		if !ValidPercent(pct) {
			return nil, fmt.Errorf("promo code %q: percent must be in (0, 100]", entry)
		}

		p := Promotion{Code: code, DiscountPercent: pct}
		if len(parts) == 3 {
			p.Description = strings.TrimSpace(parts[2])
		}
		if p.Description == "" {
			p.Description = fmt.Sprintf("%s%% off", pct.String())
		}
		out = append(out, p)
	}
	return out, nil
}
