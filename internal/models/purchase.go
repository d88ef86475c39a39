package models

// RateType determines how an add-on is charged.
type RateType string

const (
	RateFree         RateType = "free"
	RateFixedPrice   RateType = "fixed_price"
	RatePerUnitPrice RateType = "per_unit_price"
)

// UnitType is the billing unit for per-unit pricing.
type UnitType string

const (
	UnitPerDay  UnitType = "per_day"
	UnitPerHour UnitType = "per_hour"
	UnitPerItem UnitType = "per_item"
)

// PurchaseSettings holds the pricing configuration of an add-on item.
type PurchaseSettings struct {
	RateType RateType `json:"rate_type"`
	Price    float64  `json:"price"`

	// UnitType is only relevant for per_unit_price rates.
	UnitType UnitType `json:"unit_type,omitempty"`

	SetMinimumPrice      bool    `json:"set_minimum_price,omitempty"`
	MinimumPrice         float64 `json:"minimum_price,omitempty"`
	DaysCoveredByMinimum int     `json:"days_covered_by_minimum,omitempty"`
}

// Normalize enforces the rate-type transition rule: a free rate always has
// a zero price, applied in the same step as the rate-type change so the
// operator can never forget it.
func (p *PurchaseSettings) Normalize() {
	if p.RateType == RateFree {
		p.Price = 0
	}
}

// Validate checks rate type, unit type and price bounds.
func (p *PurchaseSettings) Validate() error {
	switch p.RateType {
	case RateFree, RateFixedPrice, RatePerUnitPrice:
	default:
		return &ValidationError{Field: "purchase_settings.rate_type", Message: "rate_type must be free, fixed_price or per_unit_price"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "purchase_settings.price", Message: "price must not be negative"}
	}
	if p.UnitType != "" {
		switch p.UnitType {
		case UnitPerDay, UnitPerHour, UnitPerItem:
		default:
			return &ValidationError{Field: "purchase_settings.unit_type", Message: "unit_type must be per_day, per_hour or per_item"}
		}
	}
	if p.MinimumPrice < 0 {
		return &ValidationError{Field: "purchase_settings.minimum_price", Message: "minimum_price must not be negative"}
	}
	return nil
}
