package gateway

// Inputs carry only what the matching Stripe call needs. The validate tags encode
// what Stripe itself would reject, so a bad call fails locally with no round trip.

// ListFilter bounds a list call to one page of at most Limit items (Stripe default when 0).
type ListFilter struct {
	Limit int64 `json:"limit,omitempty" validate:"gte=0,lte=100"`
}

type ProductFilter struct {
	ListFilter
	Active *bool `json:"active,omitempty"`
}

type PriceFilter struct {
	ListFilter
	Product string `json:"product,omitempty"`
	Active  *bool  `json:"active,omitempty"`
}

type SubscriptionFilter struct {
	ListFilter
	Customer string `json:"customer,omitempty"`
	Price    string `json:"price,omitempty"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=active all canceled ended incomplete incomplete_expired past_due paused trialing unpaid"`
}

type PromotionCodeFilter struct {
	ListFilter
	Coupon string `json:"coupon,omitempty"`
	Code   string `json:"code,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

type InvoiceFilter struct {
	ListFilter
	Customer     string `json:"customer,omitempty"`
	Subscription string `json:"subscription,omitempty"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=draft open paid uncollectible void"`
}

// LineItem is one price/quantity pair of a checkout session or subscription.
type LineItem struct {
	Price    string `json:"price" validate:"required"`
	Quantity int64  `json:"quantity" validate:"gte=0"`
}

// CheckoutSessionInput creates one purchase attempt. Mode defaults to "subscription".
type CheckoutSessionInput struct {
	SuccessURL        string            `json:"success_url" validate:"required,url"`
	CancelURL         string            `json:"cancel_url" validate:"omitempty,url"`
	LineItems         []LineItem        `json:"line_items" validate:"required,min=1,dive"`
	Mode              string            `json:"mode" validate:"omitempty,oneof=payment setup subscription"`
	Metadata          map[string]string `json:"metadata"`
	Customer          string            `json:"customer"`
	ClientReferenceID string            `json:"client_reference_id"`
}

// CustomerInput creates a customer. ExternalID is stored as metadata["external_id"]
// because Stripe assigns customer ids itself.
type CustomerInput struct {
	ExternalID string            `json:"external_id"`
	Email      string            `json:"email" validate:"omitempty,email"`
	Name       string            `json:"name"`
	Metadata   map[string]string `json:"metadata"`
}

// SubscriptionInput creates a subscription. BillingCycleAnchor is a unix timestamp,
// left to Stripe's default when 0.
type SubscriptionInput struct {
	Customer           string            `json:"customer" validate:"required"`
	Items              []LineItem        `json:"items" validate:"required,min=1,dive"`
	BillingCycleAnchor int64             `json:"billing_cycle_anchor" validate:"gte=0"`
	Metadata           map[string]string `json:"metadata"`
}

// CouponInput creates a coupon. Exactly one of PercentOff or AmountOff must be set.
type CouponInput struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Duration         string            `json:"duration" validate:"required,oneof=forever once repeating"`
	DurationInMonths int64             `json:"duration_in_months" validate:"required_if=Duration repeating,gte=0"`
	PercentOff       float64           `json:"percent_off" validate:"required_without=AmountOff,excluded_with=AmountOff,gte=0,lte=100"`
	AmountOff        int64             `json:"amount_off" validate:"required_without=PercentOff,gte=0"`
	Currency         string            `json:"currency" validate:"required_with=AmountOff"`
	MaxRedemptions   int64             `json:"max_redemptions" validate:"gte=0"`
	RedeemBy         int64             `json:"redeem_by" validate:"gte=0"`
	Metadata         map[string]string `json:"metadata"`
}

// PromotionCodeInput creates a customer-facing code for an existing coupon.
type PromotionCodeInput struct {
	Coupon         string            `json:"coupon" validate:"required"`
	Code           string            `json:"code"`
	Customer       string            `json:"customer"`
	Active         *bool             `json:"active,omitempty"`
	MaxRedemptions int64             `json:"max_redemptions" validate:"gte=0"`
	ExpiresAt      int64             `json:"expires_at" validate:"gte=0"`
	Metadata       map[string]string `json:"metadata"`
}
