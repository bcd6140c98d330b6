package app

import stripe "github.com/stripe/stripe-go/v76"

type InvalidityType string

const (
	InvalidityTypeCancelled InvalidityType = "cancelled"
	InvalidityTypeOther     InvalidityType = "other"
)

// WebhookReceipt is the outcome of one accepted webhook delivery.
// Object holds the typed provider struct for known event families, e.g.
// *stripe.Subscription for customer.subscription.*, and the raw map otherwise.
type WebhookReceipt struct {
	Event     stripe.Event `json:"event"`
	Object    any          `json:"object"`
	Duplicate bool         `json:"duplicate"`
}

// SubscriptionStatus summarizes a subscription for access checks.
// HTTP layer will translate this into JSON.
type SubscriptionStatus struct {
	SubscriptionID      string                    `json:"subscriptionId"`
	CustomerID          string                    `json:"customerId"`
	StripeCustomerEmail string                    `json:"stripeCustomerEmail"`
	Status              stripe.SubscriptionStatus `json:"status"`
	IsValidSubscription bool                      `json:"isValidSubscription"`
	InvalidityType      InvalidityType            `json:"invalidityType,omitempty"`
	CurrentPeriodEnd    int64                     `json:"currentPeriodEnd"`
	CancelAt            int64                     `json:"cancelAt,omitempty"`
}
