package gateway

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway StripeGateway

// StripeGateway is one method per Stripe API operation the app relies on.
// Methods return values (not pointers) to respect the project's preference
// to avoid pointer types in public interfaces. Every failure is an *errs.Error.
type StripeGateway interface {
	ListProducts(ctx context.Context, filter ProductFilter) (stripe.ProductList, error)
	GetProduct(ctx context.Context, id string) (stripe.Product, error)

	ListPrices(ctx context.Context, filter PriceFilter) (stripe.PriceList, error)
	GetPrice(ctx context.Context, id string) (stripe.Price, error)

	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (stripe.CheckoutSession, error)
	ExpireCheckoutSession(ctx context.Context, id string) (stripe.CheckoutSession, error)

	CreateCustomer(ctx context.Context, in CustomerInput) (stripe.Customer, error)
	GetCustomer(ctx context.Context, id string) (stripe.Customer, error)

	CreateSubscription(ctx context.Context, in SubscriptionInput) (stripe.Subscription, error)
	GetSubscription(ctx context.Context, id string) (stripe.Subscription, error)
	ListSubscriptions(ctx context.Context, filter SubscriptionFilter) (stripe.SubscriptionList, error)
	UpdateSubscription(ctx context.Context, id string, params *stripe.SubscriptionParams) (stripe.Subscription, error)
	CancelSubscription(ctx context.Context, id string) (stripe.Subscription, error)
	AddSubscriptionItem(ctx context.Context, subscriptionID, priceID string, quantity int64) (stripe.SubscriptionItem, error)

	CreateCoupon(ctx context.Context, in CouponInput) (stripe.Coupon, error)
	GetCoupon(ctx context.Context, id string) (stripe.Coupon, error)
	UpdateCoupon(ctx context.Context, id string, params *stripe.CouponParams) (stripe.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) (stripe.Coupon, error)
	ListCoupons(ctx context.Context, filter ListFilter) (stripe.CouponList, error)

	CreatePromotionCode(ctx context.Context, in PromotionCodeInput) (stripe.PromotionCode, error)
	GetPromotionCode(ctx context.Context, id string) (stripe.PromotionCode, error)
	UpdatePromotionCode(ctx context.Context, id string, params *stripe.PromotionCodeParams) (stripe.PromotionCode, error)
	ListPromotionCodes(ctx context.Context, filter PromotionCodeFilter) (stripe.PromotionCodeList, error)

	GetInvoice(ctx context.Context, id string) (stripe.Invoice, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) (stripe.InvoiceList, error)

	// ConstructWebhookEvent verifies payload against the signing secret and parses it.
	ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error)
}
