package stripegw

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"

	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

// CreateCheckoutSession starts a hosted purchase flow. Mode defaults to subscription
// and metadata to an empty map.
func (c client) CreateCheckoutSession(ctx context.Context, in gw.CheckoutSessionInput) (stripe.CheckoutSession, error) {
	if err := c.check("create", "checkout session", in); err != nil {
		return stripe.CheckoutSession{}, err
	}
	mode := in.Mode
	if mode == "" {
		mode = string(stripe.CheckoutSessionModeSubscription)
	}
	metadata := in.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	params := &stripe.CheckoutSessionParams{
		SuccessURL:        stripe.String(in.SuccessURL),
		CancelURL:         optString(in.CancelURL),
		Customer:          optString(in.Customer),
		ClientReferenceID: optString(in.ClientReferenceID),
		Mode:              stripe.String(mode),
		Metadata:          metadata,
	}
	for _, li := range in.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(li.Price),
			Quantity: optInt64(li.Quantity),
		})
	}
	params.Context = ctx
	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return stripe.CheckoutSession{}, c.fail("create", "checkout session", in.Customer, err)
	}
	return value(s), nil
}

func (c client) GetCheckoutSession(ctx context.Context, id string) (stripe.CheckoutSession, error) {
	if err := requireID("retrieve", "checkout session", id); err != nil {
		return stripe.CheckoutSession{}, err
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := c.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return stripe.CheckoutSession{}, c.fail("retrieve", "checkout session", id, err)
	}
	return value(s), nil
}

func (c client) ExpireCheckoutSession(ctx context.Context, id string) (stripe.CheckoutSession, error) {
	if err := requireID("expire", "checkout session", id); err != nil {
		return stripe.CheckoutSession{}, err
	}
	params := &stripe.CheckoutSessionExpireParams{}
	params.Context = ctx
	s, err := c.api.CheckoutSessions.Expire(id, params)
	if err != nil {
		return stripe.CheckoutSession{}, c.fail("expire", "checkout session", id, err)
	}
	return value(s), nil
}
