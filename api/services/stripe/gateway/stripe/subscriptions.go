package stripegw

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"

	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

func (c client) CreateSubscription(ctx context.Context, in gw.SubscriptionInput) (stripe.Subscription, error) {
	if err := c.check("create", "subscription", in); err != nil {
		return stripe.Subscription{}, err
	}
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(in.Customer),
		Metadata: in.Metadata,
	}
	for _, it := range in.Items {
		params.Items = append(params.Items, &stripe.SubscriptionItemsParams{
			Price:    stripe.String(it.Price),
			Quantity: optInt64(it.Quantity),
		})
	}
	if in.BillingCycleAnchor > 0 {
		params.BillingCycleAnchor = stripe.Int64(in.BillingCycleAnchor)
	}
	params.Context = ctx
	s, err := c.api.Subscriptions.New(params)
	if err != nil {
		return stripe.Subscription{}, c.fail("create", "subscription", in.Customer, err)
	}
	return value(s), nil
}

func (c client) GetSubscription(ctx context.Context, id string) (stripe.Subscription, error) {
	if err := requireID("retrieve", "subscription", id); err != nil {
		return stripe.Subscription{}, err
	}
	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	s, err := c.api.Subscriptions.Get(id, params)
	if err != nil {
		return stripe.Subscription{}, c.fail("retrieve", "subscription", id, err)
	}
	return value(s), nil
}

func (c client) ListSubscriptions(ctx context.Context, filter gw.SubscriptionFilter) (stripe.SubscriptionList, error) {
	if err := c.check("list", "subscriptions", filter); err != nil {
		return stripe.SubscriptionList{}, err
	}
	params := &stripe.SubscriptionListParams{
		Customer: optString(filter.Customer),
		Price:    optString(filter.Price),
		Status:   optString(filter.Status),
	}
	page(ctx, &params.ListParams, filter.ListFilter)
	it := c.api.Subscriptions.List(params)
	if err := it.Err(); err != nil {
		return stripe.SubscriptionList{}, c.fail("list", "subscriptions", "", err)
	}
	return value(it.SubscriptionList()), nil
}

// UpdateSubscription forwards params as given. The caller's params are not mutated.
func (c client) UpdateSubscription(ctx context.Context, id string, params *stripe.SubscriptionParams) (stripe.Subscription, error) {
	if err := requireID("update", "subscription", id); err != nil {
		return stripe.Subscription{}, err
	}
	p := stripe.SubscriptionParams{}
	if params != nil {
		p = *params
	}
	p.Context = ctx
	s, err := c.api.Subscriptions.Update(id, &p)
	if err != nil {
		return stripe.Subscription{}, c.fail("update", "subscription", id, err)
	}
	return value(s), nil
}

// CancelSubscription cancels immediately.
func (c client) CancelSubscription(ctx context.Context, id string) (stripe.Subscription, error) {
	if err := requireID("cancel", "subscription", id); err != nil {
		return stripe.Subscription{}, err
	}
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx
	s, err := c.api.Subscriptions.Cancel(id, params)
	if err != nil {
		return stripe.Subscription{}, c.fail("cancel", "subscription", id, err)
	}
	return value(s), nil
}

func (c client) AddSubscriptionItem(ctx context.Context, subscriptionID, priceID string, quantity int64) (stripe.SubscriptionItem, error) {
	if err := requireID("add", "subscription item", subscriptionID); err != nil {
		return stripe.SubscriptionItem{}, err
	}
	if err := requireID("add", "subscription item", priceID); err != nil {
		return stripe.SubscriptionItem{}, err
	}
	params := &stripe.SubscriptionItemParams{
		Subscription: stripe.String(subscriptionID),
		Price:        stripe.String(priceID),
		Quantity:     optInt64(quantity),
	}
	params.Context = ctx
	item, err := c.api.SubscriptionItems.New(params)
	if err != nil {
		return stripe.SubscriptionItem{}, c.fail("add", "subscription item", subscriptionID, err)
	}
	return value(item), nil
}
