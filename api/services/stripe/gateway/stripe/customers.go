package stripegw

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"

	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

// ExternalIDKey is the customer metadata key holding the caller's own identifier.
const ExternalIDKey = "external_id"

func (c client) CreateCustomer(ctx context.Context, in gw.CustomerInput) (stripe.Customer, error) {
	if err := c.check("create", "customer", in); err != nil {
		return stripe.Customer{}, err
	}
	params := &stripe.CustomerParams{
		Email: optString(in.Email),
		Name:  optString(in.Name),
	}
	if len(in.Metadata) > 0 || in.ExternalID != "" {
		params.Metadata = make(map[string]string, len(in.Metadata)+1)
		for k, v := range in.Metadata {
			params.Metadata[k] = v
		}
		if in.ExternalID != "" {
			params.Metadata[ExternalIDKey] = in.ExternalID
		}
	}
	params.Context = ctx
	cust, err := c.api.Customers.New(params)
	if err != nil {
		return stripe.Customer{}, c.fail("create", "customer", "", err)
	}
	return value(cust), nil
}

func (c client) GetCustomer(ctx context.Context, id string) (stripe.Customer, error) {
	if err := requireID("retrieve", "customer", id); err != nil {
		return stripe.Customer{}, err
	}
	params := &stripe.CustomerParams{}
	params.Context = ctx
	cust, err := c.api.Customers.Get(id, params)
	if err != nil {
		return stripe.Customer{}, c.fail("retrieve", "customer", id, err)
	}
	return value(cust), nil
}
