package stripegw

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"

	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

func (c client) ListPrices(ctx context.Context, filter gw.PriceFilter) (stripe.PriceList, error) {
	if err := c.check("list", "prices", filter); err != nil {
		return stripe.PriceList{}, err
	}
	params := &stripe.PriceListParams{
		Active:  filter.Active,
		Product: optString(filter.Product),
	}
	page(ctx, &params.ListParams, filter.ListFilter)
	it := c.api.Prices.List(params)
	if err := it.Err(); err != nil {
		return stripe.PriceList{}, c.fail("list", "prices", "", err)
	}
	return value(it.PriceList()), nil
}

func (c client) GetPrice(ctx context.Context, id string) (stripe.Price, error) {
	if err := requireID("retrieve", "price", id); err != nil {
		return stripe.Price{}, err
	}
	params := &stripe.PriceParams{}
	params.Context = ctx
	p, err := c.api.Prices.Get(id, params)
	if err != nil {
		return stripe.Price{}, c.fail("retrieve", "price", id, err)
	}
	return value(p), nil
}
