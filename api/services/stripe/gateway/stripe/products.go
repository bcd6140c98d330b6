package stripegw

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"

	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

func (c client) ListProducts(ctx context.Context, filter gw.ProductFilter) (stripe.ProductList, error) {
	if err := c.check("list", "products", filter); err != nil {
		return stripe.ProductList{}, err
	}
	params := &stripe.ProductListParams{Active: filter.Active}
	page(ctx, &params.ListParams, filter.ListFilter)
	it := c.api.Products.List(params)
	if err := it.Err(); err != nil {
		return stripe.ProductList{}, c.fail("list", "products", "", err)
	}
	return value(it.ProductList()), nil
}

func (c client) GetProduct(ctx context.Context, id string) (stripe.Product, error) {
	if err := requireID("retrieve", "product", id); err != nil {
		return stripe.Product{}, err
	}
	params := &stripe.ProductParams{}
	params.Context = ctx
	p, err := c.api.Products.Get(id, params)
	if err != nil {
		return stripe.Product{}, c.fail("retrieve", "product", id, err)
	}
	return value(p), nil
}
