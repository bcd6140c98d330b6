package stripegw

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"

	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

func (c client) GetInvoice(ctx context.Context, id string) (stripe.Invoice, error) {
	if err := requireID("retrieve", "invoice", id); err != nil {
		return stripe.Invoice{}, err
	}
	params := &stripe.InvoiceParams{}
	params.Context = ctx
	inv, err := c.api.Invoices.Get(id, params)
	if err != nil {
		return stripe.Invoice{}, c.fail("retrieve", "invoice", id, err)
	}
	return value(inv), nil
}

func (c client) ListInvoices(ctx context.Context, filter gw.InvoiceFilter) (stripe.InvoiceList, error) {
	if err := c.check("list", "invoices", filter); err != nil {
		return stripe.InvoiceList{}, err
	}
	params := &stripe.InvoiceListParams{
		Customer:     optString(filter.Customer),
		Subscription: optString(filter.Subscription),
		Status:       optString(filter.Status),
	}
	page(ctx, &params.ListParams, filter.ListFilter)
	it := c.api.Invoices.List(params)
	if err := it.Err(); err != nil {
		return stripe.InvoiceList{}, c.fail("list", "invoices", "", err)
	}
	return value(it.InvoiceList()), nil
}
