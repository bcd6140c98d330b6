package stripegw

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"

	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

func (c client) CreatePromotionCode(ctx context.Context, in gw.PromotionCodeInput) (stripe.PromotionCode, error) {
	if err := c.check("create", "promotion code", in); err != nil {
		return stripe.PromotionCode{}, err
	}
	params := &stripe.PromotionCodeParams{
		Coupon:         stripe.String(in.Coupon),
		Code:           optString(in.Code),
		Customer:       optString(in.Customer),
		Active:         in.Active,
		MaxRedemptions: optInt64(in.MaxRedemptions),
		ExpiresAt:      optInt64(in.ExpiresAt),
		Metadata:       in.Metadata,
	}
	params.Context = ctx
	pc, err := c.api.PromotionCodes.New(params)
	if err != nil {
		return stripe.PromotionCode{}, c.fail("create", "promotion code", in.Coupon, err)
	}
	return value(pc), nil
}

func (c client) GetPromotionCode(ctx context.Context, id string) (stripe.PromotionCode, error) {
	if err := requireID("retrieve", "promotion code", id); err != nil {
		return stripe.PromotionCode{}, err
	}
	params := &stripe.PromotionCodeParams{}
	params.Context = ctx
	pc, err := c.api.PromotionCodes.Get(id, params)
	if err != nil {
		return stripe.PromotionCode{}, c.fail("retrieve", "promotion code", id, err)
	}
	return value(pc), nil
}

func (c client) UpdatePromotionCode(ctx context.Context, id string, params *stripe.PromotionCodeParams) (stripe.PromotionCode, error) {
	if err := requireID("update", "promotion code", id); err != nil {
		return stripe.PromotionCode{}, err
	}
	p := stripe.PromotionCodeParams{}
	if params != nil {
		p = *params
	}
	p.Context = ctx
	pc, err := c.api.PromotionCodes.Update(id, &p)
	if err != nil {
		return stripe.PromotionCode{}, c.fail("update", "promotion code", id, err)
	}
	return value(pc), nil
}

func (c client) ListPromotionCodes(ctx context.Context, filter gw.PromotionCodeFilter) (stripe.PromotionCodeList, error) {
	if err := c.check("list", "promotion codes", filter); err != nil {
		return stripe.PromotionCodeList{}, err
	}
	params := &stripe.PromotionCodeListParams{
		Coupon: optString(filter.Coupon),
		Code:   optString(filter.Code),
		Active: filter.Active,
	}
	page(ctx, &params.ListParams, filter.ListFilter)
	it := c.api.PromotionCodes.List(params)
	if err := it.Err(); err != nil {
		return stripe.PromotionCodeList{}, c.fail("list", "promotion codes", "", err)
	}
	return value(it.PromotionCodeList()), nil
}
