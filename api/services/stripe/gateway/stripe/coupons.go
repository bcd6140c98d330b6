package stripegw

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"

	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

func (c client) CreateCoupon(ctx context.Context, in gw.CouponInput) (stripe.Coupon, error) {
	if err := c.check("create", "coupon", in); err != nil {
		return stripe.Coupon{}, err
	}
	params := &stripe.CouponParams{
		ID:               optString(in.ID),
		Name:             optString(in.Name),
		Duration:         stripe.String(in.Duration),
		DurationInMonths: optInt64(in.DurationInMonths),
		AmountOff:        optInt64(in.AmountOff),
		Currency:         optString(in.Currency),
		MaxRedemptions:   optInt64(in.MaxRedemptions),
		RedeemBy:         optInt64(in.RedeemBy),
		Metadata:         in.Metadata,
	}
	if in.PercentOff > 0 {
		params.PercentOff = stripe.Float64(in.PercentOff)
	}
	params.Context = ctx
	cp, err := c.api.Coupons.New(params)
	if err != nil {
		return stripe.Coupon{}, c.fail("create", "coupon", in.ID, err)
	}
	return value(cp), nil
}

func (c client) GetCoupon(ctx context.Context, id string) (stripe.Coupon, error) {
	if err := requireID("retrieve", "coupon", id); err != nil {
		return stripe.Coupon{}, err
	}
	params := &stripe.CouponParams{}
	params.Context = ctx
	cp, err := c.api.Coupons.Get(id, params)
	if err != nil {
		return stripe.Coupon{}, c.fail("retrieve", "coupon", id, err)
	}
	return value(cp), nil
}

func (c client) UpdateCoupon(ctx context.Context, id string, params *stripe.CouponParams) (stripe.Coupon, error) {
	if err := requireID("update", "coupon", id); err != nil {
		return stripe.Coupon{}, err
	}
	p := stripe.CouponParams{}
	if params != nil {
		p = *params
	}
	p.Context = ctx
	cp, err := c.api.Coupons.Update(id, &p)
	if err != nil {
		return stripe.Coupon{}, c.fail("update", "coupon", id, err)
	}
	return value(cp), nil
}

func (c client) DeleteCoupon(ctx context.Context, id string) (stripe.Coupon, error) {
	if err := requireID("delete", "coupon", id); err != nil {
		return stripe.Coupon{}, err
	}
	params := &stripe.CouponParams{}
	params.Context = ctx
	cp, err := c.api.Coupons.Del(id, params)
	if err != nil {
		return stripe.Coupon{}, c.fail("delete", "coupon", id, err)
	}
	return value(cp), nil
}

func (c client) ListCoupons(ctx context.Context, filter gw.ListFilter) (stripe.CouponList, error) {
	if err := c.check("list", "coupons", filter); err != nil {
		return stripe.CouponList{}, err
	}
	params := &stripe.CouponListParams{}
	page(ctx, &params.ListParams, filter)
	it := c.api.Coupons.List(params)
	if err := it.Err(); err != nil {
		return stripe.CouponList{}, c.fail("list", "coupons", "", err)
	}
	return value(it.CouponList()), nil
}
