package app

import (
	"encoding/json"
	"strings"

	stripe "github.com/stripe/stripe-go/v76"
)

// eventObjects maps an event type prefix to the provider struct its data object decodes into.
// Longer prefixes come first so customer.subscription.* wins over customer.*.
var eventObjects = []struct {
	prefix string
	alloc  func() any
}{
	{"checkout.session.", func() any { return &stripe.CheckoutSession{} }},
	{"customer.subscription.", func() any { return &stripe.Subscription{} }},
	{"customer.created", func() any { return &stripe.Customer{} }},
	{"customer.updated", func() any { return &stripe.Customer{} }},
	{"customer.deleted", func() any { return &stripe.Customer{} }},
	{"invoice.", func() any { return &stripe.Invoice{} }},
	{"product.", func() any { return &stripe.Product{} }},
	{"price.", func() any { return &stripe.Price{} }},
	{"coupon.", func() any { return &stripe.Coupon{} }},
	{"promotion_code.", func() any { return &stripe.PromotionCode{} }},
}

// decodeObject returns the event's data object as a typed provider struct, or the raw
// map for event families without one.
func decodeObject(event stripe.Event) (any, error) {
	if event.ID == "" || event.Type == "" {
		return nil, badEvent(event, "event id or type missing")
	}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, badEvent(event, "event has no data object")
	}
	typ := string(event.Type)
	for _, e := range eventObjects {
		if !strings.HasPrefix(typ, e.prefix) {
			continue
		}
		obj := e.alloc()
		if err := json.Unmarshal(event.Data.Raw, obj); err != nil {
			return nil, badEvent(event, "decoding "+typ+" object: "+err.Error())
		}
		return obj, nil
	}
	return event.Data.Object, nil
}
