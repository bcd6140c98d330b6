package app

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// VerifySubscription retrieves the subscription and its customer and reports whether
// the subscription currently grants access.
func (s serviceImpl) VerifySubscription(ctx context.Context, subscriptionID string) (SubscriptionStatus, error) {
	sub, err := s.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return SubscriptionStatus{}, err
	}
	res := SubscriptionStatus{
		SubscriptionID:   sub.ID,
		Status:           sub.Status,
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
		CancelAt:         sub.CancelAt,
	}

	// the subscription only carries the customer id unless expanded
	if sub.Customer != nil && sub.Customer.ID != "" {
		res.CustomerID = sub.Customer.ID
		res.StripeCustomerEmail = sub.Customer.Email
		if res.StripeCustomerEmail == "" {
			cust, err := s.GetCustomer(ctx, sub.Customer.ID)
			if err != nil {
				return SubscriptionStatus{}, err
			}
			res.StripeCustomerEmail = cust.Email
		}
	}

	switch {
	case IsSubscriptionCancelled(sub):
		res.InvalidityType = InvalidityTypeCancelled
	case sub.Status != stripe.SubscriptionStatusActive && sub.Status != stripe.SubscriptionStatusTrialing:
		res.InvalidityType = InvalidityTypeOther
	default:
		res.IsValidSubscription = true
	}

	s.logger.Debug("subscription verified",
		zap.String("subscription_id", res.SubscriptionID),
		zap.String("status", string(res.Status)),
		zap.Bool("valid", res.IsValidSubscription))
	return res, nil
}
