package app

import (
	"time"

	stripe "github.com/stripe/stripe-go/v76"
)

// IsSubscriptionCancelled returns true if the subscription is cancelled or past its cancel timestamp
func IsSubscriptionCancelled(sub stripe.Subscription) bool {
	return isCancelledAt(sub, time.Now())
}

func isCancelledAt(sub stripe.Subscription, now time.Time) bool {
	if sub.CancelAt != 0 && now.Unix() > sub.CancelAt {
		return true
	}
	return sub.Status == stripe.SubscriptionStatusCanceled
}
