package stripegw

import (
	"errors"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"github.com/tbeaudouin05/stripe-relay/api/errs"
)

// ConstructWebhookEvent verifies the Stripe-Signature header against the webhook secret
// with the SDK's default tolerance, then decodes the event. No network call is made.
func (c client) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: c.ignoreAPIVersion,
	})
	if err == nil {
		return event, nil
	}
	if isSignatureError(err) {
		c.logger.Warn("webhook signature rejected", zap.Error(err))
		return stripe.Event{}, errs.Verification(err)
	}
	c.logger.Warn("webhook payload rejected", zap.Error(err))
	return stripe.Event{}, errs.Invalid("construct", "webhook event", "", err)
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}
