package app

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"github.com/tbeaudouin05/stripe-relay/api/errs"
	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

// Service is the Stripe domain as seen by the transport layer: every gateway
// operation as a pass-through, plus webhook intake and a subscription summary.
type Service interface {
	gw.StripeGateway

	ReceiveWebhook(ctx context.Context, payload []byte, signature string) (WebhookReceipt, error)
	VerifySubscription(ctx context.Context, subscriptionID string) (SubscriptionStatus, error)
}

// EventJournal records delivered webhook events. Record reports false when the
// event id was already recorded.
type EventJournal interface {
	Record(ctx context.Context, event stripe.Event) (bool, error)
}

type serviceImpl struct {
	gw.StripeGateway
	journal EventJournal
	logger  *zap.Logger
}

// NewService wires the gateway with an optional journal (nil disables duplicate detection).
func NewService(g gw.StripeGateway, journal EventJournal, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return serviceImpl{StripeGateway: g, journal: journal, logger: logger}
}

// ReceiveWebhook verifies the delivery, decodes its data object and records it.
// A redelivered event is returned with Duplicate set, not as an error.
func (s serviceImpl) ReceiveWebhook(ctx context.Context, payload []byte, signature string) (WebhookReceipt, error) {
	event, err := s.ConstructWebhookEvent(payload, signature)
	if err != nil {
		return WebhookReceipt{}, err
	}
	log := s.logger.With(zap.String("event_id", event.ID), zap.String("event_type", string(event.Type)))

	obj, err := decodeObject(event)
	if err != nil {
		log.Warn("webhook event rejected", zap.Error(err))
		return WebhookReceipt{Event: event}, err
	}
	receipt := WebhookReceipt{Event: event, Object: obj}

	if s.journal != nil {
		inserted, err := s.journal.Record(ctx, event)
		if err != nil {
			log.Error("recording webhook event failed", zap.Error(err))
			return receipt, errs.Storage("record", "webhook event", event.ID, err)
		}
		receipt.Duplicate = !inserted
	}

	if receipt.Duplicate {
		log.Info("duplicate webhook event")
	} else {
		log.Info("webhook event received", zap.Bool("livemode", event.Livemode))
	}
	return receipt, nil
}
