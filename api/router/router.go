package router

import (
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	bootstrap "github.com/tbeaudouin05/stripe-relay/api/bootstrap"
	stripeapp "github.com/tbeaudouin05/stripe-relay/api/services/stripe/app"
)

// NewRouter returns the central HTTP router for the API using grpc-gateway.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers re-check).
	if err := bootstrap.Ensure(); err != nil {
		bootstrap.Logger().Error("bootstrap ensure failed", zap.Error(err))
	}
	return NewHandler(bootstrap.GetStripeService, bootstrap.Logger())
}

// NewHandler maps the Stripe service onto HTTP routes. service is resolved per request
// so a late bootstrap is picked up; a nil service answers 503.
func NewHandler(service func() stripeapp.Service, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	mux := runtime.NewServeMux()
	h := &handlers{mux: mux, service: service, logger: logger}

	routes := []struct {
		method, pattern string
		fn              runtime.HandlerFunc
	}{
		{http.MethodGet, "/healthz", h.healthz},
		{http.MethodGet, "/api/products", h.listProducts},
		{http.MethodGet, "/api/products/{id}", h.getProduct},
		{http.MethodGet, "/api/prices", h.listPrices},
		{http.MethodGet, "/api/prices/{id}", h.getPrice},
		{http.MethodPost, "/api/checkout-sessions", h.createCheckoutSession},
		{http.MethodGet, "/api/checkout-sessions/{id}", h.getCheckoutSession},
		{http.MethodPost, "/api/checkout-sessions/{id}/expire", h.expireCheckoutSession},
		{http.MethodGet, "/api/subscriptions/{id}/status", h.subscriptionStatus},
		{http.MethodPost, "/api/receive-stripe-webhook", h.receiveWebhook},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.fn); err != nil {
			// patterns are static, so this only fires on a programming error
			logger.Fatal("failed to register route", zap.String("pattern", rt.pattern), zap.Error(err))
		}
	}
	return withRequestID(withAccessLog(mux, logger))
}
