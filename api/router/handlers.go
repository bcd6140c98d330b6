package router

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tbeaudouin05/stripe-relay/api/errs"
	stripeapp "github.com/tbeaudouin05/stripe-relay/api/services/stripe/app"
	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

// maxWebhookBody matches the payload cap Stripe documents for webhook handlers.
const maxWebhookBody = 65536

type handlers struct {
	mux     *runtime.ServeMux
	service func() stripeapp.Service
	logger  *zap.Logger
}

// webhookAck is the body returned to Stripe for an accepted delivery.
type webhookAck struct {
	Received  bool   `json:"received"`
	Duplicate bool   `json:"duplicate"`
	EventID   string `json:"eventId"`
	Type      string `json:"type"`
}

func (h *handlers) svc(w http.ResponseWriter, r *http.Request) (stripeapp.Service, bool) {
	s := h.service()
	if s == nil {
		h.fail(w, r, status.Error(codes.Unavailable, "stripe service not initialized"))
		return nil, false
	}
	return s, true
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if _, ok := h.svc(w, r); !ok {
		return
	}
	h.write(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	s, ok := h.svc(w, r)
	if !ok {
		return
	}
	var filter gw.ProductFilter
	var err error
	if filter.ListFilter, err = listFilter(r); err != nil {
		h.fail(w, r, err)
		return
	}
	if filter.Active, err = boolQuery(r, "active"); err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := s.ListProducts(r.Context(), filter)
	h.respond(w, r, res, err)
}

func (h *handlers) getProduct(w http.ResponseWriter, r *http.Request, p map[string]string) {
	s, ok := h.svc(w, r)
	if !ok {
		return
	}
	res, err := s.GetProduct(r.Context(), p["id"])
	h.respond(w, r, res, err)
}

func (h *handlers) listPrices(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	s, ok := h.svc(w, r)
	if !ok {
		return
	}
	filter := gw.PriceFilter{Product: r.URL.Query().Get("product")}
	var err error
	if filter.ListFilter, err = listFilter(r); err != nil {
		h.fail(w, r, err)
		return
	}
	if filter.Active, err = boolQuery(r, "active"); err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := s.ListPrices(r.Context(), filter)
	h.respond(w, r, res, err)
}

func (h *handlers) getPrice(w http.ResponseWriter, r *http.Request, p map[string]string) {
	s, ok := h.svc(w, r)
	if !ok {
		return
	}
	res, err := s.GetPrice(r.Context(), p["id"])
	h.respond(w, r, res, err)
}

func (h *handlers) createCheckoutSession(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	s, ok := h.svc(w, r)
	if !ok {
		return
	}
	var in gw.CheckoutSessionInput
	inbound, _ := runtime.MarshalerForRequest(h.mux, r)
	if err := inbound.NewDecoder(r.Body).Decode(&in); err != nil {
		h.fail(w, r, errs.Invalid("decode", "checkout session", "", err))
		return
	}
	res, err := s.CreateCheckoutSession(r.Context(), in)
	h.respond(w, r, res, err)
}

func (h *handlers) getCheckoutSession(w http.ResponseWriter, r *http.Request, p map[string]string) {
	s, ok := h.svc(w, r)
	if !ok {
		return
	}
	res, err := s.GetCheckoutSession(r.Context(), p["id"])
	h.respond(w, r, res, err)
}

func (h *handlers) expireCheckoutSession(w http.ResponseWriter, r *http.Request, p map[string]string) {
	s, ok := h.svc(w, r)
	if !ok {
		return
	}
	res, err := s.ExpireCheckoutSession(r.Context(), p["id"])
	h.respond(w, r, res, err)
}

func (h *handlers) subscriptionStatus(w http.ResponseWriter, r *http.Request, p map[string]string) {
	s, ok := h.svc(w, r)
	if !ok {
		return
	}
	res, err := s.VerifySubscription(r.Context(), p["id"])
	h.respond(w, r, res, err)
}

func (h *handlers) receiveWebhook(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	s, ok := h.svc(w, r)
	if !ok {
		return
	}
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, r, status.Error(codes.InvalidArgument, "webhook payload too large"))
			return
		}
		h.fail(w, r, errs.Invalid("read", "webhook payload", "", err))
		return
	}
	receipt, err := s.ReceiveWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, r, http.StatusOK, webhookAck{
		Received:  true,
		Duplicate: receipt.Duplicate,
		EventID:   receipt.Event.ID,
		Type:      string(receipt.Event.Type),
	})
}

func (h *handlers) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, r, http.StatusOK, v)
}

func (h *handlers) write(w http.ResponseWriter, r *http.Request, code int, v any) {
	_, outbound := runtime.MarshalerForRequest(h.mux, r)
	buf, err := outbound.Marshal(v)
	if err != nil {
		h.fail(w, r, status.Errorf(codes.Internal, "encoding response: %v", err))
		return
	}
	w.Header().Set("Content-Type", outbound.ContentType(v))
	w.WriteHeader(code)
	if _, err := w.Write(buf); err != nil {
		h.logger.Debug("writing response failed", zap.Error(err))
	}
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	st := toStatus(err)
	code := status.Code(st)
	fields := []zap.Field{
		zap.String("request_id", RequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Stringer("code", code),
		zap.Error(err),
	}
	if runtime.HTTPStatusFromCode(code) >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Info("request rejected", fields...)
	}
	ctx := runtime.NewServerMetadataContext(r.Context(), runtime.ServerMetadata{})
	_, outbound := runtime.MarshalerForRequest(h.mux, r)
	runtime.HTTPError(ctx, h.mux, outbound, w, r, st)
}

func listFilter(r *http.Request) (gw.ListFilter, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return gw.ListFilter{}, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return gw.ListFilter{}, errs.Invalid("parse", "query", "limit", err)
	}
	return gw.ListFilter{Limit: n}, nil
}

func boolQuery(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errs.Invalid("parse", "query", name, err)
	}
	return &b, nil
}
