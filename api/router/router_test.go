package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v76"

	"github.com/tbeaudouin05/stripe-relay/api/errs"
	stripeapp "github.com/tbeaudouin05/stripe-relay/api/services/stripe/app"
	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
	"github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway/mocks"
)

func newMockServer(t *testing.T) (*httptest.Server, *mocks.MockStripeGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	g := mocks.NewMockStripeGateway(ctrl)
	svc := stripeapp.NewService(g, nil, nil)
	ts := httptest.NewServer(NewHandler(func() stripeapp.Service { return svc }, nil))
	t.Cleanup(ts.Close)
	return ts, g
}

// rpcStatus is the google.rpc.Status body the gateway writes for errors.
type rpcStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func uuidFromHeader(resp *http.Response) (uuid.UUID, error) {
	return uuid.Parse(resp.Header.Get(requestIDHeader))
}

func notFound(resource, id string) error {
	return &errs.Error{
		Kind: errs.KindRemoteCall, Op: "retrieve", Resource: resource, ID: id,
		Status: http.StatusNotFound, Code: "resource_missing",
		Detail: "No such " + resource + ": '" + id + "'",
	}
}

func TestHealthz(t *testing.T) {
	ts, _ := newMockServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, parseErr := uuidFromHeader(resp)
	assert.NoError(t, parseErr)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestHealthz_NoService(t *testing.T) {
	ts := httptest.NewServer(NewHandler(func() stripeapp.Service { return nil }, nil))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetProduct_OK(t *testing.T) {
	ts, g := newMockServer(t)
	g.EXPECT().GetProduct(gomock.Any(), "prod_1").Return(stripe.Product{ID: "prod_1", Name: "Pro"}, nil)

	resp, err := http.Get(ts.URL + "/api/products/prod_1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var p stripe.Product
	decode(t, resp, &p)
	assert.Equal(t, "prod_1", p.ID)
	assert.Equal(t, "Pro", p.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	ts, g := newMockServer(t)
	g.EXPECT().GetProduct(gomock.Any(), "prod_123").Return(stripe.Product{}, notFound("product", "prod_123"))

	resp, err := http.Get(ts.URL + "/api/products/prod_123")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var st rpcStatus
	decode(t, resp, &st)
	assert.Contains(t, st.Message, "product prod_123")
	assert.Contains(t, st.Message, "No such product")
}

func TestListProducts_QueryFilters(t *testing.T) {
	ts, g := newMockServer(t)
	active := true
	g.EXPECT().ListProducts(gomock.Any(), gw.ProductFilter{ListFilter: gw.ListFilter{Limit: 5}, Active: &active}).
		Return(stripe.ProductList{Data: []*stripe.Product{{ID: "prod_1"}}}, nil)

	resp, err := http.Get(ts.URL + "/api/products?limit=5&active=true")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list stripe.ProductList
	decode(t, resp, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "prod_1", list.Data[0].ID)
}

func TestListProducts_BadQuery(t *testing.T) {
	ts, _ := newMockServer(t)

	for _, q := range []string{"limit=ten", "active=maybe"} {
		resp, err := http.Get(ts.URL + "/api/products?" + q)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestListPrices_ProviderUnreachable(t *testing.T) {
	ts, g := newMockServer(t)
	g.EXPECT().ListPrices(gomock.Any(), gw.PriceFilter{Product: "prod_1"}).
		Return(stripe.PriceList{}, errs.Remote("list", "prices", "", errors.New("dial tcp: connection refused")))

	resp, err := http.Get(ts.URL + "/api/prices?product=prod_1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetPrice_OK(t *testing.T) {
	ts, g := newMockServer(t)
	g.EXPECT().GetPrice(gomock.Any(), "price_1").Return(stripe.Price{ID: "price_1", UnitAmount: 1500}, nil)

	resp, err := http.Get(ts.URL + "/api/prices/price_1")
	require.NoError(t, err)
	var p stripe.Price
	decode(t, resp, &p)
	assert.Equal(t, int64(1500), p.UnitAmount)
}

func TestCreateCheckoutSession(t *testing.T) {
	ts, g := newMockServer(t)
	want := gw.CheckoutSessionInput{
		SuccessURL: "https://example.com/ok",
		LineItems:  []gw.LineItem{{Price: "price_1", Quantity: 1}},
	}
	g.EXPECT().CreateCheckoutSession(gomock.Any(), want).
		Return(stripe.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}, nil)

	body := `{"success_url":"https://example.com/ok","line_items":[{"price":"price_1","quantity":1}]}`
	resp, err := http.Post(ts.URL+"/api/checkout-sessions", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cs stripe.CheckoutSession
	decode(t, resp, &cs)
	assert.Equal(t, "cs_1", cs.ID)
}

func TestCreateCheckoutSession_MalformedBody(t *testing.T) {
	ts, _ := newMockServer(t)

	resp, err := http.Post(ts.URL+"/api/checkout-sessions", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExpireCheckoutSession(t *testing.T) {
	ts, g := newMockServer(t)
	g.EXPECT().ExpireCheckoutSession(gomock.Any(), "cs_1").
		Return(stripe.CheckoutSession{ID: "cs_1", Status: stripe.CheckoutSessionStatusExpired}, nil)

	resp, err := http.Post(ts.URL+"/api/checkout-sessions/cs_1/expire", "application/json", nil)
	require.NoError(t, err)
	var cs stripe.CheckoutSession
	decode(t, resp, &cs)
	assert.Equal(t, stripe.CheckoutSessionStatusExpired, cs.Status)
}

func TestGetCheckoutSession(t *testing.T) {
	ts, g := newMockServer(t)
	g.EXPECT().GetCheckoutSession(gomock.Any(), "cs_1").Return(stripe.CheckoutSession{ID: "cs_1"}, nil)

	resp, err := http.Get(ts.URL + "/api/checkout-sessions/cs_1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSubscriptionStatus(t *testing.T) {
	ts, g := newMockServer(t)
	g.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(stripe.Subscription{
		ID:       "sub_1",
		Status:   stripe.SubscriptionStatusActive,
		Customer: &stripe.Customer{ID: "cus_1", Email: "a@example.com"},
	}, nil)

	resp, err := http.Get(ts.URL + "/api/subscriptions/sub_1/status")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var st stripeapp.SubscriptionStatus
	decode(t, resp, &st)
	assert.True(t, st.IsValidSubscription)
	assert.Equal(t, "a@example.com", st.StripeCustomerEmail)
}

func TestReceiveWebhook_Accepted(t *testing.T) {
	ts, g := newMockServer(t)
	payload := []byte(`{"id":"evt_1"}`)
	raw := json.RawMessage(`{"id":"ch_1","object":"charge"}`)
	g.EXPECT().ConstructWebhookEvent(payload, "t=1,v1=abc").Return(stripe.Event{
		ID:   "evt_1",
		Type: "charge.succeeded",
		Data: &stripe.EventData{Raw: raw, Object: map[string]any{"id": "ch_1"}},
	}, nil)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, ts.URL+"/api/receive-stripe-webhook", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ack webhookAck
	decode(t, resp, &ack)
	assert.True(t, ack.Received)
	assert.Equal(t, "evt_1", ack.EventID)
	assert.Equal(t, "charge.succeeded", ack.Type)
}

func TestReceiveWebhook_BadSignature(t *testing.T) {
	ts, g := newMockServer(t)
	g.EXPECT().ConstructWebhookEvent(gomock.Any(), "").
		Return(stripe.Event{}, errs.Verification(errors.New("webhook has no Stripe-Signature header")))

	resp, err := http.Post(ts.URL+"/api/receive-stripe-webhook", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), "Stripe-Signature")
}

func TestReceiveWebhook_PayloadTooLarge(t *testing.T) {
	ts, _ := newMockServer(t)

	big := bytes.Repeat([]byte("a"), maxWebhookBody+1)
	resp, err := http.Post(ts.URL+"/api/receive-stripe-webhook", "application/json", bytes.NewReader(big))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	ts, _ := newMockServer(t)

	resp, err := http.Get(ts.URL + "/api/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestID_KeepsCallerValue(t *testing.T) {
	ts, _ := newMockServer(t)
	const id = "6f1d2c58-8a4e-4f0e-9a39-3c1b5a3f6b10"

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(requestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, id, resp.Header.Get(requestIDHeader))
}
