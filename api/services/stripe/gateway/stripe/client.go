package stripegw

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	stripe "github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tbeaudouin05/stripe-relay/api/errs"
	gw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway"
)

// Options configures the Stripe-backed gateway.
type Options struct {
	SecretKey     string
	WebhookSecret string
	// APIURL overrides https://api.stripe.com, e.g. for stripe-mock or tests.
	APIURL string
	// IgnoreAPIVersionMismatch accepts webhook events rendered with another API version.
	IgnoreAPIVersionMismatch bool
	HTTPClient               *http.Client
	Logger                   *zap.Logger
}

// client is the Stripe SDK-backed implementation of the gateway.
// It owns its own *stripeclient.API so no package-level key is touched.
type client struct {
	api              *stripeclient.API
	webhookSecret    string
	ignoreAPIVersion bool
	logger           *zap.Logger
	validate         *validator.Validate
}

// New returns a StripeGateway backed by the official Stripe SDK.
func New(opts Options) (gw.StripeGateway, error) {
	if opts.SecretKey == "" {
		return nil, errs.Config("missing Stripe Secret Key", nil)
	}
	if opts.WebhookSecret == "" {
		return nil, errs.Config("missing Stripe Webhook Secret", nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return client{
		api:              stripeclient.New(opts.SecretKey, newBackends(opts)),
		webhookSecret:    opts.WebhookSecret,
		ignoreAPIVersion: opts.IgnoreAPIVersionMismatch,
		logger:           opts.Logger,
		validate:         validator.New(),
	}, nil
}

// newBackends builds one backend config per backend type; the SDK mutates the config it is given.
// Retries are disabled: every call is exactly one attempt.
func newBackends(opts Options) *stripe.Backends {
	sdkLogger := opts.Logger.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel)).Sugar()
	cfg := func(url string) *stripe.BackendConfig {
		c := &stripe.BackendConfig{
			HTTPClient:        opts.HTTPClient,
			LeveledLogger:     sdkLogger,
			MaxNetworkRetries: stripe.Int64(0),
		}
		if url != "" {
			c.URL = stripe.String(url)
		}
		return c
	}
	return &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg(opts.APIURL)),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg("")),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg("")),
	}
}

// requireID rejects empty identifiers; the SDK would otherwise hit the list endpoint.
func requireID(op, resource, id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.Invalid(op, resource, id, errors.New("id is required"))
	}
	return nil
}

func (c client) check(op, resource string, in any) error {
	if err := c.validate.Struct(in); err != nil {
		return errs.Invalid(op, resource, "", err)
	}
	return nil
}

// fail normalizes an SDK error into an *errs.Error naming op, resource and id.
func (c client) fail(op, resource, id string, err error) error {
	e := errs.Remote(op, resource, id, err)
	var se *stripe.Error
	if errors.As(err, &se) {
		e.Status = se.HTTPStatusCode
		e.Code = string(se.Code)
		e.Detail = se.Msg
	}
	if e.Detail == "" && err != nil {
		e.Detail = err.Error()
	}
	c.logger.Warn("stripe call failed",
		zap.String("op", op),
		zap.String("resource", resource),
		zap.String("id", id),
		zap.Int("status", e.Status),
		zap.String("code", e.Code),
		zap.Error(err))
	return e
}

func page(ctx context.Context, p *stripe.ListParams, f gw.ListFilter) {
	p.Context = ctx
	p.Single = true
	if f.Limit > 0 {
		p.Limit = stripe.Int64(f.Limit)
	}
}

func value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return stripe.String(s)
}

func optInt64(n int64) *int64 {
	if n == 0 {
		return nil
	}
	return stripe.Int64(n)
}
