package router

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tbeaudouin05/stripe-relay/api/errs"
)

// toStatus converts a service error into the gRPC status the gateway mux renders.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}

	var e *errs.Error
	if !errors.As(err, &e) {
		return codes.Internal
	}
	switch e.Kind {
	case errs.KindInvalidArgument:
		return codes.InvalidArgument
	case errs.KindVerification:
		return codes.Unauthenticated
	case errs.KindRemoteCall:
		return remoteCode(e)
	default:
		return codes.Internal
	}
}

// remoteCode maps the provider's HTTP status. No status means the provider was unreachable.
func remoteCode(e *errs.Error) codes.Code {
	switch {
	case errs.IsNotFound(e):
		return codes.NotFound
	case e.Status == 0 || e.Status >= http.StatusInternalServerError:
		return codes.Unavailable
	case e.Status == http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case e.Status == http.StatusConflict:
		return codes.Aborted
	case e.Status == http.StatusPaymentRequired:
		return codes.FailedPrecondition
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		// the server's own Stripe credentials were rejected
		return codes.Internal
	default:
		return codes.InvalidArgument
	}
}
